// Copyright: This file is part of degrees, released under https://github.com/sixdegrees/degrees/blob/main/LICENSE

package main

import (
	"github.com/gin-gonic/gin"
	"github.com/sixdegrees/degrees/internal/pkg/must"
	"github.com/sixdegrees/degrees/pkg/mcp"
	"github.com/sixdegrees/degrees/pkg/rest"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP stdio server",
	Long: `Run degrees as an MCP server communicating via stdin/stdout.
Allows degrees to be run as a sub-process by an MCP tool.
For a HTTP streaming server use the 'web' command with the '--mcp' flag.
`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		d := loadData("")
		gin.SetMode(gin.ReleaseMode)
		// The router is not served, the API provides search with configured options.
		a := must.Must1(rest.New(d, rest.Options{
			Search:  searchOptions(),
			Timeout: loadConfig().Search.Timeout.Duration,
		}, gin.New()))
		log.Info("MCP server starting on stdio.")
		must.Must(mcp.NewServer(a).ServeStdio(ctx))
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
