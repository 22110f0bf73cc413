// Copyright: This file is part of degrees, released under https://github.com/sixdegrees/degrees/blob/main/LICENSE

package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sixdegrees/degrees/internal/pkg/logging"
	"github.com/sixdegrees/degrees/internal/pkg/must"
	"github.com/sixdegrees/degrees/pkg/build"
	"github.com/sixdegrees/degrees/pkg/mcp"
	"github.com/sixdegrees/degrees/pkg/metric"
	"github.com/sixdegrees/degrees/pkg/rest"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var webCmd = &cobra.Command{
	Use:   "web [flags]",
	Short: "Start the REST server, and optionally an MCP streamable HTTP endpoint.",
	Long: `Start the REST server, and optionally an MCP streamable HTTP endpoint.

The REST API is served under ` + rest.BasePath + `, Prometheus metrics at /metrics.
With --mcp the MCP protocol is served at ` + mcp.StreamablePath + `.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		c := loadConfig()
		if cmd.Flags().Changed("http") {
			c.Web.HTTP = *httpFlag
		}
		if cmd.Flags().Changed("mcp") {
			c.Web.MCP = *mcpFlag
		}
		d := loadData("")

		gin.DefaultWriter = logging.Writer(2)
		gin.DefaultErrorWriter = logging.Writer(0)
		gin.SetMode(gin.ReleaseMode)
		gin.DisableConsoleColor()
		router := gin.New()
		router.Use(gin.Recovery())
		metrics := metric.New(prometheus.DefaultRegisterer)
		metrics.Dataset(d.Stats())
		a := must.Must1(rest.New(d, rest.Options{
			Search:  searchOptions(),
			Timeout: c.Search.Timeout.Duration,
			Metrics: metrics,
		}, router))
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
		pprof.Register(router) // Enable profiling
		if c.Web.MCP {
			h := mcp.NewServer(a).HTTPHandler()
			router.Any(mcp.StreamablePath, gin.WrapH(h))
		}

		ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
		defer stop()
		s := &http.Server{
			Addr:        c.Web.HTTP,
			Handler:     router,
			BaseContext: func(net.Listener) context.Context { return ctx },
		}
		g, ctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			log.Info("listening for http", "addr", s.Addr, "mcp", c.Web.MCP, "version", build.Version)
			if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
		g.Go(func() error {
			<-ctx.Done()
			log.Info("shutting down", "timeout", c.Web.ShutdownTimeout.Duration)
			sctx, cancel := context.WithTimeout(context.Background(), c.Web.ShutdownTimeout.Duration)
			defer cancel()
			return s.Shutdown(sctx)
		})
		must.Must(g.Wait())
	},
}

var (
	httpFlag *string
	mcpFlag  *bool
)

func init() {
	rootCmd.AddCommand(webCmd)
	httpFlag = webCmd.Flags().String("http", "", "host:port address for http listener, overrides configuration")
	mcpFlag = webCmd.Flags().Bool("mcp", false, "Serve the MCP streamable HTTP protocol at "+mcp.StreamablePath)
}
