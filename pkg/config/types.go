// Copyright: This file is part of degrees, released under https://github.com/sixdegrees/degrees/blob/main/LICENSE

package config

// Config for a degrees command or server.
// Configuration files may be JSON or YAML.
type Config struct {
	// Data locates the CSV files to load.
	Data Data `json:"data"`

	// Search sets defaults for path searches.
	Search Search `json:"search"`

	// Web configures the REST server.
	Web Web `json:"web"`

	// Include lists additional configuration files or URLs to include.
	// Values in the including file take precedence.
	Include []string `json:"include,omitempty"`
}

// Data locates the dataset.
type Data struct {
	// Directory containing the CSV files.
	Directory string `json:"directory,omitempty"`
	// People file name, relative to Directory.
	People string `json:"people,omitempty" validate:"omitempty,excludesall=/\\"`
	// Movies file name, relative to Directory.
	Movies string `json:"movies,omitempty" validate:"omitempty,excludesall=/\\"`
	// Stars file name, relative to Directory.
	Stars string `json:"stars,omitempty" validate:"omitempty,excludesall=/\\"`
}

// Search defaults.
type Search struct {
	// Strategy is "bfs" (shortest path) or "dfs".
	Strategy string `json:"strategy,omitempty" validate:"omitempty,oneof=bfs dfs"`
	// MaxDepth limits the degrees of separation explored, 0 means no limit.
	MaxDepth int `json:"maxDepth,omitempty" validate:"gte=0"`
	// Timeout for a single search, 0 means no timeout.
	Timeout Duration `json:"timeout,omitzero"`
}

// Web server settings.
type Web struct {
	// HTTP listening address, host:port.
	HTTP string `json:"http,omitempty" validate:"omitempty,hostname_port"`
	// MCP enables the MCP streamable HTTP endpoint on the web server.
	MCP bool `json:"mcp,omitempty"`
	// ShutdownTimeout waits for requests to complete on shutdown.
	ShutdownTimeout Duration `json:"shutdownTimeout,omitzero"`
}
