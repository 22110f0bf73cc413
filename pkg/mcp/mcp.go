// Copyright: This file is part of degrees, released under https://github.com/sixdegrees/degrees/blob/main/LICENSE

// package mcp provides an MCP server and argument structures for MCP client calls.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/sixdegrees/degrees/pkg/build"
	"github.com/sixdegrees/degrees/pkg/names"
	"github.com/sixdegrees/degrees/pkg/rest"
)

const StreamablePath = "/mcp"

// Tool names.
const (
	FindPerson   = "find_person"
	ShortestPath = "shortest_path"
)

type FindPersonParams struct {
	Name string `json:"name" jsonschema:"Name of the person ignoring case"`
}

type FindPersonResult struct {
	People rest.Array[rest.PersonRef] `json:"people" jsonschema:"People with the name"`
}

type ShortestPathParams struct {
	Source string `json:"source" jsonschema:"Id or name of the first person"`
	Target string `json:"target" jsonschema:"Id or name of the second person"`
}

type PathResult = rest.PathResult

// Server is an MCP server backed by a REST API instance, sharing its dataset, options and metrics.
type Server struct {
	*mcp.Server
	API *rest.API
}

func NewServer(a *rest.API) *Server {
	s := mcp.NewServer(&mcp.Implementation{Name: "degrees", Title: "Degrees of separation", Version: build.Version}, nil)
	addTools(a, s)
	return &Server{Server: s, API: a}
}

func addTools(a *rest.API, s *mcp.Server) {
	mcp.AddTool(s, &mcp.Tool{
		Name: FindPerson,
		Description: `
Returns the people with a name, ignoring case.
More than one person may have the same name, each has a unique id.
Use an id with other tools to identify a person unambiguously.`,
	},
		func(ctx context.Context, req *mcp.CallToolRequest, p FindPersonParams) (*mcp.CallToolResult, FindPersonResult, error) {
			people := rest.NewPeopleRefs(a.Names.People(p.Name))
			if len(people) == 0 {
				return errorResult(fmt.Errorf("%w: %q", names.ErrNotFound, p.Name)), FindPersonResult{}, nil
			}
			return nil, FindPersonResult{People: people}, nil
		})

	mcp.AddTool(s, &mcp.Tool{
		Name: ShortestPath,
		Description: `
Returns the degrees of separation between two people.
Two people are one degree apart if they starred in the same movie.
The result lists each movie and person on the shortest path from source to target.
If connected is false there is no path.`,
	},
		func(ctx context.Context, req *mcp.CallToolRequest, p ShortestPathParams) (*mcp.CallToolResult, PathResult, error) {
			source, err := a.Names.LookupOrID(p.Source)
			if err != nil {
				return errorResult(err), PathResult{}, nil
			}
			target, err := a.Names.LookupOrID(p.Target)
			if err != nil {
				return errorResult(err), PathResult{}, nil
			}
			r, err := a.Search(ctx, source, target, a.Options.Search)
			if err != nil {
				if errors.Is(err, context.Canceled) {
					return nil, PathResult{}, err
				}
				return errorResult(err), PathResult{}, nil
			}
			return nil, *rest.NewPathResult(a.Data, r), nil
		})
}

// ServeStdio runs an MCP server, it returns when the client disconnects or the context is canceled.
func (s *Server) ServeStdio(ctx context.Context) error {
	return s.Run(ctx, &mcp.StdioTransport{})
}

// HTTPHandler a handler for the Streaming MCP protocol.
func (s *Server) HTTPHandler() http.Handler {
	// Use the same server for all requests, Server and API are concurrent-safe.
	return mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server { return s.Server }, nil)
}

func errorResult(err error) *mcp.CallToolResult {
	msg := fmt.Sprintf("Error: %v", err)
	if ae := names.IsAmbiguous(err); ae != nil {
		for _, p := range ae.Candidates {
			msg += fmt.Sprintf("\n- id: %v, name: %v, birth: %v", p.ID, p.Name, p.Birth)
		}
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: msg}},
		IsError: true,
	}
}
