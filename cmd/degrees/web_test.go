// Copyright: This file is part of degrees, released under https://github.com/sixdegrees/degrees/blob/main/LICENSE

package main

import (
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"testing"
	"time"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/sixdegrees/degrees/internal/pkg/test"
	"github.com/sixdegrees/degrees/pkg/mcp"
	"github.com/sixdegrees/degrees/pkg/rest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Functional tests for the degrees web server.

func startServer(t *testing.T, args ...string) (*url.URL, *exec.Cmd) {
	t.Helper()
	port, err := test.ListenPort()
	require.NoError(t, err)
	addr := net.JoinHostPort("localhost", strconv.Itoa(port))
	cmd := command(t, append([]string{"web", "--http", addr}, args...)...)
	require.NoError(t, cmd.Start())
	// Wait till server is available.
	require.Eventually(t, func() bool {
		_, err = http.Get("http://" + addr)
		return err == nil
	}, 10*time.Second, time.Second/10, "timeout error: %v", err)
	t.Cleanup(func() {
		_ = cmd.Process.Kill()
	})
	return &url.URL{Scheme: "http", Host: addr}, cmd
}

func request(t *testing.T, method, url string) (string, error) {
	t.Helper()
	req, err := http.NewRequest(method, url, nil)
	if err != nil {
		return "", err
	}
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", err
	}
	defer func() { _ = res.Body.Close() }()
	b, err := io.ReadAll(res.Body)
	if err != nil {
		return "", err
	}
	if res.StatusCode/100 != 2 {
		return "", fmt.Errorf("%v: %v", res.Status, string(b))
	}
	return string(b), nil
}

func assertDo(t *testing.T, want, method, url string) {
	t.Helper()
	got, err := request(t, method, url)
	require.NoError(t, err)
	assert.JSONEq(t, want, got)
}

func TestMain_web(t *testing.T) {
	u, _ := startServer(t)
	api := u.String() + rest.BasePath
	assertDo(t, `{"source":"129","target":"158","connected":true,"degrees":2,"steps":[
{"movie":"104257","title":"A Few Good Men","person":"102","name":"Kevin Bacon"},
{"movie":"112384","title":"Apollo 13","person":"158","name":"Tom Hanks"}]}`,
		"GET", api+"/path?source=Tom+Cruise&target=158")
	assertDo(t, `[{"id":"158","name":"Tom Hanks","birth":1956}]`, "GET", api+"/people?name=tom+hanks")
	assertDo(t, `{"people":17,"movies":5,"stars":20,"dropped":2}`, "GET", api+"/stats")

	_, err := request(t, "GET", api+"/path?source=Kevin+Bacon&target=158")
	require.ErrorContains(t, err, "409 Conflict")

	spec, err := request(t, "GET", u.String()+"/openapi.yaml")
	require.NoError(t, err)
	assert.Contains(t, spec, "openapi: 3")

	metrics, err := request(t, "GET", u.String()+"/metrics")
	require.NoError(t, err)
	assert.Contains(t, metrics, `degrees_search_total{result="connected",strategy="bfs"} 1`)
	assert.Contains(t, metrics, `degrees_dataset_records{kind="people"} 17`)

	// MCP is not enabled.
	_, err = request(t, "POST", u.String()+mcp.StreamablePath)
	require.ErrorContains(t, err, "404")
}

func TestMain_web_mcp(t *testing.T) {
	u, _ := startServer(t, "--mcp")
	c := sdk.NewClient(&sdk.Implementation{Name: "test"}, nil)
	cs, err := c.Connect(t.Context(), &sdk.StreamableClientTransport{Endpoint: u.String() + mcp.StreamablePath}, nil)
	require.NoError(t, err)
	defer func() { _ = cs.Close() }()
	r, err := cs.CallTool(t.Context(), &sdk.CallToolParams{
		Name:      mcp.ShortestPath,
		Arguments: mcp.ShortestPathParams{Source: "Cary Elwes", Target: "102"},
	})
	require.NoError(t, err)
	require.False(t, r.IsError, test.JSONPretty(r))
	assert.Contains(t, test.JSONString(r.StructuredContent), `"degrees":3`)
}

func TestMain_web_shutdown(t *testing.T) {
	_, cmd := startServer(t)
	require.NoError(t, cmd.Process.Signal(os.Interrupt))
	done := make(chan error, 1)
	go func() { done <- cmd.Wait() }()
	select {
	case err := <-done:
		assert.NoError(t, test.ExecError(err))
	case <-time.After(10 * time.Second):
		t.Fatal("timeout waiting for shutdown")
	}
}

func TestMain_mcp_stdio(t *testing.T) {
	cmd := command(t, "mcp")
	c := sdk.NewClient(&sdk.Implementation{Name: "test"}, nil)
	cs, err := c.Connect(t.Context(), &sdk.CommandTransport{Command: cmd}, nil)
	require.NoError(t, err)
	defer func() { _ = cs.Close() }()
	r, err := cs.CallTool(t.Context(), &sdk.CallToolParams{
		Name:      mcp.FindPerson,
		Arguments: mcp.FindPersonParams{Name: "KEVIN BACON"},
	})
	require.NoError(t, err)
	require.False(t, r.IsError, test.JSONPretty(r))
	got := test.JSONString(r.StructuredContent)
	for _, want := range []string{`"id":"102"`, `"id":"9999"`} {
		assert.True(t, strings.Contains(got, want), got)
	}
}
