// Copyright: This file is part of degrees, released under https://github.com/sixdegrees/degrees/blob/main/LICENSE

package test

import (
	"errors"
	"net"
	"os/exec"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListenPort(t *testing.T) {
	port, err := ListenPort()
	require.NoError(t, err)
	l, err := net.Listen("tcp", net.JoinHostPort("localhost", strconv.Itoa(port)))
	require.NoError(t, err, "port is free")
	_ = l.Close()
}

func TestExecError(t *testing.T) {
	SkipIfNoCommand(t, "sh")
	_, err := exec.Command("sh", "-c", "echo oops >&2; exit 3").Output()
	err = ExecError(err)
	assert.ErrorContains(t, err, "exit status 3: oops")
	var ex *exec.ExitError
	assert.ErrorAs(t, err, &ex)
	plain := errors.New("plain")
	assert.Equal(t, plain, ExecError(plain))
}

func TestJSON(t *testing.T) {
	v := map[string]int{"a": 1}
	assert.Equal(t, `{"a":1}`, JSONString(v))
	assert.Equal(t, "{\n  \"a\": 1\n}\n", JSONPretty(v))
	assert.Contains(t, JSONString(func() {}), "unsupported type")
}

func TestMust(t *testing.T) {
	assert.Equal(t, 1, Must(1, nil))
	assert.Panics(t, func() { Must(1, errors.New("x")) })
}
