// Copyright: This file is part of degrees, released under https://github.com/sixdegrees/degrees/blob/main/LICENSE

package logging

import (
	"bytes"
	"log"
	"strings"
	"testing"

	"github.com/go-logr/stdr"
	"github.com/stretchr/testify/assert"
)

func TestWriter(t *testing.T) {
	var buf bytes.Buffer
	save := root
	t.Cleanup(func() { root = save })
	root = stdr.New(log.New(&buf, "", 0))

	n, err := Writer(0).Write([]byte("one\ntwo\n\n"))
	assert.NoError(t, err)
	assert.Equal(t, 9, n)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if assert.Len(t, lines, 2) {
		assert.Contains(t, lines[0], `"msg"="one"`)
		assert.Contains(t, lines[1], `"msg"="two"`)
	}
}

func TestJSON(t *testing.T) {
	assert.Equal(t, `{"a":1}`, JSON(map[string]int{"a": 1}).MarshalLog())
	assert.Equal(t, `"json: unsupported type: chan int"`, JSONString(make(chan int)))
}
