// Copyright: This file is part of degrees, released under https://github.com/sixdegrees/degrees/blob/main/LICENSE

package enumflag

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type color string

func TestValue(t *testing.T) {
	v := New[color]("red", "red", "green", "blue")
	assert.Equal(t, []color{"blue", "green", "red"}, v.Allowed)
	assert.Equal(t, "red", v.String())
	require.NoError(t, v.Set("blue"))
	assert.Equal(t, color("blue"), v.Value)
	assert.EqualError(t, v.Set("pink"), "expected one of: blue, green, red")
	assert.Equal(t, color("blue"), v.Value)
	assert.Equal(t, "Paint, one of: blue, green, red", v.Usage("Paint"))
	assert.Equal(t, "One of: blue, green, red", v.Usage(""))
}

func TestValue_Flag(t *testing.T) {
	v := New("json", "json", "yaml")
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.VarP(v, "output", "o", v.Usage("Output format"))
	require.NoError(t, fs.Parse([]string{"-o", "yaml"}))
	assert.Equal(t, "yaml", v.Value)
	assert.Error(t, fs.Parse([]string{"-o", "xml"}))
}
