// Copyright: This file is part of degrees, released under https://github.com/sixdegrees/degrees/blob/main/LICENSE

// package build contains build information for the degrees module.
package build

import (
	_ "embed"
	"strings"
)

//go:embed version.txt
var version string

// Version of this build.
var Version = strings.TrimSpace(version)
