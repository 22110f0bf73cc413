// Copyright: This file is part of degrees, released under https://github.com/sixdegrees/degrees/blob/main/LICENSE

// Package config loads configuration files for the degrees command and server.
package config

import (
	"cmp"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sixdegrees/degrees/internal/pkg/logging"
	"github.com/sixdegrees/degrees/pkg/frontier"
	"github.com/sixdegrees/degrees/pkg/load"
	"sigs.k8s.io/yaml"
)

var log = logging.Log()

// DataEnv names the environment variable for the default data directory.
const DataEnv = "DEGREES_DATA"

// DefaultDirectory is used if no directory is configured.
const DefaultDirectory = "large"

// Default configuration values.
func Default() *Config {
	c := &Config{}
	c.Default()
	return c
}

// Default fills in unset values.
// The DataEnv environment variable, if set, replaces the configured directory.
func (c *Config) Default() {
	c.Data.Directory = cmp.Or(os.Getenv(DataEnv), c.Data.Directory, DefaultDirectory)
	c.Data.People = cmp.Or(c.Data.People, load.DefaultFiles.People)
	c.Data.Movies = cmp.Or(c.Data.Movies, load.DefaultFiles.Movies)
	c.Data.Stars = cmp.Or(c.Data.Stars, load.DefaultFiles.Stars)
	c.Search.Strategy = cmp.Or(c.Search.Strategy, string(frontier.BreadthFirst))
	c.Web.HTTP = cmp.Or(c.Web.HTTP, "localhost:8080")
	if c.Web.ShutdownTimeout.Duration == 0 {
		c.Web.ShutdownTimeout.Duration = 5 * time.Second
	}
}

// Files returns the data file names.
func (c *Config) Files() load.Files {
	return load.Files{People: c.Data.People, Movies: c.Data.Movies, Stars: c.Data.Stars}
}

// Validate checks field values.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			msgs := make([]string, 0, len(fieldErrs))
			for _, fe := range fieldErrs {
				msgs = append(msgs, fmt.Sprintf("%v: invalid value %v (%v)", fe.Namespace(), logging.JSONString(fe.Value()), fe.Tag()))
			}
			return fmt.Errorf("invalid configuration: %v", strings.Join(msgs, "; "))
		}
		return err
	}
	return nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load a configuration from a file or URL, with defaults filled in and validated.
// A relative data directory in a file is relative to the directory containing the file.
//
// If a configuration has an Include section, also loads all referenced configurations.
// Relative paths in Include are relative to the location of file containing them.
// Values from the including file take precedence over included ones.
func Load(fileOrURL string) (*Config, error) {
	c, err := loadFile(fileOrURL, map[string]bool{})
	if err != nil {
		return nil, err
	}
	c.Default()
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("%v: %w", fileOrURL, err)
	}
	return c, nil
}

func loadFile(source string, seen map[string]bool) (*Config, error) {
	if seen[source] {
		return &Config{}, nil // Already loaded
	}
	seen[source] = true
	log.V(2).Info("Loading configuration", "config", source)
	b, err := readFileOrURL(source)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", source, err)
	}
	c := &Config{}
	if err := yaml.UnmarshalStrict(b, c); err != nil {
		return nil, fmt.Errorf("%v: %w", source, err)
	}
	if dir := c.Data.Directory; dir != "" && !filepath.IsAbs(dir) && isFile(source) {
		c.Data.Directory = filepath.Join(filepath.Dir(source), dir)
	}
	for _, s := range c.Include {
		more, err := loadFile(resolve(source, s), seen)
		if err != nil {
			return nil, err
		}
		c.merge(more)
	}
	c.Include = nil
	return c, nil
}

// merge sets values that are unset in c from other.
func (c *Config) merge(other *Config) {
	c.Data.Directory = cmp.Or(c.Data.Directory, other.Data.Directory)
	c.Data.People = cmp.Or(c.Data.People, other.Data.People)
	c.Data.Movies = cmp.Or(c.Data.Movies, other.Data.Movies)
	c.Data.Stars = cmp.Or(c.Data.Stars, other.Data.Stars)
	c.Search.Strategy = cmp.Or(c.Search.Strategy, other.Search.Strategy)
	c.Search.MaxDepth = cmp.Or(c.Search.MaxDepth, other.Search.MaxDepth)
	c.Search.Timeout = cmp.Or(c.Search.Timeout, other.Search.Timeout)
	c.Web.HTTP = cmp.Or(c.Web.HTTP, other.Web.HTTP)
	c.Web.MCP = c.Web.MCP || other.Web.MCP
	c.Web.ShutdownTimeout = cmp.Or(c.Web.ShutdownTimeout, other.Web.ShutdownTimeout)
}

func isFile(source string) bool {
	u, err := url.Parse(source)
	return err == nil && !u.IsAbs()
}

func readFileOrURL(source string) ([]byte, error) {
	u, err := url.Parse(source)
	if err != nil {
		return nil, err
	}
	if !u.IsAbs() || u.Scheme == "file" {
		return os.ReadFile(u.Path)
	}
	resp, err := http.Get(u.String())
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%v", http.StatusText(resp.StatusCode))
	}
	return b, nil
}

func resolve(base, ref string) string {
	if filepath.IsAbs(ref) {
		return ref
	}
	if r, err := url.Parse(ref); err == nil {
		if r.IsAbs() {
			return ref
		}
		if b, err := url.Parse(base); err == nil && b.IsAbs() {
			return b.ResolveReference(r).String()
		}
	}
	return filepath.Join(filepath.Dir(base), ref)
}
