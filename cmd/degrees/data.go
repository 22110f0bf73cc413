// Copyright: This file is part of degrees, released under https://github.com/sixdegrees/degrees/blob/main/LICENSE

package main

import (
	"context"
	"sync"

	"github.com/sixdegrees/degrees/internal/pkg/must"
	"github.com/sixdegrees/degrees/pkg/config"
	"github.com/sixdegrees/degrees/pkg/dataset"
	"github.com/sixdegrees/degrees/pkg/frontier"
	"github.com/sixdegrees/degrees/pkg/load"
	"github.com/sixdegrees/degrees/pkg/search"
)

var ctx = context.Background()

// loadConfig returns the configuration file if there is one, with defaults and flags applied.
var loadConfig = sync.OnceValue(func() *config.Config {
	var c *config.Config
	if *configFlag != "" {
		c = must.Must1(config.Load(*configFlag))
	} else {
		c = config.Default()
	}
	if *dataFlag != "" {
		c.Data.Directory = *dataFlag
	}
	must.Must(c.Validate())
	log.V(1).Info("configuration", "data", c.Data.Directory, "search", c.Search.Strategy)
	return c
})

// loadData loads the dataset from dir, or the configured directory if dir is empty.
func loadData(dir string) *dataset.Dataset {
	c := loadConfig()
	if dir == "" {
		dir = c.Data.Directory
	}
	return must.Must1(load.Dir(ctx, dir, c.Files()))
}

// searchOptions from configuration.
func searchOptions() search.Options {
	c := loadConfig()
	return search.Options{Strategy: frontier.Strategy(c.Search.Strategy), MaxDepth: c.Search.MaxDepth}
}
