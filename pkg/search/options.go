// Copyright: This file is part of degrees, released under https://github.com/sixdegrees/degrees/blob/main/LICENSE

package search

import "github.com/sixdegrees/degrees/pkg/frontier"

// Options for a Searcher.
type Options struct {
	// Strategy for the frontier, [frontier.BreadthFirst] by default.
	// Only breadth-first search guarantees a shortest path.
	Strategy frontier.Strategy `json:"strategy,omitempty"`
	// MaxDepth is the longest path to consider, 0 means no limit.
	MaxDepth int `json:"maxDepth,omitempty"`
}

type Option func(*Options)

func WithStrategy(s frontier.Strategy) Option { return func(o *Options) { o.Strategy = s } }
func WithMaxDepth(n int) Option               { return func(o *Options) { o.MaxDepth = n } }

// WithOptions copies all options from o.
func WithOptions(o Options) Option {
	return func(opts *Options) {
		if o.Strategy != "" {
			opts.Strategy = o.Strategy
		}
		opts.MaxDepth = o.MaxDepth
	}
}
