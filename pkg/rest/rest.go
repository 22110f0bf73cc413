// Copyright: This file is part of degrees, released under https://github.com/sixdegrees/degrees/blob/main/LICENSE

// Package rest implements a REST API for degrees of separation.
//
// The OpenAPI document is served at "/openapi.yaml".
package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sixdegrees/degrees/internal/pkg/logging"
	"github.com/sixdegrees/degrees/pkg/dataset"
	"github.com/sixdegrees/degrees/pkg/frontier"
	"github.com/sixdegrees/degrees/pkg/metric"
	"github.com/sixdegrees/degrees/pkg/names"
	"github.com/sixdegrees/degrees/pkg/search"
)

var log = logging.Log()

// BasePath is the versioned base path for the current version of the REST API.
const BasePath = "/api/v1"

// API serves requests against a single dataset.
// All fields are read-only after New, so the API is safe for concurrent requests.
type API struct {
	Data    *dataset.Dataset
	Names   *names.Resolver
	Options Options
}

// Options for an API.
type Options struct {
	// Search defaults, overridden by request parameters.
	Search search.Options
	// Timeout for a single search, 0 means no timeout.
	Timeout time.Duration
	// Metrics records searches if not nil.
	Metrics *metric.Metrics
}

// New API instance, registers handlers with a gin Engine.
func New(d *dataset.Dataset, opts Options, r *gin.Engine) (*API, error) {
	if _, err := OpenAPI(); err != nil {
		return nil, err
	}
	a := &API{Data: d, Names: names.New(d), Options: opts}
	r.Use(a.logger)
	r.GET("/", func(c *gin.Context) { c.Redirect(http.StatusTemporaryRedirect, "/openapi.yaml") })
	r.GET("/openapi.yaml", a.GetOpenAPI)
	v := r.Group(BasePath)
	v.GET("/people", a.ListPeople)
	v.GET("/people/:id", a.GetPerson)
	v.GET("/movies/:id", a.GetMovie)
	v.GET("/path", a.GetPath)
	v.GET("/stats", a.GetStats)
	return a, nil
}

// PeopleParams are query parameters for ListPeople.
type PeopleParams struct {
	Name string `form:"name" binding:"required"`
}

// ListPeople handler, returns everyone with a name.
func (a *API) ListPeople(c *gin.Context) {
	var p PeopleParams
	if !check(c, http.StatusBadRequest, c.ShouldBindQuery(&p)) {
		return
	}
	c.JSON(http.StatusOK, NewPeopleRefs(a.Names.People(p.Name)))
}

// GetPerson handler.
func (a *API) GetPerson(c *gin.Context) {
	p, err := a.Data.PersonErr(dataset.PersonID(c.Param("id")))
	if !check(c, http.StatusNotFound, err) {
		return
	}
	c.JSON(http.StatusOK, NewPerson(a.Data, p))
}

// GetMovie handler.
func (a *API) GetMovie(c *gin.Context) {
	m, err := a.Data.MovieErr(dataset.MovieID(c.Param("id")))
	if !check(c, http.StatusNotFound, err) {
		return
	}
	c.JSON(http.StatusOK, NewMovie(a.Data, m))
}

// GetStats handler.
func (a *API) GetStats(c *gin.Context) { c.JSON(http.StatusOK, a.Data.Stats()) }

// PathParams are query parameters for GetPath.
type PathParams struct {
	// Source and Target are person ids or names.
	Source   string `form:"source" binding:"required"`
	Target   string `form:"target" binding:"required"`
	Strategy string `form:"strategy" binding:"omitempty,oneof=bfs dfs"`
	MaxDepth int    `form:"maxDepth" binding:"gte=0"`
}

// GetPath handler, finds a path between two people.
func (a *API) GetPath(c *gin.Context) {
	var p PathParams
	if !check(c, http.StatusBadRequest, c.ShouldBindQuery(&p)) {
		return
	}
	source, ok := a.person(c, p.Source)
	if !ok {
		return
	}
	target, ok := a.person(c, p.Target)
	if !ok {
		return
	}
	opts := a.Options.Search
	if p.Strategy != "" {
		opts.Strategy = frontier.Strategy(p.Strategy)
	}
	if c.Request.URL.Query().Has("maxDepth") {
		opts.MaxDepth = p.MaxDepth
	}
	r, err := a.Search(c.Request.Context(), source, target, opts)
	if !check(c, http.StatusInternalServerError, err) {
		return
	}
	c.JSON(http.StatusOK, NewPathResult(a.Data, r))
}

// Search with the API timeout and metrics.
func (a *API) Search(ctx context.Context, source, target dataset.PersonID, opts search.Options) (*search.Result, error) {
	if a.Options.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.Options.Timeout)
		defer cancel()
	}
	s := search.New(a.Data, search.WithOptions(opts))
	if a.Options.Metrics != nil {
		return a.Options.Metrics.Run(ctx, s, source, target)
	}
	return s.Search(ctx, source, target)
}

// person resolves an id or name, aborts the request if it is unknown or ambiguous.
func (a *API) person(c *gin.Context, idOrName string) (dataset.PersonID, bool) {
	id, err := a.Names.LookupOrID(idOrName)
	if ae := names.IsAmbiguous(err); ae != nil {
		c.AbortWithStatusJSON(http.StatusConflict, Error{Error: ae.Error(), Candidates: NewPeopleRefs(ae.Candidates)})
		_ = c.Error(err)
		return "", false
	}
	return id, check(c, http.StatusNotFound, err)
}

func check(c *gin.Context, code int, err error) (ok bool) {
	if err != nil && !c.IsAborted() {
		if errors.Is(err, context.DeadlineExceeded) {
			code = http.StatusGatewayTimeout
		}
		c.AbortWithStatusJSON(code, c.Error(err).JSON())
		log.V(1).Info("abort request", "url", c.Request.URL, "code", code, "error", err.Error())
	}
	return err == nil && !c.IsAborted()
}
