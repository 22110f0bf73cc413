// Copyright: This file is part of degrees, released under https://github.com/sixdegrees/degrees/blob/main/LICENSE

package rest

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader carries the request id, generated if the client does not send one.
const RequestIDHeader = "X-Request-Id"

// logger is a Gin handler to log requests.
func (a *API) logger(c *gin.Context) {
	id := c.GetHeader(RequestIDHeader)
	if id == "" {
		id = uuid.NewString()
	}
	c.Header(RequestIDHeader, id)
	start := time.Now()
	defer func() {
		log := log.WithValues(
			"request", id,
			"method", c.Request.Method,
			"url", c.Request.URL,
			"from", c.Request.RemoteAddr,
			"status", c.Writer.Status(),
			"latency", time.Since(start))
		if len(c.Errors) > 0 {
			log = log.WithValues("errors", c.Errors.Errors())
		}
		if c.Writer.Status() >= 500 {
			log.Info("request failed")
		} else {
			log.V(2).Info("request OK")
		}
	}()
	c.Next()
}
