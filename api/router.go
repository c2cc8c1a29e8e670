// Package api exposes maze generation over HTTP.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Controller registers a group of routes on the versioned API group.
type Controller interface {
	Register(*gin.RouterGroup)
}

// Router owns the gin engine and the controllers mounted on it.
type Router struct {
	addr   string
	engine *gin.Engine
}

// Config holds configuration settings for creating a new Router instance.
type Config struct {
	Addr        string // Address to listen on
	BaseURL     string // Base URL for API routes
	GinMode     string // gin mode; empty keeps the current mode
	Controllers []Controller
}

// NewRouter builds the gin engine and mounts every controller under
// {BaseURL}/v1.
func NewRouter(config Config) *Router {
	if config.GinMode != "" {
		gin.SetMode(config.GinMode)
	}
	engine := gin.New()
	engine.Use(gin.Logger(), gin.Recovery())

	api := engine.Group(config.BaseURL)
	{
		v1 := api.Group("/v1")
		for _, c := range config.Controllers {
			c.Register(v1)
		}
	}

	return &Router{
		addr:   config.Addr,
		engine: engine,
	}
}

// Handler exposes the engine, e.g. for httptest.
func (r *Router) Handler() http.Handler {
	return r.engine
}

// Run starts the HTTP server and blocks until it fails.
func (r *Router) Run() error {
	return r.engine.Run(r.addr)
}
