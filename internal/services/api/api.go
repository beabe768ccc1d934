// Package api provides the HTTP API for the application
package api

import (
	"peopledex/internal/platform/config"
	"peopledex/internal/platform/logger"
	"peopledex/internal/platform/metrics"
	phttp "peopledex/internal/platform/net/http"
	"peopledex/internal/platform/store"

	"peopledex/internal/modkit"
	"peopledex/internal/modkit/httpkit"
	"peopledex/internal/modkit/module"
	"peopledex/internal/modkit/swaggerkit"

	metamod "peopledex/internal/services/meta/module"
	peoplemod "peopledex/internal/services/people/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	Metrics        *metrics.Metrics
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
// routes sit at the root, the wire contract has no version prefix
func Mount(r phttp.Router, opt Options) {
	deps := modkit.Deps{
		Cfg:     opt.Config,
		Metrics: opt.Metrics,
	}
	if opt.Store != nil {
		deps.PG = opt.Store.PG
	}

	mods := []module.Module{
		metamod.New(deps),
		peoplemod.New(deps),
	}

	for _, mw := range httpkit.CommonStack() {
		r.Use(mw)
	}
	if opt.Metrics != nil {
		r.Use(opt.Metrics.Middleware())
		r.Handle("/metrics", metrics.Handler())
	}

	swaggerkit.Mount(r, opt.EnableSwagger)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

	for _, m := range mods {
		// register each module's ports under its own name for cross-module lookups
		module.Register(m.Name(), m.Ports())
		m.MountRoutes(r)
	}
}
