// Package api provides the HTTP API for the application
package api

import (
	"folkarchive/internal/platform/config"
	"folkarchive/internal/platform/logger"
	phttp "folkarchive/internal/platform/net/http"
	"folkarchive/internal/platform/net/middleware"
	"folkarchive/internal/platform/store"

	"folkarchive/internal/modkit"
	"folkarchive/internal/modkit/httpkit"
	"folkarchive/internal/modkit/module"
	"folkarchive/internal/modkit/swaggerkit"

	dashboardmod "folkarchive/internal/services/api/dashboard/module"
	geomod "folkarchive/internal/services/api/geo/module"
	metamod "folkarchive/internal/services/api/meta/module"
	profilesmod "folkarchive/internal/services/api/profiles/module"

	// Content source module (owns the Source port)
	contentmod "folkarchive/internal/services/content/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
	EnableMetrics  bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg: opt.Config,
		PG:  opt.Store.PG,
	}

	// Construct the content module first and extract its Source port
	contentModule := contentmod.New(deps)
	src := module.MustPortsOf[contentmod.Ports](contentModule).Source

	// Inject that Source into every report module
	dashboard := dashboardmod.New(deps, modkit.WithPorts(dashboardmod.Ports{Source: src}))
	geo := geomod.New(deps, modkit.WithPorts(geomod.Ports{Source: src}))
	profiles := profilesmod.New(deps, modkit.WithPorts(profilesmod.Ports{Source: src}))

	mods := []module.Module{
		metamod.New(deps),
		contentModule, // include content so its port is registered
		dashboard,
		geo,
		profiles,
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		// Swagger + profiler + metrics
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)
		if opt.EnableMetrics {
			r.Handle("/metrics", middleware.MetricsHandler())
		}

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}
