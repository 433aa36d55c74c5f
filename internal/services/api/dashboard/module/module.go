// Package module wires dashboard into the API using modkit
package module

import (
	"net/http"

	modkit "folkarchive/internal/modkit"
	"folkarchive/internal/modkit/httpkit"
	str "folkarchive/internal/platform/strings"
	dhttp "folkarchive/internal/services/api/dashboard/http"
	dsvc "folkarchive/internal/services/api/dashboard/service"
	content "folkarchive/internal/services/content/domain"
)

// Module implements the dashboard module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc dsvc.Service
}

// Ports declares the injected content source port this module requires
type Ports struct {
	Source content.SourcePort
}

// New constructs the dashboard module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("dashboard"),
		modkit.WithPrefix("/dashboard"),
	}, opts...)...)

	var injected Ports
	if p, ok := b.Ports.(Ports); ok {
		injected = p
	}
	if injected.Source == nil {
		panic("dashboard module requires Source port (from services/content)")
	}

	cfg := FromConfig(deps.Cfg)
	svc := dsvc.New(injected.Source, dsvc.Config{SourceTimeout: cfg.SourceTimeout})

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = adaptDashboardPort{svc: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		dhttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }
