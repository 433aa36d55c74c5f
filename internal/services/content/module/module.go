// Package module wires the content source service and exposes its port
package module

import (
	"folkarchive/internal/modkit"
	"folkarchive/internal/modkit/httpkit"
	contentrepo "folkarchive/internal/services/content/repo"
	contentsvc "folkarchive/internal/services/content/service"
)

// Module defines the content source module
// it mounts no routes and exists only to publish the source port
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs the content source module
func New(deps modkit.Deps) *Module {
	svc := contentsvc.New(deps.PG, contentrepo.NewPG())

	m := &Module{deps: deps}
	m.ports = Ports{Source: svc}
	return m
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// Name returns the module name
func (m *Module) Name() string { return "content" }

// Prefix returns no route prefix for this port-only module
func (m *Module) Prefix() string { return "" }

// MountRoutes mounts no HTTP routes
func (m *Module) MountRoutes(_ httpkit.Router) {}
