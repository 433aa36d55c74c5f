package module

import (
	"context"

	"folkarchive/internal/services/api/geo/domain"
	gsvc "folkarchive/internal/services/api/geo/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptGeoPort struct{ svc gsvc.Service }

// Atlas returns the combined geography dictionary
func (a adaptGeoPort) Atlas(ctx context.Context) (domain.Atlas, error) {
	return a.svc.Atlas(ctx)
}
