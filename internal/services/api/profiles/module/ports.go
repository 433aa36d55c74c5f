package module

import (
	"context"

	"folkarchive/internal/services/api/profiles/domain"
	psvc "folkarchive/internal/services/api/profiles/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptProfilesPort struct{ svc psvc.Service }

// Profile returns the per user activity report
func (a adaptProfilesPort) Profile(ctx context.Context, userID string) (domain.Profile, error) {
	return a.svc.Profile(ctx, userID)
}
