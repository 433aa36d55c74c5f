package module

import (
	"context"

	"folkarchive/internal/services/api/dashboard/domain"
	dsvc "folkarchive/internal/services/api/dashboard/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptDashboardPort struct{ svc dsvc.Service }

// Overview returns per domain counts plus the user count
func (a adaptDashboardPort) Overview(ctx context.Context) (domain.Overview, error) {
	return a.svc.Overview(ctx)
}

// Recent returns the most recent records merged across all domains
func (a adaptDashboardPort) Recent(ctx context.Context, limit int) ([]domain.ActivityRow, error) {
	return a.svc.Recent(ctx, limit)
}

// Top returns the globally ranked top viewed records
func (a adaptDashboardPort) Top(ctx context.Context, limit int) ([]domain.TopRow, error) {
	return a.svc.Top(ctx, limit)
}
