package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Overview(ctx context.Context) (Overview, error)
	Recent(ctx context.Context, limit int) ([]ActivityRow, error)
	Top(ctx context.Context, limit int) ([]TopRow, error)
}
