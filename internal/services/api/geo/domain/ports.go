package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Atlas(ctx context.Context) (Atlas, error)
}
