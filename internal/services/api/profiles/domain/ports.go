package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Profile(ctx context.Context, userID string) (Profile, error)
}
