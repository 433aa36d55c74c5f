// Package domain holds the content source contracts consumed by report modules
package domain

import (
	"context"
	"time"
)

// Kind identifies one of the four content domains
type Kind string

// The four content domains served by the platform
const (
	KindTradition Kind = "tradition"
	KindPolicy    Kind = "policy"
	KindEthnic    Kind = "ethnic"
	KindCreative  Kind = "creative"
)

// Kinds returns every content domain in canonical order
func Kinds() []Kind {
	return []Kind{KindTradition, KindPolicy, KindEthnic, KindCreative}
}

// Valid reports whether k names a known content domain
func (k Kind) Valid() bool {
	switch k {
	case KindTradition, KindPolicy, KindEthnic, KindCreative:
		return true
	}
	return false
}

// Record is the uniform read shape for a content row of any domain
// Region carries the domain's free text classification value
type Record struct {
	ID        string
	Name      string
	Kind      Kind
	Region    string
	Province  string
	Views     int64
	CreatedAt time.Time
	OwnerID   string
}

// Pair is the (region, province) projection of a record
type Pair struct {
	Region   string
	Province string
}

// User is the owner summary joined to content records
type User struct {
	ID        string
	Username  string
	FullName  string
	Email     string
	CreatedAt time.Time
}

// SourcePort is the uniform read-only accessor over the four domain tables
// plus users; every method is side effect free
type SourcePort interface {
	Count(ctx context.Context, kind Kind) (int64, error)
	CountUsers(ctx context.Context) (int64, error)
	TopViewed(ctx context.Context, kind Kind, limit int) ([]Record, error)
	RecentByCreatedAt(ctx context.Context, kind Kind, limit int) ([]Record, error)
	DistinctPairs(ctx context.Context, kind Kind) ([]Pair, error)
	OwnedBy(ctx context.Context, userID string, kind Kind) ([]Record, error)
	UserSummary(ctx context.Context, userID string) (User, error)
}
