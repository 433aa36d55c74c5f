// Package service implements the content source port on top of the repo
package service

import (
	"context"

	"folkarchive/internal/modkit/repokit"
	perr "folkarchive/internal/platform/errors"
	"folkarchive/internal/services/content/domain"
	"folkarchive/internal/services/content/repo"
)

// Service defines the content source contract
type Service interface {
	domain.SourcePort
}

// Svc implements the content source port
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
}

// New constructs a content source service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Svc {
	if db == nil {
		panic("content.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("content.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db}
}

// Count returns the number of rows in one content domain
func (s *Svc) Count(ctx context.Context, kind domain.Kind) (int64, error) {
	if !kind.Valid() {
		return 0, perr.InvalidArgf("unknown content kind %q", string(kind))
	}
	return s.Repo.Count(ctx, kind)
}

// CountUsers returns the number of registered users
func (s *Svc) CountUsers(ctx context.Context) (int64, error) {
	return s.Repo.CountUsers(ctx)
}

// TopViewed returns up to limit records of one domain ordered by views desc
func (s *Svc) TopViewed(ctx context.Context, kind domain.Kind, limit int) ([]domain.Record, error) {
	if !kind.Valid() {
		return nil, perr.InvalidArgf("unknown content kind %q", string(kind))
	}
	if limit <= 0 {
		return nil, nil
	}
	return s.Repo.TopViewed(ctx, kind, limit)
}

// RecentByCreatedAt returns up to limit records of one domain newest first
func (s *Svc) RecentByCreatedAt(ctx context.Context, kind domain.Kind, limit int) ([]domain.Record, error) {
	if !kind.Valid() {
		return nil, perr.InvalidArgf("unknown content kind %q", string(kind))
	}
	if limit <= 0 {
		return nil, nil
	}
	return s.Repo.RecentByCreatedAt(ctx, kind, limit)
}

// DistinctPairs returns the distinct non empty (region, province) pairs of one domain
func (s *Svc) DistinctPairs(ctx context.Context, kind domain.Kind) ([]domain.Pair, error) {
	if !kind.Valid() {
		return nil, perr.InvalidArgf("unknown content kind %q", string(kind))
	}
	return s.Repo.DistinctPairs(ctx, kind)
}

// OwnedBy returns the records of one domain owned by a user, newest first
func (s *Svc) OwnedBy(ctx context.Context, userID string, kind domain.Kind) ([]domain.Record, error) {
	if !kind.Valid() {
		return nil, perr.InvalidArgf("unknown content kind %q", string(kind))
	}
	return s.Repo.OwnedBy(ctx, userID, kind)
}

// UserSummary returns the user row or NotFound when absent
func (s *Svc) UserSummary(ctx context.Context, userID string) (domain.User, error) {
	return s.Repo.UserSummary(ctx, userID)
}
