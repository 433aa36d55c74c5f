// Package service contains per user profile report workflows
package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"folkarchive/internal/core/trend"
	perr "folkarchive/internal/platform/errors"
	"folkarchive/internal/platform/logger"
	tim "folkarchive/internal/platform/time"
	"folkarchive/internal/services/api/profiles/domain"
	content "folkarchive/internal/services/content/domain"
)

// Service defines the profiles service contract
type Service interface {
	domain.ServicePort
}

// Config tunes the profiles service
type Config struct {
	// SourceTimeout bounds each per domain source read
	SourceTimeout time.Duration
}

// Svc implements the profiles service
type Svc struct {
	src     content.SourcePort
	timeout time.Duration
}

// New constructs a profiles service over a content source port
func New(src content.SourcePort, cfg Config) *Svc {
	if src == nil {
		panic("profiles.Service requires a non nil SourcePort")
	}
	t := cfg.SourceTimeout
	if t <= 0 {
		t = 30 * time.Second
	}
	return &Svc{src: src, timeout: t}
}

// Profile builds the per user report: owner summary, per domain activity
// lists, raw breakdown counts and the monthly trend over the merged set
// NotFound when the user does not exist; malformed ids are rejected first
func (s *Svc) Profile(ctx context.Context, userID string) (domain.Profile, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return domain.Profile{}, perr.InvalidArgf("user id must be a uuid")
	}

	uctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	user, err := s.src.UserSummary(uctx, userID)
	if err != nil {
		return domain.Profile{}, err
	}

	kinds := content.Kinds()
	owned := make([][]content.Record, len(kinds))
	failed := make([]bool, len(kinds))

	g, gctx := errgroup.WithContext(ctx)
	for i, k := range kinds {
		g.Go(func() error {
			cctx, cancel := context.WithTimeout(gctx, s.timeout)
			defer cancel()
			recs, err := s.src.OwnedBy(cctx, userID, k)
			if err != nil {
				logger.C(ctx).Warn().Err(err).Str("kind", string(k)).Msg("profiles: owned read degraded")
				failed[i] = true
				return nil
			}
			owned[i] = recs
			return nil
		})
	}
	_ = g.Wait()
	if allTrue(failed) {
		return domain.Profile{}, perr.Unavailablef("content sources unavailable")
	}

	byKind := make(map[content.Kind][]content.Record, len(kinds))
	var stamps []time.Time
	total := 0
	for i, k := range kinds {
		byKind[k] = owned[i]
		total += len(owned[i])
		for _, rec := range owned[i] {
			stamps = append(stamps, rec.CreatedAt)
		}
	}

	buckets := trend.Monthly(stamps)
	monthly := make([]domain.MonthlyBucket, 0, len(buckets))
	for _, b := range buckets {
		monthly = append(monthly, domain.MonthlyBucket{Label: b.Label, Count: b.Count})
	}

	return domain.Profile{
		User: domain.UserSummary{
			ID:       user.ID,
			Username: user.Username,
			FullName: user.FullName,
			Email:    user.Email,
			JoinedAt: tim.Date(user.CreatedAt),
		},
		Activities: domain.Activities{
			Traditions:         refs(byKind[content.KindTradition]),
			PublicPolicies:     refs(byKind[content.KindPolicy]),
			EthnicGroups:       refs(byKind[content.KindEthnic]),
			CreativeActivities: refs(byKind[content.KindCreative]),
		},
		Statistics: domain.Stats{
			TotalActivities: total,
			ActivityBreakdown: domain.Breakdown{
				Traditions:         len(byKind[content.KindTradition]),
				PublicPolicies:     len(byKind[content.KindPolicy]),
				EthnicGroups:       len(byKind[content.KindEthnic]),
				CreativeActivities: len(byKind[content.KindCreative]),
			},
			MonthlyActivities: monthly,
		},
	}, nil
}

func refs(recs []content.Record) []domain.ActivityRef {
	out := make([]domain.ActivityRef, 0, len(recs))
	for _, rec := range recs {
		out = append(out, domain.ActivityRef{
			ID:        rec.ID,
			Name:      rec.Name,
			Views:     rec.Views,
			CreatedAt: tim.Date(rec.CreatedAt),
		})
	}
	return out
}

func allTrue(bs []bool) bool {
	for _, b := range bs {
		if !b {
			return false
		}
	}
	return len(bs) > 0
}
