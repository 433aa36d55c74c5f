// Package service contains dashboard report workflows
package service

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"folkarchive/internal/core/rank"
	perr "folkarchive/internal/platform/errors"
	"folkarchive/internal/platform/logger"
	tim "folkarchive/internal/platform/time"
	"folkarchive/internal/services/api/dashboard/domain"
	content "folkarchive/internal/services/content/domain"
)

// Limit bounds for the recent and top reports
const (
	DefaultLimit = 5
	MaxLimit     = 50
)

// Service defines the dashboard service contract
type Service interface {
	domain.ServicePort
}

// Config tunes the dashboard service
type Config struct {
	// SourceTimeout bounds each per domain source read
	SourceTimeout time.Duration
}

// Svc implements the dashboard service
type Svc struct {
	src     content.SourcePort
	timeout time.Duration
}

// New constructs a dashboard service over a content source port
func New(src content.SourcePort, cfg Config) *Svc {
	if src == nil {
		panic("dashboard.Service requires a non nil SourcePort")
	}
	t := cfg.SourceTimeout
	if t <= 0 {
		t = 30 * time.Second
	}
	return &Svc{src: src, timeout: t}
}

// Overview returns the per domain counts plus the user count
// the five counts fan out and any source failure fails the report
func (s *Svc) Overview(ctx context.Context) (domain.Overview, error) {
	var out domain.Overview

	g, gctx := errgroup.WithContext(ctx)
	count := func(kind content.Kind, dst *int64) {
		g.Go(func() error {
			cctx, cancel := context.WithTimeout(gctx, s.timeout)
			defer cancel()
			n, err := s.src.Count(cctx, kind)
			if err != nil {
				return err
			}
			*dst = n
			return nil
		})
	}
	count(content.KindTradition, &out.Traditions)
	count(content.KindPolicy, &out.PublicPolicies)
	count(content.KindEthnic, &out.EthnicGroups)
	count(content.KindCreative, &out.CreativeActivities)
	g.Go(func() error {
		cctx, cancel := context.WithTimeout(gctx, s.timeout)
		defer cancel()
		n, err := s.src.CountUsers(cctx)
		if err != nil {
			return err
		}
		out.Users = n
		return nil
	})

	if err := g.Wait(); err != nil {
		return domain.Overview{}, perr.Wrap(err, perr.ErrorCodeUnavailable, "content sources unavailable")
	}
	return out, nil
}

// Recent returns the limit most recent records merged across all four domains
// a failing domain contributes nothing; all four failing is Unavailable
func (s *Svc) Recent(ctx context.Context, limit int) ([]domain.ActivityRow, error) {
	limit = clampLimit(limit)
	kinds := content.Kinds()
	lists := make([][]rank.Entry, len(kinds))
	failed := make([]bool, len(kinds))

	g, gctx := errgroup.WithContext(ctx)
	for i, k := range kinds {
		g.Go(func() error {
			cctx, cancel := context.WithTimeout(gctx, s.timeout)
			defer cancel()
			recs, err := s.src.RecentByCreatedAt(cctx, k, limit)
			if err != nil {
				logger.C(ctx).Warn().Err(err).Str("kind", string(k)).Msg("dashboard: recent read degraded")
				failed[i] = true
				return nil
			}
			entries := make([]rank.Entry, 0, len(recs))
			for _, rec := range recs {
				entries = append(entries, rank.Entry{Name: rec.Name, Kind: string(rec.Kind), CreatedAt: rec.CreatedAt})
			}
			lists[i] = entries
			return nil
		})
	}
	_ = g.Wait()
	if allTrue(failed) {
		return nil, perr.Unavailablef("content sources unavailable")
	}

	merged := rank.MergeRecent(limit, lists...)
	out := make([]domain.ActivityRow, 0, len(merged))
	for _, e := range merged {
		out = append(out, domain.ActivityRow{
			Description: e.Name,
			Kind:        e.Kind,
			Date:        tim.Date(e.CreatedAt),
		})
	}
	return out, nil
}

// Top returns the limit globally highest viewed records across all four domains
func (s *Svc) Top(ctx context.Context, limit int) ([]domain.TopRow, error) {
	limit = clampLimit(limit)
	kinds := content.Kinds()
	lists := make([][]rank.Item, len(kinds))
	failed := make([]bool, len(kinds))

	g, gctx := errgroup.WithContext(ctx)
	for i, k := range kinds {
		g.Go(func() error {
			cctx, cancel := context.WithTimeout(gctx, s.timeout)
			defer cancel()
			recs, err := s.src.TopViewed(cctx, k, limit)
			if err != nil {
				logger.C(ctx).Warn().Err(err).Str("kind", string(k)).Msg("dashboard: top read degraded")
				failed[i] = true
				return nil
			}
			items := make([]rank.Item, 0, len(recs))
			for _, rec := range recs {
				items = append(items, rank.Item{Name: rec.Name, Kind: string(rec.Kind), Views: rec.Views})
			}
			lists[i] = items
			return nil
		})
	}
	_ = g.Wait()
	if allTrue(failed) {
		return nil, perr.Unavailablef("content sources unavailable")
	}

	merged := rank.MergeTop(limit, lists...)
	out := make([]domain.TopRow, 0, len(merged))
	for _, it := range merged {
		out = append(out, domain.TopRow{Name: it.Name, Type: it.Kind, ViewCount: it.Views})
	}
	return out, nil
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

func allTrue(bs []bool) bool {
	for _, b := range bs {
		if !b {
			return false
		}
	}
	return len(bs) > 0
}
