// Package service contains geography report workflows
package service

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"folkarchive/internal/core/geo"
	perr "folkarchive/internal/platform/errors"
	"folkarchive/internal/platform/logger"
	"folkarchive/internal/services/api/geo/domain"
	content "folkarchive/internal/services/content/domain"
)

// Service defines the geo service contract
type Service interface {
	domain.ServicePort
}

// Config tunes the geo service
type Config struct {
	// SourceTimeout bounds each per domain source read
	SourceTimeout time.Duration
}

// Svc implements the geo service
type Svc struct {
	src     content.SourcePort
	timeout time.Duration
}

// New constructs a geo service over a content source port
func New(src content.SourcePort, cfg Config) *Svc {
	if src == nil {
		panic("geo.Service requires a non nil SourcePort")
	}
	t := cfg.SourceTimeout
	if t <= 0 {
		t = 30 * time.Second
	}
	return &Svc{src: src, timeout: t}
}

// Atlas builds the combined geography dictionary across all content domains
// a failing domain contributes nothing; all four failing is Unavailable
func (s *Svc) Atlas(ctx context.Context) (domain.Atlas, error) {
	kinds := content.Kinds()
	lists := make([][]geo.Pair, len(kinds))
	failed := make([]bool, len(kinds))

	g, gctx := errgroup.WithContext(ctx)
	for i, k := range kinds {
		g.Go(func() error {
			cctx, cancel := context.WithTimeout(gctx, s.timeout)
			defer cancel()
			pairs, err := s.src.DistinctPairs(cctx, k)
			if err != nil {
				logger.C(ctx).Warn().Err(err).Str("kind", string(k)).Msg("geo: pair read degraded")
				failed[i] = true
				return nil
			}
			out := make([]geo.Pair, 0, len(pairs))
			for _, p := range pairs {
				out = append(out, geo.Pair{Region: p.Region, Province: p.Province})
			}
			lists[i] = out
			return nil
		})
	}
	_ = g.Wait()
	if allTrue(failed) {
		return domain.Atlas{}, perr.Unavailablef("content sources unavailable")
	}

	idx := geo.Build(lists...)
	return domain.Atlas{
		Regions:           idx.Regions,
		Provinces:         idx.Provinces,
		RegionProvinceMap: idx.ByRegion,
		Statistics: domain.Stats{
			TotalRegions:   len(idx.Regions),
			TotalProvinces: len(idx.Provinces),
			DataPoints:     idx.DataPoints(),
		},
	}, nil
}

func allTrue(bs []bool) bool {
	for _, b := range bs {
		if !b {
			return false
		}
	}
	return len(bs) > 0
}
