// Package repo provides postgres access for the content source tables
package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"folkarchive/internal/modkit/repokit"
	perr "folkarchive/internal/platform/errors"
	"folkarchive/internal/services/content/domain"
)

// Repo is the read-only persistence surface over the content tables
type Repo interface {
	Count(ctx context.Context, kind domain.Kind) (int64, error)
	CountUsers(ctx context.Context) (int64, error)
	TopViewed(ctx context.Context, kind domain.Kind, limit int) ([]domain.Record, error)
	RecentByCreatedAt(ctx context.Context, kind domain.Kind, limit int) ([]domain.Record, error)
	DistinctPairs(ctx context.Context, kind domain.Kind) ([]domain.Pair, error)
	OwnedBy(ctx context.Context, userID string, kind domain.Kind) ([]domain.Record, error)
	UserSummary(ctx context.Context, userID string) (domain.User, error)
}

type (
	// PG is a binder that can bind the repo to a Queryer or TxRunner
	PG struct{}
	// queries implements the Repo interface
	queries struct{ q repokit.Queryer }
)

// NewPG returns a binder that can bind the repo to a Queryer or TxRunner
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind wires a Queryer to the repo
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

// table maps a kind to its table name
// identifiers come from this fixed table only, never from request input
func table(kind domain.Kind) (string, error) {
	switch kind {
	case domain.KindTradition:
		return "traditions", nil
	case domain.KindPolicy:
		return "public_policies", nil
	case domain.KindEthnic:
		return "ethnic_groups", nil
	case domain.KindCreative:
		return "creative_activities", nil
	}
	return "", perr.InvalidArgf("unknown content kind %q", string(kind))
}

func (r *queries) Count(ctx context.Context, kind domain.Kind) (int64, error) {
	tbl, err := table(kind)
	if err != nil {
		return 0, err
	}
	var n int64
	if err := r.q.QueryRow(ctx, fmt.Sprintf(`select count(1) from %s`, tbl)).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *queries) CountUsers(ctx context.Context) (int64, error) {
	var n int64
	if err := r.q.QueryRow(ctx, `select count(1) from users`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *queries) TopViewed(ctx context.Context, kind domain.Kind, limit int) ([]domain.Record, error) {
	tbl, err := table(kind)
	if err != nil {
		return nil, err
	}
	sql := fmt.Sprintf(`
select id::text, name, region, province, views, created_at, owner_id::text
from %s
order by views desc, created_at desc
limit $1
`, tbl)
	return r.records(ctx, kind, sql, limit)
}

func (r *queries) RecentByCreatedAt(ctx context.Context, kind domain.Kind, limit int) ([]domain.Record, error) {
	tbl, err := table(kind)
	if err != nil {
		return nil, err
	}
	sql := fmt.Sprintf(`
select id::text, name, region, province, views, created_at, owner_id::text
from %s
order by created_at desc
limit $1
`, tbl)
	return r.records(ctx, kind, sql, limit)
}

func (r *queries) DistinctPairs(ctx context.Context, kind domain.Kind) ([]domain.Pair, error) {
	tbl, err := table(kind)
	if err != nil {
		return nil, err
	}
	sql := fmt.Sprintf(`
select distinct region, province
from %s
where region <> '' or province <> ''
`, tbl)
	rows, err := r.q.Query(ctx, sql)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []domain.Pair
	for rows.Next() {
		var p domain.Pair
		if err := rows.Scan(&p.Region, &p.Province); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *queries) OwnedBy(ctx context.Context, userID string, kind domain.Kind) ([]domain.Record, error) {
	tbl, err := table(kind)
	if err != nil {
		return nil, err
	}
	sql := fmt.Sprintf(`
select id::text, name, region, province, views, created_at, owner_id::text
from %s
where owner_id = $1
order by created_at desc
`, tbl)
	return r.records(ctx, kind, sql, userID)
}

func (r *queries) UserSummary(ctx context.Context, userID string) (domain.User, error) {
	const sql = `
select id::text, username, full_name, email, created_at
from users
where id = $1
`
	var u domain.User
	err := r.q.QueryRow(ctx, sql, userID).Scan(&u.ID, &u.Username, &u.FullName, &u.Email, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, perr.NotFoundf("user %s not found", userID)
		}
		return domain.User{}, err
	}
	return u, nil
}

// records runs a row query and scans the uniform record shape
func (r *queries) records(ctx context.Context, kind domain.Kind, sql string, args ...any) ([]domain.Record, error) {
	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []domain.Record
	for rows.Next() {
		rec := domain.Record{Kind: kind}
		if err := rows.Scan(&rec.ID, &rec.Name, &rec.Region, &rec.Province, &rec.Views, &rec.CreatedAt, &rec.OwnerID); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
