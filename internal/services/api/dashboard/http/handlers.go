// Package http provides http transport for dashboard reports
package http

import (
	stdhttp "net/http"

	"folkarchive/internal/modkit/httpkit"
	"folkarchive/internal/platform/net/http/bind"
	"folkarchive/internal/services/api/dashboard/domain"
	svc "folkarchive/internal/services/api/dashboard/service"
)

// Register mounts dashboard endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// per domain counts plus user count
	httpkit.Get(r, "/overview", h.overview)

	// most recent records across all domains
	httpkit.Get(r, "/recent", h.recent)

	// globally ranked top viewed records
	httpkit.Get(r, "/top", h.top)
}

type handlers struct{ svc svc.Service }

// @Summary Per domain record counts and user count
// @Tags Dashboard
// @Produce json
// @Success 200 {object} domain.Overview "ok"
// @Failure 503 {object} errors.Wire "content sources unavailable"
// @Router /dashboard/overview [get]
func (h *handlers) overview(r *stdhttp.Request) (any, error) {
	return h.svc.Overview(r.Context())
}

// @Summary Most recent records across all domains
// @Tags Dashboard
// @Produce json
// @Param limit query int false "Row limit (default 5, max 50)"
// @Success 200 {array} domain.ActivityRow "ok"
// @Failure 400 {object} errors.Wire "invalid limit"
// @Router /dashboard/recent [get]
func (h *handlers) recent(r *stdhttp.Request) (any, error) {
	q, err := bind.ParseQuery[domain.ListQuery](r)
	if err != nil {
		return nil, err
	}
	return h.svc.Recent(r.Context(), q.Limit)
}

// @Summary Globally ranked top viewed records
// @Tags Dashboard
// @Produce json
// @Param limit query int false "Row limit (default 5, max 50)"
// @Success 200 {array} domain.TopRow "ok"
// @Failure 400 {object} errors.Wire "invalid limit"
// @Router /dashboard/top [get]
func (h *handlers) top(r *stdhttp.Request) (any, error) {
	q, err := bind.ParseQuery[domain.ListQuery](r)
	if err != nil {
		return nil, err
	}
	return h.svc.Top(r.Context(), q.Limit)
}
