// Package http provides http transport for profile reports
package http

import (
	stdhttp "net/http"

	"github.com/go-chi/chi/v5"

	"folkarchive/internal/modkit/httpkit"
	svc "folkarchive/internal/services/api/profiles/service"
)

// Register mounts profile endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.Get(r, "/{userID}", h.profile)
}

type handlers struct{ svc svc.Service }

// @Summary Per user activity profile
// @Tags Profiles
// @Produce json
// @Param userID path string true "User id (uuid)"
// @Success 200 {object} domain.Profile "ok"
// @Failure 404 {object} errors.Wire "user not found"
// @Failure 422 {object} errors.Wire "malformed user id"
// @Router /profiles/{userID} [get]
func (h *handlers) profile(r *stdhttp.Request) (any, error) {
	return h.svc.Profile(r.Context(), chi.URLParam(r, "userID"))
}
