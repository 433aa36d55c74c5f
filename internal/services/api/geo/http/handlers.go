// Package http provides http transport for geography reports
package http

import (
	stdhttp "net/http"

	"folkarchive/internal/modkit/httpkit"
	svc "folkarchive/internal/services/api/geo/service"
)

// Register mounts geo endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// both routes serve the same combined dictionary
	httpkit.Get(r, "/regions", h.atlas)
	httpkit.Get(r, "/locations", h.atlas)
}

type handlers struct{ svc svc.Service }

// @Summary Combined region and province dictionary
// @Tags Geo
// @Produce json
// @Success 200 {object} domain.Atlas "ok"
// @Failure 503 {object} errors.Wire "content sources unavailable"
// @Router /geo/regions [get]
func (h *handlers) atlas(r *stdhttp.Request) (any, error) {
	return h.svc.Atlas(r.Context())
}
