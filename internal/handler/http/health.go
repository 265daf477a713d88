package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-user-api/models"
)

type welcomeResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
}

func (h *Handler) index(w http.ResponseWriter, r *http.Request) error {
	return h.writeData(w, r, welcomeResponse{
		Message: "go-user-api is running",
		Version: h.cfg.App.Version,
	}, http.StatusOK)
}

// healthz is the liveness probe. It reports process health only and touches
// no dependencies, so a saturated database cannot fail the probe.
func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) error {
	return h.writeData(w, r, models.HealthResponse{
		OK: true,
		TS: time.Now().UnixMilli(),
	}, http.StatusOK)
}
