package handler

import (
	"net/http"

	"github.com/msomdec/atelier/internal/service"
)

// ApplianceHandler serves washing machine upkeep.
type ApplianceHandler struct {
	appliance *service.ApplianceService
}

// NewApplianceHandler creates a new ApplianceHandler.
func NewApplianceHandler(appliance *service.ApplianceService) *ApplianceHandler {
	return &ApplianceHandler{appliance: appliance}
}

// HandleStatus returns the machine's cycle counter.
// GET /api/appliance
func (h *ApplianceHandler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	status, err := h.appliance.Status(r.Context(), user.ID)
	if err != nil {
		writeServiceError(w, "get appliance status", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"appliance": toApplianceDTO(status)})
}

// HandleReset records a cleaning cycle.
// POST /api/appliance/reset
func (h *ApplianceHandler) HandleReset(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	status, err := h.appliance.Reset(r.Context(), user.ID)
	if err != nil {
		writeServiceError(w, "reset appliance", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"appliance": toApplianceDTO(status)})
}
