package handler

import (
	"log/slog"
	"net/http"

	"github.com/starfederation/datastar-go/datastar"

	"github.com/msomdec/atelier/internal/domain"
	"github.com/msomdec/atelier/internal/service"
	"github.com/msomdec/atelier/internal/view"
)

// LaundryHandler handles wash session HTTP requests.
type LaundryHandler struct {
	laundry *service.LaundryService
}

// NewLaundryHandler creates a new LaundryHandler.
func NewLaundryHandler(laundry *service.LaundryService) *LaundryHandler {
	return &LaundryHandler{laundry: laundry}
}

// HandleList returns the user's sessions.
// GET /api/sessions
func (h *LaundryHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	sessions, err := h.laundry.List(r.Context(), user.ID)
	if err != nil {
		writeServiceError(w, "list wash sessions", err)
		return
	}

	dtos := make([]WashSessionDTO, len(sessions))
	for i := range sessions {
		dtos[i] = toWashSessionDTO(&sessions[i])
	}
	writeJSON(w, http.StatusOK, map[string]any{"sessions": dtos})
}

// HandleCreate starts a wash session.
// POST /api/sessions
// Request:  {"bin":"delicate","garmentIds":[1,2]}
func (h *LaundryHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	var req struct {
		Bin        domain.LaundryBin `json:"bin"`
		GarmentIDs []int64           `json:"garmentIds"`
	}
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	session, err := h.laundry.Create(r.Context(), user.ID, req.Bin, req.GarmentIDs)
	if err != nil {
		writeServiceError(w, "create wash session", err)
		return
	}
	slog.Info("wash session created", "session_id", session.ID, "bin", session.Bin, "garments", len(session.Garments))
	writeJSON(w, http.StatusCreated, map[string]any{"session": toWashSessionDTO(session)})
}

// HandleGet returns one session.
// GET /api/sessions/{id}
func (h *LaundryHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid session id.")
		return
	}

	session, err := h.laundry.Get(r.Context(), user.ID, id)
	if err != nil {
		writeServiceError(w, "get wash session", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"session": toWashSessionDTO(session)})
}

// HandleDelete removes a session.
// DELETE /api/sessions/{id}
func (h *LaundryHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid session id.")
		return
	}

	if err := h.laundry.Delete(r.Context(), user.ID, id); err != nil {
		writeServiceError(w, "delete wash session", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleAddGarment adds a garment and returns the recalculated session.
// POST /api/sessions/{id}/garments
// Request:  {"garmentId":3}
func (h *LaundryHandler) HandleAddGarment(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid session id.")
		return
	}

	var req struct {
		GarmentID int64 `json:"garmentId"`
	}
	if err := readJSON(w, r, &req); err != nil || req.GarmentID <= 0 {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	session, err := h.laundry.AddGarment(r.Context(), user.ID, id, req.GarmentID)
	if err != nil {
		writeServiceError(w, "add garment to session", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"session": toWashSessionDTO(session)})
}

// HandleRemoveGarment removes a garment and returns the recalculated session.
// DELETE /api/sessions/{id}/garments/{garmentID}
func (h *LaundryHandler) HandleRemoveGarment(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	id, ok := pathID(r, "id")
	garmentID, gok := pathID(r, "garmentID")
	if !ok || !gok {
		writeError(w, http.StatusBadRequest, "Invalid id.")
		return
	}

	session, err := h.laundry.RemoveGarment(r.Context(), user.ID, id, garmentID)
	if err != nil {
		writeServiceError(w, "remove garment from session", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"session": toWashSessionDTO(session)})
}

// HandleAdvance moves the session to its next status.
// POST /api/sessions/{id}/advance
func (h *LaundryHandler) HandleAdvance(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid session id.")
		return
	}

	session, err := h.laundry.Advance(r.Context(), user.ID, id)
	if err != nil {
		writeServiceError(w, "advance wash session", err)
		return
	}
	slog.Info("wash session advanced", "session_id", session.ID, "status", session.Status)
	writeJSON(w, http.StatusOK, map[string]any{"session": toWashSessionDTO(session)})
}

// HandlePlan streams the plan fragment as a datastar patch.
// GET /api/sessions/{id}/plan
func (h *LaundryHandler) HandlePlan(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid session id.")
		return
	}

	session, err := h.laundry.Get(r.Context(), user.ID, id)
	if err != nil {
		writeServiceError(w, "get wash session", err)
		return
	}

	sse := datastar.NewSSE(w, r)
	if err := sse.PatchElementTempl(
		view.WashPlanFragment(session),
		datastar.WithSelectorID(view.WashPlanFragmentID),
	); err != nil {
		slog.Error("patch wash plan", "error", err)
	}
}
