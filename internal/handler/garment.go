package handler

import (
	"net/http"

	"github.com/msomdec/atelier/internal/service"
)

// GarmentHandler handles closet HTTP requests.
type GarmentHandler struct {
	garments *service.GarmentService
}

// NewGarmentHandler creates a new GarmentHandler.
func NewGarmentHandler(garments *service.GarmentService) *GarmentHandler {
	return &GarmentHandler{garments: garments}
}

// HandleList returns the user's garments.
// GET /api/garments
func (h *GarmentHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	garments, err := h.garments.List(r.Context(), user.ID)
	if err != nil {
		writeServiceError(w, "list garments", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"garments": toGarmentDTOs(garments)})
}

// HandleCreate adds a garment.
// POST /api/garments
func (h *GarmentHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	var in service.GarmentInput
	if err := readJSON(w, r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	g, err := h.garments.Create(r.Context(), user.ID, in)
	if err != nil {
		writeServiceError(w, "create garment", err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"garment": toGarmentDTO(g)})
}

// HandleGet returns one garment.
// GET /api/garments/{id}
func (h *GarmentHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid garment id.")
		return
	}

	g, err := h.garments.Get(r.Context(), user.ID, id)
	if err != nil {
		writeServiceError(w, "get garment", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"garment": toGarmentDTO(g)})
}

// HandleUpdate replaces a garment's editable fields.
// PUT /api/garments/{id}
func (h *GarmentHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid garment id.")
		return
	}

	var in service.GarmentInput
	if err := readJSON(w, r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	g, err := h.garments.Update(r.Context(), user.ID, id, in)
	if err != nil {
		writeServiceError(w, "update garment", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"garment": toGarmentDTO(g)})
}

// HandleDelete removes a garment.
// DELETE /api/garments/{id}
func (h *GarmentHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid garment id.")
		return
	}

	if err := h.garments.Delete(r.Context(), user.ID, id); err != nil {
		writeServiceError(w, "delete garment", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleBin returns the suggested laundry bin for a garment.
// GET /api/garments/{id}/bin
func (h *GarmentHandler) HandleBin(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid garment id.")
		return
	}

	g, bin, err := h.garments.SuggestBin(r.Context(), user.ID, id)
	if err != nil {
		writeServiceError(w, "suggest bin", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"garmentId":        g.ID,
		"bin":              toBinDTO(bin),
		"delicatePriority": service.IsDelicatePriority(g),
	})
}

// HandleBins groups the user's washable garments by suggested bin.
// GET /api/garments/bins
func (h *GarmentHandler) HandleBins(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	groups, err := h.garments.Bins(r.Context(), user.ID)
	if err != nil {
		writeServiceError(w, "group garments by bin", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"bins": toBinGroupDTOs(groups)})
}
