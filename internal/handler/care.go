package handler

import (
	"log/slog"
	"net/http"

	"github.com/msomdec/atelier/internal/domain"
	"github.com/msomdec/atelier/internal/metrics"
	"github.com/msomdec/atelier/internal/service"
)

// maxLabelsPerRequest bounds a single normalization batch.
const maxLabelsPerRequest = 64

// CareHandler serves the care symbol catalog, label normalization and color classification.
type CareHandler struct {
	metrics *metrics.Metrics
}

// NewCareHandler creates a new CareHandler. m may be nil.
func NewCareHandler(m *metrics.Metrics) *CareHandler {
	return &CareHandler{metrics: m}
}

// HandleSymbols lists the catalog.
// GET /api/care/symbols
func (h *CareHandler) HandleSymbols(w http.ResponseWriter, r *http.Request) {
	dtos := make([]CareSymbolDTO, len(domain.CareSymbols))
	for i, s := range domain.CareSymbols {
		dtos[i] = toCareSymbolDTO(s)
	}
	writeJSON(w, http.StatusOK, map[string]any{"symbols": dtos})
}

// HandleNormalize maps recognizer labels onto catalog symbols.
// POST /api/care/normalize
// Request:  {"labels":["30C","DN_wash","steam"]}
// Response: {"symbols":[...], "unmapped":["steam"]}
func (h *CareHandler) HandleNormalize(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Labels []string `json:"labels"`
	}
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	if len(req.Labels) > maxLabelsPerRequest {
		writeError(w, http.StatusUnprocessableEntity, "Too many labels.")
		return
	}

	symbols, unmapped := service.NormalizeCareLabels(req.Labels)
	missed := countUnmapped(req.Labels, unmapped)
	h.metrics.RecordCareLabels(len(req.Labels)-missed, missed)
	if len(unmapped) > 0 {
		slog.Debug("unmapped care labels", "labels", unmapped)
	}

	dtos := make([]CareSymbolDTO, len(symbols))
	for i, s := range symbols {
		dtos[i] = toCareSymbolDTO(s)
	}
	if unmapped == nil {
		unmapped = []string{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"symbols": dtos, "unmapped": unmapped})
}

// countUnmapped counts input labels, duplicates included, that had no mapping.
func countUnmapped(labels, unmapped []string) int {
	if len(unmapped) == 0 {
		return 0
	}
	miss := make(map[string]bool, len(unmapped))
	for _, u := range unmapped {
		miss[u] = true
	}
	n := 0
	for _, l := range labels {
		if miss[l] {
			n++
		}
	}
	return n
}

// HandleColor classifies a hex color into its laundering group.
// GET /api/care/color?hex=%23FAFAFA
func (h *CareHandler) HandleColor(w http.ResponseWriter, r *http.Request) {
	hex := r.URL.Query().Get("hex")
	normalized, valid := domain.NormalizeHex(hex)
	group := domain.ClassifyColor(hex)

	writeJSON(w, http.StatusOK, map[string]any{
		"hex":   normalized,
		"valid": valid,
		"group": group,
		"label": group.Label(),
	})
}
