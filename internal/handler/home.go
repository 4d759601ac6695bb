package handler

import (
	"log/slog"
	"net/http"

	"github.com/msomdec/atelier/internal/view"
)

// HandleHome renders the care symbol reference page.
func HandleHome(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	displayName := ""
	if user := UserFromContext(r.Context()); user != nil {
		displayName = user.DisplayName
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := view.HomePage(displayName).Render(r.Context(), w); err != nil {
		slog.Error("render home", "error", err)
	}
}
