package handler

import (
	"fmt"
	"net/http"

	"github.com/pkordes/family-trip/backend/internal/middleware"
)

// GetExport implements GET /admin/export.
// Without ?type it returns every available block as a JSON array of
// {type, filename, content}. With ?type it streams that block as text/csv.
func (s *Server) GetExport(w http.ResponseWriter, r *http.Request) {
	id, _ := middleware.SessionID(r.Context())

	kind := r.URL.Query().Get("type")
	if kind == "" {
		files, err := s.admin.Export(id)
		if err != nil {
			s.writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, files)
		return
	}

	file, err := s.admin.ExportFile(id, kind)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
	w.WriteHeader(http.StatusOK)
	//nolint:errcheck
	w.Write([]byte(file.Content))
}
