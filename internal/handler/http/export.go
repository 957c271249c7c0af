package http

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/MKhiriev/go-page-guard/internal/logger"
	"github.com/MKhiriev/go-page-guard/internal/packager"
	"github.com/MKhiriev/go-page-guard/models"
)

// createExport packages the page in the body and answers with the bundle as
// a zip archive.
func (h *Handler) createExport(w http.ResponseWriter, r *http.Request) {
	var req models.ExportRequest
	if err := decodeJSON(w, r, maxExportBytes, &req); err != nil {
		writeError(w, r, err)
		return
	}

	pkg, err := h.services.ExportService.Export(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var archive bytes.Buffer
	if err = packager.WriteZip(&archive, pkg, time.Now()); err != nil {
		writeError(w, r, fmt.Errorf("write export archive: %w", err))
		return
	}

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="page-%s.zip"`, pkg.ExportID))
	w.Header().Set("Content-Length", strconv.Itoa(archive.Len()))
	w.Header().Set("X-Export-ID", pkg.ExportID)
	w.WriteHeader(http.StatusCreated)

	if _, err = archive.WriteTo(w); err != nil {
		logger.FromRequest(r).Err(err).Str("export_id", pkg.ExportID).Msg("failed to send export archive")
	}
}
