package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-page-guard/internal/utils"
)

const (
	maxBodyBytes   = 1 << 20
	maxExportBytes = 16 << 20
)

// decodeJSON reads at most limit bytes of JSON from the request body into
// dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, limit int64, dst any) error {
	body := http.MaxBytesReader(w, r.Body, limit)
	if err := json.NewDecoder(body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidBody, err)
	}
	return nil
}

// callerID is the identifier attempt counters are keyed by for the
// authenticated caller.
func callerID(r *http.Request) string {
	userID, _ := utils.GetUserIDFromContext(r.Context())
	return strconv.FormatInt(userID, 10)
}
