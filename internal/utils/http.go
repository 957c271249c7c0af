package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON writes data as a JSON body with the given status. When data
// cannot be encoded the client gets a plain 500 and the encoding error is
// returned.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	body, err := json.Marshal(data)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return 0, fmt.Errorf("encode JSON response: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(body)
}
