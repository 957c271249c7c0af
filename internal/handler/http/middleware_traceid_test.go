package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-page-guard/internal/logger"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithTraceID(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		reused   bool
	}{
		{name: "incoming uuid is reused", incoming: "0b9e4c1e-5f7a-4d2b-9c3e-8a1f2b3c4d5e", reused: true},
		{name: "missing id is generated", incoming: ""},
		{name: "non-uuid id is replaced", incoming: "my-custom-trace-id\ninjected"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := &Handler{logger: logger.New(&buf, "test", "debug")}

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				logger.FromRequest(r).Info().Msg("inside")
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.incoming != "" {
				req.Header.Set(traceIDHeader, tt.incoming)
			}
			rr := httptest.NewRecorder()

			h.withTraceID(next).ServeHTTP(rr, req)

			got := rr.Header().Get(traceIDHeader)
			require.NotEmpty(t, got)
			if tt.reused {
				assert.Equal(t, tt.incoming, got)
			} else {
				assert.NotEqual(t, tt.incoming, got)
				_, err := uuid.Parse(got)
				assert.NoError(t, err)
			}
			assert.Contains(t, buf.String(), `"trace_id":"`+got+`"`)
		})
	}
}

func TestWithTraceID_UniquePerRequest(t *testing.T) {
	h := newTestHandler()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	seen := make(map[string]struct{})
	for range 50 {
		rr := httptest.NewRecorder()
		h.withTraceID(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
		seen[rr.Header().Get(traceIDHeader)] = struct{}{}
	}

	assert.Len(t, seen, 50)
}
