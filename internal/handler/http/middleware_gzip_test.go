// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gzipBytes(t *testing.T, data []byte) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write(data)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return &buf
}

func gunzip(t *testing.T, r io.Reader) string {
	t.Helper()
	zr, err := gzip.NewReader(r)
	require.NoError(t, err)
	defer zr.Close()
	out, err := io.ReadAll(zr)
	require.NoError(t, err)
	return string(out)
}

func writeTyped(contentType, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(body))
	}
}

func TestGZip_Response(t *testing.T) {
	tests := []struct {
		name           string
		acceptEncoding string
		contentType    string
		wantGzip       bool
	}{
		{name: "json with gzip accepted", acceptEncoding: "gzip", contentType: "application/json", wantGzip: true},
		{name: "text with quality values", acceptEncoding: "gzip;q=1.0, identity;q=0.5", contentType: "text/plain", wantGzip: true},
		{name: "javascript among several encodings", acceptEncoding: "deflate, gzip, br", contentType: "application/javascript", wantGzip: true},
		{name: "client does not accept gzip", acceptEncoding: "", contentType: "application/json", wantGzip: false},
		{name: "zip archive passes through", acceptEncoding: "gzip", contentType: "application/zip", wantGzip: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := strings.Repeat(`{"k":"v"}`, 200)
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.acceptEncoding != "" {
				req.Header.Set("Accept-Encoding", tt.acceptEncoding)
			}
			rr := httptest.NewRecorder()

			withGZip(writeTyped(tt.contentType, body)).ServeHTTP(rr, req)

			require.Equal(t, http.StatusOK, rr.Code)
			if tt.wantGzip {
				assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
				assert.Equal(t, body, gunzip(t, rr.Body))
				assert.Less(t, rr.Body.Len(), len(body))
			} else {
				assert.Empty(t, rr.Header().Get("Content-Encoding"))
				assert.Equal(t, body, rr.Body.String())
			}
		})
	}
}

func TestGZip_ImplicitHeaderSniffsContentType(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()

	withGZip(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("plain words"))
	})).ServeHTTP(rr, req)

	assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
	assert.Equal(t, "plain words", gunzip(t, rr.Body))
}

func TestGZip_NoContentIsNotWrapped(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()

	withGZip(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNoContent)
	})).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Header().Get("Content-Encoding"))
	assert.Zero(t, rr.Body.Len())
}

func TestGZip_RequestBody(t *testing.T) {
	tests := []struct {
		name            string
		contentEncoding string
		compress        bool
		wantStatus      int
	}{
		{name: "gzip body is inflated", contentEncoding: "gzip", compress: true, wantStatus: http.StatusOK},
		{name: "several encodings including gzip", contentEncoding: "gzip, deflate", compress: true, wantStatus: http.StatusOK},
		{name: "invalid gzip body", contentEncoding: "gzip", compress: false, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := []byte(`{"plaintext":"secret"}`)
			var body io.Reader = bytes.NewReader(payload)
			if tt.compress {
				body = gzipBytes(t, payload)
			}

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got, err := io.ReadAll(r.Body)
				require.NoError(t, err)
				require.NoError(t, r.Body.Close())
				assert.Equal(t, string(payload), string(got))
				assert.Empty(t, r.Header.Get("Content-Encoding"))
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodPost, "/test", body)
			req.Header.Set("Content-Encoding", tt.contentEncoding)
			rr := httptest.NewRecorder()

			withGZip(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestGZip_ConcurrentRequests(t *testing.T) {
	handler := withGZip(writeTyped("text/plain", strings.Repeat("concurrent ", 100)))

	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			req.Header.Set("Accept-Encoding", "gzip")
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, strings.Repeat("concurrent ", 100), gunzip(t, rr.Body))
		}()
	}
	wg.Wait()
}

func TestWrappedReadCloser_Close(t *testing.T) {
	called := false
	rc := &wrappedReadCloser{Reader: strings.NewReader("x"), OnClose: func() { called = true }}

	require.NoError(t, rc.Close())
	assert.True(t, called)

	assert.NoError(t, (&wrappedReadCloser{Reader: strings.NewReader("x")}).Close())
}
