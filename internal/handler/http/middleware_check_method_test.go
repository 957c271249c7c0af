// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func buildRouter() *chi.Mux {
	router := chi.NewRouter()
	router.Get("/api/items", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("items"))
	})
	router.Post("/api/items", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})
	router.Route("/api/vault", func(r chi.Router) {
		r.Post("/encrypt", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
	})
	router.MethodNotAllowed(CheckHTTPMethod(router))
	return router
}

func TestCheckHTTPMethod(t *testing.T) {
	router := buildRouter()

	tests := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/api/items", http.StatusOK},
		{http.MethodPost, "/api/items", http.StatusCreated},
		{http.MethodDelete, "/api/items", http.StatusNotFound},
		{http.MethodPatch, "/api/items", http.StatusNotFound},
		{http.MethodPost, "/api/vault/encrypt", http.StatusOK},
		{http.MethodGet, "/api/vault/encrypt", http.StatusNotFound},
		{http.MethodGet, "/api/nonexistent", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.want, rr.Code)
			assert.NotEqual(t, http.StatusMethodNotAllowed, rr.Code)
		})
	}
}
