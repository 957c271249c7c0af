// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns a handler for [chi.Mux.MethodNotAllowed] that
// answers 404 instead of 405, so an unsupported method does not reveal that
// the path exists.
//
// Only top-level route patterns that equal the request path are inspected;
// paths served by mounted subrouters always get 404 here.
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		for _, route := range router.Routes() {
			if route.Pattern != r.URL.Path {
				continue
			}
			if _, ok := route.Handlers[r.Method]; ok {
				router.ServeHTTP(w, r)
				return
			}
			break
		}
		w.WriteHeader(http.StatusNotFound)
	}
}
