// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Viktor Petrenko

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod is registered as the router's MethodNotAllowed handler.
// Chi answers 405 when a path matches a route but the method does not;
// this override answers 404 instead, so callers probing with unsupported
// methods cannot tell which paths exist.
//
// Only exact pattern matches are considered when looking up the route;
// parameterised segments are not expanded.
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var matched chi.Route
		for _, route := range router.Routes() {
			if route.Pattern == r.URL.Path {
				matched = route
				break
			}
		}

		if _, ok := matched.Handlers[r.Method]; !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		router.ServeHTTP(w, r)
	}
}
