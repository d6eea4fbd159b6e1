// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/cadet-sync/internal/app"
	"github.com/MKhiriev/cadet-sync/internal/utils"
)

// CheckHTTPMethod returns a MethodNotAllowed handler for router that answers
// 404 with a JSON body instead of chi's 405, so an unsupported method looks
// like an unknown route. The offline client treats 404 as a terminal
// rejection either way.
//
// Only exact route patterns are compared; a path whose pattern does handle
// the method is forwarded to the router.
func CheckHTTPMethod(router *chi.Mux) http.HandlerFunc {
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

		utils.WriteError(w, app.MsgNotFound, http.StatusNotFound)
	}
}
