// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "net/http"

// CheckHTTPMethod is registered as the router's MethodNotAllowed handler via
// [chi.Mux.MethodNotAllowed].
//
// Chi's default behaviour is to respond with HTTP 405 Method Not Allowed
// whenever a request path matches a registered route but the HTTP method
// is not handled. This handler answers such requests exactly like an unknown
// path, with a JSON 404, so that callers using an unsupported method cannot
// tell which routes exist.
func (h *Handler) CheckHTTPMethod(w http.ResponseWriter, r *http.Request) {
	logger := h.logger
	logger.Debug().Str("method", r.Method).Str("path", r.URL.Path).Msg("method is not registered for route")

	writeError(w, r, ErrNotFound)
}
