// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "net/http"

// notFoundOnUnsupportedMethod is registered as the router's MethodNotAllowed
// handler. It answers 404 instead of chi's default 405.
func notFoundOnUnsupportedMethod(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotFound)
}
