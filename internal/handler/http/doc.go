// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the agromatch API.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Cross-cutting concerns such as authentication, request tracing, access
// logging, response compression, and rate limiting are handled in this
// package before requests are delegated to the service layer. Every error
// response is a JSON [models.ErrorResponse].
package http
