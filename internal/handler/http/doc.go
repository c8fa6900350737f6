// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST API of go-trade-desk.
//
// It exposes route wiring, request handlers, and middleware. Cross-cutting
// concerns such as CORS, request tracing, access logging, request timeouts
// and bearer authentication are handled in this package before requests are
// delegated to the service layer.
//
// Every failure is answered with {"error": "<message>"}; the status code is
// derived from the service error kind in errors_mapper.go.
package http
