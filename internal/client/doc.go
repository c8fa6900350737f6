// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the go-trade-desk command-line client.
//
// Each sub-command maps to one API call made through [adapter.APIClient];
// results are printed to stdout as indented JSON and diagnostics go to the
// client logger on stderr.
package client
