// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config loads the go-trade-desk server settings.
//
// Sources are merged in this order, each one overriding the non-zero fields
// of the ones before it:
//  1. .env file (ENV_FILE, or ./.env when present)
//  2. environment variables
//  3. command-line flags
//  4. the JSON file named by CONFIG or -c
//
// Fields still empty afterwards take the Default* values, and the result is
// validated before [GetStructuredConfig] returns it.
package config
