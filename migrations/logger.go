// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-trade-desk/internal/logger"
)

// gooseLogger routes goose progress lines into the process logger.
type gooseLogger struct {
	log *logger.Logger
}

func newGooseLogger(log *logger.Logger) gooseLogger {
	if log == nil {
		log = logger.Nop()
	}
	return gooseLogger{log: log}
}

func (g gooseLogger) Printf(format string, v ...any) {
	g.log.Info().Str("component", "goose").Msg(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

// Fatalf keeps the goose contract: the process exits after logging.
func (g gooseLogger) Fatalf(format string, v ...any) {
	g.log.Fatal().Str("component", "goose").Msg(strings.TrimSpace(fmt.Sprintf(format, v...)))
}
