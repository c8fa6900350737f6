// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"github.com/MKhiriev/go-trade-desk/internal/logger"
)

// Storages aggregates all repositories backed by one database.
type Storages struct {
	UserRepository       UserRepository
	ResetTokenRepository ResetTokenRepository
}

// NewStorages builds every repository on top of db.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:       NewUserRepository(db, log),
		ResetTokenRepository: NewResetTokenRepository(db, log),
	}
}
