// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserIDContext(t *testing.T) {
	tests := []struct {
		name   string
		ctx    context.Context
		wantID int64
		wantOK bool
	}{
		{name: "stored", ctx: WithUserID(context.Background(), 42), wantID: 42, wantOK: true},
		{name: "zero id is still present", ctx: WithUserID(context.Background(), 0), wantID: 0, wantOK: true},
		{name: "absent", ctx: context.Background()},
		{name: "plain string key does not collide", ctx: context.WithValue(context.Background(), "userID", int64(7))},
		{name: "wrong type", ctx: context.WithValue(context.Background(), userIDKey, "42")},
		{name: "innermost wins", ctx: WithUserID(WithUserID(context.Background(), 1), 2), wantID: 2, wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := GetUserIDFromContext(tt.ctx)

			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, id)
		})
	}
}

func TestContextKey_String(t *testing.T) {
	assert.Equal(t, "utils context key userID", userIDKey.String())
}
