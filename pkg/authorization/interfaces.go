// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"

	"github.com/canonical/board-service/internal/types"
)

type StorageInterface interface {
	GetMembership(ctx context.Context, boardID, userID string) (*types.Membership, error)
}
