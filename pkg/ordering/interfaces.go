// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package ordering

import (
	"context"

	"github.com/canonical/board-service/internal/types"
)

type StorageInterface interface {
	CreateColumn(ctx context.Context, boardID, title string, position int64) (*types.Column, error)
	GetColumnByID(ctx context.Context, id string) (*types.Column, error)
	GetColumnsByIDs(ctx context.Context, ids []string) ([]*types.Column, error)
	ListColumnsByBoardID(ctx context.Context, boardID string) ([]*types.Column, error)
	MaxColumnPosition(ctx context.Context, boardID string) (int64, error)
	UpdateColumnPosition(ctx context.Context, id string, position int64) error
	CountCardsByColumnID(ctx context.Context, columnID string) (int, error)
	DeleteColumn(ctx context.Context, id string) error

	CreateCard(ctx context.Context, card *types.Card) (*types.Card, error)
	GetCardByID(ctx context.Context, id string) (*types.Card, error)
	GetCardsByIDs(ctx context.Context, ids []string) ([]*types.Card, error)
	ListCardsByColumnID(ctx context.Context, columnID string) ([]*types.Card, error)
	MaxCardPosition(ctx context.Context, columnID string) (int64, error)
	UpdateCardPlacement(ctx context.Context, id, columnID string, position int64) error
	DeleteCard(ctx context.Context, id string) error
}
