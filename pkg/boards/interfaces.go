// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package boards

import (
	"context"

	"github.com/canonical/board-service/internal/types"
	"github.com/canonical/board-service/pkg/authorization"
	"github.com/canonical/board-service/pkg/roles"
)

type ServiceInterface interface {
	Create(ctx context.Context, userID, name string, meta types.RequestMeta) (*types.Board, error)
	Get(ctx context.Context, boardID string) (*types.Board, error)
	List(ctx context.Context, userID string) ([]*types.Board, error)
	SetArchived(ctx context.Context, authz *authorization.Context, archived bool, meta types.RequestMeta) error
	Delete(ctx context.Context, authz *authorization.Context, meta types.RequestMeta) error
}

type StorageInterface interface {
	CreateBoard(ctx context.Context, name string) (*types.Board, error)
	GetBoardByID(ctx context.Context, id string) (*types.Board, error)
	ListBoardsByUserID(ctx context.Context, userID string) ([]*types.Board, error)
	SetBoardArchived(ctx context.Context, id string, archived bool) error
	DeleteBoard(ctx context.Context, id string) error
	CreateMembership(ctx context.Context, boardID, userID string, role roles.Role) (*types.Membership, error)
}

type TxRunnerInterface interface {
	WithTx(context.Context, func(context.Context) error) error
}

type AuditRecorderInterface interface {
	Record(ctx context.Context, rec *types.AuditRecord) error
}
