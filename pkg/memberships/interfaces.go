// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package memberships

import (
	"context"

	"github.com/canonical/board-service/internal/types"
	"github.com/canonical/board-service/pkg/authorization"
	"github.com/canonical/board-service/pkg/roles"
)

type ServiceInterface interface {
	GetRole(ctx context.Context, boardID, userID string) (roles.Role, error)
	IsOwner(ctx context.Context, boardID, userID string) (bool, error)
	List(ctx context.Context, boardID string) ([]*types.Membership, error)
	Create(ctx context.Context, boardID, userID string, role roles.Role) (*types.Membership, error)
	Grant(ctx context.Context, authz *authorization.Context, targetUserID string, role roles.Role, meta types.RequestMeta) (*types.Membership, error)
	SetRole(ctx context.Context, authz *authorization.Context, targetUserID string, newRole roles.Role, meta types.RequestMeta) (*types.Membership, error)
	Remove(ctx context.Context, authz *authorization.Context, targetUserID string, meta types.RequestMeta) error
}

type StorageInterface interface {
	GetMembership(ctx context.Context, boardID, userID string) (*types.Membership, error)
	ListMembershipsByBoardID(ctx context.Context, boardID string) ([]*types.Membership, error)
	CountOwners(ctx context.Context, boardID string) (int, error)
	CreateMembership(ctx context.Context, boardID, userID string, role roles.Role) (*types.Membership, error)
	UpdateMembershipRole(ctx context.Context, boardID, userID string, role roles.Role) (*types.Membership, error)
	DeleteMembership(ctx context.Context, boardID, userID string) error
}

type TxRunnerInterface interface {
	WithTx(context.Context, func(context.Context) error) error
}

type AuditRecorderInterface interface {
	Record(ctx context.Context, rec *types.AuditRecord) error
}
