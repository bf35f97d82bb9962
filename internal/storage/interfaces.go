// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"time"

	"github.com/canonical/board-service/internal/types"
	"github.com/canonical/board-service/pkg/roles"
)

type StorageInterface interface {
	CreateBoard(ctx context.Context, name string) (*types.Board, error)
	GetBoardByID(ctx context.Context, id string) (*types.Board, error)
	ListBoardsByUserID(ctx context.Context, userID string) ([]*types.Board, error)
	SetBoardArchived(ctx context.Context, id string, archived bool) error
	DeleteBoard(ctx context.Context, id string) error

	GetMembership(ctx context.Context, boardID, userID string) (*types.Membership, error)
	ListMembershipsByBoardID(ctx context.Context, boardID string) ([]*types.Membership, error)
	CountOwners(ctx context.Context, boardID string) (int, error)
	CreateMembership(ctx context.Context, boardID, userID string, role roles.Role) (*types.Membership, error)
	UpdateMembershipRole(ctx context.Context, boardID, userID string, role roles.Role) (*types.Membership, error)
	DeleteMembership(ctx context.Context, boardID, userID string) error

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

	CreateInvitation(ctx context.Context, inv *types.Invitation) (*types.Invitation, error)
	GetInvitationByID(ctx context.Context, id string) (*types.Invitation, error)
	GetInvitationByToken(ctx context.Context, token string) (*types.Invitation, error)
	GetPendingInvitation(ctx context.Context, boardID, email string, now time.Time) (*types.Invitation, error)
	ListInvitationsByBoardID(ctx context.Context, boardID string) ([]*types.Invitation, error)
	MarkInvitationAccepted(ctx context.Context, id string, acceptedAt time.Time) error
	RefreshInvitation(ctx context.Context, id string, createdAt, expiresAt time.Time) (*types.Invitation, error)
	DeleteInvitation(ctx context.Context, id string) error

	CreateAuditRecord(ctx context.Context, rec *types.AuditRecord) (*types.AuditRecord, error)
	ListAuditRecordsByBoardID(ctx context.Context, boardID string, page, size int64) ([]*types.AuditRecord, error)
	ListAuditRecordsByAdminID(ctx context.Context, adminUserID string, page, size int64) ([]*types.AuditRecord, error)
}
