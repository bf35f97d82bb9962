// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invitations

import (
	"context"
	"time"

	"github.com/canonical/board-service/internal/mail"
	"github.com/canonical/board-service/internal/types"
	"github.com/canonical/board-service/pkg/authorization"
	"github.com/canonical/board-service/pkg/roles"
)

type ServiceInterface interface {
	Invite(ctx context.Context, authz *authorization.Context, email string, role roles.Role, meta types.RequestMeta) (*types.Invitation, error)
	Resend(ctx context.Context, authz *authorization.Context, invitationID string, meta types.RequestMeta) (*types.Invitation, error)
	Cancel(ctx context.Context, authz *authorization.Context, invitationID string, meta types.RequestMeta) error
	Accept(ctx context.Context, token, userID string, meta types.RequestMeta) (*types.Membership, error)
	List(ctx context.Context, boardID string) ([]*types.Invitation, error)
}

type StorageInterface interface {
	CreateInvitation(ctx context.Context, inv *types.Invitation) (*types.Invitation, error)
	GetInvitationByID(ctx context.Context, id string) (*types.Invitation, error)
	GetInvitationByToken(ctx context.Context, token string) (*types.Invitation, error)
	GetPendingInvitation(ctx context.Context, boardID, email string, now time.Time) (*types.Invitation, error)
	ListInvitationsByBoardID(ctx context.Context, boardID string) ([]*types.Invitation, error)
	MarkInvitationAccepted(ctx context.Context, id string, acceptedAt time.Time) error
	RefreshInvitation(ctx context.Context, id string, createdAt, expiresAt time.Time) (*types.Invitation, error)
	DeleteInvitation(ctx context.Context, id string) error
}

// MembersInterface is how acceptance turns into a membership; it is the
// same path every other grant takes.
type MembersInterface interface {
	GetRole(ctx context.Context, boardID, userID string) (roles.Role, error)
	Create(ctx context.Context, boardID, userID string, role roles.Role) (*types.Membership, error)
}

type DirectoryInterface interface {
	GetUserIDByEmail(ctx context.Context, email string) (string, error)
}

type MailerInterface interface {
	Send(ctx context.Context, to string, template mail.Template, payload map[string]any) error
}

type TxRunnerInterface interface {
	WithTx(context.Context, func(context.Context) error) error
}

type AuditRecorderInterface interface {
	Record(ctx context.Context, rec *types.AuditRecord) error
}
