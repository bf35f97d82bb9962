// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package invitations drives the invitation lifecycle from issue to
// acceptance. An invitation's state is derived from its timestamps; the
// only stored transition is acceptance.
package invitations

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/canonical/board-service/internal/logging"
	"github.com/canonical/board-service/internal/mail"
	"github.com/canonical/board-service/internal/monitoring"
	"github.com/canonical/board-service/internal/storage"
	"github.com/canonical/board-service/internal/tracing"
	"github.com/canonical/board-service/internal/types"
	"github.com/canonical/board-service/pkg/authorization"
	"github.com/canonical/board-service/pkg/roles"
	"github.com/canonical/board-service/pkg/validation"
)

const tokenBytes = 16

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage   StorageInterface
	members   MembersInterface
	directory DirectoryInterface
	mailer    MailerInterface
	tx        TxRunnerInterface
	audit     AuditRecorderInterface

	lifetime time.Duration
	validate *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	members MembersInterface,
	directory DirectoryInterface,
	mailer MailerInterface,
	tx TxRunnerInterface,
	audit AuditRecorderInterface,
	lifetime time.Duration,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:   storage,
		members:   members,
		directory: directory,
		mailer:    mailer,
		tx:        tx,
		audit:     audit,
		lifetime:  lifetime,
		validate:  validator.New(),
		tracer:    tracer,
		monitor:   monitor,
		logger:    logger,
	}
}

// Invite issues an invitation for email at role on the authorized board
// and delivers it. The insert and the delivery share one transaction so a
// failed email never leaves an orphaned invitation behind.
func (s *Service) Invite(ctx context.Context, authz *authorization.Context, email string, role roles.Role, meta types.RequestMeta) (*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "invitations.Service.Invite")
	defer span.End()

	if err := s.validate.Var(email, "required,email"); err != nil {
		return nil, types.ErrInvalidEmail
	}
	if !roles.CanInvite(role) {
		return nil, types.ErrRoleNotAssignable
	}
	if err := validation.ValidateRoleAssignment(authz.Role, role); err != nil {
		return nil, err
	}

	userID, err := s.directory.GetUserIDByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if userID != "" {
		if _, err := s.members.GetRole(ctx, authz.BoardID, userID); err == nil {
			return nil, types.ErrAlreadyMember
		} else if !errors.Is(err, types.ErrNotFound) {
			return nil, err
		}
	}

	now := time.Now().UTC()
	if _, err := s.storage.GetPendingInvitation(ctx, authz.BoardID, email, now); err == nil {
		return nil, types.ErrDuplicatePendingInvitation
	} else if !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("failed to check pending invitations: %w", err)
	}

	token, err := newToken()
	if err != nil {
		return nil, err
	}

	var created *types.Invitation
	err = s.tx.WithTx(ctx, func(txCtx context.Context) error {
		created, err = s.storage.CreateInvitation(txCtx, &types.Invitation{
			BoardID:   authz.BoardID,
			Email:     email,
			Role:      role,
			InvitedBy: authz.UserID,
			Token:     token,
			ExpiresAt: now.Add(s.lifetime),
			CreatedAt: now,
		})
		if err != nil {
			if errors.Is(err, storage.ErrDuplicateKey) {
				return types.ErrDuplicatePendingInvitation
			}
			if errors.Is(err, storage.ErrForeignKeyViolation) {
				return types.ErrNotFound
			}
			return fmt.Errorf("failed to create invitation: %w", err)
		}

		return s.mailer.Send(txCtx, email, mail.TemplateInvitation, map[string]any{
			"token": token,
			"role":  role.String(),
		})
	})
	if err != nil {
		return nil, err
	}

	s.record(ctx, authz.UserID, authz.BoardID, types.AuditActionInviteUser,
		map[string]any{"email": email, "role": role.String()}, meta)

	return created, nil
}

// Resend refreshes the invitation's expiry window and delivers it again.
// The token is kept so an earlier email still works.
func (s *Service) Resend(ctx context.Context, authz *authorization.Context, invitationID string, meta types.RequestMeta) (*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "invitations.Service.Resend")
	defer span.End()

	inv, err := s.getScoped(ctx, authz.BoardID, invitationID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if inv.Status(now) == types.InvitationAccepted {
		return nil, types.ErrAlreadyAccepted
	}

	var refreshed *types.Invitation
	err = s.tx.WithTx(ctx, func(txCtx context.Context) error {
		refreshed, err = s.storage.RefreshInvitation(txCtx, inv.ID, now, now.Add(s.lifetime))
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return types.ErrNotFound
			}
			return fmt.Errorf("failed to refresh invitation: %w", err)
		}

		return s.mailer.Send(txCtx, inv.Email, mail.TemplateInvitation, map[string]any{
			"token": inv.Token,
			"role":  inv.Role.String(),
		})
	})
	if err != nil {
		return nil, err
	}

	s.record(ctx, authz.UserID, authz.BoardID, types.AuditActionInvitationResent,
		map[string]any{"email": inv.Email}, meta)

	return refreshed, nil
}

// Cancel deletes the invitation. Cancelling one that is already gone is a
// no-op; cancelling an accepted one is refused since the membership it
// produced lives on.
func (s *Service) Cancel(ctx context.Context, authz *authorization.Context, invitationID string, meta types.RequestMeta) error {
	ctx, span := s.tracer.Start(ctx, "invitations.Service.Cancel")
	defer span.End()

	inv, err := s.getScoped(ctx, authz.BoardID, invitationID)
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			return nil
		}
		return err
	}

	if inv.Status(time.Now().UTC()) == types.InvitationAccepted {
		return types.ErrAlreadyAccepted
	}

	if err := s.storage.DeleteInvitation(ctx, inv.ID); err != nil {
		return fmt.Errorf("failed to delete invitation: %w", err)
	}

	s.record(ctx, authz.UserID, authz.BoardID, types.AuditActionInvitationCancelled,
		map[string]any{"email": inv.Email}, meta)

	return nil
}

// Accept redeems a token for userID. The acceptance mark and the
// membership insert commit together. A user who already holds a
// membership keeps their existing role; the invitation is still marked
// accepted so it cannot be redeemed again.
func (s *Service) Accept(ctx context.Context, token, userID string, meta types.RequestMeta) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "invitations.Service.Accept")
	defer span.End()

	inv, err := s.storage.GetInvitationByToken(ctx, token)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, types.ErrInvalidToken
		}
		return nil, fmt.Errorf("failed to look up invitation: %w", err)
	}

	now := time.Now().UTC()
	switch inv.Status(now) {
	case types.InvitationAccepted:
		return nil, types.ErrAlreadyAccepted
	case types.InvitationExpired:
		return nil, types.ErrInvitationExpired
	}

	var membership *types.Membership
	err = s.tx.WithTx(ctx, func(txCtx context.Context) error {
		if err := s.storage.MarkInvitationAccepted(txCtx, inv.ID, now); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return types.ErrAlreadyAccepted
			}
			return fmt.Errorf("failed to mark invitation accepted: %w", err)
		}

		existing, err := s.members.GetRole(txCtx, inv.BoardID, userID)
		if err == nil {
			membership = &types.Membership{BoardID: inv.BoardID, UserID: userID, Role: existing}
			return nil
		}
		if !errors.Is(err, types.ErrNotFound) {
			return err
		}

		membership, err = s.members.Create(txCtx, inv.BoardID, userID, inv.Role)
		if errors.Is(err, types.ErrConflict) {
			// A concurrent grant won the insert. That membership is the
			// acceptance outcome; redeem the token against it.
			existing, rerr := s.members.GetRole(txCtx, inv.BoardID, userID)
			if rerr != nil {
				return rerr
			}
			membership = &types.Membership{BoardID: inv.BoardID, UserID: userID, Role: existing}
			return nil
		}
		return err
	})
	if err != nil {
		return nil, err
	}

	s.record(ctx, userID, inv.BoardID, types.AuditActionInvitationAccepted,
		map[string]any{"email": inv.Email, "role": membership.Role.String()}, meta)

	return membership, nil
}

func (s *Service) List(ctx context.Context, boardID string) ([]*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "invitations.Service.List")
	defer span.End()

	return s.storage.ListInvitationsByBoardID(ctx, boardID)
}

// getScoped fetches an invitation and hides it behind ErrNotFound when it
// belongs to a different board than the one the caller is authorized on.
func (s *Service) getScoped(ctx context.Context, boardID, invitationID string) (*types.Invitation, error) {
	inv, err := s.storage.GetInvitationByID(ctx, invitationID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get invitation: %w", err)
	}
	if inv.BoardID != boardID {
		return nil, types.ErrNotFound
	}
	return inv, nil
}

func (s *Service) record(ctx context.Context, actorID, boardID, action string, details map[string]any, meta types.RequestMeta) {
	meta = meta.Normalized()

	err := s.audit.Record(ctx, &types.AuditRecord{
		AdminUserID: actorID,
		BoardID:     &boardID,
		Action:      action,
		Details:     details,
		IPAddress:   meta.IPAddress,
		UserAgent:   meta.UserAgent,
	})
	if err != nil {
		s.logger.Errorf("failed to record audit entry for %s: %v", action, err)
		return
	}

	s.logger.Security().PrivilegedAction(actorID, action)
}

func newToken() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate invitation token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
