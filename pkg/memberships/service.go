// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package memberships owns the (board, user, role) relation. Every path
// that makes a user a member of a board goes through Create here, and
// every mutation re-checks the owner floor inside the same transaction as
// its write.
package memberships

import (
	"context"
	"errors"
	"fmt"

	"github.com/canonical/board-service/internal/logging"
	"github.com/canonical/board-service/internal/monitoring"
	"github.com/canonical/board-service/internal/storage"
	"github.com/canonical/board-service/internal/tracing"
	"github.com/canonical/board-service/internal/types"
	"github.com/canonical/board-service/pkg/authorization"
	"github.com/canonical/board-service/pkg/roles"
	"github.com/canonical/board-service/pkg/validation"
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage StorageInterface
	tx      TxRunnerInterface
	audit   AuditRecorderInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	tx TxRunnerInterface,
	audit AuditRecorderInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		tx:      tx,
		audit:   audit,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// GetRole returns the user's role on the board, or ErrNotFound when the
// user holds no membership.
func (s *Service) GetRole(ctx context.Context, boardID, userID string) (roles.Role, error) {
	ctx, span := s.tracer.Start(ctx, "memberships.Service.GetRole")
	defer span.End()

	m, err := s.storage.GetMembership(ctx, boardID, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "", types.ErrNotFound
		}
		return "", fmt.Errorf("failed to get membership: %w", err)
	}

	return m.Role, nil
}

func (s *Service) IsOwner(ctx context.Context, boardID, userID string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "memberships.Service.IsOwner")
	defer span.End()

	role, err := s.GetRole(ctx, boardID, userID)
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	return role == roles.Owner, nil
}

func (s *Service) List(ctx context.Context, boardID string) ([]*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "memberships.Service.List")
	defer span.End()

	return s.storage.ListMembershipsByBoardID(ctx, boardID)
}

// Create inserts a membership. A duplicate (board, user) pair surfaces as
// ErrConflict; upsert semantics are deliberately not offered so an
// existing role is never silently overwritten.
func (s *Service) Create(ctx context.Context, boardID, userID string, role roles.Role) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "memberships.Service.Create")
	defer span.End()

	m, err := s.storage.CreateMembership(ctx, boardID, userID, role)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			return nil, types.ErrConflict
		}
		if errors.Is(err, storage.ErrForeignKeyViolation) {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("failed to create membership: %w", err)
	}

	return m, nil
}

// Grant adds targetUserID to the authorized board at role. The actor must
// rank strictly above the granted role.
func (s *Service) Grant(ctx context.Context, authz *authorization.Context, targetUserID string, role roles.Role, meta types.RequestMeta) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "memberships.Service.Grant")
	defer span.End()

	if err := validation.ValidateRoleAssignment(authz.Role, role); err != nil {
		return nil, err
	}

	m, err := s.Create(ctx, authz.BoardID, targetUserID, role)
	if err != nil {
		return nil, err
	}

	s.record(ctx, authz, &targetUserID, types.AuditActionGrantAccess, map[string]any{"role": role.String()}, meta)

	return m, nil
}

// SetRole changes the target's role on the authorized board. The owner
// floor is re-checked against the transactional snapshot so two
// concurrent demotions of the last two owners cannot both commit.
func (s *Service) SetRole(ctx context.Context, authz *authorization.Context, targetUserID string, newRole roles.Role, meta types.RequestMeta) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "memberships.Service.SetRole")
	defer span.End()

	if err := validation.ValidateRoleAssignment(authz.Role, newRole); err != nil {
		return nil, err
	}

	var updated *types.Membership
	var current roles.Role
	err := s.tx.WithTx(ctx, func(txCtx context.Context) error {
		m, err := s.storage.GetMembership(txCtx, authz.BoardID, targetUserID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return types.ErrNotFound
			}
			return fmt.Errorf("failed to get membership: %w", err)
		}
		current = m.Role

		if err := validation.ValidateSelfRoleChange(authz.UserID, targetUserID, m.Role, newRole); err != nil {
			return err
		}

		owners, err := s.storage.CountOwners(txCtx, authz.BoardID)
		if err != nil {
			return err
		}
		if err := validation.ValidateOwnerRequirement(m.Role, owners, &newRole, false); err != nil {
			return err
		}

		updated, err = s.storage.UpdateMembershipRole(txCtx, authz.BoardID, targetUserID, newRole)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return types.ErrNotFound
			}
			return fmt.Errorf("failed to update role: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.record(ctx, authz, &targetUserID, types.AuditActionUpdateRole,
		map[string]any{"from": current.String(), "to": newRole.String()}, meta)

	return updated, nil
}

// Remove deletes the target's membership. Actors cannot remove themselves
// through this path; leaving a board is a separate capability.
func (s *Service) Remove(ctx context.Context, authz *authorization.Context, targetUserID string, meta types.RequestMeta) error {
	ctx, span := s.tracer.Start(ctx, "memberships.Service.Remove")
	defer span.End()

	if authz.UserID == targetUserID {
		return types.ErrSelfRemovalForbidden
	}

	err := s.tx.WithTx(ctx, func(txCtx context.Context) error {
		m, err := s.storage.GetMembership(txCtx, authz.BoardID, targetUserID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return types.ErrNotFound
			}
			return fmt.Errorf("failed to get membership: %w", err)
		}

		owners, err := s.storage.CountOwners(txCtx, authz.BoardID)
		if err != nil {
			return err
		}
		if err := validation.ValidateOwnerRequirement(m.Role, owners, nil, true); err != nil {
			return err
		}

		if err := s.storage.DeleteMembership(txCtx, authz.BoardID, targetUserID); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return types.ErrNotFound
			}
			return fmt.Errorf("failed to delete membership: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.record(ctx, authz, &targetUserID, types.AuditActionRemoveUser, nil, meta)

	return nil
}

// record appends the audit entry after the mutation has committed. A
// failed append is logged and does not undo the mutation; see DESIGN.md
// for the rationale behind keeping this non-fatal.
func (s *Service) record(ctx context.Context, authz *authorization.Context, targetUserID *string, action string, details map[string]any, meta types.RequestMeta) {
	meta = meta.Normalized()
	boardID := authz.BoardID

	err := s.audit.Record(ctx, &types.AuditRecord{
		AdminUserID:  authz.UserID,
		TargetUserID: targetUserID,
		BoardID:      &boardID,
		Action:       action,
		Details:      details,
		IPAddress:    meta.IPAddress,
		UserAgent:    meta.UserAgent,
	})
	if err != nil {
		s.logger.Errorf("failed to record audit entry for %s: %v", action, err)
		return
	}

	s.logger.Security().PrivilegedAction(authz.UserID, action)
}
