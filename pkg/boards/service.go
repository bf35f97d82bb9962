// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package boards manages board lifecycle. Creating a board and seeding its
// first owner commit as one transaction, which is how every board comes to
// satisfy the owner floor from its first instant.
package boards

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

// Create inserts the board and the creator's owner membership atomically.
func (s *Service) Create(ctx context.Context, userID, name string, meta types.RequestMeta) (*types.Board, error) {
	ctx, span := s.tracer.Start(ctx, "boards.Service.Create")
	defer span.End()

	var board *types.Board
	err := s.tx.WithTx(ctx, func(txCtx context.Context) error {
		var err error
		board, err = s.storage.CreateBoard(txCtx, name)
		if err != nil {
			return fmt.Errorf("failed to create board: %w", err)
		}

		if _, err := s.storage.CreateMembership(txCtx, board.ID, userID, roles.Owner); err != nil {
			return fmt.Errorf("failed to create owner membership: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.record(ctx, userID, board.ID, types.AuditActionBoardCreated, map[string]any{"name": name}, meta)

	return board, nil
}

func (s *Service) Get(ctx context.Context, boardID string) (*types.Board, error) {
	ctx, span := s.tracer.Start(ctx, "boards.Service.Get")
	defer span.End()

	board, err := s.storage.GetBoardByID(ctx, boardID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get board: %w", err)
	}

	return board, nil
}

// List returns the boards the user holds a membership on.
func (s *Service) List(ctx context.Context, userID string) ([]*types.Board, error) {
	ctx, span := s.tracer.Start(ctx, "boards.Service.List")
	defer span.End()

	return s.storage.ListBoardsByUserID(ctx, userID)
}

func (s *Service) SetArchived(ctx context.Context, authz *authorization.Context, archived bool, meta types.RequestMeta) error {
	ctx, span := s.tracer.Start(ctx, "boards.Service.SetArchived")
	defer span.End()

	if err := s.storage.SetBoardArchived(ctx, authz.BoardID, archived); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return types.ErrNotFound
		}
		return fmt.Errorf("failed to update board: %w", err)
	}

	if archived {
		s.record(ctx, authz.UserID, authz.BoardID, types.AuditActionBoardArchived, nil, meta)
	}

	return nil
}

// Delete removes the board and, through the schema's cascades, its
// memberships, columns, cards and invitations. Only an owner may delete.
// Audit records survive; the trail outlives what it describes.
func (s *Service) Delete(ctx context.Context, authz *authorization.Context, meta types.RequestMeta) error {
	ctx, span := s.tracer.Start(ctx, "boards.Service.Delete")
	defer span.End()

	if !authz.Can(roles.Owner) {
		return types.ErrForbidden
	}

	if err := s.storage.DeleteBoard(ctx, authz.BoardID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return types.ErrNotFound
		}
		return fmt.Errorf("failed to delete board: %w", err)
	}

	s.record(ctx, authz.UserID, authz.BoardID, types.AuditActionBoardDeleted, nil, meta)

	return nil
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
