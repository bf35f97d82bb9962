// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/canonical/board-service/internal/types"
)

const invitationColumns = "id, board_id, email, role, invited_by, token, expires_at, accepted_at, created_at"

func (s *Storage) CreateInvitation(ctx context.Context, inv *types.Invitation) (*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateInvitation")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate invitation ID: %w", err)
	}

	var out types.Invitation
	err = s.db.Statement(ctx).
		Insert("invitations").
		Columns("id", "board_id", "email", "role", "invited_by", "token", "expires_at").
		Values(id.String(), inv.BoardID, inv.Email, inv.Role, inv.InvitedBy, inv.Token, inv.ExpiresAt).
		Suffix("RETURNING " + invitationColumns).
		QueryRowContext(ctx).
		Scan(&out.ID, &out.BoardID, &out.Email, &out.Role, &out.InvitedBy, &out.Token, &out.ExpiresAt, &out.AcceptedAt, &out.CreatedAt)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert invitation: %w", err)
	}

	return &out, nil
}

func (s *Storage) GetInvitationByID(ctx context.Context, id string) (*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetInvitationByID")
	defer span.End()

	return s.getInvitation(ctx, sq.Eq{"id": id})
}

func (s *Storage) GetInvitationByToken(ctx context.Context, token string) (*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetInvitationByToken")
	defer span.End()

	return s.getInvitation(ctx, sq.Eq{"token": token})
}

func (s *Storage) getInvitation(ctx context.Context, pred sq.Eq) (*types.Invitation, error) {
	var inv types.Invitation
	err := s.db.Statement(ctx).
		Select(invitationColumns).
		From("invitations").
		Where(pred).
		QueryRowContext(ctx).
		Scan(&inv.ID, &inv.BoardID, &inv.Email, &inv.Role, &inv.InvitedBy, &inv.Token, &inv.ExpiresAt, &inv.AcceptedAt, &inv.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get invitation: %w", err)
	}

	return &inv, nil
}

// GetPendingInvitation returns the unaccepted, unexpired invitation for
// the (board, email) pair, if one exists.
func (s *Storage) GetPendingInvitation(ctx context.Context, boardID, email string, now time.Time) (*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetPendingInvitation")
	defer span.End()

	var inv types.Invitation
	err := s.db.Statement(ctx).
		Select(invitationColumns).
		From("invitations").
		Where(sq.Eq{"board_id": boardID, "email": email}).
		Where(sq.Eq{"accepted_at": nil}).
		Where(sq.Gt{"expires_at": now}).
		QueryRowContext(ctx).
		Scan(&inv.ID, &inv.BoardID, &inv.Email, &inv.Role, &inv.InvitedBy, &inv.Token, &inv.ExpiresAt, &inv.AcceptedAt, &inv.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get pending invitation: %w", err)
	}

	return &inv, nil
}

func (s *Storage) ListInvitationsByBoardID(ctx context.Context, boardID string) ([]*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListInvitationsByBoardID")
	defer span.End()

	query := s.db.Statement(ctx).
		Select(invitationColumns).
		From("invitations").
		Where(sq.Eq{"board_id": boardID}).
		OrderBy("created_at")

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list invitations: %w", err)
	}
	defer rows.Close()

	var invitations []*types.Invitation
	for rows.Next() {
		var inv types.Invitation
		if err := rows.Scan(&inv.ID, &inv.BoardID, &inv.Email, &inv.Role, &inv.InvitedBy, &inv.Token, &inv.ExpiresAt, &inv.AcceptedAt, &inv.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan invitation: %w", err)
		}
		invitations = append(invitations, &inv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return invitations, nil
}

// MarkInvitationAccepted stamps accepted_at; it refuses to stamp twice so
// the accept transition stays single-shot at the storage level too.
func (s *Storage) MarkInvitationAccepted(ctx context.Context, id string, acceptedAt time.Time) error {
	ctx, span := s.tracer.Start(ctx, "storage.MarkInvitationAccepted")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("invitations").
		Set("accepted_at", acceptedAt).
		Where(sq.Eq{"id": id, "accepted_at": nil}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to mark invitation accepted: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

// RefreshInvitation advances expiry and created_at for a resend; the token
// is retained.
func (s *Storage) RefreshInvitation(ctx context.Context, id string, createdAt, expiresAt time.Time) (*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.RefreshInvitation")
	defer span.End()

	var inv types.Invitation
	err := s.db.Statement(ctx).
		Update("invitations").
		Set("created_at", createdAt).
		Set("expires_at", expiresAt).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + invitationColumns).
		QueryRowContext(ctx).
		Scan(&inv.ID, &inv.BoardID, &inv.Email, &inv.Role, &inv.InvitedBy, &inv.Token, &inv.ExpiresAt, &inv.AcceptedAt, &inv.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to refresh invitation: %w", err)
	}

	return &inv, nil
}

// DeleteInvitation hard-deletes the invitation. Deleting a row that is
// already gone is not an error; cancellation is idempotent.
func (s *Storage) DeleteInvitation(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteInvitation")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Delete("invitations").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete invitation: %w", err)
	}

	return nil
}
