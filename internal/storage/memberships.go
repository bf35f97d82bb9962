// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/canonical/board-service/internal/types"
	"github.com/canonical/board-service/pkg/roles"
)

func (s *Storage) GetMembership(ctx context.Context, boardID, userID string) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetMembership")
	defer span.End()

	var m types.Membership
	err := s.db.Statement(ctx).
		Select("id", "board_id", "user_id", "role", "created_at").
		From("memberships").
		Where(sq.Eq{"board_id": boardID, "user_id": userID}).
		QueryRowContext(ctx).
		Scan(&m.ID, &m.BoardID, &m.UserID, &m.Role, &m.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}

	return &m, nil
}

func (s *Storage) ListMembershipsByBoardID(ctx context.Context, boardID string) ([]*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListMembershipsByBoardID")
	defer span.End()

	query := s.db.Statement(ctx).
		Select("id", "board_id", "user_id", "role", "created_at").
		From("memberships").
		Where(sq.Eq{"board_id": boardID}).
		OrderBy("created_at")

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list memberships: %w", err)
	}
	defer rows.Close()

	var members []*types.Membership
	for rows.Next() {
		var m types.Membership
		if err := rows.Scan(&m.ID, &m.BoardID, &m.UserID, &m.Role, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan membership: %w", err)
		}
		members = append(members, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return members, nil
}

// CountOwners must be read in the same transaction as the mutation it
// guards; the owner floor depends on it.
func (s *Storage) CountOwners(ctx context.Context, boardID string) (int, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CountOwners")
	defer span.End()

	var count int
	err := s.db.Statement(ctx).
		Select("COUNT(*)").
		From("memberships").
		Where(sq.Eq{"board_id": boardID, "role": roles.Owner}).
		QueryRowContext(ctx).
		Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("failed to count owners: %w", err)
	}

	return count, nil
}

func (s *Storage) CreateMembership(ctx context.Context, boardID, userID string, role roles.Role) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateMembership")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate membership ID: %w", err)
	}

	var m types.Membership
	err = s.db.Statement(ctx).
		Insert("memberships").
		Columns("id", "board_id", "user_id", "role").
		Values(id.String(), boardID, userID, role).
		Suffix("RETURNING id, board_id, user_id, role, created_at").
		QueryRowContext(ctx).
		Scan(&m.ID, &m.BoardID, &m.UserID, &m.Role, &m.CreatedAt)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to create membership: %w", err)
	}

	return &m, nil
}

func (s *Storage) UpdateMembershipRole(ctx context.Context, boardID, userID string, role roles.Role) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateMembershipRole")
	defer span.End()

	var m types.Membership
	err := s.db.Statement(ctx).
		Update("memberships").
		Set("role", role).
		Where(sq.Eq{"board_id": boardID, "user_id": userID}).
		Suffix("RETURNING id, board_id, user_id, role, created_at").
		QueryRowContext(ctx).
		Scan(&m.ID, &m.BoardID, &m.UserID, &m.Role, &m.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update membership role: %w", err)
	}

	return &m, nil
}

func (s *Storage) DeleteMembership(ctx context.Context, boardID, userID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteMembership")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("memberships").
		Where(sq.Eq{"board_id": boardID, "user_id": userID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete membership: %w", err)
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
