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
)

func (s *Storage) CreateBoard(ctx context.Context, name string) (*types.Board, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateBoard")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate board ID: %w", err)
	}

	var b types.Board
	err = s.db.Statement(ctx).
		Insert("boards").
		Columns("id", "name", "archived").
		Values(id.String(), name, false).
		Suffix("RETURNING id, name, archived, created_at").
		QueryRowContext(ctx).
		Scan(&b.ID, &b.Name, &b.Archived, &b.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("failed to insert board: %w", err)
	}

	return &b, nil
}

func (s *Storage) GetBoardByID(ctx context.Context, id string) (*types.Board, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetBoardByID")
	defer span.End()

	var b types.Board
	err := s.db.Statement(ctx).
		Select("id", "name", "archived", "created_at").
		From("boards").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(&b.ID, &b.Name, &b.Archived, &b.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get board: %w", err)
	}

	return &b, nil
}

func (s *Storage) ListBoardsByUserID(ctx context.Context, userID string) ([]*types.Board, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListBoardsByUserID")
	defer span.End()

	query := s.db.Statement(ctx).
		Select("b.id", "b.name", "b.archived", "b.created_at").
		From("boards b").
		Join("memberships m ON b.id = m.board_id").
		Where(sq.Eq{"m.user_id": userID}).
		OrderBy("b.created_at")

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list boards: %w", err)
	}
	defer rows.Close()

	var boards []*types.Board
	for rows.Next() {
		var b types.Board
		if err := rows.Scan(&b.ID, &b.Name, &b.Archived, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan board: %w", err)
		}
		boards = append(boards, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return boards, nil
}

func (s *Storage) SetBoardArchived(ctx context.Context, id string, archived bool) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetBoardArchived")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("boards").
		Set("archived", archived).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to update board: %w", err)
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

// DeleteBoard removes the board row; memberships, columns, cards,
// invitations and board-scoped audit records go with it via FK cascade.
func (s *Storage) DeleteBoard(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteBoard")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Delete("boards").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete board: %w", err)
	}
	return nil
}
