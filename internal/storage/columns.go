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

func (s *Storage) CreateColumn(ctx context.Context, boardID, title string, position int64) (*types.Column, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateColumn")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate column ID: %w", err)
	}

	var c types.Column
	err = s.db.Statement(ctx).
		Insert("columns").
		Columns("id", "board_id", "title", "position").
		Values(id.String(), boardID, title, position).
		Suffix("RETURNING id, board_id, title, position, created_at").
		QueryRowContext(ctx).
		Scan(&c.ID, &c.BoardID, &c.Title, &c.Position, &c.CreatedAt)

	if err != nil {
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert column: %w", err)
	}

	return &c, nil
}

func (s *Storage) GetColumnByID(ctx context.Context, id string) (*types.Column, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetColumnByID")
	defer span.End()

	var c types.Column
	err := s.db.Statement(ctx).
		Select("id", "board_id", "title", "position", "created_at").
		From("columns").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(&c.ID, &c.BoardID, &c.Title, &c.Position, &c.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get column: %w", err)
	}

	return &c, nil
}

// ListColumnsByBoardID returns the board's columns ordered by
// (position, id). Duplicate positions are legal; the id tie-break keeps
// the order deterministic.
func (s *Storage) ListColumnsByBoardID(ctx context.Context, boardID string) ([]*types.Column, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListColumnsByBoardID")
	defer span.End()

	query := s.db.Statement(ctx).
		Select("id", "board_id", "title", "position", "created_at").
		From("columns").
		Where(sq.Eq{"board_id": boardID}).
		OrderBy("position", "id")

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list columns: %w", err)
	}
	defer rows.Close()

	var columns []*types.Column
	for rows.Next() {
		var c types.Column
		if err := rows.Scan(&c.ID, &c.BoardID, &c.Title, &c.Position, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan column: %w", err)
		}
		columns = append(columns, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return columns, nil
}

func (s *Storage) GetColumnsByIDs(ctx context.Context, ids []string) ([]*types.Column, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetColumnsByIDs")
	defer span.End()

	query := s.db.Statement(ctx).
		Select("id", "board_id", "title", "position", "created_at").
		From("columns").
		Where(sq.Eq{"id": ids})

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get columns: %w", err)
	}
	defer rows.Close()

	var columns []*types.Column
	for rows.Next() {
		var c types.Column
		if err := rows.Scan(&c.ID, &c.BoardID, &c.Title, &c.Position, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan column: %w", err)
		}
		columns = append(columns, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return columns, nil
}

// MaxColumnPosition returns the highest position on the board, 0 when the
// board has no columns.
func (s *Storage) MaxColumnPosition(ctx context.Context, boardID string) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.MaxColumnPosition")
	defer span.End()

	var max int64
	err := s.db.Statement(ctx).
		Select("COALESCE(MAX(position), 0)").
		From("columns").
		Where(sq.Eq{"board_id": boardID}).
		QueryRowContext(ctx).
		Scan(&max)

	if err != nil {
		return 0, fmt.Errorf("failed to get max column position: %w", err)
	}

	return max, nil
}

func (s *Storage) UpdateColumnPosition(ctx context.Context, id string, position int64) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateColumnPosition")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("columns").
		Set("position", position).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to update column position: %w", err)
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

func (s *Storage) CountCardsByColumnID(ctx context.Context, columnID string) (int, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CountCardsByColumnID")
	defer span.End()

	var count int
	err := s.db.Statement(ctx).
		Select("COUNT(*)").
		From("cards").
		Where(sq.Eq{"column_id": columnID}).
		QueryRowContext(ctx).
		Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("failed to count cards: %w", err)
	}

	return count, nil
}

func (s *Storage) DeleteColumn(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteColumn")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("columns").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete column: %w", err)
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
