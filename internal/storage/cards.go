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

const cardColumns = "id, board_id, column_id, title, description, assignee_id, due_date, priority, position, created_at"

func (s *Storage) CreateCard(ctx context.Context, card *types.Card) (*types.Card, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateCard")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate card ID: %w", err)
	}

	priority := card.Priority
	if priority == "" {
		priority = types.PriorityMedium
	}

	var c types.Card
	err = s.db.Statement(ctx).
		Insert("cards").
		Columns("id", "board_id", "column_id", "title", "description", "assignee_id", "due_date", "priority", "position").
		Values(id.String(), card.BoardID, card.ColumnID, card.Title, card.Description, card.AssigneeID, card.DueDate, priority, card.Position).
		Suffix("RETURNING " + cardColumns).
		QueryRowContext(ctx).
		Scan(&c.ID, &c.BoardID, &c.ColumnID, &c.Title, &c.Description, &c.AssigneeID, &c.DueDate, &c.Priority, &c.Position, &c.CreatedAt)

	if err != nil {
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert card: %w", err)
	}

	return &c, nil
}

func (s *Storage) GetCardByID(ctx context.Context, id string) (*types.Card, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetCardByID")
	defer span.End()

	var c types.Card
	err := s.db.Statement(ctx).
		Select(cardColumns).
		From("cards").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(&c.ID, &c.BoardID, &c.ColumnID, &c.Title, &c.Description, &c.AssigneeID, &c.DueDate, &c.Priority, &c.Position, &c.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get card: %w", err)
	}

	return &c, nil
}

// ListCardsByColumnID returns the column's cards ordered by (position, id).
func (s *Storage) ListCardsByColumnID(ctx context.Context, columnID string) ([]*types.Card, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListCardsByColumnID")
	defer span.End()

	query := s.db.Statement(ctx).
		Select(cardColumns).
		From("cards").
		Where(sq.Eq{"column_id": columnID}).
		OrderBy("position", "id")

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}
	defer rows.Close()

	var cards []*types.Card
	for rows.Next() {
		var c types.Card
		if err := rows.Scan(&c.ID, &c.BoardID, &c.ColumnID, &c.Title, &c.Description, &c.AssigneeID, &c.DueDate, &c.Priority, &c.Position, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan card: %w", err)
		}
		cards = append(cards, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return cards, nil
}

func (s *Storage) GetCardsByIDs(ctx context.Context, ids []string) ([]*types.Card, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetCardsByIDs")
	defer span.End()

	query := s.db.Statement(ctx).
		Select(cardColumns).
		From("cards").
		Where(sq.Eq{"id": ids})

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get cards: %w", err)
	}
	defer rows.Close()

	var cards []*types.Card
	for rows.Next() {
		var c types.Card
		if err := rows.Scan(&c.ID, &c.BoardID, &c.ColumnID, &c.Title, &c.Description, &c.AssigneeID, &c.DueDate, &c.Priority, &c.Position, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan card: %w", err)
		}
		cards = append(cards, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return cards, nil
}

// MaxCardPosition returns the highest position in the column, 0 when the
// column is empty.
func (s *Storage) MaxCardPosition(ctx context.Context, columnID string) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.MaxCardPosition")
	defer span.End()

	var max int64
	err := s.db.Statement(ctx).
		Select("COALESCE(MAX(position), 0)").
		From("cards").
		Where(sq.Eq{"column_id": columnID}).
		QueryRowContext(ctx).
		Scan(&max)

	if err != nil {
		return 0, fmt.Errorf("failed to get max card position: %w", err)
	}

	return max, nil
}

// UpdateCardPlacement writes the card's column and position in one
// statement. It only ever touches the card's own row, which is what keeps
// concurrent moves of distinct cards conflict-free.
func (s *Storage) UpdateCardPlacement(ctx context.Context, id, columnID string, position int64) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateCardPlacement")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("cards").
		Set("column_id", columnID).
		Set("position", position).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		if IsForeignKeyViolation(err) {
			return ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to update card placement: %w", err)
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

func (s *Storage) DeleteCard(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteCard")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("cards").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete card: %w", err)
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
