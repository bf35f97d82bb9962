// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package ordering maintains the sparse integer positions that order
// columns within a board and cards within a column. Positions are not
// dense and not unique; readers sort by (position, id) and every move
// writes exactly one row, so concurrent moves of distinct entities never
// conflict.
package ordering

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
)

// PositionEnd is the conventional "drag to end" sentinel. Read-time
// sorting makes the exact value irrelevant beyond ranking last.
const PositionEnd int64 = 9999

// ColumnPlacement is one entry of a bulk column reorder.
type ColumnPlacement struct {
	ColumnID string
	Position int64
}

// CardPlacement is one entry of a bulk card reorder.
type CardPlacement struct {
	CardID   string
	ColumnID string
	Position int64
}

var _ ServiceInterface = (*Service)(nil)

type ServiceInterface interface {
	NextColumnPosition(ctx context.Context, boardID string) (int64, error)
	NextCardPosition(ctx context.Context, columnID string) (int64, error)
	CreateColumn(ctx context.Context, authz *authorization.Context, title string, position *int64) (*types.Column, error)
	CreateCard(ctx context.Context, authz *authorization.Context, card *types.Card) (*types.Card, error)
	ListColumns(ctx context.Context, authz *authorization.Context) ([]*types.Column, error)
	ListCards(ctx context.Context, authz *authorization.Context, columnID string) ([]*types.Card, error)
	MoveColumn(ctx context.Context, authz *authorization.Context, columnID string, position int64) error
	MoveCard(ctx context.Context, authz *authorization.Context, cardID, targetColumnID string, position int64) error
	ReorderColumns(ctx context.Context, authz *authorization.Context, placements []ColumnPlacement) error
	ReorderCards(ctx context.Context, authz *authorization.Context, placements []CardPlacement) error
	DeleteColumn(ctx context.Context, authz *authorization.Context, columnID string) error
	DeleteCard(ctx context.Context, authz *authorization.Context, cardID string) error
}

type Service struct {
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// NextColumnPosition returns max(position)+1 for the board, 1 when empty.
func (s *Service) NextColumnPosition(ctx context.Context, boardID string) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "ordering.Service.NextColumnPosition")
	defer span.End()

	max, err := s.storage.MaxColumnPosition(ctx, boardID)
	if err != nil {
		return 0, err
	}
	return max + 1, nil
}

// NextCardPosition returns max(position)+1 for the column, 1 when empty.
func (s *Service) NextCardPosition(ctx context.Context, columnID string) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "ordering.Service.NextCardPosition")
	defer span.End()

	max, err := s.storage.MaxCardPosition(ctx, columnID)
	if err != nil {
		return 0, err
	}
	return max + 1, nil
}

// CreateColumn inserts a column at the supplied position, or at the next
// free slot when position is nil.
func (s *Service) CreateColumn(ctx context.Context, authz *authorization.Context, title string, position *int64) (*types.Column, error) {
	ctx, span := s.tracer.Start(ctx, "ordering.Service.CreateColumn")
	defer span.End()

	pos := int64(0)
	if position != nil {
		pos = *position
	} else {
		next, err := s.NextColumnPosition(ctx, authz.BoardID)
		if err != nil {
			return nil, err
		}
		pos = next
	}

	return s.storage.CreateColumn(ctx, authz.BoardID, title, pos)
}

// CreateCard inserts a card in the authorized board. Position 0 means
// "next available"; priority defaults to medium in storage.
func (s *Service) CreateCard(ctx context.Context, authz *authorization.Context, card *types.Card) (*types.Card, error) {
	ctx, span := s.tracer.Start(ctx, "ordering.Service.CreateCard")
	defer span.End()

	col, err := s.storage.GetColumnByID(ctx, card.ColumnID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, types.ErrNotFound
		}
		return nil, err
	}
	if col.BoardID != authz.BoardID {
		return nil, types.ErrCrossGroupViolation
	}

	card.BoardID = authz.BoardID
	if card.Position == 0 {
		next, err := s.NextCardPosition(ctx, card.ColumnID)
		if err != nil {
			return nil, err
		}
		card.Position = next
	}

	return s.storage.CreateCard(ctx, card)
}

func (s *Service) ListColumns(ctx context.Context, authz *authorization.Context) ([]*types.Column, error) {
	ctx, span := s.tracer.Start(ctx, "ordering.Service.ListColumns")
	defer span.End()

	return s.storage.ListColumnsByBoardID(ctx, authz.BoardID)
}

func (s *Service) ListCards(ctx context.Context, authz *authorization.Context, columnID string) ([]*types.Card, error) {
	ctx, span := s.tracer.Start(ctx, "ordering.Service.ListCards")
	defer span.End()

	col, err := s.storage.GetColumnByID(ctx, columnID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, types.ErrNotFound
		}
		return nil, err
	}
	if col.BoardID != authz.BoardID {
		return nil, types.ErrCrossGroupViolation
	}

	return s.storage.ListCardsByColumnID(ctx, columnID)
}

// MoveColumn repositions a column within its board. Only the column's own
// row is written; siblings are never shifted or compacted.
func (s *Service) MoveColumn(ctx context.Context, authz *authorization.Context, columnID string, position int64) error {
	ctx, span := s.tracer.Start(ctx, "ordering.Service.MoveColumn")
	defer span.End()

	col, err := s.storage.GetColumnByID(ctx, columnID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return types.ErrNotFound
		}
		return err
	}
	if col.BoardID != authz.BoardID {
		return types.ErrCrossGroupViolation
	}

	return s.storage.UpdateColumnPosition(ctx, columnID, position)
}

// MoveCard changes a card's column and position in a single-row write.
// The target column must belong to the same board as the card.
func (s *Service) MoveCard(ctx context.Context, authz *authorization.Context, cardID, targetColumnID string, position int64) error {
	ctx, span := s.tracer.Start(ctx, "ordering.Service.MoveCard")
	defer span.End()

	card, err := s.storage.GetCardByID(ctx, cardID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return types.ErrNotFound
		}
		return err
	}
	if card.BoardID != authz.BoardID {
		return types.ErrCrossGroupViolation
	}

	col, err := s.storage.GetColumnByID(ctx, targetColumnID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return types.ErrNotFound
		}
		return err
	}
	if col.BoardID != authz.BoardID {
		return types.ErrCrossGroupViolation
	}

	return s.storage.UpdateCardPlacement(ctx, cardID, targetColumnID, position)
}

// ReorderColumns applies a bulk reorder. All referenced columns must
// belong to the authorized board; writes are applied independently per
// column, and a failed write does not undo the others.
func (s *Service) ReorderColumns(ctx context.Context, authz *authorization.Context, placements []ColumnPlacement) error {
	ctx, span := s.tracer.Start(ctx, "ordering.Service.ReorderColumns")
	defer span.End()

	if len(placements) == 0 {
		return nil
	}

	ids := make([]string, 0, len(placements))
	for _, p := range placements {
		ids = append(ids, p.ColumnID)
	}

	cols, err := s.storage.GetColumnsByIDs(ctx, dedupe(ids))
	if err != nil {
		return err
	}
	if err := s.assertColumnsInBoard(authz.BoardID, dedupe(ids), cols); err != nil {
		return err
	}

	var errs []error
	for _, p := range placements {
		if err := s.storage.UpdateColumnPosition(ctx, p.ColumnID, p.Position); err != nil {
			s.logger.Errorf("failed to reposition column %s: %v", p.ColumnID, err)
			errs = append(errs, fmt.Errorf("column %s: %w", p.ColumnID, err))
		}
	}

	return errors.Join(errs...)
}

// ReorderCards applies a bulk card reorder. Every card and every target
// column must resolve to the authorized board.
func (s *Service) ReorderCards(ctx context.Context, authz *authorization.Context, placements []CardPlacement) error {
	ctx, span := s.tracer.Start(ctx, "ordering.Service.ReorderCards")
	defer span.End()

	if len(placements) == 0 {
		return nil
	}

	cardIDs := make([]string, 0, len(placements))
	columnIDs := make([]string, 0, len(placements))
	for _, p := range placements {
		cardIDs = append(cardIDs, p.CardID)
		columnIDs = append(columnIDs, p.ColumnID)
	}

	cards, err := s.storage.GetCardsByIDs(ctx, dedupe(cardIDs))
	if err != nil {
		return err
	}
	if len(cards) != len(dedupe(cardIDs)) {
		return types.ErrNotFound
	}
	for _, c := range cards {
		if c.BoardID != authz.BoardID {
			return types.ErrCrossGroupViolation
		}
	}

	cols, err := s.storage.GetColumnsByIDs(ctx, dedupe(columnIDs))
	if err != nil {
		return err
	}
	if err := s.assertColumnsInBoard(authz.BoardID, dedupe(columnIDs), cols); err != nil {
		return err
	}

	var errs []error
	for _, p := range placements {
		if err := s.storage.UpdateCardPlacement(ctx, p.CardID, p.ColumnID, p.Position); err != nil {
			s.logger.Errorf("failed to reposition card %s: %v", p.CardID, err)
			errs = append(errs, fmt.Errorf("card %s: %w", p.CardID, err))
		}
	}

	return errors.Join(errs...)
}

// DeleteColumn removes an empty column. A column still holding cards is
// rejected; cascade-deleting cards from a structural container was judged
// too destructive.
func (s *Service) DeleteColumn(ctx context.Context, authz *authorization.Context, columnID string) error {
	ctx, span := s.tracer.Start(ctx, "ordering.Service.DeleteColumn")
	defer span.End()

	col, err := s.storage.GetColumnByID(ctx, columnID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return types.ErrNotFound
		}
		return err
	}
	if col.BoardID != authz.BoardID {
		return types.ErrCrossGroupViolation
	}

	count, err := s.storage.CountCardsByColumnID(ctx, columnID)
	if err != nil {
		return err
	}
	if count > 0 {
		return types.ErrNonEmptyColumn
	}

	if err := s.storage.DeleteColumn(ctx, columnID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return types.ErrNotFound
		}
		return err
	}
	return nil
}

func (s *Service) DeleteCard(ctx context.Context, authz *authorization.Context, cardID string) error {
	ctx, span := s.tracer.Start(ctx, "ordering.Service.DeleteCard")
	defer span.End()

	card, err := s.storage.GetCardByID(ctx, cardID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return types.ErrNotFound
		}
		return err
	}
	if card.BoardID != authz.BoardID {
		return types.ErrCrossGroupViolation
	}

	if err := s.storage.DeleteCard(ctx, cardID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return types.ErrNotFound
		}
		return err
	}
	return nil
}

// assertColumnsInBoard verifies that every requested id resolved and that
// all resolved columns share boardID, rejecting batched moves smuggled
// across board boundaries.
func (s *Service) assertColumnsInBoard(boardID string, ids []string, cols []*types.Column) error {
	if len(cols) != len(ids) {
		return types.ErrNotFound
	}
	for _, c := range cols {
		if c.BoardID != boardID {
			return types.ErrCrossGroupViolation
		}
	}
	return nil
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
