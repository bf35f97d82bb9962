// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package audit exposes the append-only audit trail. Records are written
// by the mutation services after their transaction commits and can only
// ever be read back, never changed.
package audit

import (
	"context"
	"fmt"

	"github.com/canonical/board-service/internal/logging"
	"github.com/canonical/board-service/internal/monitoring"
	"github.com/canonical/board-service/internal/tracing"
	"github.com/canonical/board-service/internal/types"
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(storage StorageInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	return &Service{
		storage: storage,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// Record appends rec to the trail. Attribution fields are normalized so a
// record never carries empty provenance.
func (s *Service) Record(ctx context.Context, rec *types.AuditRecord) error {
	ctx, span := s.tracer.Start(ctx, "audit.Service.Record")
	defer span.End()

	meta := types.RequestMeta{IPAddress: rec.IPAddress, UserAgent: rec.UserAgent}.Normalized()
	rec.IPAddress = meta.IPAddress
	rec.UserAgent = meta.UserAgent

	if _, err := s.storage.CreateAuditRecord(ctx, rec); err != nil {
		return fmt.Errorf("failed to append audit record: %w", err)
	}

	return nil
}

func (s *Service) ListByBoard(ctx context.Context, boardID string, page, size int64) ([]*types.AuditRecord, error) {
	ctx, span := s.tracer.Start(ctx, "audit.Service.ListByBoard")
	defer span.End()

	return s.storage.ListAuditRecordsByBoardID(ctx, boardID, page, size)
}

func (s *Service) ListByAdmin(ctx context.Context, adminUserID string, page, size int64) ([]*types.AuditRecord, error) {
	ctx, span := s.tracer.Start(ctx, "audit.Service.ListByAdmin")
	defer span.End()

	return s.storage.ListAuditRecordsByAdminID(ctx, adminUserID, page, size)
}
