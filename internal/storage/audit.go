// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/canonical/board-service/internal/db"
	"github.com/canonical/board-service/internal/types"
)

const auditColumns = "id, admin_user_id, target_user_id, board_id, action, details, ip_address, user_agent, created_at"

// CreateAuditRecord appends an audit row. There is deliberately no update
// or delete counterpart anywhere in this package.
func (s *Storage) CreateAuditRecord(ctx context.Context, rec *types.AuditRecord) (*types.AuditRecord, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateAuditRecord")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate audit record ID: %w", err)
	}

	details := rec.Details
	if details == nil {
		details = map[string]any{}
	}
	payload, err := json.Marshal(details)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal audit details: %w", err)
	}

	var out types.AuditRecord
	var rawDetails []byte
	err = s.db.Statement(ctx).
		Insert("audit_records").
		Columns("id", "admin_user_id", "target_user_id", "board_id", "action", "details", "ip_address", "user_agent").
		Values(id.String(), rec.AdminUserID, rec.TargetUserID, rec.BoardID, rec.Action, payload, rec.IPAddress, rec.UserAgent).
		Suffix("RETURNING " + auditColumns).
		QueryRowContext(ctx).
		Scan(&out.ID, &out.AdminUserID, &out.TargetUserID, &out.BoardID, &out.Action, &rawDetails, &out.IPAddress, &out.UserAgent, &out.CreatedAt)

	if err != nil {
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert audit record: %w", err)
	}

	if err := json.Unmarshal(rawDetails, &out.Details); err != nil {
		return nil, fmt.Errorf("failed to unmarshal audit details: %w", err)
	}

	return &out, nil
}

func (s *Storage) ListAuditRecordsByBoardID(ctx context.Context, boardID string, page, size int64) ([]*types.AuditRecord, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListAuditRecordsByBoardID")
	defer span.End()

	return s.listAuditRecords(ctx, sq.Eq{"board_id": boardID}, page, size)
}

func (s *Storage) ListAuditRecordsByAdminID(ctx context.Context, adminUserID string, page, size int64) ([]*types.AuditRecord, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListAuditRecordsByAdminID")
	defer span.End()

	return s.listAuditRecords(ctx, sq.Eq{"admin_user_id": adminUserID}, page, size)
}

func (s *Storage) listAuditRecords(ctx context.Context, pred sq.Eq, page, size int64) ([]*types.AuditRecord, error) {
	pageSize := db.PageSize(size)

	query := s.db.Statement(ctx).
		Select(auditColumns).
		From("audit_records").
		Where(pred).
		OrderBy("created_at DESC", "id DESC").
		Offset(db.Offset(page, pageSize)).
		Limit(pageSize)

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit records: %w", err)
	}
	defer rows.Close()

	var records []*types.AuditRecord
	for rows.Next() {
		var rec types.AuditRecord
		var rawDetails []byte
		if err := rows.Scan(&rec.ID, &rec.AdminUserID, &rec.TargetUserID, &rec.BoardID, &rec.Action, &rawDetails, &rec.IPAddress, &rec.UserAgent, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan audit record: %w", err)
		}
		if err := json.Unmarshal(rawDetails, &rec.Details); err != nil {
			return nil, fmt.Errorf("failed to unmarshal audit details: %w", err)
		}
		records = append(records, &rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return records, nil
}
