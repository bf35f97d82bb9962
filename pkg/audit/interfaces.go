// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package audit

import (
	"context"

	"github.com/canonical/board-service/internal/types"
)

type ServiceInterface interface {
	Record(ctx context.Context, rec *types.AuditRecord) error
	ListByBoard(ctx context.Context, boardID string, page, size int64) ([]*types.AuditRecord, error)
	ListByAdmin(ctx context.Context, adminUserID string, page, size int64) ([]*types.AuditRecord, error)
}

type StorageInterface interface {
	CreateAuditRecord(ctx context.Context, rec *types.AuditRecord) (*types.AuditRecord, error)
	ListAuditRecordsByBoardID(ctx context.Context, boardID string, page, size int64) ([]*types.AuditRecord, error)
	ListAuditRecordsByAdminID(ctx context.Context, adminUserID string, page, size int64) ([]*types.AuditRecord, error)
}
