// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package audit

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/canonical/board-service/internal/logging"
	"github.com/canonical/board-service/internal/monitoring"
	"github.com/canonical/board-service/internal/tracing"
	"github.com/canonical/board-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package audit -destination ./mock_audit.go -source=./interfaces.go

func newService(t *testing.T) (*Service, *MockStorageInterface) {
	ctrl := gomock.NewController(t)
	st := NewMockStorageInterface(ctrl)

	s := NewService(st, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())

	return s, st
}

func TestService_Record(t *testing.T) {
	boardID := "board-1"

	t.Run("normalizes empty provenance", func(t *testing.T) {
		s, st := newService(t)

		st.EXPECT().CreateAuditRecord(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, rec *types.AuditRecord) (*types.AuditRecord, error) {
				if rec.IPAddress != "unknown" || rec.UserAgent != "unknown" {
					t.Errorf("expected normalized provenance, got %q %q", rec.IPAddress, rec.UserAgent)
				}
				return rec, nil
			},
		)

		err := s.Record(context.Background(), &types.AuditRecord{
			AdminUserID: "user-1",
			BoardID:     &boardID,
			Action:      types.AuditActionBoardCreated,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("keeps populated provenance", func(t *testing.T) {
		s, st := newService(t)

		st.EXPECT().CreateAuditRecord(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, rec *types.AuditRecord) (*types.AuditRecord, error) {
				if rec.IPAddress != "10.0.0.1" || rec.UserAgent != "cli" {
					t.Errorf("provenance altered: %q %q", rec.IPAddress, rec.UserAgent)
				}
				return rec, nil
			},
		)

		err := s.Record(context.Background(), &types.AuditRecord{
			AdminUserID: "user-1",
			BoardID:     &boardID,
			Action:      types.AuditActionBoardCreated,
			IPAddress:   "10.0.0.1",
			UserAgent:   "cli",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("storage failure surfaces", func(t *testing.T) {
		s, st := newService(t)
		dbErr := errors.New("db error")

		st.EXPECT().CreateAuditRecord(gomock.Any(), gomock.Any()).Return(nil, dbErr)

		err := s.Record(context.Background(), &types.AuditRecord{AdminUserID: "user-1", Action: types.AuditActionBoardCreated})
		if !errors.Is(err, dbErr) {
			t.Fatalf("expected %v, got %v", dbErr, err)
		}
	})
}

func TestService_ListByBoard(t *testing.T) {
	s, st := newService(t)

	st.EXPECT().ListAuditRecordsByBoardID(gomock.Any(), "board-1", int64(0), int64(50)).
		Return([]*types.AuditRecord{{Action: types.AuditActionBoardCreated}}, nil)

	records, err := s.ListByBoard(context.Background(), "board-1", 0, 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 {
		t.Errorf("expected 1 record, got %d", len(records))
	}
}

func TestService_ListByAdmin(t *testing.T) {
	s, st := newService(t)

	st.EXPECT().ListAuditRecordsByAdminID(gomock.Any(), "user-1", int64(1), int64(25)).
		Return(nil, nil)

	if _, err := s.ListByAdmin(context.Background(), "user-1", 1, 25); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
