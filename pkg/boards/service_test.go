// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package boards

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/canonical/board-service/internal/logging"
	"github.com/canonical/board-service/internal/monitoring"
	"github.com/canonical/board-service/internal/storage"
	"github.com/canonical/board-service/internal/tracing"
	"github.com/canonical/board-service/internal/types"
	"github.com/canonical/board-service/pkg/authorization"
	"github.com/canonical/board-service/pkg/roles"
)

//go:generate mockgen -build_flags=--mod=mod -package boards -destination ./mock_boards.go -source=./interfaces.go

type serviceMocks struct {
	storage *MockStorageInterface
	tx      *MockTxRunnerInterface
	audit   *MockAuditRecorderInterface
}

func newService(t *testing.T) (*Service, serviceMocks) {
	ctrl := gomock.NewController(t)

	m := serviceMocks{
		storage: NewMockStorageInterface(ctrl),
		tx:      NewMockTxRunnerInterface(ctrl),
		audit:   NewMockAuditRecorderInterface(ctrl),
	}

	s := NewService(m.storage, m.tx, m.audit, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())

	return s, m
}

func passthroughTx(m serviceMocks) {
	m.tx.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)
}

func ownerCtx() *authorization.Context {
	return &authorization.Context{UserID: "user-1", BoardID: "board-1", Role: roles.Owner}
}

func TestService_Create(t *testing.T) {
	dbErr := errors.New("db error")

	testCases := []struct {
		name        string
		setupMocks  func(serviceMocks)
		expectedErr error
	}{
		{
			name: "success seeds owner membership",
			setupMocks: func(m serviceMocks) {
				passthroughTx(m)
				m.storage.EXPECT().CreateBoard(gomock.Any(), "Roadmap").
					Return(&types.Board{ID: "board-1", Name: "Roadmap"}, nil)
				m.storage.EXPECT().CreateMembership(gomock.Any(), "board-1", "user-1", roles.Owner).
					Return(&types.Membership{BoardID: "board-1", UserID: "user-1", Role: roles.Owner}, nil)
				m.audit.EXPECT().Record(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, rec *types.AuditRecord) error {
						if rec.Action != types.AuditActionBoardCreated {
							t.Errorf("expected action %s, got %s", types.AuditActionBoardCreated, rec.Action)
						}
						if rec.AdminUserID != "user-1" {
							t.Errorf("expected actor user-1, got %s", rec.AdminUserID)
						}
						if rec.BoardID == nil || *rec.BoardID != "board-1" {
							t.Errorf("expected board-1 on the record, got %v", rec.BoardID)
						}
						return nil
					},
				)
			},
		},
		{
			name: "board insert failure rolls back",
			setupMocks: func(m serviceMocks) {
				passthroughTx(m)
				m.storage.EXPECT().CreateBoard(gomock.Any(), "Roadmap").
					Return(nil, dbErr)
			},
			expectedErr: dbErr,
		},
		{
			name: "membership insert failure rolls back",
			setupMocks: func(m serviceMocks) {
				passthroughTx(m)
				m.storage.EXPECT().CreateBoard(gomock.Any(), "Roadmap").
					Return(&types.Board{ID: "board-1", Name: "Roadmap"}, nil)
				m.storage.EXPECT().CreateMembership(gomock.Any(), "board-1", "user-1", roles.Owner).
					Return(nil, dbErr)
			},
			expectedErr: dbErr,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, m := newService(t)
			tc.setupMocks(m)

			board, err := s.Create(context.Background(), "user-1", "Roadmap", types.RequestMeta{})

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if board == nil || board.ID != "board-1" {
				t.Errorf("expected board-1, got %+v", board)
			}
		})
	}
}

func TestService_Get(t *testing.T) {
	testCases := []struct {
		name        string
		setupMocks  func(serviceMocks)
		expectedErr error
	}{
		{
			name: "success",
			setupMocks: func(m serviceMocks) {
				m.storage.EXPECT().GetBoardByID(gomock.Any(), "board-1").
					Return(&types.Board{ID: "board-1", Name: "Roadmap"}, nil)
			},
		},
		{
			name: "unknown board",
			setupMocks: func(m serviceMocks) {
				m.storage.EXPECT().GetBoardByID(gomock.Any(), "board-1").
					Return(nil, storage.ErrNotFound)
			},
			expectedErr: types.ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, m := newService(t)
			tc.setupMocks(m)

			board, err := s.Get(context.Background(), "board-1")

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if board.Name != "Roadmap" {
				t.Errorf("expected Roadmap, got %s", board.Name)
			}
		})
	}
}

func TestService_List(t *testing.T) {
	s, m := newService(t)

	m.storage.EXPECT().ListBoardsByUserID(gomock.Any(), "user-1").
		Return([]*types.Board{{ID: "board-1"}, {ID: "board-2"}}, nil)

	boards, err := s.List(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(boards) != 2 {
		t.Errorf("expected 2 boards, got %d", len(boards))
	}
}

func TestService_SetArchived(t *testing.T) {
	testCases := []struct {
		name        string
		archived    bool
		setupMocks  func(serviceMocks)
		expectedErr error
	}{
		{
			name:     "archiving is audited",
			archived: true,
			setupMocks: func(m serviceMocks) {
				m.storage.EXPECT().SetBoardArchived(gomock.Any(), "board-1", true).Return(nil)
				m.audit.EXPECT().Record(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, rec *types.AuditRecord) error {
						if rec.Action != types.AuditActionBoardArchived {
							t.Errorf("expected action %s, got %s", types.AuditActionBoardArchived, rec.Action)
						}
						return nil
					},
				)
			},
		},
		{
			name:     "unarchiving is not audited",
			archived: false,
			setupMocks: func(m serviceMocks) {
				m.storage.EXPECT().SetBoardArchived(gomock.Any(), "board-1", false).Return(nil)
			},
		},
		{
			name:     "unknown board",
			archived: true,
			setupMocks: func(m serviceMocks) {
				m.storage.EXPECT().SetBoardArchived(gomock.Any(), "board-1", true).
					Return(storage.ErrNotFound)
			},
			expectedErr: types.ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, m := newService(t)
			tc.setupMocks(m)

			err := s.SetArchived(context.Background(), ownerCtx(), tc.archived, types.RequestMeta{})

			if !errors.Is(err, tc.expectedErr) {
				t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
			}
		})
	}
}

func TestService_Delete(t *testing.T) {
	testCases := []struct {
		name        string
		authz       *authorization.Context
		setupMocks  func(serviceMocks)
		expectedErr error
	}{
		{
			name: "success records the deletion",
			setupMocks: func(m serviceMocks) {
				m.storage.EXPECT().DeleteBoard(gomock.Any(), "board-1").Return(nil)
				m.audit.EXPECT().Record(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, rec *types.AuditRecord) error {
						if rec.Action != types.AuditActionBoardDeleted {
							t.Errorf("expected action %s, got %s", types.AuditActionBoardDeleted, rec.Action)
						}
						return nil
					},
				)
			},
		},
		{
			name:        "admin cannot delete",
			authz:       &authorization.Context{UserID: "user-2", BoardID: "board-1", Role: roles.Admin},
			setupMocks:  func(m serviceMocks) {},
			expectedErr: types.ErrForbidden,
		},
		{
			name:        "viewer cannot delete",
			authz:       &authorization.Context{UserID: "user-3", BoardID: "board-1", Role: roles.Viewer},
			setupMocks:  func(m serviceMocks) {},
			expectedErr: types.ErrForbidden,
		},
		{
			name: "unknown board",
			setupMocks: func(m serviceMocks) {
				m.storage.EXPECT().DeleteBoard(gomock.Any(), "board-1").
					Return(storage.ErrNotFound)
			},
			expectedErr: types.ErrNotFound,
		},
		{
			name: "audit failure does not undo the deletion",
			setupMocks: func(m serviceMocks) {
				m.storage.EXPECT().DeleteBoard(gomock.Any(), "board-1").Return(nil)
				m.audit.EXPECT().Record(gomock.Any(), gomock.Any()).
					Return(errors.New("audit sink down"))
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, m := newService(t)
			tc.setupMocks(m)

			authz := tc.authz
			if authz == nil {
				authz = ownerCtx()
			}

			err := s.Delete(context.Background(), authz, types.RequestMeta{})

			if !errors.Is(err, tc.expectedErr) {
				t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
			}
		})
	}
}
