// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package memberships

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

//go:generate mockgen -build_flags=--mod=mod -package memberships -destination ./mock_memberships.go -source=./interfaces.go

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

func TestService_GetRole(t *testing.T) {
	dbErr := errors.New("db error")

	testCases := []struct {
		name         string
		setupMocks   func(serviceMocks)
		expectedRole roles.Role
		expectedErr  error
	}{
		{
			name: "success",
			setupMocks: func(m serviceMocks) {
				m.storage.EXPECT().GetMembership(gomock.Any(), "board-1", "user-1").
					Return(&types.Membership{BoardID: "board-1", UserID: "user-1", Role: roles.Admin}, nil)
			},
			expectedRole: roles.Admin,
		},
		{
			name: "no membership",
			setupMocks: func(m serviceMocks) {
				m.storage.EXPECT().GetMembership(gomock.Any(), "board-1", "user-1").
					Return(nil, storage.ErrNotFound)
			},
			expectedErr: types.ErrNotFound,
		},
		{
			name: "storage error",
			setupMocks: func(m serviceMocks) {
				m.storage.EXPECT().GetMembership(gomock.Any(), "board-1", "user-1").
					Return(nil, dbErr)
			},
			expectedErr: dbErr,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, m := newService(t)
			tc.setupMocks(m)

			role, err := s.GetRole(context.Background(), "board-1", "user-1")

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if role != tc.expectedRole {
				t.Errorf("expected role %s, got %s", tc.expectedRole, role)
			}
		})
	}
}

func TestService_Create(t *testing.T) {
	testCases := []struct {
		name        string
		storageErr  error
		expectedErr error
	}{
		{name: "success"},
		{name: "duplicate maps to conflict", storageErr: storage.ErrDuplicateKey, expectedErr: types.ErrConflict},
		{name: "missing board maps to not found", storageErr: storage.ErrForeignKeyViolation, expectedErr: types.ErrNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, m := newService(t)

			if tc.storageErr != nil {
				m.storage.EXPECT().CreateMembership(gomock.Any(), "board-1", "user-1", roles.Member).
					Return(nil, tc.storageErr)
			} else {
				m.storage.EXPECT().CreateMembership(gomock.Any(), "board-1", "user-1", roles.Member).
					Return(&types.Membership{BoardID: "board-1", UserID: "user-1", Role: roles.Member}, nil)
			}

			created, err := s.Create(context.Background(), "board-1", "user-1", roles.Member)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if created.Role != roles.Member {
				t.Errorf("expected role %s, got %s", roles.Member, created.Role)
			}
		})
	}
}

func TestService_Grant(t *testing.T) {
	authz := &authorization.Context{UserID: "admin-1", BoardID: "board-1", Role: roles.Admin}

	testCases := []struct {
		name        string
		role        roles.Role
		setupMocks  func(serviceMocks)
		expectedErr error
	}{
		{
			name: "success",
			role: roles.Member,
			setupMocks: func(m serviceMocks) {
				m.storage.EXPECT().CreateMembership(gomock.Any(), "board-1", "user-1", roles.Member).
					Return(&types.Membership{BoardID: "board-1", UserID: "user-1", Role: roles.Member}, nil)
				m.audit.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:        "actor cannot grant own level",
			role:        roles.Admin,
			setupMocks:  func(serviceMocks) {},
			expectedErr: types.ErrRoleNotAssignable,
		},
		{
			name: "already member",
			role: roles.Member,
			setupMocks: func(m serviceMocks) {
				m.storage.EXPECT().CreateMembership(gomock.Any(), "board-1", "user-1", roles.Member).
					Return(nil, storage.ErrDuplicateKey)
			},
			expectedErr: types.ErrConflict,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, m := newService(t)
			tc.setupMocks(m)

			_, err := s.Grant(context.Background(), authz, "user-1", tc.role, types.RequestMeta{})

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestService_SetRole(t *testing.T) {
	owner := &authorization.Context{UserID: "owner-1", BoardID: "board-1", Role: roles.Owner}

	testCases := []struct {
		name        string
		authz       *authorization.Context
		target      string
		newRole     roles.Role
		setupMocks  func(serviceMocks)
		expectedErr error
	}{
		{
			name:    "success",
			authz:   owner,
			target:  "user-1",
			newRole: roles.Admin,
			setupMocks: func(m serviceMocks) {
				passthroughTx(m)
				m.storage.EXPECT().GetMembership(gomock.Any(), "board-1", "user-1").
					Return(&types.Membership{BoardID: "board-1", UserID: "user-1", Role: roles.Member}, nil)
				m.storage.EXPECT().CountOwners(gomock.Any(), "board-1").Return(2, nil)
				m.storage.EXPECT().UpdateMembershipRole(gomock.Any(), "board-1", "user-1", roles.Admin).
					Return(&types.Membership{BoardID: "board-1", UserID: "user-1", Role: roles.Admin}, nil)
				m.audit.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:        "admin cannot assign admin",
			authz:       &authorization.Context{UserID: "admin-1", BoardID: "board-1", Role: roles.Admin},
			target:      "user-1",
			newRole:     roles.Admin,
			setupMocks:  func(serviceMocks) {},
			expectedErr: types.ErrRoleNotAssignable,
		},
		{
			name:    "own role change refused",
			authz:   owner,
			target:  "owner-1",
			newRole: roles.Admin,
			setupMocks: func(m serviceMocks) {
				passthroughTx(m)
				m.storage.EXPECT().GetMembership(gomock.Any(), "board-1", "owner-1").
					Return(&types.Membership{BoardID: "board-1", UserID: "owner-1", Role: roles.Owner}, nil)
			},
			expectedErr: types.ErrSelfRoleChange,
		},
		{
			name:    "sole owner cannot be demoted",
			authz:   owner,
			target:  "owner-2",
			newRole: roles.Admin,
			setupMocks: func(m serviceMocks) {
				passthroughTx(m)
				m.storage.EXPECT().GetMembership(gomock.Any(), "board-1", "owner-2").
					Return(&types.Membership{BoardID: "board-1", UserID: "owner-2", Role: roles.Owner}, nil)
				m.storage.EXPECT().CountOwners(gomock.Any(), "board-1").Return(1, nil)
			},
			expectedErr: types.ErrLastOwnerViolation,
		},
		{
			name:    "one of two owners can be demoted",
			authz:   owner,
			target:  "owner-2",
			newRole: roles.Admin,
			setupMocks: func(m serviceMocks) {
				passthroughTx(m)
				m.storage.EXPECT().GetMembership(gomock.Any(), "board-1", "owner-2").
					Return(&types.Membership{BoardID: "board-1", UserID: "owner-2", Role: roles.Owner}, nil)
				m.storage.EXPECT().CountOwners(gomock.Any(), "board-1").Return(2, nil)
				m.storage.EXPECT().UpdateMembershipRole(gomock.Any(), "board-1", "owner-2", roles.Admin).
					Return(&types.Membership{BoardID: "board-1", UserID: "owner-2", Role: roles.Admin}, nil)
				m.audit.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:    "target not a member",
			authz:   owner,
			target:  "ghost",
			newRole: roles.Member,
			setupMocks: func(m serviceMocks) {
				passthroughTx(m)
				m.storage.EXPECT().GetMembership(gomock.Any(), "board-1", "ghost").
					Return(nil, storage.ErrNotFound)
			},
			expectedErr: types.ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, m := newService(t)
			tc.setupMocks(m)

			updated, err := s.SetRole(context.Background(), tc.authz, tc.target, tc.newRole, types.RequestMeta{})

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if updated.Role != tc.newRole {
				t.Errorf("expected role %s, got %s", tc.newRole, updated.Role)
			}
		})
	}
}

func TestService_Remove(t *testing.T) {
	owner := &authorization.Context{UserID: "owner-1", BoardID: "board-1", Role: roles.Owner}

	testCases := []struct {
		name        string
		target      string
		setupMocks  func(serviceMocks)
		expectedErr error
	}{
		{
			name:   "success",
			target: "user-1",
			setupMocks: func(m serviceMocks) {
				passthroughTx(m)
				m.storage.EXPECT().GetMembership(gomock.Any(), "board-1", "user-1").
					Return(&types.Membership{BoardID: "board-1", UserID: "user-1", Role: roles.Member}, nil)
				m.storage.EXPECT().CountOwners(gomock.Any(), "board-1").Return(1, nil)
				m.storage.EXPECT().DeleteMembership(gomock.Any(), "board-1", "user-1").Return(nil)
				m.audit.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:        "self removal refused",
			target:      "owner-1",
			setupMocks:  func(serviceMocks) {},
			expectedErr: types.ErrSelfRemovalForbidden,
		},
		{
			name:   "sole owner cannot be removed",
			target: "owner-2",
			setupMocks: func(m serviceMocks) {
				passthroughTx(m)
				m.storage.EXPECT().GetMembership(gomock.Any(), "board-1", "owner-2").
					Return(&types.Membership{BoardID: "board-1", UserID: "owner-2", Role: roles.Owner}, nil)
				m.storage.EXPECT().CountOwners(gomock.Any(), "board-1").Return(1, nil)
			},
			expectedErr: types.ErrLastOwnerViolation,
		},
		{
			name:   "second owner can be removed",
			target: "owner-2",
			setupMocks: func(m serviceMocks) {
				passthroughTx(m)
				m.storage.EXPECT().GetMembership(gomock.Any(), "board-1", "owner-2").
					Return(&types.Membership{BoardID: "board-1", UserID: "owner-2", Role: roles.Owner}, nil)
				m.storage.EXPECT().CountOwners(gomock.Any(), "board-1").Return(2, nil)
				m.storage.EXPECT().DeleteMembership(gomock.Any(), "board-1", "owner-2").Return(nil)
				m.audit.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:   "target not a member",
			target: "ghost",
			setupMocks: func(m serviceMocks) {
				passthroughTx(m)
				m.storage.EXPECT().GetMembership(gomock.Any(), "board-1", "ghost").
					Return(nil, storage.ErrNotFound)
			},
			expectedErr: types.ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, m := newService(t)
			tc.setupMocks(m)

			err := s.Remove(context.Background(), owner, tc.target, types.RequestMeta{})

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestService_AuditFailureDoesNotUndoMutation(t *testing.T) {
	s, m := newService(t)
	authz := &authorization.Context{UserID: "admin-1", BoardID: "board-1", Role: roles.Admin}

	m.storage.EXPECT().CreateMembership(gomock.Any(), "board-1", "user-1", roles.Member).
		Return(&types.Membership{BoardID: "board-1", UserID: "user-1", Role: roles.Member}, nil)
	m.audit.EXPECT().Record(gomock.Any(), gomock.Any()).Return(errors.New("audit store down"))

	created, err := s.Grant(context.Background(), authz, "user-1", roles.Member, types.RequestMeta{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created == nil {
		t.Fatal("expected membership despite audit failure")
	}
}
