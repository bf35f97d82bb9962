// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invitations

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/canonical/board-service/internal/logging"
	"github.com/canonical/board-service/internal/mail"
	"github.com/canonical/board-service/internal/monitoring"
	"github.com/canonical/board-service/internal/storage"
	"github.com/canonical/board-service/internal/tracing"
	"github.com/canonical/board-service/internal/types"
	"github.com/canonical/board-service/pkg/authorization"
	"github.com/canonical/board-service/pkg/roles"
)

//go:generate mockgen -build_flags=--mod=mod -package invitations -destination ./mock_invitations.go -source=./interfaces.go

const lifetime = 168 * time.Hour

type serviceMocks struct {
	storage   *MockStorageInterface
	members   *MockMembersInterface
	directory *MockDirectoryInterface
	mailer    *MockMailerInterface
	tx        *MockTxRunnerInterface
	audit     *MockAuditRecorderInterface
}

func newService(t *testing.T) (*Service, serviceMocks) {
	ctrl := gomock.NewController(t)

	m := serviceMocks{
		storage:   NewMockStorageInterface(ctrl),
		members:   NewMockMembersInterface(ctrl),
		directory: NewMockDirectoryInterface(ctrl),
		mailer:    NewMockMailerInterface(ctrl),
		tx:        NewMockTxRunnerInterface(ctrl),
		audit:     NewMockAuditRecorderInterface(ctrl),
	}

	s := NewService(m.storage, m.members, m.directory, m.mailer, m.tx, m.audit, lifetime,
		tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())

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
	return &authorization.Context{UserID: "owner-1", BoardID: "board-1", Role: roles.Owner}
}

func TestService_Invite(t *testing.T) {
	testCases := []struct {
		name        string
		authz       *authorization.Context
		email       string
		role        roles.Role
		setupMocks  func(serviceMocks)
		expectedErr error
	}{
		{
			name:  "success",
			authz: ownerCtx(),
			email: "new@example.com",
			role:  roles.Member,
			setupMocks: func(m serviceMocks) {
				m.directory.EXPECT().GetUserIDByEmail(gomock.Any(), "new@example.com").Return("", nil)
				m.storage.EXPECT().GetPendingInvitation(gomock.Any(), "board-1", "new@example.com", gomock.Any()).
					Return(nil, storage.ErrNotFound)
				passthroughTx(m)
				m.storage.EXPECT().CreateInvitation(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, inv *types.Invitation) (*types.Invitation, error) {
						if len(inv.Token) != 32 {
							t.Errorf("expected 32 hex char token, got %q", inv.Token)
						}
						if got := inv.ExpiresAt.Sub(inv.CreatedAt); got != lifetime {
							t.Errorf("expected lifetime %s, got %s", lifetime, got)
						}
						return inv, nil
					},
				)
				m.mailer.EXPECT().Send(gomock.Any(), "new@example.com", mail.TemplateInvitation, gomock.Any()).Return(nil)
				m.audit.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:        "invalid email",
			authz:       ownerCtx(),
			email:       "not-an-email",
			role:        roles.Member,
			setupMocks:  func(serviceMocks) {},
			expectedErr: types.ErrInvalidEmail,
		},
		{
			name:        "owner role not invitable",
			authz:       ownerCtx(),
			email:       "new@example.com",
			role:        roles.Owner,
			setupMocks:  func(serviceMocks) {},
			expectedErr: types.ErrRoleNotAssignable,
		},
		{
			name:        "admin cannot invite admin",
			authz:       &authorization.Context{UserID: "admin-1", BoardID: "board-1", Role: roles.Admin},
			email:       "new@example.com",
			role:        roles.Admin,
			setupMocks:  func(serviceMocks) {},
			expectedErr: types.ErrRoleNotAssignable,
		},
		{
			name:  "already a member",
			authz: ownerCtx(),
			email: "member@example.com",
			role:  roles.Member,
			setupMocks: func(m serviceMocks) {
				m.directory.EXPECT().GetUserIDByEmail(gomock.Any(), "member@example.com").Return("user-9", nil)
				m.members.EXPECT().GetRole(gomock.Any(), "board-1", "user-9").Return(roles.Viewer, nil)
			},
			expectedErr: types.ErrAlreadyMember,
		},
		{
			name:  "duplicate pending invitation",
			authz: ownerCtx(),
			email: "new@example.com",
			role:  roles.Member,
			setupMocks: func(m serviceMocks) {
				m.directory.EXPECT().GetUserIDByEmail(gomock.Any(), "new@example.com").Return("", nil)
				m.storage.EXPECT().GetPendingInvitation(gomock.Any(), "board-1", "new@example.com", gomock.Any()).
					Return(&types.Invitation{ID: "inv-1"}, nil)
			},
			expectedErr: types.ErrDuplicatePendingInvitation,
		},
		{
			name:  "delivery failure rolls back",
			authz: ownerCtx(),
			email: "new@example.com",
			role:  roles.Member,
			setupMocks: func(m serviceMocks) {
				m.directory.EXPECT().GetUserIDByEmail(gomock.Any(), "new@example.com").Return("", nil)
				m.storage.EXPECT().GetPendingInvitation(gomock.Any(), "board-1", "new@example.com", gomock.Any()).
					Return(nil, storage.ErrNotFound)
				passthroughTx(m)
				m.storage.EXPECT().CreateInvitation(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, inv *types.Invitation) (*types.Invitation, error) {
						return inv, nil
					},
				)
				m.mailer.EXPECT().Send(gomock.Any(), "new@example.com", mail.TemplateInvitation, gomock.Any()).
					Return(errors.New("gateway down"))
			},
			expectedErr: errSentinelDeliveryFailed,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, m := newService(t)
			tc.setupMocks(m)

			inv, err := s.Invite(context.Background(), tc.authz, tc.email, tc.role, types.RequestMeta{})

			if tc.expectedErr != nil {
				if tc.expectedErr == errSentinelDeliveryFailed {
					if err == nil {
						t.Fatal("expected delivery error")
					}
					return
				}
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if inv.Email != tc.email || inv.Role != tc.role {
				t.Errorf("invitation fields wrong: %+v", inv)
			}
		})
	}
}

// errSentinelDeliveryFailed marks cases where any non-nil error is
// acceptable since the message comes from the mail gateway.
var errSentinelDeliveryFailed = errors.New("sentinel: delivery failed")

func TestService_Resend(t *testing.T) {
	accepted := time.Now().Add(-time.Hour)

	testCases := []struct {
		name        string
		setupMocks  func(serviceMocks)
		expectedErr error
	}{
		{
			name: "success refreshes window",
			setupMocks: func(m serviceMocks) {
				m.storage.EXPECT().GetInvitationByID(gomock.Any(), "inv-1").
					Return(&types.Invitation{ID: "inv-1", BoardID: "board-1", Email: "new@example.com", Role: roles.Member, Token: "tok", ExpiresAt: time.Now().Add(-time.Hour)}, nil)
				passthroughTx(m)
				m.storage.EXPECT().RefreshInvitation(gomock.Any(), "inv-1", gomock.Any(), gomock.Any()).
					Return(&types.Invitation{ID: "inv-1", BoardID: "board-1"}, nil)
				m.mailer.EXPECT().Send(gomock.Any(), "new@example.com", mail.TemplateInvitation, gomock.Any()).Return(nil)
				m.audit.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "already accepted",
			setupMocks: func(m serviceMocks) {
				m.storage.EXPECT().GetInvitationByID(gomock.Any(), "inv-1").
					Return(&types.Invitation{ID: "inv-1", BoardID: "board-1", AcceptedAt: &accepted}, nil)
			},
			expectedErr: types.ErrAlreadyAccepted,
		},
		{
			name: "invitation on another board is hidden",
			setupMocks: func(m serviceMocks) {
				m.storage.EXPECT().GetInvitationByID(gomock.Any(), "inv-1").
					Return(&types.Invitation{ID: "inv-1", BoardID: "other-board"}, nil)
			},
			expectedErr: types.ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, m := newService(t)
			tc.setupMocks(m)

			_, err := s.Resend(context.Background(), ownerCtx(), "inv-1", types.RequestMeta{})

			if !errors.Is(err, tc.expectedErr) {
				t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
			}
		})
	}
}

func TestService_Cancel(t *testing.T) {
	accepted := time.Now().Add(-time.Hour)

	testCases := []struct {
		name        string
		setupMocks  func(serviceMocks)
		expectedErr error
	}{
		{
			name: "success",
			setupMocks: func(m serviceMocks) {
				m.storage.EXPECT().GetInvitationByID(gomock.Any(), "inv-1").
					Return(&types.Invitation{ID: "inv-1", BoardID: "board-1", ExpiresAt: time.Now().Add(time.Hour)}, nil)
				m.storage.EXPECT().DeleteInvitation(gomock.Any(), "inv-1").Return(nil)
				m.audit.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "already gone is a no-op",
			setupMocks: func(m serviceMocks) {
				m.storage.EXPECT().GetInvitationByID(gomock.Any(), "inv-1").
					Return(nil, storage.ErrNotFound)
			},
		},
		{
			name: "accepted invitation cannot be cancelled",
			setupMocks: func(m serviceMocks) {
				m.storage.EXPECT().GetInvitationByID(gomock.Any(), "inv-1").
					Return(&types.Invitation{ID: "inv-1", BoardID: "board-1", AcceptedAt: &accepted}, nil)
			},
			expectedErr: types.ErrAlreadyAccepted,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, m := newService(t)
			tc.setupMocks(m)

			err := s.Cancel(context.Background(), ownerCtx(), "inv-1", types.RequestMeta{})

			if !errors.Is(err, tc.expectedErr) {
				t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
			}
		})
	}
}

func TestService_Accept(t *testing.T) {
	accepted := time.Now().Add(-time.Hour)
	pending := types.Invitation{
		ID:        "inv-1",
		BoardID:   "board-1",
		Email:     "new@example.com",
		Role:      roles.Member,
		Token:     "tok",
		ExpiresAt: time.Now().Add(time.Hour),
	}

	testCases := []struct {
		name         string
		setupMocks   func(serviceMocks)
		expectedRole roles.Role
		expectedErr  error
	}{
		{
			name: "success creates membership at invited role",
			setupMocks: func(m serviceMocks) {
				inv := pending
				m.storage.EXPECT().GetInvitationByToken(gomock.Any(), "tok").Return(&inv, nil)
				passthroughTx(m)
				m.storage.EXPECT().MarkInvitationAccepted(gomock.Any(), "inv-1", gomock.Any()).Return(nil)
				m.members.EXPECT().GetRole(gomock.Any(), "board-1", "user-1").Return(roles.Role(""), types.ErrNotFound)
				m.members.EXPECT().Create(gomock.Any(), "board-1", "user-1", roles.Member).
					Return(&types.Membership{BoardID: "board-1", UserID: "user-1", Role: roles.Member}, nil)
				m.audit.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)
			},
			expectedRole: roles.Member,
		},
		{
			name: "existing member keeps current role",
			setupMocks: func(m serviceMocks) {
				inv := pending
				m.storage.EXPECT().GetInvitationByToken(gomock.Any(), "tok").Return(&inv, nil)
				passthroughTx(m)
				m.storage.EXPECT().MarkInvitationAccepted(gomock.Any(), "inv-1", gomock.Any()).Return(nil)
				m.members.EXPECT().GetRole(gomock.Any(), "board-1", "user-1").Return(roles.Admin, nil)
				m.audit.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)
			},
			expectedRole: roles.Admin,
		},
		{
			name: "unknown token",
			setupMocks: func(m serviceMocks) {
				m.storage.EXPECT().GetInvitationByToken(gomock.Any(), "tok").Return(nil, storage.ErrNotFound)
			},
			expectedErr: types.ErrInvalidToken,
		},
		{
			name: "expired invitation",
			setupMocks: func(m serviceMocks) {
				inv := pending
				inv.ExpiresAt = time.Now().Add(-time.Minute)
				m.storage.EXPECT().GetInvitationByToken(gomock.Any(), "tok").Return(&inv, nil)
			},
			expectedErr: types.ErrInvitationExpired,
		},
		{
			name: "double accept refused",
			setupMocks: func(m serviceMocks) {
				inv := pending
				inv.AcceptedAt = &accepted
				m.storage.EXPECT().GetInvitationByToken(gomock.Any(), "tok").Return(&inv, nil)
			},
			expectedErr: types.ErrAlreadyAccepted,
		},
		{
			name: "concurrent grant during accept is benign",
			setupMocks: func(m serviceMocks) {
				inv := pending
				m.storage.EXPECT().GetInvitationByToken(gomock.Any(), "tok").Return(&inv, nil)
				passthroughTx(m)
				m.storage.EXPECT().MarkInvitationAccepted(gomock.Any(), "inv-1", gomock.Any()).Return(nil)
				m.members.EXPECT().GetRole(gomock.Any(), "board-1", "user-1").Return(roles.Role(""), types.ErrNotFound)
				m.members.EXPECT().Create(gomock.Any(), "board-1", "user-1", roles.Member).
					Return(nil, types.ErrConflict)
				m.members.EXPECT().GetRole(gomock.Any(), "board-1", "user-1").Return(roles.Admin, nil)
				m.audit.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)
			},
			expectedRole: roles.Admin,
		},
		{
			name: "concurrent accept loses the race",
			setupMocks: func(m serviceMocks) {
				inv := pending
				m.storage.EXPECT().GetInvitationByToken(gomock.Any(), "tok").Return(&inv, nil)
				passthroughTx(m)
				m.storage.EXPECT().MarkInvitationAccepted(gomock.Any(), "inv-1", gomock.Any()).
					Return(storage.ErrNotFound)
			},
			expectedErr: types.ErrAlreadyAccepted,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, m := newService(t)
			tc.setupMocks(m)

			membership, err := s.Accept(context.Background(), "tok", "user-1", types.RequestMeta{})

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if membership.Role != tc.expectedRole {
				t.Errorf("expected role %s, got %s", tc.expectedRole, membership.Role)
			}
		})
	}
}
