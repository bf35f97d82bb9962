// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package memberships

import (
	"context"
	"math/rand"
	"testing"

	"github.com/canonical/board-service/internal/logging"
	"github.com/canonical/board-service/internal/monitoring"
	"github.com/canonical/board-service/internal/storage"
	"github.com/canonical/board-service/internal/tracing"
	"github.com/canonical/board-service/internal/types"
	"github.com/canonical/board-service/pkg/authorization"
	"github.com/canonical/board-service/pkg/roles"
)

// memStore is an in-memory StorageInterface for driving long randomized
// sequences against the real service logic.
type memStore struct {
	members map[string]*types.Membership
}

func (s *memStore) key(boardID, userID string) string {
	return boardID + "/" + userID
}

func (s *memStore) GetMembership(_ context.Context, boardID, userID string) (*types.Membership, error) {
	m, ok := s.members[s.key(boardID, userID)]
	if !ok {
		return nil, storage.ErrNotFound
	}
	cp := *m
	return &cp, nil
}

func (s *memStore) ListMembershipsByBoardID(_ context.Context, boardID string) ([]*types.Membership, error) {
	var out []*types.Membership
	for _, m := range s.members {
		if m.BoardID == boardID {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (s *memStore) CountOwners(_ context.Context, boardID string) (int, error) {
	n := 0
	for _, m := range s.members {
		if m.BoardID == boardID && m.Role == roles.Owner {
			n++
		}
	}
	return n, nil
}

func (s *memStore) CreateMembership(_ context.Context, boardID, userID string, role roles.Role) (*types.Membership, error) {
	k := s.key(boardID, userID)
	if _, ok := s.members[k]; ok {
		return nil, storage.ErrDuplicateKey
	}
	m := &types.Membership{BoardID: boardID, UserID: userID, Role: role}
	s.members[k] = m
	cp := *m
	return &cp, nil
}

func (s *memStore) UpdateMembershipRole(_ context.Context, boardID, userID string, role roles.Role) (*types.Membership, error) {
	m, ok := s.members[s.key(boardID, userID)]
	if !ok {
		return nil, storage.ErrNotFound
	}
	m.Role = role
	cp := *m
	return &cp, nil
}

func (s *memStore) DeleteMembership(_ context.Context, boardID, userID string) error {
	k := s.key(boardID, userID)
	if _, ok := s.members[k]; !ok {
		return storage.ErrNotFound
	}
	delete(s.members, k)
	return nil
}

type passthroughRunner struct{}

func (passthroughRunner) WithTx(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

type noopRecorder struct{}

func (noopRecorder) Record(context.Context, *types.AuditRecord) error {
	return nil
}

// TestOwnerFloorProperty drives random create/setRole/remove sequences and
// checks the board never ends up without an owner. Individual operations
// are free to be rejected; the count is what must hold.
func TestOwnerFloorProperty(t *testing.T) {
	const board = "board-1"
	users := []string{"u0", "u1", "u2", "u3", "u4"}
	allRoles := []roles.Role{roles.Viewer, roles.Member, roles.Admin, roles.Owner}
	rng := rand.New(rand.NewSource(42))

	st := &memStore{members: map[string]*types.Membership{}}
	s := NewService(st, passthroughRunner{}, noopRecorder{}, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())

	ctx := context.Background()
	if _, err := s.Create(ctx, board, "u0", roles.Owner); err != nil {
		t.Fatalf("failed to seed owner: %v", err)
	}

	for i := 0; i < 2000; i++ {
		actor := users[rng.Intn(len(users))]
		target := users[rng.Intn(len(users))]
		role := allRoles[rng.Intn(len(allRoles))]

		actorRole, roleErr := s.GetRole(ctx, board, actor)
		authz := &authorization.Context{UserID: actor, BoardID: board, Role: actorRole}

		switch rng.Intn(3) {
		case 0:
			if roleErr == nil {
				s.SetRole(ctx, authz, target, role, types.RequestMeta{})
			}
		case 1:
			if roleErr == nil {
				s.Remove(ctx, authz, target, types.RequestMeta{})
			}
		case 2:
			s.Create(ctx, board, target, role)
		}

		owners, err := st.CountOwners(ctx, board)
		if err != nil {
			t.Fatalf("failed to count owners: %v", err)
		}
		if owners < 1 {
			t.Fatalf("board left without an owner after %d operations", i+1)
		}
	}
}
