// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package authorization is the single place where board privilege is
// decided. Every mutating service method takes the *Context produced
// here, so a call path that skipped the check does not type-check.
package authorization

import (
	"context"
	"errors"
	"fmt"

	"github.com/canonical/board-service/internal/logging"
	"github.com/canonical/board-service/internal/monitoring"
	"github.com/canonical/board-service/internal/storage"
	"github.com/canonical/board-service/internal/tracing"
	"github.com/canonical/board-service/internal/types"
	"github.com/canonical/board-service/pkg/roles"
)

// Context is the proof that a privilege check succeeded; RequireRole is
// the only production code path that builds one.
type Context struct {
	UserID  string
	BoardID string
	Role    roles.Role
}

// Can reports whether the authorized role meets need. It lets callers
// branch on privilege without re-reading the membership.
func (c *Context) Can(need roles.Role) bool {
	return roles.AtLeast(c.Role, need)
}

type Authorizer struct {
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewAuthorizer(s StorageInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Authorizer {
	a := new(Authorizer)

	a.storage = s

	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}

// RequireRole authorizes userID for an action needing minimum on boardID.
// ErrUnauthorized means no membership at all; ErrForbidden means the
// membership's role is below minimum.
func (a *Authorizer) RequireRole(ctx context.Context, userID, boardID string, minimum roles.Role) (*Context, error) {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.RequireRole")
	defer span.End()

	m, err := a.storage.GetMembership(ctx, boardID, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			a.logger.Security().AuthzFailure(userID, fmt.Sprintf("board:%s", boardID))
			return nil, types.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to resolve membership: %w", err)
	}

	if !roles.AtLeast(m.Role, minimum) {
		a.logger.Security().AuthzFailure(userID, fmt.Sprintf("board:%s min:%s", boardID, minimum))
		return nil, types.ErrForbidden
	}

	return &Context{UserID: userID, BoardID: boardID, Role: m.Role}, nil
}

// IsOwner is a convenience over RequireRole for owner-gated operations.
func (a *Authorizer) IsOwner(ctx context.Context, userID, boardID string) (bool, error) {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.IsOwner")
	defer span.End()

	_, err := a.RequireRole(ctx, userID, boardID, roles.Owner)
	if err != nil {
		if errors.Is(err, types.ErrUnauthorized) || errors.Is(err, types.ErrForbidden) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}
