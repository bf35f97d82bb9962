// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package validation holds the pure membership-mutation predicates. They
// are evaluated by callers before any write is attempted so user-facing
// errors can be produced without touching storage; the membership service
// re-applies the owner floor against its transactional snapshot.
package validation

import (
	"github.com/canonical/board-service/internal/types"
	"github.com/canonical/board-service/pkg/roles"
)

// ValidateSelfRoleChange rejects an actor altering their own role. A
// no-op change is allowed so idempotent updates do not error.
func ValidateSelfRoleChange(actingUserID, targetUserID string, currentRole, newRole roles.Role) error {
	if actingUserID != targetUserID {
		return nil
	}
	if currentRole == newRole {
		return nil
	}
	return types.ErrSelfRoleChange
}

// ValidateRoleAssignment requires the acting role to be strictly above the
// role being granted. An admin can grant member or viewer but not admin;
// only an owner can grant admin; nobody grants owner through this path.
func ValidateRoleAssignment(actingRole, newRole roles.Role) error {
	if !newRole.Valid() {
		return types.ErrRoleNotAssignable
	}
	if roles.Compare(actingRole, newRole) <= 0 {
		return types.ErrRoleNotAssignable
	}
	return nil
}

// ValidateOwnerRequirement enforces the owner floor: when the target holds
// the owner role and no other owner exists, neither removal nor a demotion
// may proceed. newRole is nil for removals.
func ValidateOwnerRequirement(currentTargetRole roles.Role, ownerCount int, newRole *roles.Role, isRemoval bool) error {
	if currentTargetRole != roles.Owner {
		return nil
	}
	if ownerCount > 1 {
		return nil
	}
	if isRemoval {
		return types.ErrLastOwnerViolation
	}
	if newRole != nil && *newRole != roles.Owner {
		return types.ErrLastOwnerViolation
	}
	return nil
}
