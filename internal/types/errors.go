// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import "errors"

// Domain error taxonomy. These are policy decisions surfaced verbatim to
// callers; infrastructure failures are wrapped separately and never mapped
// onto these values.
var (
	// ErrUnauthorized means the user holds no membership on the board.
	ErrUnauthorized = errors.New("no membership on board")
	// ErrForbidden means a membership exists but its role is insufficient.
	ErrForbidden = errors.New("insufficient role")

	ErrNotFound = errors.New("resource not found")
	ErrConflict = errors.New("conflicting resource exists")

	ErrLastOwnerViolation   = errors.New("board must retain at least one owner")
	ErrSelfRemovalForbidden = errors.New("cannot remove own membership")
	ErrSelfRoleChange       = errors.New("cannot change own role")
	ErrRoleNotAssignable    = errors.New("role not assignable by actor")

	ErrInvalidEmail               = errors.New("invalid email address")
	ErrInvalidToken               = errors.New("invitation token not recognised")
	ErrInvitationExpired          = errors.New("invitation expired")
	ErrAlreadyAccepted            = errors.New("invitation already accepted")
	ErrAlreadyMember              = errors.New("user is already a board member")
	ErrDuplicatePendingInvitation = errors.New("pending invitation already exists")

	ErrNonEmptyColumn      = errors.New("column still holds cards")
	ErrCrossGroupViolation = errors.New("entities span more than one parent group")
)
