// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package roles implements the board role hierarchy and the pure
// validation rules built on top of it. It holds no state and talks to no
// external system; every privilege decision in the service reduces to the
// comparisons defined here.
package roles

type Role string

const (
	Viewer Role = "viewer"
	Member Role = "member"
	Admin  Role = "admin"
	Owner  Role = "owner"
)

// rank defines the total order viewer < member < admin < owner.
var rank = map[Role]int{
	Viewer: 1,
	Member: 2,
	Admin:  3,
	Owner:  4,
}

// Valid reports whether r is one of the four known roles.
func (r Role) Valid() bool {
	_, ok := rank[r]
	return ok
}

func (r Role) String() string {
	return string(r)
}

// Compare returns -1, 0 or 1 as a orders below, equal to or above b.
// Unknown roles rank below every valid role.
func Compare(a, b Role) int {
	ra, rb := rank[a], rank[b]
	switch {
	case ra < rb:
		return -1
	case ra > rb:
		return 1
	default:
		return 0
	}
}

// AtLeast reports whether have grants every privilege need does.
func AtLeast(have, need Role) bool {
	return rank[have] >= rank[need]
}

// Parse returns the Role for s, or false if s names no known role.
func Parse(s string) (Role, bool) {
	r := Role(s)
	return r, r.Valid()
}

// Invitable lists the roles an invitation may carry. Ownership is never
// granted through invitations, only through board creation.
var Invitable = []Role{Admin, Member, Viewer}

// CanInvite reports whether r may appear on an invitation.
func CanInvite(r Role) bool {
	for _, v := range Invitable {
		if v == r {
			return true
		}
	}
	return false
}
