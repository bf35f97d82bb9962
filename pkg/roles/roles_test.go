// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package roles

import "testing"

func TestCompare(t *testing.T) {
	testCases := []struct {
		name     string
		a, b     Role
		expected int
	}{
		{name: "viewer below member", a: Viewer, b: Member, expected: -1},
		{name: "member below admin", a: Member, b: Admin, expected: -1},
		{name: "admin below owner", a: Admin, b: Owner, expected: -1},
		{name: "owner above viewer", a: Owner, b: Viewer, expected: 1},
		{name: "equal roles", a: Admin, b: Admin, expected: 0},
		{name: "unknown ranks below valid", a: Role("banana"), b: Viewer, expected: -1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Compare(tc.a, tc.b); got != tc.expected {
				t.Errorf("Compare(%s, %s) = %d, expected %d", tc.a, tc.b, got, tc.expected)
			}
		})
	}
}

func TestAtLeast(t *testing.T) {
	testCases := []struct {
		name       string
		have, need Role
		expected   bool
	}{
		{name: "owner meets admin", have: Owner, need: Admin, expected: true},
		{name: "admin meets admin", have: Admin, need: Admin, expected: true},
		{name: "member fails admin", have: Member, need: Admin, expected: false},
		{name: "viewer meets viewer", have: Viewer, need: Viewer, expected: true},
		{name: "unknown fails viewer", have: Role(""), need: Viewer, expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := AtLeast(tc.have, tc.need); got != tc.expected {
				t.Errorf("AtLeast(%s, %s) = %t, expected %t", tc.have, tc.need, got, tc.expected)
			}
		})
	}
}

func TestParse(t *testing.T) {
	for _, valid := range []string{"viewer", "member", "admin", "owner"} {
		if _, ok := Parse(valid); !ok {
			t.Errorf("Parse(%q) rejected a valid role", valid)
		}
	}

	for _, invalid := range []string{"", "OWNER", "superuser"} {
		if _, ok := Parse(invalid); ok {
			t.Errorf("Parse(%q) accepted an invalid role", invalid)
		}
	}
}

func TestCanInvite(t *testing.T) {
	if CanInvite(Owner) {
		t.Error("owner must not be invitable")
	}
	for _, r := range []Role{Admin, Member, Viewer} {
		if !CanInvite(r) {
			t.Errorf("%s should be invitable", r)
		}
	}
}
