// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package validation

import (
	"errors"
	"testing"

	"github.com/canonical/board-service/internal/types"
	"github.com/canonical/board-service/pkg/roles"
)

func TestValidateSelfRoleChange(t *testing.T) {
	testCases := []struct {
		name        string
		acting      string
		target      string
		current     roles.Role
		new         roles.Role
		expectedErr error
	}{
		{name: "different users", acting: "a", target: "b", current: roles.Owner, new: roles.Admin},
		{name: "self no-op allowed", acting: "a", target: "a", current: roles.Admin, new: roles.Admin},
		{name: "self change refused", acting: "a", target: "a", current: roles.Owner, new: roles.Admin, expectedErr: types.ErrSelfRoleChange},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateSelfRoleChange(tc.acting, tc.target, tc.current, tc.new)
			if !errors.Is(err, tc.expectedErr) {
				t.Errorf("expected %v, got %v", tc.expectedErr, err)
			}
		})
	}
}

func TestValidateRoleAssignment(t *testing.T) {
	testCases := []struct {
		name        string
		acting      roles.Role
		new         roles.Role
		expectedErr error
	}{
		{name: "owner grants admin", acting: roles.Owner, new: roles.Admin},
		{name: "owner grants viewer", acting: roles.Owner, new: roles.Viewer},
		{name: "admin grants member", acting: roles.Admin, new: roles.Member},
		{name: "admin cannot grant admin", acting: roles.Admin, new: roles.Admin, expectedErr: types.ErrRoleNotAssignable},
		{name: "owner cannot grant owner", acting: roles.Owner, new: roles.Owner, expectedErr: types.ErrRoleNotAssignable},
		{name: "member cannot grant viewer below nobody", acting: roles.Member, new: roles.Member, expectedErr: types.ErrRoleNotAssignable},
		{name: "unknown role rejected", acting: roles.Owner, new: roles.Role("root"), expectedErr: types.ErrRoleNotAssignable},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateRoleAssignment(tc.acting, tc.new)
			if !errors.Is(err, tc.expectedErr) {
				t.Errorf("expected %v, got %v", tc.expectedErr, err)
			}
		})
	}
}

func TestValidateOwnerRequirement(t *testing.T) {
	admin := roles.Admin
	owner := roles.Owner

	testCases := []struct {
		name        string
		target      roles.Role
		owners      int
		newRole     *roles.Role
		isRemoval   bool
		expectedErr error
	}{
		{name: "non-owner removal", target: roles.Member, owners: 1, isRemoval: true},
		{name: "sole owner removal refused", target: roles.Owner, owners: 1, isRemoval: true, expectedErr: types.ErrLastOwnerViolation},
		{name: "sole owner demotion refused", target: roles.Owner, owners: 1, newRole: &admin, expectedErr: types.ErrLastOwnerViolation},
		{name: "sole owner keeping owner role", target: roles.Owner, owners: 1, newRole: &owner},
		{name: "second owner removal allowed", target: roles.Owner, owners: 2, isRemoval: true},
		{name: "second owner demotion allowed", target: roles.Owner, owners: 2, newRole: &admin},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateOwnerRequirement(tc.target, tc.owners, tc.newRole, tc.isRemoval)
			if !errors.Is(err, tc.expectedErr) {
				t.Errorf("expected %v, got %v", tc.expectedErr, err)
			}
		})
	}
}
