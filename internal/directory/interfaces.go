// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package directory

import "context"

// ClientInterface resolves email addresses against the external identity
// directory. An unknown email resolves to the empty string, not an error.
type ClientInterface interface {
	GetUserIDByEmail(ctx context.Context, email string) (string, error)
}
