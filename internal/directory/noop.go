// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package directory

import "context"

var _ ClientInterface = (*NoopClient)(nil)

// NoopClient resolves every email as unknown. Used when no directory is
// configured; invitation duplicate checks then rely on storage alone.
type NoopClient struct{}

func (c *NoopClient) GetUserIDByEmail(context.Context, string) (string, error) {
	return "", nil
}

func NewNoopClient() *NoopClient {
	return new(NoopClient)
}
