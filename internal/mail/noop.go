// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package mail

import "context"

var _ ClientInterface = (*NoopClient)(nil)

// NoopClient drops messages. Used when no gateway is configured.
type NoopClient struct{}

func (c *NoopClient) Send(context.Context, string, Template, map[string]any) error {
	return nil
}

func NewNoopClient() *NoopClient {
	return new(NoopClient)
}
