// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package mail

import "context"

// Template identifies the message kind rendered by the mail gateway.
type Template string

const (
	TemplateInvitation Template = "board_invitation"
)

// ClientInterface is the outbound notification contract. Delivery failure
// must surface as an error; callers decide whether the surrounding write
// rolls back.
type ClientInterface interface {
	Send(ctx context.Context, to string, template Template, payload map[string]any) error
}
