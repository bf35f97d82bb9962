// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"

	"github.com/canonical/board-service/pkg/roles"
)

type Board struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Archived  bool      `db:"archived"`
	CreatedAt time.Time `db:"created_at"`
}

type Membership struct {
	ID        string     `db:"id"`
	BoardID   string     `db:"board_id"`
	UserID    string     `db:"user_id"`
	Role      roles.Role `db:"role"`
	CreatedAt time.Time  `db:"created_at"`
}

type Column struct {
	ID        string    `db:"id"`
	BoardID   string    `db:"board_id"`
	Title     string    `db:"title"`
	Position  int64     `db:"position"`
	CreatedAt time.Time `db:"created_at"`
}

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Card carries its board id alongside the column id so authorization can
// resolve the board without a join through columns.
type Card struct {
	ID          string     `db:"id"`
	BoardID     string     `db:"board_id"`
	ColumnID    string     `db:"column_id"`
	Title       string     `db:"title"`
	Description string     `db:"description"`
	AssigneeID  *string    `db:"assignee_id"`
	DueDate     *time.Time `db:"due_date"`
	Priority    Priority   `db:"priority"`
	Position    int64      `db:"position"`
	CreatedAt   time.Time  `db:"created_at"`
}

type InvitationStatus string

const (
	InvitationPending  InvitationStatus = "pending"
	InvitationAccepted InvitationStatus = "accepted"
	InvitationExpired  InvitationStatus = "expired"
)

type Invitation struct {
	ID         string     `db:"id"`
	BoardID    string     `db:"board_id"`
	Email      string     `db:"email"`
	Role       roles.Role `db:"role"`
	InvitedBy  string     `db:"invited_by"`
	Token      string     `db:"token"`
	ExpiresAt  time.Time  `db:"expires_at"`
	AcceptedAt *time.Time `db:"accepted_at"`
	CreatedAt  time.Time  `db:"created_at"`
}

// Status derives the invitation state from its timestamps. The state is
// never stored, so it cannot drift from the values that determine it.
func (i *Invitation) Status(now time.Time) InvitationStatus {
	if i.AcceptedAt != nil {
		return InvitationAccepted
	}
	if now.After(i.ExpiresAt) {
		return InvitationExpired
	}
	return InvitationPending
}

// Audit action tags. Closed set; services only ever emit these values.
const (
	AuditActionInviteUser          = "invite_user"
	AuditActionInvitationResent    = "invitation_resent"
	AuditActionInvitationCancelled = "invitation_cancelled"
	AuditActionInvitationAccepted  = "invitation_accepted"
	AuditActionUpdateRole          = "update_role"
	AuditActionRemoveUser          = "remove_user"
	AuditActionGrantAccess         = "grant_access"
	AuditActionBoardCreated        = "board_created"
	AuditActionBoardArchived       = "board_archived"
	AuditActionBoardDeleted        = "board_deleted"
)

type AuditRecord struct {
	ID           string         `db:"id"`
	AdminUserID  string         `db:"admin_user_id"`
	TargetUserID *string        `db:"target_user_id"`
	BoardID      *string        `db:"board_id"`
	Action       string         `db:"action"`
	Details      map[string]any `db:"details"`
	IPAddress    string         `db:"ip_address"`
	UserAgent    string         `db:"user_agent"`
	CreatedAt    time.Time      `db:"created_at"`
}

// RequestMeta carries best-effort caller attribution into audit records.
type RequestMeta struct {
	IPAddress string
	UserAgent string
}

// Normalized returns meta with empty fields replaced by "unknown".
func (m RequestMeta) Normalized() RequestMeta {
	if m.IPAddress == "" {
		m.IPAddress = "unknown"
	}
	if m.UserAgent == "" {
		m.UserAgent = "unknown"
	}
	return m
}
