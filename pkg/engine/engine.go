// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package engine wires the board services into a single embeddable unit.
// Applications construct one Engine and reach every board capability
// through its fields; the serve command builds the same Engine the
// embedders do.
package engine

import (
	"time"

	"github.com/canonical/board-service/internal/db"
	"github.com/canonical/board-service/internal/logging"
	"github.com/canonical/board-service/internal/monitoring"
	"github.com/canonical/board-service/internal/storage"
	"github.com/canonical/board-service/internal/tracing"
	"github.com/canonical/board-service/pkg/audit"
	"github.com/canonical/board-service/pkg/authorization"
	"github.com/canonical/board-service/pkg/boards"
	"github.com/canonical/board-service/pkg/invitations"
	"github.com/canonical/board-service/pkg/memberships"
	"github.com/canonical/board-service/pkg/ordering"
)

type Engine struct {
	Authorizer  *authorization.Authorizer
	Boards      boards.ServiceInterface
	Members     memberships.ServiceInterface
	Invitations invitations.ServiceInterface
	Ordering    ordering.ServiceInterface
	Audit       audit.ServiceInterface
}

func New(
	s storage.StorageInterface,
	dbClient db.DBClientInterface,
	mailer invitations.MailerInterface,
	dir invitations.DirectoryInterface,
	invitationLifetime time.Duration,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Engine {
	auditService := audit.NewService(s, tracer, monitor, logger)
	memberService := memberships.NewService(s, dbClient, auditService, tracer, monitor, logger)

	return &Engine{
		Authorizer:  authorization.NewAuthorizer(s, tracer, monitor, logger),
		Boards:      boards.NewService(s, dbClient, auditService, tracer, monitor, logger),
		Members:     memberService,
		Invitations: invitations.NewService(s, memberService, dir, mailer, dbClient, auditService, invitationLifetime, tracer, monitor, logger),
		Ordering:    ordering.NewService(s, tracer, monitor, logger),
		Audit:       auditService,
	}
}
