// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package storage implements the persistence accessors for boards,
// memberships, columns, cards, invitations and audit records over the
// squirrel statement builder. It maps constraint violations to sentinel
// errors and leaves all policy decisions to the pkg services.
package storage

import (
	"github.com/canonical/board-service/internal/db"
	"github.com/canonical/board-service/internal/logging"
	"github.com/canonical/board-service/internal/monitoring"
	"github.com/canonical/board-service/internal/tracing"
)

var _ StorageInterface = (*Storage)(nil)

type Storage struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func NewStorage(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Storage {
	s := new(Storage)

	s.db = c

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	return s
}
