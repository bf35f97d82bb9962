// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package directory queries the identity provider's admin API for the
// identities behind email addresses. Authentication itself is out of
// scope; callers arrive with a verified user id and this lookup only
// serves invitation-time duplicate checks.
package directory

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/canonical/board-service/internal/logging"
	"github.com/canonical/board-service/internal/monitoring"
	"github.com/canonical/board-service/internal/tracing"
)

var _ ClientInterface = (*Client)(nil)

type Client struct {
	client *resty.Client

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

type identity struct {
	ID string `json:"id"`
}

func (c *Client) GetUserIDByEmail(ctx context.Context, email string) (string, error) {
	ctx, span := c.tracer.Start(ctx, "directory.Client.GetUserIDByEmail")
	defer span.End()

	var ids []identity
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("credentials_identifier", email).
		SetResult(&ids).
		Get("/admin/identities")

	if err != nil {
		return "", fmt.Errorf("failed to query identity directory: %w", err)
	}

	if resp.StatusCode() == http.StatusNotFound {
		return "", nil
	}
	if resp.IsError() {
		return "", fmt.Errorf("identity directory error: status %d", resp.StatusCode())
	}

	if len(ids) == 0 {
		return "", nil
	}

	return ids[0].ID, nil
}

func NewClient(adminURL string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Client {
	r := resty.New().
		SetBaseURL(adminURL).
		SetTimeout(10 * time.Second)

	return &Client{
		client:  r,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}
