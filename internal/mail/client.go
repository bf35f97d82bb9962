// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package mail talks to the mail-gateway service that renders and delivers
// notification emails. The gateway owns templates and SMTP; this client
// only posts delivery requests.
package mail

import (
	"context"
	"fmt"
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

type sendRequest struct {
	To       string         `json:"to"`
	Template string         `json:"template"`
	Payload  map[string]any `json:"payload"`
}

func (c *Client) Send(ctx context.Context, to string, template Template, payload map[string]any) error {
	ctx, span := c.tracer.Start(ctx, "mail.Client.Send")
	defer span.End()

	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(sendRequest{To: to, Template: string(template), Payload: payload}).
		Post("/v1/messages")

	if err != nil {
		return fmt.Errorf("failed to reach mail gateway: %w", err)
	}

	if resp.IsError() {
		return fmt.Errorf("mail gateway rejected message: status %d", resp.StatusCode())
	}

	return nil
}

func NewClient(gatewayURL string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Client {
	r := resty.New().
		SetBaseURL(gatewayURL).
		SetTimeout(10 * time.Second).
		SetRetryCount(0)

	return &Client{
		client:  r,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}
