// Package analytics forwards product usage events to PostHog. The client is a
// no-op until it is built with an API key.
package analytics

import (
	"log/slog"

	"github.com/posthog/posthog-go"
)

// Client wraps posthog.Client so callers need not care whether it was configured.
type Client struct {
	posthogClient posthog.Client
	logger        *slog.Logger
}

// New returns a client sending to endpoint. An empty apiKey yields a disabled client.
func New(apiKey, endpoint string, logger *slog.Logger) *Client {
	if apiKey == "" {
		logger.Info("PostHog API key is empty, usage analytics disabled")
		return &Client{logger: logger}
	}
	c, err := posthog.NewWithConfig(apiKey, posthog.Config{Endpoint: endpoint})
	if err != nil {
		logger.Warn("Failed to initialize PostHog client, usage analytics disabled", slog.String("error", err.Error()))
		return &Client{logger: logger}
	}
	logger.Info("PostHog client initialized", slog.String("endpoint", endpoint))
	return &Client{posthogClient: c, logger: logger}
}

func (c *Client) Enabled() bool {
	return c != nil && c.posthogClient != nil
}

// Enqueue queues one event. Delivery is asynchronous and best effort.
func (c *Client) Enqueue(distinctID string, event string, properties map[string]any) {
	if !c.Enabled() {
		return
	}
	err := c.posthogClient.Enqueue(posthog.Capture{
		DistinctId: distinctID,
		Event:      event,
		Properties: properties,
	})
	if err != nil {
		c.logger.Warn("Failed to enqueue analytics event", slog.String("event", event), slog.String("error", err.Error()))
	}
}

// Close flushes pending events.
func (c *Client) Close() {
	if !c.Enabled() {
		return
	}
	if err := c.posthogClient.Close(); err != nil {
		c.logger.Warn("Failed to flush analytics events", slog.String("error", err.Error()))
	}
}
