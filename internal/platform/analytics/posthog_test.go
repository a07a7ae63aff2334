package analytics

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_WithoutKeyIsDisabled(t *testing.T) {
	c := New("", "https://eu.i.posthog.com", slog.New(slog.NewTextHandler(io.Discard, nil)))

	assert.False(t, c.Enabled())
	assert.NotPanics(t, func() {
		c.Enqueue("7", "api_v1_sales", map[string]any{"method": "POST"})
		c.Close()
	})
}

func TestNilClientIsDisabled(t *testing.T) {
	var c *Client
	assert.False(t, c.Enabled())
	assert.NotPanics(t, func() { c.Enqueue("7", "event", nil) })
}
