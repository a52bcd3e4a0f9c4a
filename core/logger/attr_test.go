package logger_test

import (
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sahil-kale/voyager-comm-lib/core/logger"
)

func TestGroup(t *testing.T) {
	t.Parallel()
	attr := logger.Group("slot", slog.String("id", "1"), slog.Int("n", 2))
	require.Equal(t, "slot", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "id", g[0].Key)
	assert.Equal(t, "n", g[1].Key)
}

// ============================================================================
// Error Handling Tests
// ============================================================================

func TestErrors(t *testing.T) {
	t.Parallel()
	err1 := errors.New("first")
	err2 := errors.New("second")

	attr := logger.Errors(err1, nil, err2)
	require.Equal(t, "errors", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "0", g[0].Key)
	assert.Equal(t, "2", g[1].Key)
	assert.Equal(t, err1, g[0].Value.Any())
	assert.Equal(t, err2, g[1].Value.Any())

	empty := logger.Errors(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestError(t *testing.T) {
	t.Parallel()
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	empty := logger.Error(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

// ============================================================================
// Channel Attribute Tests
// ============================================================================

func TestChannelAttrs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		attr  slog.Attr
		key   string
		value any
	}{
		{name: "channel", attr: logger.Channel("imu"), key: "channel", value: "imu"},
		{name: "channel id", attr: logger.ChannelID("abc"), key: "channel_id", value: "abc"},
		{name: "handle", attr: logger.Handle(3), key: "handle", value: int64(3)},
		{name: "subscribers", attr: logger.Subscribers(32), key: "subscribers", value: int64(32)},
		{name: "component", attr: logger.Component("bus"), key: "component", value: "bus"},
		{name: "event", attr: logger.Event("startup"), key: "event", value: "startup"},
		{name: "action", attr: logger.Action("subscribe"), key: "action", value: "subscribe"},
		{name: "result", attr: logger.Result("FULL"), key: "result", value: "FULL"},
		{name: "count", attr: logger.Count("dropped", 2), key: "dropped", value: int64(2)},
		{name: "key", attr: logger.Key("sensor", "gyro"), key: "sensor", value: "gyro"},
		{name: "id", attr: logger.ID("node_id", 7), key: "node_id", value: int64(7)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.key, tt.attr.Key)
			assert.Equal(t, tt.value, tt.attr.Value.Any())
		})
	}
}

func TestEmptyAttrs(t *testing.T) {
	t.Parallel()
	assert.True(t, logger.ChannelID("").Equal(slog.Attr{}))
	assert.True(t, logger.Key("k", nil).Equal(slog.Attr{}))
	assert.True(t, logger.ID("k", nil).Equal(slog.Attr{}))
}

// ============================================================================
// Debugging Tests
// ============================================================================

func TestStack(t *testing.T) {
	t.Parallel()
	attr := logger.Stack()
	require.Equal(t, "stack", attr.Key)
	assert.True(t, strings.Contains(attr.Value.String(), "TestStack"))
}
