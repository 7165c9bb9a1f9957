package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lastEntry decodes the single JSON entry written to buf.
func lastEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), "raw: %s", buf.String())
	return entry
}

func TestNewLogger_EntryFields(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "device-sync")

	l.Info().Msg("hello")

	entry := lastEntry(t, &buf)
	assert.Equal(t, "device-sync", entry["role"])
	assert.Equal(t, "hello", entry["message"])
	assert.Contains(t, entry, "time")
	// caller is rendered as the calling function, not file:line
	assert.Contains(t, entry["func"], "TestNewLogger_EntryFields")
}

func TestNewLogger_Defaults(t *testing.T) {
	require.NotNil(t, NewLogger("server"))

	assert.Equal(t, "func", zerolog.CallerFieldName)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

// TestNop_DiscardsOutput verifies that a Nop logger produces no output even
// when it is redirected.
func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Error().Msg("should be discarded")

	assert.Empty(t, buf.String())
}

func TestGetChildLogger(t *testing.T) {
	var buf bytes.Buffer
	parent := newLogger(&buf, "sync")

	child := parent.GetChildLogger()
	require.NotSame(t, parent, child)

	child.Logger = child.With().Str("trace_id", "t-1").Logger()
	child.Info().Msg("child")
	assert.Equal(t, "sync", lastEntry(t, &buf)["role"])
	assert.Equal(t, "t-1", lastEntry(t, &buf)["trace_id"])

	// the parent is not affected by fields added to the child
	buf.Reset()
	parent.Info().Msg("parent")
	assert.NotContains(t, lastEntry(t, &buf), "trace_id")
}

func TestWithComponent_AddsField(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "sync")

	l.WithComponent("scheduler").Info().Msg("tick")

	entry := lastEntry(t, &buf)
	assert.Equal(t, "sync", entry["role"])
	assert.Equal(t, "scheduler", entry["component"])
}

func TestFromContext(t *testing.T) {
	t.Run("no logger attached", func(t *testing.T) {
		require.NotNil(t, FromContext(context.Background()))
	})

	t.Run("attached logger", func(t *testing.T) {
		var buf bytes.Buffer
		ctx := newLogger(&buf, "sync").WithContext(context.Background())

		FromContext(ctx).Info().Msg("from context")

		assert.Equal(t, "sync", lastEntry(t, &buf)["role"])
	})
}

func TestFromRequest(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("trace_id", "req-1").Logger()
	req := httptest.NewRequest(http.MethodGet, "/api/devices", nil)
	req = req.WithContext(zl.WithContext(req.Context()))

	FromRequest(req).Info().Msg("from request")

	assert.Equal(t, "req-1", lastEntry(t, &buf)["trace_id"])
}

func TestSetLevel(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.DebugLevel) })

	require.NoError(t, SetLevel("warn"))
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())

	// unknown names keep the current level
	require.Error(t, SetLevel("loud"))
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())
}
