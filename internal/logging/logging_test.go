package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewWriter(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewWriter(&buf, slog.LevelInfo, true)
		l.With("component", "keygen").Info("key generated", "bits", 512, Redacted("d"))

		var rec map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
		require.Equal(t, "key generated", rec["msg"])
		require.Equal(t, "keygen", rec["component"])
		require.Equal(t, float64(512), rec["bits"])
		require.Equal(t, Placeholder(), rec["d"])
	})

	t.Run("level", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewWriter(&buf, slog.LevelInfo, false)
		l.Debug("hidden")
		require.Zero(t, buf.Len())
		l.Warn("shown", "k", "v")
		require.True(t, strings.Contains(buf.String(), "msg=shown"))
		require.True(t, strings.Contains(buf.String(), "k=v"))
	})
}

func TestNop(t *testing.T) {
	l := Nop().With("a", 1)
	require.NotNil(t, l)
	l.Debug("x")
	l.Info("x")
	l.Warn("x")
	l.Error("x")
}

func TestNewDefault(t *testing.T) {
	require.NotNil(t, New(nil))
}
