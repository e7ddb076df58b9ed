package configwatch

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"debug_trace": true, "metrics_path": "m.db"}`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.DebugTrace)
	assert.Equal(t, "m.db", cfg.MetricsPath)
	assert.Empty(t, cfg.TelemetryEndpoint)
}

func TestWatchReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"debug_trace": false}`), 0o644))

	changed := make(chan Config, 1)
	w, err := Watch(path, func(cfg Config) { changed <- cfg })
	require.NoError(t, err)
	defer w.Close()

	assert.False(t, w.Current().DebugTrace)

	require.NoError(t, os.WriteFile(path, []byte(`{"debug_trace": true}`), 0o644))

	select {
	case cfg := <-changed:
		assert.True(t, cfg.DebugTrace)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for config reload")
	}
	assert.True(t, w.Current().DebugTrace)
}
