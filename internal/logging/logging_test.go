package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew_EmptyDestIsNop(t *testing.T) {
	logger, err := New("info", "")
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zap.ErrorLevel))
}

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "proposal.log")
	logger, err := New("debug", path)
	require.NoError(t, err)

	logger.Debug("schema_loaded", zap.Int("columns", 3))
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"schema_loaded"`)
	assert.Contains(t, string(data), `"columns":3`)
}

func TestNew_RespectsLevel(t *testing.T) {
	logger, err := New("warn", filepath.Join(t.TempDir(), "x.log"))
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zap.InfoLevel))
	assert.True(t, logger.Core().Enabled(zap.WarnLevel))
}

func TestNew_BadLevel(t *testing.T) {
	_, err := New("loud", "stderr")
	assert.Error(t, err)
}
