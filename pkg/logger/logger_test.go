package logger

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"casemonitor/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceID(t *testing.T) {
	assert.Equal(t, "0", TraceID(context.Background()))
	//nolint:staticcheck // nil context is accepted on purpose
	assert.Equal(t, "0", TraceID(nil))

	ctx := WithTraceID(context.Background(), "req-1")
	assert.Equal(t, "req-1", TraceID(ctx))
}

func TestInit_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "monitor.log")

	err := Init(config.LoggerConfig{
		Level:  "debug",
		Output: "file",
		File:   config.LoggerFileConfig{Path: path},
	})
	require.NoError(t, err)

	InfoCtx(WithTraceID(context.Background(), "abc"), "hello %s", "world")
	require.NoError(t, Log.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "abc\thello world")
}
