package log

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestID(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, RequestID(ctx))

	ctx = WithRequestID(ctx, "req-1")
	assert.Equal(t, "req-1", RequestID(ctx))
}

func TestInitWithFileSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.log")
	l := Init(ZapConfig{
		Level:    "not-a-level",
		Mode:     ModeProduction,
		Encoding: EncodingJSON,
		FilePath: path,
	})
	require.NotNil(t, l)

	l.Infof(WithRequestID(context.Background(), "abc"), "hello %s", "world")
	_ = l.Sync()

	assert.FileExists(t, path)
}

func TestInitFileOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cli.log")
	l := Init(ZapConfig{
		Level:    "debug",
		Mode:     ModeProduction,
		Encoding: EncodingJSON,
		FilePath: path,
		FileOnly: true,
	})

	l.Warnf(WithRequestID(context.Background(), "r-9"), "backend slow: %d ms", 900)
	require.NoError(t, l.Sync())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "backend slow: 900 ms")
	assert.Contains(t, string(raw), "r-9")
}
