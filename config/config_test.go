package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "grit.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: demo\naddr: 127.0.0.1:9000\nread_buffer_size: 8192\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "demo", cfg.Name)
	assert.Equal(t, "127.0.0.1:9000", cfg.Addr)
	assert.Equal(t, 8192, cfg.ReadBufferSize)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "grit.yaml")
	require.NoError(t, os.WriteFile(path, []byte("addr: 127.0.0.1:9000\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, Default().Name, cfg.Name)
	assert.Equal(t, "127.0.0.1:9000", cfg.Addr)
	assert.Equal(t, Default().ReadBufferSize, cfg.ReadBufferSize)
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadMalformedYAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "grit.yaml")
	require.NoError(t, os.WriteFile(path, []byte(":\n\t- nope"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
