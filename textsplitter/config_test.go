package textsplitter_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevigo/codesplit/parsers"
	logger "github.com/sevigo/codesplit/parsers/testing"
	"github.com/sevigo/codesplit/textsplitter"
)

func TestParseConfig(t *testing.T) {
	t.Run("empty input yields defaults", func(t *testing.T) {
		cfg, err := textsplitter.ParseConfig(nil)
		require.NoError(t, err)
		assert.Equal(t, textsplitter.DefaultConfig(), cfg)
	})

	t.Run("overrides defaults", func(t *testing.T) {
		cfg, err := textsplitter.ParseConfig([]byte("language: python\nmax_chunk_size: 1200\nconcurrency: 4\n"))
		require.NoError(t, err)
		assert.Equal(t, textsplitter.Config{Language: "python", MaxChunkSize: 1200, Concurrency: 4}, cfg)
	})

	t.Run("partial config keeps remaining defaults", func(t *testing.T) {
		cfg, err := textsplitter.ParseConfig([]byte("language: javascript\n"))
		require.NoError(t, err)
		assert.Equal(t, "javascript", cfg.Language)
		assert.Equal(t, textsplitter.DefaultConfig().MaxChunkSize, cfg.MaxChunkSize)
	})

	t.Run("unknown keys are rejected", func(t *testing.T) {
		_, err := textsplitter.ParseConfig([]byte("chunk_overlap: 20\n"))
		require.Error(t, err)
	})

	t.Run("invalid size is rejected", func(t *testing.T) {
		_, err := textsplitter.ParseConfig([]byte("max_chunk_size: -1\n"))
		require.ErrorIs(t, err, textsplitter.ErrInvalidChunkSize)
	})
}

func TestParseTOMLConfig(t *testing.T) {
	cfg, err := textsplitter.ParseTOMLConfig([]byte("language = \"typescript\"\nmax_chunk_size = 300\n"))
	require.NoError(t, err)
	assert.Equal(t, textsplitter.Config{Language: "typescript", MaxChunkSize: 300, Concurrency: 1}, cfg)

	_, err = textsplitter.ParseTOMLConfig([]byte("overlap = 3\n"))
	require.Error(t, err)

	_, err = textsplitter.ParseTOMLConfig([]byte("max_chunk_size = 0\n"))
	require.ErrorIs(t, err, textsplitter.ErrInvalidChunkSize)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "splitter.yaml")
	require.NoError(t, os.WriteFile(path, []byte("language: go\nmax_chunk_size: 64\n"), 0o600))

	cfg, err := textsplitter.LoadConfig(path)
	require.NoError(t, err)

	log, _ := logger.NewTestLogger(t)
	registry, err := parsers.RegisterLanguagePlugins(log)
	require.NoError(t, err)

	splitter, err := textsplitter.NewCode(registry, log, cfg.Options()...)
	require.NoError(t, err)
	assert.Equal(t, "go", splitter.Language())
	assert.Equal(t, 64, splitter.MaxChunkSize())

	_, err = textsplitter.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	tomlPath := filepath.Join(t.TempDir(), "splitter.toml")
	require.NoError(t, os.WriteFile(tomlPath, []byte("language = \"python\"\n"), 0o600))
	cfg, err = textsplitter.LoadConfig(tomlPath)
	require.NoError(t, err)
	assert.Equal(t, "python", cfg.Language)
}
