package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revelaction/bunsetu/bunsetu"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, bunsetu.DefaultHeadSuffix, cfg.HeadSuffix)
	assert.Equal(t, bunsetu.DefaultPhraseRelations(), cfg.PhraseRelations)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.Format)
	assert.GreaterOrEqual(t, cfg.Workers, 1)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bunsetu.yaml")
	content := `
doc_path: /var/lib/corpus.db
head_suffix: _chunk
phrase_relations: [compound, flat]
workers: 3
format: conllu
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/var/lib/corpus.db", cfg.DocPath)
	assert.Equal(t, 3, cfg.Workers)
	assert.Equal(t, "conllu", cfg.Format)

	bc := cfg.Bunsetu()
	assert.Equal(t, "_chunk", bc.HeadSuffix)
	assert.Equal(t, []string{"compound", "flat"}, bc.PhraseRelations)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("BUNSETU_WORKERS", "7")
	t.Setenv("BUNSETU_LOG_LEVEL", "debug")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.Workers)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bunsetu.yaml")
	require.NoError(t, os.WriteFile(path, []byte("workers: 0\n"), 0644))

	_, err := Load(path)
	assert.Error(t, err)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	t.Setenv("BUNSETU_FORMAT", "xml")
	_, err = Load("")
	assert.Error(t, err)
}
