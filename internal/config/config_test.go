package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asynkron/dupscan/internal/model"
	"github.com/asynkron/dupscan/internal/neardup"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, uint64(512_000), cfg.MaxFileBytes)
	assert.Equal(t, []string{"crates", "packages"}, cfg.ModuleRoots)
	assert.Equal(t, 2, cfg.ModuleDepth)
	assert.Equal(t, 1, cfg.Workers)
	assert.Equal(t, FormatConsole, cfg.Format)
	assert.True(t, cfg.Exact.Enabled)
	assert.True(t, cfg.Near.Enabled)
	assert.Equal(t, "module", cfg.Near.Scope)
	assert.Equal(t, 0.80, cfg.Near.Threshold)
	assert.Equal(t, 2000, cfg.Near.MaxFiles)
	assert.Equal(t, 0, cfg.Near.MaxPairs)
}

func TestSaveAndLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", FileName)

	cfg := DefaultConfig()
	cfg.Near.Threshold = 0.65
	cfg.Near.Exclude = []string{"**/testdata/**"}
	require.NoError(t, cfg.Save(path))

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 0.65, loaded.Near.Threshold)
	assert.Equal(t, []string{"**/testdata/**"}, loaded.Near.Exclude)
	assert.Equal(t, cfg.ModuleRoots, loaded.ModuleRoots)
}

func TestLoadFile_PartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("near:\n  scope: lang\nworkers: 4\n"), 0o644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "lang", cfg.Near.Scope)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, 0.80, cfg.Near.Threshold)
	assert.Equal(t, 2000, cfg.Near.MaxFiles)
	assert.True(t, cfg.Near.Enabled)
}

func TestLoadFile_Errors(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(bad, []byte("near: [unclosed"), 0o644))
	_, err = LoadFile(bad)
	assert.Error(t, err)
}

func TestLoad_FindsFileInRoot(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, FileName), []byte("format: json\n"), 0o644))

	cfg, err := Load(root, "", "")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, cfg.Format)
	assert.Equal(t, root, cfg.Root)

	_, err = Load(root, filepath.Join(root, "nope.yaml"), "")
	assert.Error(t, err, "an explicit path must exist")
}

func TestLoadEnv(t *testing.T) {
	cfg := DefaultConfig()
	err := LoadEnv(cfg, "", []string{
		"DUPSCAN_NEAR_THRESHOLD=0.5",
		"DUPSCAN_NEAR_SCOPE=global",
		"DUPSCAN_MODULE_ROOTS=libs, apps ,",
		"DUPSCAN_WORKERS=8",
		"DUPSCAN_EXACT_ENABLED=false",
		"DUPSCAN_MAX_FILE_BYTES=1024",
		"UNRELATED=1",
	})
	require.NoError(t, err)

	assert.Equal(t, 0.5, cfg.Near.Threshold)
	assert.Equal(t, "global", cfg.Near.Scope)
	assert.Equal(t, []string{"libs", "apps"}, cfg.ModuleRoots)
	assert.Equal(t, 8, cfg.Workers)
	assert.False(t, cfg.Exact.Enabled)
	assert.Equal(t, uint64(1024), cfg.MaxFileBytes)
	assert.Equal(t, 2000, cfg.Near.MaxFiles, "unset variables keep their value")
}

func TestLoadEnv_DotenvFile(t *testing.T) {
	dotenv := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(dotenv, []byte("DUPSCAN_FORMAT=markdown\nDUPSCAN_NEAR_MAX_PAIRS=25\n"), 0o644))

	cfg := DefaultConfig()
	require.NoError(t, LoadEnv(cfg, dotenv, []string{"DUPSCAN_NEAR_MAX_PAIRS=10"}))
	assert.Equal(t, FormatMarkdown, cfg.Format)
	assert.Equal(t, 10, cfg.Near.MaxPairs, "process environment wins over .env")

	cfg = DefaultConfig()
	require.NoError(t, LoadEnv(cfg, filepath.Join(t.TempDir(), ".env"), nil), "missing .env is ignored")
}

func TestLoadEnv_BadValues(t *testing.T) {
	for _, kv := range []string{
		"DUPSCAN_WORKERS=many",
		"DUPSCAN_NEAR_THRESHOLD=high",
		"DUPSCAN_NEAR_ENABLED=maybe",
		"DUPSCAN_MAX_FILE_BYTES=-1",
	} {
		assert.Error(t, LoadEnv(DefaultConfig(), "", []string{kv}), kv)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"threshold", func(c *Config) { c.Near.Threshold = 1.2 }},
		{"scope", func(c *Config) { c.Near.Scope = "repo" }},
		{"format", func(c *Config) { c.Format = "xml" }},
		{"workers", func(c *Config) { c.Workers = 0 }},
		{"module depth", func(c *Config) { c.ModuleDepth = 0 }},
		{"max files", func(c *Config) { c.Near.MaxFiles = -5 }},
		{"exclude glob", func(c *Config) { c.Exclude = []string{"[bad"} }},
		{"near exclude glob", func(c *Config) { c.Near.Exclude = []string{"[bad"} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}

	cfg := DefaultConfig()
	cfg.Near.Threshold = -1
	assert.ErrorIs(t, cfg.Validate(), neardup.ErrInvalidOptions)
}

func TestNearOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Near.Scope = "language"
	cfg.Workers = 3

	opts, err := cfg.NearOptions()
	require.NoError(t, err)
	assert.Equal(t, model.ScopeLang, opts.Scope)
	assert.Equal(t, 3, opts.Workers)
	assert.Equal(t, cfg.MaxFileBytes, opts.MaxFileBytes)

	assert.Equal(t, 3, cfg.ExactOptions().Workers)
	assert.Equal(t, cfg.ModuleRoots, cfg.ScanOptions().ModuleRoots)
}
