package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asynkron/dupscan/internal/content"
	"github.com/asynkron/dupscan/internal/model"
)

func writeTree(t *testing.T, src *content.Source, files map[string]string) {
	t.Helper()
	for p, body := range files {
		require.NoError(t, src.WriteFile(p, []byte(body)))
	}
}

func defaultOptions() Options {
	return Options{
		MaxFileBytes: 1024,
		ModuleRoots:  []string{"crates", "packages"},
		ModuleDepth:  2,
	}
}

func TestWalk(t *testing.T) {
	src := content.NewMemSource()
	writeTree(t, src, map[string]string{
		"Cargo.toml":                "[workspace]\n",
		"crates/core/src/lib.rs":    "// doc\nfn main() {}\n\nstruct A;\n",
		"src/app.go":                "package app\n",
		"assets/logo.png":           "\x89PNG",
		"node_modules/pkg/index.js": "module.exports = 1\n",
		".git/HEAD":                 "ref: refs/heads/main\n",
		"src/generated/api.go":      "package generated\n",
		"big/blob.txt":              string(make([]byte, 2048)),
	})

	opts := defaultOptions()
	opts.Exclude = []string{"**/generated/**"}
	res, err := Walk(src, opts)
	require.NoError(t, err)

	var paths []string
	for _, f := range res.Files {
		paths = append(paths, f.Path)
	}
	assert.Equal(t, []string{"Cargo.toml", "assets/logo.png", "crates/core/src/lib.rs", "src/app.go"}, paths)
	assert.Equal(t, 1, res.Oversized)

	byPath := map[string]model.CandidateFile{}
	for _, f := range res.Files {
		byPath[f.Path] = f
	}
	lib := byPath["crates/core/src/lib.rs"]
	assert.Equal(t, "crates/core", lib.Module)
	assert.Equal(t, "Rust", lib.Lang)
	assert.Equal(t, 2, lib.Code)

	assert.Equal(t, model.RootModule, byPath["Cargo.toml"].Module)
	assert.Equal(t, "TOML", byPath["Cargo.toml"].Lang)
	assert.Equal(t, "", byPath["assets/logo.png"].Lang)
	assert.Equal(t, "src", byPath["src/app.go"].Module)

	sources := res.SourceFiles()
	assert.Len(t, sources, 3)
	for _, f := range sources {
		assert.NotEmpty(t, f.Lang)
	}
}

func TestWalk_ExcludedFilesAreCounted(t *testing.T) {
	src := content.NewMemSource()
	writeTree(t, src, map[string]string{
		"web/app.min.js": "x",
		"web/app.js":     "x",
	})

	opts := defaultOptions()
	opts.Exclude = []string{"*.min.js"}
	res, err := Walk(src, opts)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Excluded)
	require.Len(t, res.Files, 1)
	assert.Equal(t, "web/app.js", res.Files[0].Path)
	assert.Equal(t, uint64(1), res.TotalBytes)
}

func TestWalk_MissingRoot(t *testing.T) {
	src := content.NewMemSource()
	src.Root = "/does/not/exist"
	_, err := Walk(src, defaultOptions())
	assert.Error(t, err)
}

func TestWalk_OsFs(t *testing.T) {
	src := content.NewSource(t.TempDir())
	writeTree(t, src, map[string]string{
		"packages/ui/src/button.ts": "export const a = 1;\n",
	})

	res, err := Walk(src, defaultOptions())
	require.NoError(t, err)
	require.Len(t, res.Files, 1)
	assert.Equal(t, "packages/ui/src/button.ts", res.Files[0].Path)
	assert.Equal(t, "packages/ui", res.Files[0].Module)
	assert.Equal(t, 1, res.Files[0].Code)
}
