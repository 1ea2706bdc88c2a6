package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModuleKey(t *testing.T) {
	roots := []string{"crates", "packages"}

	tests := []struct {
		name  string
		path  string
		depth int
		want  string
	}{
		{"root level file", "Cargo.toml", 2, RootModule},
		{"dot slash root level file", "./Cargo.toml", 2, RootModule},
		{"module root with depth", "crates/foo/src/lib.rs", 2, "crates/foo"},
		{"second module root", "packages/bar/src/main.rs", 2, "packages/bar"},
		{"depth one", "crates/foo/src/lib.rs", 1, "crates"},
		{"non root dir", "src/lib.rs", 2, "src"},
		{"depth never includes file name", "crates/foo.rs", 2, "crates"},
		{"depth larger than dirs", "crates/foo/src/lib.rs", 10, "crates/foo/src"},
		{"empty segments", "crates//foo/src/lib.rs", 2, "crates/foo"},
		{"backslashes", `crates\foo\src\lib.rs`, 2, "crates/foo"},
		{"zero depth treated as one", "crates/foo/lib.rs", 0, "crates"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ModuleKey(tt.path, roots, tt.depth))
		})
	}
}

func TestParseScope(t *testing.T) {
	for in, want := range map[string]Scope{
		"global":   ScopeGlobal,
		"Module":   ScopeModule,
		" lang ":   ScopeLang,
		"language": ScopeLang,
	} {
		got, err := ParseScope(in)
		assert.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseScope("repo")
	assert.Error(t, err)
}

func TestRatio(t *testing.T) {
	assert.Equal(t, 0.0, Ratio(10, 0))
	assert.Equal(t, 0.3333, Ratio(1, 3))
	assert.Equal(t, 0.6667, Ratio(2, 3))
	assert.Equal(t, 1.0, Ratio(5, 5))
}

func TestNormalizePath(t *testing.T) {
	assert.Equal(t, "src/a.go", NormalizePath("./src/a.go"))
	assert.Equal(t, "src/a.go", NormalizePath(`src\a.go`))
	assert.Equal(t, "a.go", NormalizePath("/a.go"))
}
