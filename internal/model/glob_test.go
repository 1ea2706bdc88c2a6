package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchAny(t *testing.T) {
	patterns := []string{"**/generated/**", "*.min.js", "docs/*.md"}

	tests := []struct {
		path string
		want bool
	}{
		{"src/generated/api.go", true},
		{"generated/api.go", true},
		{"web/static/app.min.js", true},
		{"app.min.js", true},
		{"docs/readme.md", true},
		{"docs/deep/readme.md", false},
		{"src/api.go", false},
		{`web\static\app.min.js`, true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, MatchAny(patterns, tt.path), tt.path)
	}
	assert.False(t, MatchAny(nil, "a.go"))
}
