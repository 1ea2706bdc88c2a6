package model

import (
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// MatchAny reports whether rel matches any of the glob patterns.
//
// Patterns use doublestar syntax against the normalized relative path. A
// pattern without a slash also matches the base name, so "*.min.js" excludes
// minified files at any depth.
func MatchAny(patterns []string, rel string) bool {
	rel = NormalizePath(rel)
	base := path.Base(rel)
	for _, p := range patterns {
		if ok, _ := doublestar.Match(p, rel); ok {
			return true
		}
		if !strings.Contains(p, "/") {
			if ok, _ := doublestar.Match(p, base); ok {
				return true
			}
		}
	}
	return false
}
