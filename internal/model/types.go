// Package model holds the file records and small helpers shared by both
// duplication pipelines.
package model

import (
	"fmt"
	"math"
	"strings"
)

// CandidateFile is one scanned file as seen by the duplication pipelines.
type CandidateFile struct {
	Path   string `json:"path"` // relative, forward-slash normalized
	Bytes  uint64 `json:"bytes"`
	Module string `json:"module"`
	Lang   string `json:"lang"`
	Code   int    `json:"code"` // non-blank, non-comment lines
}

// Scope selects which files are compared against each other.
type Scope string

const (
	ScopeGlobal Scope = "global"
	ScopeModule Scope = "module"
	ScopeLang   Scope = "lang"
)

// ParseScope converts a user supplied scope name.
func ParseScope(s string) (Scope, error) {
	switch Scope(strings.ToLower(strings.TrimSpace(s))) {
	case ScopeGlobal:
		return ScopeGlobal, nil
	case ScopeModule:
		return ScopeModule, nil
	case ScopeLang, "language":
		return ScopeLang, nil
	default:
		return "", fmt.Errorf("unknown scope %q (want global, module or lang)", s)
	}
}

// NormalizePath converts a relative path to the forward-slash form used in reports.
func NormalizePath(p string) string {
	p = strings.ReplaceAll(p, "\\", "/")
	for strings.HasPrefix(p, "./") {
		p = p[2:]
	}
	return strings.TrimLeft(p, "/")
}

// Round rounds v to the given number of decimals.
func Round(v float64, decimals int) float64 {
	factor := math.Pow(10, float64(decimals))
	return math.Round(v*factor) / factor
}

// Ratio returns num/den rounded to 4 decimals, or 0 when den is 0.
func Ratio(num, den uint64) float64 {
	if den == 0 {
		return 0
	}
	return Round(float64(num)/float64(den), 4)
}
