// Package exactdup groups byte-identical files and accounts the bytes they
// waste per module.
package exactdup

import "github.com/asynkron/dupscan/internal/content"

// Strategy names the grouping method in reports.
const Strategy = "exact-" + content.HashAlgorithm

// Group is a set of files with identical size and content hash.
type Group struct {
	Hash  string   `json:"hash"`
	Bytes uint64   `json:"bytes"`
	Files []string `json:"files"` // sorted; the first is reported as the original
}

// Wasted returns the bytes that would be freed by keeping one copy.
func (g Group) Wasted() uint64 {
	if len(g.Files) < 2 {
		return 0
	}
	return uint64(len(g.Files)-1) * g.Bytes
}

// ModuleDensityRow summarizes duplication inside one module.
type ModuleDensityRow struct {
	Module          string  `json:"module"`
	DuplicateFiles  int     `json:"duplicate_files"`
	WastedFiles     int     `json:"wasted_files"`
	DuplicatedBytes uint64  `json:"duplicated_bytes"`
	WastedBytes     uint64  `json:"wasted_bytes"`
	ModuleBytes     uint64  `json:"module_bytes"`
	Density         float64 `json:"density"`
}

// DensityReport summarizes duplication across the corpus.
type DensityReport struct {
	DuplicateGroups     int                `json:"duplicate_groups"`
	DuplicateFiles      int                `json:"duplicate_files"`
	DuplicatedBytes     uint64             `json:"duplicated_bytes"`
	WastedBytes         uint64             `json:"wasted_bytes"`
	WastedPctOfCodebase float64            `json:"wasted_pct_of_codebase"`
	ByModule            []ModuleDensityRow `json:"by_module"`
}

// Report is the result of one exact-duplicate run.
type Report struct {
	Groups      []Group       `json:"groups"`
	WastedBytes uint64        `json:"wasted_bytes"`
	Strategy    string        `json:"strategy"`
	Density     DensityReport `json:"density"`

	// Warnings lists files that could not be stat'ed or hashed.
	Warnings []string `json:"-"`
}
