// Package neardup finds lexically similar files with Winnowing fingerprints
// and an inverted index over them.
package neardup

import (
	"time"

	"github.com/asynkron/dupscan/internal/model"
)

// SelectionMethod describes how files are chosen when max files truncates.
const SelectionMethod = "top_by_code_lines_then_path"

// Algorithm echoes the fixed fingerprinting constants.
type Algorithm struct {
	KGramSize   int `json:"k_gram_size"`
	WindowSize  int `json:"window_size"`
	MaxPostings int `json:"max_postings"`
}

// Params echoes the options a report was built with.
type Params struct {
	Scope           model.Scope `json:"scope"`
	Threshold       float64     `json:"threshold"`
	MaxFiles        int         `json:"max_files"`
	MaxPairs        int         `json:"max_pairs"` // 0 means unlimited
	MaxFileBytes    uint64      `json:"max_file_bytes"`
	SelectionMethod string      `json:"selection_method"`
	Algorithm       Algorithm   `json:"algorithm"`
	ExcludePatterns []string    `json:"exclude_patterns"`
}

// PairRow is one reported near-duplicate pair.
type PairRow struct {
	Left               string  `json:"left"`
	Right              string  `json:"right"`
	Similarity         float64 `json:"similarity"`
	SharedFingerprints int     `json:"shared_fingerprints"`
	LeftFingerprints   int     `json:"left_fingerprints"`
	RightFingerprints  int     `json:"right_fingerprints"`
}

// Cluster is a connected component of the pair graph.
type Cluster struct {
	Files          []string `json:"files"`
	Representative string   `json:"representative"`
	MaxSimilarity  float64  `json:"max_similarity"`
	PairCount      int      `json:"pair_count"`
}

// Stats holds run statistics. Timings are kept out of JSON so reports stay
// byte-identical across runs.
type Stats struct {
	BytesProcessed uint64        `json:"bytes_processed"`
	Fingerprinting time.Duration `json:"-"`
	Pairing        time.Duration `json:"-"`
}

// Report is the result of one near-duplicate run.
type Report struct {
	Params            Params    `json:"params"`
	Pairs             []PairRow `json:"pairs"`
	FilesAnalyzed     int       `json:"files_analyzed"`
	FilesSkipped      int       `json:"files_skipped"`
	EligibleFiles     int       `json:"eligible_files"`
	ExcludedByPattern int       `json:"excluded_by_pattern"`
	Clusters          []Cluster `json:"clusters"`
	Truncated         bool      `json:"truncated"`
	Stats             Stats     `json:"stats"`

	// Warnings lists files that could not be read.
	Warnings []string `json:"-"`
}
