// Package output renders duplication reports as console text, JSON or
// Markdown.
package output

import (
	"github.com/asynkron/dupscan/internal/exactdup"
	"github.com/asynkron/dupscan/internal/neardup"
)

// ScanSummary describes the walk that fed the pipelines.
type ScanSummary struct {
	Files     int    `json:"files"`
	Bytes     uint64 `json:"bytes"`
	Excluded  int    `json:"excluded"`
	Oversized int    `json:"oversized"`
}

// Report combines the results of one dupscan run. Either pipeline may be
// absent when it was disabled.
type Report struct {
	Scan     ScanSummary      `json:"scan"`
	Dup      *exactdup.Report `json:"dup,omitempty"`
	Near     *neardup.Report  `json:"near,omitempty"`
	Warnings []string         `json:"warnings"`
}

// NewReport collects warnings from the scan and both pipelines.
func NewReport(scan ScanSummary, scanWarnings []string, dup *exactdup.Report, near *neardup.Report) *Report {
	r := &Report{Scan: scan, Dup: dup, Near: near, Warnings: []string{}}
	r.Warnings = append(r.Warnings, scanWarnings...)
	if dup != nil {
		r.Warnings = append(r.Warnings, dup.Warnings...)
	}
	if near != nil {
		r.Warnings = append(r.Warnings, near.Warnings...)
	}
	return r
}
