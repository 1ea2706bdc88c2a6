package neardup

import (
	"fmt"
	"sort"
	"time"

	"github.com/asynkron/dupscan/internal/fingerprint"
	"github.com/asynkron/dupscan/internal/model"
	"github.com/asynkron/dupscan/internal/workpool"
)

// FileReader returns the contents of a file addressed by relative path.
// *content.Source satisfies it.
type FileReader interface {
	ReadFile(rel string) ([]byte, error)
}

// Build runs the near-duplicate pipeline over files.
func Build(src FileReader, files []model.CandidateFile, opts Options) (*Report, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	report := &Report{
		Params:   opts.params(),
		Pairs:    []PairRow{},
		Clusters: []Cluster{},
		Warnings: []string{},
	}

	eligible := make([]model.CandidateFile, 0, len(files))
	for _, f := range files {
		if opts.MaxFileBytes > 0 && f.Bytes > opts.MaxFileBytes {
			continue
		}
		eligible = append(eligible, f)
	}
	if len(opts.Exclude) > 0 {
		kept := eligible[:0]
		for _, f := range eligible {
			if model.MatchAny(opts.Exclude, f.Path) {
				report.ExcludedByPattern++
				continue
			}
			kept = append(kept, f)
		}
		eligible = kept
	}

	sort.Slice(eligible, func(i, j int) bool {
		if eligible[i].Code != eligible[j].Code {
			return eligible[i].Code > eligible[j].Code
		}
		return eligible[i].Path < eligible[j].Path
	})
	report.EligibleFiles = len(eligible)
	if len(eligible) > opts.MaxFiles {
		report.FilesSkipped = len(eligible) - opts.MaxFiles
		eligible = eligible[:opts.MaxFiles]
	}
	report.FilesAnalyzed = len(eligible)

	start := time.Now()
	fps, warnings := fingerprintFiles(src, eligible, opts.Workers)
	report.Warnings = append(report.Warnings, warnings...)
	for i, f := range eligible {
		if len(fps[i]) > 0 {
			report.Stats.BytesProcessed += f.Bytes
		}
	}
	report.Stats.Fingerprinting = time.Since(start)

	start = time.Now()
	for _, part := range PartitionFiles(eligible, opts.Scope) {
		for _, s := range ScorePairs(fps, part.Members, opts.Threshold) {
			report.Pairs = append(report.Pairs, PairRow{
				Left:               eligible[s.Low].Path,
				Right:              eligible[s.High].Path,
				Similarity:         model.Round(s.Similarity, 4),
				SharedFingerprints: s.Shared,
				LeftFingerprints:   s.LowCount,
				RightFingerprints:  s.HighCount,
			})
		}
	}
	report.Stats.Pairing = time.Since(start)

	sortPairs(report.Pairs)

	// Clusters see every pair, even the ones max pairs cuts off below.
	report.Clusters = buildClusters(report.Pairs)
	if opts.MaxPairs > 0 && len(report.Pairs) > opts.MaxPairs {
		report.Pairs = report.Pairs[:opts.MaxPairs]
		report.Truncated = true
	}

	return report, nil
}

// fingerprintFiles reads and winnows every file into its index slot.
// Unreadable files keep an empty set and produce a warning.
func fingerprintFiles(src FileReader, files []model.CandidateFile, workers int) ([][]uint64, []string) {
	fps := make([][]uint64, len(files))
	errs := make([]error, len(files))

	_ = workpool.Run(len(files), workers, func(i int) error {
		data, err := src.ReadFile(files[i].Path)
		if err != nil {
			errs[i] = err
			return nil
		}
		fps[i] = fingerprintSet(fingerprint.Winnow(data))
		return nil
	})

	var warnings []string
	for i, err := range errs {
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("near-dup: skipping %s: %v", files[i].Path, err))
		}
	}
	return fps, warnings
}

func sortPairs(pairs []PairRow) {
	sort.Slice(pairs, func(i, j int) bool {
		a, b := pairs[i], pairs[j]
		if a.Similarity != b.Similarity {
			return a.Similarity > b.Similarity
		}
		if a.Left != b.Left {
			return a.Left < b.Left
		}
		return a.Right < b.Right
	})
}
