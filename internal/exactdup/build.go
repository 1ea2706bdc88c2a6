package exactdup

import (
	"fmt"
	"sort"

	"github.com/asynkron/dupscan/internal/model"
	"github.com/asynkron/dupscan/internal/workpool"
)

// FileHasher stats and content-hashes files by relative path.
// *content.Source satisfies it.
type FileHasher interface {
	Size(rel string) (uint64, error)
	HashFile(rel string) (string, error)
}

// Options controls an exact-duplicate run.
type Options struct {
	MaxFileBytes uint64 // 0 means unlimited
	Workers      int    // values below 1 hash sequentially
}

// moduleTally accumulates one module's duplication counters.
type moduleTally struct {
	duplicateFiles  int
	wastedFiles     int
	duplicatedBytes uint64
	wastedBytes     uint64
}

// Build groups byte-identical files.
//
// Files are bucketed by size first; only buckets with two or more non-empty
// files are hashed. Module totals count every file passed in.
func Build(src FileHasher, files []model.CandidateFile, opts Options) *Report {
	report := &Report{
		Groups:   []Group{},
		Strategy: Strategy,
		Density:  DensityReport{ByModule: []ModuleDensityRow{}},
		Warnings: []string{},
	}

	moduleOf := make(map[string]string, len(files))
	moduleBytes := make(map[string]uint64)
	for _, f := range files {
		module := f.Module
		if module == "" {
			module = model.UnknownModule
		}
		moduleOf[f.Path] = module
		moduleBytes[module] += f.Bytes
	}

	bySize := make(map[uint64][]string)
	for _, f := range files {
		size, err := src.Size(f.Path)
		if err != nil {
			report.Warnings = append(report.Warnings, fmt.Sprintf("exact-dup: skipping %s: %v", f.Path, err))
			continue
		}
		if opts.MaxFileBytes > 0 && size > opts.MaxFileBytes {
			continue
		}
		bySize[size] = append(bySize[size], f.Path)
	}

	// Flatten the candidate buckets so hashing can fan out over one slice.
	sizes := make([]uint64, 0, len(bySize))
	for size, paths := range bySize {
		if size == 0 || len(paths) < 2 {
			continue
		}
		sizes = append(sizes, size)
	}
	sort.Slice(sizes, func(i, j int) bool { return sizes[i] < sizes[j] })

	var candidates []string
	var candidateSize []uint64
	for _, size := range sizes {
		paths := bySize[size]
		sort.Strings(paths)
		for _, p := range paths {
			candidates = append(candidates, p)
			candidateSize = append(candidateSize, size)
		}
	}

	hashes := make([]string, len(candidates))
	errs := make([]error, len(candidates))
	_ = workpool.Run(len(candidates), opts.Workers, func(i int) error {
		hashes[i], errs[i] = src.HashFile(candidates[i])
		return nil
	})

	type groupKey struct {
		size uint64
		hash string
	}
	byHash := make(map[groupKey][]string)
	for i, p := range candidates {
		if errs[i] != nil {
			report.Warnings = append(report.Warnings, fmt.Sprintf("exact-dup: skipping %s: %v", p, errs[i]))
			continue
		}
		key := groupKey{candidateSize[i], hashes[i]}
		byHash[key] = append(byHash[key], p)
	}

	tallies := make(map[string]*moduleTally)
	for key, paths := range byHash {
		if len(paths) < 2 {
			continue
		}
		sort.Strings(paths)
		group := Group{Hash: key.hash, Bytes: key.size, Files: paths}
		report.Groups = append(report.Groups, group)
		report.WastedBytes += group.Wasted()

		for i, p := range paths {
			module := moduleOf[p]
			t := tallies[module]
			if t == nil {
				t = &moduleTally{}
				tallies[module] = t
			}
			t.duplicateFiles++
			t.duplicatedBytes += key.size
			report.Density.DuplicateFiles++
			report.Density.DuplicatedBytes += key.size
			if i > 0 {
				t.wastedFiles++
				t.wastedBytes += key.size
			}
		}
	}

	sort.Slice(report.Groups, func(i, j int) bool {
		a, b := report.Groups[i], report.Groups[j]
		if a.Bytes != b.Bytes {
			return a.Bytes > b.Bytes
		}
		return a.Hash < b.Hash
	})

	for module, t := range tallies {
		report.Density.ByModule = append(report.Density.ByModule, ModuleDensityRow{
			Module:          module,
			DuplicateFiles:  t.duplicateFiles,
			WastedFiles:     t.wastedFiles,
			DuplicatedBytes: t.duplicatedBytes,
			WastedBytes:     t.wastedBytes,
			ModuleBytes:     moduleBytes[module],
			Density:         model.Ratio(t.wastedBytes, moduleBytes[module]),
		})
	}
	sort.Slice(report.Density.ByModule, func(i, j int) bool {
		a, b := report.Density.ByModule[i], report.Density.ByModule[j]
		if a.WastedBytes != b.WastedBytes {
			return a.WastedBytes > b.WastedBytes
		}
		return a.Module < b.Module
	})

	var total uint64
	for _, n := range moduleBytes {
		total += n
	}
	report.Density.DuplicateGroups = len(report.Groups)
	report.Density.WastedBytes = report.WastedBytes
	report.Density.WastedPctOfCodebase = model.Ratio(report.WastedBytes, total)

	return report
}
