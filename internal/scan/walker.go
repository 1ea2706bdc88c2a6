// Package scan walks a source tree and produces the candidate file list the
// duplication pipelines consume.
package scan

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"

	"github.com/spf13/afero"

	"github.com/asynkron/dupscan/internal/content"
	"github.com/asynkron/dupscan/internal/model"
)

// skipDirs are never descended into.
var skipDirs = map[string]bool{
	".git":         true,
	".hg":          true,
	".svn":         true,
	"node_modules": true,
	"target":       true,
	"vendor":       true,
	".dupscan":     true,
}

// Options controls which files become candidates.
type Options struct {
	MaxFileBytes uint64 // 0 means unlimited
	Exclude      []string
	ModuleRoots  []string
	ModuleDepth  int
}

// Result is the outcome of a walk.
type Result struct {
	Files      []model.CandidateFile // sorted by path
	Excluded   int                   // files dropped by exclude patterns
	Oversized  int                   // files above MaxFileBytes
	TotalBytes uint64
	Warnings   []string
}

// SourceFiles returns the files with a recognized language.
func (r *Result) SourceFiles() []model.CandidateFile {
	out := make([]model.CandidateFile, 0, len(r.Files))
	for _, f := range r.Files {
		if f.Lang != "" {
			out = append(out, f)
		}
	}
	return out
}

// Walk lists every eligible regular file below src.Root.
func Walk(src *content.Source, opts Options) (*Result, error) {
	res := &Result{Files: []model.CandidateFile{}, Warnings: []string{}}

	err := afero.Walk(src.Fs, src.Root, func(path string, info fs.FileInfo, err error) error {
		if err != nil {
			if path == src.Root {
				return err
			}
			res.Warnings = append(res.Warnings, fmt.Sprintf("scan: %s: %v", path, err))
			return nil
		}

		rel, relErr := filepath.Rel(src.Root, path)
		if relErr != nil {
			return relErr
		}
		rel = model.NormalizePath(filepath.ToSlash(rel))

		if info.IsDir() {
			if path != src.Root && (skipDirs[info.Name()] || model.MatchAny(opts.Exclude, rel)) {
				return filepath.SkipDir
			}
			return nil
		}
		if !info.Mode().IsRegular() {
			return nil
		}
		if model.MatchAny(opts.Exclude, rel) {
			res.Excluded++
			return nil
		}
		size := uint64(info.Size())
		if opts.MaxFileBytes > 0 && size > opts.MaxFileBytes {
			res.Oversized++
			return nil
		}

		file := model.CandidateFile{
			Path:   rel,
			Bytes:  size,
			Module: model.ModuleKey(rel, opts.ModuleRoots, opts.ModuleDepth),
		}
		if lang, ok := model.LanguageForPath(rel); ok {
			file.Lang = lang.Name
			data, err := src.ReadFile(rel)
			if err != nil {
				res.Warnings = append(res.Warnings, fmt.Sprintf("scan: counting lines in %s: %v", rel, err))
			} else {
				file.Code = CountCodeLines(data, lang)
			}
		}
		res.Files = append(res.Files, file)
		res.TotalBytes += size
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", src.Root, err)
	}

	sort.Slice(res.Files, func(i, j int) bool { return res.Files[i].Path < res.Files[j].Path })
	return res, nil
}
