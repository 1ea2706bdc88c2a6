package neardup

import (
	"errors"
	"fmt"
	"math"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/asynkron/dupscan/internal/fingerprint"
	"github.com/asynkron/dupscan/internal/model"
)

// ErrInvalidOptions is wrapped by every validation failure.
var ErrInvalidOptions = errors.New("invalid near-duplicate options")

// Options controls a near-duplicate run.
type Options struct {
	Scope        model.Scope
	Threshold    float64
	MaxFiles     int
	MaxPairs     int    // 0 means unlimited
	MaxFileBytes uint64 // 0 means unlimited
	Exclude      []string
	Workers      int
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		Scope:        model.ScopeModule,
		Threshold:    0.80,
		MaxFiles:     2000,
		MaxPairs:     0,
		MaxFileBytes: 512_000,
		Workers:      1,
	}
}

// Validate rejects options that cannot produce a meaningful report.
func (o Options) Validate() error {
	switch o.Scope {
	case model.ScopeGlobal, model.ScopeModule, model.ScopeLang:
	default:
		return fmt.Errorf("%w: scope must be global, module or lang (got %q)", ErrInvalidOptions, o.Scope)
	}
	if math.IsNaN(o.Threshold) || o.Threshold < 0 || o.Threshold > 1 {
		return fmt.Errorf("%w: threshold must be between 0.0 and 1.0 (got %v)", ErrInvalidOptions, o.Threshold)
	}
	if o.MaxFiles < 0 {
		return fmt.Errorf("%w: max_files must be non-negative (got %d)", ErrInvalidOptions, o.MaxFiles)
	}
	if o.MaxPairs < 0 {
		return fmt.Errorf("%w: max_pairs must be non-negative (got %d)", ErrInvalidOptions, o.MaxPairs)
	}
	if o.Workers < 1 {
		return fmt.Errorf("%w: workers must be at least 1 (got %d)", ErrInvalidOptions, o.Workers)
	}
	for _, p := range o.Exclude {
		if !doublestar.ValidatePattern(p) {
			return fmt.Errorf("%w: exclude pattern %q is not a valid glob", ErrInvalidOptions, p)
		}
	}
	return nil
}

func (o Options) params() Params {
	exclude := make([]string, len(o.Exclude))
	copy(exclude, o.Exclude)
	return Params{
		Scope:           o.Scope,
		Threshold:       o.Threshold,
		MaxFiles:        o.MaxFiles,
		MaxPairs:        o.MaxPairs,
		MaxFileBytes:    o.MaxFileBytes,
		SelectionMethod: SelectionMethod,
		Algorithm: Algorithm{
			KGramSize:   fingerprint.K,
			WindowSize:  fingerprint.W,
			MaxPostings: MaxPostings,
		},
		ExcludePatterns: exclude,
	}
}
