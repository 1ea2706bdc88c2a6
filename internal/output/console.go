package output

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/asynkron/dupscan/internal/exactdup"
	"github.com/asynkron/dupscan/internal/neardup"
)

// Console prints reports for a terminal.
type Console struct {
	W     io.Writer
	Theme Theme
	Top   int // rows shown per section; 0 shows everything
}

// NewConsole returns a console printer using the default theme.
func NewConsole(w io.Writer, top int) *Console {
	return &Console{W: w, Theme: DefaultTheme, Top: top}
}

func (c *Console) limit(n int) int {
	if c.Top > 0 && n > c.Top {
		return c.Top
	}
	return n
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.W, format, args...)
}

// Print writes the whole report.
func (c *Console) Print(r *Report) {
	c.printf("Scanned %s files (%s)\n",
		c.Theme.Summary.Render(humanize.Comma(int64(r.Scan.Files))),
		humanize.IBytes(r.Scan.Bytes))
	if r.Dup != nil {
		c.PrintExact(r.Dup)
	}
	if r.Near != nil {
		c.PrintNear(r.Near)
	}
	if len(r.Warnings) > 0 {
		c.printf("\n%s\n", c.Theme.Warning.Render(fmt.Sprintf("%d warnings", len(r.Warnings))))
		for _, w := range r.Warnings[:c.limit(len(r.Warnings))] {
			c.printf("  %s\n", c.Theme.Dim.Render(w))
		}
	}
}

// PrintExact writes exact-duplicate groups and the module density table.
func (c *Console) PrintExact(r *exactdup.Report) {
	c.printf("\n%s\n", c.Theme.Heading.Render("Exact duplicates"))
	if len(r.Groups) == 0 {
		c.printf("  %s\n", c.Theme.Dim.Render("no byte-identical files"))
		return
	}

	c.printf("Found %s groups wasting %s (%.2f%% of codebase)\n",
		c.Theme.Summary.Render(fmt.Sprintf("%d", len(r.Groups))),
		c.Theme.Summary.Render(humanize.IBytes(r.WastedBytes)),
		r.Density.WastedPctOfCodebase*100)

	for _, g := range r.Groups[:c.limit(len(r.Groups))] {
		c.printf("\n%s %s %s\n",
			c.Theme.Number.Render(humanize.IBytes(g.Bytes)),
			c.Theme.Dim.Render(fmt.Sprintf("x%d", len(g.Files))),
			c.Theme.Hash.Render(fmt.Sprintf("[%s]", shortHash(g.Hash))))
		for _, f := range g.Files {
			c.printf("  %s\n", c.Theme.Location.Render(f))
		}
	}

	if len(r.Density.ByModule) > 0 {
		c.printf("\n%s\n", c.Theme.Summary.Render("Wasted bytes by module:"))
		for _, row := range r.Density.ByModule[:c.limit(len(r.Density.ByModule))] {
			c.printf("  %s %s %s\n",
				c.Theme.Number.Render(fmt.Sprintf("%10s", humanize.IBytes(row.WastedBytes))),
				c.Theme.Dim.Render(fmt.Sprintf("%6.2f%%", row.Density*100)),
				c.Theme.Location.Render(row.Module))
		}
	}
}

// PrintNear writes near-duplicate pairs and clusters.
func (c *Console) PrintNear(r *neardup.Report) {
	c.printf("\n%s\n", c.Theme.Heading.Render("Near duplicates"))
	c.printf("Analyzed %d of %d eligible files (scope %s, threshold %.0f%%)\n",
		r.FilesAnalyzed, r.EligibleFiles, r.Params.Scope, r.Params.Threshold*100)
	if r.FilesSkipped > 0 {
		c.printf("%s\n", c.Theme.Dim.Render(fmt.Sprintf("Skipped %d files beyond max files", r.FilesSkipped)))
	}
	if r.ExcludedByPattern > 0 {
		c.printf("%s\n", c.Theme.Dim.Render(fmt.Sprintf("Excluded %d files by pattern", r.ExcludedByPattern)))
	}
	if len(r.Pairs) == 0 {
		c.printf("  %s\n", c.Theme.Dim.Render("no similar files"))
		return
	}

	for _, p := range r.Pairs[:c.limit(len(r.Pairs))] {
		c.printf("  %s %s %s %s\n",
			c.Theme.Heading.Render(fmt.Sprintf("%5.1f%%", p.Similarity*100)),
			c.Theme.Location.Render(p.Left),
			c.Theme.Dim.Render("<->"),
			c.Theme.Location.Render(p.Right))
	}
	if r.Truncated {
		c.printf("  %s\n", c.Theme.Dim.Render(fmt.Sprintf("(pairs truncated to %d)", r.Params.MaxPairs)))
	}

	if len(r.Clusters) > 0 {
		c.printf("\n%s\n", c.Theme.Summary.Render("Clusters:"))
		for _, cl := range r.Clusters[:c.limit(len(r.Clusters))] {
			c.printf("  %s %s %s\n",
				c.Theme.Location.Render(cl.Representative),
				c.Theme.Dim.Render(fmt.Sprintf("%d files, %d pairs,", len(cl.Files), cl.PairCount)),
				c.Theme.Dim.Render(fmt.Sprintf("max %.0f%%", cl.MaxSimilarity*100)))
			others := make([]string, 0, len(cl.Files)-1)
			for _, f := range cl.Files {
				if f != cl.Representative {
					others = append(others, f)
				}
			}
			c.printf("    %s\n", c.Theme.Dim.Render(strings.Join(others, ", ")))
		}
	}

	c.printf("\n%s\n", c.Theme.Dim.Render(fmt.Sprintf("Fingerprinted %s in %s, paired in %s",
		humanize.IBytes(r.Stats.BytesProcessed), r.Stats.Fingerprinting.Round(time.Millisecond), r.Stats.Pairing.Round(time.Millisecond))))
}

func shortHash(h string) string {
	if len(h) > 16 {
		return h[:16]
	}
	return h
}
