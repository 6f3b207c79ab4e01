package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/schollz/progressbar/v3"

	"pkg.jsn.cam/mockrand/cmd/testdata/generator"
	"pkg.jsn.cam/mockrand/internal/journal"
)

// progressEvery is how many lines are written between progress bar updates
const progressEvery = 1000

// countingWriter tallies bytes for the run summary.
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

// generate writes r.Count lines of r.Generator output to r.Output. It returns
// r with the resolved seed and count filled in, ready to be journaled.
func generate(r journal.Run, progress bool) (journal.Run, error) {
	gen, err := generator.Get(r.Generator, generator.Config{UserCount: r.UserCount, KeyCount: r.KeyCount})
	if err != nil {
		return r, err
	}

	rnd, seed := generator.NewRandom(r.Seed)
	r.Seed = seed
	if r.Count <= 0 {
		r.Count = gen.DefaultCount()
	}
	if err := gen.Init(rnd); err != nil {
		return r, fmt.Errorf("failed to initialize generator %s: %w", r.Generator, err)
	}

	if err := os.MkdirAll(filepath.Dir(r.Output), 0755); err != nil {
		return r, fmt.Errorf("failed to create output directory: %w", err)
	}
	file, err := os.Create(r.Output)
	if err != nil {
		return r, fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	var bar *progressbar.ProgressBar
	if progress {
		bar = progressbar.Default(r.Count, "generating "+r.Generator)
	} else {
		bar = progressbar.DefaultSilent(r.Count)
	}

	buf := bufio.NewWriter(file)
	out := &countingWriter{w: buf}
	for i := int64(0); i < r.Count; i++ {
		if err := gen.WriteLine(out); err != nil {
			return r, fmt.Errorf("failed to write line %d: %w", i, err)
		}
		if (i+1)%progressEvery == 0 {
			reportProgress(bar, progressEvery)
		}
	}
	if rest := r.Count % progressEvery; rest != 0 {
		reportProgress(bar, rest)
	}
	finishProgress(bar)

	if err := buf.Flush(); err != nil {
		return r, fmt.Errorf("failed to flush output: %w", err)
	}
	if err := file.Close(); err != nil {
		return r, fmt.Errorf("failed to close output: %w", err)
	}

	log.Printf("[TESTDATA] Wrote %s %s lines (%s) to %s with seed %s",
		humanize.Comma(r.Count), r.Generator, humanize.Bytes(uint64(out.n)), r.Output, r.Seed)
	return r, nil
}

// reportProgress advances the bar. Progress is best-effort: a failed render
// is logged and never aborts the run.
func reportProgress(bar *progressbar.ProgressBar, lines int64) {
	if err := bar.Add64(lines); err != nil {
		log.Printf("[TESTDATA] Warning: progress update failed: %v", err)
	}
}

func finishProgress(bar *progressbar.ProgressBar) {
	if err := bar.Finish(); err != nil {
		log.Printf("[TESTDATA] Warning: progress finish failed: %v", err)
	}
}

func listRuns(w io.Writer, store journal.Store) error {
	runs, err := store.List()
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tGENERATOR\tSEED\tLINES\tOUTPUT\tCREATED")
	for _, r := range runs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			r.ID, r.Generator, r.Seed, humanize.Comma(r.Count), r.Output, humanize.Time(r.CreatedAt))
	}
	return tw.Flush()
}
