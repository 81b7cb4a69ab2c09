// Package headless runs the import -> validate -> export pipeline without
// the TUI, for scripted use.
package headless

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jeanpaul/roster/internal/export"
	"github.com/jeanpaul/roster/internal/people"
)

// Options configures one headless run. XLSXPath and DocxPath are optional;
// empty means that export is skipped.
type Options struct {
	ImportPath string
	XLSXPath   string
	DocxPath   string
	Exporter   export.Exporter
}

// rosterFile is the yaml import format: a top-level `people` list.
type rosterFile struct {
	People []people.Record `yaml:"people"`
}

// Reject records one roster entry that failed validation: its index in
// the file and the reason.
type Reject struct {
	Index int
	Err   error
}

// Run loads the roster file, validates every entry, prints the statistics
// line and writes the requested exports. Invalid entries are reported to
// stderr with their index and skipped; they never reach the store.
func Run(opts Options) error {
	if opts.ImportPath == "" {
		return fmt.Errorf("headless mode requires --import")
	}

	store, rejects, err := load(opts.ImportPath)
	if err != nil {
		return err
	}
	for _, rej := range rejects {
		fmt.Fprintf(os.Stderr, "skipping entry %d: %v\n", rej.Index, rej.Err)
	}

	stats := store.Stats()
	fmt.Printf("Loaded %d records (%d rejected): average age %.1f, %d distinct states\n",
		stats.Count, len(rejects), stats.AverageAge, stats.DistinctStates)

	if opts.XLSXPath != "" {
		if err := writeExport(opts.XLSXPath, opts.Exporter.Spreadsheet, store); err != nil {
			return err
		}
	}
	if opts.DocxPath != "" {
		if err := writeExport(opts.DocxPath, opts.Exporter.Document, store); err != nil {
			return err
		}
	}
	return nil
}

func load(path string) (*people.Store, []Reject, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open roster file: %w", err)
	}
	defer f.Close()

	store, rejects, err := Load(f)
	if err != nil {
		return nil, nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return store, rejects, nil
}

// Load parses a yaml roster stream into a validated store. Each entry is
// revalidated through people.New regardless of what the file claims;
// entries that fail are returned as rejects, not stored. Load itself
// produces no output.
func Load(r io.Reader) (*people.Store, []Reject, error) {
	var file rosterFile
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&file); err != nil {
		return nil, nil, err
	}

	store := people.NewStore()
	var rejects []Reject
	for i, raw := range file.People {
		rec, err := people.New(raw.FirstName, raw.LastName, raw.Age, raw.JobTitle, raw.City, raw.State)
		if err != nil {
			rejects = append(rejects, Reject{Index: i, Err: err})
			continue
		}
		store.Append(rec)
	}
	return store, rejects, nil
}

func writeExport(path string, render func([]people.Record) ([]byte, error), store *people.Store) error {
	buf, err := render(store.All())
	if err != nil {
		return fmt.Errorf("render %s: %w", path, err)
	}
	if buf == nil {
		fmt.Fprintf(os.Stderr, "no records, skipping %s\n", path)
		return nil
	}
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	fmt.Printf("Wrote %s\n", path)
	return nil
}
