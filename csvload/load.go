package csvload

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/oplcore/oplcore/store"
)

// Load ingests lifters.csv, meets.csv, and entries.csv from dir into a
// fresh, frozen store. Steps follow the documented ingest contract: a
// counting pass per file to reserve capacity, then the three parses in
// file-dependency order, then LifterMap sorting and
// NumUniqueLifters computation, then Freeze.
func Load(dir string) (*store.Store, error) {
	lifterPath := filepath.Join(dir, "lifters.csv")
	meetPath := filepath.Join(dir, "meets.csv")
	entryPath := filepath.Join(dir, "entries.csv")

	lifterCap, err := countDataRows(lifterPath)
	if err != nil {
		return nil, err
	}
	meetCap, err := countDataRows(meetPath)
	if err != nil {
		return nil, err
	}
	entryCap, err := countDataRows(entryPath)
	if err != nil {
		return nil, err
	}

	s := store.New(lifterCap, meetCap, entryCap)

	lifterIDs := &idIndex{byFileID: make(map[int]uint32, lifterCap)}
	meetIDs := &idIndex{byFileID: make(map[int]uint32, meetCap)}

	if err := withCSVReader(lifterPath, func(r *csv.Reader) error {
		return loadLifters(r, s, lifterIDs)
	}); err != nil {
		return nil, err
	}

	if err := withCSVReader(meetPath, func(r *csv.Reader) error {
		return loadMeets(r, s, meetIDs)
	}); err != nil {
		return nil, err
	}

	if err := withCSVReader(entryPath, func(r *csv.Reader) error {
		return loadEntries(r, s, lifterIDs, meetIDs)
	}); err != nil {
		return nil, err
	}

	s.Freeze()
	return s, nil
}

// countDataRows counts lines in a CSV file, minus the header, to
// presize the store's column slices: spec.md's "single pass over each
// CSV to count rows, then one allocation per column".
func countDataRows(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("csvload: opening %q: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	lines := 0
	for scanner.Scan() {
		lines++
	}
	if err := scanner.Err(); err != nil {
		return 0, fmt.Errorf("csvload: counting rows in %q: %w", path, err)
	}
	if lines == 0 {
		return 0, nil
	}
	return lines - 1, nil // minus header
}

func withCSVReader(path string, fn func(r *csv.Reader) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("csvload: opening %q: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.ReuseRecord = true
	// The canonical CSVs are unquoted per the ingest contract; a
	// comma inside a field would otherwise be ambiguous, so the
	// reader is not configured with LazyQuotes or a custom Comma.

	err = fn(r)
	if err != nil && err != io.EOF {
		return err
	}
	return nil
}
