// Package export serializes entries back to CSV in the fixed column
// order the rest of the ecosystem depends on.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"

	"github.com/oplcore/oplcore/store"
)

// Columns is the documented, stable export column order.
var Columns = []string{
	"Name", "Sex", "Event", "Equipment", "Age", "AgeClass", "BirthYearClass",
	"Division", "BodyweightKg", "WeightClassKg",
	"Squat1Kg", "Squat2Kg", "Squat3Kg", "Squat4Kg", "Best3SquatKg",
	"Bench1Kg", "Bench2Kg", "Bench3Kg", "Bench4Kg", "Best3BenchKg",
	"Deadlift1Kg", "Deadlift2Kg", "Deadlift3Kg", "Deadlift4Kg", "Best3DeadliftKg",
	"TotalKg", "Place", "Dots", "Wilks", "Glossbrenner", "Goodlift",
	"Tested", "Country", "State", "Federation", "ParentFederation",
	"Date", "MeetCountry", "MeetState", "MeetTown", "MeetName", "Sanctioned",
}

// Row renders a single entry's columns in the documented order.
func Row(s *store.Store, e *store.Entry) []string {
	lifter := s.Lifter(e.LifterID)
	meet := s.Meet(e.MeetID)

	return []string{
		lifter.Name,
		e.Sex.String(),
		e.Event.String(),
		e.Equipment.String(),
		e.Age.String(),
		e.AgeClass.String(),
		e.BirthYearClass.String(),
		e.Division,
		e.BodyweightKg.String(),
		e.WeightClassKg.String(),
		e.Squat.Attempt1.String(), e.Squat.Attempt2.String(), e.Squat.Attempt3.String(), e.Squat.Attempt4.String(), e.Squat.Best3.String(),
		e.Bench.Attempt1.String(), e.Bench.Attempt2.String(), e.Bench.Attempt3.String(), e.Bench.Attempt4.String(), e.Bench.Best3.String(),
		e.Deadlift.Attempt1.String(), e.Deadlift.Attempt2.String(), e.Deadlift.Attempt3.String(), e.Deadlift.Attempt4.String(), e.Deadlift.Best3.String(),
		e.TotalKg.String(),
		e.Place.String(),
		e.Points.Dots.String(),
		e.Points.Wilks.String(),
		e.Points.Glossbrenner.String(),
		e.Points.Goodlift.String(),
		boolString(e.Tested),
		string(e.Country),
		string(e.State),
		string(meet.Federation),
		string(meet.ParentFederation),
		meet.Date.String(),
		string(meet.Country),
		string(meet.State),
		meet.Town,
		meet.Name,
		boolString(meet.Sanctioned),
	}
}

func boolString(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

// WriteTo writes a header row followed by one row per id in ids, in
// the order given, to w.
func WriteTo(w io.Writer, s *store.Store, ids []store.EntryID) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Columns); err != nil {
		return fmt.Errorf("export: writing header: %w", err)
	}
	for _, id := range ids {
		if err := cw.Write(Row(s, s.Entry(id))); err != nil {
			return fmt.Errorf("export: writing entry %d: %w", id, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFile atomically writes a slice of entries to path via a
// temp-file-then-rename, so a reader never observes a partially
// written export.
func WriteFile(path string, s *store.Store, ids []store.EntryID) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("export: creating directory for %q: %w", path, err)
	}

	t, err := renameio.TempFile("", path)
	if err != nil {
		return fmt.Errorf("export: creating temp file for %q: %w", path, err)
	}
	defer func() {
		if cerr := t.Cleanup(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if err := WriteTo(t, s, ids); err != nil {
		return err
	}
	if err := t.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("export: replacing %q: %w", path, err)
	}
	return nil
}
