package csvload

import (
	"encoding/csv"
	"io"

	"github.com/oplcore/oplcore/opltypes"
	"github.com/oplcore/oplcore/store"
)

var entryColumns = []string{
	"MeetID", "LifterID", "Sex", "Event", "Equipment", "Age", "Division",
	"BodyweightKg", "WeightClassKg",
	"Squat1Kg", "Squat2Kg", "Squat3Kg", "Squat4Kg", "Best3SquatKg",
	"Bench1Kg", "Bench2Kg", "Bench3Kg", "Bench4Kg", "Best3BenchKg",
	"Deadlift1Kg", "Deadlift2Kg", "Deadlift3Kg", "Deadlift4Kg", "Best3DeadliftKg",
	"TotalKg", "Place",
	"Wilks", "Wilks2020", "Dots", "Glossbrenner", "SchwartzMalone",
	"Goodlift", "IPF", "Reshel", "NASA", "Hoffman", "AH", "McCulloch",
	"Tested", "Country", "State", "BirthYearClass", "AgeClass", "EntryDate",
}

// The col* constants name the fixed positions above, so the parsing
// code below reads by name rather than brittle magic numbers.
const (
	colMeetID = iota
	colLifterID
	colSex
	colEvent
	colEquipment
	colAge
	colDivision
	colBodyweightKg
	colWeightClassKg
	colSquat1Kg
	colSquat2Kg
	colSquat3Kg
	colSquat4Kg
	colBest3SquatKg
	colBench1Kg
	colBench2Kg
	colBench3Kg
	colBench4Kg
	colBest3BenchKg
	colDeadlift1Kg
	colDeadlift2Kg
	colDeadlift3Kg
	colDeadlift4Kg
	colBest3DeadliftKg
	colTotalKg
	colPlace
	colWilks
	colWilks2020
	colDots
	colGlossbrenner
	colSchwartzMalone
	colGoodlift
	colIPF
	colReshel
	colNASA
	colHoffman
	colAH
	colMcCulloch
	colTested
	colCountry
	colState
	colBirthYearClass
	colAgeClass
	colEntryDate
)

// idIndex (one for lifters, one for meets) lets entries.csv reference lifters.csv
// and meets.csv by their own CSV-assigned ids rather than by dense
// store ids, which are only known after those files finish loading.
type idIndex struct {
	byFileID map[int]uint32
}

// loadEntries parses entries.csv, resolving MeetID/LifterID references
// through the id indices built while loading the other two files.
// Unknown references are a fatal ingest error.
func loadEntries(r *csv.Reader, s *store.Store, lifterIDs, meetIDs *idIndex) error {
	header, err := r.Read()
	if err != nil {
		return ingestErrf("entries.csv", 1, "reading header: %v", err)
	}
	if err := checkHeader("entries.csv", header, entryColumns); err != nil {
		return err
	}

	line := 1
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return ingestErrf("entries.csv", line, "reading record: %v", err)
		}
		line++

		if len(record) != len(entryColumns) {
			return ingestErrf("entries.csv", line, "expected %d columns, got %d", len(entryColumns), len(record))
		}

		e, err := parseEntryRecord(line, record, lifterIDs, meetIDs)
		if err != nil {
			return err
		}
		s.AddEntry(e)
	}

	s.SortLifterMap()
	s.ComputeNumUniqueLifters()
	return nil
}

func parseEntryRecord(line int, record []string, lifterIDs, meetIDs *idIndex) (store.Entry, error) {
	const file = "entries.csv"

	meetFileID, err := parseIntColumn(file, line, "MeetID", record[colMeetID])
	if err != nil {
		return store.Entry{}, err
	}
	meetID, ok := meetIDs.byFileID[meetFileID]
	if !ok {
		return store.Entry{}, ingestErrf(file, line, "unknown MeetID %d", meetFileID)
	}

	lifterFileID, err := parseIntColumn(file, line, "LifterID", record[colLifterID])
	if err != nil {
		return store.Entry{}, err
	}
	lifterID, ok := lifterIDs.byFileID[lifterFileID]
	if !ok {
		return store.Entry{}, ingestErrf(file, line, "unknown LifterID %d", lifterFileID)
	}

	sex, err := opltypes.ParseSex(record[colSex])
	if err != nil {
		return store.Entry{}, ingestErrf(file, line, "column Sex: %v", err)
	}
	event, err := opltypes.ParseEvent(record[colEvent])
	if err != nil {
		return store.Entry{}, ingestErrf(file, line, "column Event: %v", err)
	}
	equipment, err := opltypes.ParseEquipment(record[colEquipment])
	if err != nil {
		return store.Entry{}, ingestErrf(file, line, "column Equipment: %v", err)
	}

	var age opltypes.Age
	if record[colAge] != "" {
		age, err = opltypes.ParseAge(record[colAge])
		if err != nil {
			return store.Entry{}, ingestErrf(file, line, "column Age: %v", err)
		}
	}

	bodyweight, err := parseWeight(file, line, "BodyweightKg", record[colBodyweightKg])
	if err != nil {
		return store.Entry{}, err
	}

	var weightClass opltypes.WeightClassKg
	if record[colWeightClassKg] != "" {
		weightClass, err = opltypes.ParseWeightClassKg(record[colWeightClassKg])
		if err != nil {
			return store.Entry{}, ingestErrf(file, line, "column WeightClassKg: %v", err)
		}
	}

	squat, err := parseAttempts(file, line, record, colSquat1Kg, colBest3SquatKg)
	if err != nil {
		return store.Entry{}, err
	}
	bench, err := parseAttempts(file, line, record, colBench1Kg, colBest3BenchKg)
	if err != nil {
		return store.Entry{}, err
	}
	deadlift, err := parseAttempts(file, line, record, colDeadlift1Kg, colBest3DeadliftKg)
	if err != nil {
		return store.Entry{}, err
	}

	total, err := parseWeight(file, line, "TotalKg", record[colTotalKg])
	if err != nil {
		return store.Entry{}, err
	}

	place, err := opltypes.ParsePlace(record[colPlace])
	if err != nil {
		return store.Entry{}, ingestErrf(file, line, "column Place: %v", err)
	}
	if total.IsZero() != place.IsDQ() {
		return store.Entry{}, ingestErrf(file, line, "totalkg==0 must hold iff place is DQ/DD/NS (invariant 2)")
	}

	points, err := parsePointsColumns(file, line, record)
	if err != nil {
		return store.Entry{}, err
	}

	tested, err := parseBool(file, line, "Tested", record[colTested])
	if err != nil {
		return store.Entry{}, err
	}

	var country opltypes.Country
	if record[colCountry] != "" {
		country = opltypes.ParseCountry(record[colCountry])
	}

	var entryDate opltypes.Date
	if record[colEntryDate] != "" {
		entryDate, err = opltypes.ParseDate(record[colEntryDate])
		if err != nil {
			return store.Entry{}, ingestErrf(file, line, "column EntryDate: %v", err)
		}
	}

	var ageClass opltypes.AgeClass
	if record[colAgeClass] != "" {
		ageClass, err = opltypes.ParseAgeClass(record[colAgeClass])
		if err != nil {
			return store.Entry{}, ingestErrf(file, line, "column AgeClass: %v", err)
		}
	}
	var birthYearClass opltypes.BirthYearClass
	if record[colBirthYearClass] != "" {
		birthYearClass, err = opltypes.ParseBirthYearClass(record[colBirthYearClass])
		if err != nil {
			return store.Entry{}, ingestErrf(file, line, "column BirthYearClass: %v", err)
		}
	}

	return store.Entry{
		MeetID:         store.MeetID(meetID),
		LifterID:       store.LifterID(lifterID),
		Sex:            sex,
		Event:          event,
		Equipment:      equipment,
		Age:            age,
		AgeClass:       ageClass,
		BirthYearClass: birthYearClass,
		Division:       record[colDivision],
		BodyweightKg:   bodyweight,
		WeightClassKg:  weightClass,
		Squat:          squat,
		Bench:          bench,
		Deadlift:       deadlift,
		TotalKg:        total,
		Place:          place,
		Points:         points,
		Tested:         tested,
		Country:        country,
		State:          opltypes.State(record[colState]),
		EntryDate:      entryDate,
	}, nil
}

func parseAttempts(file string, line int, record []string, firstCol, best3Col int) (store.Attempts, error) {
	var a store.Attempts
	var err error
	if a.Attempt1, err = parseWeight(file, line, "Attempt1Kg", record[firstCol]); err != nil {
		return a, err
	}
	if a.Attempt2, err = parseWeight(file, line, "Attempt2Kg", record[firstCol+1]); err != nil {
		return a, err
	}
	if a.Attempt3, err = parseWeight(file, line, "Attempt3Kg", record[firstCol+2]); err != nil {
		return a, err
	}
	if a.Attempt4, err = parseWeight(file, line, "Attempt4Kg", record[firstCol+3]); err != nil {
		return a, err
	}
	if a.Best3, err = parseWeight(file, line, "Best3Kg", record[best3Col]); err != nil {
		return a, err
	}
	if computed := maxSuccessfulAttempt(a); a.Best3 != computed {
		return a, ingestErrf(file, line, "Best3Kg %s does not equal max successful attempt %s (invariant 3)", a.Best3, computed)
	}
	return a, nil
}

// maxSuccessfulAttempt returns the maximum positive attempt value, or
// zero if every attempt was missed or not taken, per invariant 3.
func maxSuccessfulAttempt(a store.Attempts) opltypes.WeightKg {
	best := opltypes.ZeroWeightKg
	for _, attempt := range []opltypes.WeightKg{a.Attempt1, a.Attempt2, a.Attempt3, a.Attempt4} {
		if attempt > 0 && attempt > best {
			best = attempt
		}
	}
	return best
}

func parsePointsColumns(file string, line int, record []string) (store.Points, error) {
	var p store.Points
	var err error
	if p.Wilks, err = parsePoints(file, line, "Wilks", record[colWilks]); err != nil {
		return p, err
	}
	if p.Wilks2020, err = parsePoints(file, line, "Wilks2020", record[colWilks2020]); err != nil {
		return p, err
	}
	if p.Dots, err = parsePoints(file, line, "Dots", record[colDots]); err != nil {
		return p, err
	}
	if p.Glossbrenner, err = parsePoints(file, line, "Glossbrenner", record[colGlossbrenner]); err != nil {
		return p, err
	}
	if p.SchwartzMalone, err = parsePoints(file, line, "SchwartzMalone", record[colSchwartzMalone]); err != nil {
		return p, err
	}
	if p.Goodlift, err = parsePoints(file, line, "Goodlift", record[colGoodlift]); err != nil {
		return p, err
	}
	if p.IPF, err = parsePoints(file, line, "IPF", record[colIPF]); err != nil {
		return p, err
	}
	if p.Reshel, err = parsePoints(file, line, "Reshel", record[colReshel]); err != nil {
		return p, err
	}
	if p.NASA, err = parsePoints(file, line, "NASA", record[colNASA]); err != nil {
		return p, err
	}
	if p.Hoffman, err = parsePoints(file, line, "Hoffman", record[colHoffman]); err != nil {
		return p, err
	}
	if p.AH, err = parsePoints(file, line, "AH", record[colAH]); err != nil {
		return p, err
	}
	if p.McCulloch, err = parsePoints(file, line, "McCulloch", record[colMcCulloch]); err != nil {
		return p, err
	}
	return p, nil
}

func parseIntColumn(file string, line int, column, raw string) (int, error) {
	n := 0
	if raw == "" {
		return 0, ingestErrf(file, line, "column %s: empty", column)
	}
	for _, c := range raw {
		if c < '0' || c > '9' {
			return 0, ingestErrf(file, line, "column %s: invalid integer %q", column, raw)
		}
		n = n*10 + int(c-'0')
	}
	return n, nil
}
