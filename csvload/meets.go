package csvload

import (
	"encoding/csv"
	"io"

	"github.com/oplcore/oplcore/opltypes"
	"github.com/oplcore/oplcore/store"
)

var meetColumns = []string{
	"MeetID", "MeetPath", "Federation", "Date",
	"MeetCountry", "MeetState", "MeetTown", "MeetName", "RuleSet",
}

// loadMeets parses meets.csv in file order, assigning dense MeetIDs.
func loadMeets(r *csv.Reader, s *store.Store, ids *idIndex) error {
	header, err := r.Read()
	if err != nil {
		return ingestErrf("meets.csv", 1, "reading header: %v", err)
	}
	if err := checkHeader("meets.csv", header, meetColumns); err != nil {
		return err
	}

	line := 1
	for {
		record, err := r.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return ingestErrf("meets.csv", line, "reading record: %v", err)
		}
		line++

		if len(record) != len(meetColumns) {
			return ingestErrf("meets.csv", line, "expected %d columns, got %d", len(meetColumns), len(record))
		}

		fileID, err := parseIntColumn("meets.csv", line, "MeetID", record[0])
		if err != nil {
			return err
		}

		path, err := normalizeMeetPath(record[1])
		if err != nil {
			return ingestErrf("meets.csv", line, "invalid MeetPath %q: %v", record[1], err)
		}

		federation, err := opltypes.ParseFederation(record[2])
		if err != nil {
			return ingestErrf("meets.csv", line, "column Federation: %v", err)
		}

		date, err := opltypes.ParseDate(record[3])
		if err != nil {
			return ingestErrf("meets.csv", line, "column Date: %v", err)
		}

		ruleSet := opltypes.ParseRuleSet(record[8])

		var country opltypes.Country
		if record[4] != "" {
			country = opltypes.ParseCountry(record[4])
		}

		m := store.Meet{
			Path:       path,
			Federation: federation,
			Date:       date,
			Country:    country,
			State:      opltypes.State(record[5]),
			Town:       record[6],
			Name:       record[7],
			RuleSet:    ruleSet,
			Sanctioned: true,
		}

		id, err := s.AddMeet(m)
		if err != nil {
			return ingestErrf("meets.csv", line, "%v", err)
		}
		if _, dup := ids.byFileID[fileID]; dup {
			return ingestErrf("meets.csv", line, "duplicate MeetID %d", fileID)
		}
		ids.byFileID[fileID] = uint32(id)
	}
}
