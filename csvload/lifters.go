package csvload

import (
	"encoding/csv"
	"io"

	"github.com/oplcore/oplcore/opltypes"
	"github.com/oplcore/oplcore/store"
)

// lifterColumns is the fixed, documented header for lifters.csv.
var lifterColumns = []string{
	"LifterID", "Name", "CyrillicName", "GreekName", "JapaneseName",
	"KoreanName", "ChineseName", "Username", "Instagram", "VKontakte", "Color",
}

// loadLifters parses lifters.csv in file order, assigning dense
// LifterIDs and installing the username index. Dense ids follow
// ingest order, per invariant 1; the CSV's own LifterID column is not
// compared with them but recorded in ids, so entries.csv can refer to
// a lifter by it.
func loadLifters(r *csv.Reader, s *store.Store, ids *idIndex) error {
	header, err := r.Read()
	if err != nil {
		return ingestErrf("lifters.csv", 1, "reading header: %v", err)
	}
	if err := checkHeader("lifters.csv", header, lifterColumns); err != nil {
		return err
	}

	line := 1
	for {
		record, err := r.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return ingestErrf("lifters.csv", line, "reading record: %v", err)
		}
		line++

		if len(record) != len(lifterColumns) {
			return ingestErrf("lifters.csv", line, "expected %d columns, got %d", len(lifterColumns), len(record))
		}

		fileID, err := parseIntColumn("lifters.csv", line, "LifterID", record[0])
		if err != nil {
			return err
		}

		if record[7] == "" {
			return ingestErrf("lifters.csv", line, "empty Username")
		}
		// The canonical CSV carries an already-normalized Username
		// column; re-deriving it here would mask upstream corpus bugs
		// rather than reporting them, so it is validated, not
		// recomputed.
		if derived, err := opltypes.FromName(record[7]); err != nil || derived != opltypes.Username(record[7]) {
			return ingestErrf("lifters.csv", line, "Username %q is not in normalized form", record[7])
		}
		username := opltypes.Username(record[7])

		l := store.Lifter{
			Name:         record[1],
			CyrillicName: record[2],
			GreekName:    record[3],
			JapaneseName: record[4],
			KoreanName:   record[5],
			ChineseName:  record[6],
			Username:     username,
			Instagram:    record[8],
			VKontakte:    record[9],
			Color:        record[10],
		}

		id, err := s.AddLifter(l)
		if err != nil {
			return ingestErrf("lifters.csv", line, "%v", err)
		}
		if _, dup := ids.byFileID[fileID]; dup {
			return ingestErrf("lifters.csv", line, "duplicate LifterID %d", fileID)
		}
		ids.byFileID[fileID] = uint32(id)
	}
}
