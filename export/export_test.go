package export_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oplcore/oplcore/export"
	"github.com/oplcore/oplcore/internal/testfixtures"
)

func TestWriteToWritesHeaderAndOneRowPerID(t *testing.T) {
	s := testfixtures.SampleStore()
	ids := s.AllEntryIDs()

	var buf strings.Builder
	require.NoError(t, export.WriteTo(&buf, s, ids))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Len(t, lines, len(ids)+1)
	assert.Equal(t, strings.Join(export.Columns, ","), lines[0])
}

func TestWriteToEmptyIDsWritesOnlyHeader(t *testing.T) {
	s := testfixtures.SampleStore()

	var buf strings.Builder
	require.NoError(t, export.WriteTo(&buf, s, nil))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 1)
}

func TestRowRendersLifterAndMeetFields(t *testing.T) {
	s := testfixtures.SampleStore()
	ids := s.AllEntryIDs()

	row := export.Row(s, s.Entry(ids[0]))
	assert.Equal(t, "John Doe", row[0])
	assert.Equal(t, "USPA", row[34]) // Federation, taken from the meet
	assert.Equal(t, len(export.Columns), len(row))
}
