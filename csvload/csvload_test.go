package csvload_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oplcore/oplcore/csvload"
)

const lifterCSV = `LifterID,Name,CyrillicName,GreekName,JapaneseName,KoreanName,ChineseName,Username,Instagram,VKontakte,Color
1,Dan Green,,,,,,dangreen,,,
2,Jen Smith,,,,,,jensmith,,,
`

const meetCSV = `MeetID,MeetPath,Federation,Date,MeetCountry,MeetState,MeetTown,MeetName,RuleSet
1,uspa/2201,USPA,2022-03-01,USA,TX,Austin,Texas Open,Tested
`

const entryCSV = `MeetID,LifterID,Sex,Event,Equipment,Age,Division,BodyweightKg,WeightClassKg,Squat1Kg,Squat2Kg,Squat3Kg,Squat4Kg,Best3SquatKg,Bench1Kg,Bench2Kg,Bench3Kg,Bench4Kg,Best3BenchKg,Deadlift1Kg,Deadlift2Kg,Deadlift3Kg,Deadlift4Kg,Best3DeadliftKg,TotalKg,Place,Wilks,Wilks2020,Dots,Glossbrenner,SchwartzMalone,Goodlift,IPF,Reshel,NASA,Hoffman,AH,McCulloch,Tested,Country,State,BirthYearClass,AgeClass,EntryDate
1,1,M,SBD,Raw,,Open,90,90,200,,,,200,150,,,,150,150,,,,150,500,1,,,,,,,,,,,,,Yes,USA,TX,,,
1,2,F,SBD,Raw,,Open,65,67.5,100,,,,100,60,,,,60,120,,,,120,280,2,,,,,,,,,,,,,No,,,,,
`

func writeFixture(t *testing.T, dir string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "lifters.csv"), []byte(lifterCSV), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "meets.csv"), []byte(meetCSV), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "entries.csv"), []byte(entryCSV), 0o644))
}

func TestLoadIngestsThreeFilesIntoAFrozenStore(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir)

	s, err := csvload.Load(dir)
	require.NoError(t, err)

	assert.Equal(t, 2, s.NumLifters())
	assert.Equal(t, 1, s.NumMeets())
	assert.Equal(t, 2, s.NumEntries())
}

func TestLoadRejectsEntryWithUnknownLifterID(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir)

	badEntries := entryCSV + "1,99,M,SBD,Raw,,Open,90,90,200,,,,200,150,,,,150,150,,,,150,500,1,,,,,,,,,,,,,Yes,USA,TX,,,\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "entries.csv"), []byte(badEntries), 0o644))

	_, err := csvload.Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown LifterID")
}

func TestLoadRejectsHeaderMismatch(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "lifters.csv"), []byte("LifterID,Name\n1,Dan Green\n"), 0o644))

	_, err := csvload.Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected")
}
