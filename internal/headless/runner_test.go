package headless

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeanpaul/roster/internal/export"
	"github.com/jeanpaul/roster/internal/people"
)

const sampleRoster = `
people:
  - first_name: Ada
    last_name: Lovelace
    age: 36
    job_title: Mathematician
    city: London
    state: England
  - first_name: Grace
    last_name: Hopper
    age: 45
    job_title: Rear Admiral
    city: Arlington
    state: VA
`

const rosterWithRejects = `
people:
  - first_name: Ada
    last_name: Lovelace
    age: 36
    job_title: Mathematician
    city: London
    state: England
  - first_name: ""
    last_name: Nobody
    age: 30
    job_title: Ghost
    city: Nowhere
    state: ZZ
  - first_name: Old
    last_name: Timer
    age: 200
    job_title: Relic
    city: Dust
    state: ZZ
`

func TestLoad(t *testing.T) {
	store, rejects, err := Load(strings.NewReader(sampleRoster))
	require.NoError(t, err)
	assert.Empty(t, rejects)
	require.Equal(t, 2, store.Len())

	all := store.All()
	assert.Equal(t, "Ada", all[0].FirstName)
	assert.Equal(t, "Grace", all[1].FirstName)

	stats := store.Stats()
	assert.Equal(t, 40.5, stats.AverageAge)
	assert.Equal(t, 2, stats.DistinctStates)
}

func TestLoadSkipsInvalidEntries(t *testing.T) {
	store, rejects, err := Load(strings.NewReader(rosterWithRejects))
	require.NoError(t, err)
	require.Len(t, rejects, 2)
	assert.Equal(t, 1, store.Len(), "only the valid entry survives")

	// Rejects carry the file position and the validation error so the
	// caller can report them.
	assert.Equal(t, 1, rejects[0].Index)
	var mf *people.MissingFieldError
	assert.ErrorAs(t, rejects[0].Err, &mf)

	assert.Equal(t, 2, rejects[1].Index)
	var ia *people.InvalidAgeError
	assert.ErrorAs(t, rejects[1].Err, &ia)
}

func TestLoadBadYAML(t *testing.T) {
	_, _, err := Load(strings.NewReader("people: [not valid"))
	assert.Error(t, err)
}

func TestRunWritesExports(t *testing.T) {
	dir := t.TempDir()
	rosterPath := filepath.Join(dir, "people.yaml")
	require.NoError(t, os.WriteFile(rosterPath, []byte(sampleRoster), 0o644))

	xlsxPath := filepath.Join(dir, "out.xlsx")
	docxPath := filepath.Join(dir, "out.docx")

	err := Run(Options{
		ImportPath: rosterPath,
		XLSXPath:   xlsxPath,
		DocxPath:   docxPath,
		Exporter:   export.Default(),
	})
	require.NoError(t, err)

	for _, p := range []string{xlsxPath, docxPath} {
		info, err := os.Stat(p)
		require.NoError(t, err, p)
		assert.Greater(t, info.Size(), int64(0), p)
	}
}

func TestRunEmptyRosterSkipsExports(t *testing.T) {
	dir := t.TempDir()
	rosterPath := filepath.Join(dir, "people.yaml")
	require.NoError(t, os.WriteFile(rosterPath, []byte("people: []\n"), 0o644))

	xlsxPath := filepath.Join(dir, "out.xlsx")
	err := Run(Options{
		ImportPath: rosterPath,
		XLSXPath:   xlsxPath,
		Exporter:   export.Default(),
	})
	require.NoError(t, err)

	_, statErr := os.Stat(xlsxPath)
	assert.True(t, os.IsNotExist(statErr), "empty store must produce no file")
}

func TestRunMissingImport(t *testing.T) {
	err := Run(Options{Exporter: export.Default()})
	assert.Error(t, err)
}
