package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/credlab/credbench/table"
)

func intPtr(v int) *int { return &v }

func openTemp(t *testing.T) *Store {
	t.Helper()

	s, err := Open(filepath.Join(t.TempDir(), "credbench.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	return s
}

func sampleRecords() []table.Record {
	return []table.Record{
		{
			Scheme: "t_utt", Operation: "token_request",
			Participants: 4, Threshold: 3, Attributes: 8,
			MeanMs: 5.9096078,
		},
		{
			Scheme: "s3id", Operation: "dedup",
			Participants: 4, Threshold: 3, Attributes: 8,
			Threshold2:      intPtr(5),
			TotalAttributes: intPtr(16),
			MeanMs:          72.05472953,
		},
	}
}

func TestSaveAndLoadRun(t *testing.T) {
	s := openTemp(t)

	records := sampleRecords()

	runID, err := s.SaveRun("t_utt", time.Now(), records)
	require.NoError(t, err)
	assert.Positive(t, runID)

	got, err := s.LoadRun(runID)
	require.NoError(t, err)
	assert.Equal(t, records, got)
}

func TestRunsNewestFirst(t *testing.T) {
	s := openTemp(t)

	base := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	first, err := s.SaveRun("t_utt", base, sampleRecords())
	require.NoError(t, err)

	second, err := s.SaveRun("s3id", base.Add(time.Minute), sampleRecords()[:1])
	require.NoError(t, err)

	runs, err := s.Runs()
	require.NoError(t, err)
	require.Len(t, runs, 2)

	assert.Equal(t, second, runs[0].ID)
	assert.Equal(t, "s3id", runs[0].Scheme)
	assert.Equal(t, 1, runs[0].Records)

	assert.Equal(t, first, runs[1].ID)
	assert.Equal(t, 2, runs[1].Records)
}

func TestRunsEmpty(t *testing.T) {
	s := openTemp(t)

	runs, err := s.Runs()
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestLoadRunUnknown(t *testing.T) {
	s := openTemp(t)

	records, err := s.LoadRun(42)
	require.NoError(t, err)
	assert.Empty(t, records)
}
