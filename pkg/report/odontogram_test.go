package report

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Alijeyrad/sorriso_backend/pkg/diary"
)

func tooth(n int, present, caries, pain bool) diary.ToothRecord {
	return diary.ToothRecord{
		ToothNumber: n,
		HasTooth:    present,
		HasCaries:   caries,
		HasPain:     pain,
		Sensitivity: diary.SensitivityNone,
	}
}

func TestSummarizeOdontogram_LaterDateWins(t *testing.T) {
	a := diary.DailyRecord{Date: "2024-01-01", Odontogram: []diary.ToothRecord{tooth(3, true, true, false)}}
	b := diary.DailyRecord{Date: "2024-01-05", Odontogram: []diary.ToothRecord{tooth(3, true, false, false)}}

	for _, in := range [][]diary.DailyRecord{{a, b}, {b, a}} {
		s := SummarizeOdontogram(in)
		assert.Equal(t, []int{3}, s.SelectedTeeth)
		assert.Empty(t, s.TeethWithCaries)
		assert.Zero(t, s.CariesCount)
	}
}

func TestSummarizeOdontogram_SameDateLaterInputWins(t *testing.T) {
	first := diary.DailyRecord{Date: "2024-02-02", Odontogram: []diary.ToothRecord{tooth(8, true, false, true)}}
	second := diary.DailyRecord{Date: "2024-02-02", Odontogram: []diary.ToothRecord{tooth(8, true, false, false)}}

	s := SummarizeOdontogram([]diary.DailyRecord{first, second})
	assert.Empty(t, s.TeethWithPain)

	s = SummarizeOdontogram([]diary.DailyRecord{second, first})
	assert.Equal(t, []int{8}, s.TeethWithPain)
}

func TestSummarizeOdontogram_MissingToothHidesStaleFindings(t *testing.T) {
	records := []diary.DailyRecord{
		{Date: "2024-01-01", Odontogram: []diary.ToothRecord{tooth(14, true, true, true)}},
		// Not normalized on purpose: a stale caries flag must be ignored.
		{Date: "2024-01-10", Odontogram: []diary.ToothRecord{tooth(14, false, true, true)}},
	}

	s := SummarizeOdontogram(records)
	assert.Equal(t, []int{14}, s.MissingTeeth)
	assert.Equal(t, 1, s.MissingCount)
	assert.Empty(t, s.TeethWithCaries)
	assert.Empty(t, s.TeethWithPain)
}

func TestSummarizeOdontogram_NoMergeAcrossRecords(t *testing.T) {
	records := []diary.DailyRecord{
		{Date: "2024-01-01", Odontogram: []diary.ToothRecord{tooth(5, true, true, false)}},
		{Date: "2024-01-02", Odontogram: []diary.ToothRecord{tooth(5, true, false, true)}},
	}

	s := SummarizeOdontogram(records)
	assert.Empty(t, s.TeethWithCaries)
	assert.Equal(t, []int{5}, s.TeethWithPain)
}

func TestSummarizeOdontogram_SortedUnion(t *testing.T) {
	records := []diary.DailyRecord{
		{Date: "2024-01-03", Odontogram: []diary.ToothRecord{tooth(30, true, true, false), tooth(2, false, false, false)}},
		{Date: "2024-01-01", Odontogram: []diary.ToothRecord{tooth(17, true, true, true)}},
		{Date: "2024-01-02"},
	}

	want := OdontogramSummary{
		TotalTeeth:      3,
		CariesCount:     2,
		PainCount:       1,
		MissingCount:    1,
		SelectedTeeth:   []int{2, 17, 30},
		TeethWithCaries: []int{17, 30},
		TeethWithPain:   []int{17},
		MissingTeeth:    []int{2},
	}
	assert.Equal(t, want, SummarizeOdontogram(records))
}

func TestSummarizeOdontogram_Empty(t *testing.T) {
	s := SummarizeOdontogram(nil)

	assert.Zero(t, s.TotalTeeth)
	assert.NotNil(t, s.SelectedTeeth)
	assert.Empty(t, s.SelectedTeeth)
	assert.Empty(t, s.MissingTeeth)
}

func TestSummarizeOdontogram_Idempotent(t *testing.T) {
	records := []diary.DailyRecord{
		{Date: "2024-04-01", Odontogram: []diary.ToothRecord{tooth(1, true, true, false)}},
		{Date: "2024-04-01", Odontogram: []diary.ToothRecord{tooth(1, false, false, false)}},
	}
	assert.Equal(t, SummarizeOdontogram(records), SummarizeOdontogram(records))
	assert.True(t, records[0].Odontogram[0].HasCaries, "input must not be mutated")
}
