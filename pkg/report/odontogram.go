package report

import (
	"slices"
	"strings"

	"github.com/Alijeyrad/sorriso_backend/pkg/diary"
)

// OdontogramSummary is the current state of every charted tooth.
type OdontogramSummary struct {
	TotalTeeth      int   `json:"totalTeeth"`
	CariesCount     int   `json:"cariesCount"`
	PainCount       int   `json:"painCount"`
	MissingCount    int   `json:"missingCount"`
	SelectedTeeth   []int `json:"selectedTeeth"`
	TeethWithCaries []int `json:"teethWithCaries"`
	TeethWithPain   []int `json:"teethWithPain"`
	MissingTeeth    []int `json:"missingTeeth"`
}

// LatestTeeth resolves the current state of every charted tooth. Records are
// replayed by date ascending, ties keeping input order, and each mention of a
// tooth replaces the previous one wholesale.
func LatestTeeth(records []diary.DailyRecord) map[int]diary.ToothRecord {
	order := make([]int, len(records))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return strings.Compare(records[a].Date, records[b].Date)
	})

	latest := map[int]diary.ToothRecord{}
	for _, idx := range order {
		for _, tooth := range records[idx].Odontogram {
			latest[tooth.ToothNumber] = tooth
		}
	}
	return latest
}

// SummarizeOdontogram reports which teeth are charted, missing, carious or
// painful according to their latest state. An absent tooth is never counted
// as carious or painful.
func SummarizeOdontogram(records []diary.DailyRecord) OdontogramSummary {
	latest := LatestTeeth(records)

	s := OdontogramSummary{
		SelectedTeeth:   make([]int, 0, len(latest)),
		TeethWithCaries: []int{},
		TeethWithPain:   []int{},
		MissingTeeth:    []int{},
	}

	for number, tooth := range latest {
		s.SelectedTeeth = append(s.SelectedTeeth, number)
		if !tooth.HasTooth {
			s.MissingTeeth = append(s.MissingTeeth, number)
			continue
		}
		if tooth.HasCaries {
			s.TeethWithCaries = append(s.TeethWithCaries, number)
		}
		if tooth.HasPain {
			s.TeethWithPain = append(s.TeethWithPain, number)
		}
	}

	slices.Sort(s.SelectedTeeth)
	slices.Sort(s.TeethWithCaries)
	slices.Sort(s.TeethWithPain)
	slices.Sort(s.MissingTeeth)

	s.TotalTeeth = len(s.SelectedTeeth)
	s.CariesCount = len(s.TeethWithCaries)
	s.PainCount = len(s.TeethWithPain)
	s.MissingCount = len(s.MissingTeeth)

	return s
}
