// Package report derives progress statistics and the current odontogram from
// a patient's daily records. Functions here are pure: they never mutate their
// input and give the same answer for the same records, which lets the API and
// the client share one implementation.
package report

import (
	"math"

	"github.com/samber/lo"

	"github.com/Alijeyrad/sorriso_backend/pkg/diary"
)

// Period is the inclusive date range covered by a set of records.
type Period struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Aggregate holds the progress indicators computed over a set of records.
type Aggregate struct {
	TotalRecords           int                   `json:"totalRecords"`
	BrushingFrequency      int                   `json:"brushingFrequency"`
	AnxietyEpisodes        int                   `json:"anxietyEpisodes"`
	CooperationAverage     int                   `json:"cooperationAverage"`
	UnhealthyFoodFrequency int                   `json:"unhealthyFoodFrequency"`
	SleepQualityFrequency  int                   `json:"sleepQualityFrequency"`
	TriggerCounts          map[diary.Trigger]int `json:"triggerCounts"`
	Period                 *Period               `json:"period"`
}

// MoodScore maps a mood to its cooperation score. Unknown moods score 0.
func MoodScore(m diary.Mood) int {
	switch m {
	case diary.MoodVeryGood:
		return 100
	case diary.MoodGood:
		return 75
	case diary.MoodNeutral:
		return 50
	case diary.MoodSad:
		return 25
	default:
		return 0
	}
}

// BuildReport aggregates records. An empty input yields zeros, an empty
// trigger map and a nil period.
func BuildReport(records []diary.DailyRecord) Aggregate {
	agg := Aggregate{TriggerCounts: map[diary.Trigger]int{}}
	total := len(records)
	if total == 0 {
		return agg
	}

	var brushed, fear, candy, slept, moodSum int
	period := Period{Start: records[0].Date, End: records[0].Date}

	for _, r := range records {
		if r.Brushed {
			brushed++
		}
		if r.Fear {
			fear++
		}
		if r.AteTooMuchCandy {
			candy++
		}
		if r.SleptWell {
			slept++
		}
		moodSum += MoodScore(r.Mood)

		for _, t := range lo.Uniq(r.Triggers) {
			agg.TriggerCounts[t]++
		}

		if r.Date < period.Start {
			period.Start = r.Date
		}
		if r.Date > period.End {
			period.End = r.Date
		}
	}

	agg.TotalRecords = total
	agg.BrushingFrequency = percent(brushed, total)
	agg.AnxietyEpisodes = fear
	agg.CooperationAverage = roundHalfUp(float64(moodSum) / float64(total))
	agg.UnhealthyFoodFrequency = percent(candy, total)
	agg.SleepQualityFrequency = percent(slept, total)
	agg.Period = &period

	return agg
}

func percent(n, total int) int {
	return roundHalfUp(float64(n) / float64(total) * 100)
}

func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}

// OnDate keeps records dated exactly date, preserving order. An empty date
// keeps everything.
func OnDate(records []diary.DailyRecord, date string) []diary.DailyRecord {
	if date == "" {
		return records
	}
	return lo.Filter(records, func(r diary.DailyRecord, _ int) bool { return r.Date == date })
}
