package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alijeyrad/sorriso_backend/pkg/diary"
)

func twoDayRecords() []diary.DailyRecord {
	return []diary.DailyRecord{
		{
			Date: "2024-01-01", Mood: diary.MoodGood, Brushed: true, SleptWell: true,
			Triggers: []diary.Trigger{diary.TriggerLight},
		},
		{
			Date: "2024-01-02", Mood: diary.MoodSad, Fear: true, AteTooMuchCandy: true,
			Triggers: []diary.Trigger{diary.TriggerLight, diary.TriggerNoise},
		},
	}
}

func TestBuildReport_Empty(t *testing.T) {
	for _, in := range [][]diary.DailyRecord{nil, {}} {
		got := BuildReport(in)

		assert.Zero(t, got.TotalRecords)
		assert.Zero(t, got.BrushingFrequency)
		assert.Zero(t, got.AnxietyEpisodes)
		assert.Zero(t, got.CooperationAverage)
		assert.Zero(t, got.UnhealthyFoodFrequency)
		assert.Zero(t, got.SleepQualityFrequency)
		assert.NotNil(t, got.TriggerCounts)
		assert.Empty(t, got.TriggerCounts)
		assert.Nil(t, got.Period)
	}
}

func TestBuildReport_TwoDays(t *testing.T) {
	got := BuildReport(twoDayRecords())

	want := Aggregate{
		TotalRecords:           2,
		BrushingFrequency:      50,
		AnxietyEpisodes:        1,
		CooperationAverage:     50,
		UnhealthyFoodFrequency: 50,
		SleepQualityFrequency:  50,
		TriggerCounts:          map[diary.Trigger]int{diary.TriggerLight: 2, diary.TriggerNoise: 1},
		Period:                 &Period{Start: "2024-01-01", End: "2024-01-02"},
	}
	assert.Equal(t, want, got)
}

func TestBuildReport_OrderIndependent(t *testing.T) {
	records := []diary.DailyRecord{
		{Date: "2024-03-05", Mood: diary.MoodVeryGood, Brushed: true},
		{Date: "2024-03-01", Mood: diary.MoodNeutral, Triggers: []diary.Trigger{diary.TriggerTouch}},
		{Date: "2024-03-09", Mood: diary.MoodGood, Fear: true, SleptWell: true},
	}
	reversed := []diary.DailyRecord{records[2], records[1], records[0]}

	a, b := BuildReport(records), BuildReport(reversed)
	assert.Equal(t, a, b)
	require.NotNil(t, a.Period)
	assert.Equal(t, Period{Start: "2024-03-01", End: "2024-03-09"}, *a.Period)
}

func TestBuildReport_Rounding(t *testing.T) {
	tests := []struct {
		name    string
		brushed int
		total   int
		want    int
	}{
		{"one third", 1, 3, 33},
		{"two thirds", 2, 3, 67},
		{"half up", 1, 8, 13},
		{"all", 4, 4, 100},
		{"none", 0, 5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := make([]diary.DailyRecord, tt.total)
			for i := range records {
				records[i] = diary.DailyRecord{Date: "2024-01-01", Mood: diary.MoodGood, Brushed: i < tt.brushed}
			}
			got := BuildReport(records)
			if got.BrushingFrequency != tt.want {
				t.Errorf("BrushingFrequency = %d, want %d", got.BrushingFrequency, tt.want)
			}
			if got.BrushingFrequency < 0 || got.BrushingFrequency > 100 {
				t.Errorf("BrushingFrequency out of range: %d", got.BrushingFrequency)
			}
		})
	}
}

func TestBuildReport_CooperationRoundsHalfUp(t *testing.T) {
	// (75 + 50) / 2 = 62.5
	got := BuildReport([]diary.DailyRecord{
		{Date: "2024-01-01", Mood: diary.MoodGood},
		{Date: "2024-01-01", Mood: diary.MoodNeutral},
	})
	assert.Equal(t, 63, got.CooperationAverage)
}

func TestBuildReport_UnknownMoodScoresZero(t *testing.T) {
	got := BuildReport([]diary.DailyRecord{
		{Date: "2024-01-01", Mood: diary.MoodVeryGood},
		{Date: "2024-01-02", Mood: diary.Mood("furioso")},
	})
	assert.Equal(t, 50, got.CooperationAverage)
}

func TestBuildReport_TriggerCountsDistinctPerRecord(t *testing.T) {
	tests := []struct {
		name    string
		records []diary.DailyRecord
		want    map[diary.Trigger]int
	}{
		{
			name: "repeated trigger in one record",
			records: []diary.DailyRecord{
				{Date: "2024-01-01", Mood: diary.MoodGood, Triggers: []diary.Trigger{diary.TriggerLight, diary.TriggerLight}},
			},
			want: map[diary.Trigger]int{diary.TriggerLight: 1},
		},
		{
			name: "same trigger across records",
			records: []diary.DailyRecord{
				{Date: "2024-01-01", Mood: diary.MoodGood, Triggers: []diary.Trigger{diary.TriggerLight, diary.TriggerNoise, diary.TriggerLight}},
				{Date: "2024-01-02", Mood: diary.MoodGood, Triggers: []diary.Trigger{diary.TriggerLight}},
			},
			want: map[diary.Trigger]int{diary.TriggerLight: 2, diary.TriggerNoise: 1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildReport(tt.records).TriggerCounts)
		})
	}
}

func TestMoodScore(t *testing.T) {
	cases := map[diary.Mood]int{
		diary.MoodVeryGood: 100,
		diary.MoodGood:     75,
		diary.MoodNeutral:  50,
		diary.MoodSad:      25,
		"":                 0,
	}
	for mood, want := range cases {
		if got := MoodScore(mood); got != want {
			t.Fatalf("MoodScore(%q)=%d, want %d", mood, got, want)
		}
	}
}

func TestOnDate(t *testing.T) {
	records := twoDayRecords()

	assert.Len(t, OnDate(records, ""), 2)

	day := OnDate(records, "2024-01-02")
	require.Len(t, day, 1)
	assert.Equal(t, diary.MoodSad, day[0].Mood)

	assert.Empty(t, OnDate(records, "2023-12-31"))
}
