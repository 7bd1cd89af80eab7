package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alijeyrad/sorriso_backend/pkg/diary"
)

func TestFormatDateLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"2024-05-01", "01/05/2024"},
		{"2024-05", "2024-05"},
		{"", ""},
		{"2024--01", "2024--01"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDateLabel(tt.in))
		})
	}
}

func TestPhotoItems(t *testing.T) {
	records := []diary.DailyRecord{
		{Date: "2024-05-02", PhotoDataURL: "data:image/png;base64,AAA"},
		{Date: "2024-05-01"},
		{Date: "2024-05-03", PhotoDataURL: "QUJD"},
		{Date: "2024-05-04", PhotoDataURL: "não é foto"},
	}

	got := PhotoItems(records)
	assert.Equal(t, []PhotoItem{
		{URI: "data:image/png;base64,AAA", Date: "2024-05-02", DateLabel: "02/05/2024"},
		{URI: "data:image/jpeg;base64,QUJD", Date: "2024-05-03", DateLabel: "03/05/2024"},
	}, got)
}

func TestComputeProgress(t *testing.T) {
	records := []diary.DailyRecord{
		{Date: "2024-05-01", Brushed: true, Mood: diary.MoodVeryGood,
			Odontogram: []diary.ToothRecord{{ToothNumber: 1, HasTooth: true, HasCaries: true}}},
		{Date: "2024-05-02", Mood: diary.MoodSad, PhotoDataURL: "data:image/png;base64,AAA"},
	}

	all := ComputeProgress(records, "")
	assert.Equal(t, 2, all.Report.TotalRecords)
	assert.Equal(t, 50, all.Report.BrushingFrequency)
	assert.Equal(t, 1, all.Odontogram.CariesCount)
	assert.Len(t, all.Photos, 1)

	day := ComputeProgress(records, "2024-05-02")
	assert.Equal(t, 1, day.Report.TotalRecords)
	assert.Equal(t, 0, day.Odontogram.TotalTeeth)
	assert.Equal(t, "2024-05-02", day.Filter)

	none := ComputeProgress(records, "2023-01-01")
	assert.Equal(t, 0, none.Report.TotalRecords)
	assert.Nil(t, none.Report.Period)
	assert.Empty(t, none.Photos)
}

func TestClient_Progress(t *testing.T) {
	c, last := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, []map[string]any{
			{"id": "r1", "date": "2024-05-01", "mood": "muito_bom", "brushed": true},
			{"id": "r2", "date": "2024-05-02", "mood": "triste"},
		})
	})

	got, err := c.Progress(context.Background(), "p1", "2024-05-01")
	require.NoError(t, err)
	assert.Empty(t, last.query)
	assert.Equal(t, 1, got.Report.TotalRecords)
	assert.Equal(t, 100, got.Report.BrushingFrequency)
}
