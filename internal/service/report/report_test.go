package report

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alijeyrad/sorriso_backend/internal/store"
	"github.com/Alijeyrad/sorriso_backend/pkg/diary"
	engine "github.com/Alijeyrad/sorriso_backend/pkg/report"
)

func setup(t *testing.T) Service {
	t.Helper()
	st, err := store.NewFileStore(filepath.Join(t.TempDir(), "db.json"))
	require.NoError(t, err)

	require.NoError(t, st.Update(context.Background(), func(doc *diary.Document) error {
		doc.Patients = append(doc.Patients,
			diary.Patient{ID: "p1", Name: "Ana"},
			diary.Patient{ID: "p2", Name: "Bia"},
		)
		doc.Records = append(doc.Records,
			diary.DailyRecord{
				PatientID: "p1", Date: "2024-01-01", Mood: diary.MoodGood, Brushed: true, SleptWell: true,
				Triggers:   []diary.Trigger{diary.TriggerLight},
				Odontogram: []diary.ToothRecord{{ToothNumber: 3, HasTooth: true, HasCaries: true, Sensitivity: diary.SensitivityNone}},
			},
			diary.DailyRecord{
				PatientID: "p1", Date: "2024-01-02", Mood: diary.MoodSad, Fear: true, AteTooMuchCandy: true,
				Triggers: []diary.Trigger{diary.TriggerLight, diary.TriggerNoise},
			},
			diary.DailyRecord{PatientID: "p2", Date: "2024-01-01", Mood: diary.MoodVeryGood, Brushed: true},
		)
		return nil
	}))
	return New(st, nil)
}

func TestGenerate_General(t *testing.T) {
	svc := setup(t)

	r, err := svc.Generate(context.Background(), "p1", "")
	require.NoError(t, err)

	assert.Equal(t, "Ana", r.Patient.Name)
	assert.Equal(t, ScopeGeneral, r.Scope)
	assert.Empty(t, r.FilterDate)
	assert.Equal(t, 2, r.TotalRecords)
	assert.Equal(t, 50, r.CooperationAverage)
	assert.Equal(t, map[diary.Trigger]int{diary.TriggerLight: 2, diary.TriggerNoise: 1}, r.TriggerCounts)
	assert.Equal(t, &engine.Period{Start: "2024-01-01", End: "2024-01-02"}, r.Period)
	assert.Equal(t, []int{3}, r.Odontogram.TeethWithCaries)
}

func TestGenerate_Daily(t *testing.T) {
	svc := setup(t)

	r, err := svc.Generate(context.Background(), "p1", "2024-01-02")
	require.NoError(t, err)

	assert.Equal(t, ScopeDaily, r.Scope)
	assert.Equal(t, "2024-01-02", r.FilterDate)
	assert.Equal(t, 1, r.TotalRecords)
	assert.Equal(t, 1, r.AnxietyEpisodes)
	assert.Zero(t, r.Odontogram.TotalTeeth)
}

func TestGenerate_EmptyDay(t *testing.T) {
	svc := setup(t)

	r, err := svc.Generate(context.Background(), "p1", "2023-12-31")
	require.NoError(t, err)
	assert.Zero(t, r.TotalRecords)
	assert.Nil(t, r.Period)
	assert.Empty(t, r.TriggerCounts)
}

func TestGenerate_Errors(t *testing.T) {
	svc := setup(t)

	_, err := svc.Generate(context.Background(), "p1", "2024/01/01")
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = svc.Generate(context.Background(), "ghost", "")
	assert.ErrorIs(t, err, ErrPatientNotFound)
}
