package diary

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTriState_JSON(t *testing.T) {
	var p struct {
		A TriState `json:"a"`
		B TriState `json:"b"`
		C TriState `json:"c"`
		D TriState `json:"d"`
		E TriState `json:"e"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a":true,"b":false,"c":null,"e":"sim"}`), &p))

	assert.Equal(t, Yes, p.A)
	assert.Equal(t, No, p.B)
	assert.Equal(t, Unanswered, p.C)
	assert.Equal(t, Unanswered, p.D)
	assert.Equal(t, Unanswered, p.E)

	out, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":true,"b":false,"c":null,"d":null,"e":null}`, string(out))
}

func blankProfile() *ClinicalProfile {
	return &ClinicalProfile{
		MainDiagnosis:      "   ",
		CID:                "",
		MedicalSpecialties: []string{"", "  "},
		SystemicConditions: []string{},
		MedicationsInUse:   []MedicationInUse{{Medication: " ", Dosage: ""}},
	}
}

func TestNormalizeClinicalProfile(t *testing.T) {
	tests := []struct {
		name    string
		in      *ClinicalProfile
		present bool
	}{
		{"nil", nil, false},
		{"only blanks and unanswered", blankProfile(), false},
		{"text answer", &ClinicalProfile{CID: " F84.0 "}, true},
		{"answered no", &ClinicalProfile{HadSeizures: No}, true},
		{"specialty", &ClinicalProfile{MedicalSpecialties: []string{"neurologia"}}, true},
		{"medication row", &ClinicalProfile{MedicationsInUse: []MedicationInUse{{Dosage: "5mg"}}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeClinicalProfile(tt.in)
			if (got != nil) != tt.present {
				t.Fatalf("present = %v, want %v", got != nil, tt.present)
			}
			if got != nil {
				assert.True(t, got.HasContent())
			}
		})
	}
}

func TestNormalizeClinicalProfile_Trims(t *testing.T) {
	got := NormalizeClinicalProfile(&ClinicalProfile{
		MainDiagnosis:      "  TEA  ",
		MedicalSpecialties: []string{" neurologia ", ""},
		MedicationsInUse: []MedicationInUse{
			{Medication: " risperidona ", Dosage: " 1mg "},
			{},
		},
		UsesPsychotropics: Yes,
	})
	require.NotNil(t, got)

	assert.Equal(t, "TEA", got.MainDiagnosis)
	assert.Equal(t, []string{"neurologia"}, got.MedicalSpecialties)
	assert.Equal(t, []string{}, got.SystemicConditions)
	assert.Equal(t, []MedicationInUse{{Medication: "risperidona", Dosage: "1mg"}}, got.MedicationsInUse)
	assert.Equal(t, Yes, got.UsesPsychotropics)
}

func TestToothRecord_Normalize(t *testing.T) {
	absent := ToothRecord{
		ToothNumber: 4, HasTooth: false, HasCaries: true, HasPain: true,
		Sensitivity: SensitivityHigh, Notes: "extraído",
	}.Normalize()
	assert.Equal(t, ToothRecord{ToothNumber: 4, Sensitivity: SensitivityNone}, absent)

	present := ToothRecord{ToothNumber: 9, HasTooth: true, HasCaries: true, Sensitivity: SensitivityMild, Notes: "  mancha "}.Normalize()
	assert.True(t, present.HasCaries)
	assert.Equal(t, "mancha", present.Notes)
}

func TestNormalizeTriggers(t *testing.T) {
	assert.Equal(t, []Trigger{}, NormalizeTriggers(nil))
	assert.Equal(t,
		[]Trigger{TriggerLight, TriggerNoise},
		NormalizeTriggers([]Trigger{TriggerLight, TriggerNoise, TriggerLight}),
	)
}

func TestNormalizePhotoURI(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"", ""},
		{"   ", ""},
		{" data:image/png;base64,AAA ", "data:image/png;base64,AAA"},
		{"https://cdn.example.com/a.jpg", "https://cdn.example.com/a.jpg"},
		{"file:///tmp/a.jpg", "file:///tmp/a.jpg"},
		{"QUJD\nREVG", "data:image/jpeg;base64,QUJDREVG"},
		{"not a photo!", ""},
	}
	for _, c := range cases {
		if got := NormalizePhotoURI(c.in); got != c.want {
			t.Fatalf("NormalizePhotoURI(%q)=%q, want %q", c.in, got, c.want)
		}
	}
}

func TestIsISODate(t *testing.T) {
	assert.True(t, IsISODate("2024-02-29"))
	assert.False(t, IsISODate("2023-02-29"))
	assert.False(t, IsISODate("2024-1-01"))
	assert.False(t, IsISODate("01/02/2024"))
	assert.False(t, IsISODate(""))
}

func ptr[T any](v T) *T { return &v }

func validTooth(n int) ToothInput {
	return ToothInput{
		ToothNumber: ptr(n),
		HasTooth:    ptr(true),
		HasCaries:   ptr(false),
		HasPain:     ptr(false),
		Sensitivity: ptr(SensitivityNone),
	}
}

func fieldsOf(t *testing.T, err error) []string {
	t.Helper()
	var verr *ValidationError
	require.True(t, errors.As(err, &verr), "expected *ValidationError, got %v", err)
	out := make([]string, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		out = append(out, f.Field)
	}
	return out
}

func TestValidate_Patient(t *testing.T) {
	assert.NoError(t, Validate(&PatientInput{Name: ptr("Ana")}))
	assert.NoError(t, Validate(&PatientInput{Name: ptr("Ana"), Sex: ptr(SexOther), BirthDate: "2018-06-01"}))

	err := Validate(&PatientInput{})
	assert.Equal(t, []string{"name"}, fieldsOf(t, err))
	assert.Equal(t, "Campo 'name' inválido.", err.Error())

	err = Validate(&PatientInput{Name: ptr("  "), Sex: ptr(Sex("x"))})
	assert.ElementsMatch(t, []string{"name", "sex"}, fieldsOf(t, err))

	err = Validate(&PatientInput{Name: ptr("Ana"), Sex: ptr(Sex(""))})
	assert.Equal(t, []string{"sex"}, fieldsOf(t, err))
}

func TestValidate_Record(t *testing.T) {
	ok := &RecordInput{
		Date:       "2024-05-01",
		Mood:       MoodGood,
		Triggers:   []Trigger{TriggerLight},
		Odontogram: []ToothInput{validTooth(1), validTooth(32)},
	}
	require.NoError(t, Validate(ok))

	bad := &RecordInput{
		Date:         "2024-5-1",
		Mood:         "feliz",
		Triggers:     []Trigger{"vento"},
		Odontogram:   []ToothInput{{ToothNumber: ptr(33)}, validTooth(2), validTooth(2)},
		PhotoDataURL: ptr("http://x/y.png"),
	}
	fields := fieldsOf(t, Validate(bad))

	assert.Contains(t, fields, "date")
	assert.Contains(t, fields, "mood")
	assert.Contains(t, fields, "triggers[0]")
	assert.Contains(t, fields, "odontogram[0].toothNumber")
	assert.Contains(t, fields, "odontogram[0].hasTooth")
	assert.Contains(t, fields, "odontogram[0].sensitivity")
	assert.Contains(t, fields, "odontogram[2].toothNumber")
	assert.Contains(t, fields, "photoDataUrl")
}

func TestValidate_RecordPhoto(t *testing.T) {
	base := func(photo *string) *RecordInput {
		return &RecordInput{Date: "2024-05-01", Mood: MoodNeutral, PhotoDataURL: photo}
	}

	assert.NoError(t, Validate(base(nil)))
	assert.NoError(t, Validate(base(ptr("data:image/jpeg;base64,AAAA"))))
	assert.Error(t, Validate(base(ptr(""))))
	assert.Error(t, Validate(base(ptr("   "))))
}

func TestRecordInput_Teeth(t *testing.T) {
	in := RecordInput{}
	assert.Nil(t, in.Teeth())

	absent := validTooth(7)
	absent.HasTooth = ptr(false)
	absent.HasCaries = ptr(true)
	absent.Notes = ptr("caiu")
	in.Odontogram = []ToothInput{absent}

	teeth := in.Teeth()
	require.Len(t, teeth, 1)
	assert.False(t, teeth[0].HasCaries)
	assert.Empty(t, teeth[0].Notes)
}
