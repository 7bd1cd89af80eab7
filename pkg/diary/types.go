// Package diary holds the domain model shared by the API server and the Go
// client: patients, daily records, per-tooth observations and the clinical
// intake profile, together with the normalization rules both sides apply
// before data is persisted or displayed.
package diary

import "time"

type Mood string

const (
	MoodVeryGood Mood = "muito_bom"
	MoodGood     Mood = "bom"
	MoodNeutral  Mood = "neutro"
	MoodSad      Mood = "triste"
)

// Moods lists the accepted moods in display order.
var Moods = []Mood{MoodVeryGood, MoodGood, MoodNeutral, MoodSad}

func (m Mood) Valid() bool {
	switch m {
	case MoodVeryGood, MoodGood, MoodNeutral, MoodSad:
		return true
	}
	return false
}

type Trigger string

const (
	TriggerNoise Trigger = "barulho"
	TriggerLight Trigger = "luz"
	TriggerSmell Trigger = "cheiro"
	TriggerTouch Trigger = "toque"
)

var Triggers = []Trigger{TriggerNoise, TriggerLight, TriggerSmell, TriggerTouch}

func (t Trigger) Valid() bool {
	switch t {
	case TriggerNoise, TriggerLight, TriggerSmell, TriggerTouch:
		return true
	}
	return false
}

type Sex string

const (
	SexFemale Sex = "feminino"
	SexMale   Sex = "masculino"
	SexOther  Sex = "outro"
)

func (s Sex) Valid() bool {
	switch s {
	case SexFemale, SexMale, SexOther:
		return true
	}
	return false
}

type Sensitivity string

const (
	SensitivityNone     Sensitivity = "nenhuma"
	SensitivityMild     Sensitivity = "leve"
	SensitivityModerate Sensitivity = "moderada"
	SensitivityHigh     Sensitivity = "alta"
)

func (s Sensitivity) Valid() bool {
	switch s {
	case SensitivityNone, SensitivityMild, SensitivityModerate, SensitivityHigh:
		return true
	}
	return false
}

// Universal numbering range.
const (
	MinToothNumber = 1
	MaxToothNumber = 32
)

type ToothRecord struct {
	ToothNumber int         `json:"toothNumber"`
	HasTooth    bool        `json:"hasTooth"`
	HasCaries   bool        `json:"hasCaries"`
	HasPain     bool        `json:"hasPain"`
	Sensitivity Sensitivity `json:"sensitivity"`
	Notes       string      `json:"notes,omitempty"`
}

type MedicationInUse struct {
	Medication string `json:"medication"`
	Dosage     string `json:"dosage"`
	Schedule   string `json:"schedule"`
	Indication string `json:"indication"`
}

type ClinicalProfile struct {
	MainDiagnosis          string            `json:"mainDiagnosis,omitempty"`
	CID                    string            `json:"cid,omitempty"`
	DiagnosisAge           string            `json:"diagnosisAge,omitempty"`
	ResponsibleDoctor      string            `json:"responsibleDoctor,omitempty"`
	MedicalSpecialties     []string          `json:"medicalSpecialties"`
	MedicalSpecialtyOther  string            `json:"medicalSpecialtyOther,omitempty"`
	SystemicConditions     []string          `json:"systemicConditions"`
	SystemicConditionOther string            `json:"systemicConditionOther,omitempty"`
	HadSeizures            TriState          `json:"hadSeizures"`
	LastSeizure            string            `json:"lastSeizure,omitempty"`
	SeizureFrequency       string            `json:"seizureFrequency,omitempty"`
	HasBehavioralCrises    TriState          `json:"hasBehavioralCrises"`
	BehavioralTriggers     string            `json:"behavioralTriggers,omitempty"`
	HadHospitalization     TriState          `json:"hadHospitalization"`
	HospitalizationReason  string            `json:"hospitalizationReason,omitempty"`
	HadGeneralAnesthesia   TriState          `json:"hadGeneralAnesthesia"`
	MedicationsInUse       []MedicationInUse `json:"medicationsInUse"`
	UsesAnticoagulants     TriState          `json:"usesAnticoagulants"`
	UsesAnticonvulsants    TriState          `json:"usesAnticonvulsants"`
	UsesPsychotropics      TriState          `json:"usesPsychotropics"`
	UsesCorticosteroids    TriState          `json:"usesCorticosteroids"`
}

type Patient struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	Sex             Sex              `json:"sex,omitempty"`
	MotherName      string           `json:"motherName,omitempty"`
	BirthDate       string           `json:"birthDate,omitempty"`
	Notes           string           `json:"notes,omitempty"`
	ClinicalProfile *ClinicalProfile `json:"clinicalProfile,omitempty"`
	CreatedAt       time.Time        `json:"createdAt"`
}

// DailyRecord is one diary entry. Odontogram is nil when no tooth was
// charted; it is never stored as an empty slice.
type DailyRecord struct {
	ID              string        `json:"id"`
	PatientID       string        `json:"patientId"`
	Date            string        `json:"date"`
	Brushed         bool          `json:"brushed"`
	Fear            bool          `json:"fear"`
	SleptWell       bool          `json:"sleptWell"`
	AteTooMuchCandy bool          `json:"ateTooMuchCandy"`
	Mood            Mood          `json:"mood"`
	Triggers        []Trigger     `json:"triggers"`
	Odontogram      []ToothRecord `json:"odontogram,omitempty"`
	PhotoDataURL    string        `json:"photoDataUrl,omitempty"`
	CreatedAt       time.Time     `json:"createdAt"`
}

// Document is the whole persisted state.
type Document struct {
	Patients []Patient     `json:"patients"`
	Records  []DailyRecord `json:"records"`
}
