package diary

import (
	"regexp"
	"strings"

	"github.com/samber/lo"
)

// NormalizeClinicalProfile trims every text answer, drops blank list entries
// and empty medication rows, and returns nil when nothing is left. The server
// sanitizer and the client payload builder both go through here, so they
// always agree on whether a profile is present.
func NormalizeClinicalProfile(p *ClinicalProfile) *ClinicalProfile {
	if p == nil {
		return nil
	}

	n := &ClinicalProfile{
		MainDiagnosis:          strings.TrimSpace(p.MainDiagnosis),
		CID:                    strings.TrimSpace(p.CID),
		DiagnosisAge:           strings.TrimSpace(p.DiagnosisAge),
		ResponsibleDoctor:      strings.TrimSpace(p.ResponsibleDoctor),
		MedicalSpecialties:     trimList(p.MedicalSpecialties),
		MedicalSpecialtyOther:  strings.TrimSpace(p.MedicalSpecialtyOther),
		SystemicConditions:     trimList(p.SystemicConditions),
		SystemicConditionOther: strings.TrimSpace(p.SystemicConditionOther),
		HadSeizures:            p.HadSeizures,
		LastSeizure:            strings.TrimSpace(p.LastSeizure),
		SeizureFrequency:       strings.TrimSpace(p.SeizureFrequency),
		HasBehavioralCrises:    p.HasBehavioralCrises,
		BehavioralTriggers:     strings.TrimSpace(p.BehavioralTriggers),
		HadHospitalization:     p.HadHospitalization,
		HospitalizationReason:  strings.TrimSpace(p.HospitalizationReason),
		HadGeneralAnesthesia:   p.HadGeneralAnesthesia,
		MedicationsInUse:       trimMedications(p.MedicationsInUse),
		UsesAnticoagulants:     p.UsesAnticoagulants,
		UsesAnticonvulsants:    p.UsesAnticonvulsants,
		UsesPsychotropics:      p.UsesPsychotropics,
		UsesCorticosteroids:    p.UsesCorticosteroids,
	}

	if !n.HasContent() {
		return nil
	}
	return n
}

// HasContent reports whether any answer in the profile is populated.
func (p *ClinicalProfile) HasContent() bool {
	if p == nil {
		return false
	}

	texts := []string{
		p.MainDiagnosis, p.CID, p.DiagnosisAge, p.ResponsibleDoctor,
		p.MedicalSpecialtyOther, p.SystemicConditionOther,
		p.LastSeizure, p.SeizureFrequency, p.BehavioralTriggers, p.HospitalizationReason,
	}
	if lo.SomeBy(texts, func(s string) bool { return strings.TrimSpace(s) != "" }) {
		return true
	}

	answers := []TriState{
		p.HadSeizures, p.HasBehavioralCrises, p.HadHospitalization, p.HadGeneralAnesthesia,
		p.UsesAnticoagulants, p.UsesAnticonvulsants, p.UsesPsychotropics, p.UsesCorticosteroids,
	}
	if lo.SomeBy(answers, TriState.Answered) {
		return true
	}

	return len(p.MedicalSpecialties) > 0 ||
		len(p.SystemicConditions) > 0 ||
		len(p.MedicationsInUse) > 0
}

func trimList(values []string) []string {
	out := lo.FilterMap(values, func(v string, _ int) (string, bool) {
		v = strings.TrimSpace(v)
		return v, v != ""
	})
	return out
}

func trimMedications(values []MedicationInUse) []MedicationInUse {
	return lo.FilterMap(values, func(m MedicationInUse, _ int) (MedicationInUse, bool) {
		m = MedicationInUse{
			Medication: strings.TrimSpace(m.Medication),
			Dosage:     strings.TrimSpace(m.Dosage),
			Schedule:   strings.TrimSpace(m.Schedule),
			Indication: strings.TrimSpace(m.Indication),
		}
		return m, m != MedicationInUse{}
	})
}

// Normalize trims notes and, for a tooth charted as absent, resets every
// clinical finding to its default.
func (t ToothRecord) Normalize() ToothRecord {
	t.Notes = strings.TrimSpace(t.Notes)
	if !t.HasTooth {
		t.HasCaries = false
		t.HasPain = false
		t.Sensitivity = SensitivityNone
		t.Notes = ""
	}
	return t
}

// NormalizeOdontogram normalizes each tooth and collapses an empty chart
// to nil.
func NormalizeOdontogram(teeth []ToothRecord) []ToothRecord {
	if len(teeth) == 0 {
		return nil
	}
	return lo.Map(teeth, func(t ToothRecord, _ int) ToothRecord { return t.Normalize() })
}

// NormalizeTriggers removes duplicates keeping first occurrence. The result
// is never nil.
func NormalizeTriggers(triggers []Trigger) []Trigger {
	if len(triggers) == 0 {
		return []Trigger{}
	}
	return lo.Uniq(triggers)
}

var base64Body = regexp.MustCompile(`^[A-Za-z0-9+/=\n\r]+$`)

// NormalizePhotoURI returns a displayable image URI for a stored photo, or
// "" when the value cannot be shown.
func NormalizePhotoURI(value string) string {
	v := strings.TrimSpace(value)
	if v == "" {
		return ""
	}

	for _, prefix := range []string{"data:image/", "http://", "https://", "file://"} {
		if strings.HasPrefix(v, prefix) {
			return v
		}
	}

	if base64Body.MatchString(v) {
		return "data:image/jpeg;base64," + strings.Join(strings.Fields(v), "")
	}
	return ""
}

// EnsureCollections replaces missing collections with empty ones.
func (d *Document) EnsureCollections() {
	if d.Patients == nil {
		d.Patients = []Patient{}
	}
	if d.Records == nil {
		d.Records = []DailyRecord{}
	}
}
