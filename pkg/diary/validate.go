package diary

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// PatientInput is the registration payload. Pointer fields distinguish
// "absent" from "present but empty".
type PatientInput struct {
	Name            *string          `json:"name" validate:"required,notblank"`
	Sex             *Sex             `json:"sex" validate:"omitnil,oneof=feminino masculino outro"`
	MotherName      string           `json:"motherName"`
	BirthDate       string           `json:"birthDate" validate:"omitempty,isodate"`
	Notes           string           `json:"notes"`
	ClinicalProfile *ClinicalProfile `json:"clinicalProfile" validate:"-"`
}

type ToothInput struct {
	ToothNumber *int         `json:"toothNumber" validate:"required,min=1,max=32"`
	HasTooth    *bool        `json:"hasTooth" validate:"required"`
	HasCaries   *bool        `json:"hasCaries" validate:"required"`
	HasPain     *bool        `json:"hasPain" validate:"required"`
	Sensitivity *Sensitivity `json:"sensitivity" validate:"required,oneof=nenhuma leve moderada alta"`
	Notes       *string      `json:"notes"`
}

// Tooth converts a validated input. It panics on a nil required field, so
// call it only after Validate succeeded.
func (in ToothInput) Tooth() ToothRecord {
	t := ToothRecord{
		ToothNumber: *in.ToothNumber,
		HasTooth:    *in.HasTooth,
		HasCaries:   *in.HasCaries,
		HasPain:     *in.HasPain,
		Sensitivity: *in.Sensitivity,
	}
	if in.Notes != nil {
		t.Notes = *in.Notes
	}
	return t.Normalize()
}

type RecordInput struct {
	Date            string       `json:"date" validate:"required,isodate"`
	Brushed         bool         `json:"brushed"`
	Fear            bool         `json:"fear"`
	SleptWell       bool         `json:"sleptWell"`
	AteTooMuchCandy bool         `json:"ateTooMuchCandy"`
	Mood            Mood         `json:"mood" validate:"required,oneof=muito_bom bom neutro triste"`
	Triggers        []Trigger    `json:"triggers" validate:"omitempty,dive,oneof=barulho luz cheiro toque"`
	Odontogram      []ToothInput `json:"odontogram" validate:"omitempty,dive"`
	PhotoDataURL    *string      `json:"photoDataUrl" validate:"omitnil,notblank,startswith=data:image/"`
}

// Teeth returns the normalized odontogram, or nil when none was sent.
func (in RecordInput) Teeth() []ToothRecord {
	if len(in.Odontogram) == 0 {
		return nil
	}
	teeth := make([]ToothRecord, 0, len(in.Odontogram))
	for _, t := range in.Odontogram {
		teeth = append(teeth, t.Tooth())
	}
	return teeth
}

type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// ValidationError lists every failing field of one payload.
type ValidationError struct {
	Fields []FieldError `json:"errors"`
}

func (e *ValidationError) Error() string {
	roots := make([]string, 0, len(e.Fields))
	seen := map[string]bool{}
	for _, f := range e.Fields {
		root := rootField(f.Field)
		if !seen[root] {
			seen[root] = true
			roots = append(roots, root)
		}
	}
	if len(roots) == 1 {
		return fmt.Sprintf("Campo '%s' inválido.", roots[0])
	}
	return fmt.Sprintf("Campos inválidos: %s.", strings.Join(roots, ", "))
}

func rootField(path string) string {
	if i := strings.IndexAny(path, ".["); i >= 0 {
		return path[:i]
	}
	return path
}

var isoDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// IsISODate reports whether s is a real calendar date in YYYY-MM-DD form.
func IsISODate(s string) bool {
	if !isoDatePattern.MatchString(s) {
		return false
	}
	_, err := time.Parse(time.DateOnly, s)
	return err == nil
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	_ = v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		return IsISODate(fl.Field().String())
	})

	return v
}

// Validate checks a payload and returns a *ValidationError describing every
// failing field, or nil.
func Validate(in any) error {
	var fields []FieldError

	if err := validate.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return err
		}
		for _, fe := range verrs {
			fields = append(fields, FieldError{
				Field:   trimNamespace(fe.Namespace()),
				Rule:    fe.Tag(),
				Message: ruleMessage(fe),
			})
		}
	}

	if rec, ok := in.(*RecordInput); ok {
		fields = append(fields, duplicateTeeth(rec.Odontogram)...)
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func duplicateTeeth(teeth []ToothInput) []FieldError {
	var out []FieldError
	seen := map[int]bool{}
	for i, t := range teeth {
		if t.ToothNumber == nil {
			continue
		}
		if seen[*t.ToothNumber] {
			out = append(out, FieldError{
				Field:   fmt.Sprintf("odontogram[%d].toothNumber", i),
				Rule:    "unique",
				Message: fmt.Sprintf("dente %d repetido no odontograma", *t.ToothNumber),
			})
		}
		seen[*t.ToothNumber] = true
	}
	return out
}

// trimNamespace drops the struct type prefix: "RecordInput.mood" -> "mood".
func trimNamespace(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func ruleMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "campo obrigatório"
	case "notblank":
		return "não pode ser vazio"
	case "oneof":
		return "valor deve ser um de: " + fe.Param()
	case "isodate":
		return "data deve estar no formato YYYY-MM-DD"
	case "min", "max":
		return fmt.Sprintf("número do dente deve estar entre %d e %d", MinToothNumber, MaxToothNumber)
	case "startswith":
		return "deve ser imagem em data URL (" + fe.Param() + ")"
	default:
		return "valor inválido"
	}
}
