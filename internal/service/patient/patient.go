package patient

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/Alijeyrad/sorriso_backend/internal/store"
	"github.com/Alijeyrad/sorriso_backend/pkg/diary"
	"github.com/Alijeyrad/sorriso_backend/pkg/observability"
	"github.com/Alijeyrad/sorriso_backend/pkg/reqctx"
)

// Deleted is returned by Delete together with the removed patient.
type Deleted struct {
	Message string        `json:"message"`
	Patient diary.Patient `json:"patient"`
}

type Service interface {
	// Create validates and registers a patient. Validation failures are
	// returned as *diary.ValidationError.
	Create(ctx context.Context, in diary.PatientInput) (*diary.Patient, error)
	List(ctx context.Context) ([]diary.Patient, error)
	Get(ctx context.Context, id string) (*diary.Patient, error)
	// Delete removes the patient and every daily record that belongs to it.
	Delete(ctx context.Context, id string) (*Deleted, error)
}

type patientService struct {
	store   store.Store
	metrics *observability.DiaryMetrics
	now     func() time.Time
}

func New(st store.Store, metrics *observability.DiaryMetrics) Service {
	return &patientService{store: st, metrics: metrics, now: time.Now}
}

// Find returns the patient with id, or nil.
func Find(doc *diary.Document, id string) *diary.Patient {
	_, idx, ok := lo.FindIndexOf(doc.Patients, func(p diary.Patient) bool { return p.ID == id })
	if !ok {
		return nil
	}
	return &doc.Patients[idx]
}

func (s *patientService) Create(ctx context.Context, in diary.PatientInput) (*diary.Patient, error) {
	if err := diary.Validate(&in); err != nil {
		return nil, err
	}

	p := diary.Patient{
		ID:              uuid.NewString(),
		Name:            strings.TrimSpace(*in.Name),
		MotherName:      strings.TrimSpace(in.MotherName),
		BirthDate:       in.BirthDate,
		Notes:           strings.TrimSpace(in.Notes),
		ClinicalProfile: diary.NormalizeClinicalProfile(in.ClinicalProfile),
		CreatedAt:       s.now().UTC(),
	}
	if in.Sex != nil {
		p.Sex = *in.Sex
	}

	err := s.store.Update(ctx, func(doc *diary.Document) error {
		doc.Patients = append(doc.Patients, p)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("save patient: %w", err)
	}

	s.metrics.Write(ctx, "patient.create")
	reqctx.Logger(ctx).Info("patient created", slog.String("patient_id", p.ID))
	return &p, nil
}

func (s *patientService) List(ctx context.Context) ([]diary.Patient, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load patients: %w", err)
	}
	return doc.Patients, nil
}

func (s *patientService) Get(ctx context.Context, id string) (*diary.Patient, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrInvalidID
	}

	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load patients: %w", err)
	}

	p := Find(doc, id)
	if p == nil {
		return nil, ErrPatientNotFound
	}
	return p, nil
}

func (s *patientService) Delete(ctx context.Context, id string) (*Deleted, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrInvalidID
	}

	var (
		removed diary.Patient
		records int
	)
	err := s.store.Update(ctx, func(doc *diary.Document) error {
		p := Find(doc, id)
		if p == nil {
			return ErrPatientNotFound
		}
		removed = *p

		doc.Patients = lo.Reject(doc.Patients, func(p diary.Patient, _ int) bool { return p.ID == id })
		kept := lo.Reject(doc.Records, func(r diary.DailyRecord, _ int) bool { return r.PatientID == id })
		records = len(doc.Records) - len(kept)
		doc.Records = kept
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.Write(ctx, "patient.delete")
	reqctx.Logger(ctx).Info("patient deleted",
		slog.String("patient_id", id),
		slog.Int("records_removed", records),
	)
	return &Deleted{Message: "Paciente removido com sucesso.", Patient: removed}, nil
}
