package record

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/Alijeyrad/sorriso_backend/internal/service/patient"
	"github.com/Alijeyrad/sorriso_backend/internal/store"
	"github.com/Alijeyrad/sorriso_backend/pkg/diary"
	"github.com/Alijeyrad/sorriso_backend/pkg/observability"
	"github.com/Alijeyrad/sorriso_backend/pkg/reqctx"
)

// ToothRemoval reports the outcome of RemoveTooth.
type ToothRemoval struct {
	Date           string `json:"date"`
	PatientID      string `json:"patientId"`
	ToothNumber    int    `json:"toothNumber"`
	UpdatedRecords int    `json:"updatedRecords"`
}

type Service interface {
	// Create appends a daily record for an existing patient. Validation
	// failures are returned as *diary.ValidationError.
	Create(ctx context.Context, patientID string, in diary.RecordInput) (*diary.DailyRecord, error)
	// List returns the patient's records in stored order, restricted to one
	// date when date is not empty.
	List(ctx context.Context, patientID, date string) ([]diary.DailyRecord, error)
	// RemoveTooth drops toothNumber from every record of the patient on date.
	// It distinguishes ErrPatientNotFound, ErrRecordNotFound and
	// ErrToothNotFound so callers can treat an already absent tooth as done.
	RemoveTooth(ctx context.Context, patientID, date string, toothNumber int) (*ToothRemoval, error)
}

type recordService struct {
	store   store.Store
	metrics *observability.DiaryMetrics
	now     func() time.Time
}

func New(st store.Store, metrics *observability.DiaryMetrics) Service {
	return &recordService{store: st, metrics: metrics, now: time.Now}
}

func newRecord(patientID string, in diary.RecordInput, at time.Time) diary.DailyRecord {
	rec := diary.DailyRecord{
		ID:              uuid.NewString(),
		PatientID:       patientID,
		Date:            in.Date,
		Brushed:         in.Brushed,
		Fear:            in.Fear,
		SleptWell:       in.SleptWell,
		AteTooMuchCandy: in.AteTooMuchCandy,
		Mood:            in.Mood,
		Triggers:        diary.NormalizeTriggers(in.Triggers),
		Odontogram:      in.Teeth(),
		CreatedAt:       at.UTC(),
	}
	if in.PhotoDataURL != nil {
		rec.PhotoDataURL = strings.TrimSpace(*in.PhotoDataURL)
	}
	return rec
}

func (s *recordService) Create(ctx context.Context, patientID string, in diary.RecordInput) (*diary.DailyRecord, error) {
	log := reqctx.Logger(ctx).With(slog.String("patient_id", patientID))

	if err := diary.Validate(&in); err != nil {
		log.Warn("daily record rejected", slog.String("reason", err.Error()))
		return nil, err
	}

	rec := newRecord(patientID, in, s.now())

	err := s.store.Update(ctx, func(doc *diary.Document) error {
		if patient.Find(doc, patientID) == nil {
			return ErrPatientNotFound
		}
		doc.Records = append(doc.Records, rec)
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrPatientNotFound) {
			log.Error("failed to save daily record", slog.Any("error", err))
		}
		return nil, err
	}

	s.metrics.Write(ctx, "record.create")
	log.Info("daily record saved",
		slog.String("record_id", rec.ID),
		slog.String("date", rec.Date),
		slog.Int("teeth", len(rec.Odontogram)),
	)
	return &rec, nil
}

func (s *recordService) List(ctx context.Context, patientID, date string) ([]diary.DailyRecord, error) {
	if date != "" && !diary.IsISODate(date) {
		return nil, ErrInvalidDate
	}

	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load records: %w", err)
	}
	if patient.Find(doc, patientID) == nil {
		return nil, ErrPatientNotFound
	}

	return ForPatient(doc.Records, patientID, date), nil
}

// ForPatient filters records by patient and, when date is set, by date.
// The result is never nil.
func ForPatient(records []diary.DailyRecord, patientID, date string) []diary.DailyRecord {
	return lo.Filter(records, func(r diary.DailyRecord, _ int) bool {
		return r.PatientID == patientID && (date == "" || r.Date == date)
	})
}

func (s *recordService) RemoveTooth(ctx context.Context, patientID, date string, toothNumber int) (*ToothRemoval, error) {
	if !diary.IsISODate(date) {
		return nil, ErrInvalidDate
	}
	if toothNumber < diary.MinToothNumber || toothNumber > diary.MaxToothNumber {
		return nil, ErrInvalidToothNumber
	}

	log := reqctx.Logger(ctx).With(
		slog.String("patient_id", patientID),
		slog.String("date", date),
		slog.Int("tooth", toothNumber),
	)

	var updated int
	err := s.store.Update(ctx, func(doc *diary.Document) error {
		if patient.Find(doc, patientID) == nil {
			return ErrPatientNotFound
		}

		matched := false
		for i := range doc.Records {
			rec := &doc.Records[i]
			if rec.PatientID != patientID || rec.Date != date {
				continue
			}
			matched = true
			if removeTooth(rec, toothNumber) {
				updated++
			}
		}

		switch {
		case !matched:
			return ErrRecordNotFound
		case updated == 0:
			return ErrToothNotFound
		}
		return nil
	})
	if err != nil {
		log.Warn("tooth removal failed", slog.String("reason", err.Error()))
		return nil, err
	}

	s.metrics.Write(ctx, "record.remove_tooth")
	log.Info("tooth removed from odontogram", slog.Int("updated_records", updated))

	return &ToothRemoval{
		Date:           date,
		PatientID:      patientID,
		ToothNumber:    toothNumber,
		UpdatedRecords: updated,
	}, nil
}

// removeTooth reports whether rec changed. An odontogram left empty is
// cleared to nil.
func removeTooth(rec *diary.DailyRecord, toothNumber int) bool {
	next := lo.Reject(rec.Odontogram, func(t diary.ToothRecord, _ int) bool {
		return t.ToothNumber == toothNumber
	})
	if len(next) == len(rec.Odontogram) {
		return false
	}
	if len(next) == 0 {
		next = nil
	}
	rec.Odontogram = next
	return true
}
