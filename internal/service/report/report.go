// Package report serves patient progress reports built by pkg/report.
package report

import (
	"context"
	"fmt"

	"github.com/Alijeyrad/sorriso_backend/internal/service/patient"
	"github.com/Alijeyrad/sorriso_backend/internal/service/record"
	"github.com/Alijeyrad/sorriso_backend/internal/store"
	"github.com/Alijeyrad/sorriso_backend/pkg/diary"
	"github.com/Alijeyrad/sorriso_backend/pkg/observability"
	engine "github.com/Alijeyrad/sorriso_backend/pkg/report"
)

const (
	ScopeDaily   = "daily"
	ScopeGeneral = "general"
)

// Report is the response of GET /reports/:patientId. The aggregate fields
// are flattened into the top-level object.
type Report struct {
	Patient    diary.Patient `json:"patient"`
	Scope      string        `json:"scope"`
	FilterDate string        `json:"filterDate,omitempty"`
	engine.Aggregate
	Odontogram engine.OdontogramSummary `json:"odontogram"`
}

type Service interface {
	// Generate reports over all of the patient's records, or only those on
	// date when it is not empty.
	Generate(ctx context.Context, patientID, date string) (*Report, error)
}

type reportService struct {
	store   store.Store
	metrics *observability.DiaryMetrics
}

func New(st store.Store, metrics *observability.DiaryMetrics) Service {
	return &reportService{store: st, metrics: metrics}
}

func (s *reportService) Generate(ctx context.Context, patientID, date string) (*Report, error) {
	if date != "" && !diary.IsISODate(date) {
		return nil, ErrInvalidDate
	}

	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load document: %w", err)
	}

	p := patient.Find(doc, patientID)
	if p == nil {
		return nil, ErrPatientNotFound
	}

	records := record.ForPatient(doc.Records, patientID, date)

	scope := ScopeGeneral
	if date != "" {
		scope = ScopeDaily
	}
	s.metrics.ReportGenerated(ctx, scope)

	return &Report{
		Patient:    *p,
		Scope:      scope,
		FilterDate: date,
		Aggregate:  engine.BuildReport(records),
		Odontogram: engine.SummarizeOdontogram(records),
	}, nil
}
