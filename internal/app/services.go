package app

import (
	"go.uber.org/fx"

	"github.com/Alijeyrad/sorriso_backend/internal/service/patient"
	"github.com/Alijeyrad/sorriso_backend/internal/service/record"
	"github.com/Alijeyrad/sorriso_backend/internal/service/report"
	"github.com/Alijeyrad/sorriso_backend/internal/store"
	"github.com/Alijeyrad/sorriso_backend/pkg/observability"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvidePatientService,
		ProvideRecordService,
		ProvideReportService,
	),
)

func ProvidePatientService(st store.Store, m *observability.DiaryMetrics) patient.Service {
	return patient.New(st, m)
}

func ProvideRecordService(st store.Store, m *observability.DiaryMetrics) record.Service {
	return record.New(st, m)
}

func ProvideReportService(st store.Store, m *observability.DiaryMetrics) report.Service {
	return report.New(st, m)
}
