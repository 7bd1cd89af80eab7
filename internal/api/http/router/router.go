package router

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"

	"github.com/Alijeyrad/sorriso_backend/config"
	"github.com/Alijeyrad/sorriso_backend/internal/api/http/handler"
	"github.com/Alijeyrad/sorriso_backend/internal/service/patient"
	"github.com/Alijeyrad/sorriso_backend/internal/service/record"
	"github.com/Alijeyrad/sorriso_backend/internal/service/report"
	"github.com/Alijeyrad/sorriso_backend/internal/store"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg        *config.Config
	Store      store.Store
	PatientSvc patient.Service
	RecordSvc  record.Service
	ReportSvc  report.Service
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

func (r *Router) Register(app *fiber.App) {
	r.registerSystemRoutes(app)

	patientH := handler.NewPatientHandler(r.p.PatientSvc)
	recordH := handler.NewRecordHandler(r.p.RecordSvc)
	reportH := handler.NewReportHandler(r.p.ReportSvc)

	// The mobile client has used both prefixes; serve the same routes on each.
	for _, prefix := range []string{"", "/api"} {
		g := app.Group(prefix)
		g.Get("/", handler.Info)
		g.Get("/health", handler.Health)
		r.registerDiaryRoutes(g, patientH, recordH, reportH)
	}
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New(healthcheck.Config{
		Probe: func(c fiber.Ctx) bool { return r.p.Store.Ping(c.Context()) == nil },
	}))
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())

	if r.p.Cfg.Observability.Enabled && r.p.Cfg.Observability.Metrics.Enabled {
		path := r.p.Cfg.Observability.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(promhttp.Handler()))
	}
}
