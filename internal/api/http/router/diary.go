package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Alijeyrad/sorriso_backend/internal/api/http/handler"
)

func (r *Router) registerDiaryRoutes(
	api fiber.Router,
	ph *handler.PatientHandler,
	rh *handler.RecordHandler,
	reph *handler.ReportHandler,
) {
	patients := api.Group("/patients")
	patients.Get("/", ph.List)
	patients.Post("/", ph.Create)

	p := patients.Group("/:id")
	p.Get("/", ph.Get)
	p.Delete("/", ph.Delete)

	// Daily records
	p.Get("/records", rh.List)
	p.Post("/records", rh.Create)
	p.Delete("/records/:date/odontogram/:toothNumber", rh.RemoveTooth)

	api.Get("/reports/:patientId", reph.Get)
}
