package handler

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/Alijeyrad/sorriso_backend/internal/service/report"
)

type ReportHandler struct {
	svc report.Service
}

func NewReportHandler(svc report.Service) *ReportHandler {
	return &ReportHandler{svc: svc}
}

// GET /reports/:patientId?date=YYYY-MM-DD
func (h *ReportHandler) Get(c fiber.Ctx) error {
	patientID := strings.TrimSpace(c.Params("patientId"))
	if patientID == "" {
		return badRequest(c, CodeInvalidParam, msgInvalidPatient)
	}

	r, err := h.svc.Generate(c.Context(), patientID, strings.TrimSpace(c.Query("date")))
	switch {
	case err == nil:
		return ok(c, r)
	case errors.Is(err, report.ErrInvalidDate):
		return badRequest(c, CodeInvalidParam, "Query param 'date' inválido.")
	case errors.Is(err, report.ErrPatientNotFound):
		return notFound(c, CodePatientNotFound, msgPatientNotFound)
	default:
		return internalError(c, "Erro inesperado ao gerar relatório.", err)
	}
}
