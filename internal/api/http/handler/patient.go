package handler

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/Alijeyrad/sorriso_backend/internal/service/patient"
	"github.com/Alijeyrad/sorriso_backend/pkg/diary"
)

type PatientHandler struct {
	svc patient.Service
}

func NewPatientHandler(svc patient.Service) *PatientHandler {
	return &PatientHandler{svc: svc}
}

func mapPatientError(c fiber.Ctx, err error) error {
	if handled, herr := mapCommonError(c, err); handled {
		return herr
	}
	switch {
	case errors.Is(err, patient.ErrPatientNotFound):
		return notFound(c, CodePatientNotFound, msgPatientNotFound)
	case errors.Is(err, patient.ErrInvalidID):
		return badRequest(c, CodeInvalidParam, msgInvalidPatient)
	default:
		return internalError(c, "Erro inesperado ao acessar pacientes.", err)
	}
}

// GET /patients
func (h *PatientHandler) List(c fiber.Ctx) error {
	list, err := h.svc.List(c.Context())
	if err != nil {
		return mapPatientError(c, err)
	}
	return ok(c, list)
}

// POST /patients
func (h *PatientHandler) Create(c fiber.Ctx) error {
	var in diary.PatientInput
	if err := c.Bind().JSON(&in); err != nil {
		return badRequest(c, CodeInvalidBody, msgInvalidBody)
	}

	p, err := h.svc.Create(c.Context(), in)
	if err != nil {
		return mapPatientError(c, err)
	}
	return created(c, p)
}

// GET /patients/:id
func (h *PatientHandler) Get(c fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))

	p, err := h.svc.Get(c.Context(), id)
	if err != nil {
		return mapPatientError(c, err)
	}
	return ok(c, p)
}

// DELETE /patients/:id
func (h *PatientHandler) Delete(c fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))

	res, err := h.svc.Delete(c.Context(), id)
	if err != nil {
		return mapPatientError(c, err)
	}
	return ok(c, res)
}
