package handler

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/Alijeyrad/sorriso_backend/internal/service/record"
	"github.com/Alijeyrad/sorriso_backend/pkg/diary"
)

type RecordHandler struct {
	svc record.Service
}

func NewRecordHandler(svc record.Service) *RecordHandler {
	return &RecordHandler{svc: svc}
}

func mapRecordError(c fiber.Ctx, err error, unexpected string) error {
	if handled, herr := mapCommonError(c, err); handled {
		return herr
	}
	switch {
	case errors.Is(err, record.ErrPatientNotFound):
		return notFound(c, CodePatientNotFound, msgPatientNotFound)
	case errors.Is(err, record.ErrRecordNotFound):
		return notFound(c, CodeRecordNotFound, "Registro diário não encontrado.")
	case errors.Is(err, record.ErrToothNotFound):
		return notFound(c, CodeToothNotFound, "Dente não encontrado no registro.")
	case errors.Is(err, record.ErrInvalidDate):
		return badRequest(c, CodeInvalidParam, "Parâmetro 'date' inválido.")
	case errors.Is(err, record.ErrInvalidToothNumber):
		return badRequest(c, CodeInvalidParam, "Parâmetro 'toothNumber' inválido.")
	default:
		return internalError(c, unexpected, err)
	}
}

// POST /patients/:id/records
func (h *RecordHandler) Create(c fiber.Ctx) error {
	patientID := strings.TrimSpace(c.Params("id"))
	if patientID == "" {
		return badRequest(c, CodeInvalidParam, msgInvalidPatient)
	}

	var in diary.RecordInput
	if err := c.Bind().JSON(&in); err != nil {
		return badRequest(c, CodeInvalidBody, msgInvalidBody)
	}

	rec, err := h.svc.Create(c.Context(), patientID, in)
	if err != nil {
		return mapRecordError(c, err, "Erro inesperado ao salvar registro.")
	}
	return created(c, rec)
}

// GET /patients/:id/records?date=YYYY-MM-DD
func (h *RecordHandler) List(c fiber.Ctx) error {
	patientID := strings.TrimSpace(c.Params("id"))
	if patientID == "" {
		return badRequest(c, CodeInvalidParam, msgInvalidPatient)
	}

	list, err := h.svc.List(c.Context(), patientID, strings.TrimSpace(c.Query("date")))
	if err != nil {
		return mapRecordError(c, err, "Erro inesperado ao carregar registros.")
	}
	return ok(c, list)
}

// DELETE /patients/:id/records/:date/odontogram/:toothNumber
func (h *RecordHandler) RemoveTooth(c fiber.Ctx) error {
	patientID := strings.TrimSpace(c.Params("id"))
	date := strings.TrimSpace(c.Params("date"))
	rawTooth := strings.TrimSpace(c.Params("toothNumber"))
	if patientID == "" || date == "" || rawTooth == "" {
		return badRequest(c, CodeInvalidParam, "Parâmetros para exclusão do dente inválidos.")
	}

	tooth, err := strconv.Atoi(rawTooth)
	if err != nil {
		return mapRecordError(c, record.ErrInvalidToothNumber, "")
	}

	res, err := h.svc.RemoveTooth(c.Context(), patientID, date, tooth)
	if err != nil {
		return mapRecordError(c, err, "Erro inesperado ao remover dente.")
	}
	return ok(c, res)
}
