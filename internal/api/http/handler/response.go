package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v3"

	"github.com/Alijeyrad/sorriso_backend/internal/store"
	"github.com/Alijeyrad/sorriso_backend/pkg/diary"
	"github.com/Alijeyrad/sorriso_backend/pkg/reqctx"
)

// Machine-readable error codes returned next to the human message.
const (
	CodeInvalidBody      = "invalid_body"
	CodeInvalidParam     = "invalid_param"
	CodeValidationFailed = "validation_failed"
	CodePatientNotFound  = "patient_not_found"
	CodeRecordNotFound   = "record_not_found"
	CodeToothNotFound    = "tooth_not_found"
	CodeStoreConflict    = "store_conflict"
	CodeInternal         = "internal_error"
	CodeNotFound         = "not_found"
)

const (
	msgPatientNotFound = "Paciente não encontrado."
	msgInvalidPatient  = "Parâmetro de paciente inválido."
	msgInvalidBody     = "Corpo da requisição inválido."
	msgStoreConflict   = "Os dados foram alterados por outra requisição. Tente novamente."
)

func ok(c fiber.Ctx, data any) error {
	return c.JSON(data)
}

func created(c fiber.Ctx, data any) error {
	return c.Status(fiber.StatusCreated).JSON(data)
}

func fail(c fiber.Ctx, status int, code, msg string) error {
	return c.Status(status).JSON(fiber.Map{"message": msg, "code": code})
}

func badRequest(c fiber.Ctx, code, msg string) error {
	return fail(c, fiber.StatusBadRequest, code, msg)
}

func notFound(c fiber.Ctx, code, msg string) error {
	return fail(c, fiber.StatusNotFound, code, msg)
}

func validationFailed(c fiber.Ctx, verr *diary.ValidationError) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": verr.Error(),
		"code":    CodeValidationFailed,
		"errors":  verr.Fields,
	})
}

// internalError echoes the underlying error text; the API serves a single
// trusted operator.
func internalError(c fiber.Ctx, msg string, err error) error {
	reqctx.Logger(c.Context()).Error(msg, "error", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": msg,
		"code":    CodeInternal,
		"error":   err.Error(),
	})
}

// mapCommonError handles errors shared by every diary endpoint. It reports
// false when err needs endpoint-specific treatment.
func mapCommonError(c fiber.Ctx, err error) (bool, error) {
	var verr *diary.ValidationError
	switch {
	case errors.As(err, &verr):
		return true, validationFailed(c, verr)
	case errors.Is(err, store.ErrConflict):
		return true, fail(c, fiber.StatusConflict, CodeStoreConflict, msgStoreConflict)
	}
	return false, nil
}

// ErrorHandler renders errors that escape handlers (unknown routes, body
// too large, panics recovered upstream) with the same envelope.
func ErrorHandler(c fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}

	switch code {
	case fiber.StatusNotFound:
		return fail(c, code, CodeNotFound, "Rota não encontrada.")
	case fiber.StatusInternalServerError:
		return internalError(c, "Erro inesperado.", err)
	default:
		return fail(c, code, "http_"+strconv.Itoa(code), err.Error())
	}
}
