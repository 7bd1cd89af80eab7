// Package client is a Go client for the diary API. It mirrors the mobile
// wizard's service layer, including its tolerance rules (a patient without
// records yields an empty list, a blank clinical profile is never sent).
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	fiberclient "github.com/gofiber/fiber/v3/client"
	"github.com/samber/lo"

	"github.com/Alijeyrad/sorriso_backend/internal/service/patient"
	"github.com/Alijeyrad/sorriso_backend/internal/service/record"
	"github.com/Alijeyrad/sorriso_backend/internal/service/report"
	"github.com/Alijeyrad/sorriso_backend/pkg/diary"
)

// APIError is a non-2xx response.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s (HTTP %d)", e.Message, e.Status)
}

// IsCode reports whether err is an *APIError carrying code.
func IsCode(err error, code string) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Code == code
}

// IsAlreadyAbsent reports whether a RemoveTooth call failed because the
// tooth was not charted on that date.
func IsAlreadyAbsent(err error) bool {
	return IsCode(err, "tooth_not_found")
}

type NewPatient struct {
	Name            string                 `json:"name"`
	Sex             diary.Sex              `json:"sex,omitempty"`
	MotherName      string                 `json:"motherName,omitempty"`
	BirthDate       string                 `json:"birthDate,omitempty"`
	Notes           string                 `json:"notes,omitempty"`
	ClinicalProfile *diary.ClinicalProfile `json:"clinicalProfile,omitempty"`
}

type NewRecord struct {
	Date            string              `json:"date"`
	Brushed         bool                `json:"brushed"`
	Fear            bool                `json:"fear"`
	SleptWell       bool                `json:"sleptWell"`
	AteTooMuchCandy bool                `json:"ateTooMuchCandy"`
	Mood            diary.Mood          `json:"mood"`
	Triggers        []diary.Trigger     `json:"triggers"`
	Odontogram      []diary.ToothRecord `json:"odontogram,omitempty"`
	PhotoDataURL    string              `json:"photoDataUrl,omitempty"`
}

type Client struct {
	cc *fiberclient.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	cc := fiberclient.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout)
	return &Client{cc: cc}
}

func patientPath(id string) string {
	return "/patients/" + url.PathEscape(strings.TrimSpace(id))
}

func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, fiber.MethodGet, "/health", nil, nil, nil, "Health check falhou")
}

// ListPatients drops entries without a usable id or name.
func (c *Client) ListPatients(ctx context.Context) ([]diary.Patient, error) {
	var out []diary.Patient
	if err := c.do(ctx, fiber.MethodGet, "/patients", nil, nil, &out, "Falha ao buscar pacientes."); err != nil {
		return nil, err
	}
	return lo.Filter(out, func(p diary.Patient, _ int) bool {
		return strings.TrimSpace(p.ID) != "" && strings.TrimSpace(p.Name) != ""
	}), nil
}

func (c *Client) GetPatient(ctx context.Context, id string) (*diary.Patient, error) {
	var out diary.Patient
	if err := c.do(ctx, fiber.MethodGet, patientPath(id), nil, nil, &out, "Paciente não encontrado."); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreatePatient normalizes the clinical profile first so an empty intake
// form is sent as no profile at all.
func (c *Client) CreatePatient(ctx context.Context, in NewPatient) (*diary.Patient, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.ClinicalProfile = diary.NormalizeClinicalProfile(in.ClinicalProfile)

	var out diary.Patient
	if err := c.do(ctx, fiber.MethodPost, "/patients", nil, in, &out, "Falha ao cadastrar paciente"); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeletePatient(ctx context.Context, id string) (*patient.Deleted, error) {
	var out patient.Deleted
	if err := c.do(ctx, fiber.MethodDelete, patientPath(id), nil, nil, &out, "Não foi possível apagar o paciente."); err != nil {
		return nil, err
	}
	return &out, nil
}

// FetchRecords returns an empty list when the patient is unknown.
func (c *Client) FetchRecords(ctx context.Context, patientID, date string) ([]diary.DailyRecord, error) {
	var query map[string]string
	if date != "" {
		query = map[string]string{"date": date}
	}

	var out []diary.DailyRecord
	err := c.do(ctx, fiber.MethodGet, patientPath(patientID)+"/records", query, nil, &out, "Falha ao carregar registros.")
	if apiErr, ok := err.(*APIError); ok && apiErr.Status == fiber.StatusNotFound {
		return []diary.DailyRecord{}, nil
	}
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []diary.DailyRecord{}
	}
	return out, nil
}

// CreateRecord normalizes the odontogram, triggers and photo before sending.
func (c *Client) CreateRecord(ctx context.Context, patientID string, in NewRecord) (*diary.DailyRecord, error) {
	in.Triggers = diary.NormalizeTriggers(in.Triggers)
	in.Odontogram = diary.NormalizeOdontogram(in.Odontogram)

	var out diary.DailyRecord
	err := c.do(ctx, fiber.MethodPost, patientPath(patientID)+"/records", nil, in, &out, "Falha ao salvar registro")
	if apiErr, ok := err.(*APIError); ok && apiErr.Status == fiber.StatusRequestEntityTooLarge {
		apiErr.Message = "Foto muito grande para envio. Tente outra foto."
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// RemoveTooth deletes one tooth from the odontogram of every record of the
// patient on date.
func (c *Client) RemoveTooth(ctx context.Context, patientID, date string, toothNumber int) (*record.ToothRemoval, error) {
	path := fmt.Sprintf("%s/records/%s/odontogram/%s",
		patientPath(patientID), url.PathEscape(strings.TrimSpace(date)), strconv.Itoa(toothNumber))

	var out record.ToothRemoval
	if err := c.do(ctx, fiber.MethodDelete, path, nil, nil, &out, "Não foi possível excluir o dente do odontograma."); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Report(ctx context.Context, patientID, date string) (*report.Report, error) {
	var query map[string]string
	if date != "" {
		query = map[string]string{"date": date}
	}

	var out report.Report
	if err := c.do(ctx, fiber.MethodGet, "/reports/"+url.PathEscape(patientID), query, nil, &out, "Falha ao gerar relatório."); err != nil {
		return nil, err
	}
	return &out, nil
}

// do sends one request. A non-2xx response becomes *APIError using the
// server's message when it sent one, else fallback.
func (c *Client) do(ctx context.Context, method, path string, query map[string]string, body, out any, fallback string) error {
	req := c.cc.R().SetContext(ctx)
	for k, v := range query {
		req.SetParam(k, v)
	}
	if body != nil {
		req.SetJSON(body)
	}

	var (
		resp *fiberclient.Response
		err  error
	)
	switch method {
	case fiber.MethodPost:
		resp, err = req.Post(path)
	case fiber.MethodDelete:
		resp, err = req.Delete(path)
	default:
		resp, err = req.Get(path)
	}
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Close()

	status := resp.StatusCode()
	if status < 200 || status >= 300 {
		apiErr := &APIError{Status: status, Message: fallback}
		var envelope struct {
			Message string `json:"message"`
			Code    string `json:"code"`
		}
		if json.Unmarshal(resp.Body(), &envelope) == nil {
			if envelope.Message != "" {
				apiErr.Message = envelope.Message
			}
			apiErr.Code = envelope.Code
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}
