package report

import "errors"

var (
	ErrPatientNotFound = errors.New("patient not found")
	ErrInvalidDate     = errors.New("date must be YYYY-MM-DD")
)
