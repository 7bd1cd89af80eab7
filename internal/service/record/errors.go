package record

import "errors"

var (
	ErrPatientNotFound    = errors.New("patient not found")
	ErrRecordNotFound     = errors.New("no daily record for that date")
	ErrToothNotFound      = errors.New("tooth not found in the daily records")
	ErrInvalidDate        = errors.New("date must be YYYY-MM-DD")
	ErrInvalidToothNumber = errors.New("tooth number must be an integer between 1 and 32")
)
