package diary

import "bytes"

// TriState is an intake answer that may be left unanswered. The zero value
// is Unanswered and is encoded as JSON null.
type TriState uint8

const (
	Unanswered TriState = iota
	Yes
	No
)

func (t TriState) Answered() bool {
	return t == Yes || t == No
}

func (t TriState) String() string {
	switch t {
	case Yes:
		return "yes"
	case No:
		return "no"
	default:
		return "unanswered"
	}
}

func (t TriState) MarshalJSON() ([]byte, error) {
	switch t {
	case Yes:
		return []byte("true"), nil
	case No:
		return []byte("false"), nil
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON maps true/false to Yes/No. Any other JSON value, including
// null, is read as Unanswered.
func (t *TriState) UnmarshalJSON(data []byte) error {
	switch string(bytes.TrimSpace(data)) {
	case "true":
		*t = Yes
	case "false":
		*t = No
	default:
		*t = Unanswered
	}
	return nil
}
