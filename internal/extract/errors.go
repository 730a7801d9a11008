package extract

import "errors"

// Sentinel kinds for extraction errors. These allow errors.Is from callers:
// ErrMissingField marks format errors (a required column or field name is
// absent from the source), ErrBadValue marks value errors (a field's raw
// value cannot convert to its typed form).
var (
	ErrMissingField = errors.New("required field missing from source")
	ErrBadValue     = errors.New("bad field value")
)
