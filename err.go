package setfield

import (
	"github.com/pkg/errors"
)

// Every failure is a rejection of malformed or policy-violating
// input, never a transient condition. Callers match with errors.Is;
// the wrapped message carries the detail.
var (
	ErrDisallowedField    = errors.New("field is not allowed as a set_field target")
	ErrInvalidValue       = errors.New("value is not valid for the field")
	ErrInvalidValueSyntax = errors.New("value text does not parse")
	ErrBadLength          = errors.New("action length disagrees with its contents")
	ErrBadPadding         = errors.New("nonzero byte in action padding")
	ErrMasked             = errors.New("masked set_field is not supported")
	ErrUnknownField       = errors.New("unknown oxm header")
	ErrUnknownFieldName   = errors.New("unknown field name")
	ErrSyntax             = errors.New("set_field syntax error")
)
