package setfield

import (
	"strings"

	"github.com/pkg/errors"
)

const textDelim = "->"

// Parse reads the "<value>-><field>" form used by flow configuration
// tools. The "set_field:" prefix is the caller's concern. Errors are
// returned, never fatal; first failure wins.
func Parse(reg Registry, text string) (SetFieldAction, error) {
	var ret SetFieldAction
	delim := strings.Index(text, textDelim)
	if delim < 0 {
		return ret, errors.Wrapf(ErrSyntax, "%s: missing `->'", text)
	}
	name := text[delim+len(textDelim):]
	if len(name) == 0 {
		return ret, errors.Wrapf(ErrSyntax, "%s: missing field name following `->'", text)
	}
	field := reg.FieldByName(name)
	if field == nil {
		return ret, errors.Wrap(ErrUnknownFieldName, name)
	}
	if !Allowed(field) {
		return ret, errors.Wrap(ErrDisallowedField, name)
	}
	value, err := field.ParseValue(text[:delim])
	if err != nil {
		return ret, errors.Wrap(ErrInvalidValueSyntax, err.Error())
	}
	ret = SetFieldAction{Field: field, Value: value}
	if !field.ValueOk(value) {
		return SetFieldAction{}, errors.Wrapf(ErrInvalidValue, "%s is not valid for field %s",
			text[:delim], name)
	}
	return ret, nil
}

func (self SetFieldAction) String() string {
	return "set_field:" + self.Field.FormatValue(self.Value) + textDelim + self.Field.Name
}
