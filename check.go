package setfield

import (
	"github.com/pkg/errors"
)

// Check validates the action against the allow-list and the field's
// value constraints. Pure; first failure wins.
//
// Prerequisite checks (an MPLS set needs a preceding MPLS push, and
// so on) need visibility into the rest of the action list and are not
// done here.
func (self SetFieldAction) Check() error {
	if !Allowed(self.Field) {
		if self.Field != nil {
			return errors.Wrap(ErrDisallowedField, self.Field.Name)
		}
		return errors.WithStack(ErrDisallowedField)
	}
	if !self.Field.ValueOk(self.Value) {
		return errors.Wrapf(ErrInvalidValue, "%s for %s",
			self.Field.FormatValue(self.Value), self.Field.Name)
	}
	return nil
}
