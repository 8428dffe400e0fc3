// Package setfield implements the openflow OFPAT_SET_FIELD action:
// the wire codec, the target allow-list, and the text form used by
// flow configuration tools.
package setfield

import (
	"encoding/binary"

	"github.com/ofpkit/setfield/oxm"
	"github.com/pkg/errors"
)

const OFPAT_SET_FIELD = 25

// fixed part of ofp_action_set_field: type, len, oxm header
const fixedLen = 8

func align8(num int) int {
	return (num + 7) / 8 * 8
}

// Registry resolves field descriptors. *oxm.Table satisfies it.
type Registry interface {
	FieldByHeader(oxm.Header) *oxm.Field
	FieldByName(string) *oxm.Field
}

// SetFieldAction overwrites one packet field with a fixed value. The
// target is always written at bit offset 0 for its full width; value
// is owned by the action and is exactly Field.NBytes long.
type SetFieldAction struct {
	Field *oxm.Field
	Value []byte
}

// New copies value into a fresh action. The result is not validated;
// run Check before trusting it.
func New(field *oxm.Field, value []byte) SetFieldAction {
	return SetFieldAction{
		Field: field,
		Value: append([]byte(nil), value...),
	}
}

func (self SetFieldAction) BitOffset() int {
	return 0
}

func (self SetFieldAction) BitCount() int {
	return self.Field.NBits
}

// MarshalBinary emits the 8-aligned wire record. The action must have
// passed Check; encoding does not re-validate.
func (self SetFieldAction) MarshalBinary() ([]byte, error) {
	length := fixedLen + self.Field.NBytes
	ret := make([]byte, align8(length))
	binary.BigEndian.PutUint16(ret[0:2], OFPAT_SET_FIELD)
	binary.BigEndian.PutUint16(ret[2:4], uint16(len(ret)))
	binary.BigEndian.PutUint32(ret[4:8], uint32(self.Field.Oxm))
	copy(ret[8:], self.Value)
	return ret, nil
}

// Unmarshal parses one wire record and validates the result. data
// must hold the whole record; trailing bytes beyond the declared
// length are ignored so that a record can be decoded in place inside
// an action list.
func Unmarshal(reg Registry, data []byte) (SetFieldAction, error) {
	var ret SetFieldAction
	if len(data) < fixedLen {
		return ret, errors.Wrapf(ErrBadLength, "%d bytes", len(data))
	}
	if atype := binary.BigEndian.Uint16(data[0:2]); atype != OFPAT_SET_FIELD {
		return ret, errors.Wrapf(ErrBadLength, "action type %d", atype)
	}
	length := int(binary.BigEndian.Uint16(data[2:4]))
	hdr := oxm.Header(binary.BigEndian.Uint32(data[4:8]))

	// the record is padded to 64 bits by zero
	if length != align8(fixedLen+hdr.Length()) {
		return ret, errors.Wrapf(ErrBadLength, "declared %d for oxm length %d", length, hdr.Length())
	}
	if length > len(data) {
		return ret, errors.Wrapf(ErrBadLength, "declared %d, have %d", length, len(data))
	}
	for i := fixedLen + hdr.Length(); i < length; i++ {
		if data[i] != 0 {
			return ret, errors.Wrapf(ErrBadPadding, "at offset %d", i)
		}
	}
	if hdr.HasMask() {
		return ret, errors.WithStack(ErrMasked)
	}
	field := reg.FieldByHeader(hdr)
	if field == nil || field.Oxm == 0 {
		return ret, errors.Wrapf(ErrUnknownField, "0x%08x", uint32(hdr))
	}
	if hdr.Length() != field.NBytes {
		return ret, errors.Wrapf(ErrBadLength, "oxm length %d, %s takes %d bytes",
			hdr.Length(), field.Name, field.NBytes)
	}
	ret = New(field, data[fixedLen:fixedLen+field.NBytes])
	if err := ret.Check(); err != nil {
		return SetFieldAction{}, err
	}
	return ret, nil
}
