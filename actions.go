package setfield

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// ActionList is a raw openflow action sequence: type, length and body
// per record, each length 8-aligned.
type ActionList []byte

// Iter splits the list into records. Stops at the first record whose
// length field cannot be trusted.
func (self ActionList) Iter() []ActionList {
	var seq []ActionList
	for cur := 0; cur+4 <= len(self); {
		alen := int(binary.BigEndian.Uint16(self[cur+2 : cur+4]))
		if alen < fixedLen || cur+alen > len(self) {
			break
		}
		seq = append(seq, self[cur:cur+alen])
		cur += alen
	}
	return seq
}

// AppendTo encodes the action at the end of buf, ofpbuf style.
func (self SetFieldAction) AppendTo(buf []byte) []byte {
	data, _ := self.MarshalBinary()
	return append(buf, data...)
}

// UnmarshalAll decodes every set_field record in the list, skipping
// actions of other types. A record that fails to decode aborts the
// whole list.
func UnmarshalAll(reg Registry, list ActionList) ([]SetFieldAction, error) {
	var ret []SetFieldAction
	records := list.Iter()
	var seen int
	for _, rec := range records {
		seen += len(rec)
		if binary.BigEndian.Uint16(rec[0:2]) != OFPAT_SET_FIELD {
			continue
		}
		act, err := Unmarshal(reg, rec)
		if err != nil {
			return nil, err
		}
		ret = append(ret, act)
	}
	if seen != len(list) {
		return nil, errors.Wrapf(ErrBadLength, "trailing %d bytes", len(list)-seen)
	}
	return ret, nil
}
