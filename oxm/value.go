package oxm

import (
	"fmt"
	"net"
	"strconv"
)

func uintValue(value []byte) uint64 {
	var v uint64
	for _, b := range value {
		v = v<<8 | uint64(b)
	}
	return v
}

func putUint(buf []byte, v uint64) {
	for i := len(buf) - 1; i >= 0; i-- {
		buf[i] = uint8(v)
		v >>= 8
	}
}

// ValueOk reports whether value is a legal payload for the field. The
// buffer must be exactly NBytes long; fields narrower than their
// storage additionally reject values with bits outside the field.
func (self *Field) ValueOk(value []byte) bool {
	if len(value) != self.NBytes {
		return false
	}
	switch self.Id {
	case FieldVlanVid:
		// 12 vid bits plus OFPVID_PRESENT
		return uintValue(value)&^0x1fff == 0
	case FieldVlanPcp, FieldMplsTc:
		return value[0]&^0x07 == 0
	case FieldIpDscp:
		return value[0]&^0x3f == 0
	case FieldIpEcn, FieldNwFrag:
		return value[0]&^0x03 == 0
	case FieldIpv6Flabel, FieldMplsLabel:
		return uintValue(value)&^0xfffff == 0
	case FieldMplsBos:
		return value[0]&^0x01 == 0
	case FieldIpv6Exthdr:
		return uintValue(value)&^0x1ff == 0
	}
	return true
}

// ParseValue converts the text form of a value into NBytes of wire
// payload. Bit-level limits narrower than the storage width are not
// enforced here, that is ValueOk's job.
func (self *Field) ParseValue(text string) ([]byte, error) {
	buf := make([]byte, self.NBytes)
	switch self.form {
	case formMac:
		hw, err := net.ParseMAC(text)
		if err != nil {
			return nil, err
		}
		if len(hw) != self.NBytes {
			return nil, fmt.Errorf("%s: bad address length for %s", text, self.Name)
		}
		copy(buf, hw)
	case formIPv4:
		ip := net.ParseIP(text)
		if ip == nil || ip.To4() == nil {
			return nil, fmt.Errorf("%s: bad IPv4 address", text)
		}
		copy(buf, ip.To4())
	case formIPv6:
		ip := net.ParseIP(text)
		if ip == nil {
			return nil, fmt.Errorf("%s: bad IPv6 address", text)
		}
		copy(buf, ip.To16())
	default:
		v, err := strconv.ParseUint(text, 0, self.NBytes*8)
		if err != nil {
			return nil, fmt.Errorf("%s: bad value for %s", text, self.Name)
		}
		putUint(buf, v)
	}
	return buf, nil
}

// FormatValue renders NBytes of wire payload in the spelling that
// ParseValue accepts back.
func (self *Field) FormatValue(value []byte) string {
	switch self.form {
	case formMac:
		return net.HardwareAddr(value).String()
	case formIPv4, formIPv6:
		return net.IP(value).String()
	case formHex:
		if self.Id == FieldEthType {
			return fmt.Sprintf("0x%04x", uintValue(value))
		}
		return fmt.Sprintf("0x%x", uintValue(value))
	}
	return fmt.Sprintf("%d", uintValue(value))
}
