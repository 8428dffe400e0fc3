package setfield

import (
	"github.com/ofpkit/setfield/oxm"
)

// The set of fields a set_field action may target. Narrower than
// generic writability: a field can be writable through other actions
// yet refused here. Fixed at build time.
var allowed [oxm.NFields]bool

func init() {
	for _, id := range []oxm.FieldId{
		oxm.FieldEthSrc,
		oxm.FieldEthDst,
		oxm.FieldEthType,
		oxm.FieldVlanVid,
		oxm.FieldVlanPcp,
		oxm.FieldIpDscp,
		oxm.FieldIpEcn,
		oxm.FieldIpProto,
		oxm.FieldIpv4Src,
		oxm.FieldIpv4Dst,
		oxm.FieldTcpSrc,
		oxm.FieldTcpDst,
		oxm.FieldUdpSrc,
		oxm.FieldUdpDst,
		// sctp_src/sctp_dst wait on SCTP support in the pipeline
		oxm.FieldIcmpv4Type,
		oxm.FieldIcmpv4Code,
		oxm.FieldArpOp,
		oxm.FieldArpSpa,
		oxm.FieldArpTpa,
		oxm.FieldArpSha,
		oxm.FieldArpTha,
		oxm.FieldIpv6Src,
		oxm.FieldIpv6Dst,
		oxm.FieldIpv6Flabel,
		oxm.FieldIcmpv6Type,
		oxm.FieldIcmpv6Code,
		oxm.FieldNdTarget,
		oxm.FieldNdSll,
		oxm.FieldNdTll,
		oxm.FieldMplsLabel,
		oxm.FieldMplsTc,
	} {
		allowed[id] = true
	}
}

// Allowed reports whether field may be the target of a set_field
// action. Requires the field to be writable and representable on the
// wire, and a member of the fixed allow set.
func Allowed(field *oxm.Field) bool {
	if field == nil || !field.Writable || field.Oxm == 0 {
		return false
	}
	return allowed[field.Id]
}
