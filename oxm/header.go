package oxm

// Header is a 4-byte OXM TLV header:
// class:16, field:7, hasmask:1, length:8.
type Header uint32

func (self Header) Class() uint16 {
	return uint16(self >> 16)
}

func (self Header) Field() uint8 {
	return uint8(self >> 9 & 0x7f)
}

func (self Header) HasMask() bool {
	return self>>8&1 == 1
}

// Length is the payload length in bytes, value and mask included.
func (self Header) Length() int {
	return int(self & 0xff)
}

// Type returns the header with hasmask and length cleared, which
// identifies the field independently of the payload shape.
func (self Header) Type() uint32 {
	return uint32(self) &^ 0x1ff
}

func (self *Header) SetMask(mask bool) {
	if mask {
		*self |= 1 << 8
	} else {
		*self &^= 1 << 8
	}
}

func (self *Header) SetLength(length int) {
	*self = *self&^0xff | Header(length&0xff)
}

const OFPXMC_OPENFLOW_BASIC = 0x8000

const (
	OFPXMT_OFB_IN_PORT = iota
	OFPXMT_OFB_IN_PHY_PORT
	OFPXMT_OFB_METADATA
	OFPXMT_OFB_ETH_DST
	OFPXMT_OFB_ETH_SRC
	OFPXMT_OFB_ETH_TYPE
	OFPXMT_OFB_VLAN_VID
	OFPXMT_OFB_VLAN_PCP
	OFPXMT_OFB_IP_DSCP
	OFPXMT_OFB_IP_ECN
	OFPXMT_OFB_IP_PROTO
	OFPXMT_OFB_IPV4_SRC
	OFPXMT_OFB_IPV4_DST
	OFPXMT_OFB_TCP_SRC
	OFPXMT_OFB_TCP_DST
	OFPXMT_OFB_UDP_SRC
	OFPXMT_OFB_UDP_DST
	OFPXMT_OFB_SCTP_SRC
	OFPXMT_OFB_SCTP_DST
	OFPXMT_OFB_ICMPV4_TYPE
	OFPXMT_OFB_ICMPV4_CODE
	OFPXMT_OFB_ARP_OP
	OFPXMT_OFB_ARP_SPA
	OFPXMT_OFB_ARP_TPA
	OFPXMT_OFB_ARP_SHA
	OFPXMT_OFB_ARP_THA
	OFPXMT_OFB_IPV6_SRC
	OFPXMT_OFB_IPV6_DST
	OFPXMT_OFB_IPV6_FLABEL
	OFPXMT_OFB_ICMPV6_TYPE
	OFPXMT_OFB_ICMPV6_CODE
	OFPXMT_OFB_IPV6_ND_TARGET
	OFPXMT_OFB_IPV6_ND_SLL
	OFPXMT_OFB_IPV6_ND_TLL
	OFPXMT_OFB_MPLS_LABEL
	OFPXMT_OFB_MPLS_TC
	OFPXMT_OFB_MPLS_BOS
	OFPXMT_OFB_PBB_ISID
	OFPXMT_OFB_TUNNEL_ID
	OFPXMT_OFB_IPV6_EXTHDR
)

// Unmasked headers for the openflow basic class. The low byte is the
// value length in bytes.
const (
	OXM_OF_IN_PORT        Header = OFPXMC_OPENFLOW_BASIC<<16 | OFPXMT_OFB_IN_PORT<<9 | 4
	OXM_OF_IN_PHY_PORT    Header = OFPXMC_OPENFLOW_BASIC<<16 | OFPXMT_OFB_IN_PHY_PORT<<9 | 4
	OXM_OF_METADATA       Header = OFPXMC_OPENFLOW_BASIC<<16 | OFPXMT_OFB_METADATA<<9 | 8
	OXM_OF_ETH_DST        Header = OFPXMC_OPENFLOW_BASIC<<16 | OFPXMT_OFB_ETH_DST<<9 | 6
	OXM_OF_ETH_SRC        Header = OFPXMC_OPENFLOW_BASIC<<16 | OFPXMT_OFB_ETH_SRC<<9 | 6
	OXM_OF_ETH_TYPE       Header = OFPXMC_OPENFLOW_BASIC<<16 | OFPXMT_OFB_ETH_TYPE<<9 | 2
	OXM_OF_VLAN_VID       Header = OFPXMC_OPENFLOW_BASIC<<16 | OFPXMT_OFB_VLAN_VID<<9 | 2
	OXM_OF_VLAN_PCP       Header = OFPXMC_OPENFLOW_BASIC<<16 | OFPXMT_OFB_VLAN_PCP<<9 | 1
	OXM_OF_IP_DSCP        Header = OFPXMC_OPENFLOW_BASIC<<16 | OFPXMT_OFB_IP_DSCP<<9 | 1
	OXM_OF_IP_ECN         Header = OFPXMC_OPENFLOW_BASIC<<16 | OFPXMT_OFB_IP_ECN<<9 | 1
	OXM_OF_IP_PROTO       Header = OFPXMC_OPENFLOW_BASIC<<16 | OFPXMT_OFB_IP_PROTO<<9 | 1
	OXM_OF_IPV4_SRC       Header = OFPXMC_OPENFLOW_BASIC<<16 | OFPXMT_OFB_IPV4_SRC<<9 | 4
	OXM_OF_IPV4_DST       Header = OFPXMC_OPENFLOW_BASIC<<16 | OFPXMT_OFB_IPV4_DST<<9 | 4
	OXM_OF_TCP_SRC        Header = OFPXMC_OPENFLOW_BASIC<<16 | OFPXMT_OFB_TCP_SRC<<9 | 2
	OXM_OF_TCP_DST        Header = OFPXMC_OPENFLOW_BASIC<<16 | OFPXMT_OFB_TCP_DST<<9 | 2
	OXM_OF_UDP_SRC        Header = OFPXMC_OPENFLOW_BASIC<<16 | OFPXMT_OFB_UDP_SRC<<9 | 2
	OXM_OF_UDP_DST        Header = OFPXMC_OPENFLOW_BASIC<<16 | OFPXMT_OFB_UDP_DST<<9 | 2
	OXM_OF_SCTP_SRC       Header = OFPXMC_OPENFLOW_BASIC<<16 | OFPXMT_OFB_SCTP_SRC<<9 | 2
	OXM_OF_SCTP_DST       Header = OFPXMC_OPENFLOW_BASIC<<16 | OFPXMT_OFB_SCTP_DST<<9 | 2
	OXM_OF_ICMPV4_TYPE    Header = OFPXMC_OPENFLOW_BASIC<<16 | OFPXMT_OFB_ICMPV4_TYPE<<9 | 1
	OXM_OF_ICMPV4_CODE    Header = OFPXMC_OPENFLOW_BASIC<<16 | OFPXMT_OFB_ICMPV4_CODE<<9 | 1
	OXM_OF_ARP_OP         Header = OFPXMC_OPENFLOW_BASIC<<16 | OFPXMT_OFB_ARP_OP<<9 | 2
	OXM_OF_ARP_SPA        Header = OFPXMC_OPENFLOW_BASIC<<16 | OFPXMT_OFB_ARP_SPA<<9 | 4
	OXM_OF_ARP_TPA        Header = OFPXMC_OPENFLOW_BASIC<<16 | OFPXMT_OFB_ARP_TPA<<9 | 4
	OXM_OF_ARP_SHA        Header = OFPXMC_OPENFLOW_BASIC<<16 | OFPXMT_OFB_ARP_SHA<<9 | 6
	OXM_OF_ARP_THA        Header = OFPXMC_OPENFLOW_BASIC<<16 | OFPXMT_OFB_ARP_THA<<9 | 6
	OXM_OF_IPV6_SRC       Header = OFPXMC_OPENFLOW_BASIC<<16 | OFPXMT_OFB_IPV6_SRC<<9 | 16
	OXM_OF_IPV6_DST       Header = OFPXMC_OPENFLOW_BASIC<<16 | OFPXMT_OFB_IPV6_DST<<9 | 16
	OXM_OF_IPV6_FLABEL    Header = OFPXMC_OPENFLOW_BASIC<<16 | OFPXMT_OFB_IPV6_FLABEL<<9 | 4
	OXM_OF_ICMPV6_TYPE    Header = OFPXMC_OPENFLOW_BASIC<<16 | OFPXMT_OFB_ICMPV6_TYPE<<9 | 1
	OXM_OF_ICMPV6_CODE    Header = OFPXMC_OPENFLOW_BASIC<<16 | OFPXMT_OFB_ICMPV6_CODE<<9 | 1
	OXM_OF_IPV6_ND_TARGET Header = OFPXMC_OPENFLOW_BASIC<<16 | OFPXMT_OFB_IPV6_ND_TARGET<<9 | 16
	OXM_OF_IPV6_ND_SLL    Header = OFPXMC_OPENFLOW_BASIC<<16 | OFPXMT_OFB_IPV6_ND_SLL<<9 | 6
	OXM_OF_IPV6_ND_TLL    Header = OFPXMC_OPENFLOW_BASIC<<16 | OFPXMT_OFB_IPV6_ND_TLL<<9 | 6
	OXM_OF_MPLS_LABEL     Header = OFPXMC_OPENFLOW_BASIC<<16 | OFPXMT_OFB_MPLS_LABEL<<9 | 4
	OXM_OF_MPLS_TC        Header = OFPXMC_OPENFLOW_BASIC<<16 | OFPXMT_OFB_MPLS_TC<<9 | 1
	OXM_OF_MPLS_BOS       Header = OFPXMC_OPENFLOW_BASIC<<16 | OFPXMT_OFB_MPLS_BOS<<9 | 1
	OXM_OF_PBB_ISID       Header = OFPXMC_OPENFLOW_BASIC<<16 | OFPXMT_OFB_PBB_ISID<<9 | 3
	OXM_OF_TUNNEL_ID      Header = OFPXMC_OPENFLOW_BASIC<<16 | OFPXMT_OFB_TUNNEL_ID<<9 | 8
	OXM_OF_IPV6_EXTHDR    Header = OFPXMC_OPENFLOW_BASIC<<16 | OFPXMT_OFB_IPV6_EXTHDR<<9 | 2
)
