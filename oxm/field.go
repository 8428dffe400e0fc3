package oxm

// FieldId identifies a field independently of its wire header. Fields
// that have no openflow basic representation (Oxm == 0) still get an
// id so that policy tables can refer to them.
type FieldId int

const (
	FieldInPort FieldId = iota
	FieldInPhyPort
	FieldMetadata
	FieldEthDst
	FieldEthSrc
	FieldEthType
	FieldVlanVid
	FieldVlanPcp
	FieldIpDscp
	FieldIpEcn
	FieldIpProto
	FieldIpv4Src
	FieldIpv4Dst
	FieldTcpSrc
	FieldTcpDst
	FieldUdpSrc
	FieldUdpDst
	FieldSctpSrc
	FieldSctpDst
	FieldIcmpv4Type
	FieldIcmpv4Code
	FieldArpOp
	FieldArpSpa
	FieldArpTpa
	FieldArpSha
	FieldArpTha
	FieldIpv6Src
	FieldIpv6Dst
	FieldIpv6Flabel
	FieldIcmpv6Type
	FieldIcmpv6Code
	FieldNdTarget
	FieldNdSll
	FieldNdTll
	FieldMplsLabel
	FieldMplsTc
	FieldMplsBos
	FieldPbbIsid
	FieldTunnelId
	FieldIpv6Exthdr
	FieldVlanTci
	FieldVlanTpid
	FieldNwTtl
	FieldNwFrag
	FieldReg0
	FieldReg1
	FieldReg2
	FieldReg3
	NFields
)

type form int

const (
	formDec form = iota
	formHex
	formMac
	formIPv4
	formIPv6
)

// Field describes one matchable/settable packet or pipeline field.
// Name is the classic ovs-ofctl spelling where one exists; Alias holds
// the OXM spelling. Oxm is zero when the field cannot appear on the
// wire in the basic class.
type Field struct {
	Id       FieldId
	Name     string
	Alias    string
	NBits    int
	NBytes   int
	Writable bool
	Oxm      Header
	form     form
}

var fields = []Field{
	{FieldInPort, "in_port", "", 32, 4, true, OXM_OF_IN_PORT, formDec},
	{FieldInPhyPort, "in_phy_port", "", 32, 4, false, OXM_OF_IN_PHY_PORT, formDec},
	{FieldMetadata, "metadata", "", 64, 8, true, OXM_OF_METADATA, formHex},
	{FieldEthDst, "dl_dst", "eth_dst", 48, 6, true, OXM_OF_ETH_DST, formMac},
	{FieldEthSrc, "dl_src", "eth_src", 48, 6, true, OXM_OF_ETH_SRC, formMac},
	{FieldEthType, "dl_type", "eth_type", 16, 2, true, OXM_OF_ETH_TYPE, formHex},
	{FieldVlanVid, "vlan_vid", "", 13, 2, true, OXM_OF_VLAN_VID, formHex},
	{FieldVlanPcp, "vlan_pcp", "dl_vlan_pcp", 3, 1, true, OXM_OF_VLAN_PCP, formDec},
	{FieldIpDscp, "ip_dscp", "", 6, 1, true, OXM_OF_IP_DSCP, formHex},
	{FieldIpEcn, "ip_ecn", "nw_ecn", 2, 1, true, OXM_OF_IP_ECN, formHex},
	{FieldIpProto, "nw_proto", "ip_proto", 8, 1, true, OXM_OF_IP_PROTO, formDec},
	{FieldIpv4Src, "nw_src", "ipv4_src", 32, 4, true, OXM_OF_IPV4_SRC, formIPv4},
	{FieldIpv4Dst, "nw_dst", "ipv4_dst", 32, 4, true, OXM_OF_IPV4_DST, formIPv4},
	{FieldTcpSrc, "tcp_src", "tp_src", 16, 2, true, OXM_OF_TCP_SRC, formDec},
	{FieldTcpDst, "tcp_dst", "tp_dst", 16, 2, true, OXM_OF_TCP_DST, formDec},
	{FieldUdpSrc, "udp_src", "", 16, 2, true, OXM_OF_UDP_SRC, formDec},
	{FieldUdpDst, "udp_dst", "", 16, 2, true, OXM_OF_UDP_DST, formDec},
	{FieldSctpSrc, "sctp_src", "", 16, 2, true, OXM_OF_SCTP_SRC, formDec},
	{FieldSctpDst, "sctp_dst", "", 16, 2, true, OXM_OF_SCTP_DST, formDec},
	{FieldIcmpv4Type, "icmp_type", "icmpv4_type", 8, 1, true, OXM_OF_ICMPV4_TYPE, formDec},
	{FieldIcmpv4Code, "icmp_code", "icmpv4_code", 8, 1, true, OXM_OF_ICMPV4_CODE, formDec},
	{FieldArpOp, "arp_op", "", 16, 2, true, OXM_OF_ARP_OP, formDec},
	{FieldArpSpa, "arp_spa", "", 32, 4, true, OXM_OF_ARP_SPA, formIPv4},
	{FieldArpTpa, "arp_tpa", "", 32, 4, true, OXM_OF_ARP_TPA, formIPv4},
	{FieldArpSha, "arp_sha", "", 48, 6, true, OXM_OF_ARP_SHA, formMac},
	{FieldArpTha, "arp_tha", "", 48, 6, true, OXM_OF_ARP_THA, formMac},
	{FieldIpv6Src, "ipv6_src", "", 128, 16, true, OXM_OF_IPV6_SRC, formIPv6},
	{FieldIpv6Dst, "ipv6_dst", "", 128, 16, true, OXM_OF_IPV6_DST, formIPv6},
	{FieldIpv6Flabel, "ipv6_label", "ipv6_flabel", 20, 4, true, OXM_OF_IPV6_FLABEL, formHex},
	{FieldIcmpv6Type, "icmpv6_type", "", 8, 1, true, OXM_OF_ICMPV6_TYPE, formDec},
	{FieldIcmpv6Code, "icmpv6_code", "", 8, 1, true, OXM_OF_ICMPV6_CODE, formDec},
	{FieldNdTarget, "nd_target", "ipv6_nd_target", 128, 16, true, OXM_OF_IPV6_ND_TARGET, formIPv6},
	{FieldNdSll, "nd_sll", "ipv6_nd_sll", 48, 6, true, OXM_OF_IPV6_ND_SLL, formMac},
	{FieldNdTll, "nd_tll", "ipv6_nd_tll", 48, 6, true, OXM_OF_IPV6_ND_TLL, formMac},
	{FieldMplsLabel, "mpls_label", "", 20, 4, true, OXM_OF_MPLS_LABEL, formHex},
	{FieldMplsTc, "mpls_tc", "", 3, 1, true, OXM_OF_MPLS_TC, formDec},
	{FieldMplsBos, "mpls_bos", "", 1, 1, true, OXM_OF_MPLS_BOS, formDec},
	{FieldPbbIsid, "pbb_isid", "", 24, 3, true, OXM_OF_PBB_ISID, formHex},
	{FieldTunnelId, "tun_id", "tunnel_id", 64, 8, true, OXM_OF_TUNNEL_ID, formHex},
	{FieldIpv6Exthdr, "ipv6_exthdr", "", 9, 2, true, OXM_OF_IPV6_EXTHDR, formHex},
	{FieldVlanTci, "vlan_tci", "", 16, 2, true, 0, formHex},
	{FieldVlanTpid, "vlan_tpid", "", 16, 2, true, 0, formHex},
	{FieldNwTtl, "nw_ttl", "", 8, 1, true, 0, formDec},
	{FieldNwFrag, "nw_frag", "", 2, 1, true, 0, formHex},
	{FieldReg0, "reg0", "", 32, 4, true, 0, formHex},
	{FieldReg1, "reg1", "", 32, 4, true, 0, formHex},
	{FieldReg2, "reg2", "", 32, 4, true, 0, formHex},
	{FieldReg3, "reg3", "", 32, 4, true, 0, formHex},
}

// Table is a read-only field catalog. It is safe for concurrent use.
type Table struct {
	byType map[uint32]*Field
	byName map[string]*Field
}

func newTable(fields []Field) *Table {
	self := &Table{
		byType: make(map[uint32]*Field),
		byName: make(map[string]*Field),
	}
	for i := range fields {
		f := &fields[i]
		if f.Oxm != 0 {
			self.byType[f.Oxm.Type()] = f
		}
		self.byName[f.Name] = f
		if len(f.Alias) > 0 {
			self.byName[f.Alias] = f
		}
	}
	return self
}

var basic = newTable(fields)

// Basic returns the catalog for the openflow basic class.
func Basic() *Table {
	return basic
}

// FieldByHeader resolves a wire header, ignoring its hasmask and
// length bits. Returns nil when no field carries that header.
func (self *Table) FieldByHeader(hdr Header) *Field {
	return self.byType[hdr.Type()]
}

// FieldByName resolves a display name or its OXM alias.
func (self *Table) FieldByName(name string) *Field {
	return self.byName[name]
}
