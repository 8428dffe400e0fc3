package setfield

import (
	"testing"

	"github.com/ofpkit/setfield/oxm"
	"github.com/stretchr/testify/assert"
)

func TestAllowed(t *testing.T) {
	basic := oxm.Basic()

	for _, name := range []string{
		"dl_src", "dl_dst", "dl_type",
		"vlan_vid", "vlan_pcp",
		"ip_dscp", "ip_ecn", "nw_proto",
		"nw_src", "nw_dst",
		"tcp_src", "tcp_dst", "udp_src", "udp_dst",
		"icmp_type", "icmp_code",
		"arp_op", "arp_spa", "arp_tpa", "arp_sha", "arp_tha",
		"ipv6_src", "ipv6_dst", "ipv6_label",
		"icmpv6_type", "icmpv6_code",
		"nd_target", "nd_sll", "nd_tll",
		"mpls_label", "mpls_tc",
	} {
		assert.True(t, Allowed(basic.FieldByName(name)), name)
	}

	// generically writable is not enough
	for _, name := range []string{
		"in_port", "metadata", "tun_id",
		"sctp_src", "sctp_dst",
		"mpls_bos", "pbb_isid", "ipv6_exthdr",
		"vlan_tci", "vlan_tpid",
		"nw_ttl", "nw_frag",
		"reg0", "reg1", "reg2", "reg3",
	} {
		f := basic.FieldByName(name)
		assert.True(t, f.Writable, name)
		assert.False(t, Allowed(f), name)
	}

	// not writable at all
	assert.False(t, Allowed(basic.FieldByName("in_phy_port")))

	assert.False(t, Allowed(nil))
}
