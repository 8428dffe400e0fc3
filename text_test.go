package setfield

import (
	"testing"

	"github.com/ofpkit/setfield/oxm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// One sample per allow-listed field, spelled the way the formatter
// spells it so parse(format(x)) is byte-identical.
var textSamples = []string{
	"00:11:22:33:44:55->dl_src",
	"ff:ff:ff:ff:ff:ff->dl_dst",
	"0x0800->dl_type",
	"0x1005->vlan_vid",
	"5->vlan_pcp",
	"0x20->ip_dscp",
	"0x1->ip_ecn",
	"6->nw_proto",
	"10.0.0.1->nw_src",
	"192.168.0.254->nw_dst",
	"80->tcp_src",
	"8080->tcp_dst",
	"53->udp_src",
	"4789->udp_dst",
	"8->icmp_type",
	"0->icmp_code",
	"2->arp_op",
	"10.1.1.1->arp_spa",
	"10.1.1.2->arp_tpa",
	"02:00:00:00:00:01->arp_sha",
	"02:00:00:00:00:02->arp_tha",
	"2001:db8::1->ipv6_src",
	"2001:db8::2->ipv6_dst",
	"0x12345->ipv6_label",
	"135->icmpv6_type",
	"0->icmpv6_code",
	"fe80::1->nd_target",
	"02:00:00:00:00:03->nd_sll",
	"02:00:00:00:00:04->nd_tll",
	"0x1f->mpls_label",
	"3->mpls_tc",
}

func TestTextRoundTrip(t *testing.T) {
	for _, text := range textSamples {
		act, err := Parse(oxm.Basic(), text)
		require.NoError(t, err, text)
		assert.Equal(t, "set_field:"+text, act.String(), text)
	}
}

func TestParseAlias(t *testing.T) {
	act, err := Parse(oxm.Basic(), "10.0.0.1->ipv4_src")
	require.NoError(t, err)
	// canonical name wins on the way out
	assert.Equal(t, "set_field:10.0.0.1->nw_src", act.String())
}

func TestParseErrors(t *testing.T) {
	for _, tc := range []struct {
		text string
		want error
	}{
		{"1.2.3.4", ErrSyntax},
		{"1.2.3.4->", ErrSyntax},
		{"1.2.3.4->nx_nonexistent", ErrUnknownFieldName},
		{"999.999.999.999->nw_src", ErrInvalidValueSyntax},
		{"10.0.0.1->nw_src->again", ErrUnknownFieldName},
		{"junk->nw_src", ErrInvalidValueSyntax},
		{"0x2000->vlan_vid", ErrInvalidValue},
		{"9->vlan_pcp", ErrInvalidValue},
		{"0x40->ip_dscp", ErrInvalidValue},
		{"0x100000->mpls_label", ErrInvalidValue},
		// allow-list gate fires before the value is even parsed
		{"junk->in_port", ErrDisallowedField},
		{"junk->tun_id", ErrDisallowedField},
		{"junk->sctp_src", ErrDisallowedField},
		{"junk->vlan_tci", ErrDisallowedField},
		{"junk->reg0", ErrDisallowedField},
		{"junk->nw_ttl", ErrDisallowedField},
	} {
		_, err := Parse(oxm.Basic(), tc.text)
		assert.ErrorIs(t, err, tc.want, tc.text)
	}
}
