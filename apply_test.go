package setfield

import (
	"net"
	"testing"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/ofpkit/setfield/oxm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMAC(t *testing.T, s string) net.HardwareAddr {
	hw, err := net.ParseMAC(s)
	require.NoError(t, err)
	return hw
}

func tcpPacket(t *testing.T) gopacket.Packet {
	eth := &layers.Ethernet{
		SrcMAC:       mustMAC(t, "02:00:00:00:00:01"),
		DstMAC:       mustMAC(t, "02:00:00:00:00:02"),
		EthernetType: layers.EthernetTypeIPv4,
	}
	ip := &layers.IPv4{
		Version:  4,
		IHL:      5,
		TTL:      64,
		TOS:      0x03, // ecn bits set, dscp clear
		Protocol: layers.IPProtocolTCP,
		SrcIP:    net.IP{10, 0, 0, 1},
		DstIP:    net.IP{10, 0, 0, 2},
	}
	tcp := &layers.TCP{SrcPort: 1234, DstPort: 80, DataOffset: 5}

	buf := gopacket.NewSerializeBuffer()
	err := gopacket.SerializeLayers(buf, gopacket.SerializeOptions{FixLengths: true},
		eth, ip, tcp, gopacket.Payload("hi"))
	require.NoError(t, err)
	return gopacket.NewPacket(buf.Bytes(), layers.LayerTypeEthernet, gopacket.Default)
}

func mustParse(t *testing.T, text string) SetFieldAction {
	act, err := Parse(oxm.Basic(), text)
	require.NoError(t, err)
	return act
}

func TestApplyTcpPacket(t *testing.T) {
	pkt := tcpPacket(t)

	require.NoError(t, Apply(mustParse(t, "02:00:00:00:00:09->dl_src"), pkt))
	require.NoError(t, Apply(mustParse(t, "10.9.9.9->nw_src"), pkt))
	require.NoError(t, Apply(mustParse(t, "0x20->ip_dscp"), pkt))
	require.NoError(t, Apply(mustParse(t, "8080->tcp_dst"), pkt))

	eth := pkt.Layer(layers.LayerTypeEthernet).(*layers.Ethernet)
	assert.Equal(t, mustMAC(t, "02:00:00:00:00:09"), eth.SrcMAC)

	ip := pkt.Layer(layers.LayerTypeIPv4).(*layers.IPv4)
	assert.Equal(t, net.IP{10, 9, 9, 9}, ip.SrcIP)
	// dscp lands in the high six bits, ecn bits survive
	assert.Equal(t, uint8(0x20<<2|0x03), ip.TOS)

	tcp := pkt.Layer(layers.LayerTypeTCP).(*layers.TCP)
	assert.Equal(t, layers.TCPPort(8080), tcp.DstPort)
}

func TestApplyArpPacket(t *testing.T) {
	eth := &layers.Ethernet{
		SrcMAC:       mustMAC(t, "02:00:00:00:00:01"),
		DstMAC:       mustMAC(t, "ff:ff:ff:ff:ff:ff"),
		EthernetType: layers.EthernetTypeARP,
	}
	arp := &layers.ARP{
		AddrType:          layers.LinkTypeEthernet,
		Protocol:          layers.EthernetTypeIPv4,
		HwAddressSize:     6,
		ProtAddressSize:   4,
		Operation:         layers.ARPRequest,
		SourceHwAddress:   mustMAC(t, "02:00:00:00:00:01"),
		SourceProtAddress: []byte{10, 0, 0, 1},
		DstHwAddress:      make([]byte, 6),
		DstProtAddress:    []byte{10, 0, 0, 2},
	}
	buf := gopacket.NewSerializeBuffer()
	err := gopacket.SerializeLayers(buf, gopacket.SerializeOptions{FixLengths: true}, eth, arp)
	require.NoError(t, err)
	pkt := gopacket.NewPacket(buf.Bytes(), layers.LayerTypeEthernet, gopacket.Default)

	require.NoError(t, Apply(mustParse(t, "2->arp_op"), pkt))
	require.NoError(t, Apply(mustParse(t, "10.0.0.9->arp_tpa"), pkt))

	got := pkt.Layer(layers.LayerTypeARP).(*layers.ARP)
	assert.Equal(t, uint16(layers.ARPReply), got.Operation)
	assert.Equal(t, []byte{10, 0, 0, 9}, got.DstProtAddress)
}

func TestApplyMissingLayer(t *testing.T) {
	pkt := tcpPacket(t)
	assert.Error(t, Apply(mustParse(t, "0x1f->mpls_label"), pkt))
	assert.Error(t, Apply(mustParse(t, "5->vlan_pcp"), pkt))
}
