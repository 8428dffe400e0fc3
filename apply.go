package setfield

import (
	"encoding/binary"
	"net"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/ofpkit/setfield/oxm"
	"github.com/pkg/errors"
)

// Apply executes the action against a decoded packet by mutating its
// layers in place. The caller re-serializes when it needs bytes back.
// The action must have passed Check. Fails when the packet has no
// layer carrying the target field.
func Apply(act SetFieldAction, pkt gopacket.Packet) error {
	value := append([]byte(nil), act.Value...)
	switch act.Field.Id {
	case oxm.FieldEthDst:
		for _, layer := range pkt.Layers() {
			if t, ok := layer.(*layers.Ethernet); ok {
				t.DstMAC = net.HardwareAddr(value)
				return nil
			}
		}
	case oxm.FieldEthSrc:
		for _, layer := range pkt.Layers() {
			if t, ok := layer.(*layers.Ethernet); ok {
				t.SrcMAC = net.HardwareAddr(value)
				return nil
			}
		}
	case oxm.FieldEthType:
		// the ethertype seen by the payload: innermost of the
		// ethernet header and any vlan tags
		var last gopacket.Layer
		for _, layer := range pkt.Layers() {
			switch t := layer.(type) {
			case *layers.Ethernet:
				last = t
			case *layers.Dot1Q:
				last = t
			}
		}
		if t, ok := last.(*layers.Ethernet); ok {
			t.EthernetType = layers.EthernetType(binary.BigEndian.Uint16(value))
			return nil
		}
		if t, ok := last.(*layers.Dot1Q); ok {
			t.Type = layers.EthernetType(binary.BigEndian.Uint16(value))
			return nil
		}
	case oxm.FieldVlanVid:
		for _, layer := range pkt.Layers() {
			if t, ok := layer.(*layers.Dot1Q); ok {
				t.VLANIdentifier = binary.BigEndian.Uint16(value) & 0x0fff
				return nil
			}
		}
	case oxm.FieldVlanPcp:
		for _, layer := range pkt.Layers() {
			if t, ok := layer.(*layers.Dot1Q); ok {
				t.Priority = value[0]
				return nil
			}
		}
	case oxm.FieldIpDscp:
		for _, layer := range pkt.Layers() {
			if t, ok := layer.(*layers.IPv4); ok {
				t.TOS = t.TOS&0x03 | value[0]<<2
				return nil
			}
			if t, ok := layer.(*layers.IPv6); ok {
				t.TrafficClass = t.TrafficClass&0x03 | value[0]<<2
				return nil
			}
		}
	case oxm.FieldIpEcn:
		for _, layer := range pkt.Layers() {
			if t, ok := layer.(*layers.IPv4); ok {
				t.TOS = t.TOS&0xfc | value[0]&0x03
				return nil
			}
			if t, ok := layer.(*layers.IPv6); ok {
				t.TrafficClass = t.TrafficClass&0xfc | value[0]&0x03
				return nil
			}
		}
	case oxm.FieldIpProto:
		for _, layer := range pkt.Layers() {
			if t, ok := layer.(*layers.IPv4); ok {
				t.Protocol = layers.IPProtocol(value[0])
				return nil
			}
			if t, ok := layer.(*layers.IPv6); ok {
				t.NextHeader = layers.IPProtocol(value[0])
				return nil
			}
		}
	case oxm.FieldIpv4Src:
		for _, layer := range pkt.Layers() {
			if t, ok := layer.(*layers.IPv4); ok {
				t.SrcIP = net.IP(value)
				return nil
			}
		}
	case oxm.FieldIpv4Dst:
		for _, layer := range pkt.Layers() {
			if t, ok := layer.(*layers.IPv4); ok {
				t.DstIP = net.IP(value)
				return nil
			}
		}
	case oxm.FieldTcpSrc:
		for _, layer := range pkt.Layers() {
			if t, ok := layer.(*layers.TCP); ok {
				t.SrcPort = layers.TCPPort(binary.BigEndian.Uint16(value))
				return nil
			}
		}
	case oxm.FieldTcpDst:
		for _, layer := range pkt.Layers() {
			if t, ok := layer.(*layers.TCP); ok {
				t.DstPort = layers.TCPPort(binary.BigEndian.Uint16(value))
				return nil
			}
		}
	case oxm.FieldUdpSrc:
		for _, layer := range pkt.Layers() {
			if t, ok := layer.(*layers.UDP); ok {
				t.SrcPort = layers.UDPPort(binary.BigEndian.Uint16(value))
				return nil
			}
		}
	case oxm.FieldUdpDst:
		for _, layer := range pkt.Layers() {
			if t, ok := layer.(*layers.UDP); ok {
				t.DstPort = layers.UDPPort(binary.BigEndian.Uint16(value))
				return nil
			}
		}
	case oxm.FieldIcmpv4Type:
		for _, layer := range pkt.Layers() {
			if t, ok := layer.(*layers.ICMPv4); ok {
				t.TypeCode = layers.ICMPv4TypeCode(uint16(t.TypeCode)&0x00ff | uint16(value[0])<<8)
				return nil
			}
		}
	case oxm.FieldIcmpv4Code:
		for _, layer := range pkt.Layers() {
			if t, ok := layer.(*layers.ICMPv4); ok {
				t.TypeCode = layers.ICMPv4TypeCode(uint16(t.TypeCode)&0xff00 | uint16(value[0]))
				return nil
			}
		}
	case oxm.FieldArpOp:
		for _, layer := range pkt.Layers() {
			if t, ok := layer.(*layers.ARP); ok {
				t.Operation = binary.BigEndian.Uint16(value)
				return nil
			}
		}
	case oxm.FieldArpSpa:
		for _, layer := range pkt.Layers() {
			if t, ok := layer.(*layers.ARP); ok {
				t.SourceProtAddress = value
				return nil
			}
		}
	case oxm.FieldArpTpa:
		for _, layer := range pkt.Layers() {
			if t, ok := layer.(*layers.ARP); ok {
				t.DstProtAddress = value
				return nil
			}
		}
	case oxm.FieldArpSha:
		for _, layer := range pkt.Layers() {
			if t, ok := layer.(*layers.ARP); ok {
				t.SourceHwAddress = value
				return nil
			}
		}
	case oxm.FieldArpTha:
		for _, layer := range pkt.Layers() {
			if t, ok := layer.(*layers.ARP); ok {
				t.DstHwAddress = value
				return nil
			}
		}
	case oxm.FieldIpv6Src:
		for _, layer := range pkt.Layers() {
			if t, ok := layer.(*layers.IPv6); ok {
				t.SrcIP = net.IP(value)
				return nil
			}
		}
	case oxm.FieldIpv6Dst:
		for _, layer := range pkt.Layers() {
			if t, ok := layer.(*layers.IPv6); ok {
				t.DstIP = net.IP(value)
				return nil
			}
		}
	case oxm.FieldIpv6Flabel:
		for _, layer := range pkt.Layers() {
			if t, ok := layer.(*layers.IPv6); ok {
				t.FlowLabel = binary.BigEndian.Uint32(value)
				return nil
			}
		}
	case oxm.FieldIcmpv6Type:
		for _, layer := range pkt.Layers() {
			if t, ok := layer.(*layers.ICMPv6); ok {
				t.TypeCode = layers.ICMPv6TypeCode(uint16(t.TypeCode)&0x00ff | uint16(value[0])<<8)
				return nil
			}
		}
	case oxm.FieldIcmpv6Code:
		for _, layer := range pkt.Layers() {
			if t, ok := layer.(*layers.ICMPv6); ok {
				t.TypeCode = layers.ICMPv6TypeCode(uint16(t.TypeCode)&0xff00 | uint16(value[0]))
				return nil
			}
		}
	case oxm.FieldNdTarget:
		for _, layer := range pkt.Layers() {
			if t, ok := layer.(*layers.ICMPv6NeighborSolicitation); ok {
				t.TargetAddress = net.IP(value)
				return nil
			}
			if t, ok := layer.(*layers.ICMPv6NeighborAdvertisement); ok {
				t.TargetAddress = net.IP(value)
				return nil
			}
		}
	case oxm.FieldNdSll:
		for _, layer := range pkt.Layers() {
			if t, ok := layer.(*layers.ICMPv6NeighborSolicitation); ok {
				return setNdOption(&t.Options, layers.ICMPv6OptSourceAddress, value)
			}
		}
	case oxm.FieldNdTll:
		for _, layer := range pkt.Layers() {
			if t, ok := layer.(*layers.ICMPv6NeighborAdvertisement); ok {
				return setNdOption(&t.Options, layers.ICMPv6OptTargetAddress, value)
			}
		}
	case oxm.FieldMplsLabel:
		for _, layer := range pkt.Layers() {
			if t, ok := layer.(*layers.MPLS); ok {
				t.Label = binary.BigEndian.Uint32(value)
				return nil
			}
		}
	case oxm.FieldMplsTc:
		for _, layer := range pkt.Layers() {
			if t, ok := layer.(*layers.MPLS); ok {
				t.TrafficClass = value[0]
				return nil
			}
		}
	default:
		return errors.Errorf("no setter for %s", act.Field.Name)
	}
	return errors.Errorf("no layer carries %s", act.Field.Name)
}

// setNdOption rewrites the link-layer address option in place, adding
// it when the message does not carry one (RFC 4861 4.6).
func setNdOption(opts *layers.ICMPv6Options, otype layers.ICMPv6Opt, value []byte) error {
	for i := range *opts {
		if (*opts)[i].Type == otype {
			(*opts)[i].Data = value
			return nil
		}
	}
	*opts = append(*opts, layers.ICMPv6Option{Type: otype, Data: value})
	return nil
}
