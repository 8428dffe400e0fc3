package oxm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	basic := Basic()

	f := basic.FieldByName("nw_src")
	require.NotNil(t, f)
	assert.Equal(t, FieldIpv4Src, f.Id)
	assert.Equal(t, 4, f.NBytes)
	assert.Equal(t, 32, f.NBits)
	assert.Equal(t, OXM_OF_IPV4_SRC, f.Oxm)

	// alias resolves to the same descriptor
	assert.Same(t, f, basic.FieldByName("ipv4_src"))
	assert.Same(t, f, basic.FieldByHeader(OXM_OF_IPV4_SRC))

	// masked or length-mangled headers still identify the field
	hdr := OXM_OF_IPV4_SRC
	hdr.SetMask(true)
	hdr.SetLength(8)
	assert.Same(t, f, basic.FieldByHeader(hdr))

	assert.Nil(t, basic.FieldByName("nx_nonexistent"))
	assert.Nil(t, basic.FieldByHeader(Header(OFPXMC_OPENFLOW_BASIC<<16|60<<9|4)))

	// non-wire fields resolve by name only
	tci := basic.FieldByName("vlan_tci")
	require.NotNil(t, tci)
	assert.Zero(t, tci.Oxm)
}

func TestCatalogConsistency(t *testing.T) {
	for i := range fields {
		f := &fields[i]
		assert.Equal(t, FieldId(i), f.Id, f.Name)
		assert.Positive(t, f.NBytes, f.Name)
		assert.LessOrEqual(t, f.NBits, f.NBytes*8, f.Name)
		if f.Oxm != 0 {
			assert.EqualValues(t, OFPXMC_OPENFLOW_BASIC, f.Oxm.Class(), f.Name)
			assert.Equal(t, f.NBytes, f.Oxm.Length(), f.Name)
			assert.False(t, f.Oxm.HasMask(), f.Name)
		}
	}
}

func TestHeaderBits(t *testing.T) {
	hdr := OXM_OF_VLAN_VID
	assert.EqualValues(t, OFPXMC_OPENFLOW_BASIC, hdr.Class())
	assert.EqualValues(t, OFPXMT_OFB_VLAN_VID, hdr.Field())
	assert.Equal(t, 2, hdr.Length())
	assert.False(t, hdr.HasMask())

	hdr.SetMask(true)
	hdr.SetLength(4)
	assert.True(t, hdr.HasMask())
	assert.Equal(t, 4, hdr.Length())
	assert.Equal(t, OXM_OF_VLAN_VID.Type(), hdr.Type())

	hdr.SetMask(false)
	assert.False(t, hdr.HasMask())
}
