package types

import (
	"net/netip"
	"testing"

	"github.com/bitwiser-io/chcodec/bytestream"
	"github.com/bitwiser-io/chcodec/simd"
	"github.com/bitwiser-io/chcodec/wireerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIPv4Handler_Scenario_1_2_3_4(t *testing.T) {
	h := NewIPv4Handler(simd.Native())
	addr := netip.MustParseAddr("1.2.3.4")

	w := bytestream.NewWriter()
	defer w.Finish()
	require.NoError(t, h.WriteValue(w, addr))
	assert.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, w.Bytes())

	seq := bytestream.New(w.Bytes())
	got, n, err := h.ReadValue(&seq)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, addr, got)
}

func TestIPv4Handler_RejectsIPv6(t *testing.T) {
	h := NewIPv4Handler(simd.Native())
	w := bytestream.NewWriter()
	defer w.Finish()

	err := h.WriteValue(w, netip.MustParseAddr("::1"))
	require.ErrorIs(t, err, wireerr.ErrWrongAddressFamily)
}

func TestIPv6Handler_Scenario_ColonColon1(t *testing.T) {
	h := NewIPv6Handler(simd.Native())
	addr := netip.MustParseAddr("::1")

	w := bytestream.NewWriter()
	defer w.Finish()
	require.NoError(t, h.WriteValue(w, addr))

	want := make([]byte, 16)
	want[15] = 0x01
	assert.Equal(t, want, w.Bytes())

	seq := bytestream.New(w.Bytes())
	got, n, err := h.ReadValue(&seq)
	require.NoError(t, err)
	assert.Equal(t, 16, n)
	assert.Equal(t, addr, got)
}

func TestIPv6Handler_RejectsIPv4(t *testing.T) {
	h := NewIPv6Handler(simd.Native())
	w := bytestream.NewWriter()
	defer w.Finish()

	err := h.WriteValue(w, netip.MustParseAddr("1.2.3.4"))
	require.ErrorIs(t, err, wireerr.ErrWrongAddressFamily)
}

func TestIPv4Handler_RoundTrip_Batch(t *testing.T) {
	h := NewIPv4Handler(simd.Native())
	values := []netip.Addr{
		netip.MustParseAddr("0.0.0.0"),
		netip.MustParseAddr("255.255.255.255"),
		netip.MustParseAddr("10.0.0.1"),
		netip.MustParseAddr("192.168.1.1"),
	}

	w := bytestream.NewWriter()
	defer w.Finish()
	require.NoError(t, h.WriteValues(w, values))

	seq := bytestream.New(w.Bytes())
	got := make([]netip.Addr, len(values))
	n, _, err := h.ReadValues(&seq, got)
	require.NoError(t, err)
	assert.Equal(t, len(values), n)
	assert.Equal(t, values, got)
}
