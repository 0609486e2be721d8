package types

import (
	"fmt"
	"net/netip"

	"github.com/bitwiser-io/chcodec/bytestream"
	"github.com/bitwiser-io/chcodec/simd"
	"github.com/bitwiser-io/chcodec/wireerr"
)

// IPv4Handler implements IPv4: 4 bytes, network byte order.
type IPv4Handler struct {
	caps simd.Caps
}

// NewIPv4Handler returns an IPv4 handler.
func NewIPv4Handler(caps simd.Caps) *IPv4Handler {
	return &IPv4Handler{caps: caps}
}

func (h *IPv4Handler) ProtocolCode() byte   { return ProtoIPv4 }
func (h *IPv4Handler) TypeName() string     { return "IPv4" }
func (h *IPv4Handler) IsFixedLength() bool  { return true }
func (h *IPv4Handler) FixedByteLength() int { return 4 }
func (h *IPv4Handler) SimdCaps() simd.Caps  { return h.caps }

// ReadValue decodes one address from the front of seq.
func (h *IPv4Handler) ReadValue(seq *bytestream.Sequence) (netip.Addr, int, error) {
	var zero netip.Addr
	if seq.Length() < 4 {
		return zero, 0, wireerr.Underrun("IPv4", 4, int(seq.Length()))
	}

	var buf [4]byte
	if err := seq.CopyTo(buf[:]); err != nil {
		return zero, 0, err
	}
	rest, err := seq.Advance(4)
	if err != nil {
		return zero, 0, err
	}
	*seq = rest

	return netip.AddrFrom4(buf), 4, nil
}

// ReadValues fills dst with up to len(dst) items.
func (h *IPv4Handler) ReadValues(seq *bytestream.Sequence, dst []netip.Addr) (int, int, error) {
	avail := int(seq.Length()) / 4
	want := len(dst)
	if avail < want {
		want = avail
	}

	for i := 0; i < want; i++ {
		v, _, err := h.ReadValue(seq)
		if err != nil {
			return i, i * 4, err
		}
		dst[i] = v
	}

	return want, want * 4, nil
}

// WriteValue appends one address to w. v must be an IPv4 address (either
// a 4-byte address or a valid 4-in-6 mapping); anything else is
// WrongAddressFamily.
func (h *IPv4Handler) WriteValue(w *bytestream.Writer, v netip.Addr) error {
	addr := v
	if addr.Is4In6() {
		addr = addr.Unmap()
	}
	if !addr.Is4() {
		return wireerr.WrongAddressFamily("IPv4", addr.BitLen()/8)
	}

	span := w.GetSpan(4)
	b := addr.As4()
	copy(span, b[:])
	w.Advance(4)

	return nil
}

// WriteValues appends values.
func (h *IPv4Handler) WriteValues(w *bytestream.Writer, values []netip.Addr) error {
	for i, v := range values {
		if err := h.WriteValue(w, v); err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
	}

	return nil
}

func (h *IPv4Handler) ReadValuesAny(seq *bytestream.Sequence, n int) (any, int, int, error) {
	dst := make([]netip.Addr, n)
	read, consumed, err := h.ReadValues(seq, dst)

	return dst[:read], read, consumed, err
}

func (h *IPv4Handler) WriteValuesAny(w *bytestream.Writer, values any) (int, error) {
	typed, ok := values.([]netip.Addr)
	if !ok {
		return 0, wireerr.InvalidParameter("IPv4", "values", values)
	}
	before := w.Len()
	if err := h.WriteValues(w, typed); err != nil {
		return 0, err
	}

	return w.Len() - before, nil
}

// IPv6Handler implements IPv6: 16 bytes, network byte order, stored as-is.
type IPv6Handler struct {
	caps simd.Caps
}

// NewIPv6Handler returns an IPv6 handler.
func NewIPv6Handler(caps simd.Caps) *IPv6Handler {
	return &IPv6Handler{caps: caps}
}

func (h *IPv6Handler) ProtocolCode() byte   { return ProtoIPv6 }
func (h *IPv6Handler) TypeName() string     { return "IPv6" }
func (h *IPv6Handler) IsFixedLength() bool  { return true }
func (h *IPv6Handler) FixedByteLength() int { return 16 }
func (h *IPv6Handler) SimdCaps() simd.Caps  { return h.caps }

// ReadValue decodes one address from the front of seq.
func (h *IPv6Handler) ReadValue(seq *bytestream.Sequence) (netip.Addr, int, error) {
	var zero netip.Addr
	if seq.Length() < 16 {
		return zero, 0, wireerr.Underrun("IPv6", 16, int(seq.Length()))
	}

	var buf [16]byte
	if err := seq.CopyTo(buf[:]); err != nil {
		return zero, 0, err
	}
	rest, err := seq.Advance(16)
	if err != nil {
		return zero, 0, err
	}
	*seq = rest

	return netip.AddrFrom16(buf), 16, nil
}

// ReadValues fills dst with up to len(dst) items.
func (h *IPv6Handler) ReadValues(seq *bytestream.Sequence, dst []netip.Addr) (int, int, error) {
	avail := int(seq.Length()) / 16
	want := len(dst)
	if avail < want {
		want = avail
	}

	for i := 0; i < want; i++ {
		v, _, err := h.ReadValue(seq)
		if err != nil {
			return i, i * 16, err
		}
		dst[i] = v
	}

	return want, want * 16, nil
}

// WriteValue appends one address to w. v must be a 16-byte IPv6 address
// (not a 4-in-6 mapping, which belongs to the IPv4 handler).
func (h *IPv6Handler) WriteValue(w *bytestream.Writer, v netip.Addr) error {
	if !v.Is6() || v.Is4In6() {
		return wireerr.WrongAddressFamily("IPv6", 4)
	}

	span := w.GetSpan(16)
	b := v.As16()
	copy(span, b[:])
	w.Advance(16)

	return nil
}

// WriteValues appends values.
func (h *IPv6Handler) WriteValues(w *bytestream.Writer, values []netip.Addr) error {
	for i, v := range values {
		if err := h.WriteValue(w, v); err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
	}

	return nil
}

func (h *IPv6Handler) ReadValuesAny(seq *bytestream.Sequence, n int) (any, int, int, error) {
	dst := make([]netip.Addr, n)
	read, consumed, err := h.ReadValues(seq, dst)

	return dst[:read], read, consumed, err
}

func (h *IPv6Handler) WriteValuesAny(w *bytestream.Writer, values any) (int, error) {
	typed, ok := values.([]netip.Addr)
	if !ok {
		return 0, wireerr.InvalidParameter("IPv6", "values", values)
	}
	before := w.Len()
	if err := h.WriteValues(w, typed); err != nil {
		return 0, err
	}

	return w.Len() - before, nil
}
