package types

import (
	"fmt"

	"github.com/bitwiser-io/chcodec/endian"
	"github.com/bitwiser-io/chcodec/simd"
	"github.com/bitwiser-io/chcodec/wireerr"
)

// pow10 for precisions 0..9, used to convert between raw ticks and
// seconds/sub-second remainder.
var pow10Table = [10]int64{
	1, 10, 100, 1_000, 10_000, 100_000,
	1_000_000, 10_000_000, 100_000_000, 1_000_000_000,
}

// DateTime64Handler implements DateTime64(p): 8-byte signed ticks of
// resolution 10^-p seconds since the Unix epoch. The wire value is carried
// as raw ticks (int64); Split/Join convert to/from the seconds plus
// nanoseconds representation used elsewhere.
type DateTime64Handler struct {
	*FixedWidthHandler[int64]
	precision int
}

// NewDateTime64Handler constructs a DateTime64 handler at the given
// sub-second precision, which must be in [0, 9].
func NewDateTime64Handler(precision int, engine endian.EndianEngine, caps simd.Caps) (*DateTime64Handler, error) {
	if precision < 0 || precision > 9 {
		return nil, wireerr.InvalidParameter("DateTime64", "precision", precision)
	}

	inner := newFixedWidthHandler(ProtoDateTime64, fmt.Sprintf("DateTime64(%d)", precision), 8, engine, caps,
		func(dst []byte, e endian.EndianEngine, v int64) { e.PutUint64(dst, uint64(v)) },
		func(src []byte, e endian.EndianEngine) int64 { return int64(e.Uint64(src)) },
	)

	return &DateTime64Handler{FixedWidthHandler: inner, precision: precision}, nil
}

// Precision returns the configured sub-second precision.
func (h *DateTime64Handler) Precision() int { return h.precision }

// Split decodes raw ticks into whole seconds since the epoch and the
// sub-second remainder expressed in nanoseconds. Floor division is used so
// negative ticks (pre-epoch instants) split correctly.
func (h *DateTime64Handler) Split(ticks int64) (seconds int64, nanos int64) {
	unit := pow10Table[h.precision]
	sec := ticks / unit
	rem := ticks % unit
	if rem < 0 {
		rem += unit
		sec--
	}
	nanos = rem * (1_000_000_000 / unit)

	return sec, nanos
}

// Join packs whole seconds and a nanosecond remainder into raw ticks at
// this handler's precision, truncating any precision finer than
// configured.
func (h *DateTime64Handler) Join(seconds, nanos int64) int64 {
	unit := pow10Table[h.precision]

	return seconds*unit + nanos/(1_000_000_000/unit)
}
