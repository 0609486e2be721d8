package simd

import "golang.org/x/sys/cpu"

// Tier is one rung of the vector-width dispatch ladder a type handler climbs
// when selecting how to process a batch of values.
type Tier uint8

const (
	// TierScalar processes one element at a time. Always available.
	TierScalar Tier = iota
	// TierSSE2 is the 128-bit tier available on every amd64 host.
	TierSSE2
	// TierSSSE3 is the 128-bit tier with byte-shuffle support, used for the
	// UUID/IPv6 wire-order permutation.
	TierSSSE3
	// TierAVX is the 256-bit tier without integer shuffle support.
	TierAVX
	// TierAVX2 is the 256-bit tier with integer shuffle support.
	TierAVX2
	// TierAVX512F is the 512-bit foundation tier.
	TierAVX512F
	// TierAVX512BW is the 512-bit tier with byte/word shuffle support.
	TierAVX512BW
)

// String returns the tier's canonical name, used in test failure messages
// and benchmark sub-test names.
func (t Tier) String() string {
	switch t {
	case TierScalar:
		return "Scalar"
	case TierSSE2:
		return "SSE2"
	case TierSSSE3:
		return "SSSE3"
	case TierAVX:
		return "AVX"
	case TierAVX2:
		return "AVX2"
	case TierAVX512F:
		return "AVX512F"
	case TierAVX512BW:
		return "AVX512BW"
	default:
		return "Unknown"
	}
}

// Caps is an immutable record of which vector-width tiers are available.
// Capability is monotonic: if a higher tier is present, every lower tier it
// builds on is present too (enforced at construction, not just by
// convention).
type Caps struct {
	sse2     bool
	ssse3    bool
	avx      bool
	avx2     bool
	avx512f  bool
	avx512bw bool
}

// Has reports whether the given tier is available under this capability set.
func (c Caps) Has(t Tier) bool {
	switch t {
	case TierScalar:
		return true
	case TierSSE2:
		return c.sse2
	case TierSSSE3:
		return c.ssse3
	case TierAVX:
		return c.avx
	case TierAVX2:
		return c.avx2
	case TierAVX512F:
		return c.avx512f
	case TierAVX512BW:
		return c.avx512bw
	default:
		return false
	}
}

// Max returns the highest tier available under this capability set.
func (c Caps) Max() Tier {
	switch {
	case c.avx512bw:
		return TierAVX512BW
	case c.avx512f:
		return TierAVX512F
	case c.avx2:
		return TierAVX2
	case c.avx:
		return TierAVX
	case c.ssse3:
		return TierSSSE3
	case c.sse2:
		return TierSSE2
	default:
		return TierScalar
	}
}

// normalize enforces the monotonic-subset invariant: a tier can only be set
// if the tiers it builds on are also set (SSSE3 and AVX on SSE2, AVX2 on
// AVX, AVX512F on AVX2, AVX512BW on AVX512F). AVX does not depend on SSSE3. This guards against a
// caller hand-building an inconsistent Caps value (e.g. AVX2 without SSE2).
func normalize(c Caps) Caps {
	// SSSE3/AVX both require SSE2's 128-bit lane width to be meaningful.
	if !c.sse2 {
		c.ssse3 = false
		c.avx = false
	}
	if !c.avx {
		c.avx2 = false
	}
	if !c.avx2 {
		c.avx512f = false
	}
	if !c.avx512f {
		c.avx512bw = false
	}

	return c
}

// Native reports the actual CPU support available on this host, probed via
// runtime CPUID feature bits. On non-x86 hosts every field reads false and
// the probe degrades to TierScalar only, which is a valid capability set —
// handlers always have a correct (if unaccelerated) scalar fallback.
func Native() Caps {
	return normalize(Caps{
		sse2:     cpu.X86.HasSSE2,
		ssse3:    cpu.X86.HasSSSE3,
		avx:      cpu.X86.HasAVX,
		avx2:     cpu.X86.HasAVX2,
		avx512f:  cpu.X86.HasAVX512F,
		avx512bw: cpu.X86.HasAVX512BW,
	})
}

// Constrained returns a capability set that is the AND of native's support
// with "tier <= max". It is used exclusively by tests and benchmarks to
// force a scalar/SSE2/AVX2/AVX512 code path on the same hardware so that
// tier-agreement can be checked without needing differently-capable
// machines.
func Constrained(native Caps, max Tier) Caps {
	capped := Caps{
		sse2:     native.sse2 && max >= TierSSE2,
		ssse3:    native.ssse3 && max >= TierSSSE3,
		avx:      native.avx && max >= TierAVX,
		avx2:     native.avx2 && max >= TierAVX2,
		avx512f:  native.avx512f && max >= TierAVX512F,
		avx512bw: native.avx512bw && max >= TierAVX512BW,
	}

	return normalize(capped)
}
