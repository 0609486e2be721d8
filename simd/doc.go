// Package simd reports which SIMD vector-width tiers are available for the
// type handlers in the types package to use when encoding or decoding bulk
// columnar values.
//
// # Basic usage
//
// Most callers should use Native(), which reflects the actual host CPU:
//
//	caps := simd.Native()
//	handler := types.NewInt32Handler(endian.GetLittleEndianEngine(), caps)
//
// Tests and benchmarks that need to force a specific tier ladder on the
// same hardware use Constrained():
//
//	caps := simd.Constrained(simd.Native(), simd.TierAVX2)
//
// # Tiers
//
// The tier set is a fixed, ordered ladder: Scalar, SSE2, SSSE3, AVX, AVX2,
// AVX512F, AVX512BW. Capability values are monotonic — if a higher tier is
// reported present, every lower tier it builds on is too. A Caps value is immutable once
// constructed and carries no global or mutable state.
package simd
