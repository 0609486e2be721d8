// Package wireerr defines the small, closed set of failure kinds the codec
// can surface (spec §4.I). Every failure is a sentinel error wrapped with
// fmt.Errorf("...: %w", ErrX) for context, so callers match on kind with
// errors.Is rather than string comparison.
package wireerr

import "errors"

var (
	// ErrUnderrun indicates insufficient bytes remained for a fixed-size
	// read, or for a declared varint-prefixed length.
	ErrUnderrun = errors.New("wireerr: underrun")

	// ErrMalformedVarint indicates a varint continued past its maximum
	// encodable width (10 bytes for a 64-bit value) without terminating.
	ErrMalformedVarint = errors.New("wireerr: malformed varint")

	// ErrOverflow indicates a value could not be represented in its target
	// wire encoding (a FixedString value longer than its declared length,
	// or a Decimal value not representable at the configured scale).
	ErrOverflow = errors.New("wireerr: overflow")

	// ErrWrongAddressFamily indicates an IPv4 handler was given an IPv6
	// address or vice versa.
	ErrWrongAddressFamily = errors.New("wireerr: wrong address family")

	// ErrUnknownType indicates a protocol code or type name the registry
	// has no handler for.
	ErrUnknownType = errors.New("wireerr: unknown type")

	// ErrSchemaMismatch indicates a block's column count or declared types
	// disagree with the descriptors supplied on read.
	ErrSchemaMismatch = errors.New("wireerr: schema mismatch")

	// ErrInvalidParameter indicates a construction-time parameter was out
	// of its valid range (precision > cap, scale > precision, FixedString
	// length outside [1, 1_000_000], DateTime64 precision > 9).
	ErrInvalidParameter = errors.New("wireerr: invalid parameter")
)
