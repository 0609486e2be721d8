// Package types implements one handler per scalar wire type: the fixed-width
// integers and floats, Bool, the date/time family, the Decimal family,
// String, FixedString, UUID, IPv4 and IPv6.
//
// Every handler exposes a single-value and a bulk encode/decode pair. Bulk
// operations of the plain scalar types (FixedWidthHandler) and of UUID pick
// the highest SIMD tier whose minimum batch length is met, falling back to a
// scalar element-by-element path for short batches and for any sequence
// whose first segment doesn't hold the whole payload. The Bool, Decimal,
// FixedString, IPv4, IPv6 and String handlers process their bulk operations
// element by element without tier selection. Handlers are immutable value types; the only
// state involved in a read or write lives in the bytestream.Sequence or
// bytestream.Writer passed by the caller.
package types
