// Package wireformat implements the two block-level framings consumed and
// produced by the codec: RowBinary (row-major, headerless) and Native
// (column-major, with a varint-prefixed header), plus an additive
// multi-block Native stream reader. Both framings must be byte-exact with
// the reference server's wire formats.
package wireformat
