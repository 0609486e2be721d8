// Package registry maps protocol codes and printable type names to
// default handler instances. The table is built once from the
// non-parametric scalar types and is immutable thereafter; parametric
// types (Decimal*, DateTime64, FixedString) are constructed directly via
// their types.NewXxxHandler functions rather than looked up here.
package registry

import (
	"strings"

	"github.com/bitwiser-io/chcodec/chlog"
	"github.com/bitwiser-io/chcodec/endian"
	"github.com/bitwiser-io/chcodec/simd"
	"github.com/bitwiser-io/chcodec/types"
	"github.com/bitwiser-io/chcodec/wireerr"
)

// Registry is a frozen mapping from protocol code and from case-insensitive
// type name to a default handler instance.
type Registry struct {
	byCode byte256
	byName map[string]types.Handler
	logger chlog.Logger
}

// byCode is a dense array keyed by protocol code; most codes are unused so
// a map would work too, but a fixed array avoids allocation on lookup.
type byte256 [256]types.Handler

// Option configures a Registry at construction.
type Option func(*Registry)

// WithLogger routes a registry miss (an unrecognized protocol code or
// type name) through logger at Debug level instead of discarding it. The
// default is chlog.Noop().
func WithLogger(logger chlog.Logger) Option {
	return func(r *Registry) { r.logger = logger }
}

// Default is the process-wide registry built from types.NewXxxHandler with
// little-endian engines and the native SIMD capability probe. It is
// immutable after package initialization.
var Default = build(endian.GetLittleEndianEngine(), simd.Native())

// New builds a registry from engine and caps, for callers that need a
// non-default byte order, capability set, or a Logger to observe misses.
func New(engine endian.EndianEngine, caps simd.Caps, opts ...Option) *Registry {
	return build(engine, caps, opts...)
}

func build(engine endian.EndianEngine, caps simd.Caps, opts ...Option) *Registry {
	r := &Registry{byName: make(map[string]types.Handler), logger: chlog.Noop()}
	for _, opt := range opts {
		opt(r)
	}

	handlers := []types.Handler{
		types.NewUInt8Handler(engine, caps),
		types.NewUInt16Handler(engine, caps),
		types.NewUInt32Handler(engine, caps),
		types.NewUInt64Handler(engine, caps),
		types.NewInt8Handler(engine, caps),
		types.NewInt16Handler(engine, caps),
		types.NewInt32Handler(engine, caps),
		types.NewInt64Handler(engine, caps),
		types.NewFloat32Handler(engine, caps),
		types.NewFloat64Handler(engine, caps),
		types.NewBoolHandler(caps),
		types.NewDateHandler(engine, caps),
		types.NewDateTimeHandler(engine, caps),
		types.NewDate32Handler(engine, caps),
		types.NewUUIDHandler(caps),
		types.NewIPv4Handler(caps),
		types.NewIPv6Handler(caps),
		types.NewStringHandler(caps),
	}

	for _, h := range handlers {
		r.register(h)
	}

	return r
}

func (r *Registry) register(h types.Handler) {
	// Bool and UInt8 share a protocol code; the byCode table keeps UInt8
	// as the default for that code (registered first above) while both
	// remain independently reachable by name.
	if r.byCode[h.ProtocolCode()] == nil {
		r.byCode[h.ProtocolCode()] = h
	}
	r.byName[strings.ToLower(h.TypeName())] = h
}

// ByCode looks up the default handler for a protocol code.
func (r *Registry) ByCode(code byte) (types.Handler, error) {
	h := r.byCode[code]
	if h == nil {
		r.logger.Debugf("registry: no handler registered for protocol code %s", byteHex(code))

		return nil, wireerr.UnknownType(byteHex(code))
	}

	return h, nil
}

// ByName looks up the default handler for a type name, case-insensitively.
// Parametric type names (e.g. "Decimal64(18,2)") are never found here;
// callers must recognize the parametric grammar themselves and construct
// the handler directly (see ParseParametric).
func (r *Registry) ByName(name string) (types.Handler, error) {
	h, ok := r.byName[strings.ToLower(name)]
	if !ok {
		r.logger.Debugf("registry: no handler registered for type name %q", name)

		return nil, wireerr.UnknownType(name)
	}

	return h, nil
}

func byteHex(b byte) string {
	const hex = "0123456789ABCDEF"

	return "0x" + string([]byte{hex[b>>4], hex[b&0x0F]})
}
