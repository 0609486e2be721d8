package registry

import (
	"strconv"
	"strings"

	"github.com/bitwiser-io/chcodec/endian"
	"github.com/bitwiser-io/chcodec/simd"
	"github.com/bitwiser-io/chcodec/types"
	"github.com/bitwiser-io/chcodec/wireerr"
)

// Resolve returns the handler for typeName, trying the non-parametric
// table first and falling back to constructing a parametric handler
// (Decimal32/64/128, DateTime64, FixedString) from its tuple-form
// arguments. This is the lookup path a Native block reader uses for each
// column: a declared type name arrives on the wire, and the reader must
// either find a registered default handler or parse and construct one.
func (r *Registry) Resolve(typeName string) (types.Handler, error) {
	// ByName already logs its own miss; suppress a second, redundant
	// Debug line for the common non-parametric case by checking the map
	// directly instead of going through ByName here.
	if h, ok := r.byName[strings.ToLower(typeName)]; ok {
		return h, nil
	}

	h, err := ParseParametric(typeName, endian.GetLittleEndianEngine(), simd.Native())
	if err != nil {
		r.logger.Debugf("registry: could not resolve type name %q: %v", typeName, err)

		return nil, err
	}

	return h, nil
}

// ParseParametric constructs a handler from the server's tuple-form
// parametric type-name grammar: Name(param,param). Supported families:
// Decimal32/64/128(precision,scale), DateTime64(precision),
// FixedString(length).
func ParseParametric(typeName string, engine endian.EndianEngine, caps simd.Caps) (types.Handler, error) {
	name, args, ok := splitTuple(typeName)
	if !ok {
		return nil, wireerr.UnknownType(typeName)
	}

	switch name {
	case "Decimal32":
		precision, scale, err := decimalArgs(args)
		if err != nil {
			return nil, err
		}

		return types.NewDecimal32Handler(precision, scale, caps)
	case "Decimal64":
		precision, scale, err := decimalArgs(args)
		if err != nil {
			return nil, err
		}

		return types.NewDecimal64Handler(precision, scale, caps)
	case "Decimal128":
		precision, scale, err := decimalArgs(args)
		if err != nil {
			return nil, err
		}

		return types.NewDecimal128Handler(precision, scale, caps)
	case "DateTime64":
		if len(args) != 1 {
			return nil, wireerr.UnknownType(typeName)
		}
		precision, err := strconv.Atoi(strings.TrimSpace(args[0]))
		if err != nil {
			return nil, wireerr.UnknownType(typeName)
		}

		return types.NewDateTime64Handler(precision, engine, caps)
	case "FixedString":
		if len(args) != 1 {
			return nil, wireerr.UnknownType(typeName)
		}
		n, err := strconv.Atoi(strings.TrimSpace(args[0]))
		if err != nil {
			return nil, wireerr.UnknownType(typeName)
		}

		return types.NewFixedStringHandler(n, caps)
	default:
		return nil, wireerr.UnknownType(typeName)
	}
}

func decimalArgs(args []string) (precision, scale int, err error) {
	if len(args) != 2 {
		return 0, 0, wireerr.InvalidParameter("Decimal", "args", args)
	}
	precision, err1 := strconv.Atoi(strings.TrimSpace(args[0]))
	scale, err2 := strconv.Atoi(strings.TrimSpace(args[1]))
	if err1 != nil || err2 != nil {
		return 0, 0, wireerr.InvalidParameter("Decimal", "args", args)
	}

	return precision, scale, nil
}

// splitTuple parses "Name(a,b,c)" into ("Name", ["a","b","c"], true). A
// name with no parentheses (or malformed parentheses) returns ok=false.
func splitTuple(s string) (name string, args []string, ok bool) {
	open := strings.IndexByte(s, '(')
	if open < 0 || !strings.HasSuffix(s, ")") {
		return "", nil, false
	}

	name = s[:open]
	inner := s[open+1 : len(s)-1]
	if inner == "" {
		return name, nil, true
	}

	return name, strings.Split(inner, ","), true
}
