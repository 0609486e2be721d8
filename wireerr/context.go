package wireerr

import "fmt"

// Underrun wraps ErrUnderrun with the byte counts that would locate the
// failure: how many bytes the caller needed and how many remained.
func Underrun(typeName string, want, got int) error {
	return fmt.Errorf("%s: need %d bytes, have %d: %w", typeName, want, got, ErrUnderrun)
}

// UnderrunAt wraps ErrUnderrun with the index of the offending element
// within a bulk read, used by read_values when the sequence runs dry
// partway through a batch.
func UnderrunAt(typeName string, index, want, got int) error {
	return fmt.Errorf("%s: element %d: need %d bytes, have %d: %w", typeName, index, want, got, ErrUnderrun)
}

// Overflow wraps ErrOverflow with the offending value's description.
func Overflow(typeName string, detail string) error {
	return fmt.Errorf("%s: %s: %w", typeName, detail, ErrOverflow)
}

// OverflowAt wraps ErrOverflow with the index of the offending element
// within a bulk write.
func OverflowAt(typeName string, index int, detail string) error {
	return fmt.Errorf("%s: element %d: %s: %w", typeName, index, detail, ErrOverflow)
}

// WrongAddressFamily wraps ErrWrongAddressFamily with the byte length that
// was given versus what the handler expects.
func WrongAddressFamily(typeName string, gotBytes int) error {
	return fmt.Errorf("%s: got %d byte address: %w", typeName, gotBytes, ErrWrongAddressFamily)
}

// UnknownType wraps ErrUnknownType with the lookup key that missed.
func UnknownType(key string) error {
	return fmt.Errorf("registry: %q: %w", key, ErrUnknownType)
}

// SchemaMismatch wraps ErrSchemaMismatch with a human-readable explanation.
func SchemaMismatch(detail string) error {
	return fmt.Errorf("%s: %w", detail, ErrSchemaMismatch)
}

// InvalidParameter wraps ErrInvalidParameter with the parameter name and
// the value that was rejected.
func InvalidParameter(typeName, param string, value any) error {
	return fmt.Errorf("%s: %s=%v: %w", typeName, param, value, ErrInvalidParameter)
}
