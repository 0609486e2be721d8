package registry

import (
	"testing"

	"github.com/bitwiser-io/chcodec/types"
	"github.com/bitwiser-io/chcodec/wireerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_ByCode_KnownTypes(t *testing.T) {
	h, err := Default.ByCode(types.ProtoInt32)
	require.NoError(t, err)
	assert.Equal(t, "Int32", h.TypeName())

	h, err = Default.ByCode(types.ProtoString)
	require.NoError(t, err)
	assert.Equal(t, "String", h.TypeName())
}

func TestDefault_ByCode_Unknown(t *testing.T) {
	_, err := Default.ByCode(0x99)
	require.ErrorIs(t, err, wireerr.ErrUnknownType)
}

func TestDefault_ByName_CaseInsensitive(t *testing.T) {
	h, err := Default.ByName("int32")
	require.NoError(t, err)
	assert.Equal(t, "Int32", h.TypeName())

	h, err = Default.ByName("STRING")
	require.NoError(t, err)
	assert.Equal(t, "String", h.TypeName())
}

func TestDefault_ByName_Unknown(t *testing.T) {
	_, err := Default.ByName("NotAType")
	require.ErrorIs(t, err, wireerr.ErrUnknownType)
}

func TestResolve_NonParametricFoundInDefaultTable(t *testing.T) {
	h, err := Default.Resolve("UInt64")
	require.NoError(t, err)
	assert.Equal(t, "UInt64", h.TypeName())
}

func TestResolve_ParametricTypes(t *testing.T) {
	h, err := Default.Resolve("Decimal64(18,2)")
	require.NoError(t, err)
	assert.Equal(t, "Decimal64(18,2)", h.TypeName())

	h, err = Default.Resolve("DateTime64(3)")
	require.NoError(t, err)
	assert.Equal(t, "DateTime64(3)", h.TypeName())

	h, err = Default.Resolve("FixedString(10)")
	require.NoError(t, err)
	assert.Equal(t, "FixedString(10)", h.TypeName())
}

func TestResolve_UnknownTypeName(t *testing.T) {
	_, err := Default.Resolve("TotallyMadeUp(1,2)")
	require.ErrorIs(t, err, wireerr.ErrUnknownType)
}

func TestParseParametric_InvalidArgs(t *testing.T) {
	_, err := ParseParametric("Decimal64(abc,2)", nil, Default.byCode[types.ProtoInt32].SimdCaps())
	require.Error(t, err)
}

func TestBoolAndUInt8_ShareProtocolCodeButDistinctNames(t *testing.T) {
	h, err := Default.ByName("Bool")
	require.NoError(t, err)
	assert.Equal(t, types.ProtoUInt8, h.ProtocolCode())

	byCode, err := Default.ByCode(types.ProtoUInt8)
	require.NoError(t, err)
	assert.Equal(t, "UInt8", byCode.TypeName(), "UInt8 registers first and stays the by-code default")
}
