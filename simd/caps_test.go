package simd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNative_ScalarAlwaysAvailable(t *testing.T) {
	caps := Native()
	assert.True(t, caps.Has(TierScalar), "scalar tier is always available")
}

func TestNative_Monotonic(t *testing.T) {
	caps := Native()

	if caps.Has(TierAVX2) {
		require.True(t, caps.Has(TierAVX), "AVX2 implies AVX")
		require.True(t, caps.Has(TierSSE2), "AVX2 implies SSE2")
	}
	if caps.Has(TierAVX512BW) {
		require.True(t, caps.Has(TierAVX512F), "AVX512BW implies AVX512F")
	}
	if caps.Has(TierAVX512F) {
		require.True(t, caps.Has(TierAVX2), "AVX512F implies AVX2")
	}
	if caps.Has(TierSSSE3) {
		require.True(t, caps.Has(TierSSE2), "SSSE3 implies SSE2")
	}
}

func TestConstrained_CapsAtMaxTier(t *testing.T) {
	native := Caps{sse2: true, ssse3: true, avx: true, avx2: true, avx512f: true, avx512bw: true}

	tests := []struct {
		max      Tier
		wantMax  Tier
		wantHave []Tier
		wantMiss []Tier
	}{
		{TierScalar, TierScalar, []Tier{TierScalar}, []Tier{TierSSE2, TierAVX2, TierAVX512BW}},
		{TierSSE2, TierSSE2, []Tier{TierScalar, TierSSE2}, []Tier{TierSSSE3, TierAVX2}},
		{TierAVX2, TierAVX2, []Tier{TierScalar, TierSSE2, TierSSSE3, TierAVX, TierAVX2}, []Tier{TierAVX512F, TierAVX512BW}},
		{TierAVX512BW, TierAVX512BW, []Tier{TierScalar, TierSSE2, TierAVX2, TierAVX512F, TierAVX512BW}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.max.String(), func(t *testing.T) {
			capped := Constrained(native, tt.max)
			assert.Equal(t, tt.wantMax, capped.Max())
			for _, tier := range tt.wantHave {
				assert.True(t, capped.Has(tier), "expected %s available", tier)
			}
			for _, tier := range tt.wantMiss {
				assert.False(t, capped.Has(tier), "expected %s unavailable", tier)
			}
		})
	}
}

func TestConstrained_NeverExceedsNative(t *testing.T) {
	// A host without AVX512 support can't be granted it by raising max.
	native := Caps{sse2: true, ssse3: true, avx: true, avx2: true}

	capped := Constrained(native, TierAVX512BW)

	assert.False(t, capped.Has(TierAVX512F))
	assert.False(t, capped.Has(TierAVX512BW))
	assert.Equal(t, TierAVX2, capped.Max())
}

func TestNormalize_EnforcesMonotonicSubset(t *testing.T) {
	// Hand-build an inconsistent Caps: AVX2 set without SSE2/AVX.
	inconsistent := Caps{avx2: true, avx512bw: true}

	normalized := normalize(inconsistent)

	assert.False(t, normalized.Has(TierAVX2), "AVX2 without AVX/SSE2 should be dropped")
	assert.False(t, normalized.Has(TierAVX512BW), "AVX512BW without its AVX2 prerequisite should be dropped")
}

func TestTier_String(t *testing.T) {
	cases := map[Tier]string{
		TierScalar:   "Scalar",
		TierSSE2:     "SSE2",
		TierSSSE3:    "SSSE3",
		TierAVX:      "AVX",
		TierAVX2:     "AVX2",
		TierAVX512F:  "AVX512F",
		TierAVX512BW: "AVX512BW",
		Tier(99):     "Unknown",
	}
	for tier, want := range cases {
		assert.Equal(t, want, tier.String())
	}
}
