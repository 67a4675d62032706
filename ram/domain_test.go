package ram

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSignedRoundTrip(t *testing.T) {
	t.Parallel()
	tcs := []int32{0, 1, -1, 42, math.MinInt32, math.MaxInt32}
	for i, x := range tcs {
		t.Run(fmt.Sprintf("%02d", i), func(t *testing.T) {
			require.Equal(t, x, DomainToSigned(SignedToDomain(x)))
		})
	}
}

func TestUnsignedRoundTrip(t *testing.T) {
	t.Parallel()
	tcs := []uint32{0, 1, 42, 1 << 31, math.MaxUint32}
	for i, x := range tcs {
		t.Run(fmt.Sprintf("%02d", i), func(t *testing.T) {
			require.Equal(t, x, DomainToUnsigned(UnsignedToDomain(x)))
		})
	}
}

func TestFloatRoundTrip(t *testing.T) {
	t.Parallel()
	// Compared at the bit level so that NaN payloads and the sign of zero
	// survive the trip.
	tcs := []uint32{
		0x00000000, // 0
		0x80000000, // -0
		0x3fc00000, // 1.5
		0x7f800000, // +inf
		0xff800000, // -inf
		0x7fc00abc, // NaN with payload
		0x00000001, // smallest subnormal
	}
	for i, bits := range tcs {
		t.Run(fmt.Sprintf("%02d", i), func(t *testing.T) {
			x := math.Float32frombits(bits)
			y := DomainToFloat(FloatToDomain(x))
			require.Equal(t, bits, math.Float32bits(y))
		})
	}
}

func TestSharedWidth(t *testing.T) {
	t.Parallel()
	// Encodings of different source types may collide numerically; the
	// node's static type is what keeps them apart.
	require.Equal(t, SignedToDomain(-1), UnsignedToDomain(math.MaxUint32))
}
