// Package ram defines the fixed-width scalar that stores every constant's
// payload, and the bit casts between it and the typed payloads.
package ram

import "math"

// Domain is the fixed-width scalar a constant payload is stored in.
// Strings store their symbol-table handle. Unsigned and float payloads are
// stored by bit reinterpretation, never by numeric conversion, so decoding
// with the matching type recovers the value bit for bit.
type Domain int32

func SignedToDomain(x int32) Domain {
	return Domain(x)
}

func UnsignedToDomain(x uint32) Domain {
	return Domain(x)
}

func FloatToDomain(x float32) Domain {
	return Domain(math.Float32bits(x))
}

func DomainToSigned(x Domain) int32 {
	return int32(x)
}

func DomainToUnsigned(x Domain) uint32 {
	return uint32(x)
}

func DomainToFloat(x Domain) float32 {
	return math.Float32frombits(uint32(x))
}
