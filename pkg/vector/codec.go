// Package vector implements the binary codec and similarity scoring used
// by the embedding experiment. Vectors are stored as raw bytes on the
// place row: 4 bytes per float32 component, little-endian, no header.
package vector

import (
	"encoding/binary"
	"errors"
	"math"
	"math/rand"
)

var (
	ErrEmptyVector         = errors.New("vector cannot be nil or empty")
	ErrInvalidVectorFormat = errors.New("invalid byte length for float32 vector")
	ErrDimensionMismatch   = errors.New("vectors must have the same dimension")
)

// FloatsToBytes encodes a float32 vector for storage. A vector of N
// components encodes to exactly 4N bytes.
func FloatsToBytes(v []float32) ([]byte, error) {
	if len(v) == 0 {
		return nil, ErrEmptyVector
	}

	bytes := make([]byte, len(v)*4)
	for i, f := range v {
		binary.LittleEndian.PutUint32(bytes[i*4:], math.Float32bits(f))
	}
	return bytes, nil
}

// BytesToFloats decodes a stored embedding back into its components.
// A nil or empty input decodes to an empty vector; a length that is not a
// multiple of 4 is malformed.
func BytesToFloats(b []byte) ([]float32, error) {
	if len(b) == 0 {
		return []float32{}, nil
	}
	if len(b)%4 != 0 {
		return nil, ErrInvalidVectorFormat
	}

	v := make([]float32, len(b)/4)
	for i := range v {
		v[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[i*4:]))
	}
	return v, nil
}

// CosineSimilarity returns dot(a,b) / (|a|*|b|) accumulated in float64.
// A zero-magnitude operand yields 0 rather than NaN.
func CosineSimilarity(a, b []float32) (float64, error) {
	if len(a) != len(b) {
		return 0, ErrDimensionMismatch
	}

	var dot, magA, magB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		magA += float64(a[i]) * float64(a[i])
		magB += float64(b[i]) * float64(b[i])
	}

	magA = math.Sqrt(magA)
	magB = math.Sqrt(magB)

	if magA == 0 || magB == 0 {
		return 0, nil
	}
	return dot / (magA * magB), nil
}

// RandomVector generates a reproducible vector with components in [-1, 1).
// Used by the seed tool and tests.
func RandomVector(dims int, seed int64) []float32 {
	rng := rand.New(rand.NewSource(seed))
	v := make([]float32, dims)
	for i := range v {
		v[i] = float32(rng.Float64()*2 - 1)
	}
	return v
}

// Normalize scales v to unit length. A zero vector is returned unchanged.
func Normalize(v []float32) []float32 {
	var mag float64
	for _, f := range v {
		mag += float64(f) * float64(f)
	}
	mag = math.Sqrt(mag)

	if mag == 0 {
		return v
	}

	normalized := make([]float32, len(v))
	for i, f := range v {
		normalized[i] = float32(float64(f) / mag)
	}
	return normalized
}
