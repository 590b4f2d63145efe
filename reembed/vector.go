package reembed

import "math"

// NormalizeVector returns a unit-length copy of v. Stored chunk embeddings
// are normalized so similarity search can use a plain dot product. A zero
// vector has no direction and normalizes to all zeros.
func NormalizeVector(v []float32) []float32 {
	if len(v) == 0 {
		return v
	}

	var sumSquares float64
	for _, val := range v {
		sumSquares += float64(val) * float64(val)
	}

	result := make([]float32, len(v))
	if sumSquares == 0 {
		return result
	}

	magnitude := float32(math.Sqrt(sumSquares))
	for i, val := range v {
		result[i] = val / magnitude
	}
	return result
}
