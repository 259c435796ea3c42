package game

import "github.com/chewxy/math32"

// Sum ...
func Sum(data []float32) (result float32) {
	for _, v := range data {
		result += v
	}
	return result
}

// Mean ...
func Mean(data []float32) float32 {
	if len(data) == 0 {
		return 0
	}
	return Sum(data) / float32(len(data))
}

// Max returns the largest value in data, or 0 if data is empty.
func Max(data []float32) float32 {
	if len(data) == 0 {
		return 0
	}
	m := data[0]
	for _, v := range data[1:] {
		m = math32.Max(m, v)
	}
	return m
}

// Variance ...
func Variance(data []float32) (variance float32) {
	if len(data) == 0 {
		return 0
	}
	mean := Mean(data)
	for _, v := range data {
		variance += (v - mean) * (v - mean)
	}
	return variance / float32(len(data))
}

// StandardDeviation ...
func StandardDeviation(data []float32) float32 {
	return math32.Sqrt(Variance(data))
}
