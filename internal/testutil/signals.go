package testutil

import (
	"math"
	"math/rand"
)

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// DeterministicImage generates a rows x cols image of a smooth ramp plus
// seeded noise, so both low and high spatial frequencies are present.
func DeterministicImage(seed int64, rows, cols int) [][]float64 {
	noise := DeterministicNoise(seed, 0.5, rows*cols)
	img := make([][]float64, rows)
	for r := range img {
		img[r] = make([]float64, cols)
		for c := range img[r] {
			img[r][c] = math.Sin(0.4*float64(r)) + 0.1*float64(c) + noise[r*cols+c]
		}
	}
	return img
}

// DeterministicComplex generates complex noise with a fixed seed.
func DeterministicComplex(seed int64, amplitude float64, length int) []complex128 {
	re := DeterministicNoise(seed, amplitude, length)
	im := DeterministicNoise(seed+1, amplitude, length)
	out := make([]complex128, length)
	for i := range out {
		out[i] = complex(re[i], im[i])
	}
	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// Flatten concatenates the rows of a matrix.
func Flatten(rows [][]float64) []float64 {
	var out []float64
	for _, r := range rows {
		out = append(out, r...)
	}
	return out
}
