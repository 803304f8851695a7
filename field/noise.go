package field

import (
	"hash/fnv"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// Sampler is a deterministic coherent scalar field over (x, y, t).
// Sampling holds no hidden state: identical arguments always return the
// identical value, anywhere in the real domain.
type Sampler struct {
	noise opensimplex.Noise
}

// NewSampler derives the generator seed from a fixed name, so samplers with
// distinct names stay uncorrelated even at identical coordinates.
func NewSampler(name string) *Sampler {
	h := fnv.New64a()
	h.Write([]byte(name))
	return &Sampler{noise: opensimplex.New(int64(h.Sum64()))}
}

// Sample returns the field value in [-1, 1].
func (s *Sampler) Sample(x, y, t float64) float64 {
	return s.noise.Eval3(x, y, t)
}
