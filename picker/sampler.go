package picker

// Sampler thins out pointer-move events: it accepts one of every n samples,
// starting with the first.
type Sampler struct {
	every int
	count int
}

// NewSampler returns a sampler keeping one of every n samples. n <= 1 keeps all.
func NewSampler(n int) Sampler {
	if n < 1 {
		n = 1
	}
	return Sampler{every: n}
}

// Take reports whether the next sample should be processed.
func (s *Sampler) Take() bool {
	if s.every <= 1 {
		return true
	}
	take := s.count%s.every == 0
	s.count++
	return take
}

// Reset starts counting again, so the first sample of a new drag is always taken.
func (s *Sampler) Reset() {
	s.count = 0
}

// Every returns n.
func (s Sampler) Every() int {
	return s.every
}
