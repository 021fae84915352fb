// Package sample provides randomized helpers: probability checks, draws
// from numeric ranges and peaked weight distributions.
package sample

import (
	"fmt"
	"math"
	"math/rand/v2"
	"sync"

	"github.com/cecil-the-coder/kitutil/internal/numeric"
	"github.com/cecil-the-coder/kitutil/pkg/types"
)

// Sampler draws random values from its own generator, or from the global
// math/rand/v2 source when created without one. It is safe for concurrent use.
type Sampler struct {
	mu     sync.Mutex
	rng    *rand.Rand
	logger types.Logger
}

// NewSampler creates a Sampler. A nil rng uses the global source and a nil
// logger discards warnings.
func NewSampler(rng *rand.Rand, logger types.Logger) *Sampler {
	return &Sampler{rng: rng, logger: types.OrNop(logger)}
}

// NewSeeded creates a Sampler with a deterministic PCG generator.
func NewSeeded(seed uint64, logger types.Logger) *Sampler {
	return NewSampler(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)), logger)
}

func (s *Sampler) float64() float64 {
	if s.rng == nil {
		return rand.Float64()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}

func (s *Sampler) uint64N(n uint64) uint64 {
	if s.rng == nil {
		return rand.Uint64N(n)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Uint64N(n)
}

func (s *Sampler) uint64() uint64 {
	if s.rng == nil {
		return rand.Uint64()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Uint64()
}

// CheckProbability returns true with probability p. p is clamped to [0, 1];
// NaN counts as 0.
func (s *Sampler) CheckProbability(p float64) bool {
	if math.IsNaN(p) {
		return false
	}
	p = math.Max(0, math.Min(1, p))
	return s.float64() < p
}

// RandomValueFromRange draws a value from a (low, high) range given as a
// types.Pair or a two-element slice or array of numbers.
//
// When both ends are integers the draw is a uniform int in [low, high].
// Otherwise it is a uniform float64 in [low, high], rounded to the largest
// number of decimal places found in either end. Malformed ranges log a
// warning and yield 0.
func (s *Sampler) RandomValueFromRange(valueRange interface{}) interface{} {
	lo, hi, ok := numeric.PairOf(valueRange)
	if !ok {
		return s.invalidRange(valueRange)
	}

	if !lo.IsFloat && !hi.IsFloat {
		if lo.Int > hi.Int {
			return s.invalidRange(valueRange)
		}
		span := uint64(hi.Int - lo.Int)
		var offset uint64
		if span == math.MaxUint64 {
			offset = s.uint64()
		} else {
			offset = s.uint64N(span + 1)
		}
		return int(lo.Int + int64(offset))
	}

	a, b := lo.Float64(), hi.Float64()
	if math.IsNaN(a) || math.IsNaN(b) || math.IsInf(a, 0) || math.IsInf(b, 0) {
		return s.invalidRange(valueRange)
	}
	places := max(lo.DecimalPlaces(), hi.DecimalPlaces())
	r := s.float64()
	v := numeric.Round(a*(1-r)+b*r, places)
	return math.Min(math.Max(v, math.Min(a, b)), math.Max(a, b))
}

func (s *Sampler) invalidRange(valueRange interface{}) int {
	s.logger.Warn(fmt.Sprintf("Invalid value range %q. Defaulting to \"0\".", fmt.Sprint(valueRange)))
	return 0
}

// WeightedChoice returns an index drawn with the given relative weights, or
// -1 when no weight is positive. Negative weights count as zero.
func (s *Sampler) WeightedChoice(weights []float64) int {
	var total float64
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total <= 0 || math.IsInf(total, 0) || math.IsNaN(total) {
		return -1
	}

	r := s.float64() * total
	last := -1
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		last = i
		if r < w {
			return i
		}
		r -= w
	}
	return last
}

// NormalizedWeights returns length weights summing to 1 that peak at
// target, a position in [0, 1] mapped onto the indices [0, length-1].
// Weight i is proportional to 1/(1+|i-center|^strength), so a larger
// strength gives a sharper peak. target is clamped to [0, 1]; a
// non-positive length yields an empty slice.
func NormalizedWeights(target float64, length int, strength float64) []float64 {
	if length <= 0 {
		return []float64{}
	}
	if math.IsNaN(target) {
		target = 0
	}
	target = math.Max(0, math.Min(1, target))
	center := target * float64(length-1)

	weights := make([]float64, length)
	var total float64
	for i := range weights {
		weights[i] = 1 / (1 + math.Pow(math.Abs(float64(i)-center), strength))
		total += weights[i]
	}
	for i := range weights {
		weights[i] /= total
	}
	return weights
}

var (
	defaultMu      sync.RWMutex
	defaultSampler = NewSampler(nil, nil)
)

// SetDefault replaces the Sampler used by the package-level functions.
// Passing nil restores a global-source Sampler with no logger.
func SetDefault(s *Sampler) {
	if s == nil {
		s = NewSampler(nil, nil)
	}
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultSampler = s
}

// Default returns the Sampler used by the package-level functions.
func Default() *Sampler {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultSampler
}

// CheckProbability calls CheckProbability on the default Sampler.
func CheckProbability(p float64) bool {
	return Default().CheckProbability(p)
}

// RandomValueFromRange calls RandomValueFromRange on the default Sampler.
func RandomValueFromRange(valueRange interface{}) interface{} {
	return Default().RandomValueFromRange(valueRange)
}

// WeightedChoice calls WeightedChoice on the default Sampler.
func WeightedChoice(weights []float64) int {
	return Default().WeightedChoice(weights)
}
