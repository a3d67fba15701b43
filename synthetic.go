package salescope

import (
	"math"
	"math/rand"
	"sort"
)

// Synthesizer produces rank-preserving synthetic stand-ins for true monetary
// and quantity figures. The relative ordering of the inputs survives (up to
// the noise band); absolute magnitudes do not, and outputs are not reversible
// to the originals. The random source is injected so tests can fix the seed.
type Synthesizer struct {
	rand *rand.Rand
}

// NewSynthesizer returns a Synthesizer drawing noise from the given seed.
func NewSynthesizer(seed int64) *Synthesizer {
	return &Synthesizer{rand: rand.New(rand.NewSource(seed))}
}

// Noise band applied to every synthetic value.
const (
	noiseLow  = 0.85
	noiseHigh = 1.15
)

// Synthesize maps values to [low, high] by dense rank, perturbs each with an
// independent uniform factor in the noise band, and rounds to whole units.
// Ties share a rank. A constant series collapses to a single rank and maps
// to the middle of [low, high] before noise; no division by zero occurs.
func (s *Synthesizer) Synthesize(values []float64, low, high float64) []float64 {
	if len(values) == 0 {
		return nil
	}

	ranks := denseRanks(values)

	minRank, maxRank := ranks[0], ranks[0]
	for _, r := range ranks[1:] {
		if r < minRank {
			minRank = r
		}
		if r > maxRank {
			maxRank = r
		}
	}

	out := make([]float64, len(values))
	for i, r := range ranks {
		var scaled float64
		if maxRank == minRank {
			scaled = (low + high) / 2
		} else {
			scaled = low + (high-low)*float64(r-minRank)/float64(maxRank-minRank)
		}
		noise := noiseLow + s.rand.Float64()*(noiseHigh-noiseLow)
		out[i] = math.Round(scaled * noise)
	}
	return out
}

// denseRanks assigns 1-based dense ranks: equal values share a rank and the
// next distinct value takes the next integer.
func denseRanks(values []float64) []int {
	distinct := make([]float64, 0, len(values))
	seen := make(map[float64]bool, len(values))
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			distinct = append(distinct, v)
		}
	}
	sort.Float64s(distinct)

	rank := make(map[float64]int, len(distinct))
	for i, v := range distinct {
		rank[v] = i + 1
	}

	ranks := make([]int, len(values))
	for i, v := range values {
		ranks[i] = rank[v]
	}
	return ranks
}
