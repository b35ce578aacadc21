package generator

import (
	"math"
	"strings"
	"time"
)

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

func clip(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}

// score draws N(mean, sd), clipped to [1,10] and rounded to one decimal.
func (g *Generator) score(mean, sd float64) float64 {
	return round1(clip(g.rand.NormFloat64()*sd+mean, 1, 10))
}

func (g *Generator) logNormal(mean, sigma float64) float64 {
	return math.Exp(mean + sigma*g.rand.NormFloat64())
}

func (g *Generator) uniform(lo, hi float64) float64 {
	return lo + g.rand.Float64()*(hi-lo)
}

// intBetween returns an integer in [lo, hi].
func (g *Generator) intBetween(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + g.rand.Intn(hi-lo+1)
}

func (g *Generator) chance(p float64) bool {
	return g.rand.Float64() < p
}

func (g *Generator) choice(items []string) string {
	if len(items) == 0 {
		return ""
	}
	return items[g.rand.Intn(len(items))]
}

// weighted returns an index drawn with the given relative weights.
func (g *Generator) weighted(weights []float64) int {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		return g.rand.Intn(len(weights))
	}
	r := g.rand.Float64() * total
	for i, w := range weights {
		if r < w {
			return i
		}
		r -= w
	}
	return len(weights) - 1
}

func (g *Generator) weightedChoice(items []string, weights []float64) string {
	if len(weights) != len(items) {
		return g.choice(items)
	}
	return items[g.weighted(weights)]
}

// sample picks k distinct items; k is clamped to the pool size.
func (g *Generator) sample(items []string, k int) []string {
	if k > len(items) {
		k = len(items)
	}
	if k <= 0 {
		return []string{}
	}
	perm := g.rand.Perm(len(items))
	out := make([]string, k)
	for i := 0; i < k; i++ {
		out[i] = items[perm[i]]
	}
	return out
}

func (g *Generator) shuffle(items []string) {
	g.rand.Shuffle(len(items), func(i, j int) { items[i], items[j] = items[j], items[i] })
}

// evenlySpaced returns periods instants from start to end inclusive.
func evenlySpaced(start, end time.Time, periods int) []time.Time {
	if periods <= 0 {
		return nil
	}
	if periods == 1 {
		return []time.Time{start}
	}
	step := end.Sub(start) / time.Duration(periods-1)
	out := make([]time.Time, periods)
	for i := range out {
		out[i] = start.Add(step * time.Duration(i))
	}
	out[periods-1] = end
	return out
}

func firstWords(s string, n int) string {
	words := strings.Fields(s)
	if len(words) > n {
		words = words[:n]
	}
	return strings.Join(words, " ")
}
