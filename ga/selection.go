package ga

import (
	"math"
	"sort"
)

// Selector chooses the two parents used to produce one pair of children for
// the next generation. Population must already be evaluated: Select reads
// Candidate.Fitness and never triggers evaluation itself.
type Selector interface {
	Select(population []Candidate, rng Source) []Candidate
}

// RouletteSelector implements fitness-proportionate selection: a candidate's
// chance of being picked is proportional to its fitness.
type RouletteSelector struct{}

func (RouletteSelector) Select(population []Candidate, rng Source) []Candidate {
	weights := make([]float64, len(population))
	for i, c := range population {
		weights[i] = c.Fitness[0]
	}
	return pickTwoWeighted(population, weights, rng)
}

// TournamentSelector implements tournament selection: TournamentSize
// distinct individuals are drawn uniformly at random (without replacement)
// and the fittest of them wins. The process runs twice, independently, to
// pick both parents.
type TournamentSelector struct {
	// TournamentSize is the number of individuals competing in each
	// tournament. Defaults to 2 when <= 0.
	TournamentSize int
}

func (s TournamentSelector) Select(population []Candidate, rng Source) []Candidate {
	size := s.TournamentSize
	if size <= 0 {
		size = 2
	}
	if size > len(population) {
		size = len(population)
	}

	parents := make([]Candidate, 2)
	indices := make([]int, len(population))
	for i := 0; i < 2; i++ {
		for k := range indices {
			indices[k] = k
		}
		best := -1
		for j := 0; j < size; j++ {
			k := j + rng.Intn(len(indices)-j)
			indices[j], indices[k] = indices[k], indices[j]
			if best < 0 || population[indices[j]].Fitness[0] > population[best].Fitness[0] {
				best = indices[j]
			}
		}
		parents[i] = population[best]
	}
	return parents
}

// RankSelector implements rank-based selection: candidates are sorted by
// fitness, and selection weight is assigned by rank (1 for the worst, up to
// len(population) for the best) rather than raw fitness value. This keeps
// selection pressure stable even when fitness values are wildly skewed, e.g.
// by a near-zero error producing a huge 1/error spike.
type RankSelector struct{}

func (RankSelector) Select(population []Candidate, rng Source) []Candidate {
	ranked := make([]Candidate, len(population))
	copy(ranked, population)
	sortByFitnessAscending(ranked)

	weights := make([]float64, len(ranked))
	for i := range ranked {
		weights[i] = float64(i + 1)
	}
	return pickTwoWeighted(ranked, weights, rng)
}

// SigmaSelector implements sigma scaling: fitness values are rescaled around
// the population mean in units of the population standard deviation before
// a fitness-proportionate pick, damping the effect of a single outstanding
// candidate on selection pressure.
type SigmaSelector struct{}

func (SigmaSelector) Select(population []Candidate, rng Source) []Candidate {
	mean, sd := fitnessMeanSD(population)

	weights := make([]float64, len(population))
	for i, c := range population {
		if sd == 0 {
			weights[i] = 1
			continue
		}
		scaled := 1 + (c.Fitness[0]-mean)/(2*sd)
		if scaled < 0 {
			scaled = 0
		}
		weights[i] = scaled
	}
	return pickTwoWeighted(population, weights, rng)
}

// BoltzmannSelector implements Boltzmann selection: fitness values are
// exponentially scaled by a temperature parameter before a
// fitness-proportionate pick. Lower temperatures sharpen selection pressure
// toward the fittest candidates; higher temperatures flatten it toward
// uniform random choice.
type BoltzmannSelector struct {
	// Temperature must be > 0. Defaults to 1 when <= 0.
	Temperature float64
}

func (s BoltzmannSelector) Select(population []Candidate, rng Source) []Candidate {
	temperature := s.Temperature
	if temperature <= 0 {
		temperature = 1
	}

	weights := make([]float64, len(population))
	for i, c := range population {
		weights[i] = math.Exp(c.Fitness[0] / temperature)
	}
	return pickTwoWeighted(population, weights, rng)
}

// pickTwoWeighted draws two candidates independently (with replacement)
// using weights as unnormalized selection probabilities. A population with
// all-zero weights falls back to uniform choice.
func pickTwoWeighted(population []Candidate, weights []float64, rng Source) []Candidate {
	total := 0.0
	for _, w := range weights {
		total += w
	}

	pick := func() Candidate {
		if total <= 0 {
			return population[rng.Intn(len(population))]
		}
		target := rng.Range(0, total)
		var cum float64
		for i, w := range weights {
			cum += w
			if target < cum {
				return population[i]
			}
		}
		return population[len(population)-1]
	}

	return []Candidate{pick(), pick()}
}

// sortByFitnessAscending sorts population in place from worst to best fitness.
func sortByFitnessAscending(population []Candidate) {
	sort.Slice(population, func(i, j int) bool {
		return population[i].Fitness[0] < population[j].Fitness[0]
	})
}

// fitnessMeanSD returns the population mean and population standard
// deviation of the candidates' scalar fitness.
func fitnessMeanSD(population []Candidate) (mean, sd float64) {
	for _, c := range population {
		mean += c.Fitness[0]
	}
	mean /= float64(len(population))

	var variance float64
	for _, c := range population {
		d := c.Fitness[0] - mean
		variance += d * d
	}
	variance /= float64(len(population))

	return mean, math.Sqrt(variance)
}
