package ga

import "math"

// CrossoverMethod selects which real-coded recombination scheme is applied
// to gene coefficients. The function/operator fields of each gene always
// recombine by uniform crossover, regardless of which method is chosen.
type CrossoverMethod int

const (
	// BLXAlpha is BLX-alpha crossover.
	BLXAlpha CrossoverMethod = iota
	// SimulatedBinary is simulated binary (SBX) crossover.
	SimulatedBinary
	// Wright is Wright's heuristic crossover.
	Wright
)

// BLXAlphaCrossover recombines parent1 and parent2 with probability pc. When
// it fires, each coefficient of each gene is resampled uniformly from the
// interval [min, max] of the two parents' values extended by alpha times
// their range on both ends, then clamped to bounds. The function/operator
// fields of each gene then recombine by uniform crossover, which can trade
// the two children's blended coefficients for that gene along with the
// function id. When crossover doesn't fire, the children are exact copies of
// the parents.
func BLXAlphaCrossover(rng Source, parent1, parent2 Candidate, pc, alpha float64, bounds Bounds) (Candidate, Candidate) {
	child1, child2 := parent1.Clone(), parent2.Clone()

	if rng.Float64() > pc {
		return child1, child2
	}

	for i := range child1.Chromosome {
		for j := 0; j < CoeffsPerGene; j++ {
			lo, hi := parent1.Chromosome[i].Coeffs[j], parent2.Chromosome[i].Coeffs[j]
			if lo > hi {
				lo, hi = hi, lo
			}
			ext := alpha * (hi - lo)

			child1.Chromosome[i].Coeffs[j] = clamp(rng.Range(lo-ext, hi+ext), bounds[j].Lo, bounds[j].Hi)
			child2.Chromosome[i].Coeffs[j] = clamp(rng.Range(lo-ext, hi+ext), bounds[j].Lo, bounds[j].Hi)
		}

		uniformSwapGeneForm(rng, &child1.Chromosome[i], &child2.Chromosome[i])
	}

	child1.Invalidate()
	child2.Invalidate()

	return child1, child2
}

// SimulatedBinaryCrossover recombines parent1 and parent2 with probability
// pc using simulated binary crossover with spread parameter eta. The
// function/operator fields of each gene then recombine by uniform crossover.
func SimulatedBinaryCrossover(rng Source, parent1, parent2 Candidate, pc, eta float64, bounds Bounds) (Candidate, Candidate) {
	child1, child2 := parent1.Clone(), parent2.Clone()

	if rng.Float64() > pc {
		return child1, child2
	}

	u := rng.Float64()
	var beta float64
	if u <= 0.5 {
		beta = math.Pow(2*u, 1/(eta+1))
	} else {
		beta = math.Pow(1/(2*(1-u)), 1/(eta+1))
	}

	for i := range child1.Chromosome {
		for j := 0; j < CoeffsPerGene; j++ {
			a, b := parent1.Chromosome[i].Coeffs[j], parent2.Chromosome[i].Coeffs[j]

			child1.Chromosome[i].Coeffs[j] = clamp(0.5*((1-beta)*a+(1+beta)*b), bounds[j].Lo, bounds[j].Hi)
			child2.Chromosome[i].Coeffs[j] = clamp(0.5*((1+beta)*a+(1-beta)*b), bounds[j].Lo, bounds[j].Hi)
		}

		uniformSwapGeneForm(rng, &child1.Chromosome[i], &child2.Chromosome[i])
	}

	child1.Invalidate()
	child2.Invalidate()

	return child1, child2
}

// WrightCrossover recombines parent1 and parent2 with probability pc using
// Wright's heuristic crossover, which biases both children toward the
// fitter parent. It is only meaningful for single-objective fitness, which
// matches this engine since Candidate.Fitness always has one element. The
// function/operator fields of each gene then recombine by uniform crossover.
func WrightCrossover(rng Source, parent1, parent2 Candidate, pc float64, bounds Bounds) (Candidate, Candidate) {
	child1, child2 := parent1.Clone(), parent2.Clone()

	if rng.Float64() > pc {
		return child1, child2
	}

	// On an exact fitness tie, parent2 is treated as the better parent,
	// matching the source's ternary (it favors parent2 whenever parent1 is
	// not strictly fitter).
	better, worse := &parent2, &parent1
	if parent1.Fitness[0] > parent2.Fitness[0] {
		better, worse = &parent1, &parent2
	}
	w1, w2 := rng.Float64(), rng.Float64()

	for i := range child1.Chromosome {
		for j := 0; j < CoeffsPerGene; j++ {
			diff := better.Chromosome[i].Coeffs[j] - worse.Chromosome[i].Coeffs[j]

			child1.Chromosome[i].Coeffs[j] = clamp(w1*diff+better.Chromosome[i].Coeffs[j], bounds[j].Lo, bounds[j].Hi)
			child2.Chromosome[i].Coeffs[j] = clamp(w2*diff+better.Chromosome[i].Coeffs[j], bounds[j].Lo, bounds[j].Hi)
		}

		uniformSwapGeneForm(rng, &child1.Chromosome[i], &child2.Chromosome[i])
	}

	child1.Invalidate()
	child2.Invalidate()

	return child1, child2
}

// uniformSwapGeneForm performs the combinatorial half of crossover shared by
// all three real-coded schemes: independently with probability 1/2, child1
// and child2 trade (FuncID, Coeffs) as a pair, and independently with
// probability 1/2 they trade OpID. The traded coefficients are the ones the
// real-coded crossover just wrote (already clamped), so both children stay
// within bounds.
func uniformSwapGeneForm(rng Source, child1Gene, child2Gene *Gene) {
	if rng.Bool() {
		child1Gene.FuncID, child2Gene.FuncID = child2Gene.FuncID, child1Gene.FuncID
		child1Gene.Coeffs, child2Gene.Coeffs = child2Gene.Coeffs, child1Gene.Coeffs
	}
	if rng.Bool() {
		child1Gene.OpID, child2Gene.OpID = child2Gene.OpID, child1Gene.OpID
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
