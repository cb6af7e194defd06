package ga

// MutationMethod selects which scheme mutates gene coefficients. The
// function/operator fields of each gene mutate separately, via MutateForm,
// regardless of which method is chosen.
type MutationMethod int

const (
	// RandomMutation replaces a mutated coefficient with a fresh uniform
	// draw from its bound.
	RandomMutation MutationMethod = iota
	// BoundaryMutation replaces a mutated coefficient with one of its two
	// bounds, chosen at random.
	BoundaryMutation
	// GaussMutation perturbs a mutated coefficient by a normally
	// distributed offset, then clamps it back into its bound.
	GaussMutation
)

// RandomMutateCoeffs mutates each coefficient of each gene of child
// independently with probability pm, replacing it with a fresh value drawn
// uniformly from its bound.
func RandomMutateCoeffs(rng Source, child *Candidate, pm float64, bounds Bounds) {
	for g := range child.Chromosome {
		gene := &child.Chromosome[g]
		for i := 0; i < CoeffsPerGene; i++ {
			if rng.Float64() <= pm {
				gene.Coeffs[i] = rng.Range(bounds[i].Lo, bounds[i].Hi)
				child.IsEvaluated = false
			}
		}
	}
}

// BoundaryMutateCoeffs mutates each coefficient of each gene of child
// independently with probability pm, replacing it with one of its two
// bounds, chosen at random.
func BoundaryMutateCoeffs(rng Source, child *Candidate, pm float64, bounds Bounds) {
	for g := range child.Chromosome {
		gene := &child.Chromosome[g]
		for i := 0; i < CoeffsPerGene; i++ {
			if rng.Float64() <= pm {
				if rng.Bool() {
					gene.Coeffs[i] = bounds[i].Lo
				} else {
					gene.Coeffs[i] = bounds[i].Hi
				}
				child.IsEvaluated = false
			}
		}
	}
}

// GaussMutateCoeffs mutates each coefficient of each gene of child
// independently with probability pm, adding a normally distributed offset
// with standard deviation (bound range)/scale, then clamping back into the
// bound.
func GaussMutateCoeffs(rng Source, child *Candidate, pm float64, bounds Bounds, scale float64) {
	for g := range child.Chromosome {
		gene := &child.Chromosome[g]
		for i := 0; i < CoeffsPerGene; i++ {
			if rng.Float64() <= pm {
				sd := (bounds[i].Hi - bounds[i].Lo) / scale
				gene.Coeffs[i] = clamp(gene.Coeffs[i]+rng.Normal(0, sd), bounds[i].Lo, bounds[i].Hi)
				child.IsEvaluated = false
			}
		}
	}
}

// MutateForm mutates the function id and operator of each gene of child
// independently with probability pm. Callers must not invoke MutateForm when
// the run is configured to use a preset function form: the whole point of a
// preset form is that the function/operator sequence never changes.
func MutateForm(rng Source, child *Candidate, pm float64, fmask, opmask string) {
	for g := range child.Chromosome {
		gene := &child.Chromosome[g]
		if rng.Float64() <= pm {
			gene.FuncID = RandomFunc(rng, fmask)
			child.IsEvaluated = false
		}
		if rng.Float64() <= pm {
			gene.OpID = RandomOperator(rng, opmask)
			child.IsEvaluated = false
		}
	}
}
