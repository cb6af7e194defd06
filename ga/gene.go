package ga

// Gene is one term of an evolved expression: a base function, its 5 real
// coefficients, and the operator joining it to the next gene in the
// chromosome.
type Gene struct {
	FuncID FuncID
	Coeffs [CoeffsPerGene]float64
	OpID   OpCode
}

// Clone returns a deep copy of g. Coeffs is a fixed-size array so assignment
// already copies it; Clone exists so callers don't need to know that.
func (g Gene) Clone() Gene {
	return g
}

// Chromosome is an ordered sequence of genes. The operator of the last gene
// is dead data: it is carried along so crossover/mutation loops stay
// uniform, but the decoder never consumes it.
type Chromosome []Gene

// Clone returns a deep copy of c.
func (c Chromosome) Clone() Chromosome {
	out := make(Chromosome, len(c))
	copy(out, c)
	return out
}

// Candidate is a chromosome paired with its fitness. Fitness is a
// single-element vector (rather than a scalar) to match the polymorphic
// multi-objective selection interfaces this engine's selection schemes are
// modeled after, even though this engine itself is single-objective.
type Candidate struct {
	Chromosome  Chromosome
	Fitness     [1]float64
	IsEvaluated bool
}

// NewCandidate wraps chrom in a not-yet-evaluated Candidate.
func NewCandidate(chrom Chromosome) Candidate {
	return Candidate{Chromosome: chrom}
}

// Clone returns a deep copy of c, including its chromosome.
func (c Candidate) Clone() Candidate {
	return Candidate{
		Chromosome:  c.Chromosome.Clone(),
		Fitness:     c.Fitness,
		IsEvaluated: c.IsEvaluated,
	}
}

// Invalidate clears the evaluated flag, as required whenever any gene field
// of the candidate is modified.
func (c *Candidate) Invalidate() {
	c.IsEvaluated = false
}
