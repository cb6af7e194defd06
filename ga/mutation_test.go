package ga

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandomMutateCoeffsRespectsBounds(t *testing.T) {
	bounds := boundsFor(-2, 2)
	rng := NewSource(11)

	for i := 0; i < 100; i++ {
		candidate := NewCandidate(Chromosome{
			{FuncID: FuncConst, Coeffs: [5]float64{100, 100, 100, 100, 100}, OpID: OpAdd},
		})
		RandomMutateCoeffs(rng, &candidate, 1.0, bounds)

		for j := 0; j < CoeffsPerGene; j++ {
			assert.GreaterOrEqual(t, candidate.Chromosome[0].Coeffs[j], bounds[j].Lo)
			assert.LessOrEqual(t, candidate.Chromosome[0].Coeffs[j], bounds[j].Hi)
		}
		assert.False(t, candidate.IsEvaluated)
	}
}

func TestBoundaryMutateCoeffsPicksABound(t *testing.T) {
	bounds := boundsFor(-3, 5)
	rng := NewSource(5)

	candidate := NewCandidate(Chromosome{
		{FuncID: FuncConst, Coeffs: [5]float64{0, 0, 0, 0, 0}, OpID: OpAdd},
	})
	BoundaryMutateCoeffs(rng, &candidate, 1.0, bounds)

	for j := 0; j < CoeffsPerGene; j++ {
		v := candidate.Chromosome[0].Coeffs[j]
		assert.True(t, v == bounds[j].Lo || v == bounds[j].Hi)
	}
}

func TestGaussMutateCoeffsRespectsBounds(t *testing.T) {
	bounds := boundsFor(-1, 1)
	rng := NewSource(3)

	for i := 0; i < 100; i++ {
		candidate := NewCandidate(Chromosome{
			{FuncID: FuncConst, Coeffs: [5]float64{0.9, 0.9, 0.9, 0.9, 0.9}, OpID: OpAdd},
		})
		GaussMutateCoeffs(rng, &candidate, 1.0, bounds, 2.0)

		for j := 0; j < CoeffsPerGene; j++ {
			assert.GreaterOrEqual(t, candidate.Chromosome[0].Coeffs[j], bounds[j].Lo)
			assert.LessOrEqual(t, candidate.Chromosome[0].Coeffs[j], bounds[j].Hi)
		}
	}
}

func TestMutateFormRespectsMasks(t *testing.T) {
	fmask := "1010000000000000000" // FuncConst and FuncPoly only
	opmask := "10100"              // OpAdd and OpMul only
	rng := NewSource(42)

	for i := 0; i < 100; i++ {
		candidate := NewCandidate(Chromosome{
			{FuncID: FuncLinear, OpID: OpSub},
			{FuncID: FuncCos, OpID: OpDiv},
		})
		MutateForm(rng, &candidate, 1.0, fmask, opmask)

		for _, gene := range candidate.Chromosome {
			assert.Contains(t, []FuncID{FuncConst, FuncPoly}, gene.FuncID)
			assert.Contains(t, []OpCode{OpAdd, OpMul}, gene.OpID)
		}
	}
}

func TestMutationLeavesZeroProbabilityUnchanged(t *testing.T) {
	bounds := boundsFor(-10, 10)
	rng := NewSource(9)

	original := Chromosome{
		{FuncID: FuncLinear, Coeffs: [5]float64{1, 2, 3, 4, 5}, OpID: OpSub},
	}
	candidate := NewCandidate(original.Clone())
	candidate.IsEvaluated = true

	RandomMutateCoeffs(rng, &candidate, 0.0, bounds)
	MutateForm(rng, &candidate, 0.0, allOnes(NumBaseFunctions), allOnes(NumOperators))

	assert.Equal(t, original, candidate.Chromosome)
	assert.True(t, candidate.IsEvaluated)
}
