package ga

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateRandomCandidateRespectsMasksAndBounds(t *testing.T) {
	fmask := "1010000000000000000"
	opmask := "10100"
	bounds := boundsFor(-5, 5)
	rng := NewSource(123)

	for i := 0; i < 20; i++ {
		candidate := GenerateRandomCandidate(rng, 6, bounds, fmask, opmask)
		assert.Len(t, candidate.Chromosome, 6)
		assert.False(t, candidate.IsEvaluated)

		for _, gene := range candidate.Chromosome {
			assert.Contains(t, []FuncID{FuncConst, FuncPoly}, gene.FuncID)
			assert.Contains(t, []OpCode{OpAdd, OpMul}, gene.OpID)
			for j := 0; j < CoeffsPerGene; j++ {
				assert.GreaterOrEqual(t, gene.Coeffs[j], bounds[j].Lo)
				assert.LessOrEqual(t, gene.Coeffs[j], bounds[j].Hi)
			}
		}
	}
}

func TestRandomFuncOnlyReturnsMaskedIds(t *testing.T) {
	fmask := allOnes(NumBaseFunctions)
	rng := NewSource(1)
	for i := 0; i < 50; i++ {
		fid := RandomFunc(rng, fmask)
		assert.GreaterOrEqual(t, int(fid), 0)
		assert.Less(t, int(fid), NumBaseFunctions)
	}
}

func TestRandomOperatorOnlyReturnsMaskedIds(t *testing.T) {
	opmask := "00100" // only OpMul
	rng := NewSource(1)
	for i := 0; i < 20; i++ {
		assert.Equal(t, OpMul, RandomOperator(rng, opmask))
	}
}
