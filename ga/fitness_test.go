package ga

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMetricIdentities(t *testing.T) {
	a := []float64{1, 2, 3, 4}

	assert.Equal(t, 0.0, meanSquareError(a, a))
	assert.Equal(t, 0.0, meanAbsoluteError(a, a))
	assert.Equal(t, 0.0, maxAbsoluteError(a, a))
}

// Scenario 1: a perfect fit (LS = 0). The actual-vs-desired arrays are
// identical, so the error is exactly 0 and, since 1/0 is not guarded, the
// fitness is +Inf (not 0 and not NaN).
func TestFitnessOfPerfectFitIsUnguardedInf(t *testing.T) {
	chrom := Chromosome{
		{FuncID: FuncLinear, Coeffs: [5]float64{2, 0, 0, 3, 0}, OpID: OpAdd},
	}
	ff, err := NewFitnessFunc([]float64{0, 1, 2}, []float64{3, 5, 7}, LS)
	require.NoError(t, err)

	fitness := ff.Evaluate(chrom)
	assert.True(t, math.IsInf(fitness[0], 1))
}

func TestFitnessIsZeroWhenErrorIsNaN(t *testing.T) {
	// arcsin evaluated entirely outside its domain [-1, 1] produces
	// NaN everywhere; the resulting error metric is NaN, which must map to
	// fitness 0 rather than propagating.
	chrom := Chromosome{
		{FuncID: FuncArcsin, Coeffs: [5]float64{1, 1, 0, 0, 0}, OpID: OpAdd},
	}
	ff, err := NewFitnessFunc([]float64{10, 20, 30}, []float64{0, 0, 0}, LS)
	require.NoError(t, err)

	fitness := ff.Evaluate(chrom)
	assert.Equal(t, 0.0, fitness[0])
}

func TestNewFitnessFuncRejectsMismatchedLengths(t *testing.T) {
	_, err := NewFitnessFunc([]float64{1, 2}, []float64{1}, LS)
	assert.Error(t, err)
}

func TestRMSEIsSqrtOfLS(t *testing.T) {
	chrom := Chromosome{
		{FuncID: FuncLinear, Coeffs: [5]float64{1, 0, 0, 0, 0}, OpID: OpAdd},
	}
	x := []float64{0, 1, 2, 3}
	y := []float64{0.5, 1.5, 1.5, 4.5}

	lsFunc, err := NewFitnessFunc(x, y, LS)
	require.NoError(t, err)
	rmseFunc, err := NewFitnessFunc(x, y, RMSE)
	require.NoError(t, err)

	lsFitness := lsFunc.Evaluate(chrom)
	rmseFitness := rmseFunc.Evaluate(chrom)

	lsError := 1 / lsFitness[0]
	rmseError := 1 / rmseFitness[0]

	assert.InDelta(t, math.Sqrt(lsError), rmseError, 1e-9)
}
