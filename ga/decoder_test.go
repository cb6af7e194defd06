package ga

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChromosomeToInfixLengthAndAlternation(t *testing.T) {
	chrom := Chromosome{
		{FuncID: FuncLinear, Coeffs: [5]float64{1, 0, 0, 0, 0}, OpID: OpAdd},
		{FuncID: FuncConst, Coeffs: [5]float64{0, 0, 2, 0, 0}, OpID: OpMul},
		{FuncID: FuncCos, Coeffs: [5]float64{1, 1, 0, 0, 0}, OpID: OpAdd},
	}

	infix := ChromosomeToInfix(chrom)
	require.Len(t, infix, 2*len(chrom)-1)

	for i, tok := range infix {
		wantOperand := i%2 == 0
		assert.Equal(t, wantOperand, tok.Tag() == TokenOperand, "token %d tag", i)
	}
	assert.Equal(t, TokenOperand, infix[0].Tag())
	assert.Equal(t, TokenOperand, infix[len(infix)-1].Tag())
}

func TestInfixToPostfixPreservesOperandOrderAndLength(t *testing.T) {
	chrom := Chromosome{
		{FuncID: FuncLinear, OpID: OpAdd},
		{FuncID: FuncConst, OpID: OpMul},
		{FuncID: FuncCos, OpID: OpPow},
		{FuncID: FuncAbs, OpID: OpAdd},
	}
	infix := ChromosomeToInfix(chrom)
	postfix := InfixToPostfix(infix)

	assert.Len(t, postfix, len(infix))

	var infixOperands, postfixOperands []FuncID
	for _, tok := range infix {
		if tok.Tag() == TokenOperand {
			infixOperands = append(infixOperands, tok.FuncID)
		}
	}
	for _, tok := range postfix {
		if tok.Tag() == TokenOperand {
			postfixOperands = append(postfixOperands, tok.FuncID)
		}
	}
	assert.Equal(t, infixOperands, postfixOperands)
}

func TestDecodeRoundTripProducesMatchingLength(t *testing.T) {
	chrom := Chromosome{
		{FuncID: FuncLinear, Coeffs: [5]float64{2, 0, 0, 1, 0}, OpID: OpAdd},
		{FuncID: FuncConst, Coeffs: [5]float64{0, 0, 1, 0, 0}, OpID: OpAdd},
	}
	x := []float64{0, 1, 2, 3, 4}
	fx := Decode(chrom, x)
	assert.Len(t, fx, len(x))
}

// Scenario 1 from the component design notes: a single linear gene 2x+3
// evaluated at x = [0,1,2] yields [3,5,7].
func TestDecodeSingleLinearGene(t *testing.T) {
	chrom := Chromosome{
		{FuncID: FuncLinear, Coeffs: [5]float64{2, 0, 0, 3, 0}, OpID: OpAdd},
	}
	fx := Decode(chrom, []float64{0, 1, 2})
	assert.Equal(t, []float64{3, 5, 7}, fx)
}

// Scenario 2: lin(a=1,d=0) * c(c=2) on x=[4] evaluates to [8].
func TestDecodeLinearTimesConst(t *testing.T) {
	chrom := Chromosome{
		{FuncID: FuncLinear, Coeffs: [5]float64{1, 0, 0, 0, 0}, OpID: OpMul},
		{FuncID: FuncConst, Coeffs: [5]float64{0, 0, 2, 0, 0}, OpID: OpAdd},
	}
	infix := ChromosomeToInfix(chrom)
	postfix := InfixToPostfix(infix)

	require.Equal(t, TokenOperand, postfix[0].Tag())
	require.Equal(t, FuncLinear, postfix[0].FuncID)
	require.Equal(t, TokenOperand, postfix[1].Tag())
	require.Equal(t, FuncConst, postfix[1].FuncID)
	require.Equal(t, TokenOperator, postfix[2].Tag())
	require.Equal(t, OpMul, postfix[2].OpID)

	fx := Decode(chrom, []float64{4})
	assert.Equal(t, []float64{8}, fx)
}

func TestInfixToPostfixLeftAssociativePow(t *testing.T) {
	// a ^ b ^ c should reduce left-associatively: (a^b)^c, i.e. postfix "a b ^ c ^".
	infix := []Token{
		OperandToken(FuncConst, [5]float64{}),
		OperatorToken(OpPow),
		OperandToken(FuncConst, [5]float64{}),
		OperatorToken(OpPow),
		OperandToken(FuncConst, [5]float64{}),
	}
	postfix := InfixToPostfix(infix)
	require.Len(t, postfix, 5)
	assert.Equal(t, TokenOperand, postfix[0].Tag())
	assert.Equal(t, TokenOperand, postfix[1].Tag())
	assert.Equal(t, TokenOperator, postfix[2].Tag())
	assert.Equal(t, TokenOperand, postfix[3].Tag())
	assert.Equal(t, TokenOperator, postfix[4].Tag())
}

func TestChromosomeToInfixPanicsOnEmptyChromosome(t *testing.T) {
	assert.Panics(t, func() {
		ChromosomeToInfix(Chromosome{})
	})
}
