package ga

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyOperatorEntrywise(t *testing.T) {
	lhs := []float64{1, 2, 3}
	rhs := []float64{4, 5, 6}

	assert.Equal(t, []float64{5, 7, 9}, applyOperator(lhs, rhs, OpAdd))
	assert.Equal(t, []float64{-3, -3, -3}, applyOperator(lhs, rhs, OpSub))
	assert.Equal(t, []float64{4, 10, 18}, applyOperator(lhs, rhs, OpMul))
	assert.Equal(t, []float64{2.0, 2.0, 2.0}, applyOperator([]float64{2, 4, 6}, []float64{1, 2, 3}, OpDiv))
	assert.Equal(t, []float64{1, 4, 9}, applyOperator([]float64{1, 2, 3}, []float64{1, 2, 2}, OpPow))
}

func TestOperatorSymbol(t *testing.T) {
	assert.Equal(t, "+", OpAdd.Symbol())
	assert.Equal(t, "^", OpPow.Symbol())
}

func TestPrecedenceOrdering(t *testing.T) {
	assert.Less(t, precedence(OpAdd), precedence(OpMul))
	assert.Less(t, precedence(OpMul), precedence(OpPow))
	assert.Equal(t, precedence(OpAdd), precedence(OpSub))
	assert.Equal(t, precedence(OpMul), precedence(OpDiv))
}

func TestValidOpMask(t *testing.T) {
	assert.NoError(t, validOpMask("11111"))
	assert.Error(t, validOpMask("1111"))
	assert.Error(t, validOpMask("00000"))
	assert.Error(t, validOpMask("1111x"))
}

func TestOperatorsFromMask(t *testing.T) {
	ops := operatorsFromMask("10101")
	assert.Equal(t, []OpCode{OpAdd, OpMul, OpPow}, ops)
}
