package ga

import "math"

// OpCode identifies one of the 5 binary arithmetic operators that join the
// terms of an evolved expression together.
type OpCode int

const (
	OpAdd OpCode = iota
	OpSub
	OpMul
	OpDiv
	OpPow
)

// NumOperators is the number of binary operators known to the engine; it is
// also the required length of an opmask string.
const NumOperators = 5

// opSymbols holds the external, human-readable form of each operator, in
// OpCode order.
var opSymbols = [NumOperators]string{"+", "-", "*", "/", "^"}

// Symbol returns the printable glyph for op, e.g. "+" for OpAdd.
func (op OpCode) Symbol() string {
	if op < 0 || int(op) >= NumOperators {
		panic("ga: invalid operator code")
	}
	return opSymbols[op]
}

// precedence returns the binding power of op used by the shunting-yard
// conversion in InfixToPostfix. ADD/SUB share the lowest precedence, MUL/DIV the
// next, POW the highest.
func precedence(op OpCode) int {
	switch op {
	case OpAdd, OpSub:
		return 10
	case OpMul, OpDiv:
		return 20
	case OpPow:
		return 30
	default:
		panic("ga: invalid operator code")
	}
}

// vecAdd, vecSub, vecMul, vecDiv, vecPow apply a binary operator entrywise to
// two equal-length vectors. They mirror the vector operator overloads of the
// original source, which Go has no syntax for.
func vecAdd(lhs, rhs []float64) []float64 {
	out := make([]float64, len(lhs))
	for i := range lhs {
		out[i] = lhs[i] + rhs[i]
	}
	return out
}

func vecSub(lhs, rhs []float64) []float64 {
	out := make([]float64, len(lhs))
	for i := range lhs {
		out[i] = lhs[i] - rhs[i]
	}
	return out
}

func vecMul(lhs, rhs []float64) []float64 {
	out := make([]float64, len(lhs))
	for i := range lhs {
		out[i] = lhs[i] * rhs[i]
	}
	return out
}

func vecDiv(lhs, rhs []float64) []float64 {
	out := make([]float64, len(lhs))
	for i := range lhs {
		out[i] = lhs[i] / rhs[i]
	}
	return out
}

func vecPow(lhs, rhs []float64) []float64 {
	out := make([]float64, len(lhs))
	for i := range lhs {
		out[i] = math.Pow(lhs[i], rhs[i])
	}
	return out
}

// applyOperator performs op entrywise on lhs and rhs, which must have equal
// length.
func applyOperator(lhs, rhs []float64, op OpCode) []float64 {
	switch op {
	case OpAdd:
		return vecAdd(lhs, rhs)
	case OpSub:
		return vecSub(lhs, rhs)
	case OpMul:
		return vecMul(lhs, rhs)
	case OpDiv:
		return vecDiv(lhs, rhs)
	case OpPow:
		return vecPow(lhs, rhs)
	default:
		panic("ga: invalid operator code")
	}
}

// validOpMask reports whether mask is a valid opmask: exactly NumOperators
// characters, each '0' or '1', with at least one '1'.
func validOpMask(mask string) error {
	if len(mask) != NumOperators {
		return errInvalidMaskLength("opmask", NumOperators, len(mask))
	}
	return validMaskChars("opmask", mask)
}

// operatorsFromMask returns the operator codes selected by mask, in
// ascending order.
func operatorsFromMask(mask string) []OpCode {
	ops := make([]OpCode, 0, NumOperators)
	for i := 0; i < len(mask); i++ {
		if mask[i] == '1' {
			ops = append(ops, OpCode(i))
		}
	}
	return ops
}
