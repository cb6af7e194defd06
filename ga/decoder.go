package ga

// ChromosomeToInfix converts chrom to its infix token sequence: an operand
// followed by an operator for every gene but the last, then a final
// trailing operand. The operator of the last gene is dead data and is never
// emitted. The result has length 2*len(chrom) - 1.
func ChromosomeToInfix(chrom Chromosome) []Token {
	if len(chrom) == 0 {
		panic("ga: chromosome must have at least one gene")
	}

	infix := make([]Token, 0, 2*len(chrom)-1)
	for i := 0; i < len(chrom)-1; i++ {
		infix = append(infix, OperandToken(chrom[i].FuncID, chrom[i].Coeffs))
		infix = append(infix, OperatorToken(chrom[i].OpID))
	}
	last := chrom[len(chrom)-1]
	infix = append(infix, OperandToken(last.FuncID, last.Coeffs))

	return infix
}

// InfixToPostfix converts an infix token sequence to postfix using a
// shunting-yard algorithm with a single operator stack. Every operator is
// treated as left-associative, including POW: an incoming operator pops any
// stacked operator whose precedence is greater than OR EQUAL to its own
// (">=", not ">"). This is a deliberate property of the engine, not a bug -
// it makes exponentiation left-associative, unlike the usual mathematical
// convention.
func InfixToPostfix(infix []Token) []Token {
	postfix := make([]Token, 0, len(infix))
	var opStack []Token

	for _, tok := range infix {
		switch tok.Tag() {
		case TokenOperand:
			postfix = append(postfix, tok)
		case TokenOperator:
			for len(opStack) > 0 && precedence(opStack[len(opStack)-1].OpID) >= precedence(tok.OpID) {
				top := opStack[len(opStack)-1]
				opStack = opStack[:len(opStack)-1]
				postfix = append(postfix, top)
			}
			opStack = append(opStack, tok)
		default:
			panic("ga: invalid token kind")
		}
	}
	for len(opStack) > 0 {
		top := opStack[len(opStack)-1]
		opStack = opStack[:len(opStack)-1]
		postfix = append(postfix, top)
	}

	return postfix
}

// EvalPostfix evaluates the postfix expression postfixExpr at every point in
// x, using a stack of intermediate vectors. Operand tokens evaluate their
// base function entrywise over x; operator tokens pop two vectors (the rhs
// is popped first, matching infix evaluation order) and push their entrywise
// result. Exactly one vector must remain on the stack at the end.
func EvalPostfix(postfixExpr []Token, x []float64) []float64 {
	var stack [][]float64

	for _, tok := range postfixExpr {
		switch tok.Tag() {
		case TokenOperand:
			stack = append(stack, evalToken(tok, x))
		case TokenOperator:
			if len(stack) < 2 {
				panic("ga: postfix expression is malformed: operator stack underflow")
			}
			rhs := stack[len(stack)-1]
			lhs := stack[len(stack)-2]
			stack = stack[:len(stack)-2]
			stack = append(stack, applyOperator(lhs, rhs, tok.OpID))
		default:
			panic("ga: invalid token kind")
		}
	}

	if len(stack) != 1 {
		panic("ga: postfix expression did not reduce to a single result")
	}
	return stack[0]
}

// evalToken evaluates a single operand token over x by dispatching to its
// base function in the shared table.
func evalToken(tok Token, x []float64) []float64 {
	if int(tok.FuncID) < 0 || int(tok.FuncID) >= NumBaseFunctions {
		panic("ga: invalid base function id")
	}
	return baseFunctions[tok.FuncID](x, tok.Coeffs)
}

// Decode runs the full chromosome -> infix -> postfix -> values pipeline,
// evaluating the expression encoded by chrom at every point in x.
func Decode(chrom Chromosome, x []float64) []float64 {
	infix := ChromosomeToInfix(chrom)
	postfix := InfixToPostfix(infix)
	return EvalPostfix(postfix, x)
}
