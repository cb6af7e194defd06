package ga

import (
	"strconv"
	"strings"
)

// printerTable mirrors baseFunctions in basefunctions.go 1:1: printerTable[i]
// renders the same base function that baseFunctions[i] evaluates.
var printerTable [NumBaseFunctions]func(coeffs [CoeffsPerGene]float64) string

func init() {
	printerTable = [NumBaseFunctions]func(coeffs [CoeffsPerGene]float64) string{
		FuncConst:      printConst,
		FuncLinear:     printLinear,
		FuncPoly:       printPoly,
		FuncReciprocal: printRec,
		FuncRoot:       printRoot,
		FuncExp:        printExp,
		FuncLog:        printLog,
		FuncAbs:        printAbs,
		FuncSign:       printSign,
		FuncCos:        printCos,
		FuncArcsin:     printArcsin,
		FuncArctan:     printArctan,
		FuncArcsec:     printArcsec,
		FuncArsinh:     printArsinh,
		FuncArcosh:     printArcosh,
		FuncArtanh:     printArtanh,
		FuncArctgh:     printArctgh,
		FuncArsech:     printArsech,
		FuncArcsch:     printArcsch,
	}
}

// Print renders an infix token sequence (as produced by ChromosomeToInfix)
// as a human-readable expression string.
func Print(infix []Token) string {
	var sb strings.Builder
	for _, tok := range infix {
		switch tok.Tag() {
		case TokenOperand:
			sb.WriteString(printerTable[tok.FuncID](tok.Coeffs))
		case TokenOperator:
			sb.WriteString(tok.OpID.Symbol())
		default:
			panic("ga: invalid token kind")
		}
	}
	return sb.String()
}

// sig3 formats v to 3 significant figures, matching std::setprecision(3) in
// the default floating-point notation.
func sig3(v float64) string {
	return strconv.FormatFloat(v, 'g', 3, 64)
}

// sign returns "+" for non-negative num and "" for negative num, so callers
// can write sign(c)+sig3(c) and get an explicit sign only for positives
// (sig3 of a negative number already carries its own "-").
func sign(num float64) string {
	if num < 0 {
		return ""
	}
	return "+"
}

func printConst(c [CoeffsPerGene]float64) string {
	return "[" + sig3(c[coeffC]) + "]"
}

func printLinear(c [CoeffsPerGene]float64) string {
	return "[" + sig3(c[coeffA]) + "x" + sign(c[coeffD]) + sig3(c[coeffD]) + "]"
}

func printPoly(c [CoeffsPerGene]float64) string {
	return "[" + sig3(c[coeffA]) + "x^" + sig3(c[coeffN]) + sign(c[coeffD]) + sig3(c[coeffD]) + "]"
}

func printRec(c [CoeffsPerGene]float64) string {
	return "[" + sig3(c[coeffA]) + "/(" + sig3(c[coeffB]) + "x" + sign(c[coeffC]) + sig3(c[coeffC]) + ")^" + sig3(c[coeffN]) + sign(c[coeffD]) + sig3(c[coeffD]) + "]"
}

func printRoot(c [CoeffsPerGene]float64) string {
	return "[" + sig3(c[coeffA]) + "(" + sig3(c[coeffB]) + "x" + sign(c[coeffC]) + sig3(c[coeffC]) + ")^" + sig3(1/c[coeffN]) + sign(c[coeffD]) + sig3(c[coeffD]) + "]"
}

func printExp(c [CoeffsPerGene]float64) string {
	return "[" + sig3(c[coeffA]) + "e^(" + sig3(c[coeffB]) + "x" + sign(c[coeffC]) + sig3(c[coeffC]) + ")" + sign(c[coeffD]) + sig3(c[coeffD]) + "]"
}

func printLog(c [CoeffsPerGene]float64) string {
	return "[" + sig3(c[coeffA]) + " ln(" + sig3(c[coeffB]) + "x" + sign(c[coeffC]) + sig3(c[coeffC]) + ")" + sign(c[coeffD]) + sig3(c[coeffD]) + "]"
}

func printAbs(c [CoeffsPerGene]float64) string {
	return "[" + sig3(c[coeffA]) + "|x" + sign(c[coeffC]) + sig3(c[coeffC]) + "|" + sign(c[coeffD]) + sig3(c[coeffD]) + "]"
}

// printSign prints the step as sgn(x-c), matching evalSign's comparison
// against x - c.
func printSign(c [CoeffsPerGene]float64) string {
	shift := 0 - c[coeffC]
	return "[" + sig3(c[coeffA]) + "sgn(x" + sign(shift) + sig3(shift) + ")" + sign(c[coeffD]) + sig3(c[coeffD]) + "]"
}

func printCos(c [CoeffsPerGene]float64) string {
	return "[" + sig3(c[coeffA]) + "cos(" + sig3(c[coeffB]) + "x" + sign(c[coeffC]) + sig3(c[coeffC]) + ")" + sign(c[coeffD]) + sig3(c[coeffD]) + "]"
}

func printArcsin(c [CoeffsPerGene]float64) string {
	return "[" + sig3(c[coeffA]) + "arcsin(" + sig3(c[coeffB]) + "x" + sign(c[coeffC]) + sig3(c[coeffC]) + ")" + sign(c[coeffD]) + sig3(c[coeffD]) + "]"
}

func printArctan(c [CoeffsPerGene]float64) string {
	return "[" + sig3(c[coeffA]) + "arctan(" + sig3(c[coeffB]) + "x" + sign(c[coeffC]) + sig3(c[coeffC]) + ")" + sign(c[coeffD]) + sig3(c[coeffD]) + "]"
}

func printArcsec(c [CoeffsPerGene]float64) string {
	return "[" + sig3(c[coeffA]) + "arcsec(" + sig3(c[coeffB]) + "x" + sign(c[coeffC]) + sig3(c[coeffC]) + ")" + sign(c[coeffD]) + sig3(c[coeffD]) + "]"
}

func printArsinh(c [CoeffsPerGene]float64) string {
	return "[" + sig3(c[coeffA]) + "arsh(" + sig3(c[coeffB]) + "x" + sign(c[coeffC]) + sig3(c[coeffC]) + ")" + sign(c[coeffD]) + sig3(c[coeffD]) + "]"
}

func printArcosh(c [CoeffsPerGene]float64) string {
	return "[" + sig3(c[coeffA]) + "arch(" + sig3(c[coeffB]) + "x" + sign(c[coeffC]) + sig3(c[coeffC]) + ")" + sign(c[coeffD]) + sig3(c[coeffD]) + "]"
}

// printArtanh mirrors evalArtanh's preserved b*x*c quirk: the printed form
// shows the same multiplication the evaluator actually computes, not the
// addition the function name would suggest.
func printArtanh(c [CoeffsPerGene]float64) string {
	return "[" + sig3(c[coeffA]) + "arth(" + sig3(c[coeffB]) + "x*" + sig3(c[coeffC]) + ")" + sign(c[coeffD]) + sig3(c[coeffD]) + "]"
}

func printArctgh(c [CoeffsPerGene]float64) string {
	return "[" + sig3(c[coeffA]) + "arctgh(" + sig3(c[coeffB]) + "x" + sign(c[coeffC]) + sig3(c[coeffC]) + ")" + sign(c[coeffD]) + sig3(c[coeffD]) + "]"
}

func printArsech(c [CoeffsPerGene]float64) string {
	return "[" + sig3(c[coeffA]) + "arsech(" + sig3(c[coeffB]) + "x" + sign(c[coeffC]) + sig3(c[coeffC]) + ")" + sign(c[coeffD]) + sig3(c[coeffD]) + "]"
}

func printArcsch(c [CoeffsPerGene]float64) string {
	return "[" + sig3(c[coeffA]) + "arcsch(" + sig3(c[coeffB]) + "x" + sign(c[coeffC]) + sig3(c[coeffC]) + ")" + sign(c[coeffD]) + sig3(c[coeffD]) + "]"
}
