package ga

import "math"

// FuncID indexes into the fixed library of 19 base functions. The order
// below is part of the wire format: fmask bit positions and preset-form
// indices both refer to it, so it must never be reordered.
type FuncID int

const (
	FuncConst FuncID = iota
	FuncLinear
	FuncPoly
	FuncReciprocal
	FuncRoot
	FuncExp
	FuncLog
	FuncAbs
	FuncSign
	FuncCos
	FuncArcsin
	FuncArctan
	FuncArcsec
	FuncArsinh
	FuncArcosh
	FuncArtanh
	FuncArctgh
	FuncArsech
	FuncArcsch
)

// NumBaseFunctions is the size of the base-function library; it is also the
// required length of an fmask string.
const NumBaseFunctions = 19

// CoeffsPerGene is the number of real-valued coefficients every gene
// carries, conventionally labelled a, b, c, d, n.
const CoeffsPerGene = 5

// Coefficient slot indices within a gene's 5-element coeffs array.
const (
	coeffA = 0
	coeffB = 1
	coeffC = 2
	coeffD = 3
	coeffN = 4
)

// baseFunction is the shared signature of all 19 base functions: evaluate
// entrywise over x using the 5 coefficients in coeffs, producing a vector of
// the same length as x.
type baseFunction func(x []float64, coeffs [CoeffsPerGene]float64) []float64

// baseFunctions is the indexable table of all base functions, in FuncID
// order. printerTable in printer.go mirrors this table 1:1 so the two never
// drift apart.
var baseFunctions = [NumBaseFunctions]baseFunction{
	evalConst,
	evalLinear,
	evalPoly,
	evalReciprocal,
	evalRoot,
	evalExp,
	evalLog,
	evalAbs,
	evalSign,
	evalCos,
	evalArcsin,
	evalArctan,
	evalArcsec,
	evalArsinh,
	evalArcosh,
	evalArtanh,
	evalArctgh,
	evalArsech,
	evalArcsch,
}

// evalConst computes f(x) = c.
func evalConst(x []float64, coeffs [CoeffsPerGene]float64) []float64 {
	fx := make([]float64, len(x))
	for i := range fx {
		fx[i] = coeffs[coeffC]
	}
	return fx
}

// evalLinear computes f(x) = a*x + d.
func evalLinear(x []float64, coeffs [CoeffsPerGene]float64) []float64 {
	fx := make([]float64, len(x))
	for i, xi := range x {
		fx[i] = coeffs[coeffA]*xi + coeffs[coeffD]
	}
	return fx
}

// evalPoly computes f(x) = a*x^n + d.
func evalPoly(x []float64, coeffs [CoeffsPerGene]float64) []float64 {
	fx := make([]float64, len(x))
	for i, xi := range x {
		fx[i] = coeffs[coeffA]*math.Pow(xi, coeffs[coeffN]) + coeffs[coeffD]
	}
	return fx
}

// evalReciprocal computes f(x) = a/(b*x + c)^n + d.
func evalReciprocal(x []float64, coeffs [CoeffsPerGene]float64) []float64 {
	fx := make([]float64, len(x))
	for i, xi := range x {
		fx[i] = coeffs[coeffA]/math.Pow(coeffs[coeffB]*xi+coeffs[coeffC], coeffs[coeffN]) + coeffs[coeffD]
	}
	return fx
}

// evalRoot computes f(x) = a*(b*x + c)^(1/n) + d.
func evalRoot(x []float64, coeffs [CoeffsPerGene]float64) []float64 {
	fx := make([]float64, len(x))
	for i, xi := range x {
		fx[i] = coeffs[coeffA]*math.Pow(coeffs[coeffB]*xi+coeffs[coeffC], 1.0/coeffs[coeffN]) + coeffs[coeffD]
	}
	return fx
}

// evalExp computes f(x) = a*exp(b*x + c) + d.
func evalExp(x []float64, coeffs [CoeffsPerGene]float64) []float64 {
	fx := make([]float64, len(x))
	for i, xi := range x {
		fx[i] = coeffs[coeffA]*math.Exp(coeffs[coeffB]*xi+coeffs[coeffC]) + coeffs[coeffD]
	}
	return fx
}

// evalLog computes f(x) = a*ln(b*x + c) + d, valid where b*x + c > 0.
func evalLog(x []float64, coeffs [CoeffsPerGene]float64) []float64 {
	fx := make([]float64, len(x))
	for i, xi := range x {
		fx[i] = coeffs[coeffA]*math.Log(coeffs[coeffB]*xi+coeffs[coeffC]) + coeffs[coeffD]
	}
	return fx
}

// evalAbs computes f(x) = a*|x + c| + d.
func evalAbs(x []float64, coeffs [CoeffsPerGene]float64) []float64 {
	fx := make([]float64, len(x))
	for i, xi := range x {
		fx[i] = coeffs[coeffA]*math.Abs(xi+coeffs[coeffC]) + coeffs[coeffD]
	}
	return fx
}

// evalSign computes a step at x = c, piecewise: d below c, a/2+d at c, a+d
// above c. Note the comparison is against x - c, not x + c, matching the
// original source.
func evalSign(x []float64, coeffs [CoeffsPerGene]float64) []float64 {
	fx := make([]float64, len(x))
	for i, xi := range x {
		switch {
		case xi-coeffs[coeffC] < 0:
			fx[i] = coeffs[coeffD]
		case xi-coeffs[coeffC] == 0:
			fx[i] = coeffs[coeffA]/2 + coeffs[coeffD]
		default:
			fx[i] = coeffs[coeffA] + coeffs[coeffD]
		}
	}
	return fx
}

// evalCos computes f(x) = a*cos(b*x + c) + d.
func evalCos(x []float64, coeffs [CoeffsPerGene]float64) []float64 {
	fx := make([]float64, len(x))
	for i, xi := range x {
		fx[i] = coeffs[coeffA]*math.Cos(coeffs[coeffB]*xi+coeffs[coeffC]) + coeffs[coeffD]
	}
	return fx
}

// evalArcsin computes f(x) = a*arcsin(b*x + c) + d, valid for -1 <= b*x+c <= 1.
func evalArcsin(x []float64, coeffs [CoeffsPerGene]float64) []float64 {
	fx := make([]float64, len(x))
	for i, xi := range x {
		fx[i] = coeffs[coeffA]*math.Asin(coeffs[coeffB]*xi+coeffs[coeffC]) + coeffs[coeffD]
	}
	return fx
}

// evalArctan computes f(x) = a*arctan(b*x + c) + d.
func evalArctan(x []float64, coeffs [CoeffsPerGene]float64) []float64 {
	fx := make([]float64, len(x))
	for i, xi := range x {
		fx[i] = coeffs[coeffA]*math.Atan(coeffs[coeffB]*xi+coeffs[coeffC]) + coeffs[coeffD]
	}
	return fx
}

// evalArcsec computes f(x) = a*arcsec(b*x + c) + d = a*acos(1/(b*x + c)) + d,
// valid for b*x + c >= 1 or <= -1.
func evalArcsec(x []float64, coeffs [CoeffsPerGene]float64) []float64 {
	fx := make([]float64, len(x))
	for i, xi := range x {
		fx[i] = coeffs[coeffA]*math.Acos(1.0/(coeffs[coeffB]*xi+coeffs[coeffC])) + coeffs[coeffD]
	}
	return fx
}

// evalArsinh computes f(x) = a*arsinh(b*x + c) + d.
func evalArsinh(x []float64, coeffs [CoeffsPerGene]float64) []float64 {
	fx := make([]float64, len(x))
	for i, xi := range x {
		fx[i] = coeffs[coeffA]*math.Asinh(coeffs[coeffB]*xi+coeffs[coeffC]) + coeffs[coeffD]
	}
	return fx
}

// evalArcosh computes f(x) = a*arcosh(b*x + c) + d, valid for b*x + c >= 1.
func evalArcosh(x []float64, coeffs [CoeffsPerGene]float64) []float64 {
	fx := make([]float64, len(x))
	for i, xi := range x {
		fx[i] = coeffs[coeffA]*math.Acosh(coeffs[coeffB]*xi+coeffs[coeffC]) + coeffs[coeffD]
	}
	return fx
}

// evalArtanh computes f(x) = a*artanh(b*x*c) + d, valid for -1 < b*x*c < 1.
//
// The formula multiplies c rather than adding it, matching the source this
// engine was ported from (arctanh(b*x*c) instead of arctanh(b*x + c)). This
// looks like a bug in the original, but it is reproduced deliberately rather
// than silently "fixed" - changing it would change what this base function
// can fit.
func evalArtanh(x []float64, coeffs [CoeffsPerGene]float64) []float64 {
	fx := make([]float64, len(x))
	for i, xi := range x {
		fx[i] = coeffs[coeffA]*math.Atanh(coeffs[coeffB]*xi*coeffs[coeffC]) + coeffs[coeffD]
	}
	return fx
}

// evalArctgh computes f(x) = (a/2)*ln((b*x + c + 1)/(b*x + c - 1)) + d,
// valid for b*x + c < -1 or > 1.
func evalArctgh(x []float64, coeffs [CoeffsPerGene]float64) []float64 {
	fx := make([]float64, len(x))
	for i, xi := range x {
		u := coeffs[coeffB]*xi + coeffs[coeffC]
		fx[i] = coeffs[coeffA]/2.0*math.Log((u+1.0)/(u-1.0)) + coeffs[coeffD]
	}
	return fx
}

// evalArsech computes f(x) = a*ln((1 + sqrt(1 - u^2))/u) + d, u = b*x+c,
// valid for 0 < u <= 1.
func evalArsech(x []float64, coeffs [CoeffsPerGene]float64) []float64 {
	fx := make([]float64, len(x))
	for i, xi := range x {
		u := coeffs[coeffB]*xi + coeffs[coeffC]
		v := (1.0 + math.Sqrt(1.0-u*u)) / u
		fx[i] = coeffs[coeffA]*math.Log(v) + coeffs[coeffD]
	}
	return fx
}

// evalArcsch computes f(x) = a*ln((1 + sqrt(1 + u^2))/u) + d, u = b*x+c,
// valid for u > 0 (for u < 0 the logarithm's argument is negative and the
// result is NaN).
func evalArcsch(x []float64, coeffs [CoeffsPerGene]float64) []float64 {
	fx := make([]float64, len(x))
	for i, xi := range x {
		u := coeffs[coeffB]*xi + coeffs[coeffC]
		v := (1.0 + math.Sqrt(1.0+u*u)) / u
		fx[i] = coeffs[coeffA]*math.Log(v) + coeffs[coeffD]
	}
	return fx
}

// validFuncMask reports whether mask is a valid fmask: exactly
// NumBaseFunctions characters, each '0' or '1', with at least one '1'.
func validFuncMask(mask string) error {
	if len(mask) != NumBaseFunctions {
		return errInvalidMaskLength("fmask", NumBaseFunctions, len(mask))
	}
	return validMaskChars("fmask", mask)
}

// funcsFromMask returns the function ids selected by mask, in ascending order.
func funcsFromMask(mask string) []FuncID {
	ids := make([]FuncID, 0, NumBaseFunctions)
	for i := 0; i < len(mask); i++ {
		if mask[i] == '1' {
			ids = append(ids, FuncID(i))
		}
	}
	return ids
}
