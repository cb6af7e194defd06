package ga

// Bound is the range a single coefficient is generated and clamped within:
// generation draws from [Lo, Hi), clamping keeps values within [Lo, Hi].
type Bound struct {
	Lo float64 `yaml:"lo"`
	Hi float64 `yaml:"hi"`
}

// Bounds holds one Bound per coefficient slot (a, b, c, d, n).
type Bounds [CoeffsPerGene]Bound

// RandomOperator draws a uniformly random operator among those opmask
// permits. opmask must have length NumOperators and contain at least one
// '1'.
func RandomOperator(rng Source, opmask string) OpCode {
	candidates := operatorsFromMask(opmask)
	return candidates[rng.Intn(len(candidates))]
}

// RandomFunc draws a uniformly random base function id among those fmask
// permits. fmask must have length NumBaseFunctions and contain at least one
// '1'.
func RandomFunc(rng Source, fmask string) FuncID {
	candidates := funcsFromMask(fmask)
	return candidates[rng.Intn(len(candidates))]
}

// GenerateCoeffs draws one coefficient value per bound in bounds.
func GenerateCoeffs(rng Source, bounds Bounds) [CoeffsPerGene]float64 {
	var coeffs [CoeffsPerGene]float64
	for i, b := range bounds {
		coeffs[i] = rng.Range(b.Lo, b.Hi)
	}
	return coeffs
}

// GenerateRandomCandidate builds a candidate of chromLen genes, each with
// coefficients drawn from bounds and a function/operator drawn uniformly
// from fmask/opmask.
func GenerateRandomCandidate(rng Source, chromLen int, bounds Bounds, fmask, opmask string) Candidate {
	chrom := make(Chromosome, chromLen)
	for i := range chrom {
		chrom[i] = Gene{
			FuncID: RandomFunc(rng, fmask),
			Coeffs: GenerateCoeffs(rng, bounds),
			OpID:   RandomOperator(rng, opmask),
		}
	}
	return NewCandidate(chrom)
}

// GeneratePresetCandidate builds a candidate whose function/operator
// sequence is fixed by presetForm (as produced by ParsePresetForm: fid, opid,
// fid, opid, ..., fid) and whose coefficients are drawn from bounds. The
// operator of the last gene is unused and is always OpAdd, matching the dead
// data convention of the last gene's operator slot.
func GeneratePresetCandidate(rng Source, presetForm []int, bounds Bounds) Candidate {
	if len(presetForm)%2 != 1 {
		panic("ga: preset form must have an odd number of entries")
	}
	chromLen := (len(presetForm) + 1) / 2

	chrom := make(Chromosome, chromLen)
	for i := 0; i < chromLen; i++ {
		opid := OpAdd
		if i != chromLen-1 {
			opid = OpCode(presetForm[2*i+1])
		}
		chrom[i] = Gene{
			FuncID: FuncID(presetForm[2*i]),
			Coeffs: GenerateCoeffs(rng, bounds),
			OpID:   opid,
		}
	}
	return NewCandidate(chrom)
}
