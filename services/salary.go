package services

// PredictSalary turns a published salary range into a single estimate.
// A bound that is zero or negative counts as unknown. One-sided ranges are
// nudged away from the known bound: from*1.2 when only the lower bound is
// given, to*0.8 when only the upper one is.
func PredictSalary(from, to float64) (float64, bool) {
	hasFrom, hasTo := from > 0, to > 0
	switch {
	case hasFrom && hasTo:
		return (from + to) / 2, true
	case hasFrom:
		return from * 1.2, true
	case hasTo:
		return to * 0.8, true
	default:
		return 0, false
	}
}
