package applet

// SimFloat is a fixed-point value with SimFloatBits fractional bits.
type SimFloat int32

// SimFloatBits is the number of fractional bits carried by a SimFloat.
const SimFloatBits = 14

// MaxCV is the full-scale value of an input sample or output write.
const MaxCV = 7800

// IntToSimFloat scales x up into fixed point.
func IntToSimFloat(x int) SimFloat { return SimFloat(int32(x) << SimFloatBits) }

// SimFloatToInt scales f back down, truncating the fraction.
func SimFloatToInt(f SimFloat) int { return int(f >> SimFloatBits) }

// Proportion solves numerator/denominator = result/max in fixed point.
//
// The quotient and the product are truncated separately, so results are bit-identical to
// the firmware's integer arithmetic. A zero denominator panics.
//
//	Out(ch, Proportion(value, 100, MaxCV))
func Proportion(numerator, denominator, max int) int {
	p := IntToSimFloat(numerator) / SimFloat(denominator)
	return SimFloatToInt(p * SimFloat(max))
}

// ProportionCV scales a CV value against MaxCV, typically into pixels.
func ProportionCV(cv, maxPixels int) int {
	return Proportion(cv, MaxCV, maxPixels)
}
