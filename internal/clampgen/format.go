package clampgen

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

// FormatNumber renders num in its shortest decimal form.
// Integral values print without a decimal point; anything else is rounded
// to two places and trailing zeros are stripped (5 -> "5", 5.50 -> "5.5",
// 5.333 -> "5.33").
func FormatNumber(num float64) string {
	if num == math.Trunc(num) && !math.IsInf(num, 0) {
		switch {
		case num == 0:
			return "0"
		case math.Abs(num) >= 1e21:
			return strconv.FormatFloat(num, 'g', -1, 64)
		}
		return strconv.FormatFloat(num, 'f', -1, 64)
	}
	return trimZeros(ToFixed(num, 2))
}

// ToFixed formats x with exactly digits fractional digits.
//
// Rounding works on the exact binary value of x and breaks ties away from
// zero, so 6.3125 becomes "6.313" and 1.005 (stored as 1.00499...) becomes
// "1.00". strconv rounds ties to even, which would drift from the published
// tables.
func ToFixed(x float64, digits int) string {
	switch {
	case math.IsNaN(x):
		return "NaN"
	case math.IsInf(x, 1):
		return "Infinity"
	case math.IsInf(x, -1):
		return "-Infinity"
	case math.Abs(x) >= 1e21:
		return strconv.FormatFloat(x, 'g', -1, 64)
	}

	neg := x < 0
	r := new(big.Rat).SetFloat64(math.Abs(x))
	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(digits)), nil)
	r.Mul(r, new(big.Rat).SetInt(scale))
	r.Add(r, big.NewRat(1, 2))
	n := new(big.Int).Quo(r.Num(), r.Denom())

	s := n.String()
	if digits > 0 {
		if len(s) <= digits {
			s = strings.Repeat("0", digits-len(s)+1) + s
		}
		s = s[:len(s)-digits] + "." + s[len(s)-digits:]
	}
	if neg {
		s = "-" + s
	}
	return s
}

// trimZeros drops trailing fractional zeros and a dangling decimal point.
// Strings without a decimal point are returned unchanged.
func trimZeros(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

// roundHalfUp rounds to the nearest integer, ties toward positive infinity.
func roundHalfUp(x float64) float64 {
	f := math.Floor(x)
	if x-f >= 0.5 {
		return f + 1
	}
	return f
}

// round2 rounds x to two decimal places.
func round2(x float64) float64 {
	return roundHalfUp(x*100) / 100
}
