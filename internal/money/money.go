package money

import "math"

// epsilon nudges values that sit a hair below the half-cent boundary in
// binary floating point, e.g. 2.345*100 == 234.49999999999997.
const epsilon = 2.220446049250313e-16

// Round rounds a currency amount to two decimals, half up.
func Round(v float64) float64 {
	return math.Floor((v+epsilon)*100+0.5) / 100
}
