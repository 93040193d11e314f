// Package rate converts between the unit conventions rates are quoted in.
// Formula results elsewhere in this module are decimal fractions; nothing is
// rounded here either.
package rate

// ToPercentage scales a decimal fraction to percent.
func ToPercentage(x float64) float64 {
	return x * 100
}

// FromPercentage scales percent back to a decimal fraction.
func FromPercentage(x float64) float64 {
	return x / 100
}

// ToBasisPoints scales a decimal fraction to basis points.
func ToBasisPoints(x float64) float64 {
	return x * 10000
}
