package glgeom

import (
	"github.com/chewxy/math32"
)

const (
	DEG2RAD = math32.Pi / 180
	RAD2DEG = 180 / math32.Pi
)

func Round(v float32, precision int) float32 {
	var r float32

	if tmp := v * math32.Pow(10, float32(precision)); tmp > 0 {
		r = math32.Floor(tmp + 0.5)
	} else {
		r = math32.Ceil(tmp - 0.5)
	}

	return r / math32.Pow(10, float32(precision))
}

/*
	NearlyEquals compares two float32 with an error margin
	http://floating-point-gui.de/errors/comparison/
*/
func NearlyEquals(a, b, epsilon float32) bool {
	// shortcut, handles infinities
	if a == b {
		return true
	}

	diff := math32.Abs(a - b)

	// a or b or both are zero
	if a*b == 0 {
		return diff < (epsilon * epsilon)
	}

	// use relative error
	return diff/(math32.Abs(a)+math32.Abs(b)) < epsilon
}

func Clamp(v float32) float32 {
	return math32.Min(math32.Max(v, -1), 1)
}
