package icon

import "math"

// DefaultRotation is the angle, in degrees, turning
// a horizontal icon into its vertical variant.
const DefaultRotation = 90

// Radians converts degrees to radians.
func Radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// RotateAboutCenter rotates the user space of `c` by `degrees`
// around the pivot (width/2, width/2).
// The pivot only depends on the width: icons are square.
func RotateAboutCenter(c Canvas, width, height int, degrees float64) {
	middle := float64(width) / 2
	c.Translate(middle, middle)
	c.Rotate(Radians(degrees))
	c.Translate(-middle, -middle)
}

// Rotated returns a layer applying RotateAboutCenter, then drawing `layers`.
// The rotation stays in effect for the layers drawn afterwards.
func Rotated(degrees float64, layers ...Layer) Layer {
	return func(c Canvas, width, height, border int) {
		RotateAboutCenter(c, width, height, degrees)
		for _, layer := range layers {
			layer(c, width, height, border)
		}
	}
}
