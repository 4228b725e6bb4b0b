package gamemath

import "math"

// SlopeAngle returns the angle of a slope direction measured from the
// vertical axis, atan2(dx, dy). Floors walked left to right sit at 90°.
func SlopeAngle(dx, dy float64) float64 {
	return math.Atan2(dx, dy)
}

// Reflect mirrors v about the unit normal n and scales the result by k.
func Reflect(v, n Vector, k float64) Vector {
	proj := v.X*n.X + v.Y*n.Y
	return Vector{
		X: (v.X - n.X*proj*2) * k,
		Y: (v.Y - n.Y*proj*2) * k,
	}
}

// Project returns the component of v along dir. dir need not be normalized.
func Project(v, dir Vector) Vector {
	lengthSquared := dir.X*dir.X + dir.Y*dir.Y
	if lengthSquared == 0 {
		return Vector{}
	}
	dot := (v.X*dir.X + v.Y*dir.Y) / lengthSquared
	return dir.Scale(dot)
}

// LineY returns the y of the line through (x1, y1) and (x2, y2) at x.
// Vertical lines return y1.
func LineY(x1, y1, x2, y2, x float64) float64 {
	if x2 == x1 {
		return y1
	}
	return y1 + (y2-y1)*(x-x1)/(x2-x1)
}

// ToRad converts degrees to radians.
func ToRad(deg float64) float64 {
	return deg * math.Pi / 180
}
