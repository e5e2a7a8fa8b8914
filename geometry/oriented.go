package geometry

import "math"

// Oriented is an Oriented Bounding Box (OBB), stored as its four corners in
// tl/tr/br/bl order so width, height, and rotation can be recovered without
// keeping the original center/width/height/rotation around.
type Oriented struct {
	TL Point
	TR Point
	BR Point
	BL Point
}

// NewOriented builds an OBB from a center point, full width/height, and a
// rotation in radians.
func NewOriented(center Point, width, height, rotation float64) Oriented {
	x := width / 2.0
	y := height / 2.0
	cos := math.Cos(rotation)
	sin := math.Sin(rotation)

	return Oriented{
		TL: NewPoint(center.X+(-x*cos)-(-y*sin), center.Y+(-x*sin)+(-y*cos)),
		TR: NewPoint(center.X+(x*cos)-(-y*sin), center.Y+(x*sin)+(-y*cos)),
		BR: NewPoint(center.X+(x*cos)-(y*sin), center.Y+(x*sin)+(y*cos)),
		BL: NewPoint(center.X+(-x*cos)-(y*sin), center.Y+(-x*sin)+(y*cos)),
	}
}

// Center returns the OBB's center point.
func (r Oriented) Center() Point {
	return NewPoint((r.TL.X+r.BR.X)/2.0, (r.TL.Y+r.BR.Y)/2.0)
}

// Width returns the distance from the top-left to the top-right corner.
func (r Oriented) Width() float64 {
	return Distance(r.TL, r.TR)
}

// Height returns the distance from the top-left to the bottom-left corner.
func (r Oriented) Height() float64 {
	return Distance(r.TL, r.BL)
}

// Rotation recovers the rotation, in radians, implied by the corners.
func (r Oriented) Rotation() float64 {
	return math.Atan2(r.TR.Y-r.TL.Y, r.TR.X-r.TL.X)
}
