package geometry

import (
	"errors"
	"math"
)

// ErrOrientedIntersection is returned when an intersection involves an
// oriented bounding box, whether paired with another oriented box or with an
// axis-aligned one. Intersection with an oriented box is unimplemented: the
// reference this tool was modeled on never finished a polygon-clipping
// routine for rotated rectangles, and this implementation preserves that
// gap rather than invent untested clipping math.
var ErrOrientedIntersection = errors.New("geometry: intersection involving an oriented bounding box is not supported")

// BoundingBox is either an axis-aligned or an oriented rectangle. Only one
// of AA or Oriented is set.
type BoundingBox struct {
	AA       *AxisAligned
	Oriented *Oriented
}

// Center returns the box's center point regardless of its variant.
func (b BoundingBox) Center() Point {
	if b.AA != nil {
		return b.AA.Center()
	}
	return b.Oriented.Center()
}

// Area returns the box's area regardless of its variant.
func (b BoundingBox) Area() float64 {
	if b.AA != nil {
		return b.AA.Width() * b.AA.Height()
	}
	return b.Oriented.Width() * b.Oriented.Height()
}

// Intersects computes the intersection of two bounding boxes. Axis-aligned
// boxes intersect via open-rectangle overlap; any combination involving an
// oriented box returns ErrOrientedIntersection, matching the unimplemented
// behavior spelled out for S4.Complement's sibling gap.
func (b BoundingBox) Intersects(o BoundingBox) (*BoundingBox, error) {
	if b.AA != nil && o.AA != nil {
		if r, ok := b.AA.Intersects(*o.AA); ok {
			return &BoundingBox{AA: &r}, nil
		}
		return nil, nil
	}

	return nil, ErrOrientedIntersection
}

// AxisAligned is an Axis-Aligned Bounding Box (AABB), stored as its two
// opposing corners.
type AxisAligned struct {
	Min Point
	Max Point
}

// NewAxisAligned builds an AABB from a center point and full width/height.
func NewAxisAligned(center Point, width, height float64) AxisAligned {
	return AxisAligned{
		Min: NewPoint(center.X-width/2.0, center.Y-height/2.0),
		Max: NewPoint(center.X+width/2.0, center.Y+height/2.0),
	}
}

// Center returns the AABB's center point.
func (r AxisAligned) Center() Point {
	return NewPoint(r.Min.X+r.Width()/2.0, r.Min.Y+r.Height()/2.0)
}

// Width returns the AABB's width.
func (r AxisAligned) Width() float64 {
	return r.Max.X - r.Min.X
}

// Height returns the AABB's height.
func (r AxisAligned) Height() float64 {
	return r.Max.Y - r.Min.Y
}

// Intersects computes the intersection of two AABBs as open rectangles. The
// second return value is false when the boxes do not overlap.
func (r AxisAligned) Intersects(o AxisAligned) (AxisAligned, bool) {
	if r.Min.X < o.Max.X && o.Min.X < r.Max.X && r.Min.Y < o.Max.Y && o.Min.Y < r.Max.Y {
		return AxisAligned{
			Min: NewPoint(math.Max(r.Min.X, o.Min.X), math.Max(r.Min.Y, o.Min.Y)),
			Max: NewPoint(math.Min(r.Max.X, o.Max.X), math.Min(r.Max.Y, o.Max.Y)),
		}, true
	}
	return AxisAligned{}, false
}
