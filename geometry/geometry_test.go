package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Oriented_transformation(t *testing.T) {
	region := NewOriented(NewPoint(0, 0), 10, 10, 0)

	assert.Equal(t, 0.0, region.Center().X)
	assert.Equal(t, 0.0, region.Center().Y)
	assert.Equal(t, 10.0, region.Width())
	assert.Equal(t, 10.0, region.Height())
	assert.Equal(t, 0.0, region.Rotation())
}

func Test_AxisAligned_Intersects(t *testing.T) {
	a := NewAxisAligned(NewPoint(0, 0), 10, 10)
	b := NewAxisAligned(NewPoint(5, 5), 10, 10)

	got, ok := a.Intersects(b)
	assert.True(t, ok)
	assert.Equal(t, NewPoint(0, 0), got.Min)
	assert.Equal(t, NewPoint(5, 5), got.Max)
}

func Test_AxisAligned_Intersects_disjoint(t *testing.T) {
	a := NewAxisAligned(NewPoint(0, 0), 2, 2)
	b := NewAxisAligned(NewPoint(100, 100), 2, 2)

	_, ok := a.Intersects(b)
	assert.False(t, ok)
}

func Test_BoundingBox_Intersects_orientedUnsupported(t *testing.T) {
	a := BoundingBox{Oriented: &Oriented{}}
	b := BoundingBox{Oriented: &Oriented{}}

	_, err := a.Intersects(b)
	assert.ErrorIs(t, err, ErrOrientedIntersection)
}

func Test_Distance(t *testing.T) {
	assert.Equal(t, 5.0, Distance(NewPoint(0, 0), NewPoint(3, 4)))
}
