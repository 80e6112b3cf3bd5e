package glgeom

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Boundary is an axis-aligned bounding box.
type Boundary struct {
	Min, Max mgl32.Vec3
}

// NewBoundary returns an empty boundary with inverted infinite bounds,
// any added point shrinks it to a real box.
func NewBoundary() Boundary {
	return Boundary{
		mgl32.Vec3{math32.Inf(1), math32.Inf(1), math32.Inf(1)},
		mgl32.Vec3{math32.Inf(-1), math32.Inf(-1), math32.Inf(-1)},
	}
}

func BoundaryFromPoints(points ...mgl32.Vec3) Boundary {
	b := NewBoundary()

	for _, p := range points {
		b.AddPoint(p)
	}

	return b
}

func (self *Boundary) AddPoint(p mgl32.Vec3) {
	for i := 0; i < 3; i++ {
		if p[i] < self.Min[i] {
			self.Min[i] = p[i]
		}

		if p[i] > self.Max[i] {
			self.Max[i] = p[i]
		}
	}
}

func (self Boundary) String() string {
	return fmt.Sprintf("%v - %v", self.Min, self.Max)
}

func (self Boundary) Equals(b Boundary, precision int) bool {
	p := math32.Pow(10, float32(-precision))

	for i := 0; i < 3; i++ {
		if !NearlyEquals(self.Min[i], b.Min[i], p) ||
			!NearlyEquals(self.Max[i], b.Max[i], p) {
			return false
		}
	}

	return true
}

func (self Boundary) Center() mgl32.Vec3 {
	return self.Min.Add(self.Max).Mul(0.5)
}

func (self Boundary) Size() mgl32.Vec3 {
	return self.Max.Sub(self.Min)
}

// Sphere returns center and radius of the enclosing bounding sphere.
func (self Boundary) Sphere() (mgl32.Vec3, float32) {
	return self.Center(), self.Size().Len() / 2
}
