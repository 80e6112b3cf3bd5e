package glgeom

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/willf/bitset"
)

// Plane is a half-space boundary in normal/distance form. The normal
// points to the inside, DistanceTo is positive for points on that side.
type Plane struct {
	normal   mgl32.Vec3
	distance float32
}

// PlaneFromEquation builds a Plane from the (a, b, c, d) coefficients of
// the plane equation a*x + b*y + c*z + d = 0.
func PlaneFromEquation(e mgl32.Vec4) Plane {
	return Plane{
		normal:   mgl32.Vec3{e[0], e[1], e[2]},
		distance: e[3],
	}
}

func (p Plane) Normalize() Plane {
	magnitude := p.normal.Len()

	return Plane{
		normal:   p.normal.Mul(1 / magnitude),
		distance: p.distance / magnitude,
	}
}

// DistanceTo returns the signed distance of point to the plane.
func (p Plane) DistanceTo(point mgl32.Vec3) float32 {
	return p.normal.Dot(point) + p.distance
}

// Frustum holds the six clipping planes of a view volume in the order
// left, right, bottom, top, near, far.
type Frustum [6]Plane

// FrustumFromMatrix extracts the view frustum of a projection or combined
// modelview-projection matrix, see CalculateFrustumPlanes.
func FrustumFromMatrix(m mgl32.Mat4) Frustum {
	left, right, bottom, top, near, far := CalculateFrustumPlanes(m)

	return Frustum{
		PlaneFromEquation(left),
		PlaneFromEquation(right),
		PlaneFromEquation(bottom),
		PlaneFromEquation(top),
		PlaneFromEquation(near),
		PlaneFromEquation(far),
	}
}

func (f Frustum) ContainsPoint(point mgl32.Vec3) bool {
	for _, p := range f {
		if p.DistanceTo(point) <= 0 {
			return false
		}
	}

	return true
}

func (f Frustum) IntersectsSphere(center mgl32.Vec3, radius float32) bool {
	for _, p := range f {
		if p.DistanceTo(center) <= -radius {
			return false
		}
	}

	return true
}

// IntersectsBoundary tests the boundary corner furthest along each plane
// normal, the boundary is rejected once that corner is outside a plane.
func (f Frustum) IntersectsBoundary(b Boundary) bool {
	for _, p := range f {
		v := b.Min
		if p.normal[0] >= 0 {
			v[0] = b.Max[0]
		}
		if p.normal[1] >= 0 {
			v[1] = b.Max[1]
		}
		if p.normal[2] >= 0 {
			v[2] = b.Max[2]
		}

		if p.DistanceTo(v) < 0 {
			return false
		}
	}

	return true
}

// Cull tests every boundary against the frustum and returns the set of
// indices that are at least partially visible.
func (f Frustum) Cull(bounds []Boundary) *bitset.BitSet {
	visible := bitset.New(uint(len(bounds)))

	for i, b := range bounds {
		if f.IntersectsBoundary(b) {
			visible.Set(uint(i))
		}
	}

	return visible
}
