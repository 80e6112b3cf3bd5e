/*
	Geometry helpers for 3d rendering: frustum plane extraction from a
	projection matrix, surface normals and tangent space calculation for
	triangle meshes.

	All functions work on single precision mgl32 values and are pure.
	Inputs are never validated: degenerate triangles, zero-area uv
	mappings and singular matrices propagate NaN/Inf through the usual
	IEEE-754 semantics instead of returning errors. Callers are expected
	to pass well-formed geometry.
*/
package glgeom

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

/*
	CalculateFrustumPlanes extracts the six clipping planes of the given
	transformation matrix, which can be a projection matrix or a combined
	modelview-projection matrix.

	Each plane is returned as the (a, b, c, d) coefficients of the plane
	equation a*x + b*y + c*z + d = 0, with the (a, b, c) part normalized.
	The plane normals point inwards, so a*x + b*y + c*z + d > 0 holds for
	points inside the frustum on all six planes.

	http://www.cs.otago.ac.nz/postgrads/alexis/planeExtraction.pdf
	adapted to OpenGL's right-handed clip space and mgl32's column-major
	storage, m[col*4+row], so the w-row is m[3], m[7], m[11], m[15].
*/
func CalculateFrustumPlanes(mvp mgl32.Mat4) (left, right, bottom, top, near, far mgl32.Vec4) {
	right = normalizePlane(mgl32.Vec4{
		mvp[3] - mvp[0],
		mvp[7] - mvp[4],
		mvp[11] - mvp[8],
		mvp[15] - mvp[12],
	})
	left = normalizePlane(mgl32.Vec4{
		mvp[3] + mvp[0],
		mvp[7] + mvp[4],
		mvp[11] + mvp[8],
		mvp[15] + mvp[12],
	})
	bottom = normalizePlane(mgl32.Vec4{
		mvp[3] + mvp[1],
		mvp[7] + mvp[5],
		mvp[11] + mvp[9],
		mvp[15] + mvp[13],
	})
	top = normalizePlane(mgl32.Vec4{
		mvp[3] - mvp[1],
		mvp[7] - mvp[5],
		mvp[11] - mvp[9],
		mvp[15] - mvp[13],
	})
	near = normalizePlane(mgl32.Vec4{
		mvp[3] + mvp[2],
		mvp[7] + mvp[6],
		mvp[11] + mvp[10],
		mvp[15] + mvp[14],
	})
	far = normalizePlane(mgl32.Vec4{
		mvp[3] - mvp[2],
		mvp[7] - mvp[6],
		mvp[11] - mvp[10],
		mvp[15] - mvp[14],
	})

	return
}

// normalizePlane scales a plane equation so that (a, b, c) has unit length.
func normalizePlane(p mgl32.Vec4) mgl32.Vec4 {
	l := math32.Sqrt(p[0]*p[0] + p[1]*p[1] + p[2]*p[2])

	return mgl32.Vec4{
		p[0] / l,
		p[1] / l,
		p[2] / l,
		p[3] / l,
	}
}

// Normal returns the unit normal of the surface defined by v1, v2 and v3.
// The winding order determines the direction via the right-hand rule:
// counter-clockwise winding yields a normal pointing towards the viewer.
func Normal(v1, v2, v3 mgl32.Vec3) mgl32.Vec3 {
	return v2.Sub(v1).Cross(v3.Sub(v1)).Normalize()
}

// Tangent returns the unit surface tangent for the three supplied vertex
// positions and their uv coordinates.
func Tangent(v1 mgl32.Vec3, uv1 mgl32.Vec2, v2 mgl32.Vec3, uv2 mgl32.Vec2, v3 mgl32.Vec3, uv3 mgl32.Vec2) mgl32.Vec3 {
	dv1 := uv2[1] - uv1[1]
	dv2 := uv3[1] - uv1[1]

	f := 1 / ((uv2[0]-uv1[0])*dv2 - (uv3[0]-uv1[0])*dv1)

	return v2.Sub(v1).Mul(dv2).Sub(v3.Sub(v1).Mul(dv1)).Mul(f).Normalize()
}

// Bitangent returns the unit surface bitangent for the three supplied
// vertex positions and their uv coordinates.
func Bitangent(v1 mgl32.Vec3, uv1 mgl32.Vec2, v2 mgl32.Vec3, uv2 mgl32.Vec2, v3 mgl32.Vec3, uv3 mgl32.Vec2) mgl32.Vec3 {
	du1 := uv2[0] - uv1[0]
	du2 := uv3[0] - uv1[0]

	f := 1 / (du1*(uv3[1]-uv1[1]) - du2*(uv2[1]-uv1[1]))

	return v2.Sub(v1).Mul(-du2).Sub(v3.Sub(v1).Mul(du1)).Mul(f).Normalize()
}

// TangentBitangent returns tangent and bitangent in one pass, sharing the
// uv determinant between both. Results are identical to calling Tangent
// and Bitangent separately.
func TangentBitangent(v1 mgl32.Vec3, uv1 mgl32.Vec2, v2 mgl32.Vec3, uv2 mgl32.Vec2, v3 mgl32.Vec3, uv3 mgl32.Vec2) (tangent, bitangent mgl32.Vec3) {
	du1, dv1 := uv2[0]-uv1[0], uv2[1]-uv1[1]
	du2, dv2 := uv3[0]-uv1[0], uv3[1]-uv1[1]

	f := 1 / (du1*dv2 - du2*dv1)

	e1 := v2.Sub(v1)
	e2 := v3.Sub(v1)

	tangent = e1.Mul(dv2).Sub(e2.Mul(dv1)).Mul(f).Normalize()
	bitangent = e1.Mul(-du2).Sub(e2.Mul(du1)).Mul(f).Normalize()

	return
}
