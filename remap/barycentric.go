package remap

import "math"

// denomFloor guards the barycentric denominator against degenerate
// triangles; a near-zero determinant is clamped rather than propagated.
const denomFloor = 1e-8

// barycentricWeights expresses point P as u*A + v*B + w*C using the
// dot-product/determinant formulation. The weights sum to 1; for P inside
// the triangle all three lie in [0, 1].
func barycentricWeights(px, py, ax, ay, bx, by, cx, cy float64) (u, v, w float64) {
	v0x, v0y := bx-ax, by-ay
	v1x, v1y := cx-ax, cy-ay
	v2x, v2y := px-ax, py-ay

	d00 := v0x*v0x + v0y*v0y
	d01 := v0x*v1x + v0y*v1y
	d11 := v1x*v1x + v1y*v1y
	d20 := v2x*v0x + v2y*v0y
	d21 := v2x*v1x + v2y*v1y

	denom := d00*d11 - d01*d01
	if math.Abs(denom) < denomFloor {
		denom = denomFloor
	}
	v = (d11*d20 - d01*d21) / denom
	w = (d00*d21 - d01*d20) / denom
	u = 1.0 - v - w
	return u, v, w
}
