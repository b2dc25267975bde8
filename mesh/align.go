package mesh

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// referenceAxis is the axis the body is aligned onto.
var referenceAxis = Vector3{0, 0, 1}

// alignTolerance is the minimum cross-product norm below which the
// principal axis is considered already aligned and no rotation is applied.
const alignTolerance = 1e-6

// AlignResult describes what the aligner did to the mesh.
type AlignResult struct {
	Axis        Vector3 // selected principal axis, before rotation
	Score       float64 // area-weighted perpendicularity score (lower is better)
	AngleDeg    float64 // rotation angle applied, degrees
	SVDFallback bool    // true when SVD failed and coordinate axes were used
}

// Align rotates and translates the mesh in place so that its principal
// rotational axis coincides with +Z and the XY bounding-box center sits at
// the origin.
//
// Candidate axes are the principal directions of the centered vertex cloud.
// A rotational body's side normals are mostly perpendicular to its main
// axis, so each candidate is scored by the area-weighted sum of
// |normal . axis| over all faces and the minimum wins.
func Align(m *Mesh) (AlignResult, error) {
	if len(m.Vertices) == 0 {
		return AlignResult{}, ErrEmptyMesh
	}

	m.Translate(m.Centroid().Mul(-1))

	candidates, fallback := principalAxes(m.Vertices)

	best := 0
	bestScore := math.Inf(1)
	for i, axis := range candidates {
		score := perpendicularityScore(m, axis)
		if score < bestScore {
			bestScore = score
			best = i
		}
	}
	principal := candidates[best]

	angle := 0.0
	rotAxis := principal.Cross(referenceAxis)
	if rotAxis.Length() > alignTolerance {
		d := math.Max(-1, math.Min(1, principal.Dot(referenceAxis)))
		angle = math.Acos(d)
		m.Transform(AxisAngleRotation(rotAxis, angle))
	}

	// Re-center X and Y on the bounding-box middle; Z keeps its structure.
	min, max := m.Bounds()
	m.Translate(Vector3{-(min.X + max.X) / 2, -(min.Y + max.Y) / 2, 0})

	return AlignResult{
		Axis:        principal,
		Score:       bestScore,
		AngleDeg:    angle * 180 / math.Pi,
		SVDFallback: fallback,
	}, nil
}

// principalAxes returns the three principal directions of the (already
// centered) vertex cloud via singular value decomposition. If the
// decomposition fails the three coordinate axes are returned instead.
func principalAxes(verts []Vector3) ([3]Vector3, bool) {
	coordinate := [3]Vector3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	if len(verts) < 3 {
		return coordinate, true
	}

	data := make([]float64, 0, len(verts)*3)
	for _, v := range verts {
		data = append(data, v.X, v.Y, v.Z)
	}
	pts := mat.NewDense(len(verts), 3, data)

	var svd mat.SVD
	if !svd.Factorize(pts, mat.SVDThin) {
		return coordinate, true
	}
	var v mat.Dense
	svd.VTo(&v)

	var axes [3]Vector3
	for i := 0; i < 3; i++ {
		axes[i] = Vector3{v.At(0, i), v.At(1, i), v.At(2, i)}.Normalize()
	}
	return axes, false
}

// perpendicularityScore sums Area * |Normal . Axis| over all faces.
func perpendicularityScore(m *Mesh, axis Vector3) float64 {
	score := 0.0
	for i := range m.Faces {
		score += m.FaceArea(i) * math.Abs(m.FaceNormal(i).Dot(axis))
	}
	return score
}
