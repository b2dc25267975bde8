package mesh

import (
	"fmt"
	"math"
)

// Vector3 represents a 3D point or vector
type Vector3 struct {
	X, Y, Z float64
}

// Add returns the sum of two vectors
func (v Vector3) Add(other Vector3) Vector3 {
	return Vector3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub returns the difference between two vectors
func (v Vector3) Sub(other Vector3) Vector3 {
	return Vector3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Mul multiplies the vector by a scalar
func (v Vector3) Mul(s float64) Vector3 {
	return Vector3{v.X * s, v.Y * s, v.Z * s}
}

// Dot returns the dot product of two vectors
func (v Vector3) Dot(other Vector3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of two vectors
func (v Vector3) Cross(other Vector3) Vector3 {
	return Vector3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Length returns the magnitude of the vector
func (v Vector3) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

// Distance returns the distance between two points
func (v Vector3) Distance(other Vector3) float64 {
	return v.Sub(other).Length()
}

// Normalize returns a unit vector in the same direction.
// The zero vector normalizes to itself.
func (v Vector3) Normalize() Vector3 {
	l := v.Length()
	if l == 0 {
		return Vector3{}
	}
	return v.Mul(1.0 / l)
}

// RadiusXY returns the planar distance from the Z axis.
func (v Vector3) RadiusXY() float64 {
	return math.Hypot(v.X, v.Y)
}

// Face holds the three vertex indices of a triangle.
type Face [3]int

// Mesh is a triangle mesh with optional per-corner UV coordinates.
// When UVs are present, UVFaces is positionally aligned 1:1 with Faces.
// UV coordinates are stored exactly as read from file; the remap package
// applies its own V-axis convention.
type Mesh struct {
	Vertices []Vector3
	Faces    []Face
	UVs      [][2]float64
	UVFaces  []Face
}

// HasUVs reports whether the mesh carries texture coordinates.
func (m *Mesh) HasUVs() bool {
	return len(m.UVs) > 0 && len(m.UVFaces) == len(m.Faces)
}

// Validate checks the mesh invariants: at least one vertex and
// all face indices in range.
func (m *Mesh) Validate() error {
	if len(m.Vertices) == 0 {
		return ErrEmptyMesh
	}
	for i, f := range m.Faces {
		for _, idx := range f {
			if idx < 0 || idx >= len(m.Vertices) {
				return fmt.Errorf("face %d references vertex %d (have %d vertices)", i, idx, len(m.Vertices))
			}
		}
	}
	for i, f := range m.UVFaces {
		for _, idx := range f {
			if idx < 0 || idx >= len(m.UVs) {
				return fmt.Errorf("face %d references uv %d (have %d uvs)", i, idx, len(m.UVs))
			}
		}
	}
	return nil
}

// FaceNormal returns the unit normal of face i (zero vector for a
// degenerate triangle).
func (m *Mesh) FaceNormal(i int) Vector3 {
	f := m.Faces[i]
	a, b, c := m.Vertices[f[0]], m.Vertices[f[1]], m.Vertices[f[2]]
	return b.Sub(a).Cross(c.Sub(a)).Normalize()
}

// FaceArea returns the area of face i.
func (m *Mesh) FaceArea(i int) float64 {
	f := m.Faces[i]
	a, b, c := m.Vertices[f[0]], m.Vertices[f[1]], m.Vertices[f[2]]
	return 0.5 * b.Sub(a).Cross(c.Sub(a)).Length()
}

// Centroid returns the mean of all vertex positions.
func (m *Mesh) Centroid() Vector3 {
	if len(m.Vertices) == 0 {
		return Vector3{}
	}
	var sum Vector3
	for _, v := range m.Vertices {
		sum = sum.Add(v)
	}
	return sum.Mul(1.0 / float64(len(m.Vertices)))
}

// Bounds returns the axis-aligned bounding box of the mesh.
func (m *Mesh) Bounds() (min, max Vector3) {
	if len(m.Vertices) == 0 {
		return Vector3{}, Vector3{}
	}
	min, max = m.Vertices[0], m.Vertices[0]
	for _, v := range m.Vertices[1:] {
		min.X = math.Min(min.X, v.X)
		min.Y = math.Min(min.Y, v.Y)
		min.Z = math.Min(min.Z, v.Z)
		max.X = math.Max(max.X, v.X)
		max.Y = math.Max(max.Y, v.Y)
		max.Z = math.Max(max.Z, v.Z)
	}
	return min, max
}

// Translate shifts every vertex by d.
func (m *Mesh) Translate(d Vector3) {
	for i := range m.Vertices {
		m.Vertices[i] = m.Vertices[i].Add(d)
	}
}
