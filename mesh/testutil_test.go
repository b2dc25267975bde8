package mesh

import "math"

// cylinderOpts parametrizes the synthetic test bodies.
type cylinderOpts struct {
	Rings    int                   // vertex rings along the height
	Sides    int                   // vertices per ring
	Height   float64               // Z extent, from 0 to Height
	RadiusAt func(z float64) float64 // radius profile
}

// makeCylinder builds an open-ended surface of revolution around +Z.
// Both caps are left open so the mesh has exactly two boundary loops.
func makeCylinder(o cylinderOpts) *Mesh {
	m := &Mesh{}
	for iz := 0; iz < o.Rings; iz++ {
		z := o.Height * float64(iz) / float64(o.Rings-1)
		r := o.RadiusAt(z)
		for it := 0; it < o.Sides; it++ {
			theta := 2 * math.Pi * float64(it) / float64(o.Sides)
			m.Vertices = append(m.Vertices, Vector3{r * math.Cos(theta), r * math.Sin(theta), z})
		}
	}
	idx := func(iz, it int) int {
		return iz*o.Sides + it%o.Sides
	}
	for iz := 0; iz < o.Rings-1; iz++ {
		for it := 0; it < o.Sides; it++ {
			a := idx(iz, it)
			b := idx(iz, it+1)
			c := idx(iz+1, it)
			d := idx(iz+1, it+1)
			m.Faces = append(m.Faces, Face{a, b, d}, Face{a, d, c})
		}
	}
	return m
}

// makeStraightCylinder builds a constant-radius open cylinder.
func makeStraightCylinder(radius, height float64, rings, sides int) *Mesh {
	return makeCylinder(cylinderOpts{
		Rings:    rings,
		Sides:    sides,
		Height:   height,
		RadiusAt: func(float64) float64 { return radius },
	})
}

// makeFlaredBottle builds a body with a flared bottom (z in [0,3]), a
// straight middle (z in [3,7]) and a flared top (z in [7,10]).
func makeFlaredBottle(rings, sides int) *Mesh {
	return makeCylinder(cylinderOpts{
		Rings:  rings,
		Sides:  sides,
		Height: 10,
		RadiusAt: func(z float64) float64 {
			switch {
			case z < 3:
				return 1 + 0.5*(3-z)
			case z > 7:
				return 1 + 0.5*(z-7)
			default:
				return 1
			}
		},
	})
}

// makeTetrahedron builds a closed (watertight) tetrahedron.
func makeTetrahedron() *Mesh {
	return &Mesh{
		Vertices: []Vector3{
			{0, 0, 0}, {1, 0, 0}, {0.5, 1, 0}, {0.5, 0.5, 1},
		},
		Faces: []Face{
			{0, 2, 1}, {0, 1, 3}, {1, 2, 3}, {2, 0, 3},
		},
	}
}
