// Package remap transfers a source texture onto a new UV layout by
// rasterizing the destination triangles and resampling the source image
// through barycentric correspondence.
package remap

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// UVFace holds the three UV indices of a triangle.
type UVFace [3]int

// UVMesh is the UV layer of an exported OBJ: normalized [0,1]^2 coordinates
// with the V axis flipped to image row order, and per-face index triples in
// file order.
type UVMesh struct {
	UVs   []orb.Point
	Faces []UVFace
}

// LoadUVMesh reads just the `vt` and `f` records of an OBJ file. V is
// stored flipped (1 - v) so that v=1 in the file maps to the top image row.
// Faces with more than three corners are fan-triangulated from the first
// corner; corners without a texture index are skipped.
func LoadUVMesh(path string) (*UVMesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening obj file: %w", err)
	}
	defer f.Close()

	uv := &UVMesh{}
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		switch {
		case strings.HasPrefix(line, "vt "):
			fields := strings.Fields(line)
			if len(fields) < 3 {
				return nil, fmt.Errorf("line %d: uv needs 2 coordinates", lineNo)
			}
			u, err1 := strconv.ParseFloat(fields[1], 64)
			v, err2 := strconv.ParseFloat(fields[2], 64)
			if err1 != nil || err2 != nil {
				return nil, fmt.Errorf("line %d: bad uv coordinate", lineNo)
			}
			uv.UVs = append(uv.UVs, orb.Point{u, 1.0 - v})
		case strings.HasPrefix(line, "f "):
			var indices []int
			for _, corner := range strings.Fields(line)[1:] {
				parts := strings.Split(corner, "/")
				if len(parts) < 2 || parts[1] == "" {
					continue
				}
				ti, err := strconv.Atoi(parts[1])
				if err != nil {
					return nil, fmt.Errorf("line %d: bad uv index %q", lineNo, corner)
				}
				indices = append(indices, ti-1)
			}
			for i := 0; i < len(indices)-2; i++ {
				uv.Faces = append(uv.Faces, UVFace{indices[0], indices[i+1], indices[i+2]})
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading obj file: %w", err)
	}

	for i, face := range uv.Faces {
		for _, idx := range face {
			if idx < 0 || idx >= len(uv.UVs) {
				return nil, fmt.Errorf("uv face %d references uv %d (have %d uvs)", i, idx, len(uv.UVs))
			}
		}
	}
	return uv, nil
}

// Triangle returns the three UV corners of face i.
func (m *UVMesh) Triangle(i int) (a, b, c orb.Point) {
	f := m.Faces[i]
	return m.UVs[f[0]], m.UVs[f[1]], m.UVs[f[2]]
}

// FaceArea returns the signed UV-space area of face i.
func (m *UVMesh) FaceArea(i int) float64 {
	a, b, c := m.Triangle(i)
	return planar.Area(orb.Ring{a, b, c, a})
}

// Bound returns the bounding box of all UV coordinates.
func (m *UVMesh) Bound() orb.Bound {
	if len(m.UVs) == 0 {
		return orb.Bound{}
	}
	b := orb.MultiPoint(m.UVs).Bound()
	return b
}
