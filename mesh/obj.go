package mesh

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// LoadOBJ reads a Wavefront OBJ file into a Mesh. Only `v`, `vt` and `f`
// records are interpreted; normals and material statements are ignored.
// Faces with more than three corners are fan-triangulated from the first
// corner. Indices are 1-based in the file and converted to 0-based here.
func LoadOBJ(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening mesh file: %w", err)
	}
	defer f.Close()

	m := &Mesh{}
	uvComplete := true

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: vertex needs 3 coordinates", lineNo)
			}
			v, err := parseVec3(fields[1:4])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			m.Vertices = append(m.Vertices, v)
		case "vt":
			if len(fields) < 3 {
				return nil, fmt.Errorf("line %d: uv needs 2 coordinates", lineNo)
			}
			u, err1 := strconv.ParseFloat(fields[1], 64)
			v, err2 := strconv.ParseFloat(fields[2], 64)
			if err1 != nil || err2 != nil {
				return nil, fmt.Errorf("line %d: bad uv coordinate", lineNo)
			}
			m.UVs = append(m.UVs, [2]float64{u, v})
		case "f":
			verts, uvs, hasUV, err := parseFaceCorners(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			if len(verts) < 3 {
				return nil, fmt.Errorf("line %d: face needs at least 3 corners", lineNo)
			}
			if !hasUV {
				uvComplete = false
			}
			// Fan triangulation from the first corner.
			for i := 0; i < len(verts)-2; i++ {
				m.Faces = append(m.Faces, Face{verts[0], verts[i+1], verts[i+2]})
				if hasUV {
					m.UVFaces = append(m.UVFaces, Face{uvs[0], uvs[i+1], uvs[i+2]})
				}
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading mesh file: %w", err)
	}

	// UVs are only kept when every face carries them; a partial UV layout
	// cannot stay positionally aligned with the face list.
	if !uvComplete || len(m.UVFaces) != len(m.Faces) {
		m.UVs = nil
		m.UVFaces = nil
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

func parseVec3(fields []string) (Vector3, error) {
	x, err1 := strconv.ParseFloat(fields[0], 64)
	y, err2 := strconv.ParseFloat(fields[1], 64)
	z, err3 := strconv.ParseFloat(fields[2], 64)
	if err1 != nil || err2 != nil || err3 != nil {
		return Vector3{}, fmt.Errorf("bad vertex coordinate")
	}
	return Vector3{x, y, z}, nil
}

// parseFaceCorners splits `v/vt/vn` corner references. hasUV is true only
// when every corner of the face carries a texture index.
func parseFaceCorners(corners []string) (verts, uvs []int, hasUV bool, err error) {
	hasUV = true
	for _, c := range corners {
		parts := strings.Split(c, "/")
		vi, err := strconv.Atoi(parts[0])
		if err != nil {
			return nil, nil, false, fmt.Errorf("bad face index %q", c)
		}
		verts = append(verts, vi-1)
		if len(parts) > 1 && parts[1] != "" {
			ti, err := strconv.Atoi(parts[1])
			if err != nil {
				return nil, nil, false, fmt.Errorf("bad uv index %q", c)
			}
			uvs = append(uvs, ti-1)
		} else {
			hasUV = false
		}
	}
	return verts, uvs, hasUV, nil
}

// WriteOBJ writes the mesh in the same interchange format LoadOBJ reads,
// with 6-digit coordinate precision and 1-based indices.
func WriteOBJ(path string, m *Mesh) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating mesh file: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, "# bottleunwrap export")
	for _, v := range m.Vertices {
		fmt.Fprintf(w, "v %.6f %.6f %.6f\n", v.X, v.Y, v.Z)
	}
	for _, uv := range m.UVs {
		fmt.Fprintf(w, "vt %.6f %.6f\n", uv[0], uv[1])
	}
	withUV := m.HasUVs()
	for i, face := range m.Faces {
		if withUV {
			uf := m.UVFaces[i]
			fmt.Fprintf(w, "f %d/%d %d/%d %d/%d\n",
				face[0]+1, uf[0]+1, face[1]+1, uf[1]+1, face[2]+1, uf[2]+1)
		} else {
			fmt.Fprintf(w, "f %d %d %d\n", face[0]+1, face[1]+1, face[2]+1)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("writing mesh file: %w", err)
	}
	return nil
}
