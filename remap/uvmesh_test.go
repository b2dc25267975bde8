package remap

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempOBJ(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mesh.obj")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadUVMeshFlipsV(t *testing.T) {
	path := writeTempOBJ(t, `
v 0 0 0
v 1 0 0
v 0 1 0
vt 0.25 0.75
vt 1 0
vt 0 1
f 1/1 2/2 3/3
`)
	uv, err := LoadUVMesh(path)
	require.NoError(t, err)
	require.Len(t, uv.UVs, 3)
	assert.InDelta(t, 0.25, uv.UVs[0][0], 1e-12)
	assert.InDelta(t, 0.25, uv.UVs[0][1], 1e-12, "v must be stored as 1-v")
	assert.InDelta(t, 1.0, uv.UVs[1][1], 1e-12)
	assert.Equal(t, []UVFace{{0, 1, 2}}, uv.Faces)
}

func TestLoadUVMeshFanTriangulatesQuads(t *testing.T) {
	path := writeTempOBJ(t, `
vt 0 0
vt 1 0
vt 1 1
vt 0 1
f 1/1 2/2 3/3 4/4
`)
	uv, err := LoadUVMesh(path)
	require.NoError(t, err)
	assert.Equal(t, []UVFace{{0, 1, 2}, {0, 2, 3}}, uv.Faces)
}

func TestLoadUVMeshSkipsCornersWithoutUV(t *testing.T) {
	path := writeTempOBJ(t, `
vt 0 0
vt 1 0
vt 1 1
f 1/1 2/2 3/3
f 4 5 6
`)
	uv, err := LoadUVMesh(path)
	require.NoError(t, err)
	assert.Len(t, uv.Faces, 1, "faces without texture indices contribute no UV face")
}

func TestLoadUVMeshOutOfRange(t *testing.T) {
	path := writeTempOBJ(t, `
vt 0 0
f 1/1 2/9 3/1
`)
	_, err := LoadUVMesh(path)
	assert.Error(t, err)
}

func TestUVMeshFaceArea(t *testing.T) {
	uv := &UVMesh{
		UVs:   []orb.Point{{0, 0}, {1, 0}, {0, 1}, {0.5, 0.5}},
		Faces: []UVFace{{0, 1, 2}, {0, 1, 1}},
	}
	assert.InDelta(t, 0.5, uv.FaceArea(0), 1e-12)
	assert.InDelta(t, 0.0, uv.FaceArea(1), 1e-12, "degenerate triangle has zero area")

	b := uv.Bound()
	assert.Equal(t, orb.Point{0, 0}, b.Min)
	assert.Equal(t, orb.Point{1, 1}, b.Max)
}
