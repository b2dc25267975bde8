package remap

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// checkerboard builds a deterministic NRGBA test image.
func checkerboard(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(37 * x % 256),
				G: uint8(91 * y % 256),
				B: uint8((x + y) * 13 % 256),
				A: 255,
			})
		}
	}
	return img
}

func TestRemapIdentityRoundTrip(t *testing.T) {
	src := checkerboard(16, 16)
	uv := fullSquareUV()

	out, err := Remap(uv, uv, src, 1.0, nil)
	require.NoError(t, err)
	require.Equal(t, src.Bounds(), out.Bounds())

	// With identical layouts every covered pixel resamples the source at
	// its own coordinates, so the images match exactly.
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			assert.Equal(t, src.NRGBAAt(x, y), out.NRGBAAt(x, y), "pixel (%d,%d)", x, y)
		}
	}
}

func TestRemapUncoveredPixelsTransparent(t *testing.T) {
	src := checkerboard(8, 8)
	uv := &UVMesh{
		UVs:   []orb.Point{{0, 0}, {0.3, 0}, {0, 0.3}},
		Faces: []UVFace{{0, 1, 2}},
	}
	out, err := Remap(uv, uv, src, 1.0, nil)
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{}, out.NRGBAAt(7, 7))
}

func TestRemapScale(t *testing.T) {
	src := checkerboard(8, 8)
	uv := fullSquareUV()
	out, err := Remap(uv, uv, src, 2.0, nil)
	require.NoError(t, err)
	assert.Equal(t, 16, out.Bounds().Dx())
	assert.Equal(t, 16, out.Bounds().Dy())
}

func TestRemapInvalidScale(t *testing.T) {
	src := checkerboard(4, 4)
	uv := fullSquareUV()
	_, err := Remap(uv, uv, src, 0, nil)
	assert.Error(t, err)
}

// manyTriangles builds n disjoint small triangles stacked in UV space.
func manyTriangles(n int) *UVMesh {
	uv := &UVMesh{}
	for i := 0; i < n; i++ {
		base := float64(i) / float64(n)
		idx := len(uv.UVs)
		uv.UVs = append(uv.UVs,
			orb.Point{0, base},
			orb.Point{0.5, base},
			orb.Point{0, base + 0.4/float64(n)},
		)
		uv.Faces = append(uv.Faces, UVFace{idx, idx + 1, idx + 2})
	}
	return uv
}

func TestRemapFaceCountMismatchTruncates(t *testing.T) {
	src := checkerboard(8, 8)
	oldUV := manyTriangles(100)
	newUV := manyTriangles(98)

	core, logs := observer.New(zap.WarnLevel)
	log := zap.New(core).Sugar()

	_, err := Remap(oldUV, newUV, src, 1.0, log)
	require.NoError(t, err, "mismatch must degrade, not fail")

	warned := false
	for _, entry := range logs.All() {
		if entry.Level == zap.WarnLevel {
			warned = true
		}
	}
	assert.True(t, warned, "mismatch must emit a warning")
}

func TestSampleBilinear(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(0, 0, color.NRGBA{0, 0, 0, 255})
	img.SetNRGBA(1, 0, color.NRGBA{100, 0, 0, 255})
	img.SetNRGBA(0, 1, color.NRGBA{0, 100, 0, 255})
	img.SetNRGBA(1, 1, color.NRGBA{100, 100, 0, 255})

	tests := []struct {
		name   string
		sx, sy float64
		want   color.NRGBA
	}{
		{"exact top-left", 0, 0, color.NRGBA{0, 0, 0, 255}},
		{"exact top-right", 1, 0, color.NRGBA{100, 0, 0, 255}},
		{"horizontal midpoint", 0.5, 0, color.NRGBA{50, 0, 0, 255}},
		{"center", 0.5, 0.5, color.NRGBA{50, 50, 0, 255}},
		{"clamped beyond right edge", 5, 0, color.NRGBA{100, 0, 0, 255}},
		{"clamped beyond bottom edge", 0, 5, color.NRGBA{0, 100, 0, 255}},
		{"clamped negative", -3, -3, color.NRGBA{0, 0, 0, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := sampleBilinear(img, tt.sx, tt.sy)
			assert.Equal(t, tt.want, color.NRGBA{r, g, b, a})
		})
	}
}

func TestRemapFiles(t *testing.T) {
	dir := t.TempDir()
	objContent := `
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
vt 0 0
vt 1 0
vt 1 1
vt 0 1
f 1/1 2/2 3/3
f 1/1 3/3 4/4
`
	objPath := filepath.Join(dir, "mesh.obj")
	require.NoError(t, os.WriteFile(objPath, []byte(objContent), 0644))

	src := checkerboard(8, 8)
	imgPath := filepath.Join(dir, "src.png")
	require.NoError(t, SavePNG(imgPath, src))

	outPath := filepath.Join(dir, "out.png")
	require.NoError(t, RemapFiles(objPath, objPath, imgPath, outPath, 1.0, nil))

	got, err := LoadTexture(outPath)
	require.NoError(t, err)
	assert.Equal(t, 8, got.Bounds().Dx())
}
