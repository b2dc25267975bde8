package remap

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fullSquareUV covers the whole [0,1]^2 space with two triangles.
func fullSquareUV() *UVMesh {
	return &UVMesh{
		UVs:   []orb.Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}},
		Faces: []UVFace{{0, 1, 2}, {0, 2, 3}},
	}
}

func TestRasterizeFaceMapFullCoverage(t *testing.T) {
	fm := RasterizeFaceMap(fullSquareUV(), 16, 16)
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			assert.NotEqual(t, int32(0), fm.At(x, y), "pixel (%d,%d) must be covered", x, y)
		}
	}
}

func TestRasterizeFaceMapBackgroundSentinel(t *testing.T) {
	// A tiny triangle in the lower-left corner leaves the rest background.
	uv := &UVMesh{
		UVs:   []orb.Point{{0, 0}, {0.2, 0}, {0, 0.2}},
		Faces: []UVFace{{0, 1, 2}},
	}
	fm := RasterizeFaceMap(uv, 20, 20)
	assert.Equal(t, int32(1), fm.At(1, 1), "face ids are 1-based")
	assert.Equal(t, int32(0), fm.At(19, 19), "uncovered pixels hold the background sentinel")
}

func TestRasterizeFaceMapLaterFaceWins(t *testing.T) {
	uv := &UVMesh{
		UVs:   []orb.Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}},
		Faces: []UVFace{{0, 1, 2}, {0, 1, 2}},
	}
	fm := RasterizeFaceMap(uv, 8, 8)
	assert.Equal(t, int32(2), fm.At(4, 2))
}

func TestBarycentricWeightsProperties(t *testing.T) {
	uv := fullSquareUV()
	w, h := 32, 32
	fm := RasterizeFaceMap(uv, w, h)

	fw, fh := float64(w), float64(h)
	const eps = 1e-6
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			id := fm.At(x, y)
			require.NotEqual(t, int32(0), id)

			a, b, c := uv.Triangle(int(id - 1))
			u, v, wt := barycentricWeights(float64(x), float64(y),
				a[0]*fw, a[1]*fh, b[0]*fw, b[1]*fh, c[0]*fw, c[1]*fh)

			assert.InDelta(t, 1.0, u+v+wt, 1e-9, "weights must sum to 1")
			for _, wgt := range []float64{u, v, wt} {
				assert.GreaterOrEqual(t, wgt, -eps)
				assert.LessOrEqual(t, wgt, 1+eps)
			}
		}
	}
}

func TestBarycentricWeightsKnownPoints(t *testing.T) {
	tests := []struct {
		name    string
		px, py  float64
		u, v, w float64
	}{
		{"at vertex A", 0, 0, 1, 0, 0},
		{"at vertex B", 4, 0, 0, 1, 0},
		{"at vertex C", 0, 4, 0, 0, 1},
		{"edge midpoint AB", 2, 0, 0.5, 0.5, 0},
		{"centroid", 4.0 / 3, 4.0 / 3, 1.0 / 3, 1.0 / 3, 1.0 / 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, v, w := barycentricWeights(tt.px, tt.py, 0, 0, 4, 0, 0, 4)
			assert.InDelta(t, tt.u, u, 1e-12)
			assert.InDelta(t, tt.v, v, 1e-12)
			assert.InDelta(t, tt.w, w, 1e-12)
		})
	}
}

func TestBarycentricWeightsDegenerateTriangle(t *testing.T) {
	// All three corners coincide; the clamped denominator keeps the
	// result finite instead of dividing by zero.
	u, v, w := barycentricWeights(1, 1, 2, 2, 2, 2, 2, 2)
	for _, wgt := range []float64{u, v, w} {
		assert.False(t, isNaNOrInf(wgt))
	}
}

func isNaNOrInf(f float64) bool {
	return f != f || f > 1e300 || f < -1e300
}
