package remap

import "math"

// rasterEpsilon is the coverage tolerance at triangle edges: a pixel whose
// barycentric weights are within this margin of [0,1] still counts as
// covered, so adjacent triangles leave no gap along shared edges.
const rasterEpsilon = 1e-7

// FaceMap is the triangle ownership map: one cell per output pixel holding
// either 0 (background) or the 1-based index of the UV face that rasterizes
// over it. Later faces overwrite earlier ones, matching file face order.
type FaceMap struct {
	W, H  int
	Cells []int32
}

// At returns the cell value at (x, y).
func (f *FaceMap) At(x, y int) int32 {
	return f.Cells[y*f.W+x]
}

// RasterizeFaceMap fills a w x h ownership map from the UV mesh's faces,
// scaled from [0,1]^2 UV space to pixel space. Every face is independent of
// every other except for the last-writer-wins rule on overlaps.
func RasterizeFaceMap(uv *UVMesh, w, h int) *FaceMap {
	fm := &FaceMap{W: w, H: h, Cells: make([]int32, w*h)}
	fw, fh := float64(w), float64(h)

	for i := range uv.Faces {
		a, b, c := uv.Triangle(i)
		ax, ay := a[0]*fw, a[1]*fh
		bx, by := b[0]*fw, b[1]*fh
		cx, cy := c[0]*fw, c[1]*fh

		minX := clampInt(int(math.Floor(min3(ax, bx, cx))), 0, w-1)
		maxX := clampInt(int(math.Ceil(max3(ax, bx, cx))), 0, w-1)
		minY := clampInt(int(math.Floor(min3(ay, by, cy))), 0, h-1)
		maxY := clampInt(int(math.Ceil(max3(ay, by, cy))), 0, h-1)

		id := int32(i + 1)
		for y := minY; y <= maxY; y++ {
			row := y * w
			for x := minX; x <= maxX; x++ {
				u, v, wgt := barycentricWeights(float64(x), float64(y), ax, ay, bx, by, cx, cy)
				if u >= -rasterEpsilon && v >= -rasterEpsilon && wgt >= -rasterEpsilon {
					fm.Cells[row+x] = id
				}
			}
		}
	}
	return fm
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func min3(a, b, c float64) float64 {
	return math.Min(a, math.Min(b, c))
}

func max3(a, b, c float64) float64 {
	return math.Max(a, math.Max(b, c))
}
