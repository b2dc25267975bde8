package mesh

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// radiusPercentile is the per-bin radius statistic. A high percentile
// suppresses interior structure (straws, threads) without letting single
// outlier vertices dominate.
const radiusPercentile = 0.90

// RadiusProfile is a height-binned profile of representative cross-section
// radii. Radii holds the raw per-bin statistic, Smoothed the Gaussian
// filtered curve used for stability analysis. Both have exactly Bins()
// entries; BinEdges has one more.
type RadiusProfile struct {
	BinEdges   []float64
	BinCenters []float64
	Radii      []float64
	Smoothed   []float64
}

// Bins returns the number of height bins.
func (p *RadiusProfile) Bins() int {
	return len(p.Radii)
}

// HeightRange returns the Z interval covered by bins [start, end]
// (inclusive bin indices).
func (p *RadiusProfile) HeightRange(start, end int) (zmin, zmax float64) {
	return p.BinEdges[start], p.BinEdges[end+1]
}

// ComputeRadiusProfile partitions the mesh height into equal-width bins and
// records the 90th-percentile planar radius per bin. Empty bins copy the
// previous bin's value, or zero when no bin has been filled yet.
func ComputeRadiusProfile(m *Mesh, bins int) (*RadiusProfile, error) {
	if len(m.Vertices) == 0 {
		return nil, ErrEmptyMesh
	}
	min, max := m.Bounds()
	height := max.Z - min.Z
	if height < 1e-6 {
		return nil, ErrFlatMesh
	}

	edges := make([]float64, bins+1)
	centers := make([]float64, bins)
	width := height / float64(bins)
	for i := 0; i <= bins; i++ {
		edges[i] = min.Z + float64(i)*width
	}
	for i := 0; i < bins; i++ {
		centers[i] = (edges[i] + edges[i+1]) / 2
	}

	binned := make([][]float64, bins)
	for _, v := range m.Vertices {
		idx := int((v.Z - min.Z) / width)
		if idx >= bins {
			idx = bins - 1
		}
		binned[idx] = append(binned[idx], v.RadiusXY())
	}

	radii := make([]float64, bins)
	prev := 0.0
	for i, rs := range binned {
		if len(rs) == 0 {
			radii[i] = prev
			continue
		}
		sort.Float64s(rs)
		radii[i] = stat.Quantile(radiusPercentile, stat.LinInterp, rs, nil)
		prev = radii[i]
	}

	return &RadiusProfile{
		BinEdges:   edges,
		BinCenters: centers,
		Radii:      radii,
	}, nil
}

// Smooth fills p.Smoothed with a Gaussian-filtered copy of the raw radii.
func (p *RadiusProfile) Smooth(sigma float64) {
	p.Smoothed = gaussianSmooth(p.Radii, sigma)
}

// NormalizedGradient returns |d smoothed / d bin| divided by the mean
// smoothed radius, so the stability tolerance is independent of the
// body's absolute size. Smooth must have been called first.
func (p *RadiusProfile) NormalizedGradient() []float64 {
	meanR := stat.Mean(p.Smoothed, nil)
	if meanR < 1e-6 {
		meanR = 1.0
	}
	g := gradient(p.Smoothed)
	for i := range g {
		g[i] = math.Abs(g[i]) / meanR
	}
	return g
}

// gaussianSmooth convolves xs with a Gaussian kernel truncated at 4 sigma,
// reflecting the signal at both ends.
func gaussianSmooth(xs []float64, sigma float64) []float64 {
	out := make([]float64, len(xs))
	if sigma <= 0 || len(xs) == 0 {
		copy(out, xs)
		return out
	}
	radius := int(4*sigma + 0.5)
	kernel := make([]float64, 2*radius+1)
	sum := 0.0
	for i := -radius; i <= radius; i++ {
		k := math.Exp(-float64(i*i) / (2 * sigma * sigma))
		kernel[i+radius] = k
		sum += k
	}
	for i := range kernel {
		kernel[i] /= sum
	}

	n := len(xs)
	for i := range xs {
		acc := 0.0
		for j := -radius; j <= radius; j++ {
			acc += kernel[j+radius] * xs[reflectIndex(i+j, n)]
		}
		out[i] = acc
	}
	return out
}

// reflectIndex maps an out-of-range index back into [0, n) by mirroring
// at the boundaries (..., 2, 1, 0, 0, 1, 2, ...).
func reflectIndex(i, n int) int {
	if n == 1 {
		return 0
	}
	period := 2 * n
	i %= period
	if i < 0 {
		i += period
	}
	if i >= n {
		i = period - 1 - i
	}
	return i
}

// gradient computes the discrete derivative with central differences in the
// interior and one-sided differences at the ends.
func gradient(xs []float64) []float64 {
	n := len(xs)
	g := make([]float64, n)
	if n < 2 {
		return g
	}
	g[0] = xs[1] - xs[0]
	g[n-1] = xs[n-1] - xs[n-2]
	for i := 1; i < n-1; i++ {
		g[i] = (xs[i+1] - xs[i-1]) / 2
	}
	return g
}
