package mesh

import (
	"math"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat"
)

// SegmenterConfig holds the stable-segment extraction parameters.
type SegmenterConfig struct {
	Bins           int     // number of height bins
	StabilityTol   float64 // normalized radius-gradient tolerance
	SmoothSigma    float64 // Gaussian sigma for profile smoothing, in bins
	MinSegmentFrac float64 // segments shorter than this fraction of bins are dropped
}

// DefaultSegmenterConfig returns the tuning the pipeline ships with.
func DefaultSegmenterConfig() SegmenterConfig {
	return SegmenterConfig{
		Bins:           300,
		StabilityTol:   0.03,
		SmoothSigma:    2.0,
		MinSegmentFrac: 0.05,
	}
}

// Segment is a contiguous run of stable bins in a radius profile.
// Start and End are inclusive bin indices.
type Segment struct {
	Start, End int
	MeanRadius float64
	Score      float64
}

// Len returns the number of bins the segment spans.
func (s Segment) Len() int {
	return s.End - s.Start + 1
}

// FindStableSegments groups consecutive bins whose normalized radius
// gradient stays below the tolerance, drops runs shorter than the minimum
// fraction, and scores the rest. Length dominates the score; the mild
// radius exponent keeps a long thin neck from beating a shorter, genuinely
// cylindrical body.
func FindStableSegments(p *RadiusProfile, cfg SegmenterConfig) []Segment {
	grad := p.NormalizedGradient()
	minLen := int(float64(len(grad)) * cfg.MinSegmentFrac)

	var segments []Segment
	start := -1
	flush := func(end int) {
		if start < 0 {
			return
		}
		seg := Segment{Start: start, End: end}
		start = -1
		if seg.Len() < minLen {
			return
		}
		seg.MeanRadius = stat.Mean(p.Smoothed[seg.Start:seg.End+1], nil)
		seg.Score = float64(seg.Len()) * math.Pow(seg.MeanRadius, 0.3)
		segments = append(segments, seg)
	}
	for i, g := range grad {
		if g < cfg.StabilityTol {
			if start < 0 {
				start = i
			}
		} else {
			flush(i - 1)
		}
	}
	flush(len(grad) - 1)
	return segments
}

// SelectSegment picks the highest-scoring segment. When no stable segment
// exists it falls back to the middle 50% of bins and reports fallback=true.
func SelectSegment(segments []Segment, bins int) (best Segment, fallback bool) {
	if len(segments) == 0 {
		return Segment{Start: bins / 4, End: bins*3/4 - 1}, true
	}
	best = segments[0]
	for _, s := range segments[1:] {
		if s.Score > best.Score {
			best = s
		}
	}
	return best, false
}

// CutMesh keeps only the faces whose three vertices all lie inside
// [zmin, zmax] and prunes vertices and UVs no face references anymore.
func CutMesh(m *Mesh, zmin, zmax float64) (*Mesh, error) {
	inside := make([]bool, len(m.Vertices))
	for i, v := range m.Vertices {
		inside[i] = v.Z >= zmin && v.Z <= zmax
	}

	withUV := m.HasUVs()
	out := &Mesh{}
	vertMap := make(map[int]int)
	uvMap := make(map[int]int)

	remapVert := func(idx int) int {
		if ni, ok := vertMap[idx]; ok {
			return ni
		}
		ni := len(out.Vertices)
		out.Vertices = append(out.Vertices, m.Vertices[idx])
		vertMap[idx] = ni
		return ni
	}
	remapUV := func(idx int) int {
		if ni, ok := uvMap[idx]; ok {
			return ni
		}
		ni := len(out.UVs)
		out.UVs = append(out.UVs, m.UVs[idx])
		uvMap[idx] = ni
		return ni
	}

	for fi, face := range m.Faces {
		if !inside[face[0]] || !inside[face[1]] || !inside[face[2]] {
			continue
		}
		out.Faces = append(out.Faces, Face{
			remapVert(face[0]), remapVert(face[1]), remapVert(face[2]),
		})
		if withUV {
			uf := m.UVFaces[fi]
			out.UVFaces = append(out.UVFaces, Face{
				remapUV(uf[0]), remapUV(uf[1]), remapUV(uf[2]),
			})
		}
	}

	if len(out.Faces) == 0 {
		return nil, ErrEmptyCut
	}
	return out, nil
}

// ExtractBody runs the full segmenter on an aligned mesh: radius profile,
// stability analysis, segment selection and cut. The returned profile is
// the smoothed one the selection was made on.
func ExtractBody(m *Mesh, cfg SegmenterConfig, log *zap.SugaredLogger) (*Mesh, *RadiusProfile, error) {
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	profile, err := ComputeRadiusProfile(m, cfg.Bins)
	if err != nil {
		return nil, nil, err
	}
	profile.Smooth(cfg.SmoothSigma)

	segments := FindStableSegments(profile, cfg)
	for _, s := range segments {
		zs, ze := profile.HeightRange(s.Start, s.End)
		log.Infow("stable segment",
			"zStart", zs, "zEnd", ze,
			"bins", s.Len(), "meanRadius", s.MeanRadius, "score", s.Score)
	}

	best, fallback := SelectSegment(segments, cfg.Bins)
	if fallback {
		log.Warn("no stable cylinder detected, falling back to middle 50% of height range")
	}

	zmin, zmax := profile.HeightRange(best.Start, best.End)
	log.Infow("selected body segment", "zMin", zmin, "zMax", zmax, "fallback", fallback)

	body, err := CutMesh(m, zmin, zmax)
	if err != nil {
		return nil, nil, err
	}
	log.Infow("body extracted", "vertices", len(body.Vertices), "faces", len(body.Faces))
	return body, profile, nil
}
