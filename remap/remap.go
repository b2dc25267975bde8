package remap

import (
	"fmt"
	"image"
	"math"

	"go.uber.org/zap"
)

// degenerateArea is the UV-space area below which a destination triangle is
// counted as degenerate. Such triangles still rasterize (the barycentric
// denominator is clamped) but are worth surfacing in the log.
const degenerateArea = 1e-12

// Remap produces a texture for the new UV layout by resampling the source
// image through per-face barycentric correspondence with the old layout.
//
// Every output pixel owned by new-UV face i gets its barycentric weights
// with respect to that face, interpolates the same face's old-UV triangle
// with those weights, and bilinearly samples the source there. Pixels no
// triangle covers stay fully transparent. Each pixel's result depends only
// on its own index, so the loop is freely parallelizable.
//
// When the two layouts disagree on face count both lists are truncated to
// the shorter one with a warning. Correspondence is positional; if the
// external unwrap tool reordered faces this silently pairs wrong geometry.
func Remap(oldUV, newUV *UVMesh, src *image.NRGBA, scale float64, log *zap.SugaredLogger) (*image.NRGBA, error) {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	if scale <= 0 {
		return nil, fmt.Errorf("resolution scale must be positive, got %g", scale)
	}

	if len(oldUV.Faces) != len(newUV.Faces) {
		log.Warnw("face count mismatch, truncating to the shorter list",
			"old", len(oldUV.Faces), "new", len(newUV.Faces))
		n := len(oldUV.Faces)
		if len(newUV.Faces) < n {
			n = len(newUV.Faces)
		}
		oldUV = &UVMesh{UVs: oldUV.UVs, Faces: oldUV.Faces[:n]}
		newUV = &UVMesh{UVs: newUV.UVs, Faces: newUV.Faces[:n]}
	}

	srcW := src.Bounds().Dx()
	srcH := src.Bounds().Dy()
	dstW := int(float64(srcW) * scale)
	dstH := int(float64(srcH) * scale)
	if dstW == 0 || dstH == 0 {
		return nil, fmt.Errorf("output size %dx%d is empty", dstW, dstH)
	}

	degenerate := 0
	for i := range newUV.Faces {
		if math.Abs(newUV.FaceArea(i)) < degenerateArea {
			degenerate++
		}
	}
	if degenerate > 0 {
		log.Debugw("degenerate destination triangles", "count", degenerate)
	}

	log.Infow("rasterizing face map", "width", dstW, "height", dstH, "faces", len(newUV.Faces))
	fm := RasterizeFaceMap(newUV, dstW, dstH)

	out := image.NewNRGBA(image.Rect(0, 0, dstW, dstH))
	fw, fh := float64(dstW), float64(dstH)

	covered := 0
	for y := 0; y < dstH; y++ {
		for x := 0; x < dstW; x++ {
			id := fm.At(x, y)
			if id == 0 {
				continue
			}
			covered++
			face := int(id - 1)

			a, b, c := newUV.Triangle(face)
			u, v, w := barycentricWeights(float64(x), float64(y),
				a[0]*fw, a[1]*fh, b[0]*fw, b[1]*fh, c[0]*fw, c[1]*fh)

			oa, ob, oc := oldUV.Triangle(face)
			tu := u*oa[0] + v*ob[0] + w*oc[0]
			tv := u*oa[1] + v*ob[1] + w*oc[1]

			r, g, bb, aa := sampleBilinear(src, tu*float64(srcW), tv*float64(srcH))
			off := out.PixOffset(x, y)
			out.Pix[off+0] = r
			out.Pix[off+1] = g
			out.Pix[off+2] = bb
			out.Pix[off+3] = aa
		}
	}
	log.Infow("remap complete", "coveredPixels", covered, "totalPixels", dstW*dstH)
	return out, nil
}

// sampleBilinear samples the image at fractional pixel coordinates with
// bilinear interpolation per channel, clamping at the edges so border
// pixels never wrap around.
func sampleBilinear(img *image.NRGBA, sx, sy float64) (r, g, b, a uint8) {
	w := img.Bounds().Dx()
	h := img.Bounds().Dy()

	x0 := int(math.Floor(sx))
	y0 := int(math.Floor(sy))
	fx := sx - float64(x0)
	fy := sy - float64(y0)

	x1 := clampInt(x0+1, 0, w-1)
	y1 := clampInt(y0+1, 0, h-1)
	x0 = clampInt(x0, 0, w-1)
	y0 = clampInt(y0, 0, h-1)

	w00 := (1 - fx) * (1 - fy)
	w10 := fx * (1 - fy)
	w01 := (1 - fx) * fy
	w11 := fx * fy

	o00 := img.PixOffset(x0, y0)
	o10 := img.PixOffset(x1, y0)
	o01 := img.PixOffset(x0, y1)
	o11 := img.PixOffset(x1, y1)

	for ch := 0; ch < 4; ch++ {
		val := w00*float64(img.Pix[o00+ch]) +
			w10*float64(img.Pix[o10+ch]) +
			w01*float64(img.Pix[o01+ch]) +
			w11*float64(img.Pix[o11+ch])
		switch ch {
		case 0:
			r = uint8(val + 0.5)
		case 1:
			g = uint8(val + 0.5)
		case 2:
			b = uint8(val + 0.5)
		case 3:
			a = uint8(val + 0.5)
		}
	}
	return r, g, b, a
}

// RemapFiles is the file-level entry point: it loads both UV layouts and
// the source texture, remaps, and writes the result as PNG.
func RemapFiles(oldPath, newPath, imagePath, outPath string, scale float64, log *zap.SugaredLogger) error {
	oldUV, err := LoadUVMesh(oldPath)
	if err != nil {
		return fmt.Errorf("loading old layout: %w", err)
	}
	newUV, err := LoadUVMesh(newPath)
	if err != nil {
		return fmt.Errorf("loading new layout: %w", err)
	}
	src, err := LoadTexture(imagePath)
	if err != nil {
		return err
	}

	out, err := Remap(oldUV, newUV, src, scale, log)
	if err != nil {
		return err
	}
	return SavePNG(outPath, out)
}
