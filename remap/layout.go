package remap

import (
	"image/png"
	"io"

	"github.com/paulmach/orb"
	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/rasterizer"
	"github.com/tdewolff/canvas/renderers/svg"
)

// LayoutRenderer draws a UV layout as a triangle wireframe so the unwrap
// result can be inspected before remapping.
type LayoutRenderer struct {
	UV         *UVMesh
	Size       float64           // canvas edge length in mm
	LineWidth  float64           // stroke width in mm
	Resolution canvas.Resolution // resolution for PNG output
}

// NewLayoutRenderer creates a layout renderer with default settings.
func NewLayoutRenderer(uv *UVMesh) *LayoutRenderer {
	return &LayoutRenderer{
		UV:         uv,
		Size:       200.0,
		LineWidth:  0.2,
		Resolution: canvas.DPI(300),
	}
}

// canvasRenderer is the interface both the svg and rasterizer backends
// implement.
type canvasRenderer interface {
	RenderPath(path *canvas.Path, style canvas.Style, m canvas.Matrix)
}

// RenderToSVG writes the layout as an SVG to the provided writer.
func (r *LayoutRenderer) RenderToSVG(w io.Writer) error {
	svgRenderer := svg.New(w, r.Size, r.Size, nil)
	r.renderToCanvas(svgRenderer)
	return svgRenderer.Close()
}

// RenderToPNG writes the layout as a PNG to the provided writer.
func (r *LayoutRenderer) RenderToPNG(w io.Writer) error {
	rast := rasterizer.New(r.Size, r.Size, r.Resolution, canvas.DefaultColorSpace)
	r.renderToCanvas(rast)
	return png.Encode(w, rast)
}

// renderToCanvas draws the wireframe (shared logic for SVG and PNG).
func (r *LayoutRenderer) renderToCanvas(renderer canvasRenderer) {
	bgStyle := canvas.DefaultStyle
	bgStyle.Fill = canvas.Paint{Color: canvas.White}
	renderer.RenderPath(canvas.Rectangle(r.Size, r.Size), bgStyle, canvas.Identity)

	wireStyle := canvas.DefaultStyle
	wireStyle.Fill = canvas.Paint{Color: canvas.Transparent}
	wireStyle.Stroke = canvas.Paint{Color: canvas.Black}
	wireStyle.StrokeWidth = r.LineWidth

	// UV V is stored image-down; the canvas Y axis points up, so flip V
	// back for display.
	toCanvas := func(p orb.Point) (float64, float64) {
		return p[0] * r.Size, (1.0 - p[1]) * r.Size
	}

	for i := range r.UV.Faces {
		a, b, c := r.UV.Triangle(i)
		cp := &canvas.Path{}
		x, y := toCanvas(a)
		cp.MoveTo(x, y)
		x, y = toCanvas(b)
		cp.LineTo(x, y)
		x, y = toCanvas(c)
		cp.LineTo(x, y)
		cp.Close()
		renderer.RenderPath(cp, wireStyle, canvas.Identity)
	}
}
