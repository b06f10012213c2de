package triangler

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
)

// Wireframe rendering modes.
const (
	WithoutWireframe = iota
	WithWireframe
	WireframeOnly
)

// Processor holds the triangulation options.
type Processor struct {
	Points      int
	Edge        EdgeMethod
	Sample      SampleMethod
	BlurRadius  int
	Wireframe   int
	Noise       int
	LineWidth   float64
	StrokeSolid bool
	Grayscale   bool
}

// Process triangulates the source image: extracts edge points with the
// configured weight map algorithm and sampling strategy, builds a Delaunay
// mesh over them and renders each face filled with the source color under
// its centroid. It returns the rendered image together with the mesh faces
// and the extracted points.
func (p *Processor) Process(src image.Image) (image.Image, []Triangle, []Point, error) {
	img := ImgToNRGBA(src)
	width, height := img.Bounds().Dx(), img.Bounds().Dy()

	extractor, err := NewPointExtractor(img, p.Points, p.Edge)
	if err != nil {
		return nil, nil, nil, err
	}
	points, err := extractor.EdgePoints(p.BlurRadius, p.Sample)
	if err != nil {
		return nil, nil, nil, err
	}

	delaunay := &Delaunay{}
	triangles := delaunay.Init(width, height).Insert(points).GetTriangles()

	ctx := gg.NewContext(width, height)
	ctx.DrawRectangle(0, 0, float64(width), float64(height))
	ctx.SetRGBA(1, 1, 1, 1)
	ctx.Fill()

	srcImg := img
	if p.Grayscale {
		srcImg = Grayscale(img)
	}

	for _, t := range triangles {
		p0, p1, p2 := t.Nodes[0], t.Nodes[1], t.Nodes[2]

		ctx.Push()
		ctx.MoveTo(p0.X, p0.Y)
		ctx.LineTo(p1.X, p1.Y)
		ctx.LineTo(p2.X, p2.Y)
		ctx.LineTo(p0.X, p0.Y)

		cx := (p0.X + p1.X + p2.X) * 0.33333
		cy := (p0.Y + p1.Y + p2.Y) * 0.33333

		// Seed faces touch the canvas edge at (width, height); clamp the
		// centroid lookup back onto the pixel grid.
		j := (Min(int(cx), width-1) + Min(int(cy), height-1)*width) * 4
		r, g, b := srcImg.Pix[j], srcImg.Pix[j+1], srcImg.Pix[j+2]

		var strokeColor color.RGBA
		if p.StrokeSolid {
			strokeColor = color.RGBA{R: 0, G: 0, B: 0, A: 255}
		} else {
			strokeColor = color.RGBA{R: r, G: g, B: b, A: 255}
		}

		switch p.Wireframe {
		case WithoutWireframe:
			ctx.SetFillStyle(gg.NewSolidPattern(color.RGBA{R: r, G: g, B: b, A: 255}))
			ctx.FillPreserve()
			ctx.Fill()
		case WithWireframe:
			ctx.SetFillStyle(gg.NewSolidPattern(color.RGBA{R: r, G: g, B: b, A: 255}))
			ctx.SetStrokeStyle(gg.NewSolidPattern(color.RGBA{R: 0, G: 0, B: 0, A: 20}))
			ctx.SetLineWidth(p.LineWidth)
			ctx.FillPreserve()
			ctx.StrokePreserve()
			ctx.Stroke()
		case WireframeOnly:
			ctx.SetStrokeStyle(gg.NewSolidPattern(strokeColor))
			ctx.SetLineWidth(p.LineWidth)
			ctx.StrokePreserve()
			ctx.Stroke()
		}
		ctx.Pop()
	}

	newimg := ctx.Image()
	// A grain pass gives the flat-shaded faces a more organic look.
	if p.Noise > 0 {
		return Noise(p.Noise, newimg, width, height), triangles, points, nil
	}
	return newimg, triangles, points, nil
}
