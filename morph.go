package triangler

import (
	"image"

	"github.com/anthonynsimon/bild/parallel"
)

// diskOffsets enumerates the relative coordinates of a filled disk of the
// given radius, the classic round structuring element. A point (dx, dy)
// belongs to the disk when dx*dx+dy*dy <= r*r.
func diskOffsets(radius int) []image.Point {
	offsets := make([]image.Point, 0, (2*radius+1)*(2*radius+1))
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= radius*radius {
				offsets = append(offsets, image.Point{X: dx, Y: dy})
			}
		}
	}
	return offsets
}

// dilate replaces every sample with the maximum over the structuring element
// centered on it. Neighborhoods are clipped at the borders rather than
// reflected, so corner pixels see roughly a quarter of the element.
func dilate(src *WeightMap, offsets []image.Point) *WeightMap {
	var (
		width  = src.Width
		height = src.Height
		dst    = NewWeightMap(width, height)
	)

	parallel.Line(height, func(start, end int) {
		for y := start; y < end; y++ {
			for x := 0; x < width; x++ {
				max := src.Values[y*width+x]
				for _, off := range offsets {
					sx, sy := x+off.X, y+off.Y
					if sx < 0 || sx >= width || sy < 0 || sy >= height {
						continue
					}
					if v := src.Values[sy*width+sx]; v > max {
						max = v
					}
				}
				dst.Values[y*width+x] = max
			}
		}
	})

	return dst
}
