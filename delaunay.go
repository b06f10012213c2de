package triangler

// circumcircle keeps the squared radius; containment tests never need the
// root.
type circumcircle struct {
	x, y, rsq float64
}

// Triangle is one face of the triangulation.
type Triangle struct {
	Nodes [3]Point

	circle circumcircle
}

func newTriangle(p0, p1, p2 Point) Triangle {
	t := Triangle{Nodes: [3]Point{p0, p1, p2}}

	ax, ay := p1.X-p0.X, p1.Y-p0.Y
	bx, by := p2.X-p0.X, p2.Y-p0.Y
	m := p1.X*p1.X - p0.X*p0.X + p1.Y*p1.Y - p0.Y*p0.Y
	u := p2.X*p2.X - p0.X*p0.X + p2.Y*p2.Y - p0.Y*p0.Y

	den := 2 * (ax*by - ay*bx)
	if den == 0 {
		// Collinear corners span no circumcircle; no point can fall inside.
		t.circle.rsq = -1
		return t
	}

	s := 1 / den
	t.circle.x = ((p2.Y-p0.Y)*m + (p0.Y-p1.Y)*u) * s
	t.circle.y = ((p0.X-p2.X)*m + (p1.X-p0.X)*u) * s

	dx := p0.X - t.circle.x
	dy := p0.Y - t.circle.y
	t.circle.rsq = dx*dx + dy*dy
	return t
}

type edge struct {
	a, b Point
}

func (e edge) eq(o edge) bool {
	return e.a == o.a && e.b == o.b || e.a == o.b && e.b == o.a
}

// Delaunay builds a triangulation incrementally with the Bowyer-Watson
// algorithm, seeded by two triangles covering the whole canvas so every
// inserted point lands inside an existing face.
type Delaunay struct {
	width     int
	height    int
	triangles []Triangle
}

// Init resets the triangulation to the seed faces of a width x height
// canvas.
func (d *Delaunay) Init(width, height int) *Delaunay {
	d.width = width
	d.height = height

	var (
		p0 = Point{X: 0, Y: 0}
		p1 = Point{X: float64(width), Y: 0}
		p2 = Point{X: float64(width), Y: float64(height)}
		p3 = Point{X: 0, Y: float64(height)}
	)
	d.triangles = []Triangle{newTriangle(p0, p2, p3), newTriangle(p0, p1, p2)}
	return d
}

// Insert adds the points one at a time. Faces whose circumcircle contains
// the new point are carved out, interior edges of the hole cancel pairwise,
// and the remaining boundary is rejoined to the point.
func (d *Delaunay) Insert(points []Point) *Delaunay {
	for _, p := range points {
		var (
			hole []edge
			kept []Triangle
		)

		for _, t := range d.triangles {
			dx := t.circle.x - p.X
			dy := t.circle.y - p.Y
			if dx*dx+dy*dy < t.circle.rsq {
				hole = append(hole,
					edge{t.Nodes[0], t.Nodes[1]},
					edge{t.Nodes[1], t.Nodes[2]},
					edge{t.Nodes[2], t.Nodes[0]})
			} else {
				kept = append(kept, t)
			}
		}

		for i, e := range hole {
			shared := false
			for j, o := range hole {
				if i != j && e.eq(o) {
					shared = true
					break
				}
			}
			if !shared {
				kept = append(kept, newTriangle(e.a, e.b, p))
			}
		}
		d.triangles = kept
	}
	return d
}

// GetTriangles returns the current faces.
func (d *Delaunay) GetTriangles() []Triangle {
	return d.triangles
}
