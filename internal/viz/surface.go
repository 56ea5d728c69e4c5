package viz

import (
	"math"
	"sort"

	"github.com/san-kum/fieldmap/internal/analysis"
	"github.com/san-kum/fieldmap/internal/field"
)

type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

// Camera projects world points onto the canvas with a simple perspective
// divide. RotX and RotY orbit the scene, Zoom scales it.
type Camera struct {
	Distance   float64
	RotX, RotY float64
	Zoom       float64
	Near       float64
}

func NewCamera() *Camera {
	return &Camera{Distance: 50, Zoom: 1.0, Near: 0.1, RotX: -1.1}
}

func (c *Camera) RotateX(a float64) { c.RotX += a }
func (c *Camera) RotateY(a float64) { c.RotY += a }
func (c *Camera) ZoomIn()           { c.Zoom = math.Min(10, c.Zoom*1.2) }
func (c *Camera) ZoomOut()          { c.Zoom = math.Max(0.1, c.Zoom/1.2) }

func (c *Camera) rotate(p Vec3) Vec3 {
	cx, sx := math.Cos(c.RotX), math.Sin(c.RotX)
	p.Y, p.Z = p.Y*cx-p.Z*sx, p.Y*sx+p.Z*cx
	cy, sy := math.Cos(c.RotY), math.Sin(c.RotY)
	p.X, p.Z = p.X*cy+p.Z*sy, -p.X*sy+p.Z*cy
	return p
}

// Project converts world coordinates to canvas sub-pixels.
// Returns x, y, depth, and visibility.
func (c *Camera) Project(p Vec3, sw, sh int) (int, int, float64, bool) {
	rot := c.rotate(p).Scale(c.Zoom)
	if rot.Z >= c.Distance-c.Near {
		return 0, 0, 0, false
	}
	scale := c.Distance / (c.Distance - rot.Z)
	minDim := float64(sh)
	if float64(sw) < minDim {
		minDim = float64(sw)
	}
	pScale := minDim / 3.0
	sx := int(rot.X*scale*pScale) + sw/2
	sy := int(-rot.Y*scale*pScale) + sh/2
	return sx, sy, rot.Z, sx >= 0 && sx < sw && sy >= 0 && sy < sh
}

type Edge struct {
	Start, End Vec3
}

type Wireframe struct{ Edges []Edge }

func NewWireframe() *Wireframe         { return &Wireframe{Edges: make([]Edge, 0)} }
func (w *Wireframe) AddEdge(s, e Vec3) { w.Edges = append(w.Edges, Edge{s, e}) }

type projectedEdge struct {
	x1, y1, x2, y2 int
	depth          float64
}

// Render3D draws the wireframe to the canvas using a simple painter's algorithm.
func Render3D(c *Canvas, w *Wireframe, cam *Camera) {
	if c == nil || w == nil || cam == nil {
		return
	}
	cw, ch := c.Width*2, c.Height*4
	proj := make([]projectedEdge, 0, len(w.Edges))
	for _, e := range w.Edges {
		x1, y1, d1, v1 := cam.Project(e.Start, cw, ch)
		x2, y2, d2, v2 := cam.Project(e.End, cw, ch)
		if v1 || v2 {
			proj = append(proj, projectedEdge{x1, y1, x2, y2, (d1 + d2) / 2})
		}
	}
	sort.Slice(proj, func(i, j int) bool { return proj[i].depth < proj[j].depth })
	for _, e := range proj {
		if e.x1 == e.x2 && e.y1 == e.y2 {
			c.Set(e.x1, e.y1)
		} else {
			c.DrawLine(e.x1, e.y1, e.x2, e.y2)
		}
	}
}

// SurfaceWireframe builds a height-field mesh of the potential plane with
// the V=0 plane outline. Heights run through the scale so the spikes next
// to charges do not flatten the rest of the surface.
func SurfaceWireframe(m *field.Map, sc analysis.Scale, stride int) *Wireframe {
	w := NewWireframe()
	if m == nil || len(m.V) == 0 {
		return w
	}
	if stride < 1 {
		stride = 1
	}
	n := len(m.V)
	node := func(i, j int) Vec3 {
		return Vec3{
			X: m.X[i][j] / m.Extent,
			Y: 2*sc.Norm(m.V[i][j]) - 1,
			Z: m.Y[i][j] / m.Extent,
		}
	}
	for i := 0; i < n; i += stride {
		for j := 0; j < n; j += stride {
			if j+stride < n {
				w.AddEdge(node(i, j), node(i, j+stride))
			}
			if i+stride < n {
				w.AddEdge(node(i, j), node(i+stride, j))
			}
		}
	}
	corners := [][4]float64{{-1, -1, 1, -1}, {1, -1, 1, 1}, {1, 1, -1, 1}, {-1, 1, -1, -1}}
	for _, e := range corners {
		w.AddEdge(Vec3{X: e[0], Z: e[1]}, Vec3{X: e[2], Z: e[3]})
	}
	return w
}

// SurfaceView renders the potential surface as a rotating wireframe.
type SurfaceView struct {
	Map    *field.Map
	Scale  analysis.Scale
	Camera *Camera
	Stride int
	Width  int
	Height int
}

func (sv SurfaceView) Render() string {
	c := NewCanvas(sv.Width, sv.Height)
	cam := sv.Camera
	if cam == nil {
		cam = NewCamera()
	}
	Render3D(c, SurfaceWireframe(sv.Map, sv.Scale, sv.Stride), cam)
	return c.String()
}
