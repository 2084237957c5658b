package game

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/warp-search/internal/animation"
	"github.com/iburimskiy/warp-search/internal/config"
)

// StarField draws registered point sets with a perspective camera placed on
// the +Z axis looking at the origin.
type StarField struct {
	sets   []*animation.PointSet
	width  float64
	height float64
	focal  float64
}

func NewStarField() *StarField {
	f := &StarField{}
	f.Resize(config.WindowWidth, config.WindowHeight)
	return f
}

func (f *StarField) AddPoints(points *animation.PointSet) {
	f.sets = append(f.sets, points)
}

// Resize recomputes the projection for a new viewport.
func (f *StarField) Resize(width, height int) {
	f.width = float64(width)
	f.height = float64(height)
	fov := config.FieldOfView * math.Pi / 180
	f.focal = (f.height / 2) / math.Tan(fov/2)
}

// project maps a world point to screen space. cos and sin belong to the
// set's Y rotation. ok is false for points behind the near plane.
func (f *StarField) project(p animation.Vec3, cos, sin, depthScale float64) (x, y, dist float64, ok bool) {
	z := p.Z * depthScale
	rx := p.X*cos + z*sin
	rz := -p.X*sin + z*cos

	dist = config.CameraDistance - rz
	if dist <= config.NearPlane {
		return 0, 0, 0, false
	}
	x = f.width/2 + f.focal*rx/dist
	y = f.height/2 - f.focal*p.Y/dist
	return x, y, dist, true
}

func (f *StarField) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)

	for _, set := range f.sets {
		alpha := clamp01(set.Opacity)
		clr := color.RGBA{
			R: uint8(float64(set.Color.R) * alpha),
			G: uint8(float64(set.Color.G) * alpha),
			B: uint8(float64(set.Color.B) * alpha),
			A: uint8(255 * alpha),
		}
		cos, sin := math.Cos(set.Rotation), math.Sin(set.Rotation)

		for _, p := range set.Positions {
			x, y, dist, ok := f.project(p, cos, sin, set.DepthScale)
			if !ok || x < 0 || y < 0 || x >= f.width || y >= f.height {
				continue
			}
			size := pointSize(set.Size, dist)
			vector.DrawFilledRect(screen, float32(x-size/2), float32(y-size/2), float32(size), float32(size), clr, false)
		}
	}
}

// pointSize shrinks points with distance, keeping them at least a pixel wide.
func pointSize(base, dist float64) float64 {
	s := base * config.CameraDistance / dist
	return math.Max(1, math.Min(s, base*2))
}
