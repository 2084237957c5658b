package game

import (
	"math"
	"testing"

	"github.com/iburimskiy/warp-search/internal/animation"
	"github.com/iburimskiy/warp-search/internal/config"
)

func closeTo(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestStarFieldResize(t *testing.T) {
	f := NewStarField()
	f.Resize(1600, 900)

	fov := config.FieldOfView * math.Pi / 180
	want := 450 / math.Tan(fov/2)
	if !closeTo(f.focal, want) {
		t.Errorf("focal = %v, want %v", f.focal, want)
	}
	if f.width != 1600 || f.height != 900 {
		t.Errorf("viewport = %vx%v", f.width, f.height)
	}
}

func TestStarFieldProject(t *testing.T) {
	f := NewStarField()
	f.Resize(800, 600)

	tests := []struct {
		name     string
		p        animation.Vec3
		rotation float64
		depth    float64
		wantX    float64
		wantY    float64
		wantDist float64
	}{
		{
			name:  "origin lands in the centre",
			p:     animation.Vec3{}, depth: 1,
			wantX: 400, wantY: 300, wantDist: config.CameraDistance,
		},
		{
			name:  "quarter turn moves x into depth",
			p:     animation.Vec3{X: 100}, rotation: math.Pi / 2, depth: 1,
			wantX: 400, wantY: 300, wantDist: config.CameraDistance + 100,
		},
		{
			name:  "depth scale pulls points toward the camera",
			p:     animation.Vec3{Z: 100}, depth: 5,
			wantX: 400, wantY: 300, wantDist: config.CameraDistance - 500,
		},
		{
			name:  "positive y is up on screen",
			p:     animation.Vec3{Y: 100}, depth: 1,
			wantX: 400, wantY: 300 - f.focal*100/config.CameraDistance, wantDist: config.CameraDistance,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, dist, ok := f.project(tt.p, math.Cos(tt.rotation), math.Sin(tt.rotation), tt.depth)
			if !ok {
				t.Fatal("point unexpectedly culled")
			}
			if !closeTo(x, tt.wantX) || !closeTo(y, tt.wantY) || !closeTo(dist, tt.wantDist) {
				t.Errorf("project() = (%v, %v, %v), want (%v, %v, %v)", x, y, dist, tt.wantX, tt.wantY, tt.wantDist)
			}
		})
	}
}

func TestStarFieldProjectCullsBehindCamera(t *testing.T) {
	f := NewStarField()

	if _, _, _, ok := f.project(animation.Vec3{Z: 1500}, 1, 0, 1); ok {
		t.Error("point behind the camera was not culled")
	}
	// stretched past the camera
	if _, _, _, ok := f.project(animation.Vec3{Z: 250}, 1, 0, 5); ok {
		t.Error("stretched point behind the camera was not culled")
	}
}

func TestStarFieldAddPoints(t *testing.T) {
	f := NewStarField()
	bh := animation.NewBlackHole()
	bh.Init(f)

	if len(f.sets) != 1 || f.sets[0] != bh.Stars() {
		t.Errorf("star field holds %d sets, want the black hole's stars", len(f.sets))
	}
}

func TestPointSize(t *testing.T) {
	tests := []struct {
		dist float64
		want float64
	}{
		{config.CameraDistance, 2},
		{config.CameraDistance * 4, 1},
		{config.CameraDistance / 10, 4},
	}
	for _, tt := range tests {
		if got := pointSize(2, tt.dist); !closeTo(got, tt.want) {
			t.Errorf("pointSize(2, %v) = %v, want %v", tt.dist, got, tt.want)
		}
	}
}
