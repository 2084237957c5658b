// Package animation holds the backdrop effects of the search overlay.
//
// An Animation only computes parameters. It registers its point resources with
// a RenderTarget once in Init and rewrites their rotation and scale on every
// Update; the renderer reads them right before drawing.
package animation

import "image/color"

// Kind selects which concrete animation the factory builds.
type Kind string

const KindBlackHole Kind = "black_hole"

// Animation is the capability set every backdrop effect implements.
//
// Init must be called exactly once before Update. OnSearch and OnResize may be
// called at any time after Init. All methods run on the render loop goroutine.
type Animation interface {
	Init(target RenderTarget)
	Update()
	OnSearch()
	OnResize(width, height int)
}

// RenderTarget accepts the resources an animation wants drawn.
type RenderTarget interface {
	AddPoints(points *PointSet)
}

type Vec3 struct {
	X, Y, Z float64
}

// PointSet is a cloud of points in world space. The owning animation writes
// Rotation and DepthScale; the renderer applies the Z scale first and then
// rotates about the Y axis.
type PointSet struct {
	Positions  []Vec3
	Rotation   float64
	DepthScale float64
	Size       float64
	Opacity    float64
	Color      color.RGBA
}

// EffectParameters is the mutable state of a warp-capable effect.
type EffectParameters struct {
	Rotation        float64
	DepthScale      float64
	SpeedMultiplier float64
}

// Warping reports whether a burst is still decaying.
func (p EffectParameters) Warping() bool {
	return p.SpeedMultiplier > 1.0
}

// AtRest reports whether neither speed nor depth carries any burst residue.
func (p EffectParameters) AtRest() bool {
	return p.SpeedMultiplier <= 1.0 && p.DepthScale == 1.0
}
