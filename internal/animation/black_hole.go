package animation

import (
	"math"
	"math/rand/v2"

	"github.com/iburimskiy/warp-search/internal/config"
)

// BlackHole is a slowly rotating star field that stretches toward the viewer
// when a search fires and relaxes back afterwards.
type BlackHole struct {
	params EffectParameters
	stars  *PointSet
	random func() float64
}

func NewBlackHole() *BlackHole {
	return &BlackHole{random: rand.Float64}
}

// Init scatters the stars uniformly in a cube centred at the origin and hands
// them to the target.
func (b *BlackHole) Init(target RenderTarget) {
	positions := make([]Vec3, config.ParticleCount)
	for i := range positions {
		positions[i] = Vec3{
			X: (b.random() - 0.5) * config.FieldSize,
			Y: (b.random() - 0.5) * config.FieldSize,
			Z: (b.random() - 0.5) * config.FieldSize,
		}
	}

	b.params = EffectParameters{
		Rotation:        0,
		DepthScale:      1.0,
		SpeedMultiplier: 1.0,
	}
	b.stars = &PointSet{
		Positions:  positions,
		DepthScale: 1.0,
		Size:       config.StarSize,
		Opacity:    config.StarOpacity,
		Color:      config.StarColor,
	}
	if target != nil {
		target.AddPoints(b.stars)
	}
}

func (b *BlackHole) Update() {
	if b.stars == nil {
		return
	}
	p := &b.params

	p.Rotation += config.BaseRotationRate * p.SpeedMultiplier

	if p.SpeedMultiplier > 1.0 {
		p.Rotation += config.WarpSpin
		p.DepthScale = math.Min(p.DepthScale+config.WarpDepthStep, config.MaxDepthScale)
		p.SpeedMultiplier *= config.SpeedDecay
	} else if p.DepthScale > config.RelaxThreshold {
		p.DepthScale = math.Max(p.DepthScale*config.DepthDecay, 1.0)
	} else {
		// snap so the decay never leaves a residual stretch
		p.DepthScale = 1.0
	}

	b.stars.Rotation = p.Rotation
	b.stars.DepthScale = p.DepthScale
}

// OnSearch re-arms the burst at full intensity. Repeated calls do not stack.
func (b *BlackHole) OnSearch() {
	b.params.SpeedMultiplier = config.BurstSpeed
}

func (b *BlackHole) OnResize(width, height int) {}

// Params returns a copy of the current effect state.
func (b *BlackHole) Params() EffectParameters {
	return b.params
}

// Stars returns the registered point set, or nil before Init.
func (b *BlackHole) Stars() *PointSet {
	return b.stars
}
