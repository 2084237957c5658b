package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/warp-search/internal/animation"
)

// Renderer is the render target an animation registers with, plus the draw
// call that consumes whatever the animation last computed.
type Renderer interface {
	animation.RenderTarget
	Resize(width, height int)
	Draw(screen *ebiten.Image)
}

// Stage owns the single active animation, its render target and the viewport.
// It is driven from one goroutine: events and frames never interleave.
type Stage struct {
	newRenderer func() Renderer

	current  animation.Animation
	renderer Renderer
	width    int
	height   int
	frames   uint64
}

// NewStage creates a stage with the given initial viewport. newRenderer builds
// a fresh render target whenever an animation is installed.
func NewStage(width, height int, newRenderer func() Renderer) *Stage {
	return &Stage{
		newRenderer: newRenderer,
		width:       width,
		height:      height,
	}
}

// Start installs the animation selected by kind. Unknown kinds fall back to
// the default inside the factory.
func (s *Stage) Start(kind animation.Kind) {
	if s.current != nil {
		log.Printf("[Stage] Start called twice, swapping to %q", kind)
	}
	s.install(kind)
}

// SwapAnimation replaces the active animation. The new instance is fully
// initialised before the stage lets go of the old one.
func (s *Stage) SwapAnimation(kind animation.Kind) {
	s.install(kind)
}

func (s *Stage) install(kind animation.Kind) {
	renderer := s.newRenderer()
	renderer.Resize(s.width, s.height)

	next := animation.Create(kind)
	next.Init(renderer)

	s.renderer = renderer
	s.current = next
	log.Printf("[Stage] Animation %q started at %dx%d", kind, s.width, s.height)
}

// Resize updates the projection and notifies the animation. Repeated calls
// with the same size are ignored.
func (s *Stage) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}
	s.width, s.height = width, height
	if s.renderer != nil {
		s.renderer.Resize(width, height)
	}
	if s.current != nil {
		s.current.OnResize(width, height)
	}
}

// Search forwards a submitted query to the animation.
func (s *Stage) Search() {
	if s.current != nil {
		s.current.OnSearch()
	}
}

// Update advances the animation by one frame.
func (s *Stage) Update() {
	if s.current == nil {
		return
	}
	s.current.Update()
	s.frames++
}

// Draw renders the parameters the animation left behind.
func (s *Stage) Draw(screen *ebiten.Image) {
	if s.renderer != nil {
		s.renderer.Draw(screen)
	}
}

// RunOnce is one complete frame tick: update, then draw.
func (s *Stage) RunOnce(screen *ebiten.Image) {
	s.Update()
	s.Draw(screen)
}

// Animation returns the active animation, or nil before Start.
func (s *Stage) Animation() animation.Animation {
	return s.current
}

// Frames is the number of updates delivered to animations so far.
func (s *Stage) Frames() uint64 {
	return s.frames
}

func (s *Stage) Size() (int, int) {
	return s.width, s.height
}
