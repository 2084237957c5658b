package config

import "image/color"

const (
	WindowWidth  = 1000
	WindowHeight = 700
	WindowTitle  = "Semantic File Search"

	// Search box and result list
	SearchBoxX      = 40
	SearchBoxY      = 40
	SearchBoxHeight = 36
	ResultRowHeight = 44
	ResultFadeIn    = 0.4 // seconds
	MaxQueryLength  = 256

	// Star field
	ParticleCount  = 6000
	FieldSize      = 2000.0
	StarSize       = 2.0
	StarOpacity    = 0.8
	FieldOfView    = 75.0 // degrees, vertical
	CameraDistance = 1000.0
	NearPlane      = 1.0

	// Black hole warp tuning
	BaseRotationRate = 0.0002
	WarpSpin         = 0.02
	WarpDepthStep    = 0.2
	MaxDepthScale    = 5.0
	SpeedDecay       = 0.96
	DepthDecay       = 0.95
	RelaxThreshold   = 1.05
	BurstSpeed       = 10.0
)

var (
	BackgroundColor = color.RGBA{R: 5, G: 5, B: 5, A: 255}
	StarColor       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)
