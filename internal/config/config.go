package config

const (
	WindowWidth  = 1280
	WindowHeight = 720

	// Viewport
	SupersampleFactor = 2
	MobileMaxWidth    = 768
	MinLogicalSize    = 1

	// Node field
	NodeCount     = 55
	Depth         = 600
	FOV           = 500
	RecycleZ      = -50
	WorldSpread   = 1.4 // x/y drawn within ±0.7 of the viewport extent
	MaxDrift      = 0.3 // vx, vy in ±MaxDrift/2
	MinApproach   = 0.15
	ApproachRange = 0.25
	MinNodeSize   = 1
	NodeSizeRange = 2
	PulseStep     = 0.02

	// Connections
	ConnectionDist   = 180
	ArcSegmentLength = 20
	MinArcSegments   = 4
	ArcJagBase       = 4
	ArcJagPerUnit    = 0.04
	ArcAlphaCeiling  = 0.5
	ArcAlphaFloor    = 0.02
	ArcGlowWidth     = 3
	ArcGlowAlpha     = 0.25
	ArcGlowBlur      = 15
	ArcCoreWidth     = 1
	ArcCoreAlpha     = 0.6
	ArcCoreBlur      = 6

	// Nodes
	NodeAlphaFloor = 0.03
	NodeHaloFactor = 8
	NodeHaloAlpha  = 0.2
	NodeCoreAlpha  = 0.8
	NodeMinRadius  = 0.5
	PulseBase      = 0.6
	PulseAmplitude = 0.4

	// Heartbeat bolt
	BoltMinInterval   = 180
	BoltIntervalRange = 200
	BoltBandMin       = 0.25
	BoltBandRange     = 0.5
	BoltStepMin       = 15
	BoltStepRange     = 25
	SpikeChance       = 0.08
	SpikeMin          = 60
	SpikeRange        = 80
	BoltJitter        = 20
	BoltDecay         = 0.012
	BoltGlowWidth     = 8
	BoltGlowAlpha     = 0.15
	BoltGlowBlur      = 30
	BoltCoreWidth     = 1.5
	BoltCoreAlpha     = 0.5
	BoltCoreBlur      = 10

	// Frame pacing for hosts without a display clock
	FrameRate = 60
)
