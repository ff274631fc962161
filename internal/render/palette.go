package render

// Palette holds every colour the hero animation uses.
type Palette struct {
	ArcGlow, ArcGlowShadow   Color
	ArcCore, ArcCoreShadow   Color
	BoltGlow, BoltGlowShadow Color
	BoltCore, BoltCoreShadow Color

	NodeHaloInner, NodeHaloOuter Color
	NodeCore                     Color
}

// DefaultPalette is the cyan scheme of the hero section.
func DefaultPalette() Palette {
	return Palette{
		ArcGlow:        RGB(0, 180, 216),
		ArcGlowShadow:  RGB(0, 180, 216).WithAlpha(0.7),
		ArcCore:        RGB(140, 225, 255).WithAlpha(0.85),
		ArcCoreShadow:  RGB(0, 200, 255).WithAlpha(0.4),
		BoltGlow:       RGB(0, 180, 216),
		BoltGlowShadow: RGB(0, 180, 216).WithAlpha(0.8),
		BoltCore:       RGB(180, 240, 255).WithAlpha(0.9),
		BoltCoreShadow: RGB(0, 220, 255).WithAlpha(0.5),
		NodeHaloInner:  RGB(0, 200, 240),
		NodeHaloOuter:  RGB(0, 180, 216).WithAlpha(0),
		NodeCore:       RGB(180, 240, 255),
	}
}
