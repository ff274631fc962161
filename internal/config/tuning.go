package config

import (
	"bytes"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/iburimskiy/electric-network/internal/render"
)

// Tuning is the runtime-adjustable subset of the constants above. It is read
// from an optional YAML file; keys that are absent keep their defaults.
type Tuning struct {
	NodeCount      int         `yaml:"node_count"`
	Depth          float64     `yaml:"depth"`
	FOV            float64     `yaml:"fov"`
	ConnectionDist float64     `yaml:"connection_dist"`
	MobileMaxWidth float64     `yaml:"mobile_max_width"`
	Palette        PaletteSpec `yaml:"palette"`
}

// ColorSpec is a hex colour plus straight alpha, e.g. {hex: "#00b4d8", alpha: 0.7}.
type ColorSpec struct {
	Hex   string  `yaml:"hex"`
	Alpha float64 `yaml:"alpha"`
}

type PaletteSpec struct {
	ArcGlow     ColorSpec `yaml:"arc_glow"`
	ArcGlowHalo ColorSpec `yaml:"arc_glow_shadow"`
	ArcCore     ColorSpec `yaml:"arc_core"`
	ArcCoreHalo ColorSpec `yaml:"arc_core_shadow"`

	BoltGlow     ColorSpec `yaml:"bolt_glow"`
	BoltGlowHalo ColorSpec `yaml:"bolt_glow_shadow"`
	BoltCore     ColorSpec `yaml:"bolt_core"`
	BoltCoreHalo ColorSpec `yaml:"bolt_core_shadow"`

	NodeHaloInner ColorSpec `yaml:"node_halo_inner"`
	NodeHaloOuter ColorSpec `yaml:"node_halo_outer"`
	NodeCore      ColorSpec `yaml:"node_core"`
}

func DefaultTuning() Tuning {
	return Tuning{
		NodeCount:      NodeCount,
		Depth:          Depth,
		FOV:            FOV,
		ConnectionDist: ConnectionDist,
		MobileMaxWidth: MobileMaxWidth,
		Palette: PaletteSpec{
			ArcGlow:     ColorSpec{"#00b4d8", 1},
			ArcGlowHalo: ColorSpec{"#00b4d8", 0.7},
			ArcCore:     ColorSpec{"#8ce1ff", 0.85},
			ArcCoreHalo: ColorSpec{"#00c8ff", 0.4},

			BoltGlow:     ColorSpec{"#00b4d8", 1},
			BoltGlowHalo: ColorSpec{"#00b4d8", 0.8},
			BoltCore:     ColorSpec{"#b4f0ff", 0.9},
			BoltCoreHalo: ColorSpec{"#00dcff", 0.5},

			NodeHaloInner: ColorSpec{"#00c8f0", 1},
			NodeHaloOuter: ColorSpec{"#00b4d8", 0},
			NodeCore:      ColorSpec{"#b4f0ff", 1},
		},
	}
}

// LoadTuning reads a YAML tuning file on top of DefaultTuning. An empty path
// returns the defaults.
func LoadTuning(path string) (Tuning, error) {
	t := DefaultTuning()
	if path == "" {
		return t, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return t, errors.Wrap(err, "read tuning file")
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil {
		return t, errors.Wrapf(err, "decode tuning file %s", path)
	}
	if err := t.Validate(); err != nil {
		return t, errors.Wrapf(err, "tuning file %s", path)
	}
	return t, nil
}

// Validate rejects values that would break the projector or the node pool.
func (t Tuning) Validate() error {
	switch {
	case t.NodeCount <= 0:
		return errors.Errorf("node_count must be positive, got %d", t.NodeCount)
	case t.Depth <= 0:
		return errors.Errorf("depth must be positive, got %g", t.Depth)
	case t.FOV <= -RecycleZ:
		// the recycle plane has to stay in front of the camera
		return errors.Errorf("fov must exceed %d, got %g", -RecycleZ, t.FOV)
	case t.ConnectionDist <= 0:
		return errors.Errorf("connection_dist must be positive, got %g", t.ConnectionDist)
	case t.MobileMaxWidth < 0:
		return errors.Errorf("mobile_max_width must not be negative, got %g", t.MobileMaxWidth)
	}
	_, err := t.Palette.Resolve()
	return err
}

// Resolve parses every entry into a render.Palette.
func (p PaletteSpec) Resolve() (render.Palette, error) {
	var out render.Palette
	entries := []struct {
		name string
		spec ColorSpec
		dst  *render.Color
	}{
		{"arc_glow", p.ArcGlow, &out.ArcGlow},
		{"arc_glow_shadow", p.ArcGlowHalo, &out.ArcGlowShadow},
		{"arc_core", p.ArcCore, &out.ArcCore},
		{"arc_core_shadow", p.ArcCoreHalo, &out.ArcCoreShadow},
		{"bolt_glow", p.BoltGlow, &out.BoltGlow},
		{"bolt_glow_shadow", p.BoltGlowHalo, &out.BoltGlowShadow},
		{"bolt_core", p.BoltCore, &out.BoltCore},
		{"bolt_core_shadow", p.BoltCoreHalo, &out.BoltCoreShadow},
		{"node_halo_inner", p.NodeHaloInner, &out.NodeHaloInner},
		{"node_halo_outer", p.NodeHaloOuter, &out.NodeHaloOuter},
		{"node_core", p.NodeCore, &out.NodeCore},
	}
	for _, e := range entries {
		if e.spec.Alpha < 0 || e.spec.Alpha > 1 {
			return out, errors.Errorf("palette %s: alpha %g out of [0,1]", e.name, e.spec.Alpha)
		}
		c, err := render.ParseHex(e.spec.Hex, e.spec.Alpha)
		if err != nil {
			return out, errors.Wrapf(err, "palette %s", e.name)
		}
		*e.dst = c
	}
	return out, nil
}
