package snow

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Attrs are the externally supplied effect attributes, resolved once at
// startup and immutable afterwards.
type Attrs struct {
	Color    RGB
	ScaleMax float64
	Seed     uint64
	Mute     bool
}

func DefaultAttrs() Attrs {
	return Attrs{
		Color:    RGB{R: 255, G: 255, B: 255},
		ScaleMax: DefaultScaleMax,
	}
}

type attrsFile struct {
	Color string  `yaml:"color"`
	Scale float64 `yaml:"scale"`
	Seed  uint64  `yaml:"seed"`
	Mute  bool    `yaml:"mute"`
}

// LoadAttrs resolves attrs from an optional yaml file, then applies env
// overrides (SNOWFALL_COLOR, SNOWFALL_SCALE, SNOWFALL_SEED, SNOWFALL_MUTE).
// A missing file is not an error; a malformed one is.
func LoadAttrs(path string) (Attrs, error) {
	attrs := DefaultAttrs()

	if path != "" {
		data, err := os.ReadFile(path)
		if err == nil {
			var af attrsFile
			if err := yaml.Unmarshal(data, &af); err != nil {
				return attrs, fmt.Errorf("parse %s: %w", path, err)
			}
			if af.Color != "" {
				col, err := ParseHexColor(af.Color)
				if err != nil {
					return attrs, fmt.Errorf("parse %s: %w", path, err)
				}
				attrs.Color = col
			}
			if af.Scale > 0 {
				attrs.ScaleMax = af.Scale
			}
			attrs.Seed = af.Seed
			attrs.Mute = af.Mute
		} else if !os.IsNotExist(err) {
			return attrs, fmt.Errorf("read %s: %w", path, err)
		}
	}

	if s := os.Getenv("SNOWFALL_COLOR"); s != "" {
		col, err := ParseHexColor(s)
		if err != nil {
			return attrs, fmt.Errorf("SNOWFALL_COLOR: %w", err)
		}
		attrs.Color = col
	}
	if s := os.Getenv("SNOWFALL_SCALE"); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil || v <= 0 {
			return attrs, fmt.Errorf("SNOWFALL_SCALE: bad value %q", s)
		}
		attrs.ScaleMax = v
	}
	if s := os.Getenv("SNOWFALL_SEED"); s != "" {
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return attrs, fmt.Errorf("SNOWFALL_SEED: bad value %q", s)
		}
		attrs.Seed = v
	}
	if s := os.Getenv("SNOWFALL_MUTE"); s != "" {
		attrs.Mute = s == "1" || strings.EqualFold(s, "true")
	}

	return attrs, nil
}

// ParseHexColor parses "#RRGGBB" (the leading # is optional).
func ParseHexColor(s string) (RGB, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 {
		return RGB{}, fmt.Errorf("color %q: want RRGGBB", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("color %q: %w", s, err)
	}
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}
