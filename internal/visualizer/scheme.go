package visualizer

import (
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Scheme names one of the fallback ring color schemes used when no album
// color is available.
type Scheme uint8

const (
	SchemeCyan Scheme = iota
	SchemeWarm
	SchemePurple
	SchemeGreen
	SchemeSunset
	SchemeOcean
	schemeCount
)

// Depth stops run nearest (brightest) to farthest.
var schemeStops = [schemeCount][4]RGB{
	SchemeCyan:   {{0, 255, 255}, {0, 200, 255}, {0, 150, 200}, {0, 100, 150}},
	SchemeWarm:   {{255, 100, 0}, {255, 150, 50}, {200, 100, 0}, {150, 70, 0}},
	SchemePurple: {{200, 50, 255}, {180, 80, 230}, {150, 50, 200}, {100, 30, 150}},
	SchemeGreen:  {{50, 255, 150}, {50, 220, 120}, {30, 180, 100}, {20, 120, 70}},
	SchemeSunset: {{255, 100, 150}, {255, 150, 100}, {200, 100, 100}, {150, 70, 80}},
	SchemeOcean:  {{0, 150, 255}, {20, 120, 220}, {10, 80, 180}, {5, 50, 120}},
}

var schemeNames = [schemeCount]string{"cyan", "warm", "purple", "green", "sunset", "ocean"}

var schemeLabels = [schemeCount]string{
	"Cyan (Default)",
	"Warm (Orange/Red)",
	"Purple/Magenta",
	"Green/Emerald",
	"Sunset Gradient",
	"Ocean (Deep Blue)",
}

// SchemeNames lists the configuration names of all fallback schemes.
func SchemeNames() []string {
	return schemeNames[:]
}

// ParseScheme resolves a configuration name. Unknown names return
// SchemeCyan and false.
func ParseScheme(s string) (Scheme, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range schemeNames {
		if n == s {
			return Scheme(i), true
		}
	}
	return SchemeCyan, false
}

func (s Scheme) valid() Scheme {
	if s >= schemeCount {
		return SchemeCyan
	}
	return s
}

// Next cycles forward through the schemes.
func (s Scheme) Next() Scheme {
	return (s.valid() + 1) % schemeCount
}

// Prev cycles backward through the schemes.
func (s Scheme) Prev() Scheme {
	s = s.valid()
	if s == 0 {
		return schemeCount - 1
	}
	return s - 1
}

func (s Scheme) String() string {
	return schemeNames[s.valid()]
}

// Label returns a human-readable scheme name.
func (s Scheme) Label() string {
	return schemeLabels[s.valid()]
}

// Gradient returns the scheme's four depth stops.
func (s Scheme) Gradient() Gradient {
	stops := schemeStops[s.valid()]
	return Gradient{Name: s.String(), Stops: stops[:]}
}

// AlbumScheme derives a four-stop depth scheme from one base color: a tint
// toward white, the base itself, and two shades toward black. Blending is
// done in Lab space so the steps look even.
func AlbumScheme(base RGB) Gradient {
	c := base.toColorful()
	white := colorful.Color{R: 1, G: 1, B: 1}
	black := colorful.Color{}
	return Gradient{
		Name: "album",
		Stops: []RGB{
			fromColorful(c.BlendLab(white, 0.25)),
			base,
			fromColorful(c.BlendLab(black, 0.3)),
			fromColorful(c.BlendLab(black, 0.55)),
		},
	}
}
