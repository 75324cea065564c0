package highlight

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Theme maps categories to foreground colors and precomputes the escape
// sequence selecting each color.
type Theme struct {
	// Name is the display name of the theme.
	Name string

	colors    [categoryCount]tcell.Color
	sgr       [categoryCount]string
	trueColor bool
}

// DefaultTheme returns the 16-color theme. Its escape sequences are the
// classic foreground codes (comments 36, keywords 33/32, strings 35,
// numbers 31, matches 34).
func DefaultTheme() *Theme {
	return NewTheme("default", map[Category]tcell.Color{
		Normal:    tcell.ColorDefault,
		Comment:   tcell.ColorTeal,
		MLComment: tcell.ColorTeal,
		Keyword1:  tcell.ColorOlive,
		Keyword2:  tcell.ColorGreen,
		String:    tcell.ColorPurple,
		Number:    tcell.ColorMaroon,
		Match:     tcell.ColorNavy,
	}, false)
}

// NewTheme creates a theme. Categories missing from colors use the
// terminal's default foreground. Without trueColor, RGB colors are
// approximated by the nearest entry of the 256-color palette.
func NewTheme(name string, colors map[Category]tcell.Color, trueColor bool) *Theme {
	t := &Theme{Name: name, trueColor: trueColor}
	for c := range t.colors {
		t.colors[c] = tcell.ColorDefault
	}
	for c, color := range colors {
		if c < categoryCount {
			t.colors[c] = color
		}
	}
	t.compile()
	return t
}

func (t *Theme) compile() {
	for c, color := range t.colors {
		t.sgr[c] = foregroundSGR(color, t.trueColor)
	}
}

// Color returns the color assigned to c.
func (t *Theme) Color(c Category) tcell.Color {
	if c >= categoryCount {
		return tcell.ColorDefault
	}
	return t.colors[c]
}

// Foreground returns the escape sequence selecting the foreground color
// of c.
func (t *Theme) Foreground(c Category) string {
	if c >= categoryCount {
		return resetForeground
	}
	return t.sgr[c]
}

// WithOverrides returns a copy of the theme with the given colors replaced.
func (t *Theme) WithOverrides(overrides map[Category]tcell.Color) *Theme {
	cp := *t
	for c, color := range overrides {
		if c < categoryCount {
			cp.colors[c] = color
		}
	}
	cp.compile()
	return &cp
}

// WithTrueColor returns a copy of the theme emitting 24-bit escapes for RGB
// colors when on is true, and nearest-palette escapes otherwise.
func (t *Theme) WithTrueColor(on bool) *Theme {
	cp := *t
	cp.trueColor = on
	cp.compile()
	return &cp
}

// TrueColor reports whether RGB colors are emitted as 24-bit escapes.
func (t *Theme) TrueColor() bool {
	return t.trueColor
}

// ParseColor parses a color given as "#rrggbb" or as a name known to
// tcell ("teal", "olive", "default", ...).
func ParseColor(s string) (tcell.Color, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(s)
		if err != nil {
			return tcell.ColorDefault, fmt.Errorf("invalid color %q: %w", s, err)
		}
		r, g, b := c.RGB255()
		return tcell.NewRGBColor(int32(r), int32(g), int32(b)), nil
	}
	if strings.EqualFold(s, "default") {
		return tcell.ColorDefault, nil
	}
	c := tcell.GetColor(strings.ToLower(s))
	if c == tcell.ColorDefault {
		return tcell.ColorDefault, fmt.Errorf("unknown color %q", s)
	}
	return c, nil
}

// ParseOverrides parses a comma separated list of category=color pairs,
// e.g. "comment=#5f8787,keyword1=yellow".
func ParseOverrides(spec string) (map[Category]tcell.Color, error) {
	overrides := make(map[Category]tcell.Color)
	for _, pair := range strings.Split(spec, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		name, value, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("invalid color override %q: want category=color", pair)
		}
		cat, ok := CategoryFromString(strings.TrimSpace(name))
		if !ok {
			return nil, fmt.Errorf("unknown category %q", name)
		}
		color, err := ParseColor(value)
		if err != nil {
			return nil, err
		}
		overrides[cat] = color
	}
	return overrides, nil
}

const resetForeground = "\x1b[39m"

// foregroundSGR returns the SGR sequence selecting color as foreground.
func foregroundSGR(color tcell.Color, trueColor bool) string {
	if !color.Valid() {
		return resetForeground
	}
	if color.IsRGB() {
		if trueColor {
			r, g, b := color.RGB()
			return fmt.Sprintf("\x1b[38;2;%d;%d;%dm", r, g, b)
		}
		color = nearestPaletteColor(color)
	}

	idx := paletteIndex(color)
	switch {
	case idx < 0:
		return resetForeground
	case idx < 8:
		return "\x1b[" + strconv.Itoa(30+idx) + "m"
	case idx < 16:
		return "\x1b[" + strconv.Itoa(90+idx-8) + "m"
	default:
		return "\x1b[38;5;" + strconv.Itoa(idx) + "m"
	}
}

// paletteIndex returns the 256-color palette index of a palette color, or
// -1 if color is not one.
func paletteIndex(color tcell.Color) int {
	for i := 0; i < 256; i++ {
		if tcell.PaletteColor(i) == color {
			return i
		}
	}
	return -1
}

// nearestPaletteColor approximates an RGB color with the closest entry of
// the 6x6x6 cube and gray ramp (indices 16-255), measured in Lab space.
func nearestPaletteColor(color tcell.Color) tcell.Color {
	target := toColorful(color)
	best, bestDist := 16, -1.0
	for i := 16; i < 256; i++ {
		d := target.DistanceLab(toColorful(tcell.PaletteColor(i)))
		if bestDist < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	return tcell.PaletteColor(best)
}

func toColorful(color tcell.Color) colorful.Color {
	r, g, b := color.RGB()
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}
