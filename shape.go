package logo

import (
	"fmt"
	"strings"
)

// Variant selects one of the stylistic renderings of the logo geometry.
type Variant string

// The supported logo variants.
const (
	Color   Variant = "color"
	Mono    Variant = "mono"
	White   Variant = "white"
	MenuBar Variant = "menubar"
)

var variants = []Variant{Color, Mono, White, MenuBar}

// ParseVariant converts a variant name into a Variant.
// The empty string resolves to Color.
func ParseVariant(name string) (Variant, error) {
	if name == "" {
		return Color, nil
	}
	for _, v := range variants {
		if strings.EqualFold(string(v), name) {
			return v, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownVariant, name)
}

// Settings describes the logical canvas the logo shapes are drawn on.
type Settings struct {
	ViewBox         string
	Width, Height   int
	MonoStrokeWidth int
}

// LogoSettings holds the canvas settings shared by every variant.
var LogoSettings = Settings{
	ViewBox:         "0 0 100 100",
	Width:           100,
	Height:          100,
	MonoStrokeWidth: 2,
}

// trianglePath is the upside-down triangle every variant draws.
const trianglePath = "M50 85 L15 25 L85 25 Z"

func svgDoc(attrs string) string {
	return `<svg viewBox="` + LogoSettings.ViewBox + `" xmlns="http://www.w3.org/2000/svg">
    <path d="` + trianglePath + `" ` + attrs + `/>
  </svg>`
}

// ColorSVG returns the color logo: a white upside-down triangle.
func ColorSVG() string {
	return svgDoc(`fill="#ffffff"`)
}

// MonoSVG returns the monochrome logo, an outlined triangle without fill.
func MonoSVG() string {
	return svgDoc(fmt.Sprintf(`fill="none" stroke="black" stroke-width="%d"`, LogoSettings.MonoStrokeWidth))
}

// ColorSVGCropped returns the tightly cropped color logo.
// The color logo is already minimal, so it is returned as is.
func ColorSVGCropped() string {
	return ColorSVG()
}

// WhiteSVG returns the white logo used on dark backgrounds.
func WhiteSVG() string {
	return svgDoc(`fill="white"`)
}

// MenuBarSVG returns the solid logo for menu bars. It is filled with currentColor
// so that it follows the text color of its host.
func MenuBarSVG() string {
	return svgDoc(`fill="currentColor"`)
}

// SVG returns the vector markup of the variant. Unknown variants fall back to Color.
func (v Variant) SVG() string {
	switch v {
	case Mono:
		return MonoSVG()
	case White:
		return WhiteSVG()
	case MenuBar:
		return MenuBarSVG()
	default:
		return ColorSVG()
	}
}
