// Package ui embeds the Lux logo into server rendered HTML pages.
package ui

import (
	"bytes"
	"html/template"
	"net/url"
	"strconv"
	"strings"

	"github.com/luxfi/logo"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// DefaultSize is the container edge used when Props.Size is empty.
const DefaultSize = "64px"

// Props configures the rendered logo container.
type Props struct {
	Variant logo.Variant
	// Size is any CSS length applied to both width and height.
	Size  string
	Class string
	// Style holds CSS declarations merged over the computed size.
	Style map[string]string
}

// Px formats a pixel length for Props.Size.
func Px(n int) string {
	return strconv.Itoa(n) + "px"
}

var (
	logoTmpl = template.Must(template.New("logo").Parse(
		`<div{{with .Class}} class="{{.}}"{{end}} style="{{.Style}}">{{.SVG}}</div>`))

	faviconTmpl = template.Must(template.New("favicon").Parse(
		`<link rel="icon" type="image/svg+xml" href="{{.}}"/>` +
			`<link rel="apple-touch-icon" href="{{.}}"/>`))
)

// Logo renders a sized container holding the raw SVG markup of the chosen variant.
func Logo(p Props) (template.HTML, error) {
	size := p.Size
	if size == "" {
		size = DefaultSize
	}
	decl := map[string]string{"width": size, "height": size}
	for k, v := range p.Style {
		decl[k] = v
	}

	keys := maps.Keys(decl)
	slices.Sort(keys)
	var style strings.Builder
	for i, k := range keys {
		if i > 0 {
			style.WriteByte(';')
		}
		style.WriteString(k + ":" + decl[k])
	}

	var buf bytes.Buffer
	err := logoTmpl.Execute(&buf, struct {
		Class string
		Style template.CSS
		SVG   template.HTML
	}{
		Class: p.Class,
		Style: template.CSS(style.String()),
		SVG:   template.HTML(p.Variant.SVG()),
	})
	if err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

// FaviconURL returns the color logo as a percent-encoded SVG data URL.
func FaviconURL() string {
	return "data:image/svg+xml," + url.PathEscape(logo.ColorSVG())
}

// Favicon renders the icon link declarations for a page head.
func Favicon() (template.HTML, error) {
	var buf bytes.Buffer
	if err := faviconTmpl.Execute(&buf, template.URL(FaviconURL())); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}
