package logo

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// Format selects the encoding returned by the accessor.
type Format string

// The supported accessor formats.
const (
	SVGFormat     Format = "svg"
	DataURLFormat Format = "dataUrl"
	Base64Format  Format = "base64"
)

var formats = []Format{SVGFormat, DataURLFormat, Base64Format}

// ParseFormat converts a format name into a Format.
// The empty string resolves to SVGFormat.
func ParseFormat(name string) (Format, error) {
	if name == "" {
		return SVGFormat, nil
	}
	for _, f := range formats {
		if strings.EqualFold(string(f), name) {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// dataURLPrefix is the MIME typed scheme prepended to base64 encoded logos.
const dataURLPrefix = "data:image/svg+xml;base64,"

// Options selects the logo variant and encoding. The zero value
// returns the color logo as SVG markup.
type Options struct {
	Variant Variant
	Format  Format
}

// Get returns the logo in the requested variant and format.
func Get(opts Options) string {
	switch opts.Format {
	case DataURLFormat:
		return DataURL(opts)
	case Base64Format:
		return Base64(opts)
	default:
		return opts.Variant.SVG()
	}
}

// Base64 returns the base64 encoding of the variant's UTF-8 SVG text.
func Base64(opts Options) string {
	return base64.StdEncoding.EncodeToString([]byte(opts.Variant.SVG()))
}

// DataURL returns the variant as a base64 data URL.
func DataURL(opts Options) string {
	return dataURLPrefix + Base64(opts)
}

// Pre-generated logos.
var (
	Logo             = ColorSVG()
	LogoMono         = MonoSVG()
	LogoWhite        = WhiteSVG()
	LogoDataURL      = DataURL(Options{})
	LogoMonoDataURL  = DataURL(Options{Variant: Mono})
	LogoWhiteDataURL = DataURL(Options{Variant: White})
)
