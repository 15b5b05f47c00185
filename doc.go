/*
Package logo generates the Lux brand icon assets and exposes the logo vector shapes.

The logo is an upside-down triangle defined inline as SVG in four variants: full color,
monochrome outline, white and a solid menu bar glyph. The accessor API returns a variant
either as raw SVG markup, as bare base64 or as a data URL:

	svg := logo.Get(logo.Options{})
	url := logo.Get(logo.Options{Variant: logo.Mono, Format: logo.DataURLFormat})

The compositor rasterizes a shape into a square PNG of the requested size, optionally placed
on a rounded black backdrop the way macOS dock icons are drawn:

	if err := logo.RenderIcon(logo.ColorSVG(), "dist/icons/dock-512.png", 512, true); err != nil {
		log.Fatal(err)
	}

The Builder regenerates the whole icon set described by the embedded manifest.
The package provides a command line interface as well:

	$ luxlogo
*/
package logo
