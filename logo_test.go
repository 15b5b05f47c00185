package logo

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogo_GetDefaults(t *testing.T) {
	assert.Equal(t, ColorSVG(), Get(Options{}))
	assert.Equal(t, ColorSVG(), Get(Options{Format: SVGFormat}))
	assert.Equal(t, WhiteSVG(), Get(Options{Variant: White}))
	assert.Equal(t, ColorSVG(), Get(Options{Variant: Variant("sepia")}))
}

func TestLogo_EncodingsRoundTrip(t *testing.T) {
	for _, v := range variants {
		t.Run(string(v), func(t *testing.T) {
			raw := Get(Options{Variant: v})

			b64 := Get(Options{Variant: v, Format: Base64Format})
			decoded, err := base64.StdEncoding.DecodeString(b64)
			require.NoError(t, err)
			assert.Equal(t, raw, string(decoded))

			url := Get(Options{Variant: v, Format: DataURLFormat})
			require.True(t, strings.HasPrefix(url, "data:image/svg+xml;base64,"))
			decoded, err = base64.StdEncoding.DecodeString(strings.TrimPrefix(url, "data:image/svg+xml;base64,"))
			require.NoError(t, err)
			assert.Equal(t, raw, string(decoded))
		})
	}
}

func TestLogo_MonoDataURL(t *testing.T) {
	url := Get(Options{Variant: Mono, Format: DataURLFormat})

	const prefix = "data:image/svg+xml;base64,"
	require.True(t, strings.HasPrefix(url, prefix))

	svg, err := base64.StdEncoding.DecodeString(url[len(prefix):])
	require.NoError(t, err)
	assert.Equal(t, MonoSVG(), string(svg))
	assert.Contains(t, string(svg), `fill="none"`)
	assert.Contains(t, string(svg), `stroke="black"`)
	assert.Contains(t, string(svg), `stroke-width="2"`)
}

func TestLogo_Shapes(t *testing.T) {
	shapes := map[string]string{
		"color":   ColorSVG(),
		"mono":    MonoSVG(),
		"white":   WhiteSVG(),
		"menubar": MenuBarSVG(),
		"cropped": ColorSVGCropped(),
	}
	for name, svg := range shapes {
		assert.Contains(t, svg, `viewBox="0 0 100 100"`, name)
		assert.Contains(t, svg, `d="M50 85 L15 25 L85 25 Z"`, name)
		assert.Equal(t, 1, strings.Count(svg, "<path"), name)
	}

	assert.Contains(t, ColorSVG(), `fill="#ffffff"`)
	assert.Contains(t, WhiteSVG(), `fill="white"`)
	assert.Contains(t, MenuBarSVG(), `fill="currentColor"`)
	assert.Equal(t, ColorSVG(), ColorSVGCropped())
	assert.Equal(t, ColorSVG(), ColorSVG(), "shape generators are deterministic")
}

func TestLogo_PreGenerated(t *testing.T) {
	assert.Equal(t, ColorSVG(), Logo)
	assert.Equal(t, MonoSVG(), LogoMono)
	assert.Equal(t, WhiteSVG(), LogoWhite)
	assert.Equal(t, Get(Options{Format: DataURLFormat}), LogoDataURL)
	assert.Equal(t, Get(Options{Variant: Mono, Format: DataURLFormat}), LogoMonoDataURL)
	assert.Equal(t, Get(Options{Variant: White, Format: DataURLFormat}), LogoWhiteDataURL)
}

func TestLogo_Parse(t *testing.T) {
	v, err := ParseVariant("")
	require.NoError(t, err)
	assert.Equal(t, Color, v)

	v, err = ParseVariant("MONO")
	require.NoError(t, err)
	assert.Equal(t, Mono, v)

	_, err = ParseVariant("sepia")
	assert.ErrorIs(t, err, ErrUnknownVariant)

	f, err := ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, SVGFormat, f)

	f, err = ParseFormat("dataurl")
	require.NoError(t, err)
	assert.Equal(t, DataURLFormat, f)

	_, err = ParseFormat("png")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}
