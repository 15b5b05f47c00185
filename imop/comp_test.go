package imop

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComp_Basic(t *testing.T) {
	assert := assert.New(t)

	op := InitOp()
	assert.Equal(SrcOver, op.Get())

	assert.NoError(op.Set(Clear))
	assert.Equal(Clear, op.Get())

	assert.Error(op.Set("unsupported_composite_operation"))
	assert.Equal(Clear, op.Get())

	assert.NoError(op.Set(Dst))
	assert.Equal(Dst, op.Get())
}

func TestComp_Ops(t *testing.T) {
	transparent := color.NRGBA{R: 0, G: 0, B: 0, A: 0}
	cyan := color.NRGBA{R: 33, G: 150, B: 243, A: 255}
	magenta := color.NRGBA{R: 233, G: 30, B: 99, A: 255}

	rect := image.Rect(0, 0, 10, 10)
	source := image.NewNRGBA(rect)
	backdrop := image.NewNRGBA(rect)

	draw.Draw(source, image.Rect(0, 4, 6, 10), &image.Uniform{cyan}, image.Point{}, draw.Src)
	draw.Draw(backdrop, image.Rect(4, 0, 10, 6), &image.Uniform{magenta}, image.Point{}, draw.Src)

	// Pick three representative pixels from the generated output: only the backdrop
	// covers the top right, only the source covers the bottom left, both cover the center.
	tests := []struct {
		op                          string
		topRight, bottomLeft, center color.NRGBA
	}{
		{Clear, transparent, transparent, transparent},
		{Copy, transparent, cyan, cyan},
		{Dst, magenta, transparent, magenta},
		{SrcOver, magenta, cyan, cyan},
		{DstOver, magenta, cyan, magenta},
		{SrcIn, transparent, transparent, cyan},
		{DstIn, transparent, transparent, magenta},
		{SrcOut, transparent, cyan, transparent},
		{DstOut, magenta, transparent, transparent},
		{SrcAtop, magenta, transparent, cyan},
		{DstAtop, transparent, cyan, magenta},
		{Xor, magenta, cyan, transparent},
	}

	for _, tt := range tests {
		t.Run(tt.op, func(t *testing.T) {
			op := InitOp()
			assert.NoError(t, op.Set(tt.op))
			bmp := op.Draw(nil, source, backdrop, image.Point{})

			assert.Equal(t, tt.topRight, bmp.Img.NRGBAAt(9, 0))
			assert.Equal(t, tt.bottomLeft, bmp.Img.NRGBAAt(0, 9))
			assert.Equal(t, tt.center, bmp.Img.NRGBAAt(5, 5))
		})
	}
}

func TestComp_OverWithOffset(t *testing.T) {
	assert := assert.New(t)

	white := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	black := color.NRGBA{A: 255}

	backdrop := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	draw.Draw(backdrop, backdrop.Bounds(), &image.Uniform{black}, image.Point{}, draw.Src)

	logo := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	draw.Draw(logo, logo.Bounds(), &image.Uniform{white}, image.Point{}, draw.Src)

	out := Over(backdrop, logo, image.Pt(2, 2))

	assert.Equal(backdrop.Bounds(), out.Bounds())
	assert.Equal(black, out.NRGBAAt(1, 1))
	assert.Equal(white, out.NRGBAAt(2, 2))
	assert.Equal(white, out.NRGBAAt(5, 5))
	assert.Equal(black, out.NRGBAAt(6, 6))
	// The backdrop is left untouched.
	assert.Equal(black, backdrop.NRGBAAt(3, 3))
}

func TestComp_OverHalfTransparent(t *testing.T) {
	backdrop := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	backdrop.SetNRGBA(0, 0, color.NRGBA{A: 255})

	src := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	src.SetNRGBA(0, 0, color.NRGBA{R: 255, G: 255, B: 255, A: 128})

	got := Over(backdrop, src, image.Point{}).NRGBAAt(0, 0)
	assert.Equal(t, uint8(255), got.A)
	assert.Equal(t, uint8(128), got.R)
	assert.Equal(t, got.R, got.G)
	assert.Equal(t, got.R, got.B)
}
