package logo

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/bmp"
)

// rasterize decodes the vector shape and draws it scaled to a w x h canvas.
// Occurrences of currentColor are resolved to fg before decoding.
func rasterize(shape string, w, h int, fg color.Color) (*image.NRGBA, error) {
	shape = strings.ReplaceAll(shape, "currentColor", hexColor(fg))

	icon, err := oksvg.ReadIconStream(strings.NewReader(shape))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidShape, err)
	}
	if icon.ViewBox.W <= 0 || icon.ViewBox.H <= 0 {
		return nil, fmt.Errorf("%w: missing or empty viewBox", ErrInvalidShape)
	}
	icon.SetTarget(0, 0, float64(w), float64(h))

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	raster := rasterx.NewDasher(w, h, scanner)
	icon.Draw(raster, 1.0)

	return imgToNRGBA(img), nil
}

// roundedBackdrop draws a size x size transparent canvas holding a single
// rounded rectangle spanning the full canvas, filled with col.
func roundedBackdrop(size, radius int, col color.Color) *image.NRGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, img, img.Bounds())
	filler := rasterx.NewFiller(size, size, scanner)
	filler.SetColor(col)

	s, r := float64(size), float64(radius)
	rasterx.AddRoundRect(0, 0, s, s, r, r, 0, rasterx.RoundGap, filler)
	filler.Draw()

	return imgToNRGBA(img)
}

// encodeImg encodes an image to w in the format matching the file name extension.
func encodeImg(w io.Writer, name string, img image.Image) error {
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".png":
		return imaging.Encode(w, img, imaging.PNG, imaging.PNGCompressionLevel(png.DefaultCompression))
	case ".bmp":
		return bmp.Encode(w, img)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// imgToNRGBA converts any image type to *image.NRGBA with min-point at (0, 0).
func imgToNRGBA(img image.Image) *image.NRGBA {
	srcBounds := img.Bounds()
	if srcBounds.Min.X == 0 && srcBounds.Min.Y == 0 {
		if src0, ok := img.(*image.NRGBA); ok {
			return src0
		}
	}
	dst := image.NewNRGBA(srcBounds.Sub(srcBounds.Min))
	dstW, dstH := dst.Rect.Dx(), dst.Rect.Dy()

	switch src := img.(type) {
	case *image.NRGBA:
		rowSize := dstW * 4
		for dstY := 0; dstY < dstH; dstY++ {
			di := dst.PixOffset(0, dstY)
			si := src.PixOffset(srcBounds.Min.X, srcBounds.Min.Y+dstY)
			copy(dst.Pix[di:di+rowSize], src.Pix[si:si+rowSize])
		}
	case *image.RGBA:
		// un-premultiply the rasterizer output
		for dstY := 0; dstY < dstH; dstY++ {
			di := dst.PixOffset(0, dstY)
			si := src.PixOffset(srcBounds.Min.X, srcBounds.Min.Y+dstY)
			for dstX := 0; dstX < dstW; dstX++ {
				a := src.Pix[si+3]
				switch a {
				case 0:
				case 0xff:
					copy(dst.Pix[di:di+4], src.Pix[si:si+4])
				default:
					for c := 0; c < 3; c++ {
						dst.Pix[di+c] = uint8((uint32(src.Pix[si+c])*0xff + uint32(a)/2) / uint32(a))
					}
					dst.Pix[di+3] = a
				}
				di += 4
				si += 4
			}
		}
	default:
		for dstY := 0; dstY < dstH; dstY++ {
			di := dst.PixOffset(0, dstY)
			for dstX := 0; dstX < dstW; dstX++ {
				c := color.NRGBAModel.Convert(img.At(srcBounds.Min.X+dstX, srcBounds.Min.Y+dstY)).(color.NRGBA)
				dst.Pix[di+0] = c.R
				dst.Pix[di+1] = c.G
				dst.Pix[di+2] = c.B
				dst.Pix[di+3] = c.A
				di += 4
			}
		}
	}

	return dst
}

// hexColor formats c as an opaque #rrggbb SVG color.
func hexColor(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
}
