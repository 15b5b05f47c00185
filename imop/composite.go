// Package imop implements the Porter-Duff composition operations
// used for mixing a graphic element with its backdrop.
// The image/draw core package implements only source-over-destination and source,
// and it cannot place the source at an arbitrary offset inside a separate output bitmap.
// This package covers the full operator set and is used to put a rasterized logo
// on top of its rounded backdrop.
package imop

import (
	"fmt"
	"image"
	"math"

	"github.com/luxfi/logo/utils"
)

// The supported composition operations.
const (
	Clear   = "clear"
	Copy    = "copy"
	Dst     = "dst"
	SrcOver = "src_over"
	DstOver = "dst_over"
	SrcIn   = "src_in"
	DstIn   = "dst_in"
	SrcOut  = "src_out"
	DstOut  = "dst_out"
	SrcAtop = "src_atop"
	DstAtop = "dst_atop"
	Xor     = "xor"
)

// Bitmap holds the result of a composition.
type Bitmap struct {
	Img *image.NRGBA
}

// Composite holds the currently active composition operation.
type Composite struct {
	current string
	ops     []string
}

// NewBitmap allocates a transparent bitmap covering rect.
func NewBitmap(rect image.Rectangle) *Bitmap {
	return &Bitmap{
		Img: image.NewNRGBA(rect),
	}
}

// InitOp initializes a new Composite with source-over as the active operation.
func InitOp() *Composite {
	return &Composite{
		current: SrcOver,
		ops: []string{
			Clear,
			Copy,
			Dst,
			SrcOver,
			DstOver,
			SrcIn,
			DstIn,
			SrcOut,
			DstOut,
			SrcAtop,
			DstAtop,
			Xor,
		},
	}
}

// Set activates one of the supported composition operations.
func (op *Composite) Set(cop string) error {
	for _, o := range op.ops {
		if o == cop {
			op.current = cop
			return nil
		}
	}
	return fmt.Errorf("unsupported composition operation: %q", cop)
}

// Get returns the active composition operation.
func (op *Composite) Get() string {
	return op.current
}

// factors returns the Porter-Duff source and backdrop fractions
// for the active operation given both alpha values.
func (op *Composite) factors(as, ab float64) (fa, fb float64) {
	switch op.current {
	case Clear:
		return 0, 0
	case Copy:
		return 1, 0
	case Dst:
		return 0, 1
	case SrcOver:
		return 1, 1 - as
	case DstOver:
		return 1 - ab, 1
	case SrcIn:
		return ab, 0
	case DstIn:
		return 0, as
	case SrcOut:
		return 1 - ab, 0
	case DstOut:
		return 0, 1 - as
	case SrcAtop:
		return ab, 1 - as
	case DstAtop:
		return 1 - ab, as
	case Xor:
		return 1 - ab, 1 - as
	}
	return 1, 1 - as
}

// Draw composes src over the dst backdrop and stores the result into bitmap.
// The source top-left corner is anchored at the at point of dst; dst pixels
// not covered by src are treated as if the source were fully transparent there.
// When bitmap is nil a new one, sized as dst, is allocated. The bitmap is returned.
func (op *Composite) Draw(bitmap *Bitmap, src, dst *image.NRGBA, at image.Point) *Bitmap {
	db := dst.Bounds()
	if bitmap == nil {
		bitmap = NewBitmap(db)
	}
	sb := src.Bounds().Add(at.Sub(src.Bounds().Min))

	for y := db.Min.Y; y < db.Max.Y; y++ {
		for x := db.Min.X; x < db.Max.X; x++ {
			var s [4]uint8
			if (image.Point{X: x, Y: y}).In(sb) {
				si := src.PixOffset(x-sb.Min.X+src.Rect.Min.X, y-sb.Min.Y+src.Rect.Min.Y)
				copy(s[:], src.Pix[si:si+4])
			}
			di := dst.PixOffset(x, y)
			d := dst.Pix[di : di+4]

			as := float64(s[3]) / 255
			ab := float64(d[3]) / 255
			fa, fb := op.factors(as, ab)

			// applying the alpha composition formula on premultiplied values
			ao := as*fa + ab*fb

			bi := bitmap.Img.PixOffset(x, y)
			out := bitmap.Img.Pix[bi : bi+4]
			if ao <= 0 {
				out[0], out[1], out[2], out[3] = 0, 0, 0, 0
				continue
			}
			for c := 0; c < 3; c++ {
				cs := float64(s[c]) / 255
				cb := float64(d[c]) / 255
				co := (as*cs*fa + ab*cb*fb) / ao
				out[c] = toByte(co)
			}
			out[3] = toByte(ao)
		}
	}
	return bitmap
}

// Over composes src on top of dst at the given offset using the source-over operation.
func Over(dst, src *image.NRGBA, at image.Point) *image.NRGBA {
	return InitOp().Draw(nil, src, dst, at).Img
}

func toByte(v float64) uint8 {
	return uint8(utils.Clamp(math.Round(v*255), 0, 255))
}
