package logo

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"math"
	"os"
	"path/filepath"

	"github.com/luxfi/logo/imop"
	"golang.org/x/image/colornames"
)

// Backdrop proportions relative to the icon size.
const (
	LogoRatio   = 0.65
	CornerRatio = 0.22 // macOS-style corner radius
)

// Layout holds the geometry of an icon composited on a backdrop.
type Layout struct {
	Size         int
	LogoSize     int
	Padding      int
	CornerRadius int
}

// DockLayout derives the backdrop geometry for an icon of the given size.
// The logo is centered, so the padding is the same on both axes.
func DockLayout(size int) Layout {
	logoSize := int(math.Floor(float64(size) * LogoRatio))
	return Layout{
		Size:         size,
		LogoSize:     logoSize,
		Padding:      (size - logoSize) / 2,
		CornerRadius: int(math.Floor(float64(size) * CornerRatio)),
	}
}

// Processor options
type Processor struct {
	// CurrentColor replaces currentColor references in shapes. Defaults to black.
	CurrentColor color.Color
	// Backdrop fills the rounded rectangle behind backgrounded icons. Defaults to black.
	Backdrop color.Color
}

// DefaultProcessor is used by the package level RenderIcon function.
var DefaultProcessor = &Processor{}

// RenderIcon rasterizes shape into a size x size image file at outputPath
// using the default processor.
func RenderIcon(shape, outputPath string, size int, addBackground bool) error {
	return DefaultProcessor.RenderIcon(shape, outputPath, size, addBackground)
}

// Render rasterizes shape to a size x size image. When addBackground is set the shape
// is scaled down to the layout logo size and centered on a rounded backdrop.
func (p *Processor) Render(shape string, size int, addBackground bool) (*image.NRGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	if !addBackground {
		return rasterize(shape, size, size, p.currentColor())
	}

	l := DockLayout(size)
	logo, err := rasterize(shape, l.LogoSize, l.LogoSize, p.currentColor())
	if err != nil {
		return nil, err
	}
	bg := roundedBackdrop(l.Size, l.CornerRadius, p.backdrop())

	return imop.Over(bg, logo, image.Pt(l.Padding, l.Padding)), nil
}

// RenderIcon renders the shape and writes it to outputPath, overwriting any existing file.
// The parent directory is created when missing.
func (p *Processor) RenderIcon(shape, outputPath string, size int, addBackground bool) error {
	img, err := p.Render(shape, size, addBackground)
	if err != nil {
		return fmt.Errorf("rendering %s: %w", outputPath, err)
	}

	var buf bytes.Buffer
	if err := encodeImg(&buf, outputPath, img); err != nil {
		return fmt.Errorf("encoding %s: %w", outputPath, err)
	}
	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return fmt.Errorf("unable to create the destination directory: %w", err)
	}
	if err := os.WriteFile(outputPath, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("unable to write the destination file: %w", err)
	}
	return nil
}

func (p *Processor) currentColor() color.Color {
	if p.CurrentColor == nil {
		return colornames.Black
	}
	return p.CurrentColor
}

func (p *Processor) backdrop() color.Color {
	if p.Backdrop == nil {
		return colornames.Black
	}
	return p.Backdrop
}
