package logo

import "errors"

var (
	// ErrUnknownVariant is returned when a variant name is not recognized.
	ErrUnknownVariant = errors.New("unknown logo variant")
	// ErrUnknownFormat is returned when an accessor format name is not recognized.
	ErrUnknownFormat = errors.New("unknown logo format")
	// ErrInvalidSize is returned for non-positive raster sizes.
	ErrInvalidSize = errors.New("icon size must be positive")
	// ErrInvalidShape is returned when a vector shape cannot be decoded.
	ErrInvalidShape = errors.New("malformed vector shape")
	// ErrUnsupportedFormat is returned when the output file extension has no encoder.
	ErrUnsupportedFormat = errors.New("unsupported image format")
	// ErrInvalidManifest is returned when the icon manifest is inconsistent.
	ErrInvalidManifest = errors.New("invalid icon manifest")
)
