package imageutil

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	"image/png"
	"io"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// DefaultMaxDimension is the default bounding box of a logo thumbnail
const DefaultMaxDimension = 128

// ResizeConfig holds configuration for image resizing
type ResizeConfig struct {
	MaxDimension int    // Maximum width or height (default 128)
	Quality      int    // JPEG quality 1-100 (default 85)
	OutputFormat string // "png" or "jpeg" (default "png")
}

// DefaultConfig returns default resize configuration
func DefaultConfig() *ResizeConfig {
	return &ResizeConfig{
		MaxDimension: DefaultMaxDimension,
		Quality:      85,
		OutputFormat: "png",
	}
}

// Info describes a decodable image
type Info struct {
	Format string
	Width  int
	Height int
}

// Inspect decodes only the image header and reports its format and size
func Inspect(imageData []byte) (Info, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(imageData))
	if err != nil {
		return Info{}, fmt.Errorf("failed to decode image: %w", err)
	}
	if cfg.Width == 0 || cfg.Height == 0 {
		return Info{}, fmt.Errorf("image has no pixels")
	}
	return Info{Format: format, Width: cfg.Width, Height: cfg.Height}, nil
}

// ResizeImage fits an image into the max dimension while maintaining aspect
// ratio and re-encodes it. Images that already fit are re-encoded unscaled.
func ResizeImage(imageData []byte, config *ResizeConfig) ([]byte, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if config.MaxDimension <= 0 {
		config.MaxDimension = DefaultMaxDimension
	}

	img, _, err := image.Decode(bytes.NewReader(imageData))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	newWidth, newHeight := width, height
	if width > config.MaxDimension || height > config.MaxDimension {
		if width > height {
			newWidth = config.MaxDimension
			newHeight = max(1, int(float64(height)*float64(config.MaxDimension)/float64(width)))
		} else {
			newHeight = config.MaxDimension
			newWidth = max(1, int(float64(width)*float64(config.MaxDimension)/float64(height)))
		}
	}

	dst := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))

	// CatmullRom is close to Lanczos and keeps logo edges crisp
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	var buf bytes.Buffer
	switch config.OutputFormat {
	case "jpeg", "jpg":
		err = jpeg.Encode(&buf, dst, &jpeg.Options{Quality: config.Quality})
	default:
		err = png.Encode(&buf, dst)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to encode resized image: %w", err)
	}

	return buf.Bytes(), nil
}

// ResizeImageReader resizes an image from an io.Reader
func ResizeImageReader(r io.Reader, config *ResizeConfig) ([]byte, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read image data: %w", err)
	}
	return ResizeImage(data, config)
}
