package loaders

import (
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"os"

	_ "golang.org/x/image/bmp"  // BMP decoder
	_ "golang.org/x/image/tiff" // TIFF decoder

	"github.com/df07/go-pathtracer/pkg/material"
)

// LoadImage decodes a PNG, JPEG, TIFF or BMP file. The format is detected
// from the file header, not the extension.
func LoadImage(filename string) (image.Image, string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	img, format, err := image.Decode(file)
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode image %s: %w", filename, err)
	}
	return img, format, nil
}

// LoadTexture loads an image file as a linear-color texture. gamma is the
// encoding of the stored pixels (2.2 for ordinary photos, 1 for data maps).
func LoadTexture(filename string, gamma float64) (*material.ImageTexture, error) {
	img, _, err := LoadImage(filename)
	if err != nil {
		return nil, err
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("image %s has no pixels", filename)
	}
	return material.NewImageTextureFromImage(img, gamma), nil
}
