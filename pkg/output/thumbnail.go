package output

import (
	"image"

	"github.com/nfnt/resize"
)

// Thumbnail scales img down so its longest side is maxSize, keeping the aspect
// ratio. Images that already fit, or a non-positive maxSize, are returned unchanged.
func Thumbnail(img image.Image, maxSize int) image.Image {
	bounds := img.Bounds()
	if maxSize <= 0 || (bounds.Dx() <= maxSize && bounds.Dy() <= maxSize) {
		return img
	}

	// A zero dimension tells resize to preserve the aspect ratio
	if bounds.Dx() >= bounds.Dy() {
		return resize.Resize(uint(maxSize), 0, img, resize.Bilinear)
	}
	return resize.Resize(0, uint(maxSize), img, resize.Bilinear)
}

// ThumbnailPath returns the file name used for a thumbnail of path, e.g. render.png -> render_thumb.png
func ThumbnailPath(path string) string {
	return suffixedPath(path, "_thumb")
}
