package renderer

import (
	"image"
	"image/color"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/integrator"
)

// Camera generates primary rays for normalized image coordinates, v = 0 at the bottom
type Camera interface {
	GetRay(u, v float64) core.Ray
}

// TileRenderer handles the actual rendering of individual tiles using an integrator
type TileRenderer struct {
	camera          Camera
	integrator      integrator.Integrator
	width, height   int
	samplesPerPixel int
	gamma           float64
}

// NewTileRenderer creates a new tile renderer for an image of the given size
func NewTileRenderer(camera Camera, integratorInst integrator.Integrator, width, height, samplesPerPixel int, gamma float64) *TileRenderer {
	return &TileRenderer{
		camera:          camera,
		integrator:      integratorInst,
		width:           width,
		height:          height,
		samplesPerPixel: samplesPerPixel,
		gamma:           gamma,
	}
}

// RenderTile samples every pixel of the tile and writes the encoded colors into img.
// Tiles never overlap, so concurrent calls on one image are safe.
func (tr *TileRenderer) RenderTile(tile *Tile, img *image.RGBA) RenderStats {
	bounds := tile.Bounds
	stats := RenderStats{
		TotalPixels: bounds.Dx() * bounds.Dy(),
		MaxSamples:  tr.samplesPerPixel,
		Tiles:       1,
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			ps := tr.samplePixel(x, y, tile.Sampler)
			stats.TotalSamples += ps.SampleCount
			img.SetRGBA(x, y, vec3ToColor(ps.GetColor(), tr.gamma))
		}
	}

	stats.finalize()
	return stats
}

// samplePixel averages jittered samples for pixel (x, y), with y = 0 at the top of the image
func (tr *TileRenderer) samplePixel(x, y int, sampler core.Sampler) PixelStats {
	var ps PixelStats
	row := float64(tr.height - y - 1)

	for s := 0; s < tr.samplesPerPixel; s++ {
		jitter := sampler.Get2D()
		u := (float64(x) + jitter.X) / float64(tr.width-1)
		v := (row + jitter.Y) / float64(tr.height-1)

		ray := tr.camera.GetRay(u, v)
		ps.AddSample(tr.integrator.RayColor(ray, sampler))
	}

	return ps
}

// vec3ToColor converts a linear radiance to an opaque 8-bit pixel: gamma encode, then clamp and quantize
func vec3ToColor(colorVec core.Vec3, gamma float64) color.RGBA {
	rgb := colorVec.GammaCorrect(gamma).ToRGB()
	return color.RGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 255}
}
