package renderer

import (
	"fmt"
	"image"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// RenderConfig contains rendering configuration
type RenderConfig struct {
	Width           int     // Image width in pixels
	Height          int     // Image height in pixels
	SamplesPerPixel int     // Number of rays per pixel
	MaxDepth        int     // Maximum ray bounce depth
	Gamma           float64 // Output gamma encoding factor
	Seed            int64   // Base seed; tile i uses Seed+i
	NumWorkers      int     // Number of parallel workers (0 = use CPU count)
	TileSize        int     // Size of each square tile
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		Width:           200,
		Height:          200,
		SamplesPerPixel: 8,
		MaxDepth:        50,
		Gamma:           2.2,
		Seed:            42,
		NumWorkers:      0, // Auto-detect CPU count
		TileSize:        32,
	}
}

// Validate checks that the configuration can produce an image
func (c RenderConfig) Validate() error {
	if c.Width < 2 || c.Height < 2 {
		return fmt.Errorf("image size %dx%d too small: width and height must be at least 2", c.Width, c.Height)
	}
	if c.SamplesPerPixel <= 0 {
		return fmt.Errorf("samples per pixel must be positive, got %d", c.SamplesPerPixel)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("max depth must not be negative, got %d", c.MaxDepth)
	}
	if c.Gamma <= 0 {
		return fmt.Errorf("gamma must be positive, got %g", c.Gamma)
	}
	if c.NumWorkers < 0 {
		return fmt.Errorf("worker count must not be negative, got %d", c.NumWorkers)
	}
	if c.TileSize <= 0 {
		return fmt.Errorf("tile size must be positive, got %d", c.TileSize)
	}
	return nil
}

// Raytracer renders a scene into an image using a pool of tile workers
type Raytracer struct {
	scene  *scene.Scene
	config RenderConfig
	logger core.Logger
}

// NewRaytracer creates a new raytracer
func NewRaytracer(s *scene.Scene, config RenderConfig, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = core.NopLogger{}
	}
	return &Raytracer{
		scene:  s,
		config: config,
		logger: logger,
	}
}

// Render traces every pixel and returns the gamma-encoded image.
// The result depends only on the scene and configuration, not on the worker count.
func (rt *Raytracer) Render() (*image.RGBA, RenderStats, error) {
	if err := rt.config.Validate(); err != nil {
		return nil, RenderStats{}, fmt.Errorf("invalid render config: %w", err)
	}

	startTime := time.Now()
	width, height := rt.config.Width, rt.config.Height

	samplingConfig := rt.scene.SamplingConfig
	samplingConfig.Width = width
	samplingConfig.Height = height
	samplingConfig.SamplesPerPixel = rt.config.SamplesPerPixel
	samplingConfig.MaxDepth = rt.config.MaxDepth

	camera := rt.scene.NewCamera(float64(width) / float64(height))
	pathTracer := integrator.NewPathTracingIntegrator(rt.scene, samplingConfig)
	tileRenderer := NewTileRenderer(camera, pathTracer, width, height, rt.config.SamplesPerPixel, rt.config.Gamma)

	tiles := NewTileGrid(width, height, rt.config.TileSize, rt.config.Seed)
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	workerPool := NewWorkerPool(tileRenderer, len(tiles), rt.config.NumWorkers)
	workerPool.Start()
	defer workerPool.Stop()

	rt.logger.Printf("Rendering %dx%d at %d samples/pixel, depth %d (%d tiles, %d workers)...\n",
		width, height, rt.config.SamplesPerPixel, rt.config.MaxDepth, len(tiles), workerPool.GetNumWorkers())

	for i, tile := range tiles {
		workerPool.SubmitTask(TileTask{Tile: tile, TaskID: i, Image: img})
	}

	stats := RenderStats{
		MaxSamples: rt.config.SamplesPerPixel,
		Workers:    workerPool.GetNumWorkers(),
	}
	for range tiles {
		result, ok := workerPool.GetResult()
		if !ok {
			return nil, RenderStats{}, fmt.Errorf("worker pool closed unexpectedly")
		}
		if result.Error != nil {
			return nil, RenderStats{}, result.Error
		}
		stats.Merge(result.Stats)
	}

	stats.Elapsed = time.Since(startTime)
	rt.logger.Printf("Render completed in %v (%d samples, %.1f samples/pixel)\n",
		stats.Elapsed, stats.TotalSamples, stats.AverageSamples)

	return img, stats, nil
}
