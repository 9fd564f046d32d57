package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"

	"github.com/df07/go-pathtracer/pkg/config"
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/loaders"
	"github.com/df07/go-pathtracer/pkg/output"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// posterGamma is the encoding assumed for poster images
const posterGamma = 2.2

// imageUploader is the part of output.S3Uploader used by run
type imageUploader interface {
	UploadImage(ctx context.Context, name string, img image.Image) error
}

// newUploader is replaced in tests
var newUploader = func(cfg config.S3Config, logger core.Logger) (imageUploader, error) {
	uploader, err := output.NewS3Uploader(cfg, logger)
	if err != nil {
		return nil, err
	}
	return uploader, nil
}

func main() {
	if err := run(os.Args[1:], renderer.NewDefaultLogger()); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fmt.Println("Monte-Carlo path tracer")
			fmt.Println("Usage: pathtracer [options]")
			fmt.Println()
			config.Usage(os.Stdout)
			fmt.Println()
			fmt.Println("Every option can also be set as PATHTRACER_<NAME> in the environment or a .env file.")
			return
		}
		log.Fatalf("Error: %v", err)
	}
}

// run loads the configuration, renders the selected scene and writes the results
func run(args []string, logger core.Logger) error {
	cfg, err := config.Load(args)
	if err != nil {
		return err
	}

	s, err := scene.New(cfg.Scene)
	if err != nil {
		return err
	}
	if cfg.Poster != "" {
		texture, err := loaders.LoadTexture(cfg.Poster, posterGamma)
		if err != nil {
			return fmt.Errorf("failed to load poster: %w", err)
		}
		scene.AddPoster(s, texture)
	}
	logger.Printf("Scene %s: %d primitives\n", cfg.Scene, s.GetPrimitiveCount())

	img, _, err := renderer.NewRaytracer(s, cfg.RenderConfig(), logger).Render()
	if err != nil {
		return err
	}

	if cfg.Backup {
		backup, err := output.Backup(cfg.Output)
		if err != nil {
			return err
		}
		if backup != "" {
			logger.Printf("Previous render moved to %s\n", backup)
		}
	}
	if err := output.Save(img, cfg.Output); err != nil {
		return err
	}
	logger.Printf("Render saved as %s\n", cfg.Output)

	var thumbnail image.Image
	if cfg.Thumbnail > 0 {
		thumbnail = output.Thumbnail(img, cfg.Thumbnail)
		thumbPath := output.ThumbnailPath(cfg.Output)
		if err := output.Save(thumbnail, thumbPath); err != nil {
			return err
		}
		logger.Printf("Thumbnail saved as %s\n", thumbPath)
	}

	if cfg.S3.Enabled() {
		uploader, err := newUploader(cfg.S3, logger)
		if err != nil {
			return err
		}
		ctx := context.Background()
		name := filepath.Base(cfg.Output)
		if err := uploader.UploadImage(ctx, name, img); err != nil {
			return err
		}
		if thumbnail != nil {
			if err := uploader.UploadImage(ctx, output.ThumbnailPath(name), thumbnail); err != nil {
				return err
			}
		}
	}
	return nil
}
