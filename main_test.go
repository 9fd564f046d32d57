package main

import (
	"context"
	"errors"
	"flag"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-pathtracer/pkg/config"
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/output"
)

// isolateEnv keeps ambient PATHTRACER_* settings and .env files out of run
func isolateEnv(t *testing.T) {
	t.Helper()
	t.Setenv("PATHTRACER_ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
	for _, key := range []string{"SCENE", "POSTER", "OUTPUT", "THUMBNAIL", "BACKUP", "S3_BUCKET", "S3_PREFIX"} {
		t.Setenv("PATHTRACER_"+key, "")
	}
}

// smallRender returns flags for a fast render into dir
func smallRender(dir string, extra ...string) []string {
	args := []string{"-width", "16", "-height", "16", "-spp", "2", "-depth", "3", "-workers", "2",
		"-output", filepath.Join(dir, "render.png")}
	return append(args, extra...)
}

type fakeUploader struct {
	names []string
	sizes []image.Point
}

func (f *fakeUploader) UploadImage(ctx context.Context, name string, img image.Image) error {
	f.names = append(f.names, name)
	f.sizes = append(f.sizes, img.Bounds().Size())
	return nil
}

func TestRun(t *testing.T) {
	isolateEnv(t)
	dir := t.TempDir()

	if err := run(smallRender(dir, "-thumbnail", "8"), core.NopLogger{}); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	img, err := output.Load(filepath.Join(dir, "render.png"))
	if err != nil {
		t.Fatalf("Failed to load render: %v", err)
	}
	if img.Bounds().Dx() != 16 || img.Bounds().Dy() != 16 {
		t.Errorf("Expected 16x16 render, got %v", img.Bounds())
	}

	thumb, err := output.Load(filepath.Join(dir, "render_thumb.png"))
	if err != nil {
		t.Fatalf("Failed to load thumbnail: %v", err)
	}
	if thumb.Bounds().Dx() != 8 || thumb.Bounds().Dy() != 8 {
		t.Errorf("Expected 8x8 thumbnail, got %v", thumb.Bounds())
	}

	// A second run moves the first render aside
	if err := run(smallRender(dir, "-seed", "7"), core.NopLogger{}); err != nil {
		t.Fatalf("second run failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "render_bak.png")); err != nil {
		t.Errorf("Expected a backup of the first render: %v", err)
	}
}

func TestRun_Poster(t *testing.T) {
	isolateEnv(t)
	dir := t.TempDir()

	poster := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for i := range poster.Pix {
		poster.Pix[i] = 255
	}
	poster.Set(0, 0, color.RGBA{R: 255, A: 255})
	posterPath := filepath.Join(dir, "poster.bmp")
	if err := output.Save(poster, posterPath); err != nil {
		t.Fatal(err)
	}

	if err := run(smallRender(dir, "-poster", posterPath), core.NopLogger{}); err != nil {
		t.Fatalf("run with poster failed: %v", err)
	}

	err := run(smallRender(dir, "-poster", filepath.Join(dir, "missing.png")), core.NopLogger{})
	if err == nil || !strings.Contains(err.Error(), "poster") {
		t.Errorf("Expected poster load error, got %v", err)
	}
}

func TestRun_Upload(t *testing.T) {
	isolateEnv(t)
	dir := t.TempDir()

	fake := &fakeUploader{}
	original := newUploader
	newUploader = func(cfg config.S3Config, logger core.Logger) (imageUploader, error) {
		if cfg.Bucket != "renders" {
			t.Errorf("Expected bucket renders, got %s", cfg.Bucket)
		}
		return fake, nil
	}
	defer func() { newUploader = original }()

	if err := run(smallRender(dir, "-s3-bucket", "renders", "-thumbnail", "4"), core.NopLogger{}); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if len(fake.names) != 2 || fake.names[0] != "render.png" || fake.names[1] != "render_thumb.png" {
		t.Fatalf("Unexpected uploads %v", fake.names)
	}
	if fake.sizes[0] != image.Pt(16, 16) || fake.sizes[1] != image.Pt(4, 4) {
		t.Errorf("Unexpected upload sizes %v", fake.sizes)
	}
}

func TestRun_Errors(t *testing.T) {
	isolateEnv(t)
	dir := t.TempDir()

	tests := []struct {
		name     string
		args     []string
		contains string
	}{
		{"unknown scene", smallRender(dir, "-scene", "nonexistent"), "unknown scene"},
		{"bad extension", []string{"-width", "8", "-height", "8", "-output", filepath.Join(dir, "render.gif")}, "unsupported"},
		{"invalid size", []string{"-width", "1"}, "too small"},
		{"unknown flag", []string{"-bogus"}, "failed to parse flags"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := run(tt.args, core.NopLogger{})
			if err == nil || !strings.Contains(err.Error(), tt.contains) {
				t.Errorf("Expected error containing %q, got %v", tt.contains, err)
			}
		})
	}

	if err := run([]string{"-h"}, core.NopLogger{}); !errors.Is(err, flag.ErrHelp) {
		t.Errorf("Expected flag.ErrHelp, got %v", err)
	}
}
