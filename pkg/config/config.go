// Package config resolves the path tracer's settings from defaults, an
// optional .env file, PATHTRACER_* environment variables and command-line
// flags, in increasing order of precedence.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// envPrefix namespaces every environment variable read by Load
const envPrefix = "PATHTRACER_"

// Config holds all settings for one render run
type Config struct {
	Scene           string  // Built-in scene name
	Poster          string  // Optional image hung on the back wall
	Width           int     // Image width in pixels
	Height          int     // Image height in pixels
	SamplesPerPixel int     // Rays per pixel
	MaxDepth        int     // Maximum bounce depth
	Gamma           float64 // Output gamma
	Seed            int64   // Base random seed
	Workers         int     // Parallel workers (0 = CPU count)
	TileSize        int     // Square tile size in pixels
	Output          string  // Output image path; the extension picks the format
	Thumbnail       int     // Longest side of an extra thumbnail image (0 = none)
	Backup          bool    // Keep the previous output as <name>_bak<ext>
	S3              S3Config
}

// S3Config configures the optional upload of the rendered image
type S3Config struct {
	Bucket    string
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string
	Prefix    string // Key prefix inside the bucket
}

// Enabled reports whether an upload destination is configured
func (c S3Config) Enabled() bool {
	return c.Bucket != ""
}

// Default returns the built-in settings
func Default() Config {
	render := renderer.DefaultRenderConfig()
	return Config{
		Scene:           "cornell",
		Width:           render.Width,
		Height:          render.Height,
		SamplesPerPixel: render.SamplesPerPixel,
		MaxDepth:        render.MaxDepth,
		Gamma:           render.Gamma,
		Seed:            render.Seed,
		Workers:         render.NumWorkers,
		TileSize:        render.TileSize,
		Output:          "render.png",
		Thumbnail:       0,
		Backup:          true,
		S3: S3Config{
			Region: "us-east-1",
		},
	}
}

// Load builds the configuration for a run. args are the command-line
// arguments without the program name. A missing .env file is not an error.
// Load returns flag.ErrHelp (wrapped) when -h or -help is given.
func Load(args []string) (Config, error) {
	cfg := Default()

	envFile := ".env"
	if value, ok := os.LookupEnv(envPrefix + "ENV_FILE"); ok && value != "" {
		envFile = value
	}
	// godotenv never overrides variables already present in the environment
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load %s: %w", envFile, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}

	if err := cfg.applyFlags(args, io.Discard); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// applyEnv overrides fields from PATHTRACER_* variables
func (c *Config) applyEnv() error {
	c.Scene = envString("SCENE", c.Scene)
	c.Poster = envString("POSTER", c.Poster)
	c.Output = envString("OUTPUT", c.Output)
	c.S3.Bucket = envString("S3_BUCKET", c.S3.Bucket)
	c.S3.Region = envString("S3_REGION", c.S3.Region)
	c.S3.Endpoint = envString("S3_ENDPOINT", c.S3.Endpoint)
	c.S3.AccessKey = envString("S3_ACCESS_KEY", c.S3.AccessKey)
	c.S3.SecretKey = envString("S3_SECRET_KEY", c.S3.SecretKey)
	c.S3.Prefix = envString("S3_PREFIX", c.S3.Prefix)

	ints := []struct {
		key   string
		field *int
	}{
		{"WIDTH", &c.Width},
		{"HEIGHT", &c.Height},
		{"SPP", &c.SamplesPerPixel},
		{"DEPTH", &c.MaxDepth},
		{"WORKERS", &c.Workers},
		{"TILE_SIZE", &c.TileSize},
		{"THUMBNAIL", &c.Thumbnail},
	}
	for _, entry := range ints {
		if err := envInt(entry.key, entry.field); err != nil {
			return err
		}
	}

	if value, ok := lookupEnv("SEED"); ok {
		seed, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf("%sSEED: %w", envPrefix, err)
		}
		c.Seed = seed
	}
	if value, ok := lookupEnv("GAMMA"); ok {
		gamma, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("%sGAMMA: %w", envPrefix, err)
		}
		c.Gamma = gamma
	}
	if value, ok := lookupEnv("BACKUP"); ok {
		backup, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%sBACKUP: %w", envPrefix, err)
		}
		c.Backup = backup
	}
	return nil
}

// applyFlags overrides fields from command-line flags; usage goes to output
func (c *Config) applyFlags(args []string, output io.Writer) error {
	flags := flag.NewFlagSet("pathtracer", flag.ContinueOnError)
	flags.SetOutput(output)

	flags.StringVar(&c.Scene, "scene", c.Scene, "Scene name: "+strings.Join(scene.Names(), ", "))
	flags.StringVar(&c.Poster, "poster", c.Poster, "Image file (.png, .jpg, .tif or .bmp) to hang on the back wall")
	flags.IntVar(&c.Width, "width", c.Width, "Image width in pixels")
	flags.IntVar(&c.Height, "height", c.Height, "Image height in pixels")
	flags.IntVar(&c.SamplesPerPixel, "spp", c.SamplesPerPixel, "Samples per pixel")
	flags.IntVar(&c.MaxDepth, "depth", c.MaxDepth, "Maximum ray bounce depth")
	flags.Float64Var(&c.Gamma, "gamma", c.Gamma, "Output gamma")
	flags.Int64Var(&c.Seed, "seed", c.Seed, "Random seed")
	flags.IntVar(&c.Workers, "workers", c.Workers, "Number of parallel workers (0 = CPU count)")
	flags.IntVar(&c.TileSize, "tile", c.TileSize, "Tile size in pixels")
	flags.StringVar(&c.Output, "output", c.Output, "Output image (.png, .tif, .tiff or .bmp)")
	flags.IntVar(&c.Thumbnail, "thumbnail", c.Thumbnail, "Also write a thumbnail with this longest side (0 = off)")
	flags.BoolVar(&c.Backup, "backup", c.Backup, "Rename an existing output to <name>_bak before writing")
	flags.StringVar(&c.S3.Bucket, "s3-bucket", c.S3.Bucket, "Upload the image to this S3 bucket")
	flags.StringVar(&c.S3.Prefix, "s3-prefix", c.S3.Prefix, "Key prefix for S3 uploads")

	if err := flags.Parse(args); err != nil {
		return fmt.Errorf("failed to parse flags: %w", err)
	}
	if flags.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", flags.Args())
	}
	return nil
}

// Usage writes the flag documentation to w
func Usage(w io.Writer) {
	cfg := Default()
	_ = cfg.applyFlags([]string{"-h"}, w)
}

// Validate rejects settings that cannot produce an image
func (c Config) Validate() error {
	if err := c.RenderConfig().Validate(); err != nil {
		return err
	}
	if c.Thumbnail < 0 {
		return fmt.Errorf("thumbnail size must not be negative, got %d", c.Thumbnail)
	}
	if c.Output == "" {
		return errors.New("output path must not be empty")
	}
	return nil
}

// RenderConfig extracts the renderer settings
func (c Config) RenderConfig() renderer.RenderConfig {
	return renderer.RenderConfig{
		Width:           c.Width,
		Height:          c.Height,
		SamplesPerPixel: c.SamplesPerPixel,
		MaxDepth:        c.MaxDepth,
		Gamma:           c.Gamma,
		Seed:            c.Seed,
		NumWorkers:      c.Workers,
		TileSize:        c.TileSize,
	}
}

func lookupEnv(key string) (string, bool) {
	value, ok := os.LookupEnv(envPrefix + key)
	if !ok || strings.TrimSpace(value) == "" {
		return "", false
	}
	return strings.TrimSpace(value), true
}

func envString(key, fallback string) string {
	if value, ok := lookupEnv(key); ok {
		return value
	}
	return fallback
}

func envInt(key string, field *int) error {
	value, ok := lookupEnv(key)
	if !ok {
		return nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("%s%s: %w", envPrefix, key, err)
	}
	*field = parsed
	return nil
}
