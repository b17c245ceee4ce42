package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where the demo looks for an optional settings file.
const DefaultPath = "chunkview.yaml"

// Settings holds every tunable of the demo. Zero values are never used
// directly; Load starts from Default and overlays the file.
type Settings struct {
	Window  WindowSettings  `yaml:"window"`
	Chunks  ChunkSettings   `yaml:"chunks"`
	Camera  CameraSettings  `yaml:"camera"`
	Render  RenderSettings  `yaml:"render"`
	Terrain TerrainSettings `yaml:"terrain"`

	LogLevel string `yaml:"log_level"`
}

type WindowSettings struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	VSync  bool   `yaml:"vsync"`
}

// ChunkSettings controls which cubes exist around the camera.
type ChunkSettings struct {
	Size        int    `yaml:"size"`
	Cubic       bool   `yaml:"cubic"`
	VisitPolicy string `yaml:"visit_policy"`
	VisitRadius int    `yaml:"visit_radius"`
}

type CameraSettings struct {
	Speed          float32    `yaml:"speed"`
	Sensitivity    float32    `yaml:"sensitivity"`
	FastMultiplier float32    `yaml:"fast_multiplier"`
	Start          [3]float32 `yaml:"start"`
}

type RenderSettings struct {
	FOV       float32 `yaml:"fov"`
	NearPlane float32 `yaml:"near"`
	FarPlane  float32 `yaml:"far"`
	FPSLimit  int     `yaml:"fps_limit"`
	ShaderDir string  `yaml:"shader_dir"`
}

// TerrainSettings enables the height-map terrain when Heightmap is set or
// Procedural is true. An image file takes precedence.
type TerrainSettings struct {
	Heightmap  string  `yaml:"heightmap"`
	Procedural bool    `yaml:"procedural"`
	Seed       int64   `yaml:"seed"`
	Size       int     `yaml:"size"`
	Scale      float32 `yaml:"scale"`
}

// Default returns the settings the demo runs with when no file is present.
func Default() Settings {
	return Settings{
		Window: WindowSettings{
			Width:  800,
			Height: 600,
			Title:  "3D Render",
			VSync:  true,
		},
		Chunks: ChunkSettings{
			Size:        10,
			VisitPolicy: "neighborhood",
			VisitRadius: 1,
		},
		Camera: CameraSettings{
			Speed:          2.5,
			Sensitivity:    0.1,
			FastMultiplier: 2.0,
			Start:          [3]float32{0, 0, 3},
		},
		Render: RenderSettings{
			FOV:       45.0,
			NearPlane: 0.1,
			FarPlane:  100.0,
			ShaderDir: "assets/shaders",
		},
		Terrain: TerrainSettings{
			Size:  64,
			Scale: 8.0,
		},
		LogLevel: "info",
	}
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (Settings, error) {
	s := Default()
	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("read settings: %w", err)
	}
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return s, fmt.Errorf("%s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return s, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Validate rejects settings the renderer cannot work with.
func (s Settings) Validate() error {
	if s.Window.Width <= 0 || s.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", s.Window.Width, s.Window.Height)
	}
	if s.Chunks.Size <= 0 {
		return fmt.Errorf("chunk size must be positive, got %d", s.Chunks.Size)
	}
	if s.Chunks.VisitRadius < 0 {
		return fmt.Errorf("visit radius must not be negative, got %d", s.Chunks.VisitRadius)
	}
	switch s.Chunks.VisitPolicy {
	case "neighborhood", "accumulate":
	default:
		return fmt.Errorf("unknown visit policy %q", s.Chunks.VisitPolicy)
	}
	if s.Render.NearPlane <= 0 || s.Render.FarPlane <= s.Render.NearPlane {
		return fmt.Errorf("invalid clip planes near=%v far=%v", s.Render.NearPlane, s.Render.FarPlane)
	}
	if s.Terrain.Procedural && s.Terrain.Size < 2 {
		return fmt.Errorf("procedural terrain size must be at least 2, got %d", s.Terrain.Size)
	}
	if _, err := s.Level(); err != nil {
		return err
	}
	if s.Render.FPSLimit < 0 {
		return fmt.Errorf("fps limit must not be negative, got %d", s.Render.FPSLimit)
	}
	return nil
}

// Level parses LogLevel ("debug", "info", "warn", "error").
func (s Settings) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log level: %w", err)
	}
	return lvl, nil
}
