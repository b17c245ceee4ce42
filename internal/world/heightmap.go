package world

import (
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// Heightmap is a grid of normalized heights in [0,1], row-major by Z.
type Heightmap struct {
	Width   int
	Depth   int
	Heights []float32
}

// At returns the height at grid cell (x, z).
func (h *Heightmap) At(x, z int) float32 {
	return h.Heights[z*h.Width+x]
}

// LoadHeightmap decodes a PNG, BMP or TIFF image into a heightmap using the
// luminance of each pixel.
func LoadHeightmap(path string) (*Heightmap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open heightmap: %w", err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode heightmap %s: %w", path, err)
	}
	hm, err := HeightmapFromImage(img)
	if err != nil {
		return nil, fmt.Errorf("%s heightmap %s: %w", format, path, err)
	}
	return hm, nil
}

// HeightmapFromImage converts any image to a heightmap.
func HeightmapFromImage(img image.Image) (*Heightmap, error) {
	b := img.Bounds()
	w, d := b.Dx(), b.Dy()
	if w < 2 || d < 2 {
		return nil, fmt.Errorf("heightmap must be at least 2x2, got %dx%d", w, d)
	}

	hm := &Heightmap{Width: w, Depth: d, Heights: make([]float32, w*d)}
	for z := 0; z < d; z++ {
		for x := 0; x < w; x++ {
			g := color.Gray16Model.Convert(img.At(b.Min.X+x, b.Min.Y+z)).(color.Gray16)
			hm.Heights[z*w+x] = float32(g.Y) / 0xffff
		}
	}
	return hm, nil
}

// TerrainVertices triangulates the heightmap into position-only vertices,
// two counter-clockwise triangles (seen from above) per grid cell.
// Cell (0,0) sits at origin; heights are multiplied by scale.
func TerrainVertices(hm *Heightmap, scale float32, origin mgl32.Vec3) []float32 {
	cells := (hm.Width - 1) * (hm.Depth - 1)
	out := make([]float32, 0, cells*6*3)

	vertex := func(x, z int) {
		out = append(out,
			origin.X()+float32(x),
			origin.Y()+hm.At(x, z)*scale,
			origin.Z()+float32(z),
		)
	}

	for z := 0; z < hm.Depth-1; z++ {
		for x := 0; x < hm.Width-1; x++ {
			vertex(x, z)
			vertex(x, z+1)
			vertex(x+1, z+1)

			vertex(x+1, z+1)
			vertex(x+1, z)
			vertex(x, z)
		}
	}
	return out
}
