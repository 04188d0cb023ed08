package util

import (
	"image"
	"image/png"
	"math"
	"os"

	"github.com/memmaker/pyre/engine/glhf"
	"github.com/pkg/errors"
	xdraw "golang.org/x/image/draw"
)

// The particle shader samples a layered atlas, one layer per effect flavor.
const (
	AtlasLayerFlare = 0
	AtlasLayerSmoke = 1
)

// CreateAtlasFromFiles loads one PNG per atlas layer, scales each to
// size x size and stacks them into an array texture. Layer order follows the
// path order.
func CreateAtlasFromFiles(paths []string, size int) (*glhf.ArrayTexture, error) {
	pixels := make([]uint8, 0, size*size*4*len(paths))
	for _, path := range paths {
		img, err := loadImage(path)
		if err != nil {
			return nil, err
		}
		layer := image.NewNRGBA(image.Rect(0, 0, size, size))
		xdraw.ApproxBiLinear.Scale(layer, layer.Bounds(), img, img.Bounds(), xdraw.Src, nil)
		pixels = append(pixels, layer.Pix...)
	}
	return glhf.NewArrayTexture(size, size, len(paths), pixels), nil
}

func loadImage(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open texture file %s", path)
	}
	defer file.Close()
	img, err := png.Decode(file)
	if err != nil {
		return nil, errors.Wrapf(err, "could not decode texture file %s", path)
	}
	return img, nil
}

// CreateProceduralAtlas builds the default flare/smoke atlas so the effect
// works without any asset files on disk.
func CreateProceduralAtlas(size int) *glhf.ArrayTexture {
	pixels := make([]uint8, 0, size*size*4*2)
	pixels = append(pixels, GenerateFlareLayer(size)...)
	pixels = append(pixels, GenerateSmokeLayer(size)...)
	LogTextureDebug("generated procedural particle atlas")
	return glhf.NewArrayTexture(size, size, 2, pixels)
}

// GenerateFlareLayer renders a hot radial gradient: white core, warm falloff,
// transparent rim.
func GenerateFlareLayer(size int) []uint8 {
	return generateRadialLayer(size, func(dist float64) (r, g, b, a float64) {
		glow := 1 - Smoothstep(0, 1, dist)
		core := 1 - Smoothstep(0, 0.35, dist)
		r = glow
		g = Mix(glow*0.45, glow, core)
		b = Mix(glow*0.1, glow, core)
		a = glow
		return r, g, b, a
	})
}

// GenerateSmokeLayer renders a soft gray puff with a wide, dim falloff.
func GenerateSmokeLayer(size int) []uint8 {
	return generateRadialLayer(size, func(dist float64) (r, g, b, a float64) {
		density := 1 - Smoothstep(0.15, 0.95, dist)
		r = density * 0.75
		g = density * 0.75
		b = density * 0.78
		a = density
		return r, g, b, a
	})
}

func generateRadialLayer(size int, shade func(dist float64) (r, g, b, a float64)) []uint8 {
	pixels := make([]uint8, size*size*4)
	center := float64(size-1) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := (float64(x) - center) / center
			dy := (float64(y) - center) / center
			dist := Clamp(math.Sqrt(dx*dx+dy*dy), 0, 1)
			r, g, b, a := shade(dist)
			offset := (y*size + x) * 4
			pixels[offset] = uint8(Clamp(r, 0, 1) * 255)
			pixels[offset+1] = uint8(Clamp(g, 0, 1) * 255)
			pixels[offset+2] = uint8(Clamp(b, 0, 1) * 255)
			pixels[offset+3] = uint8(Clamp(a, 0, 1) * 255)
		}
	}
	return pixels
}
