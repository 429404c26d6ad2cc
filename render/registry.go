package render

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/confetti/emitter"
)

var images = map[string]*ebiten.Image{}

// RegisterImage stores an image by key.
func RegisterImage(key string, img *ebiten.Image) {
	if key == "" || img == nil {
		return
	}
	images[key] = img
}

// GetImage returns a cached image by key.
func GetImage(key string) *ebiten.Image {
	if key == "" {
		return nil
	}
	return images[key]
}

// RegisterDefaults uploads the built-in confetti sprites.
func RegisterDefaults() {
	for name, img := range DefaultSprites() {
		RegisterImage(name, ebiten.NewImageFromImage(img))
	}
}

// EnsureSprites makes sure every name resolves to an image. Names that are not
// registered yet are loaded as PNG paths relative to the working directory or
// assets/.
func EnsureSprites(names []string) error {
	for _, name := range names {
		if GetImage(name) != nil {
			continue
		}
		img, err := loadImageFromFS(name)
		if err != nil {
			return err
		}
		b := img.Bounds()
		if b.Dx() > emitter.ParticleSize || b.Dy() > emitter.ParticleSize {
			log.Printf("render: sprite %s is %dx%d, larger than %dx%d; it will be scaled down",
				name, b.Dx(), b.Dy(), emitter.ParticleSize, emitter.ParticleSize)
		}
		RegisterImage(name, ebiten.NewImageFromImage(img))
	}
	return nil
}

func loadImageFromFS(path string) (image.Image, error) {
	tried := []string{path, filepath.Join("assets", path), filepath.Join("assets", path+".png")}
	for _, p := range tried {
		b, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		img, _, err := image.Decode(bytes.NewReader(b))
		if err != nil {
			return nil, fmt.Errorf("render: decode sprite %s: %w", p, err)
		}
		return img, nil
	}
	return nil, fmt.Errorf("render: sprite %s not found", path)
}
