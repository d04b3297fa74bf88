package assets

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/automoto/foxpet/shared/petsim"
	"github.com/hajimehoshi/ebiten/v2"
)

// ErrSpriteSheetMissing is returned when the sprite sheet file does not exist.
var ErrSpriteSheetMissing = errors.New("sprite sheet not found")

// ResourcePath resolves name next to the executable, falling back to the
// working directory when it is not there (go run, tests).
func ResourcePath(name string) string {
	if exe, err := os.Executable(); err == nil {
		p := filepath.Join(filepath.Dir(exe), name)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	if wd, err := os.Getwd(); err == nil {
		return filepath.Join(wd, name)
	}
	return name
}

// LoadSpriteSheet reads, decodes and validates the sprite sheet at path.
func LoadSpriteSheet(path string, atlas petsim.Atlas) (*ebiten.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSpriteSheetMissing, path)
		}
		return nil, fmt.Errorf("failed to read sprite sheet %s: %w", path, err)
	}

	img, err := DecodeSpriteSheet(bytes.NewReader(data), atlas)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Printf("[assets] loaded sprite sheet %s (%dx%d)", path, img.Bounds().Dx(), img.Bounds().Dy())
	return ebiten.NewImageFromImage(img), nil
}

// DecodeSpriteSheet decodes an image and checks it can hold the atlas grid.
func DecodeSpriteSheet(r io.Reader, atlas petsim.Atlas) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode sprite sheet: %w", err)
	}
	b := img.Bounds()
	if err := atlas.Validate(b.Dx(), b.Dy()); err != nil {
		return nil, err
	}
	return img, nil
}

// LoadTrayIcon returns the raw icon bytes, or nil when the icon is missing or
// unreadable. The tray then runs without an icon.
func LoadTrayIcon(path string) []byte {
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Printf("[assets] Warning: could not read tray icon %s: %v", path, err)
		}
		return nil
	}
	return data
}
