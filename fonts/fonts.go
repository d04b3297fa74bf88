package fonts

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	Regular FontName = "regular"
)

func (f FontName) Get(size float64) text.Face {
	return getFont(f, size)
}

var (
	sources = map[FontName]*text.GoTextFaceSource{}
)

// LoadFont registers a TTF/OTF under name.
func LoadFont(name FontName, ttf []byte) error {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(ttf))
	if err != nil {
		return fmt.Errorf("failed to parse font %s: %w", name, err)
	}
	sources[name] = src
	return nil
}

// LoadDefaults registers the fonts bundled with x/image.
func LoadDefaults() error {
	return LoadFont(Regular, goregular.TTF)
}

func getFont(name FontName, size float64) text.Face {
	src, ok := sources[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return &text.GoTextFace{Source: src, Size: size}
}
