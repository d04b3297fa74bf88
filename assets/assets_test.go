package assets

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/automoto/foxpet/shared/petsim"
)

var testAtlas = petsim.Atlas{CellWidth: 48, CellHeight: 64, Columns: 3, Scale: 2}

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.NRGBA{R: 255, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return buf.Bytes()
}

func TestDecodeSpriteSheetAcceptsGrid(t *testing.T) {
	img, err := DecodeSpriteSheet(bytes.NewReader(encodePNG(t, 144, 256)), testAtlas)
	if err != nil {
		t.Fatalf("DecodeSpriteSheet: %v", err)
	}
	if img.Bounds().Dx() != 144 || img.Bounds().Dy() != 256 {
		t.Errorf("bounds = %v", img.Bounds())
	}
}

func TestDecodeSpriteSheetRejectsSmallSheet(t *testing.T) {
	_, err := DecodeSpriteSheet(bytes.NewReader(encodePNG(t, 96, 256)), testAtlas)
	if !errors.Is(err, petsim.ErrSheetTooSmall) {
		t.Errorf("err = %v, want ErrSheetTooSmall", err)
	}
}

func TestDecodeSpriteSheetRejectsGarbage(t *testing.T) {
	if _, err := DecodeSpriteSheet(bytes.NewReader([]byte("not an image")), testAtlas); err == nil {
		t.Error("expected a decode error")
	}
}

func TestLoadSpriteSheetMissing(t *testing.T) {
	_, err := LoadSpriteSheet(filepath.Join(t.TempDir(), "missing.png"), testAtlas)
	if !errors.Is(err, ErrSpriteSheetMissing) {
		t.Errorf("err = %v, want ErrSpriteSheetMissing", err)
	}
}

func TestLoadTrayIconOptional(t *testing.T) {
	dir := t.TempDir()
	if icon := LoadTrayIcon(filepath.Join(dir, "icon.ico")); icon != nil {
		t.Errorf("missing icon returned %d bytes", len(icon))
	}

	path := filepath.Join(dir, "icon.ico")
	if err := os.WriteFile(path, []byte{0, 0, 1, 0}, 0o644); err != nil {
		t.Fatal(err)
	}
	if icon := LoadTrayIcon(path); len(icon) != 4 {
		t.Errorf("icon = %v, want 4 bytes", icon)
	}
}

func TestResourcePathFallsBackToWorkingDir(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	got := ResourcePath("definitely-not-next-to-the-test-binary.png")
	if want := filepath.Join(wd, "definitely-not-next-to-the-test-binary.png"); got != want {
		t.Errorf("ResourcePath = %q, want %q", got, want)
	}
}
