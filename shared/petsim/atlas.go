package petsim

import (
	"errors"
	"fmt"
	"image"
)

// ErrSheetTooSmall is returned when a decoded sheet cannot hold the atlas grid.
var ErrSheetTooSmall = errors.New("sprite sheet smaller than atlas grid")

// atlasRows is fixed: N, E, S, W from top to bottom.
const atlasRows = 4

// Atlas maps a facing and frame index to a cell of the sprite sheet.
type Atlas struct {
	CellWidth  int
	CellHeight int
	Columns    int
	Scale      int
}

// Rect returns the source rectangle for dir and frame. Out of range frames wrap.
func (a Atlas) Rect(dir Direction, frame int) image.Rectangle {
	if a.Columns > 0 {
		frame %= a.Columns
		if frame < 0 {
			frame += a.Columns
		}
	}
	x := frame * a.CellWidth
	y := dir.Row() * a.CellHeight
	return image.Rect(x, y, x+a.CellWidth, y+a.CellHeight)
}

// FrameSize is the on-screen size of one cell after scaling.
func (a Atlas) FrameSize() (int, int) {
	return a.CellWidth * a.Scale, a.CellHeight * a.Scale
}

// Validate checks that a sheet of width x height holds every cell.
func (a Atlas) Validate(width, height int) error {
	needW := a.CellWidth * a.Columns
	needH := a.CellHeight * atlasRows
	if width < needW || height < needH {
		return fmt.Errorf("%w: got %dx%d, need at least %dx%d", ErrSheetTooSmall, width, height, needW, needH)
	}
	return nil
}
