package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/hnimtadd/vgacon/console/color"
	"github.com/hnimtadd/vgacon/console/display"
	"github.com/hnimtadd/vgacon/logger"
	"golang.org/x/text/encoding/charmap"
)

type (
	Options struct {
		Screen  tcell.Screen
		Palette *color.Palette
		Logger  logger.Logger
	}

	// Screen draws a display.Surface onto a terminal. The surface's
	// top-left cell lands at the terminal's top-left; cells past the
	// terminal edge are clipped.
	Screen struct {
		screen  tcell.Screen
		palette *color.Palette

		// Fingerprint and cursor of the last frame shown, used to skip
		// frames that would not change anything.
		lastFrame  uint64
		lastCursor int
		drawn      bool

		logger logger.Logger
	}
)

func NewScreen(opts Options) *Screen {
	palette := opts.Palette
	if palette == nil {
		palette = &color.DefaultPalette
	}
	return &Screen{
		screen:  opts.Screen,
		palette: palette,
		logger:  logger.OrDefault(opts.Logger),
	}
}

// Style converts a cell attribute to a tcell style.
func (s *Screen) Style(attr color.Attribute) tcell.Style {
	fg := s.palette[attr.Foreground()]
	bg := s.palette[attr.Background()]
	return tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(int32(fg.R), int32(fg.G), int32(fg.B))).
		Background(tcell.NewRGBColor(int32(bg.R), int32(bg.G), int32(bg.B)))
}

// Draw copies surf to the terminal and places the cursor at the given
// flattened index. It reports whether a frame was shown.
func (s *Screen) Draw(surf display.Surface, cursor int) bool {
	frame := display.Fingerprint(surf)
	if s.drawn && frame == s.lastFrame && cursor == s.lastCursor {
		return false
	}

	cols, rows := surf.Size()
	width, height := s.screen.Size()
	for y := 0; y < rows && y < height; y++ {
		for x := 0; x < cols && x < width; x++ {
			cell := surf.ReadCell(y*cols + x)
			r := charmap.CodePage437.DecodeByte(cell.Char)
			if r < ' ' {
				// Code page 437 glyphs for control bytes are not in the
				// decoder's table.
				r = ' '
			}
			s.screen.SetContent(x, y, r, nil, s.Style(cell.Attr))
		}
	}
	s.screen.ShowCursor(cursor%cols, cursor/cols)
	s.screen.Show()

	s.lastFrame = frame
	s.lastCursor = cursor
	s.drawn = true
	s.logger.Debug("frame drawn", "fingerprint", frame, "cursor", cursor)
	return true
}
