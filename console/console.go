package console

import (
	"github.com/hnimtadd/vgacon/console/ansi"
	"github.com/hnimtadd/vgacon/console/color"
	"github.com/hnimtadd/vgacon/console/display"
	"github.com/hnimtadd/vgacon/logger"
	"golang.org/x/text/encoding/charmap"
)

type (
	Options struct {
		// The surface the console draws into. It is not cleared on
		// construction, the caller decides when to call ClearScreen.
		Surface display.Surface

		Logger logger.Logger
	}

	// Console turns a stream of bytes into cell writes. It owns the cursor,
	// a flattened index of the next cell to write.
	Console struct {
		surface    display.Surface
		cols, rows int
		cursor     int

		logger logger.Logger
	}
)

func NewConsole(opts Options) *Console {
	cols, rows := opts.Surface.Size()
	return &Console{
		surface: opts.Surface,
		cols:    cols,
		rows:    rows,
		logger:  logger.OrDefault(opts.Logger),
	}
}

// PrintChar writes c at the cursor, or moves to the next row when c is a
// line feed. The overflow check runs after every character, so filling the
// last cell of the last row scrolls immediately.
func (c *Console) PrintChar(ch byte, attr color.Attribute) {
	if ch == ansi.C0.LF {
		c.cursor = (c.cursor/c.cols + 1) * c.cols
	} else {
		c.surface.WriteCell(c.cursor, display.Cell{Char: ch, Attr: attr})
		c.cursor++
	}

	if c.cursor >= c.cols*c.rows {
		c.surface.ScrollUp()
		c.cursor = (c.rows - 1) * c.cols
	}
}

// Print writes every byte of s with the same attribute.
func (c *Console) Print(s string, attr color.Attribute) {
	for i := 0; i < len(s); i++ {
		c.PrintChar(s[i], attr)
	}
}

// PrintText is Print for UTF-8 text. Runes are encoded to code page 437,
// the character set of the text mode font; runes outside it print as '?'.
func (c *Console) PrintText(s string, attr color.Attribute) {
	for _, r := range s {
		b, ok := charmap.CodePage437.EncodeRune(r)
		if !ok {
			c.logger.Debug("rune not in code page 437", "rune", string(r))
			b = '?'
		}
		c.PrintChar(b, attr)
	}
}

// ClearScreen blanks the surface and homes the cursor.
func (c *Console) ClearScreen() {
	c.surface.Clear()
	c.cursor = 0
}

// Cursor returns the flattened index of the next write.
func (c *Console) Cursor() int {
	return c.cursor
}

// Position returns the cursor as a column and row.
func (c *Console) Position() (col, row int) {
	return c.cursor % c.cols, c.cursor / c.cols
}

// Surface returns the surface the console draws into.
func (c *Console) Surface() display.Surface {
	return c.surface
}
