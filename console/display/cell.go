package display

import (
	"github.com/hnimtadd/vgacon/console/ansi"
	"github.com/hnimtadd/vgacon/console/color"
)

// Cell is one character plus attribute unit of the text grid. The
// character is a code page 437 byte, exactly as the adapter stores it.
type Cell struct {
	Char byte
	Attr color.Attribute
}

// Blank is what Clear and ScrollUp leave behind.
var Blank = Cell{Char: ansi.Space, Attr: color.Default}
