package color

import "fmt"

// RGB is a struct that represents an RGB color.
type RGB struct {
	R, G, B uint8
}

// ColorType is one of the 16 colors of the VGA text mode palette, in
// hardware order. Backgrounds use the low 8 unless blinking is disabled.
type ColorType uint8

const (
	ColorTypeBlack ColorType = iota
	ColorTypeBlue
	ColorTypeGreen
	ColorTypeCyan
	ColorTypeRed
	ColorTypeMagenta
	ColorTypeBrown
	ColorTypeLightGray
	ColorTypeDarkGray
	ColorTypeLightBlue
	ColorTypeLightGreen
	ColorTypeLightCyan
	ColorTypeLightRed
	ColorTypeLightMagenta
	ColorTypeYellow
	ColorTypeWhite
)

// Palette is the 16 color palette.
type Palette [16]RGB

// DefaultPalette holds the standard VGA DAC values for the text mode
// colors.
var DefaultPalette = Palette{
	ColorTypeBlack:        {0x00, 0x00, 0x00},
	ColorTypeBlue:         {0x00, 0x00, 0xAA},
	ColorTypeGreen:        {0x00, 0xAA, 0x00},
	ColorTypeCyan:         {0x00, 0xAA, 0xAA},
	ColorTypeRed:          {0xAA, 0x00, 0x00},
	ColorTypeMagenta:      {0xAA, 0x00, 0xAA},
	ColorTypeBrown:        {0xAA, 0x55, 0x00},
	ColorTypeLightGray:    {0xAA, 0xAA, 0xAA},
	ColorTypeDarkGray:     {0x55, 0x55, 0x55},
	ColorTypeLightBlue:    {0x55, 0x55, 0xFF},
	ColorTypeLightGreen:   {0x55, 0xFF, 0x55},
	ColorTypeLightCyan:    {0x55, 0xFF, 0xFF},
	ColorTypeLightRed:     {0xFF, 0x55, 0x55},
	ColorTypeLightMagenta: {0xFF, 0x55, 0xFF},
	ColorTypeYellow:       {0xFF, 0xFF, 0x55},
	ColorTypeWhite:        {0xFF, 0xFF, 0xFF},
}

// Attribute is the second byte of a text mode cell: background in the
// high nibble, foreground in the low nibble.
type Attribute uint8

// NewAttribute packs a foreground and background color.
func NewAttribute(fg, bg ColorType) Attribute {
	return Attribute(uint8(bg&0x0F)<<4 | uint8(fg&0x0F))
}

func (a Attribute) Foreground() ColorType {
	return ColorType(a & 0x0F)
}

func (a Attribute) Background() ColorType {
	return ColorType(a >> 4)
}

func (a Attribute) String() string {
	return fmt.Sprintf("Attribute{{ fg: %d, bg: %d }}", a.Foreground(), a.Background())
}

// Attributes used by the console and its commands. All of them are on a
// black background.
const (
	Default Attribute = 0x07 // light gray
	Prompt  Attribute = 0x0A // light green
	Info    Attribute = 0x0B // light cyan
	Alert   Attribute = 0x0C // light red
	Notice  Attribute = 0x0E // yellow
	Input   Attribute = 0x0F // white
)
