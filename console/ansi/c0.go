package ansi

type c0 struct {
	NUL uint8 // NUL is the null character (Caret: ^@, Char: \0).
	LF  uint8 // LF is the line feed character (Caret: ^J, Char: \n).
}

// C0 control characters the console reacts to.
//
// Only LF moves the cursor and NUL terminates the input line. Everything
// else is stored verbatim in a cell and drawn with the code page 437 glyph.
var C0 = c0{
	NUL: 0x00,
	LF:  0x0A,
}

// Space is the character clear and scroll leave in a blanked cell.
const Space uint8 = 0x20
