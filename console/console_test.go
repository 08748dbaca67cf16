package console

import (
	"strings"
	"testing"

	"github.com/hnimtadd/vgacon/console/color"
	"github.com/hnimtadd/vgacon/console/display"
	"github.com/hnimtadd/vgacon/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConsole(cols, rows int) (*Console, *display.Grid) {
	grid := display.NewGrid(cols, rows)
	return NewConsole(Options{Surface: grid, Logger: logger.Discard}), grid
}

func TestConsole_PrintWritesSequentialCells(t *testing.T) {
	con, grid := newTestConsole(display.Cols, display.Rows)
	con.Print("ab\n", color.Default)
	start := con.Cursor()

	input := "Hello, World!"
	con.Print(input, color.Notice)

	assert.Equal(t, start+len(input), con.Cursor())
	for i := 0; i < len(input); i++ {
		assert.Equal(t,
			display.Cell{Char: input[i], Attr: color.Notice},
			grid.ReadCell(start+i),
		)
	}
}

func TestConsole_PrintEmptyIsNoop(t *testing.T) {
	con, grid := newTestConsole(display.Cols, display.Rows)
	before := display.Fingerprint(grid)

	con.Print("", color.Default)

	assert.Equal(t, 0, con.Cursor())
	assert.Equal(t, before, display.Fingerprint(grid))
}

func TestConsole_NewlineMovesToNextRow(t *testing.T) {
	con, _ := newTestConsole(10, 5)

	for _, prefix := range []string{"", "a", "abcd", "abcdefghi"} {
		con.ClearScreen()
		con.Print("x\n", color.Default)
		con.Print(prefix, color.Default)
		con.PrintChar('\n', color.Default)

		col, row := con.Position()
		assert.Equal(t, 0, col, "prefix %q", prefix)
		assert.Equal(t, 2, row, "prefix %q", prefix)
	}
}

func TestConsole_FullRowDoesNotScroll(t *testing.T) {
	con, grid := newTestConsole(10, 3)

	con.Print(strings.Repeat("a", 10), color.Default)

	col, row := con.Position()
	assert.Equal(t, 0, col)
	assert.Equal(t, 1, row)
	assert.Equal(t, "aaaaaaaaaa", display.Row(grid, 0))
}

func TestConsole_FillingScreenScrollsOnce(t *testing.T) {
	con, grid := newTestConsole(display.Cols, display.Rows)

	// Every row gets its own letter so a second scroll would be visible.
	for y := 0; y < display.Rows; y++ {
		con.Print(strings.Repeat(string(rune('A'+y)), display.Cols), color.Default)
	}

	assert.Equal(t, (display.Rows-1)*display.Cols, con.Cursor())
	assert.Equal(t, strings.Repeat("B", display.Cols), display.Row(grid, 0))
	assert.Equal(t,
		strings.Repeat(string(rune('A'+display.Rows-1)), display.Cols),
		display.Row(grid, display.Rows-2),
	)
	assert.Equal(t, "", display.Row(grid, display.Rows-1))
}

func TestConsole_NewlineOnLastRowScrolls(t *testing.T) {
	con, grid := newTestConsole(8, 3)

	con.Print("one\ntwo\nthree\nfour", color.Default)

	assert.Equal(t, "two\nthree\nfour", display.Text(grid))
	col, row := con.Position()
	assert.Equal(t, 4, col)
	assert.Equal(t, 2, row)
}

func TestConsole_ScrollPreservesAttributes(t *testing.T) {
	con, grid := newTestConsole(4, 2)

	con.Print("ab\n", color.Alert)
	con.Print("cd\n", color.Notice)

	assert.Equal(t, display.Cell{Char: 'c', Attr: color.Notice}, grid.ReadCell(0))
	assert.Equal(t, display.Blank, grid.ReadCell(4))
}

func TestConsole_ClearScreenIdempotent(t *testing.T) {
	con, grid := newTestConsole(display.Cols, display.Rows)
	con.Print("some text\nmore", color.Input)

	con.ClearScreen()
	once := display.Fingerprint(grid)
	con.ClearScreen()

	assert.Equal(t, 0, con.Cursor())
	assert.Equal(t, once, display.Fingerprint(grid))
	assert.Equal(t, display.Fingerprint(display.NewGrid(display.Cols, display.Rows)), once)
}

func TestConsole_PrintTextEncodesCodePage437(t *testing.T) {
	con, grid := newTestConsole(display.Cols, display.Rows)

	con.PrintText("é█€", color.Default)

	require.Equal(t, 3, con.Cursor())
	assert.Equal(t, byte(0x82), grid.ReadCell(0).Char)
	assert.Equal(t, byte(0xDB), grid.ReadCell(1).Char)
	assert.Equal(t, byte('?'), grid.ReadCell(2).Char)
}

func TestConsole_RawSurface(t *testing.T) {
	mem := make([]byte, display.Cols*display.Rows*display.CellSize)
	raw := display.NewRaw(mem, display.Cols, display.Rows)
	con := NewConsole(Options{Surface: raw, Logger: logger.Discard})

	con.ClearScreen()
	con.Print("ok", color.Prompt)

	assert.Equal(t, []byte{'o', 0x0A, 'k', 0x0A, ' ', 0x07}, mem[:6])
}
