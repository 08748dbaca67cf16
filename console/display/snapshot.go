package display

import (
	"fmt"
	"strings"

	"github.com/hnimtadd/vgacon/console/utils"
	"github.com/mitchellh/hashstructure/v2"
	"golang.org/x/text/encoding/charmap"
)

// Snapshot copies every cell of s in row-major order.
func Snapshot(s Surface) []Cell {
	cols, rows := s.Size()
	cells := make([]Cell, cols*rows)
	for i := range cells {
		cells[i] = s.ReadCell(i)
	}
	return cells
}

// Fingerprint hashes the full content of s, attributes included. Two
// surfaces with equal fingerprints render identically.
func Fingerprint(s Surface) uint64 {
	hashed, err := hashstructure.Hash(Snapshot(s), hashstructure.FormatV2, nil)
	utils.Assert(err == nil, fmt.Sprintf("failed to hash surface: %v", err))
	return hashed
}

// Row returns the characters of one row decoded from code page 437, with
// trailing blanks removed.
func Row(s Surface, row int) string {
	cols, rows := s.Size()
	utils.Assert(row >= 0 && row < rows, "display: row out of range")
	var b strings.Builder
	for x := 0; x < cols; x++ {
		b.WriteRune(charmap.CodePage437.DecodeByte(s.ReadCell(row*cols + x).Char))
	}
	return strings.TrimRight(b.String(), " ")
}

// Text dumps the surface as plain text, one line per row. Trailing empty
// rows are dropped.
func Text(s Surface) string {
	_, rows := s.Size()
	lines := make([]string, rows)
	for y := 0; y < rows; y++ {
		lines[y] = Row(s, y)
	}
	end := len(lines)
	for end > 0 && lines[end-1] == "" {
		end--
	}
	return strings.Join(lines[:end], "\n")
}
