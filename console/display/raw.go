package display

import (
	"unsafe"

	"github.com/hnimtadd/vgacon/console/color"
	"github.com/hnimtadd/vgacon/console/utils"
)

// VGABase is the physical address of the color text mode buffer.
const VGABase uintptr = 0xB8000

var _ Surface = &Raw{}

// Raw is a Surface over a region of memory laid out like VGA text memory:
// the character at the even offset and its attribute at the odd one. Raw
// is a view. It never allocates or frees the region.
type Raw struct {
	mem        []byte
	cols, rows int
}

// NewRaw views mem as a cols x rows grid. mem must hold at least
// cols*rows*CellSize bytes.
func NewRaw(mem []byte, cols, rows int) *Raw {
	utils.Assert(cols > 0 && rows > 0, "display: empty grid")
	utils.Assert(len(mem) >= cols*rows*CellSize, "display: region too small")
	return &Raw{
		mem:  mem[:cols*rows*CellSize],
		cols: cols,
		rows: rows,
	}
}

// MapVGA views the physical text buffer. It is only meaningful on a
// freestanding build where the buffer is identity mapped.
func MapVGA() *Raw {
	mem := unsafe.Slice((*byte)(unsafe.Pointer(VGABase)), Cols*Rows*CellSize)
	return NewRaw(mem, Cols, Rows)
}

func (r *Raw) Size() (cols, rows int) {
	return r.cols, r.rows
}

func (r *Raw) Clear() {
	for i := 0; i < len(r.mem); i += CellSize {
		r.mem[i] = Blank.Char
		r.mem[i+1] = byte(Blank.Attr)
	}
}

func (r *Raw) WriteCell(index int, c Cell) {
	utils.Assert(index >= 0 && index < r.cols*r.rows, "display: cell index out of range")
	off := index * CellSize
	r.mem[off] = c.Char
	r.mem[off+1] = byte(c.Attr)
}

func (r *Raw) ReadCell(index int) Cell {
	utils.Assert(index >= 0 && index < r.cols*r.rows, "display: cell index out of range")
	off := index * CellSize
	return Cell{Char: r.mem[off], Attr: color.Attribute(r.mem[off+1])}
}

// ScrollUp moves bytes, not cells, so attributes travel with their
// characters.
func (r *Raw) ScrollUp() {
	stride := r.cols * CellSize
	last := len(r.mem) - stride
	for i := 0; i < last; i++ {
		r.mem[i] = r.mem[i+stride]
	}
	for i := last; i < len(r.mem); i += CellSize {
		r.mem[i] = Blank.Char
		r.mem[i+1] = byte(Blank.Attr)
	}
}
