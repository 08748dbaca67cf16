package linebuf

import (
	"errors"

	"github.com/hnimtadd/vgacon/console/ansi"
)

// Capacity is the longest line the buffer accepts. One more byte is kept
// for the NUL terminator.
const Capacity = 255

var ErrBufferFull = errors.New("linebuf: buffer full")

// Buffer accumulates the bytes of one input line. It is append-only until
// Reset.
type Buffer struct {
	data   [Capacity + 1]byte
	length int
}

// Append stores c at the end of the line. Once the line holds Capacity
// bytes it returns ErrBufferFull and drops c.
func (b *Buffer) Append(c byte) error {
	if b.length >= Capacity {
		return ErrBufferFull
	}
	b.data[b.length] = c
	b.length++
	return nil
}

// Reset zeroes every stored byte, not only the length, since lines are
// compared by content.
func (b *Buffer) Reset() {
	for i := range b.data {
		b.data[i] = ansi.C0.NUL
	}
	b.length = 0
}

// Bytes returns the line including its NUL terminator.
func (b *Buffer) Bytes() []byte {
	return b.data[:b.length+1]
}

// Text returns the line without the terminator.
func (b *Buffer) Text() string {
	return string(b.data[:b.length])
}

func (b *Buffer) IsEmpty() bool {
	return b.length == 0
}

func (b *Buffer) Len() int {
	return b.length
}

func (b *Buffer) Cap() int {
	return Capacity
}
