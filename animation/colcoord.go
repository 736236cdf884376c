package animation

import (
	"fmt"

	"badc0de.net/pkg/go-shadowdive/bitfield"
)

// Field layout of a packed collision coordinate, from the least significant
// bit: x (10, signed), x_ext (6), y (10, signed), y_ext (6).
const (
	coordWidth = 10
	extWidth   = 6

	xShift    = 0
	xExtShift = xShift + coordWidth
	yShift    = 16
	yExtShift = yShift + coordWidth
)

// ColCoord is one collision coordinate record.
//
// X and Y hold 10-bit signed values, XExt and YExt 6-bit unsigned ones.
// Values outside those ranges are truncated to their width when encoded.
type ColCoord struct {
	X    int16
	XExt uint8
	Y    int16
	YExt uint8
}

// DecodeColCoord unpacks a collision coordinate from its 32-bit wire form.
// Every word decodes, and encoding the result gives the word back.
func DecodeColCoord(word uint32) ColCoord {
	return ColCoord{
		X:    int16(bitfield.SignExtend(bitfield.Extract(word, xShift, coordWidth), coordWidth)),
		XExt: uint8(bitfield.Extract(word, xExtShift, extWidth)),
		Y:    int16(bitfield.SignExtend(bitfield.Extract(word, yShift, coordWidth), coordWidth)),
		YExt: uint8(bitfield.Extract(word, yExtShift, extWidth)),
	}
}

// Encode packs the coordinate into its 32-bit wire form.
func (c ColCoord) Encode() uint32 {
	var word uint32
	word = bitfield.Insert(word, bitfield.Truncate(int32(c.X), coordWidth), xShift, coordWidth)
	word = bitfield.Insert(word, uint32(c.XExt), xExtShift, extWidth)
	word = bitfield.Insert(word, bitfield.Truncate(int32(c.Y), coordWidth), yShift, coordWidth)
	word = bitfield.Insert(word, uint32(c.YExt), yExtShift, extWidth)
	return word
}

func (c ColCoord) String() string {
	return fmt.Sprintf("(%d+%d,%d+%d)", c.X, c.XExt, c.Y, c.YExt)
}
