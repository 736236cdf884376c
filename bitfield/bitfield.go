// Package bitfield packs and unpacks fixed-width fields of a 32-bit word.
package bitfield

// Mask returns a mask of the low width bits.
func Mask(width uint) uint32 {
	if width >= 32 {
		return 0xffffffff
	}
	return 1<<width - 1
}

// Extract returns the unsigned field of width bits starting at bit shift.
func Extract(word uint32, shift, width uint) uint32 {
	return (word >> shift) & Mask(width)
}

// Insert stores value, truncated to width bits, at bit shift of word.
// Bits of word previously occupying the field are cleared.
func Insert(word, value uint32, shift, width uint) uint32 {
	m := Mask(width)
	return word&^(m<<shift) | (value&m)<<shift
}

// SignExtend interprets the low width bits of raw as a two's-complement
// number. Bits of raw above width are ignored.
func SignExtend(raw uint32, width uint) int32 {
	if width == 0 {
		return 0
	}
	if width >= 32 {
		return int32(raw)
	}
	shift := 32 - width
	return int32(raw<<shift) >> shift
}

// Truncate returns the two's-complement bit pattern of v in width bits,
// which is the inverse of SignExtend for values in range.
func Truncate(v int32, width uint) uint32 {
	return uint32(v) & Mask(width)
}
