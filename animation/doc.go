// Package animation implements the animation descriptor codec.
//
// An animation descriptor carries its placement offsets, an opaque 4-byte
// field, a table of bit-packed collision coordinates, a NUL-terminated
// animation string, a counted set of extra strings and finally the sprite
// frames. The layout, all integers little-endian, is:
//
//	start_x:i16 start_y:i16 unknown_a:[4]byte
//	col_coord_count:u16 frame_count:u8
//	col_coord_count x u32
//	anim_string_len:u16 anim_string:(len+1 bytes, last is NUL)
//	extra_string_count:u8 extra_string_count x (len:u16, len+1 bytes)
//	frame_count x sprite
//
// The format has no field tags, so Decode and Encode walk the fields in the
// same order. Sprites are decoded and encoded by a SpriteCodec supplied by
// the caller; this package knows nothing of their layout.
package animation
