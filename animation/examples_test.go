package animation_test

import (
	"bytes"
	"fmt"

	"badc0de.net/pkg/go-shadowdive/animation"
	"badc0de.net/pkg/go-shadowdive/sprite"
)

// ExampleDecode builds an animation with one sprite frame, encodes it and
// decodes it back.
func ExampleDecode() {
	ani := animation.New()
	ani.StartX, ani.StartY = 160, 100
	ani.ColCoords = []animation.ColCoord{{X: -5, XExt: 3, Y: 5}}
	ani.SetAnimString("A1-B2-C3")
	ani.ExtraStrings = []string{"", ""}
	ani.SetExtraString(1, "s3")
	ani.Sprites = []animation.Sprite{
		&sprite.Sprite{Width: 2, Height: 1, Data: []byte{1, 2}},
	}

	buf := &bytes.Buffer{}
	if err := ani.Encode(buf, sprite.Codec{}); err != nil {
		fmt.Printf("failed to encode: %s", err)
		return
	}

	got, err := animation.Decode(buf, sprite.Codec{})
	if err != nil {
		fmt.Printf("failed to decode: %s", err)
		return
	}
	fmt.Println(got)
	fmt.Println(got.ColCoords[0], got.ExtraStrings[1])
	// Output:
	// <animation at (160,100) with 1 collision coords, 1 frames, 2 extra strings, string "A1-B2-C3">
	// (-5+3,5+0) s3
}
