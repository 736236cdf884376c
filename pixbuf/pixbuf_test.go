package pixbuf

import (
	"testing"

	"badc0de.net/pkg/go-shadowdive/ttesting"
)

func TestNewRGBA(t *testing.T) {
	img := NewRGBA(3, 2)
	ttesting.AssertEqualInt(t, "buffer size", len(img.Data), 3*2*4)

	copy(img.Pixel(2, 1), []byte{1, 2, 3, 4})
	ttesting.AssertEqualBytes(t, "last pixel", img.Data[20:], []byte{1, 2, 3, 4})
	ttesting.AssertEqualBytes(t, "first pixel untouched", img.Pixel(0, 0), []byte{0, 0, 0, 0})
}

func TestNewVGA(t *testing.T) {
	img := NewVGA(320, 200)
	ttesting.AssertEqualInt(t, "len", img.Len(), 320*200)
	ttesting.AssertEqualInt(t, "buffer size", len(img.Data), img.Len())

	img.SetIndex(319, 199, 0xaa)
	ttesting.AssertEqualInt(t, "index", int(img.Index(319, 199)), 0xaa)
	ttesting.AssertEqualInt(t, "stored last", int(img.Data[img.Len()-1]), 0xaa)
}

func TestVGALenFollowsData(t *testing.T) {
	img := NewVGA(4, 4)
	img.Data = img.Data[:8]
	ttesting.AssertEqualInt(t, "len", img.Len(), 8)
}

func TestEmptyBuffers(t *testing.T) {
	ttesting.AssertEqualInt(t, "empty rgba", len(NewRGBA(0, 5).Data), 0)
	ttesting.AssertEqualInt(t, "empty vga", NewVGA(7, 0).Len(), 0)
}

func TestConversionsAreUnimplemented(t *testing.T) {
	pal := &Palette{}
	if _, err := VGAToRGBA(NewVGA(1, 1), pal); err != ErrConversionNotImplemented {
		t.Errorf("VGAToRGBA: got %v; want ErrConversionNotImplemented", err)
	}
	if _, err := RGBAToVGA(NewRGBA(1, 1), pal); err != ErrConversionNotImplemented {
		t.Errorf("RGBAToVGA: got %v; want ErrConversionNotImplemented", err)
	}
}
