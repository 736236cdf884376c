package animation

import (
	"bytes"
	"fmt"
	"io"
	"math"

	"github.com/bradfitz/iter"
	"github.com/golang/glog"
	"github.com/pkg/errors"

	shadowdive "badc0de.net/pkg/go-shadowdive"
	"badc0de.net/pkg/go-shadowdive/binstream"
)

// Sprite is one opaque sprite frame owned by an Animation. Only the
// SpriteCodec that produced it knows what it holds.
type Sprite = interface{}

// SpriteCodec decodes and encodes the sprite frames embedded in an
// animation.
type SpriteCodec interface {
	DecodeSprite(r *binstream.Reader) (Sprite, error)
	EncodeSprite(w *binstream.Writer, s Sprite) error
}

// Animation is a decoded animation descriptor.
//
// The on-disk counts are the lengths of ColCoords, ExtraStrings and
// Sprites.
type Animation struct {
	StartX, StartY int16

	// UnknownA has undocumented meaning and is preserved verbatim.
	UnknownA [4]byte

	ColCoords []ColCoord

	AnimString   string
	ExtraStrings []string

	Sprites []Sprite
}

// New returns an empty animation: no coordinates, strings or sprites.
func New() *Animation {
	return &Animation{}
}

func (a *Animation) ColCoordCount() int {
	return len(a.ColCoords)
}

func (a *Animation) FrameCount() int {
	return len(a.Sprites)
}

func (a *Animation) ExtraStringCount() int {
	return len(a.ExtraStrings)
}

// SetAnimString replaces the animation string.
func (a *Animation) SetAnimString(s string) {
	a.AnimString = s
}

// SetExtraString replaces the extra string at index i. Indices outside the
// existing extra strings are ignored; the set is never grown.
func (a *Animation) SetExtraString(i int, s string) {
	if i < 0 || i >= len(a.ExtraStrings) {
		return
	}
	a.ExtraStrings[i] = s
}

func (a *Animation) String() string {
	return fmt.Sprintf("<animation at (%d,%d) with %d collision coords, %d frames, %d extra strings, string %q>",
		a.StartX, a.StartY, len(a.ColCoords), len(a.Sprites), len(a.ExtraStrings), a.AnimString)
}

// Decode reads one animation descriptor from r, decoding its sprites with
// sc.
func Decode(r io.Reader, sc SpriteCodec) (*Animation, error) {
	return DecodeFrom(binstream.NewReader(r), sc)
}

// DecodeFrom reads one animation descriptor from an existing stream, for
// use by containers embedding animations.
//
// The animation is only returned once every field has been read; on error
// nothing partially decoded is handed out.
func DecodeFrom(r *binstream.Reader, sc SpriteCodec) (*Animation, error) {
	ani := Animation{}
	var err error

	if ani.StartX, err = r.I16(); err != nil {
		return nil, errors.Wrap(err, "reading animation start x")
	}
	if ani.StartY, err = r.I16(); err != nil {
		return nil, errors.Wrap(err, "reading animation start y")
	}
	if err := r.ReadFull(ani.UnknownA[:]); err != nil {
		return nil, errors.Wrap(err, "reading animation unknown_a")
	}
	colCoordCount, err := r.U16()
	if err != nil {
		return nil, errors.Wrap(err, "reading collision coordinate count")
	}
	frameCount, err := r.U8()
	if err != nil {
		return nil, errors.Wrap(err, "reading frame count")
	}
	glog.V(3).Infof("animation: start (%d,%d), unknown_a % x, %d collision coords, %d frames",
		ani.StartX, ani.StartY, ani.UnknownA, colCoordCount, frameCount)

	if frameCount > 0 && sc == nil {
		return nil, errors.Errorf("animation has %d frames but no sprite codec was given", frameCount)
	}

	if colCoordCount > 0 {
		ani.ColCoords = make([]ColCoord, 0, colCoordCount)
	}
	for i := range iter.N(int(colCoordCount)) {
		word, err := r.U32()
		if err != nil {
			return nil, errors.Wrapf(err, "reading collision coordinate %d", i)
		}
		ani.ColCoords = append(ani.ColCoords, DecodeColCoord(word))
	}

	if ani.AnimString, err = readString(r, "animation string"); err != nil {
		return nil, err
	}

	extraStringCount, err := r.U8()
	if err != nil {
		return nil, errors.Wrap(err, "reading extra string count")
	}
	glog.V(3).Infof("animation: string %q, %d extra strings", ani.AnimString, extraStringCount)
	if extraStringCount > 0 {
		ani.ExtraStrings = make([]string, 0, extraStringCount)
	}
	for i := range iter.N(int(extraStringCount)) {
		s, err := readString(r, fmt.Sprintf("extra string %d", i))
		if err != nil {
			return nil, err
		}
		ani.ExtraStrings = append(ani.ExtraStrings, s)
	}

	if frameCount > 0 {
		ani.Sprites = make([]Sprite, 0, frameCount)
	}
	for i := range iter.N(int(frameCount)) {
		s, err := sc.DecodeSprite(r)
		if err != nil {
			return nil, spriteError(i, err)
		}
		ani.Sprites = append(ani.Sprites, s)
	}

	return &ani, nil
}

// spriteError keeps transport failures classified as such; anything else
// a nested sprite reports makes the animation unparseable.
func spriteError(i int, err error) error {
	if shadowdive.IsIOError(err) || shadowdive.IsParseError(err) {
		return errors.Wrapf(err, "decoding sprite %d", i)
	}
	return &shadowdive.ParseError{Op: fmt.Sprintf("decoding sprite %d", i), Err: err}
}

// readString reads a u16 length followed by that many bytes and a NUL.
func readString(r *binstream.Reader, what string) (string, error) {
	size, err := r.U16()
	if err != nil {
		return "", errors.Wrapf(err, "reading %s length", what)
	}
	buf, err := r.Bytes(int64(size) + 1)
	if err != nil {
		return "", errors.Wrapf(err, "reading %s", what)
	}
	if buf[size] != 0 {
		return "", shadowdive.NewParseError("reading "+what,
			"declared length %d is followed by 0x%02x, want NUL terminator", size, buf[size])
	}
	return string(buf[:size]), nil
}

// Encode writes the animation to w, encoding its sprites with sc.
func (a *Animation) Encode(w io.Writer, sc SpriteCodec) error {
	return a.EncodeTo(binstream.NewWriter(w), sc)
}

// Bytes returns the encoded animation.
func (a *Animation) Bytes(sc SpriteCodec) ([]byte, error) {
	buf := &bytes.Buffer{}
	if err := a.Encode(buf, sc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EncodeTo writes the animation to an existing stream.
//
// String lengths are taken from the strings themselves, and every string is
// followed by a NUL. Nothing is written if a count or string length does not
// fit its field.
func (a *Animation) EncodeTo(w *binstream.Writer, sc SpriteCodec) error {
	if err := a.validate(sc); err != nil {
		return err
	}
	glog.V(3).Infof("animation: encoding %s", a)

	if err := w.I16(a.StartX); err != nil {
		return errors.Wrap(err, "writing animation start x")
	}
	if err := w.I16(a.StartY); err != nil {
		return errors.Wrap(err, "writing animation start y")
	}
	if err := w.Bytes(a.UnknownA[:]); err != nil {
		return errors.Wrap(err, "writing animation unknown_a")
	}
	if err := w.U16(uint16(len(a.ColCoords))); err != nil {
		return errors.Wrap(err, "writing collision coordinate count")
	}
	if err := w.U8(uint8(len(a.Sprites))); err != nil {
		return errors.Wrap(err, "writing frame count")
	}

	for i, c := range a.ColCoords {
		if err := w.U32(c.Encode()); err != nil {
			return errors.Wrapf(err, "writing collision coordinate %d", i)
		}
	}

	if err := writeString(w, a.AnimString, "animation string"); err != nil {
		return err
	}

	if err := w.U8(uint8(len(a.ExtraStrings))); err != nil {
		return errors.Wrap(err, "writing extra string count")
	}
	for i, s := range a.ExtraStrings {
		if err := writeString(w, s, fmt.Sprintf("extra string %d", i)); err != nil {
			return err
		}
	}

	for i, s := range a.Sprites {
		if err := sc.EncodeSprite(w, s); err != nil {
			return errors.Wrapf(err, "encoding sprite %d", i)
		}
	}
	return nil
}

func (a *Animation) validate(sc SpriteCodec) error {
	if len(a.ColCoords) > math.MaxUint16 {
		return errors.Errorf("animation has %d collision coordinates, at most %d fit", len(a.ColCoords), math.MaxUint16)
	}
	if len(a.Sprites) > math.MaxUint8 {
		return errors.Errorf("animation has %d frames, at most %d fit", len(a.Sprites), math.MaxUint8)
	}
	if len(a.ExtraStrings) > math.MaxUint8 {
		return errors.Errorf("animation has %d extra strings, at most %d fit", len(a.ExtraStrings), math.MaxUint8)
	}
	if len(a.AnimString) > math.MaxUint16 {
		return errors.Errorf("animation string is %d bytes long, at most %d fit", len(a.AnimString), math.MaxUint16)
	}
	for i, s := range a.ExtraStrings {
		if len(s) > math.MaxUint16 {
			return errors.Errorf("extra string %d is %d bytes long, at most %d fit", i, len(s), math.MaxUint16)
		}
	}
	if len(a.Sprites) > 0 && sc == nil {
		return errors.Errorf("animation has %d frames but no sprite codec was given", len(a.Sprites))
	}
	return nil
}

func writeString(w *binstream.Writer, s, what string) error {
	if err := w.U16(uint16(len(s))); err != nil {
		return errors.Wrapf(err, "writing %s length", what)
	}
	if err := w.Bytes([]byte(s)); err != nil {
		return errors.Wrapf(err, "writing %s", what)
	}
	if err := w.U8(0); err != nil {
		return errors.Wrapf(err, "writing %s terminator", what)
	}
	return nil
}
