// Package sprite implements the sprite frame record embedded in animations.
//
// A frame is laid out as
//
//	len:u16 pos_x:i16 pos_y:i16 width:u16 height:u16 index:u8 missing:u8
//	[len bytes of pixel data, present only if missing is zero]
//
// Pixel data is kept as the raw bytes found in the file.
package sprite

import (
	"fmt"
	"math"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"badc0de.net/pkg/go-shadowdive/binstream"
)

type Sprite struct {
	PosX, PosY    int16
	Width, Height uint16
	Index         uint8

	// Missing is non-zero when the pixel data is not stored with this frame
	// but shared from another animation.
	Missing uint8

	// Len is the declared data length. It is only written for missing
	// sprites; otherwise the length of Data is used.
	Len uint16

	Data []byte
}

// IsMissing reports whether the frame carries no pixel data of its own.
func (s *Sprite) IsMissing() bool {
	return s.Missing != 0
}

func (s *Sprite) String() string {
	return fmt.Sprintf("<sprite %d at (%d,%d), %dx%d, %d bytes, missing=%d>",
		s.Index, s.PosX, s.PosY, s.Width, s.Height, s.Len, s.Missing)
}

// Decode reads one sprite frame.
func Decode(r *binstream.Reader) (*Sprite, error) {
	s := Sprite{}
	var err error
	if s.Len, err = r.U16(); err != nil {
		return nil, errors.Wrap(err, "reading sprite length")
	}
	if s.PosX, err = r.I16(); err != nil {
		return nil, errors.Wrap(err, "reading sprite x")
	}
	if s.PosY, err = r.I16(); err != nil {
		return nil, errors.Wrap(err, "reading sprite y")
	}
	if s.Width, err = r.U16(); err != nil {
		return nil, errors.Wrap(err, "reading sprite width")
	}
	if s.Height, err = r.U16(); err != nil {
		return nil, errors.Wrap(err, "reading sprite height")
	}
	if s.Index, err = r.U8(); err != nil {
		return nil, errors.Wrap(err, "reading sprite index")
	}
	if s.Missing, err = r.U8(); err != nil {
		return nil, errors.Wrap(err, "reading sprite missing flag")
	}
	if !s.IsMissing() {
		if s.Data, err = r.Bytes(int64(s.Len)); err != nil {
			return nil, errors.Wrap(err, "reading sprite data")
		}
	}
	glog.V(3).Infof("sprite: %s", &s)
	return &s, nil
}

// Encode writes the sprite frame.
func (s *Sprite) Encode(w *binstream.Writer) error {
	size := s.Len
	if !s.IsMissing() {
		if len(s.Data) > math.MaxUint16 {
			return errors.Errorf("sprite data is %d bytes long, at most %d fit", len(s.Data), math.MaxUint16)
		}
		size = uint16(len(s.Data))
	}
	for _, f := range []func() error{
		func() error { return w.U16(size) },
		func() error { return w.I16(s.PosX) },
		func() error { return w.I16(s.PosY) },
		func() error { return w.U16(s.Width) },
		func() error { return w.U16(s.Height) },
		func() error { return w.U8(s.Index) },
		func() error { return w.U8(s.Missing) },
	} {
		if err := f(); err != nil {
			return errors.Wrap(err, "writing sprite header")
		}
	}
	if s.IsMissing() {
		return nil
	}
	if err := w.Bytes(s.Data); err != nil {
		return errors.Wrap(err, "writing sprite data")
	}
	return nil
}

// Codec decodes and encodes *Sprite values for the animation codec.
type Codec struct{}

func (Codec) DecodeSprite(r *binstream.Reader) (interface{}, error) {
	s, err := Decode(r)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (Codec) EncodeSprite(w *binstream.Writer, s interface{}) error {
	sp, ok := s.(*Sprite)
	if !ok {
		return errors.Errorf("sprite codec cannot encode %T", s)
	}
	return sp.Encode(w)
}
