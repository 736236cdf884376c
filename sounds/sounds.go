// Package sounds implements the sound container codec.
//
// A sound container is a flat array of raw audio blobs:
//
//	sound_count:u32 sound_count x (len:u32, len bytes)
//
// Blobs are binary data with no terminator.
package sounds

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	shadowdive "badc0de.net/pkg/go-shadowdive"
	"badc0de.net/pkg/go-shadowdive/binstream"
)

// Sound is one raw audio blob.
type Sound struct {
	Data []byte
}

// Len returns the size of the blob in bytes.
func (s *Sound) Len() int {
	return len(s.Data)
}

// File is a sound container. Its sound count is len(Sounds).
type File struct {
	Sounds []*Sound
}

// New returns an empty sound container.
func New() *File {
	return &File{}
}

func (f *File) String() string {
	return fmt.Sprintf("<sound container with %d sounds>", len(f.Sounds))
}

// Load opens and decodes the sound container at path.
func Load(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, shadowdive.NewIOError("opening sound file", err)
	}
	defer fh.Close()

	sf, err := Decode(fh)
	if err != nil {
		return nil, errors.Wrapf(err, "loading %s", path)
	}
	glog.V(2).Infof("sounds: loaded %d sounds from %s", len(sf.Sounds), path)
	return sf, nil
}

// Decode reads a sound container from r.
//
// On error no container is returned.
func Decode(r io.Reader) (*File, error) {
	br := binstream.NewReader(r)
	count, err := br.U32()
	if err != nil {
		return nil, errors.Wrap(err, "reading sound count")
	}
	glog.V(3).Infof("sounds: %d sounds", count)

	sf := File{}
	for i := uint32(0); i < count; i++ {
		size, err := br.U32()
		if err != nil {
			return nil, errors.Wrapf(err, "reading length of sound %d", i)
		}
		data, err := br.Bytes(int64(size))
		if err != nil {
			return nil, errors.Wrapf(err, "reading sound %d", i)
		}
		glog.V(3).Infof("sounds: sound %d is %d bytes", i, size)
		sf.Sounds = append(sf.Sounds, &Sound{Data: data})
	}
	return &sf, nil
}

// Save encodes the container into the file at path, replacing it.
//
// If writing fails the file may be left incomplete.
func (f *File) Save(path string) error {
	fh, err := os.Create(path)
	if err != nil {
		return shadowdive.NewIOError("creating sound file", err)
	}
	if err := f.Encode(fh); err != nil {
		fh.Close()
		return errors.Wrapf(err, "saving %s", path)
	}
	if err := fh.Close(); err != nil {
		return shadowdive.NewIOError("closing sound file", err)
	}
	glog.V(2).Infof("sounds: saved %d sounds to %s", len(f.Sounds), path)
	return nil
}

// Encode writes the container to w. Nothing is written if an entry is nil
// or does not fit the format.
func (f *File) Encode(w io.Writer) error {
	if uint64(len(f.Sounds)) > math.MaxUint32 {
		return errors.Errorf("%d sounds do not fit a sound container", len(f.Sounds))
	}
	for i, s := range f.Sounds {
		if s == nil {
			return errors.Errorf("sound %d is nil", i)
		}
		if uint64(len(s.Data)) > math.MaxUint32 {
			return errors.Errorf("sound %d is %d bytes long, at most %d fit", i, len(s.Data), uint32(math.MaxUint32))
		}
	}
	bw := binstream.NewWriter(w)
	if err := bw.U32(uint32(len(f.Sounds))); err != nil {
		return errors.Wrap(err, "writing sound count")
	}
	for i, s := range f.Sounds {
		if err := bw.U32(uint32(len(s.Data))); err != nil {
			return errors.Wrapf(err, "writing length of sound %d", i)
		}
		if err := bw.Bytes(s.Data); err != nil {
			return errors.Wrapf(err, "writing sound %d", i)
		}
	}
	return nil
}

// Bytes returns the encoded container.
func (f *File) Bytes() ([]byte, error) {
	buf := &bytes.Buffer{}
	if err := f.Encode(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
