package sounds

import (
	"bytes"
	"encoding/binary"
	"io"
	"os"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	wav "github.com/youpy/go-wav"

	shadowdive "badc0de.net/pkg/go-shadowdive"
)

// Sound blobs are 8-bit unsigned mono PCM.
const (
	SampleRate    = 8000
	Channels      = 1
	BitsPerSample = 8
)

// riffSizeOffset is where the RIFF header stores the size of everything
// after its first 8 bytes.
const riffSizeOffset = 4

// WriteWAV writes the blob to w as a RIFF/WAVE file.
//
// An odd-length data chunk is followed by a zero pad byte, which the RIFF
// size accounts for.
func (s *Sound) WriteWAV(w io.Writer) error {
	buf := &bytes.Buffer{}
	ww := wav.NewWriter(buf, uint32(len(s.Data)), Channels, SampleRate, BitsPerSample)
	if _, err := ww.Write(s.Data); err != nil {
		return shadowdive.NewIOError("writing wav data", err)
	}
	if len(s.Data)%2 == 1 {
		buf.WriteByte(0)
		binary.LittleEndian.PutUint32(buf.Bytes()[riffSizeOffset:], uint32(buf.Len()-8))
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		return shadowdive.NewIOError("writing wav file", err)
	}
	return nil
}

// ExportWAV writes the blob as a standalone WAV file at path.
func (s *Sound) ExportWAV(path string) error {
	fh, err := os.Create(path)
	if err != nil {
		return shadowdive.NewIOError("creating wav file", err)
	}
	if err := s.WriteWAV(fh); err != nil {
		fh.Close()
		return errors.Wrapf(err, "exporting %s", path)
	}
	if err := fh.Close(); err != nil {
		return shadowdive.NewIOError("closing wav file", err)
	}
	glog.V(2).Infof("sounds: exported %d bytes to %s", len(s.Data), path)
	return nil
}
