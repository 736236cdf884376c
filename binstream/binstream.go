// Package binstream is the sequential little-endian reader and writer the
// resource codecs are built on.
//
// Reaching the end of the data before a field is complete is reported as a
// *shadowdive.ParseError wrapping io.ErrUnexpectedEOF, because it means the
// content is shorter than it declares. Any other failure of the underlying
// reader or writer is reported as a *shadowdive.IOError.
package binstream

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	shadowdive "badc0de.net/pkg/go-shadowdive"
)

// ByteOrder is the byte order of every integer in the formats.
var ByteOrder = binary.LittleEndian

// Reader reads fixed-width integers and byte ranges front to back.
type Reader struct {
	r   io.Reader
	pos int64
}

// NewReader returns a Reader consuming r from its current position.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// Tell returns the number of bytes consumed so far.
func (r *Reader) Tell() int64 {
	return r.pos
}

func (r *Reader) fail(what string, err error) error {
	op := fmt.Sprintf("read %s at offset %d", what, r.pos)
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return &shadowdive.ParseError{Op: op, Err: io.ErrUnexpectedEOF}
	}
	return shadowdive.NewIOError(op, err)
}

func (r *Reader) read(what string, size int64, data interface{}) error {
	if err := binary.Read(r.r, ByteOrder, data); err != nil {
		return r.fail(what, err)
	}
	r.pos += size
	return nil
}

func (r *Reader) U8() (uint8, error) {
	var v uint8
	err := r.read("u8", 1, &v)
	return v, err
}

func (r *Reader) U16() (uint16, error) {
	var v uint16
	err := r.read("u16", 2, &v)
	return v, err
}

func (r *Reader) I16() (int16, error) {
	var v int16
	err := r.read("i16", 2, &v)
	return v, err
}

func (r *Reader) U32() (uint32, error) {
	var v uint32
	err := r.read("u32", 4, &v)
	return v, err
}

// ReadFull fills buf completely.
func (r *Reader) ReadFull(buf []byte) error {
	n, err := io.ReadFull(r.r, buf)
	if err != nil {
		r.pos += int64(n)
		return r.fail(fmt.Sprintf("%d bytes", len(buf)), err)
	}
	r.pos += int64(n)
	return nil
}

// Bytes reads exactly n bytes into a newly allocated slice.
//
// The buffer grows with the data actually present, so a corrupt length
// cannot force a huge allocation up front.
func (r *Reader) Bytes(n int64) ([]byte, error) {
	buf := bytes.Buffer{}
	got, err := buf.ReadFrom(io.LimitReader(r.r, n))
	if err != nil {
		return nil, r.fail(fmt.Sprintf("%d bytes", n), err)
	}
	r.pos += got
	if got != n {
		return nil, &shadowdive.ParseError{
			Op:  fmt.Sprintf("read %d bytes at offset %d: got only %d", n, r.pos-got, got),
			Err: io.ErrUnexpectedEOF,
		}
	}
	return buf.Bytes(), nil
}

// Writer writes fixed-width integers and byte ranges front to back.
type Writer struct {
	w   io.Writer
	pos int64
}

// NewWriter returns a Writer appending to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Tell returns the number of bytes written so far.
func (w *Writer) Tell() int64 {
	return w.pos
}

func (w *Writer) write(what string, size int64, data interface{}) error {
	if err := binary.Write(w.w, ByteOrder, data); err != nil {
		return shadowdive.NewIOError(fmt.Sprintf("write %s at offset %d", what, w.pos), err)
	}
	w.pos += size
	return nil
}

func (w *Writer) U8(v uint8) error {
	return w.write("u8", 1, v)
}

func (w *Writer) U16(v uint16) error {
	return w.write("u16", 2, v)
}

func (w *Writer) I16(v int16) error {
	return w.write("i16", 2, v)
}

func (w *Writer) U32(v uint32) error {
	return w.write("u32", 4, v)
}

// Bytes writes b verbatim.
func (w *Writer) Bytes(b []byte) error {
	n, err := w.w.Write(b)
	w.pos += int64(n)
	if err != nil {
		return shadowdive.NewIOError(fmt.Sprintf("write %d bytes at offset %d", len(b), w.pos-int64(n)), err)
	}
	return nil
}
