// Package pixbuf holds the plain pixel buffers used next to the resource
// codecs: a direct-color buffer with four bytes per pixel and an indexed
// (VGA) buffer with one palette index per pixel.
package pixbuf

import (
	"fmt"

	"github.com/pkg/errors"
)

// RGBAImage is a direct-color buffer of W*H four-byte pixels.
type RGBAImage struct {
	W, H int
	Data []byte
}

// NewRGBA returns a zeroed direct-color buffer.
func NewRGBA(w, h int) *RGBAImage {
	return &RGBAImage{
		W:    w,
		H:    h,
		Data: make([]byte, w*h*4),
	}
}

// Pixel returns the four bytes of the pixel at (x, y).
func (img *RGBAImage) Pixel(x, y int) []byte {
	off := (y*img.W + x) * 4
	return img.Data[off : off+4 : off+4]
}

func (img *RGBAImage) String() string {
	return fmt.Sprintf("<rgba image %dx%d>", img.W, img.H)
}

// VGAImage is an indexed buffer of W*H palette indices.
type VGAImage struct {
	W, H int
	Data []byte
}

// NewVGA returns a zeroed indexed buffer.
func NewVGA(w, h int) *VGAImage {
	return &VGAImage{
		W:    w,
		H:    h,
		Data: make([]byte, w*h),
	}
}

// Len returns the number of pixels, W*H for buffers made by NewVGA.
func (img *VGAImage) Len() int {
	return len(img.Data)
}

// Index returns the palette index at (x, y).
func (img *VGAImage) Index(x, y int) uint8 {
	return img.Data[y*img.W+x]
}

// SetIndex stores the palette index at (x, y).
func (img *VGAImage) SetIndex(x, y int, idx uint8) {
	img.Data[y*img.W+x] = idx
}

func (img *VGAImage) String() string {
	return fmt.Sprintf("<vga image %dx%d>", img.W, img.H)
}

// Palette is a 256 entry RGB palette.
type Palette struct {
	Colors [256][3]byte
}

// ErrConversionNotImplemented is returned by the conversions between indexed
// and direct-color buffers, which have no defined algorithm yet.
var ErrConversionNotImplemented = errors.New("pixbuf: conversion between indexed and direct-color images is not implemented")

// VGAToRGBA would expand an indexed buffer through pal. It is not
// implemented.
func VGAToRGBA(img *VGAImage, pal *Palette) (*RGBAImage, error) {
	return nil, ErrConversionNotImplemented
}

// RGBAToVGA would map a direct-color buffer onto pal. It is not
// implemented.
func RGBAToVGA(img *RGBAImage, pal *Palette) (*VGAImage, error) {
	return nil, ErrConversionNotImplemented
}
