package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	shadowdive "badc0de.net/pkg/go-shadowdive"
	"badc0de.net/pkg/go-shadowdive/animation"
	"badc0de.net/pkg/go-shadowdive/sounds"
	"badc0de.net/pkg/go-shadowdive/sprite"
)

type kind string

const (
	kindAnimation = kind("anim")
	kindSounds    = kind("sounds")
)

// resource is a decoded file of either kind.
type resource interface {
	Bytes() ([]byte, error)
	String() string
}

type animResource struct {
	*animation.Animation
}

func (a animResource) Bytes() ([]byte, error) {
	return a.Animation.Bytes(sprite.Codec{})
}

// kindOf returns the --kind flag if set, and otherwise guesses the kind
// from the file extension.
func kindOf(name string) (kind, error) {
	if *kindFlag != "" {
		switch k := kind(*kindFlag); k {
		case kindAnimation, kindSounds:
			return k, nil
		default:
			return "", errors.Errorf("unknown --kind %q", *kindFlag)
		}
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".ani", ".anim":
		return kindAnimation, nil
	case ".dat", ".snd":
		return kindSounds, nil
	}
	return "", errors.Errorf("cannot determine resource kind of %s; use --kind", name)
}

func decode(k kind, r io.Reader) (resource, error) {
	switch k {
	case kindAnimation:
		a, err := animation.Decode(r, sprite.Codec{})
		if err != nil {
			return nil, err
		}
		return animResource{a}, nil
	case kindSounds:
		sf, err := sounds.Decode(r)
		if err != nil {
			return nil, err
		}
		return sf, nil
	}
	return nil, errors.Errorf("unknown resource kind %q", k)
}

// load reads and decodes the whole file, returning its bytes as well.
func load(name string) (resource, []byte, error) {
	k, err := kindOf(name)
	if err != nil {
		return nil, nil, err
	}
	raw, err := os.ReadFile(name)
	if err != nil {
		return nil, nil, shadowdive.NewIOError("reading "+name, err)
	}
	res, err := decode(k, bytes.NewReader(raw))
	if err != nil {
		return nil, nil, errors.Wrapf(err, "decoding %s", name)
	}
	return res, raw, nil
}

// describe prefixes an error with whether the file was unreadable or
// malformed.
func describe(err error) string {
	switch {
	case shadowdive.IsIOError(err):
		return "cannot access file: " + err.Error()
	case shadowdive.IsParseError(err):
		return "invalid content: " + err.Error()
	}
	return err.Error()
}
