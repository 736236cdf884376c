package main

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	shadowdive "badc0de.net/pkg/go-shadowdive"
	"badc0de.net/pkg/go-shadowdive/paths"
	"badc0de.net/pkg/go-shadowdive/sounds"
)

// forEachFile runs fn on every name with at most --jobs running at once.
// Each file is decoded into its own object graph, so nothing is shared
// between the goroutines.
func forEachFile(names []string, fn func(ctx context.Context, i int, name string) error) error {
	g, ctx := errgroup.WithContext(context.Background())
	if *jobs > 0 {
		g.SetLimit(*jobs)
	}
	for i, name := range names {
		i, name := i, paths.Resolve(name)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return fn(ctx, i, name)
		})
	}
	return g.Wait()
}

func infoCmd(args []string) error {
	if len(args) == 0 {
		return errors.New("info needs at least one file")
	}
	summaries := make([]string, len(args))
	err := forEachFile(args, func(ctx context.Context, i int, name string) error {
		res, raw, err := load(name)
		if err != nil {
			summaries[i] = fmt.Sprintf("%s: %s", name, describe(err))
			return nil
		}
		summaries[i] = fmt.Sprintf("%s: %d bytes, %s", name, len(raw), res)
		return nil
	})
	for _, s := range summaries {
		fmt.Println(s)
	}
	return err
}

func roundtripCmd(args []string) error {
	if len(args) != 2 {
		return errors.New("roundtrip needs an input and an output file")
	}
	in, out := paths.Resolve(args[0]), args[1]
	res, _, err := load(in)
	if err != nil {
		return describeErr(err)
	}
	glog.Infof("loaded %s: %s", in, res)

	enc, err := res.Bytes()
	if err != nil {
		return errors.Wrapf(err, "encoding %s", in)
	}
	if err := os.WriteFile(out, enc, 0644); err != nil {
		return describeErr(shadowdive.NewIOError("writing "+out, err))
	}
	glog.Infof("wrote %d bytes to %s", len(enc), out)
	return nil
}

func verifyCmd(args []string) error {
	if len(args) == 0 {
		return errors.New("verify needs at least one file")
	}
	return forEachFile(args, func(ctx context.Context, i int, name string) error {
		res, raw, err := load(name)
		if err != nil {
			return describeErr(err)
		}
		enc, err := res.Bytes()
		if err != nil {
			return errors.Wrapf(err, "encoding %s", name)
		}
		if off := firstDifference(raw, enc); off >= 0 {
			return errors.Errorf("%s: re-encoded %d bytes differ from the original %d bytes at offset %d", name, len(enc), len(raw), off)
		}
		fmt.Printf("%s: ok\n", name)
		return nil
	})
}

func exportSoundCmd(args []string) error {
	var in, out string
	switch len(args) {
	case 1:
		in, out = soundsPath, args[0]
		if in == "" {
			in = paths.Find(soundsFile)
		}
		if in == "" {
			return errors.Errorf("export-sound: %s not found in %v; pass --sounds or a sound file", soundsFile, paths.SearchDirs())
		}
	case 2:
		in, out = paths.Resolve(args[0]), args[1]
	default:
		return errors.New("export-sound needs an output file, optionally preceded by a sound file")
	}
	sf, err := sounds.Load(in)
	if err != nil {
		return describeErr(err)
	}
	if *soundIndex < 0 || *soundIndex >= len(sf.Sounds) {
		return errors.Errorf("sound index %d out of range; %s has %d sounds", *soundIndex, in, len(sf.Sounds))
	}
	glog.Infof("exporting sound %d of %s to %s", *soundIndex, in, out)
	return sf.Sounds[*soundIndex].ExportWAV(out)
}

func describeErr(err error) error {
	return errors.New(describe(err))
}

// firstDifference returns the first offset at which a and b differ, or -1.
func firstDifference(a, b []byte) int {
	if bytes.Equal(a, b) {
		return -1
	}
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}
