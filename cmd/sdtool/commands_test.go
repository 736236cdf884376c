package main

import (
	"os"
	"path/filepath"
	"testing"

	"badc0de.net/pkg/go-shadowdive/animation"
	"badc0de.net/pkg/go-shadowdive/paths"
	"badc0de.net/pkg/go-shadowdive/sounds"
	"badc0de.net/pkg/go-shadowdive/sprite"
	"badc0de.net/pkg/go-shadowdive/ttesting"
)

func writeFixtures(t *testing.T) (ani, snd string) {
	t.Helper()
	dir := t.TempDir()

	a := animation.New()
	a.ColCoords = []animation.ColCoord{{X: -5, XExt: 3, Y: 5}}
	a.SetAnimString("hi")
	a.ExtraStrings = []string{"x"}
	a.Sprites = []animation.Sprite{&sprite.Sprite{Width: 1, Height: 1, Data: []byte{9}}}
	raw, err := a.Bytes(sprite.Codec{})
	if err != nil {
		t.Fatalf("encoding animation fixture: %v", err)
	}
	ani = filepath.Join(dir, "TEST.ANI")
	if err := os.WriteFile(ani, raw, 0644); err != nil {
		t.Fatalf("writing animation fixture: %v", err)
	}

	sf := sounds.New()
	sf.Sounds = []*sounds.Sound{{Data: []byte{1, 2, 3}}, {}}
	snd = filepath.Join(dir, "SOUNDS.DAT")
	if err := sf.Save(snd); err != nil {
		t.Fatalf("writing sound fixture: %v", err)
	}
	return ani, snd
}

func TestKindOf(t *testing.T) {
	for name, want := range map[string]kind{
		"FIGHTR0.ANI":  kindAnimation,
		"walk.anim":    kindAnimation,
		"SOUNDS.DAT":   kindSounds,
		"effects.snd":  kindSounds,
		"dir.d/X.Anim": kindAnimation,
	} {
		got, err := kindOf(name)
		if err != nil {
			t.Errorf("kindOf(%q): %v", name, err)
			continue
		}
		ttesting.AssertEqualString(t, name, string(got), string(want))
	}
	if _, err := kindOf("README"); err == nil {
		t.Errorf("kindOf without an extension should fail")
	}
}

func TestKindFlagOverrides(t *testing.T) {
	*kindFlag = "sounds"
	defer func() { *kindFlag = "" }()
	got, err := kindOf("odd.ANI")
	if err != nil {
		t.Fatalf("kindOf: %v", err)
	}
	ttesting.AssertEqualString(t, "kind", string(got), string(kindSounds))

	*kindFlag = "bogus"
	if _, err := kindOf("odd.ANI"); err == nil {
		t.Errorf("unknown --kind should fail")
	}
}

func TestVerify(t *testing.T) {
	ani, snd := writeFixtures(t)
	if err := verifyCmd([]string{ani, snd}); err != nil {
		t.Errorf("verify: %v", err)
	}
}

func TestVerifyReportsBrokenFile(t *testing.T) {
	ani, snd := writeFixtures(t)
	raw, err := os.ReadFile(ani)
	if err != nil {
		t.Fatalf("reading fixture: %v", err)
	}
	if err := os.WriteFile(ani, raw[:len(raw)-1], 0644); err != nil {
		t.Fatalf("truncating fixture: %v", err)
	}
	if err := verifyCmd([]string{snd, ani}); err == nil {
		t.Errorf("verify of a truncated animation should fail")
	}
}

func TestRoundtrip(t *testing.T) {
	ani, snd := writeFixtures(t)
	for _, in := range []string{ani, snd} {
		out := in + ".out" + filepath.Ext(in)
		if err := roundtripCmd([]string{in, out}); err != nil {
			t.Fatalf("roundtrip %s: %v", in, err)
		}
		want, _ := os.ReadFile(in)
		got, err := os.ReadFile(out)
		if err != nil {
			t.Fatalf("reading %s: %v", out, err)
		}
		ttesting.AssertEqualBytes(t, filepath.Base(in), got, want)
	}
}

func TestExportSound(t *testing.T) {
	_, snd := writeFixtures(t)
	out := filepath.Join(t.TempDir(), "one.wav")

	*soundIndex = 0
	if err := exportSoundCmd([]string{snd, out}); err != nil {
		t.Fatalf("export-sound: %v", err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Errorf("export missing: %v", err)
	}

	*soundIndex = 2
	defer func() { *soundIndex = 0 }()
	if err := exportSoundCmd([]string{snd, out}); err == nil {
		t.Errorf("exporting a sound past the end should fail")
	}
}

func TestExportSoundDefaultContainer(t *testing.T) {
	_, snd := writeFixtures(t)
	out := filepath.Join(t.TempDir(), "default.wav")
	defer func() { soundsPath = "" }()

	soundsPath = snd
	if err := exportSoundCmd([]string{out}); err != nil {
		t.Fatalf("export-sound with --sounds: %v", err)
	}

	soundsPath = ""
	t.Setenv(paths.EnvDataDir, filepath.Dir(snd))
	if err := os.Remove(out); err != nil {
		t.Fatalf("removing first export: %v", err)
	}
	if err := exportSoundCmd([]string{out}); err != nil {
		t.Fatalf("export-sound through $%s: %v", paths.EnvDataDir, err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Errorf("export missing: %v", err)
	}

	t.Setenv(paths.EnvDataDir, t.TempDir())
	if err := exportSoundCmd([]string{out}); err == nil {
		t.Errorf("export-sound without any sound container should fail")
	}
}

func TestFirstDifference(t *testing.T) {
	ttesting.AssertEqualInt(t, "equal", firstDifference([]byte{1, 2}, []byte{1, 2}), -1)
	ttesting.AssertEqualInt(t, "differs", firstDifference([]byte{1, 2}, []byte{1, 3}), 1)
	ttesting.AssertEqualInt(t, "shorter", firstDifference([]byte{1, 2}, []byte{1}), 1)
}
