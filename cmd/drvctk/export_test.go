package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/example/go-drvctk/internal/audio"
	"github.com/example/go-drvctk/internal/testutil"
)

func TestExportCmd(t *testing.T) {
	root := fixtureRoot(t)
	outDir := t.TempDir()

	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{
		"export",
		"--dataset-root", root,
		"--dataset-subset", "test",
		"--index", "0",
		"--out", outDir,
	})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("export: %v\noutput:\n%s", err, out.String())
	}

	for _, want := range []string{"speaker:    p225", "utterance:  001", "source:     DR", "channel:    1"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}

	for _, name := range []string{"clean_p225_001.wav", "device-recorded_p225_001.wav"} {
		w, rate, err := audio.DecodeFile(filepath.Join(outDir, name))
		if err != nil {
			t.Fatalf("decode exported %s: %v", name, err)
		}
		if rate != testutil.FixtureSampleRate {
			t.Errorf("%s: rate = %d; want %d", name, rate, testutil.FixtureSampleRate)
		}
		if w.Frames() == 0 {
			t.Errorf("%s: empty waveform", name)
		}
	}
}

func TestExportCmdOutOfRange(t *testing.T) {
	root := fixtureRoot(t)

	cmd := NewRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{
		"export",
		"--dataset-root", root,
		"--dataset-subset", "test",
		"--index", "99",
	})

	if err := cmd.Execute(); err == nil {
		t.Fatal("expected error for out-of-range index")
	}
}
