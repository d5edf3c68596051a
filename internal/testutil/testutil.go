// Package testutil builds on-disk DR-VCTK fixtures for tests: extracted
// dataset trees, channel logs, WAV files, and zipped archives.
package testutil

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/example/go-drvctk/internal/archive"
	"github.com/example/go-drvctk/internal/audio"
)

// FixtureSampleRate matches the 16 kHz distribution WAVs.
const FixtureSampleRate = 16000

// Entry describes one channel-log row plus its pair of audio files.
type Entry struct {
	Filename  string
	Source    string
	ChannelID int
}

// WriteDataset materializes an extracted dataset tree under root for the
// given subset: clean and device-recorded directories with one short WAV
// per entry, and the subset's channel log with the correct header-line
// count. It returns the dataset root directory (root/DR-VCTK/DR-VCTK).
func WriteDataset(tb testing.TB, root, subset string, entries []Entry) string {
	tb.Helper()

	datasetRoot := filepath.Join(root, "DR-VCTK", "DR-VCTK")
	cleanDir := filepath.Join(datasetRoot, fmt.Sprintf("clean_%sset_wav_16k", subset))
	noisyDir := filepath.Join(datasetRoot, fmt.Sprintf("device-recorded_%sset_wav_16k", subset))
	configDir := filepath.Join(datasetRoot, "configurations")

	for _, dir := range []string{cleanDir, noisyDir, configDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			tb.Fatalf("create fixture dir %s: %v", dir, err)
		}
	}

	for _, e := range entries {
		WriteWAV(tb, filepath.Join(cleanDir, e.Filename))
		WriteWAV(tb, filepath.Join(noisyDir, e.Filename))
	}

	logPath := filepath.Join(configDir, fmt.Sprintf("%s_ch_log.txt", subset))
	WriteChannelLog(tb, logPath, subset, entries)

	return datasetRoot
}

// WriteChannelLog writes a channel log with the distribution's header-line
// asymmetry: two header lines for train, one for test.
func WriteChannelLog(tb testing.TB, path, subset string, entries []Entry) {
	tb.Helper()

	var b strings.Builder
	if subset == "train" {
		b.WriteString("Device Recorded VCTK channel log\n")
	}
	b.WriteString("File Name\tSource\tChannel Idx\n")
	for _, e := range entries {
		fmt.Fprintf(&b, "%s\t%s\t%d\n", e.Filename, e.Source, e.ChannelID)
	}

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		tb.Fatalf("write channel log: %v", err)
	}
}

// WriteWAV writes a short mono 16 kHz WAV fixture to path.
func WriteWAV(tb testing.TB, path string) {
	tb.Helper()

	samples := make([]float32, 160)
	for i := range samples {
		samples[i] = float32(i%16) / 32.0
	}

	if err := audio.EncodeWAVFile(path, audio.Waveform{samples}, FixtureSampleRate); err != nil {
		tb.Fatalf("write WAV fixture %s: %v", path, err)
	}
}

// ZipTree zips srcDir into zipPath with entry names relative to baseDir,
// and returns the archive's MD5 digest.
func ZipTree(tb testing.TB, srcDir, baseDir, zipPath string) string {
	tb.Helper()

	f, err := os.Create(zipPath)
	if err != nil {
		tb.Fatalf("create archive: %v", err)
	}

	zw := zip.NewWriter(f)
	err = filepath.Walk(srcDir, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return err
		}
		rel, err := filepath.Rel(baseDir, path)
		if err != nil {
			return err
		}
		w, err := zw.Create(filepath.ToSlash(rel))
		if err != nil {
			return err
		}
		src, err := os.Open(path)
		if err != nil {
			return err
		}
		defer src.Close()
		_, err = io.Copy(w, src)
		return err
	})
	if err != nil {
		tb.Fatalf("zip tree: %v", err)
	}
	if err := zw.Close(); err != nil {
		tb.Fatalf("close archive writer: %v", err)
	}
	if err := f.Close(); err != nil {
		tb.Fatalf("close archive: %v", err)
	}

	digest, err := archive.FileMD5(zipPath)
	if err != nil {
		tb.Fatalf("digest archive: %v", err)
	}
	return digest
}
