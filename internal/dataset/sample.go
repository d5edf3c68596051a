package dataset

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/example/go-drvctk/internal/audio"
)

// Sample is one paired clean/device-recorded utterance with its metadata.
// Samples are assembled on demand; nothing is cached between Get calls.
type Sample struct {
	CleanWaveform   audio.Waveform
	CleanSampleRate int
	NoisyWaveform   audio.Waveform
	NoisySampleRate int
	SpeakerID       string
	UtteranceID     string
	Source          string
	ChannelID       int
}

// SplitFilename decomposes a sample filename of the form
// {speaker}_{utterance}.{ext} into its speaker and utterance ids.
// Filenames with more or fewer separators fail with ErrMalformedFilename.
func SplitFilename(name string) (speaker, utterance string, err error) {
	parts := strings.Split(name, ".")
	if len(parts) != 2 {
		return "", "", fmt.Errorf("%w: %q", ErrMalformedFilename, name)
	}

	ids := strings.Split(parts[0], "_")
	if len(ids) != 2 {
		return "", "", fmt.Errorf("%w: %q", ErrMalformedFilename, name)
	}

	return ids[0], ids[1], nil
}

// loadSample resolves the clean and device-recorded files for filename and
// decodes both. Each decode is an independent call; either may fail on its
// own and the error carries the failing path.
func (d *DRVCTK) loadSample(filename string) (Sample, error) {
	speaker, utterance, err := SplitFilename(filename)
	if err != nil {
		return Sample{}, err
	}

	info, ok := d.manifest[filename]
	if !ok {
		return Sample{}, fmt.Errorf("%w: %q", ErrUnknownSample, filename)
	}

	cleanWav, cleanRate, err := d.decode(filepath.Join(d.cleanDir, filename))
	if err != nil {
		return Sample{}, fmt.Errorf("decode clean audio: %w", err)
	}

	noisyWav, noisyRate, err := d.decode(filepath.Join(d.noisyDir, filename))
	if err != nil {
		return Sample{}, fmt.Errorf("decode device-recorded audio: %w", err)
	}

	return Sample{
		CleanWaveform:   cleanWav,
		CleanSampleRate: cleanRate,
		NoisyWaveform:   noisyWav,
		NoisySampleRate: noisyRate,
		SpeakerID:       speaker,
		UtteranceID:     utterance,
		Source:          info.Source,
		ChannelID:       info.ChannelID,
	}, nil
}
