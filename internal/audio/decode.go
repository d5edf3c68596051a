package audio

import (
	"fmt"
	"os"

	"github.com/cwbudde/wav"
)

// Waveform holds PCM samples as float32 in [-1, 1], one slice per channel.
// All channel slices have equal length.
type Waveform [][]float32

// Channels returns the number of channels.
func (w Waveform) Channels() int { return len(w) }

// Frames returns the number of sample frames per channel.
func (w Waveform) Frames() int {
	if len(w) == 0 {
		return 0
	}
	return len(w[0])
}

// DecodeFile decodes a WAV file into a deinterleaved waveform and its
// sample rate in Hz.
func DecodeFile(path string) (Waveform, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("open audio file: %w", err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, 0, fmt.Errorf("invalid WAV file: %s", path)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, 0, fmt.Errorf("reading PCM data from %s: %w", path, err)
	}

	channels := int(dec.NumChans)
	if channels < 1 {
		channels = 1
	}

	return Deinterleave(buf.Data, channels), int(dec.SampleRate), nil
}

// Deinterleave splits interleaved PCM samples into per-channel slices.
// Trailing samples that do not fill a whole frame are dropped.
func Deinterleave(data []float32, channels int) Waveform {
	frames := len(data) / channels
	out := make(Waveform, channels)
	for c := range out {
		out[c] = make([]float32, frames)
		for i := 0; i < frames; i++ {
			out[c][i] = data[i*channels+c]
		}
	}
	return out
}

// Interleave merges per-channel slices back into interleaved frame order.
func Interleave(w Waveform) []float32 {
	channels := w.Channels()
	frames := w.Frames()
	out := make([]float32, 0, channels*frames)
	for i := 0; i < frames; i++ {
		for c := 0; c < channels; c++ {
			out = append(out, w[c][i])
		}
	}
	return out
}
