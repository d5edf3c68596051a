package audio

import (
	"fmt"
	"os"

	"github.com/cwbudde/wav"
	goaudio "github.com/go-audio/audio"
)

// BitDepth used when writing WAV files. DR-VCTK distributes 16-bit PCM.
const BitDepth = 16

// EncodeWAVFile writes a waveform to path as 16-bit PCM WAV.
func EncodeWAVFile(path string, w Waveform, sampleRate int) error {
	if sampleRate < 1 {
		return fmt.Errorf("invalid sample rate: %d", sampleRate)
	}
	if w.Channels() == 0 {
		return fmt.Errorf("empty waveform")
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create WAV file: %w", err)
	}

	enc := wav.NewEncoder(f, sampleRate, BitDepth, w.Channels(), 1) // 1 = PCM

	pcmBuf := &goaudio.Float32Buffer{
		Data:           Interleave(w),
		Format:         &goaudio.Format{SampleRate: sampleRate, NumChannels: w.Channels()},
		SourceBitDepth: BitDepth,
	}

	if err := enc.Write(pcmBuf); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing PCM: %w", err)
	}
	if err := enc.Close(); err != nil {
		_ = f.Close()
		return fmt.Errorf("closing encoder: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("closing WAV file: %w", err)
	}

	return nil
}
