package dataset

import (
	"errors"
	"testing"
)

func TestSplitFilename(t *testing.T) {
	tests := []struct {
		name          string
		filename      string
		wantSpeaker   string
		wantUtterance string
		wantErr       bool
	}{
		{name: "canonical", filename: "p225_001.wav", wantSpeaker: "p225", wantUtterance: "001"},
		{name: "other extension", filename: "p300_123.flac", wantSpeaker: "p300", wantUtterance: "123"},
		{name: "no underscore", filename: "p225001.wav", wantErr: true},
		{name: "two underscores", filename: "p225_001_a.wav", wantErr: true},
		{name: "no extension", filename: "p225_001", wantErr: true},
		{name: "two dots", filename: "p225_001.tar.gz", wantErr: true},
		{name: "empty", filename: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			speaker, utterance, err := SplitFilename(tt.filename)
			if tt.wantErr {
				if !errors.Is(err, ErrMalformedFilename) {
					t.Fatalf("expected ErrMalformedFilename, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("SplitFilename(%q): %v", tt.filename, err)
			}
			if speaker != tt.wantSpeaker || utterance != tt.wantUtterance {
				t.Errorf("SplitFilename(%q) = (%q, %q); want (%q, %q)",
					tt.filename, speaker, utterance, tt.wantSpeaker, tt.wantUtterance)
			}
		})
	}
}
