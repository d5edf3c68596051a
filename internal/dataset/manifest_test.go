package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeLog(tb testing.TB, content string) string {
	tb.Helper()

	path := filepath.Join(tb.TempDir(), "ch_log.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		tb.Fatalf("write log: %v", err)
	}
	return path
}

func TestParseChannelLogTrain(t *testing.T) {
	path := writeLog(t, "Device Recorded VCTK channel log\n"+
		"File Name\tSource\tChannel Idx\n"+
		"p225_001.wav\tDR\t1\n"+
		"p226_002.wav\tHQ\t2\n")

	got, err := ParseChannelLog(path, SubsetTrain)
	if err != nil {
		t.Fatalf("ParseChannelLog: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("len = %d; want 2", len(got))
	}
	if got["p225_001.wav"] != (ChannelInfo{Source: "DR", ChannelID: 1}) {
		t.Errorf("p225_001.wav = %+v; want {DR 1}", got["p225_001.wav"])
	}
	if got["p226_002.wav"] != (ChannelInfo{Source: "HQ", ChannelID: 2}) {
		t.Errorf("p226_002.wav = %+v; want {HQ 2}", got["p226_002.wav"])
	}
}

func TestParseChannelLogTestSkipsOneHeaderLine(t *testing.T) {
	path := writeLog(t, "File Name\tSource\tChannel Idx\n"+
		"p232_001.wav\tDR\t4\n")

	got, err := ParseChannelLog(path, SubsetTest)
	if err != nil {
		t.Fatalf("ParseChannelLog: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("len = %d; want 1", len(got))
	}
	if _, ok := got["p232_001.wav"]; !ok {
		t.Error("missing entry for p232_001.wav")
	}
}

// The header-skip count must track the subset exactly: parsing a single
// header line as train data consumes the first real row as a header.
func TestParseChannelLogHeaderSkipMatchesSubset(t *testing.T) {
	path := writeLog(t, "File Name\tSource\tChannel Idx\n"+
		"p225_001.wav\tDR\t1\n"+
		"p226_002.wav\tHQ\t2\n")

	got, err := ParseChannelLog(path, SubsetTrain)
	if err != nil {
		t.Fatalf("ParseChannelLog: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("len = %d; want 1 (first data row consumed as header)", len(got))
	}
	if _, ok := got["p225_001.wav"]; ok {
		t.Error("p225_001.wav should have been skipped as a header line")
	}
}

func TestParseChannelLogStrictFieldCount(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{name: "two fields", line: "p225_001.wav\tDR"},
		{name: "four fields", line: "p225_001.wav\tDR\t1\textra"},
		{name: "space separated", line: "p225_001.wav DR 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeLog(t, "header\n"+tt.line+"\n")

			_, err := ParseChannelLog(path, SubsetTest)
			var logErr *ChannelLogError
			if !errors.As(err, &logErr) {
				t.Fatalf("expected *ChannelLogError, got %v", err)
			}
			if logErr.Line != 2 {
				t.Errorf("Line = %d; want 2", logErr.Line)
			}
		})
	}
}

func TestParseChannelLogPaddedChannelID(t *testing.T) {
	path := writeLog(t, "header\np225_001.wav\tDR\t 1\n")

	got, err := ParseChannelLog(path, SubsetTest)
	if err != nil {
		t.Fatalf("ParseChannelLog: %v", err)
	}
	if got["p225_001.wav"].ChannelID != 1 {
		t.Errorf("ChannelID = %d; want 1", got["p225_001.wav"].ChannelID)
	}
}

func TestParseChannelLogNonIntegerChannel(t *testing.T) {
	path := writeLog(t, "header\np225_001.wav\tDR\tone\n")

	_, err := ParseChannelLog(path, SubsetTest)
	var logErr *ChannelLogError
	if !errors.As(err, &logErr) {
		t.Fatalf("expected *ChannelLogError, got %v", err)
	}
}

func TestParseChannelLogDuplicateLastWins(t *testing.T) {
	path := writeLog(t, "header\n"+
		"p225_001.wav\tDR\t1\n"+
		"p225_001.wav\tHQ\t7\n")

	got, err := ParseChannelLog(path, SubsetTest)
	if err != nil {
		t.Fatalf("ParseChannelLog: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("len = %d; want 1", len(got))
	}
	if got["p225_001.wav"] != (ChannelInfo{Source: "HQ", ChannelID: 7}) {
		t.Errorf("duplicate entry = %+v; want later line {HQ 7}", got["p225_001.wav"])
	}
}

func TestParseChannelLogSkipsBlankLines(t *testing.T) {
	path := writeLog(t, "header\n\np225_001.wav\tDR\t1\n\n")

	got, err := ParseChannelLog(path, SubsetTest)
	if err != nil {
		t.Fatalf("ParseChannelLog: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("len = %d; want 1", len(got))
	}
}

func TestParseChannelLogMissingFile(t *testing.T) {
	_, err := ParseChannelLog(filepath.Join(t.TempDir(), "nope.txt"), SubsetTest)
	if err == nil {
		t.Fatal("expected error for missing channel log")
	}
}

func TestSubsetValid(t *testing.T) {
	if !SubsetTrain.Valid() || !SubsetTest.Valid() {
		t.Error("train and test must be valid subsets")
	}
	if Subset("valid").Valid() {
		t.Error("subset \"valid\" must be rejected")
	}
}
