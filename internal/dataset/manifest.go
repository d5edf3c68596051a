package dataset

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Subset names a partition of the DR-VCTK corpus.
type Subset string

const (
	SubsetTrain Subset = "train"
	SubsetTest  Subset = "test"
)

// Valid reports whether s is one of the distributed subsets.
func (s Subset) Valid() bool {
	return s == SubsetTrain || s == SubsetTest
}

// headerLines is the number of leading header lines in the subset's channel
// log. The distributed train log carries two header lines, the test log one.
func (s Subset) headerLines() int {
	if s == SubsetTrain {
		return 2
	}
	return 1
}

// ChannelInfo is the per-sample recording metadata from the channel log.
type ChannelInfo struct {
	Source    string
	ChannelID int
}

// ParseChannelLog reads the tab-separated channel log at path into a map
// from sample filename to its recording metadata. Every data line must
// split into exactly three fields (filename, source, channel id); any line
// that does not aborts the parse with a *ChannelLogError. Blank lines are
// skipped. When the same filename appears twice the later line wins, an
// artifact of the original distribution kept for compatibility.
func ParseChannelLog(path string, subset Subset) (map[string]ChannelInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open channel log: %w", err)
	}
	defer f.Close()

	skip := subset.headerLines()
	entries := make(map[string]ChannelInfo)

	sc := bufio.NewScanner(f)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		if lineNo <= skip {
			continue
		}

		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) != 3 {
			return nil, &ChannelLogError{
				Path:   path,
				Line:   lineNo,
				Reason: fmt.Sprintf("expected 3 tab-separated fields, got %d", len(fields)),
			}
		}

		// Tolerate padding around the channel id, like the original
		// distribution's integer conversion does.
		channelID, err := strconv.Atoi(strings.TrimSpace(fields[2]))
		if err != nil {
			return nil, &ChannelLogError{
				Path:   path,
				Line:   lineNo,
				Reason: fmt.Sprintf("channel id %q is not an integer", fields[2]),
			}
		}

		entries[fields[0]] = ChannelInfo{Source: fields[1], ChannelID: channelID}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read channel log: %w", err)
	}

	return entries, nil
}
