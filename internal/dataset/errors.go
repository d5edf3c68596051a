package dataset

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedSubset is returned when the subset is not train or test.
	ErrUnsupportedSubset = errors.New("unsupported subset")

	// ErrDatasetNotFound is returned when the dataset is absent and
	// downloading was not enabled.
	ErrDatasetNotFound = errors.New("dataset not found; enable download to fetch it")

	// ErrChecksumMismatch is returned when the archive digest does not match
	// the pinned value. The archive must be deleted manually before retrying.
	ErrChecksumMismatch = errors.New("archive checksum mismatch; delete the file manually and retry")

	// ErrIndexOutOfRange is returned by Get for an index outside [0, Len()).
	ErrIndexOutOfRange = errors.New("sample index out of range")

	// ErrUnknownSample is returned when a filename has no channel-log entry.
	ErrUnknownSample = errors.New("unknown sample")

	// ErrMalformedFilename is returned when a sample filename does not follow
	// the {speaker}_{utterance}.{ext} convention.
	ErrMalformedFilename = errors.New("malformed sample filename")
)

// ChannelLogError reports a channel log line that does not follow the
// tab-separated three-column format. Line numbers are 1-based.
type ChannelLogError struct {
	Path   string
	Line   int
	Reason string
}

func (e *ChannelLogError) Error() string {
	return fmt.Sprintf("channel log %s line %d: %s", e.Path, e.Line, e.Reason)
}
