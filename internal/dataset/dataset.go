// Package dataset provides indexed access to the Device Recorded VCTK
// corpus: provisioning of the distribution archive, channel-log parsing,
// and random access to paired clean/device-recorded samples.
package dataset

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/example/go-drvctk/internal/archive"
	"github.com/example/go-drvctk/internal/audio"
)

// Fixed distribution coordinates for the small-subset DR-VCTK release.
const (
	DefaultURL      = "https://datashare.ed.ac.uk/bitstream/handle/10283/3038/DR-VCTK.zip"
	DefaultChecksum = "29e93debeb0e779986542229a81ff29b"

	archiveFilename = "DR-VCTK.zip"
)

// Collaborator signatures. Defaults live in internal/archive and
// internal/audio; tests substitute fakes through Options.
type (
	DownloadFunc func(url, destDir string, stdout io.Writer) (string, error)
	ValidateFunc func(r io.Reader, expected, algorithm string) (bool, error)
	ExtractFunc  func(archivePath, destDir string) error
	DecodeFunc   func(path string) (audio.Waveform, int, error)
)

// Options configures construction. The zero value downloads nothing and
// uses the pinned DR-VCTK URL, checksum, and real collaborators.
type Options struct {
	// Download permits fetching the archive when the dataset is absent.
	Download bool
	// URL overrides the archive source.
	URL string
	// Checksum overrides the pinned MD5 digest of the archive.
	Checksum string

	Downloader DownloadFunc
	Validator  ValidateFunc
	Extractor  ExtractFunc
	Decoder    DecodeFunc

	// Stdout receives provisioning progress output. Defaults to io.Discard.
	Stdout io.Writer
}

func (o *Options) fillDefaults() {
	if o.URL == "" {
		o.URL = DefaultURL
	}
	if o.Checksum == "" {
		o.Checksum = DefaultChecksum
	}
	if o.Downloader == nil {
		o.Downloader = archive.Download
	}
	if o.Validator == nil {
		o.Validator = archive.ValidateFile
	}
	if o.Extractor == nil {
		o.Extractor = archive.ExtractZip
	}
	if o.Decoder == nil {
		o.Decoder = audio.DecodeFile
	}
	if o.Stdout == nil {
		o.Stdout = io.Discard
	}
}

// DRVCTK is the indexed view over one subset of the corpus. The channel-log
// mapping and the sorted filename index are built once at construction and
// never mutated, so concurrent Get calls are safe.
type DRVCTK struct {
	subset    Subset
	cleanDir  string
	noisyDir  string
	manifest  map[string]ChannelInfo
	filenames []string
	decode    DecodeFunc
}

// New constructs the dataset view for subset under root, provisioning the
// on-disk tree first if needed. When the extracted dataset root already
// exists, provisioning (including checksum verification) is skipped
// entirely and the channel log is parsed directly.
func New(root string, subset Subset, opts Options) (*DRVCTK, error) {
	if !subset.Valid() {
		return nil, fmt.Errorf("%w: %q (supported: %s, %s)", ErrUnsupportedSubset, subset, SubsetTrain, SubsetTest)
	}

	opts.fillDefaults()

	archivePath := filepath.Join(root, archiveFilename)
	datasetRoot := filepath.Join(root, "DR-VCTK", "DR-VCTK")

	d := &DRVCTK{
		subset:   subset,
		cleanDir: filepath.Join(datasetRoot, fmt.Sprintf("clean_%sset_wav_16k", subset)),
		noisyDir: filepath.Join(datasetRoot, fmt.Sprintf("device-recorded_%sset_wav_16k", subset)),
		decode:   opts.Decoder,
	}
	configPath := filepath.Join(datasetRoot, "configurations", fmt.Sprintf("%s_ch_log.txt", subset))

	if !isDir(datasetRoot) {
		if err := provision(root, archivePath, opts); err != nil {
			return nil, err
		}
	}

	manifest, err := ParseChannelLog(configPath, subset)
	if err != nil {
		return nil, err
	}

	filenames := make([]string, 0, len(manifest))
	for name := range manifest {
		filenames = append(filenames, name)
	}
	sort.Strings(filenames)

	d.manifest = manifest
	d.filenames = filenames

	return d, nil
}

// provision materializes the dataset tree under root: download the archive
// if absent (and permitted), verify its digest, then extract. A checksum
// mismatch aborts before any extraction happens.
func provision(root, archivePath string, opts Options) error {
	if !isFile(archivePath) {
		if !opts.Download {
			return fmt.Errorf("%w (looked in %s)", ErrDatasetNotFound, root)
		}
		if _, err := opts.Downloader(opts.URL, root, opts.Stdout); err != nil {
			return fmt.Errorf("download archive: %w", err)
		}
	}

	f, err := os.Open(archivePath)
	if err != nil {
		return fmt.Errorf("open archive: %w", err)
	}
	ok, err := opts.Validator(f, opts.Checksum, "md5")
	_ = f.Close()
	if err != nil {
		return fmt.Errorf("validate archive: %w", err)
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrChecksumMismatch, archivePath)
	}

	if err := opts.Extractor(archivePath, root); err != nil {
		return fmt.Errorf("extract archive: %w", err)
	}

	return nil
}

// Subset returns the subset this view was built for.
func (d *DRVCTK) Subset() Subset { return d.subset }

// Len returns the number of indexed samples.
func (d *DRVCTK) Len() int { return len(d.filenames) }

// Filename returns the sample filename at index n. The index order is the
// lexicographic order of the channel-log filenames, independent of any
// directory listing order.
func (d *DRVCTK) Filename(n int) (string, error) {
	if n < 0 || n >= len(d.filenames) {
		return "", fmt.Errorf("%w: %d (length %d)", ErrIndexOutOfRange, n, len(d.filenames))
	}
	return d.filenames[n], nil
}

// Get loads the n-th sample. Both audio files are decoded fresh on every
// call; a decode failure leaves the dataset view itself intact.
func (d *DRVCTK) Get(n int) (Sample, error) {
	filename, err := d.Filename(n)
	if err != nil {
		return Sample{}, err
	}
	return d.loadSample(filename)
}

func isDir(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.IsDir()
}

func isFile(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.Mode().IsRegular()
}
