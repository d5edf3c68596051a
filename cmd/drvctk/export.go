package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/example/go-drvctk/internal/audio"
)

func newExportCmd() *cobra.Command {
	var index int
	var outDir string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write one sample's clean and device-recorded WAVs to a directory",
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, err := openDataset(cmd.OutOrStdout())
			if err != nil {
				return err
			}

			sample, err := d.Get(index)
			if err != nil {
				return err
			}
			name, err := d.Filename(index)
			if err != nil {
				return err
			}

			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return fmt.Errorf("create output dir: %w", err)
			}

			cleanPath := filepath.Join(outDir, "clean_"+name)
			noisyPath := filepath.Join(outDir, "device-recorded_"+name)
			if err := audio.EncodeWAVFile(cleanPath, sample.CleanWaveform, sample.CleanSampleRate); err != nil {
				return err
			}
			if err := audio.EncodeWAVFile(noisyPath, sample.NoisyWaveform, sample.NoisySampleRate); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "filename:   %s\n", name)
			_, _ = fmt.Fprintf(out, "speaker:    %s\n", sample.SpeakerID)
			_, _ = fmt.Fprintf(out, "utterance:  %s\n", sample.UtteranceID)
			_, _ = fmt.Fprintf(out, "source:     %s\n", sample.Source)
			_, _ = fmt.Fprintf(out, "channel:    %d\n", sample.ChannelID)
			_, _ = fmt.Fprintf(out, "clean:      %s (%d Hz)\n", cleanPath, sample.CleanSampleRate)
			_, _ = fmt.Fprintf(out, "device-rec: %s (%d Hz)\n", noisyPath, sample.NoisySampleRate)

			return nil
		},
	}

	cmd.Flags().IntVar(&index, "index", 0, "Sample index to export")
	cmd.Flags().StringVar(&outDir, "out", ".", "Output directory")

	return cmd
}
