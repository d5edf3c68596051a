package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newInfoCmd() *cobra.Command {
	var head int

	cmd := &cobra.Command{
		Use:   "info",
		Short: "Print dataset length and the first indexed filenames",
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, err := openDataset(cmd.OutOrStdout())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "subset: %s\n", d.Subset())
			_, _ = fmt.Fprintf(out, "samples: %d\n", d.Len())

			n := head
			if n > d.Len() {
				n = d.Len()
			}
			for i := 0; i < n; i++ {
				name, err := d.Filename(i)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(out, "%6d  %s\n", i, name)
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&head, "head", 5, "Number of leading filenames to list")

	return cmd
}
