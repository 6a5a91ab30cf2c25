package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/kelindar/bnkpatch/bnk"
)

func extractCommand() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "extract <in.bnk> <audio-id>",
		Short: "Write one audio payload to a file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseUint(args[1], 10, 32)
			if err != nil {
				return fmt.Errorf("bnkutil: audio id %q is not numeric: %w", args[1], err)
			}

			b, err := bnk.Open(args[0], byteOrder())
			if err != nil {
				return err
			}

			if out == "" {
				out = fmt.Sprintf("%d.wem", id)
			}
			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("bnkutil: creating %s: %w", out, err)
			}
			defer f.Close()

			return b.Export(uint32(id), f)
		},
	}

	cmd.Flags().StringVarP(&out, "output", "o", "", "output file (default <audio-id>.wem)")
	return cmd
}

func extractAllCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "extract-all <in.bnk> <dir>",
		Short: "Write every audio payload to a directory",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := bnk.Open(args[0], byteOrder())
			if err != nil {
				return err
			}
			return b.ExportAll(args[1])
		},
	}
}
