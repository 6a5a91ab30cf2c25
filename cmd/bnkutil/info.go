package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/kelindar/bnkpatch/bnk"
)

func infoCommand() *cobra.Command {
	var exportCatalog string

	cmd := &cobra.Command{
		Use:   "info <in.bnk>",
		Short: "Print summary statistics for a bank",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := bnk.Open(args[0], byteOrder())
			if err != nil {
				return err
			}

			stats := b.Stats()
			fmt.Printf("version:        %d\n", stats.Version)
			fmt.Printf("audio entries:  %d\n", stats.AudioCount)
			fmt.Printf("data bytes:     %d\n", stats.TotalDataBytes)
			fmt.Printf("events:         %d\n", stats.EventCount)
			fmt.Printf("actions:        %d\n", stats.ActionCount)
			fmt.Printf("sounds:         %d\n", stats.SoundCount)
			fmt.Printf("containers:     %d\n", stats.ContainerCount)
			fmt.Printf("trailing bytes: %d\n", stats.TrailingBytes)

			if exportCatalog != "" {
				return writeCatalogCSV(b, exportCatalog)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&exportCatalog, "export-catalog", "", "write the audio catalog as CSV to this path")
	return cmd
}

func writeCatalogCSV(b *bnk.Bank, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("bnkutil: creating %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"audio_id", "size"}); err != nil {
		return err
	}

	catalog := b.Catalog()
	ids := make([]uint32, 0, len(catalog))
	for id := range catalog {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		if err := w.Write([]string{strconv.FormatUint(uint64(id), 10), strconv.FormatUint(uint64(catalog[id]), 10)}); err != nil {
			return err
		}
	}
	return nil
}
