package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/kelindar/bnkpatch/bnk"
)

func resolveCommand() *cobra.Command {
	var jsonOut, format string

	cmd := &cobra.Command{
		Use:   "resolve <in.bnk>",
		Short: "Resolve every event to its reachable audio IDs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := bnk.Open(args[0], byteOrder())
			if err != nil {
				return err
			}

			resolved := b.Resolve()
			if jsonOut != "" {
				return writeResolvedJSON(resolved, jsonOut)
			}
			return printResolved(resolved, format)
		},
	}

	cmd.Flags().StringVar(&jsonOut, "json-output", "", "write the resolution as JSON to this path instead of stdout")
	cmd.Flags().StringVar(&format, "format", "dec", "audio ID rendering for stdout output: dec or hex")
	return cmd
}

func writeResolvedJSON(resolved map[string][]uint32, path string) error {
	raw, err := json.MarshalIndent(resolved, "", "  ")
	if err != nil {
		return fmt.Errorf("bnkutil: encoding resolution: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("bnkutil: writing %s: %w", path, err)
	}
	return nil
}

func printResolved(resolved map[string][]uint32, format string) error {
	eventIDs := make([]string, 0, len(resolved))
	for id := range resolved {
		eventIDs = append(eventIDs, id)
	}
	sort.Slice(eventIDs, func(i, j int) bool {
		a, _ := strconv.ParseUint(eventIDs[i], 10, 64)
		b, _ := strconv.ParseUint(eventIDs[j], 10, 64)
		return a < b
	})

	for _, id := range eventIDs {
		fmt.Printf("%s:", id)
		for _, audioID := range resolved[id] {
			if format == "hex" {
				fmt.Printf(" 0x%X", audioID)
			} else {
				fmt.Printf(" %d", audioID)
			}
		}
		fmt.Println()
	}
	return nil
}
