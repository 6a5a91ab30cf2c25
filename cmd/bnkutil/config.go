package main

import (
	"github.com/spf13/cobra"

	"github.com/kelindar/bnkpatch/internal/config"
)

func configCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "config",
		Short: "Replacement-plan config file utilities",
	}
	root.AddCommand(configConvertCommand())
	return root
}

func configConvertCommand() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "convert <in.yaml|json>",
		Short: "Convert a replacement-plan file between JSON and YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return config.ConvertFormat(args[0], out)
		},
	}

	cmd.Flags().StringVarP(&out, "output", "o", "", "output path; extension selects the format")
	cmd.MarkFlagRequired("output") //nolint:errcheck
	return cmd
}
