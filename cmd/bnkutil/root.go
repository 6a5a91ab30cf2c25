// Package bnkutil implements the bnkutil CLI: inspect, patch, extract
// and resolve Wwise soundbank files.
package main

import (
	"encoding/binary"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kelindar/bnkpatch/internal/applog"
)

// globalFlags holds the persistent flags shared by every subcommand.
type globalFlags struct {
	bigEndian bool
	debug     bool
}

var flags globalFlags

// RootCommand assembles the bnkutil root command and its subcommands.
func RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "bnkutil",
		Short: "Inspect and patch Wwise soundbank (.bnk) files",
	}

	root.PersistentFlags().BoolVar(&flags.bigEndian, "big-endian", viper.GetBool("big_endian"), "Treat the bank as big-endian")
	root.PersistentFlags().BoolVarP(&flags.debug, "debug", "d", viper.GetBool("debug"), "Enable debug logging")

	root.AddCommand(
		patchCommand(),
		infoCommand(),
		extractCommand(),
		extractAllCommand(),
		resolveCommand(),
		configCommand(),
	)
	return root
}

func byteOrder() binary.ByteOrder {
	if flags.bigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

func logConfig() applog.Config {
	if flags.debug {
		return applog.DefaultConfig()
	}
	return applog.ProductionConfig()
}
