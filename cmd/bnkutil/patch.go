package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kelindar/bnkpatch/bnk"
	"github.com/kelindar/bnkpatch/internal/applog"
	"github.com/kelindar/bnkpatch/internal/config"
	"github.com/kelindar/bnkpatch/internal/source"
)

func patchCommand() *cobra.Command {
	var out, wemDir string

	cmd := &cobra.Command{
		Use:   "patch <in.bnk> <config.yaml|json>",
		Short: "Replace audio payloads in a bank according to a replacement plan",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := applog.New(logConfig())
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck

			inPath, configPath := args[0], args[1]
			if out == "" {
				return fmt.Errorf("bnkutil: --output is required")
			}

			b, err := bnk.Open(inPath, byteOrder())
			if err != nil {
				return fmt.Errorf("bnkutil: opening %s: %w", inPath, err)
			}

			replacements, err := config.Load(configPath, wemDir)
			if err != nil {
				return err
			}

			for id, path := range replacements {
				src, err := source.NewFile(path)
				if err != nil {
					return fmt.Errorf("bnkutil: locating replacement for %d: %w", id, err)
				}
				if err := b.QueueReplacement(id, src); err != nil {
					return fmt.Errorf("bnkutil: queuing replacement for %d: %w", id, err)
				}
				logger.Info("queued replacement", zap.Uint32("audio_id", id), zap.String("path", path))
			}

			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("bnkutil: creating %s: %w", out, err)
			}
			defer f.Close()

			if err := b.Serialize(f); err != nil {
				return fmt.Errorf("bnkutil: serializing %s: %w", out, err)
			}
			logger.Info("wrote patched bank", zap.String("path", out))
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "output", "o", "", "output bank path")
	cmd.Flags().StringVar(&wemDir, "wem-dir", "", "directory to resolve relative replacement paths against")
	return cmd
}
