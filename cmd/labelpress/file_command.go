package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"labelpress/internal/printing"
	"labelpress/internal/render"
	"labelpress/internal/services"
)

func newFileCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "file <path.zpl>",
		Short: "Submit an already-rendered ZPL file to the printer",
		Long: `Sends the file's bytes to the configured printer queue as-is, with no
template rendering or field normalization. The job is titled after the
file's base name.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			label, err := loadRawLabel(args[0])
			if err != nil {
				return err
			}
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			target := printing.Target{
				QueueName: cfg.Printer.QueueName,
				Host:      cfg.Printer.Host,
				Port:      cfg.Printer.Port,
			}
			result, err := printing.NewService(target, logger).Submit(cmd.Context(), label)
			if err != nil {
				if errors.Is(err, services.ErrQueueNotFound) {
					printQueueDiagnostics(cmd, result.Queues)
				}
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Submitted print job %d to %s\n", result.JobID, cfg.Printer.QueueName)
			return nil
		},
	}
}

// loadRawLabel reads a pre-rendered ZPL file into a label identified by its
// base name.
func loadRawLabel(path string) (render.Label, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return render.Label{}, services.Wrap(services.ErrMissingFile, "source", "read file", path, err)
	}
	return render.Label{Payload: payload, Identifier: filepath.Base(path)}, nil
}
