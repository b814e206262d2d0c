package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"labelpress/internal/normalize"
	"labelpress/internal/pipeline"
	"labelpress/internal/printing"
	"labelpress/internal/services"
	"labelpress/internal/services/homebox"
	"labelpress/internal/source"
)

func newFieldsCommand(ctx *commandContext) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "fields <template> <scientific> <afr> <eng> <sep> <region> <url>",
		Short: "Print a label from positional field values",
		Long: `Renders the template with six positional values (scientific name and its
Afrikaans, English, and Sepedi names, the region, and an info URL) and
submits the result to the configured printer queue.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// The literal adapter owns the value-count check so the
			// mismatch fails before any file or network access.
			return runPrint(ctx, cmd, args[0], source.NewLiteral(args[1:]), dryRun)
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Render the label and print it to stdout without submitting")
	return cmd
}

func newCSVCommand(ctx *commandContext) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "csv <template> <file>",
		Short: "Print a label from the first data row of a CSV file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPrint(ctx, cmd, args[0], source.NewCSVFile(args[1]), dryRun)
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Render the label and print it to stdout without submitting")
	return cmd
}

func newAssetCommand(ctx *commandContext) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "asset <template> <tag>",
		Short: "Print a label for an inventory asset tag",
		Long: `Looks the tag up in the configured Homebox instance (login, tag search,
item fetch), normalizes the record for label layout, and prints it.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if err := cfg.ValidateHomebox(); err != nil {
				return services.Wrap(services.ErrConfiguration, "source", "preflight", err.Error(), nil)
			}
			client := homebox.NewClient(cfg.Homebox.URL, time.Duration(cfg.Homebox.TimeoutSeconds)*time.Second)
			adapter := source.NewRemote(client, cfg.Homebox.Username, cfg.Homebox.Password, args[1])
			return runPrint(ctx, cmd, args[0], adapter, dryRun)
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Render the label and print it to stdout without submitting")
	return cmd
}

func runPrint(ctx *commandContext, cmd *cobra.Command, templatePath string, adapter source.Adapter, dryRun bool) error {
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
	printer := printing.NewService(target, logger)

	result, err := pipeline.Run(cmd.Context(), logger, adapter, printer, pipeline.Options{
		TemplatePath: templatePath,
		Normalize: normalize.Options{
			LabelURLPrefix: cfg.Homebox.LabelURLPrefix,
			Owner:          cfg.Homebox.Owner,
		},
		DryRun:       dryRun,
		DryRunOutput: cmd.OutOrStdout(),
	})
	if err != nil {
		if errors.Is(err, services.ErrEmptyDataset) {
			logger.Info("dataset is empty; nothing to print")
			return nil
		}
		if errors.Is(err, services.ErrQueueNotFound) {
			printQueueDiagnostics(cmd, result.Queues)
		}
		return err
	}

	if dryRun {
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Submitted print job %d to %s\n", result.JobID, cfg.Printer.QueueName)
	return nil
}

func printQueueDiagnostics(cmd *cobra.Command, queues []string) {
	if len(queues) == 0 {
		return
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Available queues on this spooler:")
	rows := make([][]string, 0, len(queues))
	for _, name := range queues {
		rows = append(rows, []string{name})
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"QUEUE"}, rows))
}
