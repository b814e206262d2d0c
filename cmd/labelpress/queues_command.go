package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"labelpress/internal/printing"
)

func newQueuesCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "queues",
		Short: "List print queues available on the configured spooler",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
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
			infos, err := printing.NewService(target, logger).ListQueues(cmd.Context())
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(infos))
			for _, info := range infos {
				marker := ""
				if info.Name == cfg.Printer.QueueName {
					marker = "*"
				}
				rows = append(rows, []string{marker, info.Name, info.State, info.Location})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"", "QUEUE", "STATE", "LOCATION"}, rows))
			return nil
		},
	}
}
