package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"labelpress/internal/normalize"
	"labelpress/internal/printing"
	"labelpress/internal/render"
	"labelpress/internal/source"
)

// Printer is the submission surface the pipeline needs; satisfied by
// *printing.Service.
type Printer interface {
	Submit(ctx context.Context, label render.Label) (printing.Result, error)
}

// Options configures one pipeline run.
type Options struct {
	TemplatePath string
	Normalize    normalize.Options
	// DryRun renders the label and writes it to DryRunOutput instead of
	// contacting the spooler.
	DryRun       bool
	DryRunOutput io.Writer
}

// Run executes one invocation: resolve the record, normalize it, render the
// template, submit the label. Stages run strictly in order; each hands its
// result to the next by value and retains nothing.
func Run(ctx context.Context, logger *slog.Logger, adapter source.Adapter, printer Printer, opts Options) (printing.Result, error) {
	if logger == nil {
		logger = slog.Default()
	}

	logger.Info("resolving label data", slog.String("source", adapter.Mode().String()))
	rec, err := adapter.Resolve(ctx)
	if err != nil {
		return printing.Result{}, err
	}

	tmplCtx := normalize.Apply(rec, adapter.Mode(), opts.Normalize)

	label, err := render.Render(opts.TemplatePath, tmplCtx)
	if err != nil {
		return printing.Result{}, err
	}
	logger.Info("rendered label",
		slog.String("template", opts.TemplatePath),
		slog.String("job", label.Identifier),
		slog.Int("bytes", len(label.Payload)))

	if opts.DryRun {
		if opts.DryRunOutput != nil {
			fmt.Fprintln(opts.DryRunOutput, string(label.Payload))
		}
		logger.Info("dry run requested; skipping submission")
		return printing.Result{Success: true}, nil
	}

	return printer.Submit(ctx, label)
}
