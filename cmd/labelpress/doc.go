// Package main hosts the labelpress CLI entrypoint and command graph.
//
// The Cobra-based command tree covers the three label-data origins (fields,
// csv, asset), spooler diagnostics (queues), and configuration scaffolding.
// It centralizes configuration resolution and structured logging setup so
// subcommands can focus on user experience instead of wiring.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
