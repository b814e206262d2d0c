// Package services defines shared utilities consumed by the label pipeline
// stages and external integrations.
//
// Key responsibilities:
//   - Structured error markers plus the Wrap helper that translate failures
//     from external libraries (HTTP, CSV, templating, IPP) into one
//     consistent taxonomy at each call-site boundary.
//   - ExitCode, which maps that taxonomy onto process exit semantics: an
//     empty dataset ends the run successfully with nothing printed, every
//     other failure is fatal.
//
// Use these helpers when wiring new stage logic so operational behaviour
// stays uniform across the pipeline.
package services
