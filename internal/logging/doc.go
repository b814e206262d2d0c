// Package logging builds the slog loggers used across labelpress.
//
// Two handler formats are supported: a compact console handler for
// interactive use (optionally colorized when stderr is a terminal) and the
// stdlib JSON handler for machine-readable output. The format and level come
// from the [logging] config section.
package logging
