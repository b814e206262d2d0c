// Package normalize applies the per-field label policy to source records.
//
// Remote inventory records are trimmed to what fits on a label (truncated
// description, serial tail), padded with "N/A" sentinels so no field reaches
// the template empty, and extended with the derived summary line and label
// URL. Literal and CSV records pass through untouched. Apply is a pure
// function and never fails.
package normalize
