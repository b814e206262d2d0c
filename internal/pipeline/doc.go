// Package pipeline sequences the label stages for one invocation: source
// adapter, context normalizer, template renderer, print submission. Data
// flows strictly left to right and no stage keeps state across runs.
package pipeline
