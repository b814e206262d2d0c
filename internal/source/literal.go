package source

import (
	"context"
	"fmt"

	"labelpress/internal/services"
)

// LiteralFields is the fixed, ordered field list for literal invocations.
// Positional values map 1:1 onto these names.
var LiteralFields = []string{"scientific", "afr", "eng", "sep", "region", "url"}

// Literal maps caller-supplied positional values onto LiteralFields.
type Literal struct {
	values []string
}

// NewLiteral builds a literal adapter from positional values.
func NewLiteral(values []string) *Literal {
	return &Literal{values: append([]string(nil), values...)}
}

// Mode reports ModeLiteral.
func (l *Literal) Mode() Mode { return ModeLiteral }

// Resolve validates the value count before anything else touches disk or
// network, then zips values onto the fixed field names.
func (l *Literal) Resolve(_ context.Context) (Record, error) {
	if len(l.values) != len(LiteralFields) {
		return nil, services.Wrap(services.ErrArgumentCount, "source", "read literal fields",
			fmt.Sprintf("expected %d values (%v), got %d", len(LiteralFields), LiteralFields, len(l.values)), nil)
	}
	rec := make(Record, len(LiteralFields))
	for i, name := range LiteralFields {
		rec[name] = l.values[i]
	}
	return rec, nil
}
