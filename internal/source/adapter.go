package source

import "context"

// Mode identifies which origin produced a Record. The normalizer keys its
// per-field policy off this.
type Mode int

const (
	ModeLiteral Mode = iota
	ModeCSV
	ModeRemote
)

func (m Mode) String() string {
	switch m {
	case ModeLiteral:
		return "literal"
	case ModeCSV:
		return "csv"
	case ModeRemote:
		return "remote"
	default:
		return "unknown"
	}
}

// Record is one normalized row of label data: field name to text value.
// Keys are origin-dependent; no fixed schema is enforced at this stage.
type Record map[string]string

// Adapter produces exactly one Record from its origin, or fails with an
// error from the shared taxonomy.
type Adapter interface {
	Resolve(ctx context.Context) (Record, error)
	Mode() Mode
}
