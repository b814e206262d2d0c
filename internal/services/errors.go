package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrArgumentCount    = errors.New("argument count mismatch")
	ErrMissingFile      = errors.New("file not found")
	ErrEmptyDataset     = errors.New("empty dataset")
	ErrMalformedData    = errors.New("malformed data")
	ErrAuthentication   = errors.New("authentication failed")
	ErrRecordNotFound   = errors.New("record not found")
	ErrFetch            = errors.New("fetch failed")
	ErrTemplateNotFound = errors.New("template not found")
	ErrRender           = errors.New("render failed")
	ErrConnection       = errors.New("spooler connection failed")
	ErrNoQueues         = errors.New("no print queues available")
	ErrQueueNotFound    = errors.New("print queue not found")
	ErrSubmission       = errors.New("job submission failed")
	ErrConfiguration    = errors.New("configuration error")
)

// Wrap builds an error message that includes pipeline stage context while
// tagging it with the provided marker for later classification. The marker
// should be one of the exported sentinel errors above.
func Wrap(marker error, stage, operation, message string, err error) error {
	detail := buildDetail(stage, operation, message)
	if marker == nil {
		marker = ErrSubmission
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// ExitCode maps a pipeline error to the process exit status. An empty
// dataset is a soft stop: there was nothing to print, so the run still
// counts as a success.
func ExitCode(err error) int {
	if err == nil || errors.Is(err, ErrEmptyDataset) {
		return 0
	}
	return 1
}

func buildDetail(stage, operation, message string) string {
	parts := make([]string, 0, 3)
	if stage = strings.TrimSpace(stage); stage != "" {
		parts = append(parts, stage)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "pipeline failure"
	}
	return strings.Join(parts, ": ")
}
