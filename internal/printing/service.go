package printing

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/google/uuid"
	ipp "github.com/phin1x/go-ipp"

	"labelpress/internal/render"
	"labelpress/internal/services"
)

const (
	stageName      = "print"
	jobTitlePrefix = "Labelpress ZPL Print"
)

// Target identifies the spooler and queue that receive label jobs. It is
// fixed per deployment, not per record.
type Target struct {
	QueueName string
	Host      string
	Port      int
}

// Result reports the outcome of one submission. Queues is populated on
// queue-related failures so the operator can see what the spooler offered.
type Result struct {
	Success bool
	JobID   int
	Queues  []string
}

// SpoolerClient is the slice of the CUPS/IPP client the service needs.
// *ipp.CUPSClient satisfies it. Submission goes through PrintDocuments
// rather than PrintFile: PrintFile replaces the job-name attribute with the
// staged file's base name, which would discard the descriptive job title.
type SpoolerClient interface {
	TestConnection() error
	GetPrinters(attributes []string) (map[string]ipp.Attributes, error)
	PrintDocuments(docs []ipp.Document, printer string, jobAttributes map[string]any) (int, error)
}

// Option customises Service construction.
type Option func(*Service)

// WithSpoolerClient overrides the IPP client (used in tests).
func WithSpoolerClient(client SpoolerClient) Option {
	return func(s *Service) {
		s.client = client
	}
}

// WithStagingDir overrides where payloads are staged before submission.
func WithStagingDir(dir string) Option {
	return func(s *Service) {
		s.stagingDir = dir
	}
}

// Service submits rendered labels to the spooler. Each submission walks a
// linear path: connect, enumerate queues, stage the payload, submit, clean
// up. No retries; a failure is terminal for the invocation.
type Service struct {
	target     Target
	client     SpoolerClient
	logger     *slog.Logger
	stagingDir string
}

// NewService builds a submission service for the given target.
func NewService(target Target, logger *slog.Logger, opts ...Option) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	svc := &Service{
		target:     target,
		logger:     logger,
		stagingDir: os.TempDir(),
	}
	for _, opt := range opts {
		opt(svc)
	}
	if svc.client == nil {
		svc.client = ipp.NewCUPSClient(target.Host, target.Port, "", "", false)
	}
	return svc
}

// Submit stages the label payload and hands it to the spooler as a raw
// octet-stream job. The staged file is removed on every exit path; a removal
// failure is logged as a warning and never changes the result.
func (s *Service) Submit(ctx context.Context, label render.Label) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, services.Wrap(services.ErrConnection, stageName, "connect", "invocation cancelled", err)
	}

	if err := s.client.TestConnection(); err != nil {
		return Result{}, services.Wrap(services.ErrConnection, stageName, "connect",
			fmt.Sprintf("spooler %s:%d unreachable", s.target.Host, s.target.Port), err)
	}

	queues, err := s.enumerateQueues()
	if err != nil {
		return Result{}, err
	}
	if !contains(queues, s.target.QueueName) {
		return Result{Queues: queues}, services.Wrap(services.ErrQueueNotFound, stageName, "locate queue",
			fmt.Sprintf("queue %q not on spooler %s:%d; available: %v", s.target.QueueName, s.target.Host, s.target.Port, queues), nil)
	}

	stagedPath, err := s.stagePayload(label.Payload)
	if err != nil {
		return Result{Queues: queues}, err
	}
	defer s.releaseStaged(stagedPath)

	staged, err := os.Open(stagedPath)
	if err != nil {
		return Result{Queues: queues}, services.Wrap(services.ErrSubmission, stageName, "stage payload", stagedPath, err)
	}
	defer staged.Close()

	title := fmt.Sprintf("%s: %s", jobTitlePrefix, label.Identifier)
	s.logger.Info("submitting print job",
		slog.String("queue", s.target.QueueName),
		slog.String("title", title),
		slog.String("staged", stagedPath))

	doc := ipp.Document{
		Document: staged,
		Size:     len(label.Payload),
		Name:     title,
		MimeType: ipp.MimeTypeOctetStream,
	}
	jobID, err := s.client.PrintDocuments([]ipp.Document{doc}, s.target.QueueName, map[string]any{
		ipp.AttributeJobName: title,
	})
	if err != nil {
		return Result{Queues: queues}, services.Wrap(services.ErrSubmission, stageName, "submit job",
			fmt.Sprintf("queue %q on %s:%d", s.target.QueueName, s.target.Host, s.target.Port), err)
	}

	s.logger.Info("print job accepted", slog.Int("job_id", jobID), slog.String("queue", s.target.QueueName))
	return Result{Success: true, JobID: jobID, Queues: queues}, nil
}

// QueueInfo describes one spooler queue for diagnostics.
type QueueInfo struct {
	Name     string
	State    string
	Location string
}

// ListQueues enumerates the spooler's queues with basic state for operator
// diagnosis.
func (s *Service) ListQueues(ctx context.Context) ([]QueueInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, services.Wrap(services.ErrConnection, stageName, "connect", "invocation cancelled", err)
	}
	if err := s.client.TestConnection(); err != nil {
		return nil, services.Wrap(services.ErrConnection, stageName, "connect",
			fmt.Sprintf("spooler %s:%d unreachable", s.target.Host, s.target.Port), err)
	}

	printers, err := s.client.GetPrinters([]string{"printer-name", "printer-state", "printer-location"})
	if err != nil {
		return nil, services.Wrap(services.ErrConnection, stageName, "enumerate queues",
			fmt.Sprintf("spooler %s:%d", s.target.Host, s.target.Port), err)
	}

	infos := make([]QueueInfo, 0, len(printers))
	for name, attrs := range printers {
		infos = append(infos, QueueInfo{
			Name:     name,
			State:    printerState(attrs),
			Location: firstAttr(attrs, "printer-location"),
		})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos, nil
}

func (s *Service) enumerateQueues() ([]string, error) {
	printers, err := s.client.GetPrinters([]string{"printer-name"})
	if err != nil {
		return nil, services.Wrap(services.ErrConnection, stageName, "enumerate queues",
			fmt.Sprintf("spooler %s:%d", s.target.Host, s.target.Port), err)
	}
	if len(printers) == 0 {
		return nil, services.Wrap(services.ErrNoQueues, stageName, "enumerate queues",
			fmt.Sprintf("spooler %s:%d exposes no queues", s.target.Host, s.target.Port), nil)
	}
	names := make([]string, 0, len(printers))
	for name := range printers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// stagePayload writes the payload to a uniquely named file the spooler can
// read. The service owns the file until releaseStaged runs.
func (s *Service) stagePayload(payload []byte) (string, error) {
	path := filepath.Join(s.stagingDir, fmt.Sprintf("labelpress-%s.zpl", uuid.NewString()))
	if err := os.WriteFile(path, payload, 0o600); err != nil {
		return "", services.Wrap(services.ErrSubmission, stageName, "stage payload", path, err)
	}
	return path, nil
}

func (s *Service) releaseStaged(path string) {
	if path == "" {
		return
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		s.logger.Warn("could not remove staged label file", slog.String("path", path), slog.String("error", err.Error()))
	}
}

func contains(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}

func printerState(attrs ipp.Attributes) string {
	switch firstAttr(attrs, "printer-state") {
	case "3":
		return "idle"
	case "4":
		return "processing"
	case "5":
		return "stopped"
	default:
		return "unknown"
	}
}

func firstAttr(attrs ipp.Attributes, key string) string {
	values, ok := attrs[key]
	if !ok || len(values) == 0 {
		return ""
	}
	return fmt.Sprint(values[0].Value)
}
