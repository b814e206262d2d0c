package printing

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	ipp "github.com/phin1x/go-ipp"

	"labelpress/internal/render"
	"labelpress/internal/services"
)

type fakeSpooler struct {
	connectErr  error
	printers    map[string]ipp.Attributes
	printersErr error

	printErr   error
	printJobID int

	printedQueue string
	printedTitle string
	documentName string
	documentMime string
	documentSize int
	payloadSeen  []byte
	docsSeen     int
}

func (f *fakeSpooler) TestConnection() error { return f.connectErr }

func (f *fakeSpooler) GetPrinters(_ []string) (map[string]ipp.Attributes, error) {
	if f.printersErr != nil {
		return nil, f.printersErr
	}
	return f.printers, nil
}

func (f *fakeSpooler) PrintDocuments(docs []ipp.Document, printer string, jobAttributes map[string]any) (int, error) {
	f.docsSeen = len(docs)
	f.printedQueue = printer
	if title, ok := jobAttributes[ipp.AttributeJobName].(string); ok {
		f.printedTitle = title
	}
	if len(docs) > 0 {
		f.documentName = docs[0].Name
		f.documentMime = docs[0].MimeType
		f.documentSize = docs[0].Size
		data, err := io.ReadAll(docs[0].Document)
		if err != nil {
			return 0, err
		}
		f.payloadSeen = data
	}
	if f.printErr != nil {
		return 0, f.printErr
	}
	return f.printJobID, nil
}

func queues(names ...string) map[string]ipp.Attributes {
	out := make(map[string]ipp.Attributes, len(names))
	for _, name := range names {
		out[name] = ipp.Attributes{}
	}
	return out
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestService(t *testing.T, spooler *fakeSpooler) *Service {
	t.Helper()
	target := Target{QueueName: "Zebra-ZD421-203dpi-ZPL", Host: "printhost", Port: 631}
	return NewService(target, discard(), WithSpoolerClient(spooler), WithStagingDir(t.TempDir()))
}

func stagedFiles(t *testing.T, dir string) []string {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join(dir, "labelpress-*.zpl"))
	if err != nil {
		t.Fatalf("glob staging dir: %v", err)
	}
	return matches
}

func TestSubmitSuccess(t *testing.T) {
	spooler := &fakeSpooler{printers: queues("Zebra-ZD421-203dpi-ZPL", "Office-Laser"), printJobID: 17}
	dir := t.TempDir()
	svc := NewService(Target{QueueName: "Zebra-ZD421-203dpi-ZPL", Host: "printhost", Port: 631}, discard(),
		WithSpoolerClient(spooler), WithStagingDir(dir))

	label := render.Label{Payload: []byte("^XA^FDtest^FS^XZ"), Identifier: "Dombeya rotundifolia"}
	result, err := svc.Submit(context.Background(), label)
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}
	if !result.Success || result.JobID != 17 {
		t.Fatalf("unexpected result: %+v", result)
	}
	if !bytes.Equal(spooler.payloadSeen, label.Payload) {
		t.Fatalf("spooler saw payload %q, want %q", spooler.payloadSeen, label.Payload)
	}
	if spooler.documentSize != len(label.Payload) {
		t.Fatalf("document size = %d, want %d", spooler.documentSize, len(label.Payload))
	}
	if spooler.documentMime != ipp.MimeTypeOctetStream {
		t.Fatalf("document mime = %q, want octet-stream", spooler.documentMime)
	}
	if !strings.Contains(spooler.printedTitle, "Dombeya rotundifolia") {
		t.Fatalf("job title %q missing identifier", spooler.printedTitle)
	}
	if !strings.HasPrefix(spooler.printedTitle, "Labelpress ZPL Print") {
		t.Fatalf("job title %q missing prefix", spooler.printedTitle)
	}
	if remaining := stagedFiles(t, dir); len(remaining) != 0 {
		t.Fatalf("staged file not released: %v", remaining)
	}
}

// The job-name attribute and the document name must both carry the
// descriptive title; neither may degrade to the staged file's base name,
// which is a throwaway unique name like labelpress-<uuid>.zpl.
func TestSubmitJobTitleSurvivesStaging(t *testing.T) {
	spooler := &fakeSpooler{printers: queues("Zebra-ZD421-203dpi-ZPL"), printJobID: 3}
	svc := newTestService(t, spooler)

	label := render.Label{Payload: []byte("^XA^XZ"), Identifier: "Dombeya rotundifolia"}
	if _, err := svc.Submit(context.Background(), label); err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}

	want := "Labelpress ZPL Print: Dombeya rotundifolia"
	if spooler.printedTitle != want {
		t.Fatalf("job-name attribute = %q, want %q", spooler.printedTitle, want)
	}
	if spooler.documentName != want {
		t.Fatalf("document name = %q, want %q", spooler.documentName, want)
	}
	if strings.Contains(spooler.printedTitle, "labelpress-") || strings.HasSuffix(spooler.printedTitle, ".zpl") {
		t.Fatalf("job title %q leaked the staged file name", spooler.printedTitle)
	}
	if spooler.docsSeen != 1 {
		t.Fatalf("submitted %d documents, want 1", spooler.docsSeen)
	}
}

func TestSubmitCleansUpOnFailure(t *testing.T) {
	spooler := &fakeSpooler{printers: queues("Zebra-ZD421-203dpi-ZPL"), printErr: errors.New("printer jam")}
	dir := t.TempDir()
	svc := NewService(Target{QueueName: "Zebra-ZD421-203dpi-ZPL", Host: "printhost", Port: 631}, discard(),
		WithSpoolerClient(spooler), WithStagingDir(dir))

	_, err := svc.Submit(context.Background(), render.Label{Payload: []byte("^XA^XZ"), Identifier: "x"})
	if !errors.Is(err, services.ErrSubmission) {
		t.Fatalf("expected ErrSubmission, got %v", err)
	}
	if remaining := stagedFiles(t, dir); len(remaining) != 0 {
		t.Fatalf("staged file not released after failure: %v", remaining)
	}
}

func TestSubmitConnectionFailureNeverStages(t *testing.T) {
	spooler := &fakeSpooler{connectErr: errors.New("refused")}
	dir := t.TempDir()
	svc := NewService(Target{QueueName: "Q", Host: "printhost", Port: 631}, discard(),
		WithSpoolerClient(spooler), WithStagingDir(dir))

	_, err := svc.Submit(context.Background(), render.Label{Payload: []byte("^XA^XZ"), Identifier: "x"})
	if !errors.Is(err, services.ErrConnection) {
		t.Fatalf("expected ErrConnection, got %v", err)
	}
	if spooler.docsSeen != 0 {
		t.Fatal("job must never be staged or submitted on connection failure")
	}
	if remaining := stagedFiles(t, dir); len(remaining) != 0 {
		t.Fatalf("nothing should have been staged: %v", remaining)
	}
}

func TestSubmitNoQueues(t *testing.T) {
	spooler := &fakeSpooler{printers: map[string]ipp.Attributes{}}
	svc := newTestService(t, spooler)

	_, err := svc.Submit(context.Background(), render.Label{Payload: []byte("^XA^XZ"), Identifier: "x"})
	if !errors.Is(err, services.ErrNoQueues) {
		t.Fatalf("expected ErrNoQueues, got %v", err)
	}
}

func TestSubmitQueueNotFoundSurfacesList(t *testing.T) {
	spooler := &fakeSpooler{printers: queues("Office-Laser", "Basement-Inkjet")}
	svc := newTestService(t, spooler)

	result, err := svc.Submit(context.Background(), render.Label{Payload: []byte("^XA^XZ"), Identifier: "x"})
	if !errors.Is(err, services.ErrQueueNotFound) {
		t.Fatalf("expected ErrQueueNotFound, got %v", err)
	}
	want := []string{"Basement-Inkjet", "Office-Laser"}
	if len(result.Queues) != len(want) {
		t.Fatalf("result queues = %v, want %v", result.Queues, want)
	}
	for i, name := range want {
		if result.Queues[i] != name {
			t.Fatalf("result queues = %v, want %v", result.Queues, want)
		}
	}
	for _, name := range want {
		if !strings.Contains(err.Error(), name) {
			t.Fatalf("error %q should list queue %q", err.Error(), name)
		}
	}
}

func TestListQueuesReportsState(t *testing.T) {
	spooler := &fakeSpooler{printers: map[string]ipp.Attributes{
		"Zebra-ZD421-203dpi-ZPL": {
			"printer-state":    []ipp.Attribute{{Value: 3}},
			"printer-location": []ipp.Attribute{{Value: "Workshop"}},
		},
	}}
	svc := newTestService(t, spooler)

	infos, err := svc.ListQueues(context.Background())
	if err != nil {
		t.Fatalf("ListQueues returned error: %v", err)
	}
	if len(infos) != 1 {
		t.Fatalf("expected one queue, got %d", len(infos))
	}
	if infos[0].State != "idle" || infos[0].Location != "Workshop" {
		t.Fatalf("unexpected queue info: %+v", infos[0])
	}
}
