package main

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"labelpress/internal/services"
)

func TestFileMissingPath(t *testing.T) {
	_, err := execute(t, "file", filepath.Join(t.TempDir(), "absent.zpl"))
	if !errors.Is(err, services.ErrMissingFile) {
		t.Fatalf("expected ErrMissingFile, got %v", err)
	}
}

func TestLoadRawLabel(t *testing.T) {
	dir := t.TempDir()
	content := "^XA^FDalready rendered^FS^XZ"
	path := writeFile(t, dir, "my_label.zpl", content)

	label, err := loadRawLabel(path)
	if err != nil {
		t.Fatalf("loadRawLabel returned error: %v", err)
	}
	if !bytes.Equal(label.Payload, []byte(content)) {
		t.Fatalf("payload = %q, want %q", label.Payload, content)
	}
	if label.Identifier != "my_label.zpl" {
		t.Fatalf("identifier = %q, want the file base name", label.Identifier)
	}
}
