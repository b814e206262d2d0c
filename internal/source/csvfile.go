package source

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"labelpress/internal/services"
)

// CSVFile reads the first data row of a delimited file with a header row.
// Remaining rows are ignored; batch printing is out of scope.
type CSVFile struct {
	path string
}

// NewCSVFile builds a tabular adapter for the given file path.
func NewCSVFile(path string) *CSVFile {
	return &CSVFile{path: path}
}

// Mode reports ModeCSV.
func (c *CSVFile) Mode() Mode { return ModeCSV }

// Resolve maps the header row onto the first data row. A header with zero
// data rows is a soft failure: the caller ends the run successfully with
// nothing printed.
func (c *CSVFile) Resolve(_ context.Context) (Record, error) {
	file, err := os.Open(c.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, services.Wrap(services.ErrMissingFile, "source", "open csv",
				fmt.Sprintf("no file at %s", c.path), nil)
		}
		return nil, services.Wrap(services.ErrMalformedData, "source", "open csv", c.path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, services.Wrap(services.ErrEmptyDataset, "source", "read csv",
				fmt.Sprintf("%s has no rows", c.path), nil)
		}
		return nil, services.Wrap(services.ErrMalformedData, "source", "read csv header", c.path, err)
	}

	row, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, services.Wrap(services.ErrEmptyDataset, "source", "read csv",
				fmt.Sprintf("%s has a header but no data rows", c.path), nil)
		}
		return nil, services.Wrap(services.ErrMalformedData, "source", "read csv row", c.path, err)
	}

	rec := make(Record, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if name == "" || i >= len(row) {
			continue
		}
		rec[name] = row[i]
	}
	return rec, nil
}
