package source

import (
	"context"
	"errors"
	"testing"

	"labelpress/internal/services"
)

func TestLiteralMapsValuesOntoFixedFields(t *testing.T) {
	values := []string{"Dombeya rotundifolia", "drolpeer", "wild pear", "mohlabaphala", "magaliesberg", "https://example.com"}
	rec, err := NewLiteral(values).Resolve(context.Background())
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	want := map[string]string{
		"scientific": "Dombeya rotundifolia",
		"afr":        "drolpeer",
		"eng":        "wild pear",
		"sep":        "mohlabaphala",
		"region":     "magaliesberg",
		"url":        "https://example.com",
	}
	for key, value := range want {
		if rec[key] != value {
			t.Fatalf("field %q = %q, want %q", key, rec[key], value)
		}
	}
}

func TestLiteralRejectsWrongCount(t *testing.T) {
	for _, count := range []int{0, 3, 5, 7} {
		values := make([]string, count)
		_, err := NewLiteral(values).Resolve(context.Background())
		if !errors.Is(err, services.ErrArgumentCount) {
			t.Fatalf("count %d: expected ErrArgumentCount, got %v", count, err)
		}
	}
}
