package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestExtractText_PlainFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "findings.txt")
	if err := os.WriteFile(path, []byte("  HbA1c: 7.2%\nLDL: 160 mg/dL\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := ExtractText(path)
	if err != nil {
		t.Fatalf("ExtractText: %v", err)
	}
	if !strings.HasPrefix(got, "HbA1c") {
		t.Errorf("text not trimmed: %q", got)
	}
	if !strings.Contains(got, "LDL: 160") {
		t.Errorf("content missing: %q", got)
	}
}

func TestExtractText_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	if err := os.WriteFile(path, []byte("   \n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := ExtractText(path); err == nil {
		t.Error("expected error for empty report")
	}
}

func TestExtractText_MissingFile(t *testing.T) {
	if _, err := ExtractText(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestExtractText_InvalidPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fake.pdf")
	if err := os.WriteFile(path, []byte("not a pdf"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := ExtractText(path); err == nil {
		t.Error("expected error for invalid pdf")
	}
}
