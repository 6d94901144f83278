package app

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeRoutesFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "routes.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing routes file: %v", err)
	}
	return path
}

func TestSummarizeFile(t *testing.T) {
	path := writeRoutesFile(t, "10.0.0.0/24\n10.0.1.0/255.255.255.0\n")

	var out bytes.Buffer
	if err := summarizeFile(path, &out); err != nil {
		t.Fatalf("summarizeFile returned error: %v", err)
	}

	want := "10.0.0.0/24\n10.0.1.0/24\nsummary: 10.0.0.0/23\n"
	if got := out.String(); got != want {
		t.Fatalf("output = %q, want %q", got, want)
	}
}

func TestSummarizeFileReportsMalformedLine(t *testing.T) {
	path := writeRoutesFile(t, "10.0.0.0/24\n10.0.0.1/24\n")

	var out bytes.Buffer
	err := summarizeFile(path, &out)
	if err == nil {
		t.Fatal("summarizeFile accepted a host address")
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Fatalf("error %q does not name the offending line", err)
	}
}

func TestSummarizeFileMissingFile(t *testing.T) {
	var out bytes.Buffer
	if err := summarizeFile(filepath.Join(t.TempDir(), "missing.txt"), &out); err == nil {
		t.Fatal("summarizeFile should fail on a missing file")
	}
}

func TestSummarizeFileEmptyInput(t *testing.T) {
	path := writeRoutesFile(t, "\n")

	var out bytes.Buffer
	if err := summarizeFile(path, &out); err == nil {
		t.Fatal("summarizeFile should fail on an empty route set")
	}
}
