package main

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/athakkar/portfolio/pkg/config"
	"github.com/athakkar/portfolio/pkg/resume"
)

func loadTestPage(t *testing.T) *resume.Page {
	t.Helper()
	cfg, err := config.LoadResumeConfig("../../data/resume.yaml")
	if err != nil {
		t.Fatalf("LoadResumeConfig failed: %v", err)
	}
	return resume.NewPage(cfg)
}

func TestWriteFileHTML(t *testing.T) {
	page := loadTestPage(t)
	write, err := renderer("html", page, resume.DefaultTerminalWidth)
	if err != nil {
		t.Fatalf("renderer failed: %v", err)
	}

	out := filepath.Join(t.TempDir(), "resume.html")
	if err := writeFile(out, write); err != nil {
		t.Fatalf("writeFile failed: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !strings.Contains(string(data), "<html") {
		t.Errorf("output is not an html page: %.80q", data)
	}
}

func TestWriteFileReturnsWriteError(t *testing.T) {
	want := errors.New("disk full")
	out := filepath.Join(t.TempDir(), "resume.txt")

	err := writeFile(out, func(io.Writer) error { return want })
	if !errors.Is(err, want) {
		t.Fatalf("writeFile error = %v, want %v", err, want)
	}
}

func TestWriteFileCreateError(t *testing.T) {
	dir := t.TempDir()
	if err := writeFile(filepath.Join(dir, "missing", "resume.html"), func(io.Writer) error { return nil }); err == nil {
		t.Fatal("expected error for a missing parent directory")
	}
}

func TestRendererUnknownFormat(t *testing.T) {
	if _, err := renderer("pdf", loadTestPage(t), 80); err == nil {
		t.Fatal("expected error for an unknown format")
	}
}
