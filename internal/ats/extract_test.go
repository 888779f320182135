package ats

import (
	"strings"
	"testing"
)

func TestExtractTextPlain(t *testing.T) {
	text, err := ExtractText([]byte("plain resume text"), "text/plain; charset=utf-8", "resume.txt")
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if text != "plain resume text" {
		t.Fatalf("unexpected text %q", text)
	}
}

func TestExtractTextFallsBackToExtension(t *testing.T) {
	text, err := ExtractText([]byte("resume"), "application/octet-stream", "resume.txt")
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if text != "resume" {
		t.Fatalf("unexpected text %q", text)
	}
}

func TestExtractTextRejectsUnknownType(t *testing.T) {
	if _, err := ExtractText([]byte("data"), "image/png", "photo.png"); err == nil {
		t.Fatalf("expected error for unsupported type")
	}
}

func TestExtractTextRejectsEmpty(t *testing.T) {
	if _, err := ExtractText(nil, "text/plain", "resume.txt"); err == nil {
		t.Fatalf("expected error for empty upload")
	}
}

func TestStripXMLTags(t *testing.T) {
	raw := `<w:body><w:p><w:r><w:t>First line</w:t></w:r></w:p>` +
		`<w:p><w:r><w:t>Second line</w:t></w:r></w:p></w:body>`
	got := stripXMLTags(raw)
	if !strings.Contains(got, "First line") || !strings.Contains(got, "Second line") {
		t.Fatalf("text lost: %q", got)
	}
	if strings.Contains(got, "<w:") {
		t.Fatalf("markup leaked: %q", got)
	}
	if !strings.Contains(got, "\n") {
		t.Fatalf("expected newline between paragraphs: %q", got)
	}
}

func TestNormalizeMimeType(t *testing.T) {
	tests := []struct {
		mime string
		name string
		want string
	}{
		{"application/pdf", "r.bin", mimePDF},
		{"APPLICATION/PDF; charset=x", "r.bin", mimePDF},
		{"application/octet-stream", "resume.pdf", mimePDF},
		{"application/octet-stream", "resume.docx", mimeDOCX},
		{"text/markdown", "notes.md", mimeText},
		{"application/octet-stream", "resume.exe", "application/octet-stream"},
	}
	for _, tt := range tests {
		if got := normalizeMimeType(tt.mime, tt.name); got != tt.want {
			t.Fatalf("normalizeMimeType(%q, %q) = %q, want %q", tt.mime, tt.name, got, tt.want)
		}
	}
}
