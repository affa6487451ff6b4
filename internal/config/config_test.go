package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadOverridesBase(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "style.toml")
	content := `
font_size = 64
word_case = "upper"
active_bg_color = "#FF0000"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path, DefaultStyle())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.FontSize != 64 {
		t.Errorf("FontSize = %d, want 64", s.FontSize)
	}
	if s.WordCase != CaseUpper {
		t.Errorf("WordCase = %q, want upper", s.WordCase)
	}
	if s.ActiveBgColor != "#FF0000" {
		t.Errorf("ActiveBgColor = %q, want #FF0000", s.ActiveBgColor)
	}
	// Keys absent from the file keep their base values.
	if s.NormalColor != "#FFFFFF" {
		t.Errorf("NormalColor = %q, want base default", s.NormalColor)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml"), DefaultStyle()); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadMalformedTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("font_size = = 12"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path, DefaultStyle()); err == nil {
		t.Fatal("expected error for malformed TOML")
	}
}
