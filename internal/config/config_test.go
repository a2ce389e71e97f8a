package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadValidConfig(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	content := `default_length: 24
default_mode: base64
word_list: /usr/share/dict/british-english
clipboard_command: xsel --input --clipboard
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DefaultLength != 24 {
		t.Errorf("DefaultLength = %d, want 24", cfg.DefaultLength)
	}
	if cfg.DefaultMode != "base64" {
		t.Errorf("DefaultMode = %q, want %q", cfg.DefaultMode, "base64")
	}
	if cfg.WordList != "/usr/share/dict/british-english" {
		t.Errorf("WordList = %q, want %q", cfg.WordList, "/usr/share/dict/british-english")
	}
	if cfg.ClipboardCommand != "xsel --input --clipboard" {
		t.Errorf("ClipboardCommand = %q, want %q", cfg.ClipboardCommand, "xsel --input --clipboard")
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()
	cfg, err := Load("/nonexistent/path/config.yaml")
	if err != nil {
		t.Fatalf("expected no error for missing file, got: %v", err)
	}
	if cfg.DefaultLength != 0 {
		t.Errorf("DefaultLength = %d, want 0", cfg.DefaultLength)
	}
	if cfg.DefaultMode != "" {
		t.Errorf("DefaultMode = %q, want empty", cfg.DefaultMode)
	}
}

func TestLoadEmptyFile(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	if err := os.WriteFile(path, []byte(""), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DefaultMode != "" {
		t.Errorf("DefaultMode = %q, want empty", cfg.DefaultMode)
	}
	if cfg.ClipboardCommand != "" {
		t.Errorf("ClipboardCommand = %q, want empty", cfg.ClipboardCommand)
	}
}

func TestLoadPartialConfig(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	content := `default_mode: xkcd
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DefaultMode != "xkcd" {
		t.Errorf("DefaultMode = %q, want %q", cfg.DefaultMode, "xkcd")
	}
	if cfg.DefaultLength != 0 {
		t.Errorf("DefaultLength = %d, want 0", cfg.DefaultLength)
	}
}

func TestLoadMalformedConfig(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	if err := os.WriteFile(path, []byte("default_length: [not a number\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed YAML")
	}
}
