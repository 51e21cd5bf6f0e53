package utils

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type sample struct {
	URL   string `yaml:"url"`
	Count int    `yaml:"count"`
}

func TestWriteThenParse(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "conf.yaml")

	if err := WriteYamlToFile(path, sample{URL: "https://api.test", Count: 3}); err != nil {
		t.Fatalf("WriteYamlToFile() failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("file not written: %v", err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("permissions = %o, want 0600", info.Mode().Perm())
	}

	var got sample
	if err := ParseYamlFromFile(path, &got); err != nil {
		t.Fatalf("ParseYamlFromFile() failed: %v", err)
	}
	if got.URL != "https://api.test" || got.Count != 3 {
		t.Errorf("got %+v", got)
	}
}

func TestParseYamlFromFile_Missing(t *testing.T) {
	var got sample
	err := ParseYamlFromFile(filepath.Join(t.TempDir(), "missing.yaml"), &got)
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestParseYamlFromBytes_Invalid(t *testing.T) {
	var got sample
	err := ParseYamlFromBytes([]byte("url: [unclosed"), &got)
	if err == nil || !strings.Contains(err.Error(), "unmarshal yaml") {
		t.Fatalf("expected unmarshal error, got %v", err)
	}
}
