package mcp

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := `# comment
GOOGLE_MAPS_API_KEY=abc123

QUOTED="with spaces"
SINGLE='single'
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	env, err := parseEnvFile(path)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := map[string]string{
		"GOOGLE_MAPS_API_KEY": "abc123",
		"QUOTED":              "with spaces",
		"SINGLE":              "single",
	}
	for k, v := range want {
		if env[k] != v {
			t.Errorf("%v got %q want %q", k, env[k], v)
		}
	}
}

func TestParseEnvFile_Empty(t *testing.T) {
	env, err := parseEnvFile("")
	if err != nil {
		t.Fatalf("empty path should be a no-op: %v", err)
	}
	if env != nil {
		t.Errorf("expected nil map, got %v", env)
	}
}

func TestParseEnvFile_MissingEquals(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("NOEQUALS\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := parseEnvFile(path); err == nil {
		t.Fatal("expected error for malformed line")
	}
}

func TestParseEnvFile_MissingFile(t *testing.T) {
	if _, err := parseEnvFile("/does/not/exist"); err == nil {
		t.Fatal("expected error for missing file")
	}
}
