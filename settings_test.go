package drops

import (
	"strings"
	"testing"
)

func TestSettings(t *testing.T) {
	fs := NewMemoryFileSystem()
	s := NewSettings(fs, "settings.json")

	if _, ok, err := s.Get(SettingSave); err != nil || ok {
		t.Fatalf("Get() on missing file = %v, %v, want not found", ok, err)
	}
	got, err := s.String(SettingSave, DefaultPath)
	if err != nil || got != DefaultPath {
		t.Errorf("String() = %q, %v, want %q", got, err, DefaultPath)
	}

	if err := s.Set(SettingSave, "mine.mcsv"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := s.Set("report.period", "month"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	testCases := []struct {
		key  string
		want string
	}{
		{key: SettingSave, want: "mine.mcsv"},
		{key: "report.period", want: "month"},
		{key: "report.missing", want: "fallback"},
	}
	for _, tc := range testCases {
		got, err := s.String(tc.key, "fallback")
		if err != nil {
			t.Errorf("String(%q) error = %v", tc.key, err)
		}
		if got != tc.want {
			t.Errorf("String(%q) = %q, want %q", tc.key, got, tc.want)
		}
	}

	// written indented
	if text := fs.Files["settings.json"]; !strings.Contains(text, "\n    \"save\": \"mine.mcsv\"") {
		t.Errorf("settings file = %q, want indented json", text)
	}
}

func TestSettings_InvalidFile(t *testing.T) {
	fs := NewMemoryFileSystem()
	fs.Files["settings.json"] = "not json"
	s := NewSettings(fs, "settings.json")
	if _, _, err := s.Get(SettingSave); err == nil {
		t.Error("Get() on invalid file: want error")
	}
}
