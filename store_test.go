package drops

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestStore_OpenCreatesFile(t *testing.T) {
	fs := NewMemoryFileSystem()
	settings := NewSettings(fs, "settings.json")

	s, err := Open(fs, settings, testCatalog(t))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if s.Path() != DefaultPath {
		t.Errorf("Path() = %q, want %q", s.Path(), DefaultPath)
	}
	if text, ok := fs.Files[DefaultPath]; !ok || text != "" {
		t.Errorf("ledger file = %q, %v, want an empty file", text, ok)
	}
}

func TestStore_SaveAndLoad(t *testing.T) {
	fs := NewMemoryFileSystem()
	settings := NewSettings(fs, "settings.json")
	if err := settings.Set(SettingSave, "data/drops.mcsv"); err != nil {
		t.Fatal(err)
	}

	s, err := Open(fs, settings, testCatalog(t))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	l, _ := s.Book().Ledger("boss", "normal")
	l.Insert(entry("2024-01-10", 3, 10, 5, "boxA", 1, "boxB", 2))
	if err := s.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	again, err := Open(fs, settings, testCatalog(t))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if again.Path() != "data/drops.mcsv" {
		t.Errorf("Path() = %q, want data/drops.mcsv", again.Path())
	}
	if again.Book().Len() != 1 {
		t.Errorf("reopened book has %d entries, want 1", again.Book().Len())
	}
}

func TestStore_LoadRemembersPath(t *testing.T) {
	fs := NewMemoryFileSystem()
	fs.Files["other.mcsv"] = ""
	settings := NewSettings(fs, "settings.json")
	s := NewStore(fs, settings, testCatalog(t))

	if err := s.Save(); !errors.Is(err, ErrNoPath) {
		t.Errorf("Save() without a file error = %v, want ErrNoPath", err)
	}
	if err := s.Load("other.mcsv"); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got, _ := settings.String(SettingSave, ""); got != "other.mcsv" {
		t.Errorf("save setting = %q, want other.mcsv", got)
	}
	if err := s.Load("missing.mcsv"); err == nil {
		t.Error("Load() of a missing file: want error")
	}
	if s.Path() != "other.mcsv" {
		t.Errorf("failed Load() changed the path to %q", s.Path())
	}
}

func TestStore_SaveFailure(t *testing.T) {
	fs := NewMemoryFileSystem()
	s, err := Open(fs, NewSettings(fs, "settings.json"), testCatalog(t))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	l, _ := s.Book().Ledger("boss", "normal")
	l.Insert(entry("2024-01-10", 3, 10, 5, "boxA", 1, "boxB", 2))
	before := snapshot(l)

	diskFull := errors.New("disk full")
	fs.WriteErr = diskFull
	if err := s.Save(); !errors.Is(err, diskFull) {
		t.Errorf("Save() error = %v, want %v", err, diskFull)
	}
	if fs.Files[DefaultPath] != "" {
		t.Errorf("ledger file changed after a failed save: %q", fs.Files[DefaultPath])
	}
	after, _ := s.Book().Ledger("boss", "normal")
	if diff := cmp.Diff(before, snapshot(after)); diff != "" {
		t.Errorf("book changed after a failed save (-before +after):\n%s", diff)
	}
}
