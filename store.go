package drops

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
)

const (
	// DefaultPath is the ledger file used when the settings name none.
	DefaultPath = "drops.mcsv"
	// SettingSave is the settings key holding the ledger file path.
	SettingSave = "save"
)

// ErrNoPath is returned when saving a store that has no file yet.
var ErrNoPath = errors.New("no ledger file")

// Store is an editing session: the ledger file path and its book.
type Store struct {
	fs       FileSystem
	settings *Settings
	catalog  *Catalog

	path string
	book *Book
}

// NewStore returns a store with an empty book and no ledger file.
func NewStore(fs FileSystem, settings *Settings, catalog *Catalog) *Store {
	return &Store{fs: fs, settings: settings, catalog: catalog, book: NewBook(catalog)}
}

// Open opens the ledger file named in the settings, creating it if it does
// not exist.
func Open(fs FileSystem, settings *Settings, catalog *Catalog) (*Store, error) {
	path, err := settings.String(SettingSave, DefaultPath)
	if err != nil {
		return nil, err
	}
	s := NewStore(fs, settings, catalog)

	exists, err := fs.Exists(path)
	if err != nil {
		return nil, err
	}
	if exists {
		err = s.Load(path)
	} else {
		err = s.CreateNew(path)
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Load replaces the book with the content of the file at path. The store is
// unchanged on error.
func (s *Store) Load(path string) error {
	log.Debug().Str("path", path).Msg("load-drops-file")
	text, err := s.fs.ReadAll(path)
	if err != nil {
		return fmt.Errorf("cannot load ledger file: %w", err)
	}
	b, err := DecodeBook(s.catalog, strings.NewReader(text))
	if err != nil {
		return err
	}
	if err := s.remember(path); err != nil {
		return err
	}
	s.path, s.book = path, b
	return nil
}

// CreateNew writes an empty ledger file at path and starts a new book.
func (s *Store) CreateNew(path string) error {
	log.Debug().Str("path", path).Msg("create-drops-file")
	if err := s.fs.WriteAll(path, ""); err != nil {
		return fmt.Errorf("cannot create ledger file: %w", err)
	}
	if err := s.remember(path); err != nil {
		return err
	}
	s.path, s.book = path, NewBook(s.catalog)
	return nil
}

// remember records path as the ledger file in the settings.
func (s *Store) remember(path string) error {
	current, err := s.settings.String(SettingSave, DefaultPath)
	if err != nil {
		return err
	}
	if current == path {
		return nil
	}
	return s.settings.Set(SettingSave, path)
}

// Save writes the book to the ledger file. The store is unchanged on error.
func (s *Store) Save() error {
	if s.path == "" {
		return ErrNoPath
	}
	var sb strings.Builder
	if err := EncodeBook(&sb, s.book); err != nil {
		return err
	}
	log.Debug().Str("path", s.path).Int("entries", s.book.Len()).Msg("save-drops-file")
	if err := s.fs.WriteAll(s.path, sb.String()); err != nil {
		return fmt.Errorf("cannot save ledger file: %w", err)
	}
	return nil
}

// Book returns the book being edited.
func (s *Store) Book() *Book { return s.book }

// Path returns the ledger file path, empty if none.
func (s *Store) Path() string { return s.path }

// Catalog returns the catalog of the store.
func (s *Store) Catalog() *Catalog { return s.catalog }
