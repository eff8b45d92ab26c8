package drops

import (
	"encoding/json"
	"fmt"

	"github.com/PaesslerAG/jsonpath"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// DefaultSettingsPath is the settings file used when none is configured.
const DefaultSettingsPath = "settings.json"

// Settings is a JSON file of user preferences. Keys are dotted paths, like
// "save" or "report.period".
type Settings struct {
	fs   FileSystem
	path string
}

// NewSettings returns the settings stored in path. The file is only read
// when a key is requested, a missing file reads as no settings at all.
func NewSettings(fs FileSystem, path string) *Settings {
	return &Settings{fs: fs, path: path}
}

// Path returns the settings file path.
func (s *Settings) Path() string { return s.path }

func (s *Settings) read() ([]byte, error) {
	exists, err := s.fs.Exists(s.path)
	if err != nil {
		return nil, fmt.Errorf("cannot read settings: %w", err)
	}
	if !exists {
		return []byte("{}"), nil
	}
	text, err := s.fs.ReadAll(s.path)
	if err != nil {
		return nil, fmt.Errorf("cannot read settings: %w", err)
	}
	if text == "" {
		return []byte("{}"), nil
	}
	return []byte(text), nil
}

// Get returns the value of a key, false if it is not set.
func (s *Settings) Get(key string) (any, bool, error) {
	data, err := s.read()
	if err != nil {
		return nil, false, err
	}
	var jobj any
	if err := json.Unmarshal(data, &jobj); err != nil {
		return nil, false, fmt.Errorf("settings file %q is not valid json: %w", s.path, err)
	}
	// jsonpath reports missing keys as errors.
	jval, err := jsonpath.Get("$."+key, jobj)
	if err != nil || jval == nil {
		return nil, false, nil
	}
	return jval, true, nil
}

// String returns the value of a key as a string, or fallback if it is not
// set or not a string.
func (s *Settings) String(key, fallback string) (string, error) {
	jval, ok, err := s.Get(key)
	if err != nil {
		return "", err
	}
	if str, isString := jval.(string); ok && isString {
		return str, nil
	}
	return fallback, nil
}

// Set writes the value of a key to the settings file.
func (s *Settings) Set(key string, value any) error {
	data, err := s.read()
	if err != nil {
		return err
	}
	data, err = sjson.SetBytes(data, key, value)
	if err != nil {
		return fmt.Errorf("cannot set %q in settings: %w", key, err)
	}
	data = pretty.PrettyOptions(data, &pretty.Options{Width: 80, Indent: "    "})
	if err := s.fs.WriteAll(s.path, string(data)); err != nil {
		return fmt.Errorf("cannot write settings: %w", err)
	}
	return nil
}
