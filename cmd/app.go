// Package cmd implements the CLI application to record boss clears and
// report drop rates.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"strings"

	drops "github.com/blushiemagic/Maplestory-Boss-Drops"
	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&newCmd{}, "file")
	c.Register(&openCmd{}, "file")
	c.Register(&fmtCmd{}, "file")
	c.Register(&exportCmd{}, "file")

	c.Register(&addCmd{}, "entries")
	c.Register(&editCmd{}, "entries")
	c.Register(&rmCmd{}, "entries")
	c.Register(&logCmd{}, "entries")

	c.Register(&statsCmd{}, "reports")
	c.Register(&summaryCmd{}, "reports")

	c.Register(&catalogCmd{}, "help")
	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	settingsFlag = flag.String("settings", "", "Path to the settings file. Defaults to $DROPS_SETTINGS or settings.json.")
	catalogFlag  = flag.String("catalog", "", "Path to a catalog file replacing the built-in one. Defaults to $DROPS_CATALOG.")
	verboseFlag  = flag.Bool("v", false, "Print debug logs.")
)

// fileSystem is where ledger and settings files are read and written.
var fileSystem drops.FileSystem = drops.OSFileSystem{}

// cfg is the configuration once flags and environment are merged, see Setup.
var cfg config

// Settings returns the user settings.
func Settings() *drops.Settings {
	return drops.NewSettings(fileSystem, cfg.Settings)
}

// Catalog returns the catalog in use: the catalog file if one is configured,
// the built-in one otherwise.
func Catalog() (*drops.Catalog, error) {
	if cfg.Catalog == "" {
		return drops.DefaultCatalog(), nil
	}
	text, err := fileSystem.ReadAll(cfg.Catalog)
	if err != nil {
		return nil, err
	}
	c, err := drops.DecodeCatalog(strings.NewReader(text))
	if err != nil {
		return nil, fmt.Errorf("invalid catalog %q: %w", cfg.Catalog, err)
	}
	return c, nil
}

// OpenStore opens the ledger file named in the settings.
func OpenStore() (*drops.Store, error) {
	c, err := Catalog()
	if err != nil {
		return nil, err
	}
	return drops.Open(fileSystem, Settings(), c)
}

// openLedger opens the store and returns the ledger of a boss at a difficulty.
func openLedger(boss, difficulty string) (*drops.Store, *drops.Ledger, error) {
	if boss == "" || difficulty == "" {
		return nil, nil, fmt.Errorf("both the boss (-b) and the difficulty (-l) are required")
	}
	s, err := OpenStore()
	if err != nil {
		return nil, nil, err
	}
	l, err := s.Book().Ledger(boss, difficulty)
	if err != nil {
		return nil, nil, err
	}
	return s, l, nil
}

// printMarkdown renders markdown for the terminal, or prints it raw when
// the output is not a terminal.
func printMarkdown(md string) {
	if fi, err := os.Stdout.Stat(); err == nil && fi.Mode()&os.ModeCharDevice == 0 {
		fmt.Print(md)
		return
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
