package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"

	"github.com/rs/zerolog/log"
)

// Environment variables read by the configuration, and passed to extensions.
const (
	EnvSettings = "DROPS_SETTINGS"
	EnvCatalog  = "DROPS_CATALOG"
	EnvVerbose  = "DROPS_VERBOSE"
)

// ExtensionPrefix prefixes the name of external subcommand binaries.
const ExtensionPrefix = "drops-"

// RunExtension attempts to find and execute an external drops-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
func RunExtension(subcommand string, args []string) (bool, int) {
	name := ExtensionPrefix + subcommand
	lp, err := exec.LookPath(name)
	if err != nil {
		log.Debug().Str("extension", name).Err(err).Msg("extension-not-found")
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = append(os.Environ(), extensionEnv(cfg)...)

	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", name, err)
		return true, 1
	}
	return true, 0
}

// extensionEnv returns the configuration as environment variables, so that
// extensions use the same files.
func extensionEnv(c config) []string {
	return []string{
		EnvSettings + "=" + c.Settings,
		EnvCatalog + "=" + c.Catalog,
		EnvVerbose + "=" + strconv.FormatBool(c.Verbose),
	}
}
