// Command drops records boss clears and computes the drop rates of rewards.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path"

	drops "github.com/blushiemagic/Maplestory-Boss-Drops"
	"github.com/blushiemagic/Maplestory-Boss-Drops/cmd"
	"github.com/google/subcommands"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	// exits when called by the shell to complete a command line.
	cmd.Completion(commander, drops.DefaultCatalog()).Complete("drops")

	flag.Parse()
	if err := cmd.Setup(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(int(subcommands.ExitUsageError))
	}

	if name := flag.Arg(0); name != "" && !cmd.IsRegistered(commander, name) {
		if found, code := cmd.RunExtension(name, flag.Args()[1:]); found {
			os.Exit(code)
		}
	}
	os.Exit(int(commander.Execute(context.Background())))
}
