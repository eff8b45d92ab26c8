package cmd

import (
	"flag"
	"slices"

	drops "github.com/blushiemagic/Maplestory-Boss-Drops"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion returns the shell completion tree of the commands registered in
// c. Boss, difficulty and reward values are predicted from the catalog.
func Completion(c *subcommands.Commander, catalog *drops.Catalog) *complete.Command {
	var bosses, difficulties, rewards []string
	for _, a := range catalog.Activities() {
		bosses = append(bosses, a.ID)
		for _, s := range a.Difficulties {
			if !slices.Contains(difficulties, s.Difficulty) {
				difficulties = append(difficulties, s.Difficulty)
			}
		}
	}
	for _, cat := range catalog.Categories() {
		rewards = append(rewards, string(cat.ID))
	}

	known := map[string]complete.Predictor{
		"b":        predict.Set(bosses),
		"l":        predict.Set(difficulties),
		"p":        predict.Set{"day", "week", "month", "quarter", "year"},
		"o":        predict.Files("*"),
		"settings": predict.Files("*.json"),
		"catalog":  predict.Files("*.yaml"),
	}
	flags := func(fs *flag.FlagSet) map[string]complete.Predictor {
		m := make(map[string]complete.Predictor)
		fs.VisitAll(func(f *flag.Flag) {
			if p, ok := known[f.Name]; ok {
				m[f.Name] = p
				return
			}
			if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
				m[f.Name] = predict.Nothing
				return
			}
			m[f.Name] = predict.Something
		})
		return m
	}

	args := map[string]complete.Predictor{
		"new":   predict.Files("*.mcsv"),
		"open":  predict.Files("*.mcsv"),
		"add":   predict.Set(rewards),
		"edit":  predict.Set(rewards),
		"help":  predict.Nothing,
		"topic": predict.Nothing,
	}

	root := &complete.Command{
		Sub:   make(map[string]*complete.Command),
		Flags: flags(flag.CommandLine),
	}
	c.VisitCommands(func(_ *subcommands.CommandGroup, sub subcommands.Command) {
		fs := flag.NewFlagSet(sub.Name(), flag.ContinueOnError)
		sub.SetFlags(fs)
		root.Sub[sub.Name()] = &complete.Command{Flags: flags(fs), Args: args[sub.Name()]}
	})
	return root
}

// IsRegistered returns true if name is a command registered in c.
func IsRegistered(c *subcommands.Commander, name string) bool {
	found := false
	c.VisitCommands(func(_ *subcommands.CommandGroup, sub subcommands.Command) {
		if sub.Name() == name {
			found = true
		}
	})
	return found
}
