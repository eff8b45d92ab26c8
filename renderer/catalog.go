package renderer

import (
	"fmt"
	"strings"

	drops "github.com/blushiemagic/Maplestory-Boss-Drops"
	"github.com/blushiemagic/Maplestory-Boss-Drops/date"
)

// CatalogMarkdown renders the reward categories and the activities of a
// catalog.
func CatalogMarkdown(c *drops.Catalog) string {
	var b strings.Builder
	printf := func(format string, args ...any) { fmt.Fprintf(&b, format, args...) }

	printf("# Reward Categories\n\n")
	printf("| ID | Name | Weighted By | Release | Total |\n")
	printf("|:---|:---|:---|:---|:---|\n")
	for _, cat := range c.Categories() {
		release := "-"
		if d, ok := c.ReleaseDate(cat.ReleaseDate); ok {
			release = d.String()
		}
		total := "yes"
		if cat.SkipTotal {
			total = "no"
		}
		printf("| %s | %s | %s | %s | %s |\n", cat.ID, cat.Name, basisName(drops.WeightBasis(cat, drops.Reward{ID: cat.ID})), release, total)
	}

	printf("\n# Activities\n")
	for _, a := range c.Activities() {
		printf("\n## %s\n\n", a.Name)
		for _, s := range a.Difficulties {
			var names []string
			for _, r := range s.Rewards {
				names = append(names, c.RewardName(r))
			}
			printf("- **%s** (`%s,%s`): %s\n", drops.DifficultyName(s.Difficulty), s.Activity, s.Difficulty, strings.Join(names, ", "))
		}
	}

	if mods := c.Modifiers(); len(mods) > 0 {
		printf("\n# Modifiers\n\n")
		printf("| Name | Multiplier | Range | Categories |\n")
		printf("|:---|---:|:---|:---|\n")
		for _, m := range mods {
			ids := make([]string, len(m.Categories))
			for i, id := range m.Categories {
				ids[i] = string(id)
			}
			r := date.Range{From: m.Start, To: m.End}
			printf("| %s | %s | %s | %s |\n", m.Name, m.Multiplier, r, strings.Join(ids, ", "))
		}
	}
	return b.String()
}

func basisName(b drops.Basis) string {
	switch b {
	case drops.BasisEquip:
		return "drop and greed rate"
	case drops.BasisPersonal:
		return "personal drop rate"
	case drops.BasisPersonalEquip:
		return "personal drop and greed rate"
	case drops.BasisClears:
		return "party size"
	case drops.BasisEntries:
		return "clears"
	default:
		return "drop rate"
	}
}
