package drops

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/blushiemagic/Maplestory-Boss-Drops/date"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// CategoryID identifies a reward category, it is also its column name in the
// ledger file.
type CategoryID string

// Category is the catalog definition of a reward category.
type Category struct {
	ID   CategoryID
	Name string
	// PerParticipant categories drop once per party member, their weighted
	// trials scale with the clear size.
	PerParticipant bool
	// Equip categories are equipment: the greed rate adds to their drop rate.
	Equip bool
	// Guaranteed categories do not depend on the drop rate at all.
	Guaranteed bool
	// SkipTotal categories have no grand total in the summary.
	SkipTotal bool
	// ReleaseDate is a key of the catalog release dates, empty when the
	// category always existed.
	ReleaseDate string
}

// Reward is a category as it drops from one activity at one difficulty.
// Zero fields keep the category defaults.
type Reward struct {
	ID               CategoryID
	Name             string
	NoEquip          bool
	Guaranteed       bool
	ExcludeFromTotal bool
	ReleaseDate      string
	Removed          string
	Clarifier        string
}

// Schema is the ordered list of rewards of one activity at one difficulty.
type Schema struct {
	Activity   string
	Difficulty string
	Rewards    []Reward
}

// Categories returns the category ids of the schema, in schema order.
func (s *Schema) Categories() []CategoryID {
	ids := make([]CategoryID, len(s.Rewards))
	for i, r := range s.Rewards {
		ids[i] = r.ID
	}
	return ids
}

// Reward returns the reward for this category id.
func (s *Schema) Reward(id CategoryID) (Reward, bool) {
	for _, r := range s.Rewards {
		if r.ID == id {
			return r, true
		}
	}
	return Reward{}, false
}

// Modifier multiplies the weighted trials of some categories for entries
// dated in [Start, End). A zero Start or End leaves that side open.
type Modifier struct {
	Name       string
	Categories []CategoryID
	Multiplier decimal.Decimal
	Start, End date.Date
}

// Affects returns true if the modifier applies to category id on day d.
func (m Modifier) Affects(id CategoryID, d date.Date) bool {
	return slices.Contains(m.Categories, id) && date.Range{From: m.Start, To: m.End}.Contains(d)
}

// Activity is a boss and its difficulties, in catalog order.
type Activity struct {
	ID           string
	Name         string
	Difficulties []*Schema
}

// Catalog is the immutable reference data: categories, activities,
// release dates, modifiers and the drop rate cap.
type Catalog struct {
	categories   []*Category
	byID         map[CategoryID]*Category
	activities   []*Activity
	releaseDates map[string]date.Date
	modifiers    []Modifier

	capMilestone date.Date
	capBefore    int
	capAfter     int
}

// Categories returns all categories in catalog order.
func (c *Catalog) Categories() []*Category { return c.categories }

// Category returns the category with this id.
func (c *Catalog) Category(id CategoryID) (*Category, bool) {
	cat, ok := c.byID[id]
	return cat, ok
}

// Activities returns all activities in catalog order.
func (c *Catalog) Activities() []*Activity { return c.activities }

// Activity returns the activity with this id, or nil.
func (c *Catalog) Activity(id string) *Activity {
	for _, a := range c.activities {
		if a.ID == id {
			return a
		}
	}
	return nil
}

// Schema returns the schema for an activity at a difficulty.
func (c *Catalog) Schema(activity, difficulty string) (*Schema, bool) {
	a := c.Activity(activity)
	if a == nil {
		return nil, false
	}
	for _, s := range a.Difficulties {
		if s.Difficulty == difficulty {
			return s, true
		}
	}
	return nil, false
}

// ReleaseDate returns the date of a named release.
func (c *Catalog) ReleaseDate(key string) (date.Date, bool) {
	d, ok := c.releaseDates[key]
	return d, ok
}

// Modifiers returns all modifiers.
func (c *Catalog) Modifiers() []Modifier { return c.modifiers }

// DropCap returns the maximum drop rate, in percent, that applies on day d.
func (c *Catalog) DropCap(d date.Date) int {
	if !c.capMilestone.IsZero() && !d.Before(c.capMilestone) {
		return c.capAfter
	}
	return c.capBefore
}

// RewardName returns the display name of a reward: its override, or the
// category name.
func (c *Catalog) RewardName(r Reward) string {
	if r.Name != "" {
		return r.Name
	}
	if cat, ok := c.byID[r.ID]; ok {
		return cat.Name
	}
	return string(r.ID)
}

//go:embed catalog.yaml
var defaultCatalog []byte

// DefaultCatalog returns the catalog shipped with the program.
func DefaultCatalog() *Catalog {
	c, err := DecodeCatalog(bytes.NewReader(defaultCatalog))
	if err != nil {
		panic(fmt.Sprintf("invalid embedded catalog: %v", err))
	}
	return c
}

// jcatalog is the catalog file as read by the yaml parser.
type jcatalog struct {
	DropCap struct {
		Milestone string `yaml:"milestone"`
		Before    int    `yaml:"before"`
		After     int    `yaml:"after"`
	} `yaml:"dropCap"`
	ReleaseDates map[string]string `yaml:"releaseDates"`
	Categories   []struct {
		ID             string `yaml:"id"`
		Name           string `yaml:"name"`
		PerParticipant bool   `yaml:"perParticipant"`
		Equip          bool   `yaml:"equip"`
		Guaranteed     bool   `yaml:"guaranteed"`
		SkipTotal      bool   `yaml:"skipTotal"`
		ReleaseDate    string `yaml:"releaseDate"`
	} `yaml:"categories"`
	Modifiers []struct {
		Name       string   `yaml:"name"`
		Categories []string `yaml:"categories"`
		Multiplier float64  `yaml:"multiplier"`
		Start      string   `yaml:"start"`
		End        string   `yaml:"end"`
	} `yaml:"modifiers"`
	Activities []struct {
		ID           string `yaml:"id"`
		Name         string `yaml:"name"`
		Difficulties []struct {
			ID      string `yaml:"id"`
			Rewards []struct {
				ID               string `yaml:"id"`
				Name             string `yaml:"name"`
				NoEquip          bool   `yaml:"noEquip"`
				Guaranteed       bool   `yaml:"guaranteed"`
				ExcludeFromTotal bool   `yaml:"excludeFromTotal"`
				ReleaseDate      string `yaml:"releaseDate"`
				Removed          string `yaml:"removed"`
				Clarifier        string `yaml:"clarifier"`
			} `yaml:"rewards"`
		} `yaml:"difficulties"`
	} `yaml:"activities"`
}

// DecodeCatalog reads a yaml catalog and checks that every reference in it
// resolves.
func DecodeCatalog(r io.Reader) (*Catalog, error) {
	var jc jcatalog
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&jc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("catalog format error: %w", err)
	}

	c := &Catalog{
		byID:         make(map[CategoryID]*Category),
		releaseDates: make(map[string]date.Date),
		capBefore:    jc.DropCap.Before,
		capAfter:     jc.DropCap.After,
	}

	for key, value := range jc.ReleaseDates {
		d, err := date.Parse(value)
		if err != nil {
			return nil, fmt.Errorf("catalog release date %q: %w", key, err)
		}
		c.releaseDates[key] = d
	}
	releaseKey := func(key, where string) error {
		if key == "" {
			return nil
		}
		if _, ok := c.releaseDates[key]; !ok {
			return fmt.Errorf("%s: unknown release date %q", where, key)
		}
		return nil
	}

	if jc.DropCap.Milestone != "" {
		if err := releaseKey(jc.DropCap.Milestone, "drop cap milestone"); err != nil {
			return nil, err
		}
		c.capMilestone = c.releaseDates[jc.DropCap.Milestone]
	}

	for _, jcat := range jc.Categories {
		id := CategoryID(jcat.ID)
		if id == "" {
			return nil, fmt.Errorf("catalog category %q has no id", jcat.Name)
		}
		if _, exists := c.byID[id]; exists {
			return nil, fmt.Errorf("catalog category %q is already defined", id)
		}
		if err := releaseKey(jcat.ReleaseDate, fmt.Sprintf("category %q", id)); err != nil {
			return nil, err
		}
		cat := &Category{
			ID:             id,
			Name:           jcat.Name,
			PerParticipant: jcat.PerParticipant,
			Equip:          jcat.Equip,
			Guaranteed:     jcat.Guaranteed,
			SkipTotal:      jcat.SkipTotal,
			ReleaseDate:    jcat.ReleaseDate,
		}
		c.categories = append(c.categories, cat)
		c.byID[id] = cat
	}

	for _, jm := range jc.Modifiers {
		m := Modifier{Name: jm.Name, Multiplier: decimal.NewFromFloat(jm.Multiplier)}
		for _, id := range jm.Categories {
			if _, ok := c.byID[CategoryID(id)]; !ok {
				return nil, fmt.Errorf("modifier %q: unknown category %q", jm.Name, id)
			}
			m.Categories = append(m.Categories, CategoryID(id))
		}
		var err error
		if jm.Start != "" {
			if m.Start, err = date.Parse(jm.Start); err != nil {
				return nil, fmt.Errorf("modifier %q start: %w", jm.Name, err)
			}
		}
		if jm.End != "" {
			if m.End, err = date.Parse(jm.End); err != nil {
				return nil, fmt.Errorf("modifier %q end: %w", jm.Name, err)
			}
		}
		c.modifiers = append(c.modifiers, m)
	}

	for _, ja := range jc.Activities {
		if c.Activity(ja.ID) != nil {
			return nil, fmt.Errorf("catalog activity %q is already defined", ja.ID)
		}
		a := &Activity{ID: ja.ID, Name: ja.Name}
		for _, jd := range ja.Difficulties {
			s := &Schema{Activity: ja.ID, Difficulty: jd.ID}
			where := fmt.Sprintf("%s,%s", ja.ID, jd.ID)
			if slices.ContainsFunc(a.Difficulties, func(x *Schema) bool { return x.Difficulty == jd.ID }) {
				return nil, fmt.Errorf("%s: difficulty is already defined", where)
			}
			for _, jr := range jd.Rewards {
				id := CategoryID(jr.ID)
				if _, ok := c.byID[id]; !ok {
					return nil, fmt.Errorf("%s: unknown category %q", where, id)
				}
				if _, dup := s.Reward(id); dup {
					return nil, fmt.Errorf("%s: category %q is listed twice", where, id)
				}
				if err := releaseKey(jr.ReleaseDate, where); err != nil {
					return nil, err
				}
				if err := releaseKey(jr.Removed, where); err != nil {
					return nil, err
				}
				s.Rewards = append(s.Rewards, Reward{
					ID:               id,
					Name:             jr.Name,
					NoEquip:          jr.NoEquip,
					Guaranteed:       jr.Guaranteed,
					ExcludeFromTotal: jr.ExcludeFromTotal,
					ReleaseDate:      jr.ReleaseDate,
					Removed:          jr.Removed,
					Clarifier:        jr.Clarifier,
				})
			}
			a.Difficulties = append(a.Difficulties, s)
		}
		c.activities = append(c.activities, a)
	}
	return c, nil
}
