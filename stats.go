package drops

import (
	"github.com/blushiemagic/Maplestory-Boss-Drops/date"
	"github.com/shopspring/decimal"
)

// TrialKind selects a weighted trial count of a Ledger: one of the five
// scalar kinds below, or a category id.
type TrialKind string

const (
	Clears        TrialKind = "clears"
	Drop          TrialKind = "drop"
	Equip         TrialKind = "equip"
	Personal      TrialKind = "personal"
	PersonalEquip TrialKind = "personal_equip"
)

// Basis is the per entry quantity a reward's weighted trials are made of.
type Basis int

const (
	BasisDrop Basis = iota
	BasisEquip
	BasisPersonal
	BasisPersonalEquip
	BasisClears  // the clear size
	BasisEntries // one per entry
)

// WeightBasis returns the basis of a reward's weighted trials.
//
// Guaranteed rewards ignore the drop rate: they count one trial per party
// member when they drop per participant, one per clear otherwise. Other
// rewards use the drop rate, plus the greed rate for equipment.
func WeightBasis(c *Category, r Reward) Basis {
	guaranteed := c.Guaranteed || r.Guaranteed
	equip := c.Equip && !r.NoEquip
	switch {
	case c.PerParticipant && guaranteed:
		return BasisClears
	case c.PerParticipant && equip:
		return BasisPersonalEquip
	case c.PerParticipant:
		return BasisPersonal
	case guaranteed:
		return BasisEntries
	case equip:
		return BasisEquip
	default:
		return BasisDrop
	}
}

// weights are the trial contributions of a single entry, or their sums over
// a ledger.
type weights struct {
	entries       int
	clears        int
	drop          decimal.Decimal
	equip         decimal.Decimal
	personal      decimal.Decimal
	personalEquip decimal.Decimal
}

var hundred = decimal.NewFromInt(100)

// rateWeight converts a drop rate in percent into a trial weight.
func rateWeight(percent, limit int) decimal.Decimal {
	return decimal.NewFromInt(int64(min(percent, limit))).Div(hundred).Add(decimal.NewFromInt(1))
}

// entryWeights returns the trial contributions of e under a drop rate cap.
func entryWeights(e Entry, limit int) weights {
	return weights{
		entries:       1,
		clears:        e.ClearSize,
		drop:          rateWeight(e.Drop, limit),
		equip:         rateWeight(e.Drop+e.Greed, limit),
		personal:      rateWeight(e.PersonalDrop, limit),
		personalEquip: rateWeight(e.PersonalDrop+e.PersonalGreed, limit),
	}
}

// add returns w + sign*x.
func (w weights) add(x weights, sign int) weights {
	if sign < 0 {
		return weights{
			entries:       w.entries - x.entries,
			clears:        w.clears - x.clears,
			drop:          w.drop.Sub(x.drop),
			equip:         w.equip.Sub(x.equip),
			personal:      w.personal.Sub(x.personal),
			personalEquip: w.personalEquip.Sub(x.personalEquip),
		}
	}
	return weights{
		entries:       w.entries + x.entries,
		clears:        w.clears + x.clears,
		drop:          w.drop.Add(x.drop),
		equip:         w.equip.Add(x.equip),
		personal:      w.personal.Add(x.personal),
		personalEquip: w.personalEquip.Add(x.personalEquip),
	}
}

// of returns the weight for a basis.
func (w weights) of(b Basis) decimal.Decimal {
	switch b {
	case BasisEquip:
		return w.equip
	case BasisPersonal:
		return w.personal
	case BasisPersonalEquip:
		return w.personalEquip
	case BasisClears:
		return decimal.NewFromInt(int64(w.clears))
	case BasisEntries:
		return decimal.NewFromInt(int64(w.entries))
	default:
		return w.drop
	}
}

// rule is a reward resolved against the catalog.
type rule struct {
	id    CategoryID
	basis Basis
	// tracked rules have their own weighted trial series, limited to window.
	tracked   bool
	window    date.Range
	modifiers []Modifier
}

// resolve computes the rule of a reward.
//
// A reward is tracked when a modifier affects it, or when it has a release
// or a removal date.
func (c *Catalog) resolve(r Reward) rule {
	cat, ok := c.byID[r.ID]
	if !ok {
		cat = &Category{ID: r.ID}
	}
	ru := rule{id: r.ID, basis: WeightBasis(cat, r)}

	for _, m := range c.modifiers {
		for _, id := range m.Categories {
			if id == r.ID {
				ru.modifiers = append(ru.modifiers, m)
				ru.tracked = true
				break
			}
		}
	}

	release := r.ReleaseDate
	if release == "" {
		release = cat.ReleaseDate
	}
	if release != "" {
		ru.tracked = true
		ru.window.From = c.releaseDates[release]
	}
	if r.Removed != "" {
		ru.tracked = true
		ru.window.To = c.releaseDates[r.Removed]
	}
	return ru
}

// multiplier returns the product of the multipliers of the modifiers active on day d.
func (r rule) multiplier(d date.Date) decimal.Decimal {
	m := decimal.NewFromInt(1)
	for _, mod := range r.modifiers {
		if mod.Affects(r.id, d) {
			m = m.Mul(mod.Multiplier)
		}
	}
	return m
}

// weight returns the contribution of an entry dated d, with weights w, to
// the rule's own trial series.
func (r rule) weight(w weights, d date.Date) decimal.Decimal {
	if !r.tracked || !r.window.Contains(d) {
		return decimal.Zero
	}
	return w.of(r.basis).Mul(r.multiplier(d))
}
