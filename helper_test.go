package drops

import (
	"strings"
	"testing"

	"github.com/blushiemagic/Maplestory-Boss-Drops/date"
)

// testCatalogYAML is a small catalog exercising every weighting rule.
const testCatalogYAML = `
dropCap:
  milestone: cap
  before: 400
  after: 500
releaseDates:
  cap: "2023-11-16"
  boxc: "2024-02-01"
  gone: "2024-03-01"
categories:
  - id: boxA
    name: Box A
    perParticipant: true
  - id: boxB
    name: Box B
    perParticipant: true
    guaranteed: true
  - id: boxC
    name: Box C
    equip: true
    releaseDate: boxc
  - id: boxD
    name: Box D
    guaranteed: true
    skipTotal: true
modifiers:
  - name: event
    categories: [boxA]
    multiplier: 2
    start: "2024-01-01"
    end: "2024-02-01"
activities:
  - id: boss
    name: Boss
    difficulties:
      - id: normal
        rewards:
          - id: boxA
          - id: boxB
      - id: hard
        rewards:
          - id: boxA
            clarifier: shared
          - id: boxB
            excludeFromTotal: true
          - id: boxC
          - id: boxD
            removed: gone
`

func testCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := DecodeCatalog(strings.NewReader(testCatalogYAML))
	if err != nil {
		t.Fatalf("DecodeCatalog() error = %v", err)
	}
	return c
}

func testLedger(t *testing.T, activity, difficulty string) *Ledger {
	t.Helper()
	c := testCatalog(t)
	s, ok := c.Schema(activity, difficulty)
	if !ok {
		t.Fatalf("no schema for %s,%s", activity, difficulty)
	}
	return NewLedger(c, s)
}

// entry is a helper for tests to create an entry with counts given as
// category, count pairs.
func entry(day string, clearSize, drop, greed int, counts ...any) Entry {
	e := Entry{
		Date:      date.MustParse(day),
		ClearSize: clearSize,
		Drop:      drop,
		Greed:     greed,
		Counts:    make(map[CategoryID]int),
	}
	for i := 0; i+1 < len(counts); i += 2 {
		e.Counts[CategoryID(counts[i].(string))] = counts[i+1].(int)
	}
	return e
}
