package drops

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestExportJSONL(t *testing.T) {
	b := NewBook(testCatalog(t))
	normal, _ := b.Ledger("boss", "normal")
	normal.AssignUnknown([]string{"mule"})
	e := entry("2024-01-10", 3, 10, 5, "boxA", 1, "boxB", 2)
	e.Notes = "lucky"
	e.Unknown = map[string]string{"mule": "yes"}
	normal.Insert(e)
	hard, _ := b.Ledger("boss", "hard")
	hard.Insert(entry("2024-01-11", 1, 0, 0, "boxA", 0, "boxB", 1, "boxC", 0, "boxD", 0))

	var sb strings.Builder
	if err := ExportJSONL(&sb, b); err != nil {
		t.Fatalf("ExportJSONL() error = %v", err)
	}

	want := `{"activity":"boss","difficulty":"normal","date":"2024-01-10","clear_size":3,"counts":{"boxA":1,"boxB":2},"drop":10,"greed":5,"personal_drop":0,"personal_greed":0,"notes":"lucky","unknown":{"mule":"yes"}}
{"activity":"boss","difficulty":"hard","date":"2024-01-11","clear_size":1,"counts":{"boxA":0,"boxB":1,"boxC":0,"boxD":0},"drop":0,"greed":0,"personal_drop":0,"personal_greed":0}
`
	if diff := cmp.Diff(want, sb.String()); diff != "" {
		t.Errorf("ExportJSONL() mismatch (-want +got):\n%s", diff)
	}
}
