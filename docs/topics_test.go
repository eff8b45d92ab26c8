package docs

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"testing"

	drops "github.com/blushiemagic/Maplestory-Boss-Drops"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

func TestTopics(t *testing.T) {
	// Every topic listed in readme.md must load, and every .md file must be
	// listed in readme.md.
	file, err := os.Open("readme.md")
	if err != nil {
		t.Fatalf("failed to open readme.md: %v", err)
	}
	defer file.Close()

	var topicsInReadme []string
	scanner := bufio.NewScanner(file)
	topicRegex := regexp.MustCompile(`^\*\s+([^:]+):.*$`)
	for scanner.Scan() {
		if matches := topicRegex.FindStringSubmatch(scanner.Text()); len(matches) > 1 {
			topicsInReadme = append(topicsInReadme, strings.TrimSpace(matches[1]))
		}
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("error scanning readme.md: %v", err)
	}

	for _, topic := range topicsInReadme {
		t.Run("load_"+topic, func(t *testing.T) {
			if _, err := GetTopic(topic); err != nil {
				t.Errorf("failed to get topic %q: %v", topic, err)
			}
		})
	}

	all, err := GetAllTopics()
	if err != nil {
		t.Fatal(err)
	}
	for _, topic := range all {
		if !slices.Contains(topicsInReadme, topic) {
			t.Errorf("topic %q is not listed in docs/readme.md", topic)
		}
	}

	if _, err := GetTopic("nothing"); err == nil {
		t.Error("GetTopic(nothing): want error")
	}
}

// TestExamples checks that the ledger and catalog examples of the
// documentation are read without errors.
func TestExamples(t *testing.T) {
	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatal(err)
	}
	for _, file := range files {
		for _, block := range parseMarkdown(t, file) {
			switch block.Type {
			case "mcsv":
				b, err := drops.DecodeBook(drops.DefaultCatalog(), strings.NewReader(block.Content))
				if err != nil {
					t.Fatalf("%s:%d: %v", file, block.Line, err)
				}
				if n := len(b.InvalidTables()); n > 0 {
					t.Errorf("%s:%d: %d unreadable sections", file, block.Line, n)
				}
				for k, l := range b.Ledgers() {
					if rows := l.InvalidRows(); len(rows) > 0 {
						t.Errorf("%s:%d: %s has unreadable rows %q", file, block.Line, k, rows)
					}
				}
				if b.Len() == 0 {
					t.Errorf("%s:%d: no entries", file, block.Line)
				}
			case "yaml":
				if _, err := drops.DecodeCatalog(strings.NewReader(block.Content)); err != nil {
					t.Errorf("%s:%d: invalid catalog: %v", file, block.Line, err)
				}
			}
		}
	}
}

// Block represents a fenced code block in the markdown file.
type Block struct {
	Type    string
	Content string
	Line    int
}

// parseMarkdown parses a markdown file and returns its fenced code blocks.
func parseMarkdown(t *testing.T, file string) []*Block {
	t.Helper()

	content, err := os.ReadFile(file)
	if err != nil {
		t.Fatalf("failed to read %s: %v", file, err)
	}

	root := goldmark.DefaultParser().Parse(text.NewReader(content))

	var blocks []*Block
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		fcb, ok := n.(*ast.FencedCodeBlock)
		if !ok || fcb.Info == nil {
			return ast.WalkContinue, nil
		}
		var blockContent strings.Builder
		for i := 0; i < fcb.Lines().Len(); i++ {
			line := fcb.Lines().At(i)
			blockContent.Write(line.Value(content))
		}
		blocks = append(blocks, &Block{
			Type: string(fcb.Info.Segment.Value(content)),
			// the last line terminator is not part of the example
			Content: strings.TrimSuffix(blockContent.String(), "\n"),
			Line:    strings.Count(string(content[:fcb.Info.Segment.Start]), "\n") + 1,
		})
		return ast.WalkContinue, nil
	})
	return blocks
}
