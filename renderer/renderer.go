package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	drops "github.com/blushiemagic/Maplestory-Boss-Drops"
)

//go:embed templates/*.md
var embedded embed.FS

// templates holds the markdown templates, by file name.
var templates, _ = fs.Sub(embedded, "templates")

// funcs are the formatting functions available in templates.
var funcs = template.FuncMap{
	"trials": FormatTrials,
	"fixed":  FormatFixed,
	"rate":   FormatRate,
}

// RenderLedgerReport renders the statistics of one ledger.
func RenderLedgerReport(r *drops.LedgerReport) string {
	partials := map[string]string{
		"ledger_report_title": "ledger_report_title.md",
	}
	return renderTemplate("ledgerReport", "ledger_report.md", partials, r)
}

// RenderSummary renders the rate of every category across all ledgers.
func RenderSummary(s *drops.Summary) string {
	partials := map[string]string{
		"summary_section": "summary_section.md",
	}
	return renderTemplate("summary", "summary.md", partials, s)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Funcs(funcs).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := fs.ReadFile(templates, file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
