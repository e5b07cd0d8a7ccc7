// Package renderer renders comparison results as markdown for the terminal.
package renderer

import (
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/adikshith/fundcompare"
)

//go:embed *.md
var templates embed.FS

// ComparisonMarkdown renders the comparison summary to a markdown string.
func ComparisonMarkdown(c *fundcompare.Comparison) string {
	return renderTemplate("comparison", "comparison.md", c)
}

// renderTemplate executes one embedded template over data. Render errors
// come back as the output string: reports are for humans, a broken template
// should be visible, not fatal.
func renderTemplate(name, file string, data any) string {
	content, err := templates.ReadFile(file)
	if err != nil {
		return fmt.Sprintf("error reading template %q: %v", file, err)
	}
	tmpl, err := template.New(name).Parse(string(content))
	if err != nil {
		return fmt.Sprintf("error parsing template %q: %v", file, err)
	}
	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", name, err)
	}
	return b.String()
}
