package style

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Summary describes the outcome of a documentation run
type Summary struct {
	APIName       string
	Recordings    int
	Examples      int
	Documented    int
	Public        int
	DocsDir       string
	PublicDocsDir string
	DryRun        bool
	Resources     []ResourceLine
}

// ResourceLine is one resource row of a summary
type ResourceLine struct {
	Name     string
	Examples []ExampleLine
}

// ExampleLine is one example row of a summary
type ExampleLine struct {
	Method      string
	Route       string
	Description string
	Public      bool
}

// RenderSummary renders s as a boxed report
func RenderSummary(s Summary) string {
	var b strings.Builder

	title := s.APIName
	if s.DryRun {
		title += " (dry run)"
	}
	b.WriteString(TitleStyle.Render(title) + "\n\n")

	for _, res := range s.Resources {
		b.WriteString(Bold(res.Name) + "\n")
		for _, ex := range res.Examples {
			line := fmt.Sprintf("%s %s %s", Method(ex.Method), ex.Route, MutedStyle.Render(ex.Description))
			if ex.Public {
				line += " " + SuccessStyle.Render("public")
			}
			b.WriteString(Indent(line, 1) + "\n")
		}
	}
	if len(s.Resources) > 0 {
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "%s %d recordings, %d examples, %d documented, %d public\n",
		SuccessIndicator, s.Recordings, s.Examples, s.Documented, s.Public)
	if !s.DryRun {
		b.WriteString(lipgloss.JoinVertical(lipgloss.Left,
			"private "+PathStyle.Render(s.DocsDir),
			"public  "+PathStyle.Render(s.PublicDocsDir),
		))
	}

	return BoxStyle.Render(strings.TrimRight(b.String(), "\n"))
}

// RenderError renders an error line for the CLI
func RenderError(err error) string {
	return fmt.Sprintf("%s %s", ErrorIndicator, ErrorStyle.Render(err.Error()))
}
