package style

import (
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestMarkup(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		contains []string
		absent   []string
	}{
		{
			name:     "known tag",
			input:    "Wrote [path]/out/index.html[/path]",
			contains: []string{"Wrote", "/out/index.html"},
			absent:   []string{"[path]", "[/path]"},
		},
		{
			name:     "several tags",
			input:    "[success]ok[/success] and [error]bad[/error]",
			contains: []string{"ok", "bad"},
			absent:   []string{"[success]", "[error]"},
		},
		{
			name:     "unknown tag stays",
			input:    "[shout]hey[/shout]",
			contains: []string{"[shout]hey[/shout]"},
		},
		{
			name:     "mismatched tags stay",
			input:    "[bold]x[/muted]",
			contains: []string{"[bold]x[/muted]"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Render(tt.input)
			for _, s := range tt.contains {
				assert.Contains(t, out, s)
			}
			for _, s := range tt.absent {
				assert.NotContains(t, out, s)
			}
		})
	}
}

func TestMarkup_AddStyle(t *testing.T) {
	p := NewMarkupParser()
	p.AddStyle("shout", lipgloss.NewStyle().Bold(true))

	out := p.Render("[shout]hey[/shout]")
	assert.Contains(t, out, "hey")
	assert.NotContains(t, out, "[shout]")
}

func TestMethod(t *testing.T) {
	assert.Contains(t, Method("post"), "POST")
	assert.Contains(t, Method("OPTIONS"), "OPTIONS")
	assert.GreaterOrEqual(t, lipgloss.Width(Method("GET")), 6)

	for _, method := range []string{"GET", "DELETE", "OPTIONS", "PROPFIND"} {
		out := Method(method)
		assert.NotContains(t, out, "\n", "%s must stay on one line", method)
		assert.Contains(t, out, method)
	}
}

func TestIndent(t *testing.T) {
	assert.Equal(t, "Hello", Indent("Hello", 0))
	assert.True(t, strings.HasPrefix(Indent("Hello", 2), "    Hello"))
}

func TestRenderSummary(t *testing.T) {
	s := Summary{
		APIName:       "Widgets API",
		Recordings:    2,
		Examples:      3,
		Documented:    2,
		Public:        1,
		DocsDir:       "/out",
		PublicDocsDir: "/pub",
		Resources: []ResourceLine{{
			Name: "Widgets",
			Examples: []ExampleLine{
				{Method: "POST", Route: "/widgets", Description: "Create Widget", Public: true},
				{Method: "DELETE", Route: "/widgets/1", Description: "Delete Widget"},
			},
		}},
	}

	out := RenderSummary(s)
	for _, want := range []string{"Widgets API", "Widgets", "/widgets", "Create Widget", "public", "2 recordings, 3 examples, 2 documented, 1 public", "/out", "/pub"} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "dry run")

	s.DryRun = true
	out = RenderSummary(s)
	assert.Contains(t, out, "(dry run)")
	assert.NotContains(t, out, "/pub")
}

func TestRenderError(t *testing.T) {
	out := RenderError(errors.New("template missing"))
	assert.Contains(t, out, "template missing")
}
