package style

import (
	"regexp"

	"github.com/charmbracelet/lipgloss"
)

// MarkupParser renders [tag]text[/tag] markup with lipgloss styles
type MarkupParser struct {
	styles map[string]lipgloss.Style
}

var tagPattern = regexp.MustCompile(`\[([a-z_]+)\](.*?)\[/([a-z_]+)\]`)

// NewMarkupParser creates a parser with the default tags
func NewMarkupParser() *MarkupParser {
	return &MarkupParser{
		styles: map[string]lipgloss.Style{
			"title":   TitleStyle,
			"success": SuccessStyle,
			"error":   ErrorStyle,
			"warning": WarningStyle,
			"path":    PathStyle,
			"muted":   MutedStyle,
			"bold":    lipgloss.NewStyle().Bold(true),
		},
	}
}

// Render replaces known tags with styled text; unknown tags are left alone.
// Tags do not nest.
func (p *MarkupParser) Render(text string) string {
	return tagPattern.ReplaceAllStringFunc(text, func(match string) string {
		sub := tagPattern.FindStringSubmatch(match)
		if sub[1] != sub[3] {
			return match
		}
		st, ok := p.styles[sub[1]]
		if !ok {
			return match
		}
		return st.Render(sub[2])
	})
}

// AddStyle registers or replaces a tag
func (p *MarkupParser) AddStyle(tag string, style lipgloss.Style) {
	p.styles[tag] = style
}

var defaultParser = NewMarkupParser()

// Render renders markup with the default parser
func Render(text string) string {
	return defaultParser.Render(text)
}
