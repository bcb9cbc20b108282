package example

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/beevik/etree"
)

// formatBody pretty-prints JSON and XML bodies. Anything else, including a
// body that fails to parse, is returned unchanged.
func formatBody(body, contentType string) string {
	if strings.TrimSpace(body) == "" {
		return body
	}

	ct := strings.ToLower(contentType)
	switch {
	case strings.Contains(ct, "json"):
		return indentJSON(body)
	case strings.Contains(ct, "xml"):
		return indentXML(body)
	}
	return body
}

func indentJSON(body string) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(body), "", "  "); err != nil {
		return body
	}
	return buf.String()
}

func indentXML(body string) string {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(body); err != nil {
		return body
	}
	doc.Indent(2)
	out, err := doc.WriteToString()
	if err != nil {
		return body
	}
	return strings.TrimRight(out, "\n")
}
