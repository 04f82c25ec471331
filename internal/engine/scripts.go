package engine

import (
	"strings"

	"golang.org/x/net/html"
)

// ScriptBodies returns the text of every inline <script> element in document
// order. External scripts (src=...) and JSON-LD blocks are included when they
// carry inline text; empty scripts are skipped.
func ScriptBodies(page string) []string {
	var bodies []string
	z := html.NewTokenizer(strings.NewReader(page))
	inScript := false
	for {
		switch z.Next() {
		case html.ErrorToken:
			return bodies
		case html.StartTagToken:
			name, _ := z.TagName()
			inScript = string(name) == "script"
		case html.EndTagToken:
			inScript = false
		case html.TextToken:
			if !inScript {
				continue
			}
			if text := string(z.Text()); strings.TrimSpace(text) != "" {
				bodies = append(bodies, text)
			}
		}
	}
}

// scriptText joins script bodies with newlines so anchor matches cannot
// straddle two scripts.
func scriptText(page string) string {
	return strings.Join(ScriptBodies(page), "\n;\n")
}
