package interpolate

import (
	"regexp"
	"strings"
)

// Regex to find placeholders in the form {name}
var tokenRegex = regexp.MustCompile(`\{([^{}]+)\}`)

// Render substitutes every {token} placeholder in tmpl with tokens[token].
// Unknown tokens keep their original placeholder.
func Render(tmpl string, tokens map[string]string) string {
	if len(tokens) == 0 || !strings.Contains(tmpl, "{") {
		return tmpl
	}

	return tokenRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		name := match[1 : len(match)-1]
		if val, ok := tokens[name]; ok {
			return val
		}
		return match
	})
}

// Tokens returns the distinct token names referenced by tmpl in order of first appearance.
func Tokens(tmpl string) []string {
	matches := tokenRegex.FindAllStringSubmatch(tmpl, -1)
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[string]bool, len(matches))
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		if !seen[m[1]] {
			seen[m[1]] = true
			names = append(names, m[1])
		}
	}
	return names
}
