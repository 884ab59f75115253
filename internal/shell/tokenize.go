package shell

import (
	"strings"
	"unicode"
)

// Tokenize splits a command line on whitespace. Double quotes group a
// span into one token and are stripped; an unclosed quote runs to the
// end of the line. An empty or all-space line yields no tokens.
func Tokenize(line string) []string {
	var (
		tokens []string
		cur    strings.Builder
		quoted bool
		open   bool // cur holds a token, possibly empty
	)

	for _, r := range line {
		switch {
		case r == '"':
			quoted = !quoted
			open = true
		case !quoted && unicode.IsSpace(r):
			if open {
				tokens = append(tokens, cur.String())
				cur.Reset()
				open = false
			}
		default:
			cur.WriteRune(r)
			open = true
		}
	}
	if open {
		tokens = append(tokens, cur.String())
	}

	return tokens
}
