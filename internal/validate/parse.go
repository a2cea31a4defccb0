package validate

import "strings"

// The text-generation service is an unreliable input source: these parsers
// make no well-formedness assumptions about its responses.

// ParseBracketedList extracts the first bracketed, comma-separated token
// list from untrusted response text. Tokens are trimmed and upper-cased;
// empty tokens are dropped. Returns false if no bracketed list is present.
func ParseBracketedList(s string) ([]string, bool) {
	open := strings.Index(s, "[")
	if open < 0 {
		return nil, false
	}
	close := strings.Index(s[open:], "]")
	if close < 0 {
		return nil, false
	}

	inner := s[open+1 : open+close]
	parts := strings.Split(inner, ",")
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		tok := strings.ToUpper(strings.TrimSpace(p))
		if tok == "" {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens, true
}

// ParseStrictBool interprets a trimmed, case-insensitive "TRUE"/"FALSE"
// judgment. Anything else reports ok=false.
func ParseStrictBool(s string) (value, ok bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "TRUE":
		return true, true
	case "FALSE":
		return false, true
	default:
		return false, false
	}
}

// WordCount counts whitespace-separated words.
func WordCount(s string) int {
	return len(strings.Fields(s))
}
