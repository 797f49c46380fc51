package variant

import (
	"sort"
	"strings"
)

// Split breaks each value on whitespace and returns the atomic tokens in order.
func Split(values ...string) []string {
	var tokens []string
	for _, value := range values {
		tokens = append(tokens, strings.Fields(value)...)
	}
	return tokens
}

// Dedupe removes repeated tokens, keeping the last occurrence of each one.
// Survivors keep their relative order.
func Dedupe(tokens []string) []string {
	if len(tokens) < 2 {
		return tokens
	}

	last := make(map[string]int, len(tokens))
	for i, token := range tokens {
		last[token] = i
	}

	out := make([]string, 0, len(last))
	for i, token := range tokens {
		if last[token] == i {
			out = append(out, token)
		}
	}
	return out
}

// Join renders tokens as a single space separated class attribute.
func Join(tokens []string) string {
	return strings.Join(tokens, " ")
}

// Cond is a class fragment that only applies when OK is true.
type Cond struct {
	OK      bool
	Classes string
}

// When returns a fragment for Classes that is kept only if ok is true.
func When(ok bool, classes string) Cond {
	return Cond{OK: ok, Classes: classes}
}

// Classes joins class fragments into one attribute value. Accepted parts are
// string, []string, *string, Cond, map[string]bool, []any (flattened) and
// nil. Map keys whose value is true are added in sorted order. Any other part
// type contributes nothing. Exact duplicates collapse to their last position.
func Classes(parts ...any) string {
	return Join(Dedupe(appendParts(nil, parts)))
}

func appendParts(tokens []string, parts []any) []string {
	for _, part := range parts {
		switch p := part.(type) {
		case nil:
		case string:
			tokens = append(tokens, strings.Fields(p)...)
		case []string:
			tokens = append(tokens, Split(p...)...)
		case *string:
			if p != nil {
				tokens = append(tokens, strings.Fields(*p)...)
			}
		case Cond:
			if p.OK {
				tokens = append(tokens, strings.Fields(p.Classes)...)
			}
		case map[string]bool:
			keys := make([]string, 0, len(p))
			for classes, ok := range p {
				if ok {
					keys = append(keys, classes)
				}
			}
			sort.Strings(keys)
			tokens = append(tokens, Split(keys...)...)
		case []any:
			tokens = appendParts(tokens, p)
		}
	}
	return tokens
}
