// Package tags implements the whitespace-token tag convention shared by the
// builder registry and the symbolic index. A tag is a list of tokens
// ("cable saddle seg2"); a pattern matches a tag when every pattern token
// occurs among the tag's tokens, so "cable" selects all cable classes while
// "cable saddle seg2" selects one adjacent pair.
package tags

import "strings"

// Tokens splits a tag into its whitespace-separated tokens.
func Tokens(tag string) []string {
	return strings.Fields(tag)
}

// Match reports whether every token of pattern occurs in tag. An empty
// pattern matches nothing; a tag never matches by substring, only by whole
// token ("rod" does not match "rodbase").
func Match(pattern, tag string) bool {
	want := Tokens(pattern)
	if len(want) == 0 {
		return false
	}
	have := make(map[string]struct{}, 4)
	for _, tok := range Tokens(tag) {
		have[tok] = struct{}{}
	}
	for _, tok := range want {
		if _, ok := have[tok]; !ok {
			return false
		}
	}
	return true
}
