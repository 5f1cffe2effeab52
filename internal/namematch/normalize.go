package namematch

import "strings"

// affixTokens are dropped from names on whole-token boundaries.
// Ordered longest-first so "iii" is never eaten by "ii".
// Token-level filtering keeps names like "Smithee" intact.
var affixTokens = []string{"iii", "the", "jr", "ii"}

// Normalize canonicalizes a fighter name for comparison: lowercase,
// hyphens and periods become spaces, generation suffixes and articles are
// dropped, whitespace runs collapse to single spaces.
// It never fails; empty or unusable input yields "". Idempotent.
func Normalize(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return ""
	}
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, ".", " ")

	fields := strings.Fields(s)
	kept := fields[:0]
	for _, tok := range fields {
		if isAffixToken(tok) {
			continue
		}
		kept = append(kept, tok)
	}
	return strings.Join(kept, " ")
}

func isAffixToken(tok string) bool {
	for _, a := range affixTokens {
		if tok == a {
			return true
		}
	}
	return false
}
