package namematch

import "strings"

// Variants expands a normalized name into plausible alternate spellings to
// improve match recall. The input itself is always first. Output order is
// insertion order with later duplicates dropped.
func Variants(normalized string) []string {
	var out []string
	seen := make(map[string]struct{})
	add := func(v string) {
		if v == "" {
			return
		}
		if _, dup := seen[v]; dup {
			return
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}

	add(normalized)

	parts := strings.Fields(normalized)
	if len(parts) < 2 {
		return out
	}

	first := parts[0]
	last := parts[len(parts)-1]

	// Drop middle names; surname alone only when it is distinctive enough.
	add(first + " " + last)
	if len([]rune(last)) > 4 {
		add(last)
	}

	rest := strings.Join(parts[1:], " ")
	for _, alias := range aliasesFor(first) {
		add(alias + " " + rest)
		add(alias + " " + last)
	}
	return out
}
