package namematch

// nicknamePairs is the static table of interchangeable first-name spellings.
// Lookups consult both directions, so "jonathan" yields "jon" and vice versa.
// A slice (not a map) keeps alias iteration order fixed, which the
// tie-break contract in BestMatch depends on.
var nicknamePairs = []struct {
	canonical string
	alias     string
}{
	{"daniel", "dan"},
	{"anthony", "tony"},
	{"william", "will"},
	{"william", "billy"},
	{"robert", "rob"},
	{"robert", "bobby"},
	{"james", "jim"},
	{"james", "jimmy"},
	{"joseph", "joe"},
	{"michael", "mike"},
	{"christopher", "chris"},
	{"jonathan", "jon"},
}

// aliasesFor returns alternate spellings of a first name, in table order.
func aliasesFor(first string) []string {
	var out []string
	for _, p := range nicknamePairs {
		switch first {
		case p.canonical:
			out = append(out, p.alias)
		case p.alias:
			out = append(out, p.canonical)
		}
	}
	return out
}
