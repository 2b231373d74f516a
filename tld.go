package urlcomplete

import (
	"strings"
	"unicode/utf8"
)

// tldSuggestions completes a missing or partially typed TLD of input.
// Input is expected to be trimmed but not cleaned, a `/` in the last label
// means the user is past the host and nothing is completed.
func tldSuggestions(input string, catalog *Catalog) []string {
	proto := protocolOf(input)
	host := strings.TrimPrefix(input, proto)

	labels := strings.Split(host, ".")
	last := labels[len(labels)-1]
	lastLen := utf8.RuneCountInString(last)

	var stem string
	var suffixes []string
	switch {
	case len(labels) == 1 || (lastLen < 2 && !strings.Contains(last, "/")):
		// no tld at all, ex: `exam` or `exam.c`
		stem = labels[0]
		suffixes = catalog.suffixes
	case lastLen < 4 && !strings.Contains(last, "/"):
		// partial tld, ex: `example.co`
		stem = strings.Join(labels[:len(labels)-1], ".")
		suffixes = catalog.WithPrefix("." + last)
	default:
		return nil
	}

	suggestions := make([]string, 0, len(suffixes))
	for _, tld := range suffixes {
		suggestions = append(suggestions, proto+stem+tld)
	}
	return suggestions
}
