package urlcomplete

import (
	"regexp"
	"strings"
)

const (
	HTTP  = "http://"
	HTTPS = "https://"
)

var (
	// `:80` or `:443` followed by path, query, fragment or end of input
	defaultHTTPPort  = regexp.MustCompile(`:80([/?#]|$)`)
	defaultHTTPSPort = regexp.MustCompile(`:443([/?#]|$)`)
	leadingWWW       = regexp.MustCompile(`^(https?://)?www\.`)
)

// NormalizeString removes default ports and a leading `www.` label from value.
// Rules are applied until none matches so that the result is stable
// when normalized again.
func NormalizeString(value string) string {
	for {
		normalized := stripDefaultPorts(value)
		normalized = leadingWWW.ReplaceAllString(normalized, "$1")
		if normalized == value {
			return normalized
		}
		value = normalized
	}
}

// Finalize returns the value to commit once editing is done.
// Values without http(s) protocol get `https://` and default ports are removed.
// Unlike NormalizeString the `www.` label is kept.
// changed reports whether the result differs from the trimmed input.
func Finalize(value string) (finalized string, changed bool) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return value, false
	}
	finalized = trimmed
	if !hasProtocol(finalized) {
		finalized = HTTPS + finalized
	}
	finalized = stripDefaultPorts(finalized)
	return finalized, finalized != trimmed
}

// stripDefaultPorts removes `:80` and `:443` default ports until none is left
func stripDefaultPorts(value string) string {
	for {
		stripped := replaceFirst(defaultHTTPPort, value, "$1")
		stripped = replaceFirst(defaultHTTPSPort, stripped, "$1")
		if stripped == value {
			return stripped
		}
		value = stripped
	}
}

// replaceFirst replaces only the leftmost match of re in s
func replaceFirst(re *regexp.Regexp, s, template string) string {
	loc := re.FindStringSubmatchIndex(s)
	if loc == nil {
		return s
	}
	dst := re.ExpandString(nil, template, s, loc)
	return s[:loc[0]] + string(dst) + s[loc[1]:]
}

// protocolOf returns http(s) protocol prefix of value if any
func protocolOf(value string) string {
	switch {
	case strings.HasPrefix(value, HTTP):
		return HTTP
	case strings.HasPrefix(value, HTTPS):
		return HTTPS
	}
	return ""
}

func hasProtocol(value string) bool {
	return protocolOf(value) != ""
}
