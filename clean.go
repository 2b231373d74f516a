package urlcomplete

import "strings"

// cleanInput reduces input to its protocol and host part.
// It is only used to generate suggestions and never returned as is.
func cleanInput(input string) string {
	cleaned := strings.TrimSpace(input)

	// single trailing slash unless it belongs to `://`
	if strings.HasSuffix(cleaned, "/") && !strings.HasSuffix(cleaned, "://") {
		cleaned = cleaned[:len(cleaned)-1]
	}

	// drop path
	if strings.Contains(cleaned, "/") && !strings.HasSuffix(cleaned, "://") {
		if proto := protocolOf(cleaned); proto != "" {
			host, _, _ := strings.Cut(cleaned[len(proto):], "/")
			cleaned = proto + host
		} else {
			cleaned, _, _ = strings.Cut(cleaned, "/")
		}
	}

	cleaned, _, _ = strings.Cut(cleaned, "?")
	cleaned, _, _ = strings.Cut(cleaned, "#")
	return cleaned
}
