// Package card builds the read-only view of a stored account
// and the intents a user can trigger from it.
package card

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	urlutil "github.com/projectdiscovery/utils/url"
	"golang.org/x/net/publicsuffix"
)

// FaviconEndpoint is the icon service favicon urls are built against
const FaviconEndpoint = "https://icon.horse/icon/"

// Account is a single credential record
type Account struct {
	ID         string `json:"id" yaml:"id"`
	Platform   string `json:"platform" yaml:"platform"`
	Identifier string `json:"identifier" yaml:"identifier"`
	URL        string `json:"url" yaml:"url"`
	Strength   int    `json:"strength" yaml:"strength"`
}

// View is the display model of an account
type View struct {
	Account Account
	// Domain of account url without `www.`
	Domain string
	// FaviconURL points to the favicon of Domain
	FaviconURL string
	// Initials are shown when favicon fails to load
	Initials string
	// Platform and Identifier with query matches highlighted
	Platform   string
	Identifier string
	// Href is the external link of account
	Href     string
	Strength Strength

	handler IntentHandler
}

// NewView returns view of account, query matches are highlighted.
// handler receives intents emitted by the view and may be nil.
func NewView(account Account, query string, handler IntentHandler) *View {
	domain := Domain(account.URL)
	return &View{
		Account:    account,
		Domain:     domain,
		FaviconURL: FaviconEndpoint + domain,
		Initials:   Initials(account.Platform),
		Platform:   Highlight(account.Platform, query),
		Identifier: Highlight(account.Identifier, query),
		Href:       SanitizeURL(account.URL),
		Strength:   ClampStrength(account.Strength),
		handler:    handler,
	}
}

// DetailsPath returns the path of the account details page
func (v *View) DetailsPath() string {
	return "/accounts/" + v.Account.ID
}

// Domain extracts hostname of rawURL without a leading `www.`
// and falls back to naive splitting when rawURL cannot be parsed
func Domain(rawURL string) string {
	if rawURL == "" {
		return ""
	}
	URL, err := urlutil.Parse(SanitizeURL(rawURL))
	if err != nil || URL.Hostname() == "" {
		return fallbackDomain(rawURL)
	}
	return strings.TrimPrefix(URL.Hostname(), "www.")
}

func fallbackDomain(rawURL string) string {
	host, _, _ := strings.Cut(rawURL, "/")
	host, _, _ = strings.Cut(host, ":")
	return host
}

// SanitizeURL prefixes rawURL with `https://` unless it starts with `http`
func SanitizeURL(rawURL string) string {
	if !strings.HasPrefix(rawURL, "http") {
		return "https://" + rawURL
	}
	return rawURL
}

// Initials returns up to two uppercase initials of text
func Initials(text string) string {
	var initials []rune
	for _, word := range strings.Split(text, " ") {
		for _, r := range word {
			initials = append(initials, unicode.ToUpper(r))
			break
		}
		if len(initials) == 2 {
			break
		}
	}
	return string(initials)
}

// Highlight wraps every case-insensitive match of query in `<mark>` tags
func Highlight(text, query string) string {
	if query == "" {
		return text
	}
	re := regexp.MustCompile("(?i)" + regexp.QuoteMeta(query))
	return re.ReplaceAllString(text, "<mark>${0}</mark>")
}

// PlatformName derives a display name from the registrable domain of rawURL
// (ex: https://mail.google.com -> Google). Unknown is returned if it can't be derived.
func PlatformName(rawURL string) string {
	const unknown = "Unknown"
	if strings.TrimSpace(rawURL) == "" {
		return unknown
	}
	URL, err := urlutil.Parse(rawURL)
	if err != nil || URL.Hostname() == "" {
		return unknown
	}
	root, err := publicsuffix.EffectiveTLDPlusOne(URL.Hostname())
	if err != nil {
		return unknown
	}
	label, _, _ := strings.Cut(root, ".")
	return capitalize(label)
}

func capitalize(word string) string {
	if word == "" {
		return ""
	}
	runes := []rune(word)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// String returns a one line summary of view
func (v *View) String() string {
	return fmt.Sprintf("%v (%v) [%v] %v", v.Account.Platform, v.Account.Identifier, v.Strength.Label(), v.Href)
}
