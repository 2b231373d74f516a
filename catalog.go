package urlcomplete

import (
	"strings"

	"github.com/projectdiscovery/gologger"
	errorutil "github.com/projectdiscovery/utils/errors"
	sliceutil "github.com/projectdiscovery/utils/slice"
	"golang.org/x/net/publicsuffix"
)

// defaultTLDs is the order in which TLD completions are offered
var defaultTLDs = []string{
	".com", ".net", ".org", ".edu", ".gov", ".mil", ".int",
	".co", ".io", ".dev", ".app", ".tech", ".info", ".biz",
	".me", ".tv", ".cc", ".ly", ".ai", ".cloud", ".online",
}

// DefaultCatalog is the process-wide TLD catalog used when no custom
// suffixes are configured
var DefaultCatalog = mustCatalog(defaultTLDs)

// DefaultTLDs returns a copy of the default TLD suffixes
func DefaultTLDs() []string {
	return append([]string(nil), defaultTLDs...)
}

// Catalog is an ordered, read-only set of TLD suffixes (ex: `.com`)
type Catalog struct {
	suffixes []string
}

// NewCatalog returns a catalog built from given suffixes.
// Entries are trimmed, prefixed with `.` when missing and deduped
// while keeping their order. Case is kept as is.
func NewCatalog(suffixes []string) (*Catalog, error) {
	cleaned := make([]string, 0, len(suffixes))
	for _, v := range suffixes {
		v = strings.TrimSpace(v)
		if v == "" || v == "." {
			continue
		}
		if !strings.HasPrefix(v, ".") {
			v = "." + v
		}
		cleaned = append(cleaned, v)
	}
	cleaned = sliceutil.Dedupe(cleaned)
	if len(cleaned) == 0 {
		return nil, errorutil.NewWithTag("urlcomplete", "tld catalog is empty")
	}
	if dropped := len(suffixes) - len(cleaned); dropped > 0 {
		gologger.Verbose().Msgf("%v empty or duplicate tld entries dropped from catalog", dropped)
	}
	for _, v := range cleaned {
		if !isPublicSuffix(v) {
			gologger.Warning().Msgf("tld %v is not a known public suffix", v)
		}
	}
	return &Catalog{suffixes: cleaned}, nil
}

func mustCatalog(suffixes []string) *Catalog {
	c, err := NewCatalog(suffixes)
	if err != nil {
		panic(err)
	}
	return c
}

// Suffixes returns a copy of all suffixes in catalog order
func (c *Catalog) Suffixes() []string {
	return append([]string(nil), c.suffixes...)
}

// Len returns number of suffixes in catalog
func (c *Catalog) Len() int {
	return len(c.suffixes)
}

// WithPrefix returns all suffixes starting with given prefix in catalog order
func (c *Catalog) WithPrefix(prefix string) []string {
	var matched []string
	for _, v := range c.suffixes {
		if strings.HasPrefix(v, prefix) {
			matched = append(matched, v)
		}
	}
	return matched
}

// isPublicSuffix checks if suffix (ex: `.io`) is an icann managed public suffix
func isPublicSuffix(suffix string) bool {
	label := strings.ToLower(strings.TrimPrefix(suffix, "."))
	ps, icann := publicsuffix.PublicSuffix("example." + label)
	return icann && ps == label
}
