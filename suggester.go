package urlcomplete

import (
	"context"
	"io"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/projectdiscovery/gologger"
	errorutil "github.com/projectdiscovery/utils/errors"
	sliceutil "github.com/projectdiscovery/utils/slice"
)

const (
	// DefaultMaxSuggestions caps the suggestion set
	DefaultMaxSuggestions = 10
	// DefaultMinInputLength is the shortest trimmed input suggestions are generated for
	DefaultMinInputLength = 2
)

// Mode selects what Execute produces for each input
type Mode string

const (
	ModeSuggest   Mode = "suggest"
	ModeFinalize  Mode = "finalize"
	ModeNormalize Mode = "normalize"
)

// ParseMode returns mode from its name, empty name is ModeSuggest
func ParseMode(name string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(name))) {
	case "", ModeSuggest:
		return ModeSuggest, nil
	case ModeFinalize:
		return ModeFinalize, nil
	case ModeNormalize:
		return ModeNormalize, nil
	}
	return "", errorutil.NewWithTag("urlcomplete", "invalid mode %v (must be 'suggest', 'finalize' or 'normalize')", name)
}

// Suggester Options
type Options struct {
	// Inputs processed by Execute
	Inputs []string
	// TLDs used for completion
	// if empty DefaultConfig.TLDs is used
	TLDs []string
	// MaxSuggestions per input (0 = DefaultConfig.MaxSuggestions)
	MaxSuggestions int
	// MinInputLength below which no suggestions are generated
	// (0 = DefaultConfig.MinInputLength)
	MinInputLength int
	// Mode used by Execute (default ModeSuggest)
	Mode Mode
	// Limits output lines of ExecuteWithWriter (0 = no limit)
	Limit int
}

// Result of a single input processed by Execute
type Result struct {
	Input  string
	Values []string
}

// Suggester generates URL suggestions from partial input
type Suggester struct {
	Options *Options
	catalog *Catalog
}

var defaultSuggester = &Suggester{
	Options: &Options{
		MaxSuggestions: DefaultMaxSuggestions,
		MinInputLength: DefaultMinInputLength,
		Mode:           ModeSuggest,
	},
	catalog: DefaultCatalog,
}

// New creates and returns new suggester instance from options
func New(opts *Options) (*Suggester, error) {
	if opts == nil {
		opts = &Options{}
	}
	if opts.MaxSuggestions < 0 {
		return nil, errorutil.NewWithTag("urlcomplete", "max suggestions cannot be negative")
	}
	if opts.MinInputLength < 0 {
		return nil, errorutil.NewWithTag("urlcomplete", "min input length cannot be negative")
	}
	if opts.MaxSuggestions == 0 {
		opts.MaxSuggestions = DefaultConfig.MaxSuggestions
	}
	if opts.MinInputLength == 0 {
		opts.MinInputLength = DefaultConfig.MinInputLength
	}
	mode, err := ParseMode(string(opts.Mode))
	if err != nil {
		return nil, err
	}
	opts.Mode = mode
	catalog := DefaultCatalog
	tlds := opts.TLDs
	if len(tlds) == 0 {
		tlds = DefaultConfig.TLDs
	}
	if !slices.Equal(tlds, defaultTLDs) {
		c, err := NewCatalog(tlds)
		if err != nil {
			return nil, err
		}
		catalog = c
	}
	return &Suggester{Options: opts, catalog: catalog}, nil
}

// Generate returns suggestions for input using the default catalog
func Generate(input string) []string {
	return defaultSuggester.Generate(input)
}

// Generate returns a deduplicated list of URL candidates for partial input.
// Protocol variants come first, then TLD completions and then the normalized
// variants. Inputs shorter than MinInputLength yield no suggestions.
func (s *Suggester) Generate(input string) []string {
	input = strings.TrimSpace(input)
	if utf8.RuneCountInString(input) < s.Options.MinInputLength {
		return nil
	}
	cleaned := cleanInput(input)

	var suggestions []string
	if !hasProtocol(cleaned) {
		suggestions = append(suggestions, HTTPS+cleaned, HTTP+cleaned)
	}

	// completed against raw input so a `/` typed after the host stops completion
	suggestions = append(suggestions, tldSuggestions(input, s.catalog)...)

	if normalized := NormalizeString(cleaned); normalized != cleaned {
		suggestions = append(suggestions, normalized)
		if !hasProtocol(normalized) {
			suggestions = append(suggestions, HTTPS+normalized, HTTP+normalized)
		}
	}

	suggestions = sliceutil.Dedupe(suggestions)
	if len(suggestions) > s.Options.MaxSuggestions {
		suggestions = suggestions[:s.Options.MaxSuggestions]
	}
	return suggestions
}

// Catalog returns tld catalog used by suggester
func (s *Suggester) Catalog() *Catalog {
	return s.catalog
}

// Execute processes all inputs according to mode
// and writes them to a result channel
func (s *Suggester) Execute(ctx context.Context) <-chan Result {
	results := make(chan Result, len(s.Options.Inputs))
	go func() {
		defer close(results)
		for _, input := range s.Options.Inputs {
			if ctx.Err() != nil {
				return
			}
			res := Result{Input: input, Values: s.process(input)}
			if len(res.Values) == 0 {
				gologger.Verbose().Msgf("no values generated for input `%v`", input)
			}
			select {
			case <-ctx.Done():
				return
			case results <- res:
			}
		}
	}()
	return results
}

// ExecuteWithWriter executes Suggester and writes results directly to type that implements io.Writer interface
func (s *Suggester) ExecuteWithWriter(Writer io.Writer) error {
	if Writer == nil {
		return errorutil.NewWithTag("urlcomplete", "writer destination cannot be nil")
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	counter := 0
	for res := range s.Execute(ctx) {
		for _, value := range res.Values {
			if s.Options.Limit > 0 && counter == s.Options.Limit {
				return nil
			}
			if _, err := Writer.Write([]byte(value + "\n")); err != nil {
				return err
			}
			counter++
		}
	}
	return nil
}

func (s *Suggester) process(input string) []string {
	switch s.Options.Mode {
	case ModeFinalize:
		if finalized, _ := Finalize(input); strings.TrimSpace(finalized) != "" {
			return []string{finalized}
		}
	case ModeNormalize:
		if trimmed := strings.TrimSpace(input); trimmed != "" {
			return []string{NormalizeString(trimmed)}
		}
	default:
		return s.Generate(input)
	}
	return nil
}
