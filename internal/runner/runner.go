package runner

import (
	"io"
	"os"
	"strings"

	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/levels"
	"github.com/projectdiscovery/urlcomplete"
	fileutil "github.com/projectdiscovery/utils/file"
)

type Options struct {
	Inputs         goflags.StringSlice // partial urls to complete
	TLDs           goflags.StringSlice // custom tld catalog
	Mode           string
	Endpoints      string // yaml file of endpoint descriptors to render
	Output         string
	Config         string
	CatalogConfig  string
	Expand         bool
	Dedupe         bool
	Verbose        bool
	Silent         bool
	Limit          int
	MaxSuggestions int
	MinInputLength int
}

func ParseFlags() *Options {
	opts := &Options{}
	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription(`Complete, normalize and finalize partially typed urls.`)

	flagSet.CreateGroup("input", "Input",
		flagSet.StringSliceVarP(&opts.Inputs, "list", "l", nil, "partial urls to complete (stdin, comma-separated, file)", goflags.FileCommaSeparatedStringSliceOptions),
		flagSet.StringVarP(&opts.Endpoints, "endpoints", "ep", "", "yaml file with api endpoint descriptors to render"),
	)

	flagSet.CreateGroup("mode", "Mode",
		flagSet.StringVarP(&opts.Mode, "mode", "m", string(urlcomplete.ModeSuggest), "processing mode (suggest, finalize, normalize)"),
		flagSet.BoolVarP(&opts.Expand, "expand", "ex", false, "render endpoint documentation expanded"),
	)

	flagSet.CreateGroup("output", "Output",
		flagSet.StringVarP(&opts.Output, "output", "o", "", "output file to write results"),
		flagSet.BoolVarP(&opts.Dedupe, "dedupe", "dd", false, "remove duplicate results across inputs (output order is not kept)"),
		flagSet.IntVar(&opts.Limit, "limit", 0, "limit the number of results to return (default 0)"),
		flagSet.BoolVarP(&opts.Verbose, "verbose", "v", false, "display verbose output"),
		flagSet.BoolVar(&opts.Silent, "silent", false, "display results only"),
		flagSet.CallbackVar(printVersion, "version", "display urlcomplete version"),
	)

	flagSet.CreateGroup("config", "Config",
		flagSet.StringVar(&opts.Config, "config", "", `urlcomplete cli config file (default '$HOME/.config/urlcomplete/config.yaml')`),
		flagSet.StringVarP(&opts.CatalogConfig, "catalog", "tc", "", `tld catalog config file (default '$HOME/.config/urlcomplete/catalog.yaml')`),
		flagSet.StringSliceVar(&opts.TLDs, "tld", nil, "custom tld suffixes to complete with (comma-separated, file)", goflags.FileCommaSeparatedStringSliceOptions),
		flagSet.IntVarP(&opts.MaxSuggestions, "max-suggestions", "ms", 0, "max suggestions per input (default 10)"),
		flagSet.IntVarP(&opts.MinInputLength, "min-length", "ml", 0, "min input length to generate suggestions (default 2)"),
	)

	if err := flagSet.Parse(); err != nil {
		gologger.Fatal().Msgf("Could not read flags: %s\n", err)
	}

	if opts.Config != "" {
		if err := flagSet.MergeConfigFile(opts.Config); err != nil {
			gologger.Error().Msgf("failed to read config file got %v", err)
		}
	}

	if opts.Silent {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelSilent)
	} else if opts.Verbose {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
	}
	showBanner()

	if opts.CatalogConfig != "" {
		cfg, err := urlcomplete.NewConfig(opts.CatalogConfig)
		if err != nil {
			gologger.Fatal().Msgf("failed to read %v file got: %v", opts.CatalogConfig, err)
		}
		applyConfig(cfg)
	} else {
		loadDefaultCatalog()
	}

	// read from stdin
	if fileutil.HasStdin() {
		bin, err := io.ReadAll(os.Stdin)
		if err != nil {
			gologger.Error().Msgf("failed to read input from stdin got %v", err)
		}
		opts.Inputs = append(opts.Inputs, strings.Fields(string(bin))...)
	}

	if len(opts.Inputs) == 0 && opts.Endpoints == "" {
		gologger.Fatal().Msgf("urlcomplete: no input found")
	}

	return opts
}

// SuggesterOptions returns library options for parsed flags
func (o *Options) SuggesterOptions() (*urlcomplete.Options, error) {
	mode, err := urlcomplete.ParseMode(o.Mode)
	if err != nil {
		return nil, err
	}
	return &urlcomplete.Options{
		Inputs:         o.Inputs,
		TLDs:           o.TLDs,
		MaxSuggestions: o.MaxSuggestions,
		MinInputLength: o.MinInputLength,
		Mode:           mode,
		Limit:          o.Limit,
	}, nil
}

func printVersion() {
	gologger.Info().Msgf("Current version: %s", version)
	os.Exit(0)
}
