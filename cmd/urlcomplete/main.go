package main

import (
	"io"
	"os"

	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/urlcomplete"
	"github.com/projectdiscovery/urlcomplete/endpoint"
	"github.com/projectdiscovery/urlcomplete/internal/runner"
)

func main() {
	cliOpts := runner.ParseFlags()

	output := getOutputWriter(cliOpts.Output)
	defer closeOutput(output, cliOpts.Output)

	if cliOpts.Endpoints != "" {
		renderEndpoints(cliOpts.Endpoints, !cliOpts.Expand, output)
	}
	if len(cliOpts.Inputs) == 0 {
		return
	}

	opts, err := cliOpts.SuggesterOptions()
	if err != nil {
		gologger.Fatal().Msgf("%v", err)
	}
	s, err := urlcomplete.New(opts)
	if err != nil {
		gologger.Fatal().Msgf("failed to create suggester got %v", err)
	}

	if cliOpts.Dedupe {
		dw := urlcomplete.NewDedupingWriter(output)
		if err := s.ExecuteWithWriter(dw); err != nil {
			gologger.Error().Msgf("failed to write output got %v", err)
		}
		if err := dw.Close(); err != nil {
			gologger.Error().Msgf("failed to write output got %v", err)
		}
		gologger.Info().Msgf("Generated %d unique results", dw.Count())
		return
	}

	if err := s.ExecuteWithWriter(output); err != nil {
		gologger.Error().Msgf("failed to write output got %v", err)
	}
}

// renderEndpoints writes documentation of all endpoints in file
func renderEndpoints(filePath string, collapsed bool, output io.Writer) {
	descriptors, err := endpoint.LoadDescriptors(filePath)
	if err != nil {
		gologger.Fatal().Msgf("failed to load endpoints got %v", err)
	}
	for _, d := range descriptors {
		if _, err := io.WriteString(output, endpoint.Render(d, collapsed)); err != nil {
			gologger.Error().Msgf("failed to write output got %v", err)
			return
		}
	}
	gologger.Info().Msgf("Rendered %d endpoints", len(descriptors))
}

// getOutputWriter returns the appropriate output writer
func getOutputWriter(outputPath string) io.Writer {
	if outputPath != "" {
		fs, err := os.OpenFile(outputPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
		if err != nil {
			gologger.Fatal().Msgf("failed to open output file %v got %v", outputPath, err)
		}
		return fs
	}
	return os.Stdout
}

// closeOutput closes the output writer if it's a file
func closeOutput(output io.Writer, outputPath string) {
	if outputPath != "" {
		if closer, ok := output.(io.Closer); ok {
			closer.Close()
		}
	}
}
