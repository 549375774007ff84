package internal

import (
	"flag"
	"fmt"

	"gemcli/internal/gemini"
	"gemcli/internal/utils"
)

type Configurations struct {
	Model      string
	ListModels bool
	// Width is the wrap width for replies. 0 means autodetect from
	// the terminal.
	Width       int
	Temperature float64
	TopP        float64
	TopK        float64
	MaxTokens   int
	Version     bool
}

var defaultFlags = Configurations{
	Model:       gemini.Default.Model,
	ListModels:  false,
	Width:       100,
	Temperature: gemini.Default.Temperature,
	TopP:        gemini.Default.TopP,
	TopK:        gemini.Default.TopK,
	MaxTokens:   int(gemini.Default.MaxOutputTokens),
}

// parseFlags parses CLI flags into a Configurations. Short/long pairs
// are mutually exclusive; setting both to non-default values is an
// error.
func parseFlags(defaults Configurations, args []string, usage string) (Configurations, error) {
	fs := flag.NewFlagSet("gemcli", flag.ContinueOnError)
	fs.Usage = func() { fmt.Print(usage) }

	mShort := fs.String("m", defaults.Model, "Set the Gemini model to use. Mutually exclusive with -model.")
	mLong := fs.String("model", defaults.Model, "Set the Gemini model to use. Mutually exclusive with -m.")

	lShort := fs.Bool("l", defaults.ListModels, "List the available Gemini models and exit.")
	lLong := fs.Bool("list-models", defaults.ListModels, "List the available Gemini models and exit.")

	wShort := fs.Int("w", defaults.Width, "Set the wrap width for replies in columns. 0 autodetects from the terminal.")
	wLong := fs.Int("width", defaults.Width, "Set the wrap width for replies in columns. 0 autodetects from the terminal.")

	tShort := fs.Float64("t", defaults.Temperature, "Set the generation temperature. Mutually exclusive with -temperature.")
	tLong := fs.Float64("temperature", defaults.Temperature, "Set the generation temperature. Mutually exclusive with -t.")

	topP := fs.Float64("top-p", defaults.TopP, "Set the nucleus sampling mass.")
	topK := fs.Float64("top-k", defaults.TopK, "Set the top-k sampling cutoff.")
	maxTokens := fs.Int("max-tokens", defaults.MaxTokens, "Set the maximum amount of output tokens per reply.")

	vShort := fs.Bool("v", false, "Print version information and exit.")
	vLong := fs.Bool("version", false, "Print version information and exit.")

	err := fs.Parse(args)
	if err != nil {
		return Configurations{}, fmt.Errorf("failed to parse args: %w", err)
	}

	model, err := utils.ReturnNonDefault(*mShort, *mLong, defaults.Model)
	if err != nil {
		return Configurations{}, fmt.Errorf("flags 'm' and 'model': %w", err)
	}
	width, err := utils.ReturnNonDefault(*wShort, *wLong, defaults.Width)
	if err != nil {
		return Configurations{}, fmt.Errorf("flags 'w' and 'width': %w", err)
	}
	temperature, err := utils.ReturnNonDefault(*tShort, *tLong, defaults.Temperature)
	if err != nil {
		return Configurations{}, fmt.Errorf("flags 't' and 'temperature': %w", err)
	}

	return Configurations{
		Model:       model,
		ListModels:  *lShort || *lLong,
		Width:       width,
		Temperature: temperature,
		TopP:        *topP,
		TopK:        *topK,
		MaxTokens:   *maxTokens,
		Version:     *vShort || *vLong,
	}, nil
}
