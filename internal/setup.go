package internal

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"gemcli/internal/catalog"
	"gemcli/internal/chat"
	"gemcli/internal/gemini"
	"gemcli/internal/models"
	"gemcli/internal/session"
	"gemcli/internal/utils"
)

const missingKeyGuidance = `To use gemcli, you need to set your Google API key:
  export GEMINI_API_KEY='your-api-key'

You can get an API key from https://aistudio.google.com/apikey`

// Setup parses flags and wires the querier for this process run: the
// model listing when -list-models is set, the interactive chat loop
// otherwise.
func Setup(ctx context.Context, usage string) (models.Querier, error) {
	flagSet, err := parseFlags(defaultFlags, os.Args[1:], usage)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, utils.ErrUserInitiatedExit
		}
		return nil, err
	}
	if flagSet.Version {
		return printVersion()
	}

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		fmt.Println(missingKeyGuidance)
		return nil, errors.New("GEMINI_API_KEY environment variable not set")
	}

	client, err := gemini.New(ctx, gemini.Config{
		APIKey:          apiKey,
		Model:           flagSet.Model,
		Temperature:     flagSet.Temperature,
		TopP:            flagSet.TopP,
		TopK:            flagSet.TopK,
		MaxOutputTokens: int32(flagSet.MaxTokens),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to setup gemini client: %w", err)
	}
	cat := catalog.New(client)

	if flagSet.ListModels {
		return &modelLister{cat: cat, out: os.Stdout}, nil
	}

	width := flagSet.Width
	if width <= 0 {
		width = utils.TermWidth()
	}
	sess, err := session.New(ctx, session.Config{Model: flagSet.Model, Width: width}, client, cat)
	if err != nil {
		return nil, fmt.Errorf("failed to start session: %w", err)
	}
	return chat.New(sess, flagSet.Model, os.Stdin, os.Stdout), nil
}
