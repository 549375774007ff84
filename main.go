package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime/pprof"

	"gemcli/internal"
	"gemcli/internal/fault"
	"gemcli/internal/utils"

	"github.com/baalimago/go_away_boilerplate/pkg/ancli"
	"github.com/baalimago/go_away_boilerplate/pkg/misc"
	"github.com/baalimago/go_away_boilerplate/pkg/shutdown"
)

const usage = `gemcli - chat with Google's Gemini API from your terminal

Prerequisites:
  - Set the GEMINI_API_KEY environment variable to your Google API key.
    You can get one from https://aistudio.google.com/apikey
  - (Optional) Set the NO_COLOR environment variable to disable ansi color output

Usage: gemcli [flags]

Flags:
  -m, -model string         Set the Gemini model to use. (default gemini-2.5-flash)
  -l, -list-models bool     List the available Gemini models and exit.
  -w, -width int            Set the wrap width for replies in columns, 0 to autodetect
                            from the terminal. (default 100)
  -t, -temperature float    Set the generation temperature. (default 0.7)
  -top-p float              Set the nucleus sampling mass. (default 0.95)
  -top-k float              Set the top-k sampling cutoff. (default 40)
  -max-tokens int           Set the maximum amount of output tokens per reply. (default 2048)
  -v, -version bool         Print version information and exit.

In the chat, type 'exit' or 'quit' (or press ctrl+c) to end the
conversation and 'clear' to start a new one.

Examples:
  - gemcli
  - gemcli -list-models
  - gemcli -m gemini-2.5-pro -w 80
  - gemcli -temperature 0.2
`

func main() {
	ancli.SetupSlog()
	if misc.Truthy(os.Getenv("DEBUG_CPU")) {
		f, err := os.Create("cpu_profile.prof")
		ok := true
		if err != nil {
			ancli.PrintErr(fmt.Sprintf("failed to create profiler file: %v", err))
			ok = false
		}
		if ok {
			defer f.Close()
			err = pprof.StartCPUProfile(f)
			if err != nil {
				ancli.PrintErr(fmt.Sprintf("failed to start profiler : %v", err))
			}
			defer pprof.StopCPUProfile()
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	querier, err := internal.Setup(ctx, usage)
	if err != nil {
		exitOnError("failed to setup", err)
	}
	go func() { shutdown.Monitor(cancel) }()
	err = querier.Query(ctx)
	if err != nil {
		exitOnError("failed to run", err)
	}
	cancel()
	if misc.Truthy(os.Getenv("DEBUG")) {
		ancli.PrintOK("things seems to have worked out. Bye bye! 🚀\n")
	}
}

func exitOnError(msg string, err error) {
	if errors.Is(err, utils.ErrUserInitiatedExit) {
		os.Exit(0)
	}
	var ce *fault.ClassifiedError
	if errors.As(err, &ce) {
		ancli.PrintErr(fmt.Sprintf("%v: %v\n", msg, ce.Message))
		fmt.Println(ce.Remediation)
	} else {
		ancli.PrintErr(fmt.Sprintf("%v: %v\n", msg, err))
	}
	os.Exit(1)
}
