// Package chat runs the interactive read-eval loop: read a line,
// interpret control commands or forward to the session, print, repeat.
package chat

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/baalimago/go_away_boilerplate/pkg/ancli"

	"gemcli/internal/fault"
	"gemcli/internal/models"
)

const banner = `
=== Chat with Gemini (%v) ===
Type 'exit', 'quit' or press ctrl+c to end the conversation.
Type 'clear' to start a new conversation.

`

// Loop drives one conversation session over line-buffered terminal I/O.
// It holds no conversation state itself; that lives in the session.
type Loop struct {
	session models.ChatSession
	model   string
	in      io.Reader
	out     io.Writer
}

func New(session models.ChatSession, model string, in io.Reader, out io.Writer) *Loop {
	return &Loop{
		session: session,
		model:   model,
		in:      in,
		out:     out,
	}
}

// Query blocks until the user exits, the input closes or ctx is
// canceled. Provider failures never escape: they're printed with their
// remediation and the loop keeps reading. Only terminal I/O failures
// come back as errors.
func (l *Loop) Query(ctx context.Context) error {
	fmt.Fprintf(l.out, banner, l.model)

	lines := make(chan string)
	readErrs := make(chan error)
	reader := bufio.NewReader(l.in)
	go func() {
		for {
			line, err := reader.ReadString('\n')
			if err != nil {
				// Hand over whatever was read before EOF
				if line != "" {
					lines <- line
				}
				readErrs <- err
				return
			}
			lines <- line
		}
	}()

	for {
		fmt.Fprintf(l.out, "%v ", ancli.ColoredMessage(ancli.CYAN, ">"))
		select {
		case <-ctx.Done():
			// Interrupt while reading: terminate gracefully. The
			// blocked read goroutine dies with the process.
			fmt.Fprintln(l.out, "\nExiting chat.")
			return nil
		case err := <-readErrs:
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(l.out, "\nExiting chat.")
				return nil
			}
			return fmt.Errorf("failed to read user input: %w", err)
		case line := <-lines:
			if done := l.dispatch(ctx, line); done {
				return nil
			}
		}
	}
}

// dispatch interprets one input line. Returns true when the loop
// should terminate.
func (l *Loop) dispatch(ctx context.Context, line string) bool {
	input := strings.TrimSpace(line)
	switch strings.ToLower(input) {
	case "exit", "quit":
		fmt.Fprintln(l.out, "Exiting chat.")
		return true
	case "clear":
		l.session.Clear()
		fmt.Fprintln(l.out, "Chat history cleared.")
		return false
	case "":
		return false
	}

	reply, err := l.session.Send(ctx, input)
	if err != nil {
		l.printFailure(err)
		return false
	}
	fmt.Fprintf(l.out, "\n%v\n%v\n\n", ancli.ColoredMessage(ancli.GREEN, "Gemini:"), reply)
	return false
}

func (l *Loop) printFailure(err error) {
	var ce *fault.ClassifiedError
	if !errors.As(err, &ce) {
		fmt.Fprintf(l.out, "\n%v %v\n\n", ancli.ColoredMessage(ancli.RED, "Error:"), err)
		return
	}
	label := fmt.Sprintf("%v error:", ce.Category)
	fmt.Fprintf(l.out, "\n%v\n%v\n\n", ancli.ColoredMessage(ancli.RED, label), ce.Remediation)
}
