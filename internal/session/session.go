// Package session owns one conversation: the ordered turn history, the
// request/response cycle against the provider and the classification
// of whatever goes wrong on the way.
package session

import (
	"context"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/baalimago/go_away_boilerplate/pkg/ancli"
	"github.com/baalimago/go_away_boilerplate/pkg/misc"

	"gemcli/internal/catalog"
	"gemcli/internal/fault"
	"gemcli/internal/models"
	"gemcli/internal/textfmt"
)

// Config is read once at session start and never mutated afterwards.
type Config struct {
	// Model is the identifier requested by the user, validated against
	// the catalog in New.
	Model string
	// Width is the wrap width for replies, in display columns.
	Width int
}

type Session struct {
	conf      Config
	completer models.TurnCompleter
	chat      models.Chat
	debug     bool
}

// New validates conf.Model against the catalog and returns a session
// ready for Send. An unknown or generation-incapable model yields a
// MODEL_NOT_FOUND ClassifiedError carrying the full catalog listing as
// remediation. A failing catalog query is returned raw: the session
// cannot start and the caller decides how fatal that is.
func New(ctx context.Context, conf Config, completer models.TurnCompleter, cat *catalog.Catalog) (*Session, error) {
	ok, err := cat.Validate(ctx, conf.Model)
	if err != nil {
		return nil, fmt.Errorf("failed to query model catalog: %w", err)
	}
	if !ok {
		ce := fault.Classify(fmt.Errorf("%w: '%v'", models.ErrModelNotFound, conf.Model))
		names, err := cat.Names(ctx)
		if err == nil && len(names) > 0 {
			ce.Remediation += "\n\nAvailable models:\n  - " + strings.Join(names, "\n  - ")
		}
		return nil, ce
	}

	return &Session{
		conf:      conf,
		completer: completer,
		debug:     misc.Truthy(os.Getenv("DEBUG")),
	}, nil
}

// Send runs one full turn: the user text plus the entire prior history
// go to the provider, and on success both the user turn and the model
// turn are appended, in that order. On failure nothing is appended and
// a *fault.ClassifiedError comes back, so the user may retry the same
// input against an unchanged history. Rate limits are never retried
// here: hammering a quota-limited API only digs the hole deeper.
func (s *Session) Send(ctx context.Context, userText string) (string, error) {
	payload := models.Chat{
		Turns: append(slices.Clone(s.chat.Turns), models.Turn{Role: models.RoleUser, Text: userText}),
	}
	reply, err := s.completer.Complete(ctx, payload)
	if err != nil {
		return "", fault.Classify(err)
	}

	s.chat.Turns = append(s.chat.Turns,
		models.Turn{Role: models.RoleUser, Text: userText},
		models.Turn{Role: models.RoleModel, Text: reply},
	)
	if s.debug {
		ancli.Okf("history now at '%v' turns\n", len(s.chat.Turns))
	}
	return textfmt.Wrap(reply, s.conf.Width), nil
}

// Clear empties the history. Idempotent, never fails.
func (s *Session) Clear() {
	s.chat.Turns = s.chat.Turns[:0]
}

// History returns a copy of the turns exchanged so far.
func (s *Session) History() []models.Turn {
	return slices.Clone(s.chat.Turns)
}
