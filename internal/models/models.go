package models

import (
	"context"
	"iter"
)

// Querier is the capability main invokes once setup has decided what
// this process run should do (chat loop, model listing, etc).
type Querier interface {
	Query(ctx context.Context) error
}

// TurnCompleter generates the next model reply for a chat. Implemented
// by the provider adapter, mocked in tests.
type TurnCompleter interface {
	Complete(ctx context.Context, chat Chat) (string, error)
}

// ModelLister yields the provider's model catalog as a lazy sequence.
// The sequence is finite and not restartable without a new call.
type ModelLister interface {
	ListModels(ctx context.Context) iter.Seq2[ModelSpec, error]
}

// ChatSession is one live conversation. Send drives a full
// user-turn/model-turn cycle, Clear drops the accumulated history.
type ChatSession interface {
	Send(ctx context.Context, userText string) (string, error)
	Clear()
}

type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// Turn is one message exchanged between the user and the model.
// Immutable once appended to a Chat.
type Turn struct {
	Role Role   `json:"role"`
	Text string `json:"text"`
}

// Chat is the ordered turn history of one conversation. The full
// history is sent as context on every provider call, so insertion
// order is load-bearing.
type Chat struct {
	Turns []Turn `json:"turns"`
}

// ModelSpec describes one model identifier from the provider catalog.
type ModelSpec struct {
	Name               string `json:"name"`
	DisplayName        string `json:"display_name"`
	SupportsGeneration bool   `json:"supports_generation"`
}
