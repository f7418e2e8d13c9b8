// Package actions implements the terminal handlers the menu dispatcher
// resolves to. Each handler performs its side effects through gateway
// interfaces and returns a channel-agnostic result the adapters format.
package actions

import (
	"context"
	"fmt"

	"github.com/healthconnect-sl/healthconnect/internal/domain"
	"github.com/healthconnect-sl/healthconnect/internal/menu"
)

// Request is what a handler knows about the caller.
type Request struct {
	CallerID string
	Channel  domain.Channel
	// Args are the transition's bound arguments followed by any tokens
	// the caller entered after the leaf.
	Args []string
}

// Result is the handler's reply. Text is always set; the voice adapter
// additionally uses AudioURL and DialNumber to emit play/dial
// primitives. EndSession tells session-oriented channels (USSD) whether
// to close.
type Result struct {
	Text       string
	AudioURL   string
	DialNumber string
	EndSession bool
}

// HandlerFunc executes one resolved action. A handler runs at most once
// per dispatch cycle.
type HandlerFunc func(ctx context.Context, req Request) (Result, error)

// Registry maps action ids to handlers and backs menu validation.
type Registry struct {
	handlers map[menu.ActionID]HandlerFunc
}

func NewRegistry() *Registry {
	return &Registry{handlers: make(map[menu.ActionID]HandlerFunc)}
}

func (r *Registry) Register(id menu.ActionID, h HandlerFunc) {
	r.handlers[id] = h
}

// Known reports whether an action id has a handler; the menu tree is
// validated against this at startup.
func (r *Registry) Known(id menu.ActionID) bool {
	_, ok := r.handlers[id]
	return ok
}

func (r *Registry) Handle(ctx context.Context, id menu.ActionID, req Request) (Result, error) {
	h, ok := r.handlers[id]
	if !ok {
		return Result{}, fmt.Errorf("actions: no handler for %q", id)
	}
	return h(ctx, req)
}
