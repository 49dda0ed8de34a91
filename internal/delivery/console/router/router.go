package router

import (
	"context"
	"log/slog"
)

// Outcome tells the prompt loop whether to show the menu again.
type Outcome int

const (
	Continue Outcome = iota
	Stop
)

type HandlerFunc func(ctx context.Context) (Outcome, error)

// Router maps menu actions to handlers, keeping registration order for the menu.
type Router struct {
	handlers map[string]HandlerFunc
	order    []string
}

func New() *Router {
	return &Router{handlers: make(map[string]HandlerFunc)}
}

// Register adds or replaces the handler for action.
func (r *Router) Register(action string, h HandlerFunc) {
	if _, ok := r.handlers[action]; !ok {
		r.order = append(r.order, action)
	}
	r.handlers[action] = h
}

func (r *Router) Actions() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Dispatch runs the handler for action. handled is false when nothing is
// registered under that name.
func (r *Router) Dispatch(ctx context.Context, action string) (outcome Outcome, handled bool, err error) {
	slog.Debug("dispatch", "action", action)

	h, ok := r.handlers[action]
	if !ok {
		return Continue, false, nil
	}
	outcome, err = h(ctx)
	return outcome, true, err
}
