package console

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"employee-tracker/internal/delivery/console/router"
)

const menuTitle = "What would you like to do?"

// Loop shows the menu until a handler stops it or the operator aborts.
type Loop struct {
	Router *router.Router
	Prompt Prompter
	Out    *Renderer
}

func NewLoop(h *Handler) *Loop {
	r := router.New()
	h.Register(r)
	return &Loop{Router: r, Prompt: h.Prompt, Out: h.Out}
}

// Run returns nil on Quit or on an abort at the menu. Handler errors are
// shown and the menu comes back; an abort inside a handler just returns to
// the menu.
func (l *Loop) Run(ctx context.Context) error {
	choices := make([]Choice, 0, len(l.Router.Actions()))
	for _, action := range l.Router.Actions() {
		choices = append(choices, Choice{Label: action, Value: action})
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		action, err := l.Prompt.Select(ctx, menuTitle, choices)
		if errors.Is(err, ErrAborted) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("menu: %w", err)
		}

		outcome, handled, err := l.Router.Dispatch(ctx, action)
		switch {
		case !handled:
			l.Out.Warn(fmt.Sprintf("Invalid action: %s", action))
		case errors.Is(err, ErrAborted):
			slog.Debug("prompt aborted", "action", action)
		case err != nil:
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			slog.Debug("action failed", "action", action, "error", err)
			l.Out.Error(err)
		}

		if outcome == router.Stop {
			return err
		}
	}
}
