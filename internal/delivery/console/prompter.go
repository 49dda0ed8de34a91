package console

import (
	"context"
	"errors"
	"io"

	"github.com/charmbracelet/huh"
)

// ErrAborted is returned when the operator cancels a prompt (ctrl-c).
var ErrAborted = errors.New("prompt aborted")

type Choice struct {
	Label string
	Value string
}

// Prompter asks the operator one question at a time.
type Prompter interface {
	Select(ctx context.Context, title string, choices []Choice) (string, error)
	Input(ctx context.Context, title string, validate func(string) error) (string, error)
}

// HuhPrompter renders each question as a single-field huh form.
type HuhPrompter struct {
	Accessible bool
	In         io.Reader
	Out        io.Writer
}

func (p *HuhPrompter) Select(ctx context.Context, title string, choices []Choice) (string, error) {
	opts := make([]huh.Option[string], 0, len(choices))
	for _, c := range choices {
		opts = append(opts, huh.NewOption(c.Label, c.Value))
	}

	var value string
	field := huh.NewSelect[string]().
		Title(title).
		Options(opts...).
		Value(&value)

	if err := p.run(ctx, field); err != nil {
		return "", err
	}
	return value, nil
}

func (p *HuhPrompter) Input(ctx context.Context, title string, validate func(string) error) (string, error) {
	var value string
	field := huh.NewInput().
		Title(title).
		Value(&value)
	if validate != nil {
		field = field.Validate(validate)
	}

	if err := p.run(ctx, field); err != nil {
		return "", err
	}
	return value, nil
}

func (p *HuhPrompter) run(ctx context.Context, field huh.Field) error {
	form := huh.NewForm(huh.NewGroup(field)).WithAccessible(p.Accessible)
	if p.In != nil {
		form = form.WithInput(p.In)
	}
	if p.Out != nil {
		form = form.WithOutput(p.Out)
	}

	err := form.RunWithContext(ctx)
	if errors.Is(err, huh.ErrUserAborted) {
		return ErrAborted
	}
	return err
}
