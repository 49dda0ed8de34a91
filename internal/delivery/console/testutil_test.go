package console

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"employee-tracker/internal/app/service"
	"employee-tracker/internal/repository/sqlstore"
	"employee-tracker/pkg/workerpool"
)

// answer is one scripted reply. For Select it is the label to pick.
type answer struct {
	value string
	err   error
}

type scriptedPrompter struct {
	t       *testing.T
	answers []answer
	titles  []string
}

func script(t *testing.T, values ...string) *scriptedPrompter {
	p := &scriptedPrompter{t: t}
	for _, v := range values {
		p.answers = append(p.answers, answer{value: v})
	}
	return p
}

func (p *scriptedPrompter) abortNext() *scriptedPrompter {
	p.answers = append(p.answers, answer{err: ErrAborted})
	return p
}

func (p *scriptedPrompter) then(values ...string) *scriptedPrompter {
	for _, v := range values {
		p.answers = append(p.answers, answer{value: v})
	}
	return p
}

func (p *scriptedPrompter) next(title string) answer {
	p.t.Helper()
	p.titles = append(p.titles, title)
	if len(p.answers) == 0 {
		return answer{err: ErrAborted}
	}
	a := p.answers[0]
	p.answers = p.answers[1:]
	return a
}

func (p *scriptedPrompter) Select(_ context.Context, title string, choices []Choice) (string, error) {
	a := p.next(title)
	if a.err != nil {
		return "", a.err
	}
	for _, c := range choices {
		if c.Label == a.value {
			return c.Value, nil
		}
	}
	// menu entries outside the list exercise the invalid-action path
	if title == menuTitle {
		return a.value, nil
	}
	return "", fmt.Errorf("no choice %q for %q", a.value, title)
}

func (p *scriptedPrompter) Input(_ context.Context, title string, validate func(string) error) (string, error) {
	a := p.next(title)
	if a.err != nil {
		return "", a.err
	}
	if validate != nil {
		if err := validate(a.value); err != nil {
			return "", err
		}
	}
	return a.value, nil
}

type closeCounter struct {
	closed int
}

func (c *closeCounter) Close() error {
	c.closed++
	return nil
}

type fixture struct {
	handler *Handler
	gateway *service.Gateway
	out     *bytes.Buffer
	closer  *closeCounter
	store   *sqlstore.Store
}

func setupFixture(t *testing.T, prompt Prompter) *fixture {
	t.Helper()
	ctx := context.Background()
	dsn := "file:" + filepath.Join(t.TempDir(), "console.db") + "?_foreign_keys=on"

	store, err := sqlstore.Open(ctx, sqlstore.SQLite, dsn, 1)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	require.NoError(t, sqlstore.ApplySchema(ctx, store.DB, sqlstore.SQLite, ""))

	pool := workerpool.NewWorkerPool(1, 1)
	t.Cleanup(pool.Close)

	gateway := service.NewGateway(store.Departments(), store.Roles(), store.Employees(), service.NewAsyncService(pool))
	out := &bytes.Buffer{}
	closer := &closeCounter{}

	return &fixture{
		handler: &Handler{Gateway: gateway, Prompt: prompt, Out: NewRenderer(out), Closer: closer},
		gateway: gateway,
		out:     out,
		closer:  closer,
		store:   store,
	}
}
