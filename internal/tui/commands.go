package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/csheth/paragen/internal/llm"
	"github.com/csheth/paragen/internal/session"
)

type generateResultMsg struct {
	req  session.Request
	text string
	err  error
}

type copyResultMsg struct {
	chars int
	err   error
}

func generateJob(gen llm.Generator, req session.Request) jobRunner {
	return func(ctx context.Context) (tea.Msg, error) {
		if gen == nil {
			err := errors.New(noGeneratorMsg)
			return generateResultMsg{req: req, err: err}, err
		}
		text, err := gen.Generate(ctx, req.Prompt)
		return generateResultMsg{req: req, text: text, err: err}, err
	}
}

func copyJob(write func(string) error, text string) jobRunner {
	return func(context.Context) (tea.Msg, error) {
		err := write(text)
		return copyResultMsg{chars: len([]rune(text)), err: err}, err
	}
}
