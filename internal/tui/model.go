package tui

import (
	"fmt"
	"log"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/csheth/paragen/internal/llm"
	"github.com/csheth/paragen/internal/session"
)

// Config wires runtime options into the TUI program.
type Config struct {
	Generator llm.Generator
	// Timeout bounds each generation call. Zero means no deadline.
	Timeout time.Duration
	// Prompt pre-fills the text area.
	Prompt    string
	Clipboard func(string) error
}

// New returns a tea.Model ready to be mounted into a Program.
func New(config Config) tea.Model {
	if config.Clipboard == nil {
		config.Clipboard = clipboard.WriteAll
	}
	keys := defaultKeyMap()
	layout := newPageLayout()

	input := textarea.New()
	input.Placeholder = inputHint
	input.ShowLineNumbers = false
	input.CharLimit = promptCharLimit
	input.KeyMap.InsertNewline = keys.Newline
	input.SetWidth(layout.contentWidth)
	input.SetHeight(layout.inputHeight)
	input.Focus()

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = spinnerStyle

	vp := viewport.New(layout.contentWidth, layout.resultHeight)

	m := &model{
		config:      config,
		session:     session.New(),
		keys:        keys,
		input:       input,
		spinner:     spin,
		viewport:    vp,
		layout:      layout,
		jobs:        newJobBus(config.Timeout),
		now:         time.Now,
		infoMessage: "Type a prompt and press Enter.",
	}
	if config.Prompt != "" {
		m.input.SetValue(config.Prompt)
		m.session.SetPrompt(m.input.Value())
		m.infoMessage = "Prompt loaded. Press Enter to generate."
	}
	m.refreshResult()
	return m
}

type model struct {
	config  Config
	session *session.Session
	keys    keyMap

	input    textarea.Model
	spinner  spinner.Model
	viewport viewport.Model
	layout   pageLayout
	jobs     *jobBus

	infoMessage string
	helpVisible bool
	lastJob     jobSnapshot

	now       func() time.Time
	lastBurst time.Time
}

func (m *model) Init() tea.Cmd {
	return textarea.Blink
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case spinner.TickMsg:
		if !m.session.Loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		m.refreshResult()
		return m, cmd
	case jobSignalMsg:
		m.lastJob = msg.Snapshot
		return m, nil
	case jobResultEnvelope:
		m.lastJob = msg.Snapshot
		if msg.Payload == nil {
			return m, nil
		}
		return m.Update(msg.Payload)
	case generateResultMsg:
		m.applyGenerateResult(msg)
		return m, nil
	case copyResultMsg:
		if msg.err != nil {
			m.infoMessage = fmt.Sprintf("Copy failed: %v", msg.err)
		} else {
			m.infoMessage = fmt.Sprintf("Copied %d characters to the clipboard.", msg.chars)
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.helpVisible = !m.helpVisible
		return m, nil
	case key.Matches(msg, m.keys.Clear):
		m.input.Reset()
		m.session.SetPrompt("")
		m.infoMessage = "Prompt cleared."
		return m, nil
	case key.Matches(msg, m.keys.Copy):
		return m, m.copyResult()
	case key.Matches(msg, m.keys.ScrollUp, m.keys.ScrollDown):
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	case key.Matches(msg, m.keys.Submit):
		if m.inPasteBurst() {
			// Without bracketed paste a pasted line break arrives as Enter.
			m.lastBurst = m.now()
			return m.insertNewline()
		}
		return m, m.submit()
	}
	if msg.Type == tea.KeyRunes && len(msg.Runes) > 1 {
		m.lastBurst = m.now()
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.session.SetPrompt(m.input.Value())
	return m, cmd
}

// inPasteBurst reports whether the key arrived right after a multi-rune
// read, which only a paste produces.
func (m *model) inPasteBurst() bool {
	return !m.lastBurst.IsZero() && m.now().Sub(m.lastBurst) < pasteWindow
}

func (m *model) insertNewline() (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(tea.KeyMsg{Type: tea.KeyCtrlJ})
	m.session.SetPrompt(m.input.Value())
	return m, cmd
}

func (m *model) submit() tea.Cmd {
	m.session.SetPrompt(m.input.Value())
	req, ok := m.session.Submit()
	if !ok {
		return nil
	}
	m.infoMessage = "Generating with " + m.generatorName() + "..."
	m.viewport.GotoTop()
	m.refreshResult()
	return tea.Batch(m.spinner.Tick, m.jobs.Start(jobKindGenerate, generateJob(m.config.Generator, req)))
}

func (m *model) applyGenerateResult(msg generateResultMsg) {
	if !m.session.Resolve(msg.req, msg.text, msg.err) {
		log.Printf("[tui] ignoring stale result for request %d", msg.req.Seq)
		return
	}
	switch m.session.Phase() {
	case session.PhaseSucceeded:
		m.infoMessage = "Paragraph ready. Ctrl+Y copies it."
	case session.PhaseFailed:
		m.infoMessage = "Generation failed. Edit the prompt and press Enter to retry."
	}
	m.viewport.GotoTop()
	m.refreshResult()
}

func (m *model) copyResult() tea.Cmd {
	if m.session.Phase() != session.PhaseSucceeded {
		return nil
	}
	return m.jobs.Start(jobKindCopy, copyJob(m.config.Clipboard, m.session.Result()))
}

func (m *model) resize(width, height int) {
	m.layout.Update(width, height)
	m.input.SetWidth(m.layout.contentWidth)
	m.input.SetHeight(m.layout.inputHeight)
	m.viewport.Width = m.layout.contentWidth
	m.viewport.Height = m.layout.resultHeight
	m.refreshResult()
}

func (m *model) refreshResult() {
	m.viewport.SetContent(renderResult(m.resultState()))
}

func (m *model) resultState() resultState {
	return resultState{
		Phase:        m.session.Phase(),
		Result:       m.session.Result(),
		ErrorMessage: m.session.ErrorMessage(),
		Spinner:      m.spinner.View(),
		Width:        m.layout.contentWidth,
	}
}

func (m *model) generatorName() string {
	if m.config.Generator == nil {
		return "no provider"
	}
	return m.config.Generator.Name()
}
