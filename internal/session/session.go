// Package session holds the prompt/generation state machine behind the UI.
//
// A Session is not safe for concurrent use; it is owned by the program's
// update loop, which is the only place that mutates it.
package session

import "strings"

// Phase is the controller's current state.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseSucceeded
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseSucceeded:
		return "succeeded"
	case PhaseFailed:
		return "failed"
	default:
		return "idle"
	}
}

// FallbackErrorMessage is shown when a failure carries no text of its own.
const FallbackErrorMessage = "An unexpected error occurred. Please try again."

// Request identifies one outstanding generation call.
type Request struct {
	Seq    uint64
	Prompt string
}

// Session is the state bundle: prompt, phase, result and error message.
type Session struct {
	prompt       string
	phase        Phase
	result       string
	errorMessage string
	seq          uint64
}

// New returns a session in the idle phase with an empty prompt.
func New() *Session {
	return &Session{phase: PhaseIdle}
}

func (s *Session) Prompt() string       { return s.prompt }
func (s *Session) Phase() Phase         { return s.phase }
func (s *Session) Result() string       { return s.result }
func (s *Session) ErrorMessage() string { return s.errorMessage }
func (s *Session) Loading() bool        { return s.phase == PhaseLoading }

// SetPrompt records the current prompt text. Allowed in every phase.
func (s *Session) SetPrompt(prompt string) {
	s.prompt = prompt
}

// CanSubmit reports whether Submit would start a request.
func (s *Session) CanSubmit() bool {
	return strings.TrimSpace(s.prompt) != "" && s.phase != PhaseLoading
}

// Submit moves the session to Loading and clears stale output. The returned
// Request must be resolved with Resolve. ok is false, and nothing changes,
// when the prompt is blank or a request is already in flight.
func (s *Session) Submit() (req Request, ok bool) {
	if !s.CanSubmit() {
		return Request{}, false
	}
	s.seq++
	s.phase = PhaseLoading
	s.errorMessage = ""
	s.result = ""
	return Request{Seq: s.seq, Prompt: s.prompt}, true
}

// Resolve applies the outcome of req. Resolutions for anything other than
// the outstanding request are ignored and reported as false.
func (s *Session) Resolve(req Request, text string, err error) bool {
	if s.phase != PhaseLoading || req.Seq != s.seq {
		return false
	}
	if err != nil {
		s.result = ""
		s.errorMessage = messageOf(err)
		s.phase = PhaseFailed
		return true
	}
	s.errorMessage = ""
	s.result = text
	s.phase = PhaseSucceeded
	return true
}

func messageOf(err error) string {
	if err == nil {
		return FallbackErrorMessage
	}
	message := strings.TrimSpace(err.Error())
	if message == "" {
		return FallbackErrorMessage
	}
	return message
}
