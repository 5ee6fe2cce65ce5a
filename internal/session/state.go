package session

import (
	"errors"
	"fmt"

	"github.com/reqmaster-ai/reqmaster-backend/internal/requirements/domain"
)

// View is the screen the client is on. The backend tracks it so the
// allowed transitions form an explicit, testable state machine instead of
// scattered mutable flags.
type View string

const (
	ViewLogin     View = "login"
	ViewDashboard View = "dashboard"
	ViewChat      View = "chat"
	ViewSummary   View = "summary"
	ViewFeedback  View = "feedback"
)

// ErrInvalidTransition rejects an event the current view does not allow.
// The state is left unchanged.
var ErrInvalidTransition = errors.New("invalid view transition")

// State is the immutable session state bundle. All mutation happens by
// reducing events into a new State.
type State struct {
	View             View
	Username         string
	Guest            bool
	Messages         []domain.Message
	Requirements     *domain.Requirements
	CurrentProjectID string
}

// Event transitions the session state.
type Event interface{ isEvent() }

// LoggedIn moves login -> dashboard.
type LoggedIn struct {
	Username string
	Guest    bool
}

// LoggedOut moves any view back to login and clears everything.
type LoggedOut struct{}

// StartedChat moves dashboard -> chat and resets the conversation.
type StartedChat struct{}

// ResumedChat moves summary -> chat keeping the conversation.
type ResumedChat struct{}

// MessageAppended appends one message while in chat.
type MessageAppended struct{ Message domain.Message }

// ExtractionCompleted moves chat -> summary with the extracted model.
type ExtractionCompleted struct {
	Requirements domain.Requirements
	ProjectID    string
}

// ProjectOpened loads a saved snapshot and moves to summary.
type ProjectOpened struct{ Project domain.Project }

// OpenedFeedback moves any authenticated view -> feedback.
type OpenedFeedback struct{}

// OpenedDashboard moves any authenticated view -> dashboard.
type OpenedDashboard struct{}

func (LoggedIn) isEvent()            {}
func (LoggedOut) isEvent()           {}
func (StartedChat) isEvent()         {}
func (ResumedChat) isEvent()         {}
func (MessageAppended) isEvent()     {}
func (ExtractionCompleted) isEvent() {}
func (ProjectOpened) isEvent()       {}
func (OpenedFeedback) isEvent()      {}
func (OpenedDashboard) isEvent()     {}

// Initial returns the state a fresh session starts in.
func Initial() State {
	return State{View: ViewLogin}
}

func (s State) authenticated() bool {
	return s.View != ViewLogin && s.Username != ""
}

// Reduce applies one event and returns the next state. It is a pure
// function: on error the input state is returned unchanged.
func Reduce(s State, e Event) (State, error) {
	switch ev := e.(type) {
	case LoggedIn:
		if s.View != ViewLogin {
			return s, transitionErr(s.View, "login")
		}
		return State{View: ViewDashboard, Username: ev.Username, Guest: ev.Guest}, nil

	case LoggedOut:
		return Initial(), nil

	case StartedChat:
		if s.View != ViewDashboard {
			return s, transitionErr(s.View, "start chat")
		}
		next := s
		next.View = ViewChat
		next.Messages = nil
		next.Requirements = nil
		next.CurrentProjectID = ""
		return next, nil

	case ResumedChat:
		if s.View != ViewSummary {
			return s, transitionErr(s.View, "resume chat")
		}
		next := s
		next.View = ViewChat
		return next, nil

	case MessageAppended:
		if s.View != ViewChat {
			return s, transitionErr(s.View, "append message")
		}
		next := s
		next.Messages = append(append([]domain.Message(nil), s.Messages...), ev.Message)
		return next, nil

	case ExtractionCompleted:
		if s.View != ViewChat {
			return s, transitionErr(s.View, "complete extraction")
		}
		next := s
		reqs := ev.Requirements.Clone()
		next.Requirements = &reqs
		next.CurrentProjectID = ev.ProjectID
		next.View = ViewSummary
		return next, nil

	case ProjectOpened:
		if !s.authenticated() {
			return s, transitionErr(s.View, "open project")
		}
		snap := ev.Project.Clone()
		next := s
		next.View = ViewSummary
		next.Messages = snap.Messages
		next.Requirements = &snap.Requirements
		next.CurrentProjectID = snap.ID
		return next, nil

	case OpenedFeedback:
		if !s.authenticated() {
			return s, transitionErr(s.View, "open feedback")
		}
		next := s
		next.View = ViewFeedback
		return next, nil

	case OpenedDashboard:
		if !s.authenticated() {
			return s, transitionErr(s.View, "open dashboard")
		}
		next := s
		next.View = ViewDashboard
		return next, nil
	}

	return s, fmt.Errorf("unknown event %T", e)
}

func transitionErr(from View, action string) error {
	return fmt.Errorf("%w: cannot %s from %s", ErrInvalidTransition, action, from)
}
