package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/reqmaster-ai/reqmaster-backend/internal/chat/llm"
	"github.com/reqmaster-ai/reqmaster-backend/internal/requirements/domain"
	"github.com/reqmaster-ai/reqmaster-backend/internal/requirements/extract"
	"github.com/reqmaster-ai/reqmaster-backend/internal/session"
	"github.com/reqmaster-ai/reqmaster-backend/internal/users"
)

// Fixed replies substituted for upstream failures so the conversation
// history never carries a hard failure.
const (
	fallbackReply     = "I didn't catch that."
	fileFallbackReply = "Sorry, I couldn't process that file. Please try describing the content instead."
	fileAckReply      = "I've reviewed your file."
)

// ChatClient is the upstream chat call.
type ChatClient interface {
	Send(ctx context.Context, history []llm.Turn, message string) (string, error)
}

// ChatService drives the elicitation conversation: message round-trips,
// file uploads and the finalize step that extracts structured
// requirements and snapshots a project.
type ChatService struct {
	sessions  *session.Manager
	chat      ChatClient
	extractor extract.Extractor
	userRepo  *users.Repo
	now       func() time.Time
}

// NewChatService creates a new chat service.
func NewChatService(sessions *session.Manager, chat ChatClient, extractor extract.Extractor, userRepo *users.Repo) *ChatService {
	return &ChatService{
		sessions:  sessions,
		chat:      chat,
		extractor: extractor,
		userRepo:  userRepo,
		now:       time.Now,
	}
}

// Start opens the chat view. From the dashboard it begins a fresh
// conversation; from the summary it resumes the existing one.
func (s *ChatService) Start(token string) error {
	return s.sessions.With(token, func(st session.State) (session.State, error) {
		if st.View == session.ViewSummary {
			return session.Reduce(st, session.ResumedChat{})
		}
		return session.Reduce(st, session.StartedChat{})
	})
}

// Messages returns the conversation so far.
func (s *ChatService) Messages(token string) ([]domain.Message, error) {
	st, err := s.sessions.Snapshot(token)
	if err != nil {
		return nil, err
	}
	return st.Messages, nil
}

// Requirements returns the currently extracted model, or
// domain.ErrNoRequirements when finalize has not run yet.
func (s *ChatService) Requirements(token string) (*domain.Requirements, error) {
	st, err := s.sessions.Snapshot(token)
	if err != nil {
		return nil, err
	}
	if st.Requirements == nil {
		return nil, domain.ErrNoRequirements
	}
	model := st.Requirements.Clone()
	return &model, nil
}

// Send appends the outgoing message, forwards it to the chat upstream and
// appends the reply. An upstream failure is logged and substituted with a
// fixed fallback reply; the conversation continues either way.
func (s *ChatService) Send(ctx context.Context, token, text string) (*domain.Message, *domain.Message, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil, fmt.Errorf("message required")
	}
	return s.roundTrip(ctx, token, text, fallbackReply, "")
}

// UploadFile synthesizes the upload message and runs the same round-trip.
// Images ask the model for analysis; other files inline their content.
func (s *ChatService) UploadFile(ctx context.Context, token, name, mimeType, content string) (*domain.Message, *domain.Message, error) {
	if strings.TrimSpace(name) == "" {
		return nil, nil, fmt.Errorf("file name required")
	}

	body := content
	if strings.HasPrefix(mimeType, "image/") {
		body = "Please analyze this image and extract any relevant requirements or information."
	}
	text := fmt.Sprintf("[Uploaded file: %s]\n\n%s", name, body)

	return s.roundTrip(ctx, token, text, fileFallbackReply, fileAckReply)
}

// roundTrip is one atomic send: user message in, model reply out. The busy
// marker rejects duplicate submission while the upstream call is in
// flight, and replies are applied in send order.
func (s *ChatService) roundTrip(ctx context.Context, token, text, failureReply, emptyReply string) (*domain.Message, *domain.Message, error) {
	if err := s.sessions.Begin(token); err != nil {
		return nil, nil, err
	}
	defer s.sessions.End(token)

	userMsg := s.newMessage(domain.RoleUser, text)

	var history []llm.Turn
	err := s.sessions.With(token, func(st session.State) (session.State, error) {
		for _, m := range st.Messages {
			history = append(history, llm.Turn{Role: m.Role, Text: m.Text})
		}
		return session.Reduce(st, session.MessageAppended{Message: userMsg})
	})
	if err != nil {
		return nil, nil, err
	}

	reply, sendErr := s.chat.Send(ctx, history, text)
	if sendErr != nil {
		log.Printf("[warn] operation=chat_send error=%v", sendErr)
		reply = failureReply
	} else if reply == "" {
		if emptyReply != "" {
			reply = emptyReply
		} else {
			reply = fallbackReply
		}
	}

	modelMsg := s.newMessage(domain.RoleModel, reply)
	err = s.sessions.With(token, func(st session.State) (session.State, error) {
		return session.Reduce(st, session.MessageAppended{Message: modelMsg})
	})
	if err != nil {
		return nil, nil, err
	}

	return &userMsg, &modelMsg, nil
}

// Finalize extracts structured requirements from the transcript and, for
// non-guest users, snapshots a project. Conversations shorter than two
// messages are rejected before the extraction adapter is invoked. On
// extraction failure the prior session state is left untouched.
func (s *ChatService) Finalize(ctx context.Context, token string) (*domain.Requirements, *domain.Project, error) {
	if err := s.sessions.Begin(token); err != nil {
		return nil, nil, err
	}
	defer s.sessions.End(token)

	st, err := s.sessions.Snapshot(token)
	if err != nil {
		return nil, nil, err
	}
	if st.View != session.ViewChat {
		return nil, nil, fmt.Errorf("%w: cannot complete extraction from %s", session.ErrInvalidTransition, st.View)
	}
	if len(st.Messages) < 2 {
		return nil, nil, domain.ErrConversationTooShort
	}

	reqs, err := s.extractor.Extract(ctx, st.Messages)
	if err != nil {
		log.Printf("[error] operation=extract error=%v", err)
		return nil, nil, err
	}

	var project *domain.Project
	if !st.Guest {
		p, err := s.saveProject(ctx, st.Username, *reqs, st.Messages)
		if err != nil {
			return nil, nil, err
		}
		project = p
	}

	projectID := ""
	if project != nil {
		projectID = project.ID
	}
	err = s.sessions.With(token, func(cur session.State) (session.State, error) {
		return session.Reduce(cur, session.ExtractionCompleted{Requirements: *reqs, ProjectID: projectID})
	})
	if err != nil {
		return nil, nil, err
	}

	return reqs, project, nil
}

func (s *ChatService) saveProject(ctx context.Context, username string, reqs domain.Requirements, messages []domain.Message) (*domain.Project, error) {
	u, err := s.userRepo.Get(ctx, username)
	if err != nil {
		return nil, err
	}

	name := reqs.ProjectName
	if name == "" {
		name = fmt.Sprintf("Project %d", len(u.Projects)+1)
	}

	project := domain.Project{
		ID:           uuid.NewString(),
		Name:         name,
		CreatedAt:    s.now().UTC(),
		Requirements: reqs.Clone(),
		Messages:     append([]domain.Message(nil), messages...),
	}

	if err := s.userRepo.AddProject(ctx, username, project); err != nil {
		return nil, err
	}
	return &project, nil
}

func (s *ChatService) newMessage(role, text string) domain.Message {
	return domain.Message{
		ID:        uuid.NewString(),
		Role:      role,
		Text:      text,
		Timestamp: s.now().UTC(),
	}
}
