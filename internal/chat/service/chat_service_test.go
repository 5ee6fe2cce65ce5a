package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reqmaster-ai/reqmaster-backend/internal/chat/llm"
	"github.com/reqmaster-ai/reqmaster-backend/internal/recordstore"
	"github.com/reqmaster-ai/reqmaster-backend/internal/requirements/domain"
	"github.com/reqmaster-ai/reqmaster-backend/internal/session"
	"github.com/reqmaster-ai/reqmaster-backend/internal/users"
)

type fakeChat struct {
	reply       string
	err         error
	calls       int
	lastHistory []llm.Turn
	lastMessage string
}

func (f *fakeChat) Send(_ context.Context, history []llm.Turn, message string) (string, error) {
	f.calls++
	f.lastHistory = history
	f.lastMessage = message
	return f.reply, f.err
}

type fakeExtractor struct {
	reqs  *domain.Requirements
	err   error
	calls int
}

func (f *fakeExtractor) Extract(_ context.Context, _ []domain.Message) (*domain.Requirements, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	out := f.reqs.Clone()
	return &out, nil
}

type fixture struct {
	svc       *ChatService
	sessions  *session.Manager
	repo      *users.Repo
	chat      *fakeChat
	extractor *fakeExtractor
	token     string
}

func newFixture(t *testing.T, events ...session.Event) *fixture {
	t.Helper()
	repo := users.NewRepo(recordstore.NewMemory())
	require.NoError(t, repo.Upsert(context.Background(), &users.User{Username: "alice"}))

	chat := &fakeChat{reply: "Tell me more about that."}
	extractor := &fakeExtractor{reqs: &domain.Requirements{ProjectName: "Online Store"}}
	sessions := session.NewManager()
	svc := NewChatService(sessions, chat, extractor, repo)

	if len(events) == 0 {
		events = []session.Event{session.LoggedIn{Username: "alice"}, session.StartedChat{}}
	}
	token, err := sessions.Create(events...)
	require.NoError(t, err)

	return &fixture{svc: svc, sessions: sessions, repo: repo, chat: chat, extractor: extractor, token: token}
}

// seedMessages appends transcript turns directly, bypassing the upstream
// round-trip and its rate limit.
func (f *fixture) seedMessages(t *testing.T, texts ...string) {
	t.Helper()
	role := domain.RoleUser
	for _, text := range texts {
		msg := domain.Message{ID: text, Role: role, Text: text}
		err := f.sessions.With(f.token, func(st session.State) (session.State, error) {
			return session.Reduce(st, session.MessageAppended{Message: msg})
		})
		require.NoError(t, err)
		if role == domain.RoleUser {
			role = domain.RoleModel
		} else {
			role = domain.RoleUser
		}
	}
}

func TestStart_FreshConversationFromDashboard(t *testing.T) {
	f := newFixture(t, session.LoggedIn{Username: "alice"})
	require.NoError(t, f.svc.Start(f.token))

	st, err := f.sessions.Snapshot(f.token)
	require.NoError(t, err)
	assert.Equal(t, session.ViewChat, st.View)
	assert.Empty(t, st.Messages)
}

func TestSend_AppendsBothMessages(t *testing.T) {
	f := newFixture(t)

	userMsg, modelMsg, err := f.svc.Send(context.Background(), f.token, "I need a web shop")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleUser, userMsg.Role)
	assert.Equal(t, "I need a web shop", userMsg.Text)
	assert.Equal(t, domain.RoleModel, modelMsg.Role)
	assert.Equal(t, "Tell me more about that.", modelMsg.Text)

	msgs, err := f.svc.Messages(f.token)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, userMsg.ID, msgs[0].ID)
	assert.Equal(t, modelMsg.ID, msgs[1].ID)
}

func TestSend_ForwardsHistoryWithoutCurrentMessage(t *testing.T) {
	f := newFixture(t)
	f.seedMessages(t, "earlier question", "earlier answer")

	_, _, err := f.svc.Send(context.Background(), f.token, "next question")
	require.NoError(t, err)

	require.Len(t, f.chat.lastHistory, 2)
	assert.Equal(t, "earlier question", f.chat.lastHistory[0].Text)
	assert.Equal(t, "earlier answer", f.chat.lastHistory[1].Text)
	assert.Equal(t, "next question", f.chat.lastMessage)
}

func TestSend_RejectsBlankMessage(t *testing.T) {
	f := newFixture(t)
	_, _, err := f.svc.Send(context.Background(), f.token, "   ")
	assert.Error(t, err)
	assert.Equal(t, 0, f.chat.calls)
}

func TestSend_UpstreamFailureYieldsFallbackReply(t *testing.T) {
	f := newFixture(t)
	f.chat.err = errors.New("upstream down")

	userMsg, modelMsg, err := f.svc.Send(context.Background(), f.token, "hello")
	require.NoError(t, err)
	assert.Equal(t, "hello", userMsg.Text)
	assert.Equal(t, "I didn't catch that.", modelMsg.Text)

	msgs, err := f.svc.Messages(f.token)
	require.NoError(t, err)
	assert.Len(t, msgs, 2)
}

func TestSend_EmptyReplyYieldsFallbackReply(t *testing.T) {
	f := newFixture(t)
	f.chat.reply = ""

	_, modelMsg, err := f.svc.Send(context.Background(), f.token, "hello")
	require.NoError(t, err)
	assert.Equal(t, "I didn't catch that.", modelMsg.Text)
}

func TestSend_BusySessionRejected(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.sessions.Begin(f.token))

	_, _, err := f.svc.Send(context.Background(), f.token, "hello")
	assert.ErrorIs(t, err, session.ErrBusy)
	assert.Equal(t, 0, f.chat.calls)
}

func TestUploadFile_InlinesTextContent(t *testing.T) {
	f := newFixture(t)

	userMsg, _, err := f.svc.UploadFile(context.Background(), f.token, "notes.txt", "text/plain", "must support refunds")
	require.NoError(t, err)
	assert.Equal(t, "[Uploaded file: notes.txt]\n\nmust support refunds", userMsg.Text)
}

func TestUploadFile_ImagesAskForAnalysis(t *testing.T) {
	f := newFixture(t)

	userMsg, _, err := f.svc.UploadFile(context.Background(), f.token, "whiteboard.png", "image/png", "base64data")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(userMsg.Text, "[Uploaded file: whiteboard.png]"))
	assert.Contains(t, userMsg.Text, "Please analyze this image")
	assert.NotContains(t, userMsg.Text, "base64data")
}

func TestUploadFile_EmptyReplyAcknowledgesFile(t *testing.T) {
	f := newFixture(t)
	f.chat.reply = ""

	_, modelMsg, err := f.svc.UploadFile(context.Background(), f.token, "notes.txt", "text/plain", "content")
	require.NoError(t, err)
	assert.Equal(t, "I've reviewed your file.", modelMsg.Text)
}

func TestUploadFile_FailureYieldsFileFallback(t *testing.T) {
	f := newFixture(t)
	f.chat.err = errors.New("upstream down")

	_, modelMsg, err := f.svc.UploadFile(context.Background(), f.token, "notes.txt", "text/plain", "content")
	require.NoError(t, err)
	assert.Equal(t, "Sorry, I couldn't process that file. Please try describing the content instead.", modelMsg.Text)
}

func TestFinalize_ShortConversationRejectedBeforeExtraction(t *testing.T) {
	f := newFixture(t)
	f.seedMessages(t, "only one message")

	_, _, err := f.svc.Finalize(context.Background(), f.token)
	assert.ErrorIs(t, err, domain.ErrConversationTooShort)
	assert.Equal(t, 0, f.extractor.calls)
}

func TestFinalize_RequiresChatView(t *testing.T) {
	f := newFixture(t, session.LoggedIn{Username: "alice"})

	_, _, err := f.svc.Finalize(context.Background(), f.token)
	assert.ErrorIs(t, err, session.ErrInvalidTransition)
}

func TestFinalize_SavesProjectAndMovesToSummary(t *testing.T) {
	f := newFixture(t)
	f.seedMessages(t, "I need a web shop", "What should it sell?")

	reqs, project, err := f.svc.Finalize(context.Background(), f.token)
	require.NoError(t, err)
	assert.Equal(t, "Online Store", reqs.ProjectName)
	require.NotNil(t, project)
	assert.Equal(t, "Online Store", project.Name)
	assert.Len(t, project.Messages, 2)

	st, err := f.sessions.Snapshot(f.token)
	require.NoError(t, err)
	assert.Equal(t, session.ViewSummary, st.View)
	assert.Equal(t, project.ID, st.CurrentProjectID)

	stored, err := f.repo.GetProject(context.Background(), "alice", project.ID)
	require.NoError(t, err)
	assert.Equal(t, project.Name, stored.Name)
}

func TestFinalize_NamelessProjectGetsSequentialName(t *testing.T) {
	f := newFixture(t)
	f.extractor.reqs = &domain.Requirements{}
	f.seedMessages(t, "hello", "hi")

	_, project, err := f.svc.Finalize(context.Background(), f.token)
	require.NoError(t, err)
	require.NotNil(t, project)
	assert.Equal(t, "Project 1", project.Name)
}

func TestFinalize_GuestNotPersisted(t *testing.T) {
	f := newFixture(t, session.LoggedIn{Username: users.GuestUsername, Guest: true}, session.StartedChat{})
	f.seedMessages(t, "hello", "hi")

	reqs, project, err := f.svc.Finalize(context.Background(), f.token)
	require.NoError(t, err)
	require.NotNil(t, reqs)
	assert.Nil(t, project)

	st, err := f.sessions.Snapshot(f.token)
	require.NoError(t, err)
	assert.Equal(t, session.ViewSummary, st.View)
	assert.Empty(t, st.CurrentProjectID)

	_, err = f.repo.Get(context.Background(), users.GuestUsername)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFinalize_ExtractionFailureLeavesStateUntouched(t *testing.T) {
	f := newFixture(t)
	f.extractor.err = domain.ErrExtractionFailed
	f.seedMessages(t, "hello", "hi")

	_, _, err := f.svc.Finalize(context.Background(), f.token)
	assert.ErrorIs(t, err, domain.ErrExtractionFailed)

	st, err := f.sessions.Snapshot(f.token)
	require.NoError(t, err)
	assert.Equal(t, session.ViewChat, st.View)
	assert.Len(t, st.Messages, 2)
	assert.Nil(t, st.Requirements)

	_, err = f.svc.Requirements(f.token)
	assert.ErrorIs(t, err, domain.ErrNoRequirements)
}

func TestRequirements_AfterFinalize(t *testing.T) {
	f := newFixture(t)
	f.seedMessages(t, "hello", "hi")

	_, _, err := f.svc.Finalize(context.Background(), f.token)
	require.NoError(t, err)

	reqs, err := f.svc.Requirements(f.token)
	require.NoError(t, err)
	assert.Equal(t, "Online Store", reqs.ProjectName)
}
