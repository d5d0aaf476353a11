package chat

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/resumecoach/backend/apperr"
	"github.com/resumecoach/backend/llm"
	"github.com/resumecoach/backend/models"
)

// Session is one conversation held in process memory
type Session struct {
	ID           string
	SystemPrompt string
	Messages     []models.ChatMessage
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Store keeps chat sessions in memory and relays messages to the model.
// Sessions idle for longer than ttl are dropped.
type Store struct {
	generator     llm.Generator
	defaultSystem string
	ttl           time.Duration
	now           func() time.Time

	mu       sync.Mutex
	sessions map[string]*Session
	turns    map[string]*sync.Mutex
}

// NewStore creates a session store; ttl <= 0 keeps sessions until deleted
func NewStore(gen llm.Generator, defaultSystem string, ttl time.Duration) *Store {
	return &Store{
		generator:     gen,
		defaultSystem: defaultSystem,
		ttl:           ttl,
		now:           time.Now,
		sessions:      make(map[string]*Session),
		turns:         make(map[string]*sync.Mutex),
	}
}

// Create starts a session; an empty system prompt selects the default
func (s *Store) Create(systemPrompt string) *Session {
	if strings.TrimSpace(systemPrompt) == "" {
		systemPrompt = s.defaultSystem
	}

	now := s.now()
	session := &Session{
		ID:           uuid.NewString(),
		SystemPrompt: systemPrompt,
		Messages:     []models.ChatMessage{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.pruneLocked()
	s.sessions[session.ID] = session
	s.turns[session.ID] = &sync.Mutex{}
	return copySession(session)
}

// Get returns a snapshot of the session
func (s *Store) Get(id string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.lookupLocked(id)
	if err != nil {
		return nil, err
	}
	return copySession(session), nil
}

// Send appends the user's message, asks the model for a reply with the full
// history, and appends the reply. Turns within one session run one at a
// time, so the model always sees completed turns. If the model call fails
// the user message is removed again.
func (s *Store) Send(ctx context.Context, id, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", apperr.Newf(apperr.KindInvalidInput, "chat.send", "message is required")
	}

	s.mu.Lock()
	if _, err := s.lookupLocked(id); err != nil {
		s.mu.Unlock()
		return "", err
	}
	turn := s.turns[id]
	s.mu.Unlock()

	turn.Lock()
	defer turn.Unlock()

	s.mu.Lock()
	session, err := s.lookupLocked(id)
	if err != nil {
		s.mu.Unlock()
		return "", err
	}
	message := models.ChatMessage{Role: models.RoleUser, Content: text, CreatedAt: s.now()}
	session.Messages = append(session.Messages, message)
	session.UpdatedAt = s.now()
	history := append([]models.ChatMessage(nil), session.Messages...)
	system := session.SystemPrompt
	s.mu.Unlock()

	reply, genErr := s.generator.Chat(ctx, system, history)

	s.mu.Lock()
	defer s.mu.Unlock()

	// The session may have been cleared or deleted while the model was answering
	current, ok := s.sessions[id]
	if genErr != nil {
		if ok {
			current.Messages = removeLast(current.Messages, message)
		}
		log.Printf("[Chat] Session %s: %v", id, genErr)
		return "", fmt.Errorf("failed to get response: %w", genErr)
	}

	reply = strings.TrimSpace(reply)
	if ok {
		current.Messages = append(current.Messages, models.ChatMessage{Role: models.RoleAssistant, Content: reply, CreatedAt: s.now()})
		current.UpdatedAt = s.now()
	}
	return reply, nil
}

// removeLast drops the last occurrence of msg, if present
func removeLast(messages []models.ChatMessage, msg models.ChatMessage) []models.ChatMessage {
	for i := len(messages) - 1; i >= 0; i-- {
		m := messages[i]
		if m.Role == msg.Role && m.Content == msg.Content && m.CreatedAt.Equal(msg.CreatedAt) {
			return append(messages[:i], messages[i+1:]...)
		}
	}
	return messages
}

// Clear empties the session's history but keeps the session
func (s *Store) Clear(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.lookupLocked(id)
	if err != nil {
		return err
	}
	session.Messages = []models.ChatMessage{}
	session.UpdatedAt = s.now()
	return nil
}

// Delete removes the session
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.lookupLocked(id); err != nil {
		return err
	}
	delete(s.sessions, id)
	delete(s.turns, id)
	return nil
}

// Len returns the number of live sessions
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pruneLocked()
	return len(s.sessions)
}

func (s *Store) lookupLocked(id string) (*Session, error) {
	s.pruneLocked()
	session, ok := s.sessions[id]
	if !ok {
		return nil, apperr.Newf(apperr.KindNotFound, "chat.session", "session %s not found", id)
	}
	return session, nil
}

func (s *Store) pruneLocked() {
	if s.ttl <= 0 {
		return
	}
	cutoff := s.now().Add(-s.ttl)
	for id, session := range s.sessions {
		if session.UpdatedAt.Before(cutoff) {
			delete(s.sessions, id)
			delete(s.turns, id)
		}
	}
}

func copySession(src *Session) *Session {
	dst := *src
	dst.Messages = append([]models.ChatMessage{}, src.Messages...)
	return &dst
}
