package chat

import (
	"strings"
	"sync"

	"github.com/google/uuid"
)

const historyLimit = 10

// Message is one turn in a conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
	Intent  string `json:"intent,omitempty"`
}

// Session holds per-conversation state. Safe for concurrent use.
type Session struct {
	mu              sync.Mutex
	ID              string
	UserID          string
	messages        []Message
	knownEmployeeID string
}

// AddMessage appends a turn to the history.
func (s *Session) AddMessage(role, content, intent string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, Message{Role: role, Content: content, Intent: intent})
}

// History returns the last n turns.
func (s *Session) History(n int) []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n <= 0 || n > len(s.messages) {
		n = len(s.messages)
	}
	out := make([]Message, n)
	copy(out, s.messages[len(s.messages)-n:])
	return out
}

// ContextString renders recent history as "role: content" lines for prompts.
func (s *Session) ContextString() string {
	var b strings.Builder
	for _, m := range s.History(historyLimit) {
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(m.Role)
		b.WriteString(": ")
		b.WriteString(m.Content)
	}
	return b.String()
}

// SetEmployeeID remembers an employee id mentioned during the conversation.
func (s *Session) SetEmployeeID(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.knownEmployeeID = id
}

// EmployeeID returns the remembered employee id, if any.
func (s *Session) EmployeeID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.knownEmployeeID
}

// SessionManager keeps conversations in memory keyed by session id.
type SessionManager struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

// NewSessionManager constructs an empty SessionManager.
func NewSessionManager() *SessionManager {
	return &SessionManager{sessions: make(map[string]*Session)}
}

// GetOrCreate returns the existing session or starts a new one. An unknown
// session id starts a fresh session under that id.
func (m *SessionManager) GetOrCreate(userID, sessionID string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	if sessionID != "" {
		if s, ok := m.sessions[sessionID]; ok {
			return s
		}
	} else {
		sessionID = uuid.NewString()
	}
	s := &Session{ID: sessionID, UserID: userID}
	m.sessions[sessionID] = s
	return s
}
