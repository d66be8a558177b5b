package store

import (
	"errors"
	"sort"
	"sync"
	"time"

	"ratein-backend/model"
)

var (
	ErrSessionNotFound = errors.New("session not found")
)

// Sessions 全局会话存储。会话状态只在进程内存活，
// 对话内容的唯一持久副本在远端线程上。
var Sessions = NewSessionStore()

type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*model.Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*model.Session),
	}
}

func (s *SessionStore) CreateSession(session *model.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := cloneSession(session)
	now := time.Now()
	stored.CreatedAt = now
	stored.UpdatedAt = now
	s.sessions[stored.SessionID] = stored
	return nil
}

// GetSession 返回会话的快照副本。存储内的会话只能经由
// Set* 方法在锁内改写，外泄的指针不参与后续更新
func (s *SessionStore) GetSession(sessionID string) (*model.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return cloneSession(session), nil
}

func (s *SessionStore) GetSessionsByEmail(email string) ([]model.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var sessions []model.Session
	for _, session := range s.sessions {
		if session.UserEmail == email {
			sessions = append(sessions, *cloneSession(session))
		}
	}

	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].CreatedAt.After(sessions[j].CreatedAt)
	})
	return sessions, nil
}

func (s *SessionStore) DeleteSession(email, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok || session.UserEmail != email {
		return ErrSessionNotFound
	}
	delete(s.sessions, sessionID)
	return nil
}

func (s *SessionStore) GetMessagesBySessionID(email, sessionID string) ([]model.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[sessionID]
	if !ok || session.UserEmail != email {
		return nil, ErrSessionNotFound
	}

	messages := make([]model.Message, len(session.Messages))
	copy(messages, session.Messages)
	return messages, nil
}

// AppendMessage 向展示缓存追加一条消息，缓存只追加不改写
func (s *SessionStore) AppendMessage(sessionID, role, content string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return ErrSessionNotFound
	}

	session.Messages = append(session.Messages, model.Message{
		CreatedAt: time.Now(),
		Role:      role,
		Content:   content,
	})
	session.UpdatedAt = time.Now()
	return nil
}

func (s *SessionStore) UpdateSessionTitle(email, sessionID, title string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok || session.UserEmail != email {
		return ErrSessionNotFound
	}
	session.Title = title
	session.UpdatedAt = time.Now()
	return nil
}

// SetTitle 供摘要服务使用，不校验归属
func (s *SessionStore) SetTitle(sessionID, title string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return ErrSessionNotFound
	}
	session.Title = title
	session.UpdatedAt = time.Now()
	return nil
}

func (s *SessionStore) SetAnalysisRequested(sessionID string, requested bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return ErrSessionNotFound
	}
	session.AnalysisRequested = requested
	return nil
}

func (s *SessionStore) SetAnalysisCompleted(sessionID string, completed bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return ErrSessionNotFound
	}
	session.AnalysisCompleted = completed
	return nil
}

func (s *SessionStore) SetJobPreferences(sessionID, preferences string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return ErrSessionNotFound
	}
	session.JobPreferences = preferences
	return nil
}

func cloneSession(session *model.Session) *model.Session {
	c := *session
	c.Messages = make([]model.Message, len(session.Messages))
	copy(c.Messages, session.Messages)
	return &c
}
