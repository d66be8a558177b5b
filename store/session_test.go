package store

import (
	"sync"
	"testing"
	"time"

	"ratein-backend/model"
)

func newStoredSession(t *testing.T, s *SessionStore, id, email string) *model.Session {
	t.Helper()
	session := &model.Session{
		UserEmail: email,
		SessionID: id,
		ThreadID:  "th_" + id,
		Title:     model.DefaultSessionTitle,
	}
	if err := s.CreateSession(session); err != nil {
		t.Fatalf("CreateSession err: %v", err)
	}
	return session
}

func TestSessionStoreListNewestFirst(t *testing.T) {
	s := NewSessionStore()
	newStoredSession(t, s, "s1", "jane@example.com")
	// 保证时间戳可区分
	s.sessions["s1"].CreatedAt = s.sessions["s1"].CreatedAt.Add(-time.Second)
	newStoredSession(t, s, "s2", "jane@example.com")
	newStoredSession(t, s, "s3", "other@example.com")

	sessions, err := s.GetSessionsByEmail("jane@example.com")
	if err != nil {
		t.Fatalf("GetSessionsByEmail err: %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(sessions))
	}
	if sessions[0].SessionID != "s2" || sessions[1].SessionID != "s1" {
		t.Fatalf("sessions not newest-first: %s, %s", sessions[0].SessionID, sessions[1].SessionID)
	}
}

func TestSessionStoreDeleteChecksOwnership(t *testing.T) {
	s := NewSessionStore()
	newStoredSession(t, s, "s1", "jane@example.com")

	if err := s.DeleteSession("other@example.com", "s1"); err != ErrSessionNotFound {
		t.Fatalf("expected ErrSessionNotFound for foreign delete, got %v", err)
	}
	if err := s.DeleteSession("jane@example.com", "s1"); err != nil {
		t.Fatalf("DeleteSession err: %v", err)
	}
	if _, err := s.GetSession("s1"); err != ErrSessionNotFound {
		t.Fatalf("expected session gone, got %v", err)
	}
}

func TestSessionStoreAppendMessageKeepsOrder(t *testing.T) {
	s := NewSessionStore()
	newStoredSession(t, s, "s1", "jane@example.com")

	s.AppendMessage("s1", model.RoleUser, "first")
	s.AppendMessage("s1", model.RoleAssistant, "second")

	messages, err := s.GetMessagesBySessionID("jane@example.com", "s1")
	if err != nil {
		t.Fatalf("GetMessagesBySessionID err: %v", err)
	}
	if len(messages) != 2 || messages[0].Content != "first" || messages[1].Content != "second" {
		t.Fatalf("unexpected messages: %+v", messages)
	}
}

func TestSessionStoreMessagesChecksOwnership(t *testing.T) {
	s := NewSessionStore()
	newStoredSession(t, s, "s1", "jane@example.com")
	s.AppendMessage("s1", model.RoleUser, "first")

	if _, err := s.GetMessagesBySessionID("other@example.com", "s1"); err != ErrSessionNotFound {
		t.Fatalf("foreign read should fail, got %v", err)
	}
}

func TestSessionStoreGetReturnsSnapshot(t *testing.T) {
	s := NewSessionStore()
	newStoredSession(t, s, "s1", "jane@example.com")

	before, err := s.GetSession("s1")
	if err != nil {
		t.Fatalf("GetSession err: %v", err)
	}

	s.SetTitle("s1", "Updated Title")
	s.AppendMessage("s1", model.RoleAssistant, "hello")

	// 旧快照不随存储更新，改写快照也不回写存储
	if before.Title != model.DefaultSessionTitle || len(before.Messages) != 0 {
		t.Fatalf("snapshot mutated by store writes: %+v", before)
	}
	before.Title = "hijacked"
	before.Messages = append(before.Messages, model.Message{Content: "rogue"})

	after, _ := s.GetSession("s1")
	if after.Title != "Updated Title" || len(after.Messages) != 1 {
		t.Fatalf("store mutated through snapshot: %+v", after)
	}
}

func TestSessionStoreConcurrentTitleWrites(t *testing.T) {
	s := NewSessionStore()
	newStoredSession(t, s, "s1", "jane@example.com")

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			s.SetTitle("s1", "Generated Title")
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			sessions, err := s.GetSessionsByEmail("jane@example.com")
			if err != nil || len(sessions) != 1 {
				t.Errorf("GetSessionsByEmail: %v (%d sessions)", err, len(sessions))
				return
			}
			_ = sessions[0].Title
		}
	}()
	wg.Wait()
}

func TestSessionStoreFlags(t *testing.T) {
	s := NewSessionStore()
	newStoredSession(t, s, "s1", "jane@example.com")

	s.SetAnalysisRequested("s1", true)
	s.SetAnalysisCompleted("s1", true)
	s.SetJobPreferences("s1", "entry-level")

	session, err := s.GetSession("s1")
	if err != nil {
		t.Fatalf("GetSession err: %v", err)
	}
	if !session.AnalysisRequested || !session.AnalysisCompleted {
		t.Fatalf("flags not set: %+v", session)
	}
	if session.JobPreferences != "entry-level" {
		t.Fatalf("unexpected preferences: %q", session.JobPreferences)
	}

	s.SetAnalysisRequested("s1", false)
	session, _ = s.GetSession("s1")
	if session.AnalysisRequested {
		t.Fatal("flag should be cleared")
	}
}

func TestSessionStoreUpdateTitle(t *testing.T) {
	s := NewSessionStore()
	newStoredSession(t, s, "s1", "jane@example.com")

	if err := s.UpdateSessionTitle("other@example.com", "s1", "nope"); err != ErrSessionNotFound {
		t.Fatalf("foreign rename should fail, got %v", err)
	}
	if err := s.UpdateSessionTitle("jane@example.com", "s1", "My Review"); err != nil {
		t.Fatalf("UpdateSessionTitle err: %v", err)
	}

	session, _ := s.GetSession("s1")
	if session.Title != "My Review" {
		t.Fatalf("unexpected title: %q", session.Title)
	}
}
