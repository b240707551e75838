package http

import (
	"context"
	"net/http"
	"testing"

	"creditwise-backend/internal/usecase/chat"
)

type memChatStore struct{ messages map[string][]chat.Message }

func (s *memChatStore) Append(ctx context.Context, sessionID string, m chat.Message) error {
	if s.messages == nil {
		s.messages = make(map[string][]chat.Message)
	}
	s.messages[sessionID] = append(s.messages[sessionID], m)
	return nil
}

func (s *memChatStore) List(ctx context.Context, sessionID string) ([]chat.Message, error) {
	return s.messages[sessionID], nil
}

func TestChatMessage_GeneratesSessionID(t *testing.T) {
	store := &memChatStore{}
	h := NewChatHandler(chat.NewUsecase(store))
	c, rec := newTestContext(t, http.MethodPost, "/api/chatbot/message", `{"message": "hello"}`)

	if err := h.Message(c); err != nil {
		t.Fatalf("handler err: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var resp chat.ReplyDTO
	decodeBody(t, rec, &resp)
	if len(resp.SessionID) != 32 {
		t.Fatalf("session id %q, want generated 32-char id", resp.SessionID)
	}
	if len(store.messages[resp.SessionID]) != 2 {
		t.Fatalf("stored %d messages, want 2", len(store.messages[resp.SessionID]))
	}
}

func TestChatMessage_RequiresMessage(t *testing.T) {
	h := NewChatHandler(chat.NewUsecase(&memChatStore{}))
	c, rec := newTestContext(t, http.MethodPost, "/api/chatbot/message", `{"session_id": "s1"}`)

	if err := h.Message(c); err != nil {
		t.Fatalf("handler err: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if er := decodeErr(t, rec); !containsFieldMsg(er.Details, "Message", "is required") {
		t.Fatalf("details = %+v", er.Details)
	}
}

func TestChatHistory_RequiresSessionParam(t *testing.T) {
	h := NewChatHandler(chat.NewUsecase(&memChatStore{}))
	c, rec := newTestContext(t, http.MethodGet, "/api/chatbot/history", "")

	if err := h.History(c); err != nil {
		t.Fatalf("handler err: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if er := decodeErr(t, rec); er.Code != "MISSING_SESSION" {
		t.Fatalf("code = %s, want MISSING_SESSION", er.Code)
	}
}

func TestChatHistory_ReturnsSessionMessages(t *testing.T) {
	store := &memChatStore{}
	uc := chat.NewUsecase(store)
	if _, err := uc.Process(context.Background(), "s1", "hello"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	h := NewChatHandler(uc)
	c, rec := newTestContext(t, http.MethodGet, "/api/chatbot/history?session_id=s1", "")

	if err := h.History(c); err != nil {
		t.Fatalf("handler err: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		SessionID string         `json:"session_id"`
		Messages  []chat.Message `json:"messages"`
	}
	decodeBody(t, rec, &resp)
	if resp.SessionID != "s1" || len(resp.Messages) != 2 {
		t.Fatalf("resp = %+v", resp)
	}
}
