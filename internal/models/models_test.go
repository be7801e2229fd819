package models

import (
	"context"
	"testing"
)

func TestChatMessageHelpers(t *testing.T) {
	c := Chat{Messages: []Message{
		{Role: "system", Content: "instructions"},
		{Role: "user", Content: "What's the weather in Tokyo?"},
		{Role: "system", Content: "reply"},
	}}

	first, err := c.FirstSystemMessage()
	if err != nil {
		t.Fatalf("FirstSystemMessage: %v", err)
	}
	if first.Content != "instructions" {
		t.Errorf("got %q", first.Content)
	}

	usr, err := c.FirstUserMessage()
	if err != nil {
		t.Fatalf("FirstUserMessage: %v", err)
	}
	if usr.Content != "What's the weather in Tokyo?" {
		t.Errorf("got %q", usr.Content)
	}

	last, idx, err := c.LastOfRole("system")
	if err != nil {
		t.Fatalf("LastOfRole: %v", err)
	}
	if last.Content != "reply" || idx != 2 {
		t.Errorf("got %q at %v", last.Content, idx)
	}
}

func TestChatMessageHelpers_Empty(t *testing.T) {
	c := Chat{}
	if _, err := c.FirstSystemMessage(); err == nil {
		t.Error("expected error on empty chat")
	}
	if _, err := c.FirstUserMessage(); err == nil {
		t.Error("expected error on empty chat")
	}
	if _, _, err := c.LastOfRole("tool"); err == nil {
		t.Error("expected error on empty chat")
	}
}

type mockChatQuerier struct{}

func (m *mockChatQuerier) Query(ctx context.Context) error {
	<-ctx.Done()
	return ctx.Err()
}

func (m *mockChatQuerier) TextQuery(ctx context.Context, chat Chat) (Chat, error) {
	<-ctx.Done()
	return Chat{}, ctx.Err()
}

func TestChatQuerier_Test(t *testing.T) {
	// Should pass for a compliant ChatQuerier
	ChatQuerier_Test(t, &mockChatQuerier{})
}
