package models

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ankra-dev/wherewhen/internal/tools"
)

// Querier performs a single blocking query against a model.
type Querier interface {
	Query(ctx context.Context) error
}

// ChatQuerier queries a model with a chat, returning the chat extended
// with the model's reply.
type ChatQuerier interface {
	Querier
	TextQuery(context.Context, Chat) (Chat, error)
}

// StreamCompleter streams completion events for a chat. The channel is
// closed once the model is done talking.
type StreamCompleter interface {
	Setup() error
	StreamCompletions(ctx context.Context, chat Chat) (chan CompletionEvent, error)
}

// CompletionEvent is one of: string (a token), tools.Call (the model wants
// a tool invoked), error, or NoopEvent.
type CompletionEvent any

// NoopEvent is a CompletionEvent which should be ignored.
type NoopEvent struct{}

type Chat struct {
	Created  time.Time `json:"created,omitempty"`
	ID       string    `json:"id"`
	Messages []Message `json:"messages"`
}

type Message struct {
	Role       string       `json:"role"`
	Content    string       `json:"content,omitempty"`
	ToolCalls  []tools.Call `json:"tool_calls,omitempty"`
	ToolCallID string       `json:"tool_call_id,omitempty"`
}

// FirstSystemMessage returns the first encountered Message with role 'system'
func (c *Chat) FirstSystemMessage() (Message, error) {
	for _, msg := range c.Messages {
		if msg.Role == "system" {
			return msg, nil
		}
	}
	return Message{}, errors.New("failed to find any system message")
}

func (c *Chat) FirstUserMessage() (Message, error) {
	for _, msg := range c.Messages {
		if msg.Role == "user" {
			return msg, nil
		}
	}
	return Message{}, errors.New("failed to find any user message")
}

func (c *Chat) LastOfRole(role string) (Message, int, error) {
	for i := len(c.Messages) - 1; i >= 0; i-- {
		msg := c.Messages[i]
		if msg.Role == role {
			return msg, i, nil
		}
	}
	return Message{}, -1, fmt.Errorf("failed to find any %v message", role)
}
