package agent

import (
	"context"
	"fmt"
	"time"

	"github.com/ankra-dev/wherewhen/internal/models"
	"github.com/google/uuid"
)

// Run asks the agent a single question and returns its final reply.
// Tool call rounds happen inside the querier, Run only sees the result.
func (a *Agent) Run(ctx context.Context, question string) (string, error) {
	if a.querier == nil {
		return "", fmt.Errorf("agent '%v' has not been Setup", a.name)
	}
	a.tracer.BeforeAgent(a.name, question)
	c := models.Chat{
		Created: time.Now(),
		ID:      fmt.Sprintf("%v_%v", a.name, uuid.NewString()),
		Messages: []models.Message{
			{
				Role:    "system",
				Content: a.systemPrompt,
			},
			{
				Role:    "user",
				Content: question,
			},
		},
	}
	c, err := a.querier.TextQuery(ctx, c)
	if err != nil {
		a.tracer.AfterAgent(a.name, "", err)
		return "", fmt.Errorf("failed to TextQuery: %w", err)
	}
	msg, _, err := c.LastOfRole("system")
	if err != nil {
		a.tracer.AfterAgent(a.name, "", err)
		return "", fmt.Errorf("failed to get last message of system role: %w", err)
	}
	a.tracer.AfterAgent(a.name, msg.Content, nil)
	return msg.Content, nil
}

// Start asks the same question on an interval until the context is done.
// Useful for keeping an eye on a city without re-running the binary.
func (a *Agent) Start(ctx context.Context, question string, interval time.Duration) error {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if _, err := a.Run(ctx, question); err != nil {
				return err
			}
		}
	}
}
