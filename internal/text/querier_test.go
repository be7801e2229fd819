package text

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/ankra-dev/wherewhen/internal/models"
	"github.com/ankra-dev/wherewhen/internal/tools"
	"github.com/baalimago/go_away_boilerplate/pkg/testboil"
)

// mockCompleter replays one slice of events per StreamCompletions call.
type mockCompleter struct {
	rounds   [][]models.CompletionEvent
	round    int
	setupErr error
}

func (m *mockCompleter) Setup() error { return m.setupErr }

func (m *mockCompleter) StreamCompletions(ctx context.Context, chat models.Chat) (chan models.CompletionEvent, error) {
	events := []models.CompletionEvent{}
	if m.round < len(m.rounds) {
		events = m.rounds[m.round]
	}
	m.round++
	out := make(chan models.CompletionEvent)
	go func() {
		defer close(out)
		for _, ev := range events {
			select {
			case out <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}

func newTestQuerier(t *testing.T, m *mockCompleter) Querier[*mockCompleter] {
	t.Helper()
	q, err := NewQuerier(context.Background(), Configurations{Out: &strings.Builder{}}, m)
	if err != nil {
		t.Fatalf("NewQuerier: %v", err)
	}
	return q
}

func TestTextQuery_PlainReply(t *testing.T) {
	m := &mockCompleter{rounds: [][]models.CompletionEvent{
		{"It's ", "cloudy in London."},
	}}
	q := newTestQuerier(t, m)

	chat, err := q.TextQuery(context.Background(), models.Chat{Messages: []models.Message{
		{Role: "user", Content: "weather in london?"},
	}})
	if err != nil {
		t.Fatalf("TextQuery: %v", err)
	}
	reply, _, err := chat.LastOfRole("system")
	if err != nil {
		t.Fatalf("no system reply: %v", err)
	}
	testboil.FailTestIfDiff(t, reply.Content, "It's cloudy in London.")
}

func TestTextQuery_ToolCallRound(t *testing.T) {
	orig := tools.Registry
	tools.Registry = tools.NewRegistry()
	t.Cleanup(func() { tools.Registry = orig })
	tools.Registry.Set("echo", echoTool{})

	call := tools.Call{ID: "call_0", Name: "echo", Inputs: &tools.Input{"msg": "hi"}}
	m := &mockCompleter{rounds: [][]models.CompletionEvent{
		{call},
		{"done"},
	}}
	q := newTestQuerier(t, m)

	chat, err := q.TextQuery(context.Background(), models.Chat{Messages: []models.Message{
		{Role: "user", Content: "run the tool"},
	}})
	if err != nil {
		t.Fatalf("TextQuery: %v", err)
	}

	toolMsg, _, err := chat.LastOfRole("tool")
	if err != nil {
		t.Fatalf("no tool message: %v", err)
	}
	testboil.AssertStringContains(t, toolMsg.Content, "echoed: hi")
	if toolMsg.ToolCallID != "call_0" {
		t.Errorf("tool call id got %q", toolMsg.ToolCallID)
	}

	assistantMsg, _, err := chat.LastOfRole("assistant")
	if err != nil {
		t.Fatalf("no assistant message: %v", err)
	}
	if len(assistantMsg.ToolCalls) != 1 {
		t.Errorf("expected one tool call, got %v", assistantMsg.ToolCalls)
	}

	reply, _, err := chat.LastOfRole("system")
	if err != nil {
		t.Fatalf("no system reply: %v", err)
	}
	testboil.FailTestIfDiff(t, reply.Content, "done")
}

func TestTextQuery_StreamError(t *testing.T) {
	m := &mockCompleter{rounds: [][]models.CompletionEvent{
		{"partial", context.DeadlineExceeded},
	}}
	q := newTestQuerier(t, m)

	if _, err := q.TextQuery(context.Background(), models.Chat{}); err == nil {
		t.Fatal("expected error from stream")
	}
}

func TestNewQuerier_SetupError(t *testing.T) {
	m := &mockCompleter{setupErr: context.DeadlineExceeded}
	if _, err := NewQuerier(context.Background(), Configurations{}, m); err == nil {
		t.Fatal("expected setup error to propagate")
	}
}

func TestQuery_ReturnsOnContextCancel(t *testing.T) {
	testboil.ReturnsOnContextCancel(t, func(ctx context.Context) {
		m := &blockingCompleter{}
		q, err := NewQuerier(ctx, Configurations{Out: &strings.Builder{}}, m)
		if err != nil {
			t.Errorf("NewQuerier: %v", err)
			return
		}
		q.Query(ctx)
	}, time.Second)
}

type echoTool struct{}

func (echoTool) Call(in tools.Input) (string, error) {
	msg, _ := in["msg"].(string)
	return "echoed: " + msg, nil
}

func (echoTool) Specification() tools.Specification {
	return tools.Specification{Name: "echo"}
}

// blockingCompleter never sends and never closes, simulating a hung model
type blockingCompleter struct{}

func (b *blockingCompleter) Setup() error { return nil }

func (b *blockingCompleter) StreamCompletions(ctx context.Context, chat models.Chat) (chan models.CompletionEvent, error) {
	return make(chan models.CompletionEvent), nil
}
