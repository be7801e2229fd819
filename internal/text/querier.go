package text

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ankra-dev/wherewhen/internal/models"
	"github.com/ankra-dev/wherewhen/internal/tools"
	"github.com/ankra-dev/wherewhen/internal/trace"
)

const (
	defaultMaxToolCalls        = 10
	defaultToolOutputRuneLimit = 100000
)

// Querier drives a conversation against some StreamCompleter, resolving
// tool calls until the model produces a plain text reply.
type Querier[C models.StreamCompleter] struct {
	Model C

	chat                models.Chat
	fullMsg             string
	toolCall            *tools.Call
	amToolCalls         int
	maxToolCalls        int
	toolOutputRuneLimit int
	raw                 bool
	out                 io.Writer
	tracer              trace.Tracer
}

// NewQuerier for the given completer. Calls Setup on the model, meaning
// the required API key environment variables need to be set beforehand.
func NewQuerier[C models.StreamCompleter](ctx context.Context, conf Configurations, model C) (Querier[C], error) {
	if err := model.Setup(); err != nil {
		return Querier[C]{}, fmt.Errorf("failed to setup model: %w", err)
	}
	q := Querier[C]{
		Model:               model,
		maxToolCalls:        defaultMaxToolCalls,
		toolOutputRuneLimit: defaultToolOutputRuneLimit,
		raw:                 conf.Raw,
		out:                 conf.Out,
		tracer:              conf.Tracer,
	}
	if conf.MaxToolCalls != nil {
		q.maxToolCalls = *conf.MaxToolCalls
	}
	if conf.ToolOutputRuneLimit > 0 {
		q.toolOutputRuneLimit = conf.ToolOutputRuneLimit
	}
	if q.out == nil {
		q.out = os.Stdout
	}
	if q.tracer == nil {
		q.tracer = trace.Nop{}
	}
	return q, nil
}

// Query performs one completions round, streaming tokens to the output
// writer. A pending tool call, if any, is stored for TextQuery to handle.
func (q *Querier[C]) Query(ctx context.Context) error {
	q.tracer.BeforeModel(q.chat)
	completionsChan, err := q.Model.StreamCompletions(ctx, q.chat)
	if err != nil {
		q.tracer.AfterModel("", err)
		return fmt.Errorf("failed to stream completions: %w", err)
	}
	for {
		select {
		case <-ctx.Done():
			q.tracer.AfterModel(q.fullMsg, ctx.Err())
			return ctx.Err()
		case completion, ok := <-completionsChan:
			if !ok {
				q.tracer.AfterModel(q.fullMsg, nil)
				return nil
			}
			if err := q.handleCompletion(completion); err != nil {
				q.tracer.AfterModel(q.fullMsg, err)
				return err
			}
		}
	}
}

func (q *Querier[C]) handleCompletion(completion models.CompletionEvent) error {
	switch cast := completion.(type) {
	case string:
		q.fullMsg += cast
		fmt.Fprint(q.out, cast)
	case tools.Call:
		q.toolCall = &cast
	case error:
		// The streams end with EOF, and cancellations are user intent,
		// neither is a failure
		if errors.Is(cast, context.Canceled) || errors.Is(cast, io.EOF) {
			return nil
		}
		return fmt.Errorf("completion stream error: %w", cast)
	case models.NoopEvent, nil:
	default:
		return fmt.Errorf("unknown completion event type: %T", cast)
	}
	return nil
}

// TextQuery with the given chat. Tool calls requested by the model are
// invoked and fed back until the model replies with text only, which is
// appended to the returned chat as a system message.
func (q *Querier[C]) TextQuery(ctx context.Context, chat models.Chat) (models.Chat, error) {
	q.chat = chat
	for {
		q.fullMsg = ""
		q.toolCall = nil
		if err := q.Query(ctx); err != nil {
			return q.chat, fmt.Errorf("failed to query: %w", err)
		}
		if q.toolCall == nil {
			fmt.Fprintln(q.out)
			q.chat.Messages = append(q.chat.Messages, models.Message{
				Role:    "system",
				Content: q.fullMsg,
			})
			return q.chat, nil
		}
		q.handleToolCall(*q.toolCall)
	}
}
