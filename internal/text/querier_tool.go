package text

import (
	"fmt"
	"unicode/utf8"

	"github.com/ankra-dev/wherewhen/internal/models"
	"github.com/ankra-dev/wherewhen/internal/tools"
	"github.com/baalimago/go_away_boilerplate/pkg/ancli"
)

// handleToolCall invokes the tool and appends both the assistant's call
// and the tool's output to the chat, so that the next completions round
// sees the full exchange.
func (q *Querier[C]) handleToolCall(call tools.Call) {
	q.tracer.BeforeTool(call)
	call.Patch()
	if !q.raw {
		fmt.Fprintf(q.out, "\n%v\n", ancli.ColoredMessage(ancli.CYAN, call.PrettyPrint()))
	}
	q.chat.Messages = append(q.chat.Messages, models.Message{
		Role:      "assistant",
		Content:   call.PrettyPrint(),
		ToolCalls: []tools.Call{call},
	})

	var out string
	if q.amToolCalls >= q.maxToolCalls {
		out = "ERROR: No more tool calls allowed, maximum reached. Please summarize findings."
	} else {
		out = fmt.Sprintf("[ Tool calls remaining: %v ] %v", q.maxToolCalls-q.amToolCalls, tools.Invoke(call))
		q.amToolCalls++
	}
	out = limitToolOutput(out, q.toolOutputRuneLimit)
	// Some vendors reject empty tool messages
	if out == "" {
		out = "<EMPTY-RESPONSE>"
	}
	q.tracer.AfterTool(call, out, nil)
	q.chat.Messages = append(q.chat.Messages, models.Message{
		Role:       "tool",
		Content:    out,
		ToolCallID: call.ID,
	})
}

func limitToolOutput(out string, runeLimit int) string {
	if runeLimit <= 0 || utf8.RuneCountInString(out) <= runeLimit {
		return out
	}
	runes := []rune(out)
	return fmt.Sprintf("%v... [truncated at %v runes]", string(runes[:runeLimit]), runeLimit)
}
