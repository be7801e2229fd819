package generic

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/ankra-dev/wherewhen/internal/models"
	"github.com/ankra-dev/wherewhen/internal/tools"
	"github.com/baalimago/go_away_boilerplate/pkg/ancli"
	"github.com/baalimago/go_away_boilerplate/pkg/debug"
	"github.com/baalimago/go_away_boilerplate/pkg/misc"
)

var dataPrefix = []byte("data: ")

// StreamCompletions taking the chat as prompt conversation. Returns a
// channel of completion events from the chat model.
func (s *StreamCompleter) StreamCompletions(ctx context.Context, chat models.Chat) (chan models.CompletionEvent, error) {
	req, err := s.createRequest(ctx, chat)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	res, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	if res.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(res.Body)
		res.Body.Close()
		return nil, fmt.Errorf("unexpected status code: %v, body: %v", res.Status, string(body))
	}
	return s.handleStreamResponse(ctx, res), nil
}

func (s *StreamCompleter) createRequest(ctx context.Context, chat models.Chat) (*http.Request, error) {
	reqData := req{
		Model:            s.Model,
		FrequencyPenalty: s.FrequencyPenalty,
		MaxTokens:        s.MaxTokens,
		PresencePenalty:  s.PresencePenalty,
		Temperature:      s.Temperature,
		TopP:             s.TopP,
		Messages:         chat.Messages,
		Stream:           true,
	}
	if len(s.tools) > 0 {
		reqData.Tools = s.tools
		reqData.ToolChoice = s.ToolChoice
	}
	if s.debug {
		ancli.PrintOK(fmt.Sprintf("generic streamcompleter request: %v\n", debug.IndentedJsonFmt(reqData)))
	}
	jsonData, err := json.Marshal(reqData)
	if err != nil {
		return nil, fmt.Errorf("failed to encode JSON: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", s.url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %v", s.apiKey))
	req.Header.Set("Accept", "text/event-stream")
	req.Header.Set("Connection", "keep-alive")
	return req, nil
}

func (s *StreamCompleter) handleStreamResponse(ctx context.Context, res *http.Response) chan models.CompletionEvent {
	outChan := make(chan models.CompletionEvent)
	go func() {
		br := bufio.NewReader(res.Body)
		defer func() {
			res.Body.Close()
			close(outChan)
		}()
		for {
			if ctx.Err() != nil {
				return
			}
			token, err := br.ReadBytes('\n')
			if err != nil {
				if !errors.Is(err, io.EOF) {
					select {
					case outChan <- fmt.Errorf("failed to read line: %w", err):
					case <-ctx.Done():
					}
				}
				return
			}
			select {
			case outChan <- s.handleStreamChunk(token):
			case <-ctx.Done():
				return
			}
		}
	}()

	return outChan
}

func (s *StreamCompleter) handleStreamChunk(token []byte) models.CompletionEvent {
	token = bytes.TrimPrefix(token, dataPrefix)
	token = bytes.TrimSpace(token)
	if len(token) == 0 || string(token) == "[DONE]" {
		return models.NoopEvent{}
	}

	if s.debug {
		ancli.PrintOK(fmt.Sprintf("token: %+v\n", string(token)))
	}
	var chunk chatCompletionChunk
	if err := json.Unmarshal(token, &chunk); err != nil {
		// Expect some failing unmarshalls, which seems to be fine
		if misc.Truthy(os.Getenv("DEBUG")) {
			ancli.PrintWarn(fmt.Sprintf("failed to unmarshal token: %v, err: %v\n", string(token), err))
		}
		return models.NoopEvent{}
	}
	if len(chunk.Choices) == 0 {
		return models.NoopEvent{}
	}
	return s.handleChoice(chunk.Choices[0])
}

func (s *StreamCompleter) handleChoice(choice Choice) models.CompletionEvent {
	if len(choice.Delta.ToolCalls) > 0 {
		tc := choice.Delta.ToolCalls[0]
		// Function name is only shown in the first chunk of a call
		if tc.Function.Name != "" {
			s.toolsCallName = tc.Function.Name
			s.toolsCallID = tc.ID
		}
		s.toolsCallArgsString += tc.Function.Arguments
	}

	if choice.FinishReason == "tool_calls" {
		return s.doToolsCall()
	}

	// Some vendors omit the finish reason, attempt to emit the call as
	// soon as the argument string forms valid json
	if s.toolsCallName != "" && s.toolsCallArgsString != "" {
		var probe tools.Input
		if err := json.Unmarshal([]byte(s.toolsCallArgsString), &probe); err == nil {
			return s.doToolsCall()
		}
	}

	if content, ok := choice.Delta.Content.(string); ok && content != "" {
		return content
	}
	return models.NoopEvent{}
}

// doToolsCall by parsing the accumulated argument string
func (s *StreamCompleter) doToolsCall() models.CompletionEvent {
	defer func() {
		// Reset construction strings to prepare for consecutive calls
		s.toolsCallName = ""
		s.toolsCallArgsString = ""
		s.toolsCallID = ""
	}()
	if s.toolsCallArgsString == "" {
		s.toolsCallArgsString = "{}"
	}
	var input tools.Input
	if err := json.Unmarshal([]byte(s.toolsCallArgsString), &input); err != nil {
		return fmt.Errorf("failed to unmarshal argument string: %w, argsString: %v", err, s.toolsCallArgsString)
	}

	spec := tools.ToolFromName(s.toolsCallName)
	spec.Arguments = s.toolsCallArgsString
	spec.Inputs = &tools.InputSchema{}

	return tools.Call{
		ID:       s.toolsCallID,
		Name:     s.toolsCallName,
		Inputs:   &input,
		Type:     "function",
		Function: spec,
	}
}
