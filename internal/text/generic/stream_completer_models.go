package generic

import (
	"net/http"

	"github.com/ankra-dev/wherewhen/internal/models"
	"github.com/ankra-dev/wherewhen/internal/tools"
)

// StreamCompleter follows the OpenAI-compatible chat completions model,
// which is also what Gemini's compatibility endpoint speaks.
type StreamCompleter struct {
	Model            string
	FrequencyPenalty *float64
	MaxTokens        *int
	PresencePenalty  *float64
	Temperature      *float64
	TopP             *float64
	ToolChoice       *string
	url              string
	apiKey           string
	client           *http.Client
	tools            []ToolSuper
	toolsCallName    string
	// Arguments are streamed as stringified json, chunk by chunk
	toolsCallArgsString string
	toolsCallID         string
	debug               bool
}

type ToolSuper struct {
	Type     string `json:"type"`
	Function Tool   `json:"function"`
}

type Tool struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Inputs      tools.InputSchema `json:"parameters"`
}

type chatCompletionChunk struct {
	ID      string   `json:"id"`
	Object  string   `json:"object"`
	Created int      `json:"created"`
	Model   string   `json:"model"`
	Choices []Choice `json:"choices"`
}

type Choice struct {
	Index        int    `json:"index"`
	Delta        Delta  `json:"delta"`
	FinishReason string `json:"finish_reason"`
}

type Delta struct {
	Content   any         `json:"content"`
	Role      string      `json:"role"`
	ToolCalls []ToolsCall `json:"tool_calls"`
}

type ToolsCall struct {
	Function Func   `json:"function"`
	ID       string `json:"id"`
	Index    int    `json:"index"`
	Type     string `json:"type"`
}

type Func struct {
	Arguments string `json:"arguments"`
	Name      string `json:"name"`
}

type req struct {
	Model            string           `json:"model,omitempty"`
	Messages         []models.Message `json:"messages,omitempty"`
	Stream           bool             `json:"stream,omitempty"`
	FrequencyPenalty *float64         `json:"frequency_penalty,omitempty"`
	MaxTokens        *int             `json:"max_tokens,omitempty"`
	PresencePenalty  *float64         `json:"presence_penalty,omitempty"`
	Temperature      *float64         `json:"temperature,omitempty"`
	TopP             *float64         `json:"top_p,omitempty"`
	ToolChoice       *string          `json:"tool_choice,omitempty"`
	Tools            []ToolSuper      `json:"tools,omitempty"`
}
