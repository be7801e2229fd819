package gemini

import (
	"fmt"
	"os"

	"github.com/ankra-dev/wherewhen/internal/text/generic"
	"github.com/ankra-dev/wherewhen/internal/tools"
)

// ChatURL is Gemini's OpenAI compatibility endpoint.
const ChatURL = "https://generativelanguage.googleapis.com/v1beta/openai/chat/completions"

var Default = Gemini{
	Model:       "gemini-1.5-flash",
	Temperature: 1.0,
	TopP:        1.0,
	URL:         ChatURL,
}

type Gemini struct {
	generic.StreamCompleter
	Model       string `json:"model"`
	MaxTokens   *int   `json:"max_tokens"` // Use a pointer to allow null value
	Temperature float64
	TopP        float64
	URL         string `json:"url"`
}

func (g *Gemini) Setup() error {
	if os.Getenv("GEMINI_API_KEY") == "" {
		// Local OpenAI-compatible proxies rarely check the key
		os.Setenv("GEMINI_API_KEY", "gemini")
	}
	if g.URL == "" {
		g.URL = ChatURL
	}
	err := g.StreamCompleter.Setup("GEMINI_API_KEY", g.URL, "GEMINI_DEBUG")
	if err != nil {
		return fmt.Errorf("failed to setup stream completer: %w", err)
	}
	g.StreamCompleter.Model = g.Model
	g.StreamCompleter.MaxTokens = g.MaxTokens
	g.StreamCompleter.Temperature = &g.Temperature
	g.StreamCompleter.TopP = &g.TopP
	toolChoice := "auto"
	g.ToolChoice = &toolChoice
	return nil
}

func (g *Gemini) RegisterTool(tool tools.LLMTool) {
	g.InternalRegisterTool(tool)
}
