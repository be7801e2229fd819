package generic

import (
	"fmt"
	"net/http"
	"os"

	"github.com/ankra-dev/wherewhen/internal/tools"
	"github.com/baalimago/go_away_boilerplate/pkg/misc"
)

// Setup the stream completer by reading the API key from apiKeyEnv and
// pointing it at the given chat completions url. The debugEnv variable
// toggles verbose request and token printouts.
func (s *StreamCompleter) Setup(apiKeyEnv, url, debugEnv string) error {
	apiKey := os.Getenv(apiKeyEnv)
	if apiKey == "" {
		return fmt.Errorf("environment variable '%v' not set", apiKeyEnv)
	}
	s.apiKey = apiKey
	s.url = url
	s.client = &http.Client{}
	if misc.Truthy(os.Getenv(debugEnv)) {
		s.debug = true
	}
	return nil
}

// InternalRegisterTool registers a tool to the StreamCompleter. The
// internal prefix is to dodge name collisions with vendor level
// RegisterTool functions which embed the StreamCompleter.
func (s *StreamCompleter) InternalRegisterTool(tool tools.LLMTool) {
	s.tools = append(s.tools, ToolSuper{
		Type:     "function",
		Function: convertToGenericTool(tool.Specification()),
	})
}

func convertToGenericTool(spec tools.Specification) Tool {
	inputs := tools.InputSchema{Type: "object"}
	if spec.Inputs != nil {
		inputs = *spec.Inputs
	}
	return Tool{
		Name:        spec.Name,
		Description: spec.Description,
		Inputs:      inputs,
	}
}
