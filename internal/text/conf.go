package text

import (
	"context"
	"fmt"
	"io"

	"github.com/ankra-dev/wherewhen/internal/models"
	"github.com/ankra-dev/wherewhen/internal/tools"
	"github.com/ankra-dev/wherewhen/internal/trace"
	"github.com/ankra-dev/wherewhen/internal/vendors/gemini"
)

// Configurations for the text querier. Zero values fall back to sane
// defaults in CreateTextQuerier.
type Configurations struct {
	// Model to converse with, on the form gemini-<version>
	Model string
	// Raw omits the pretty-printed tool call lines from the output
	Raw bool
	// MaxToolCalls before the model is told to wrap up. Nil means default.
	MaxToolCalls *int
	// ToolOutputRuneLimit truncates large tool outputs before they are
	// added to the conversation. Zero means default.
	ToolOutputRuneLimit int
	Out                 io.Writer
	Tracer              trace.Tracer
}

// CreateTextQuerier by checking the model the configuration points at,
// setting up the vendor completer and registering every tool currently
// in the registry on it.
func CreateTextQuerier(ctx context.Context, conf Configurations) (models.ChatQuerier, error) {
	model := gemini.Default
	if conf.Model != "" {
		model.Model = conf.Model
	}
	querier, err := NewQuerier(ctx, conf, &model)
	if err != nil {
		return nil, fmt.Errorf("failed to create text querier: %w", err)
	}
	for _, tool := range tools.Registry.All() {
		model.RegisterTool(tool)
	}
	return &querier, nil
}
