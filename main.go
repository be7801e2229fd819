package main

import (
	"context"
	"fmt"
	"os"

	"github.com/ankra-dev/wherewhen/internal/tools"
	"github.com/ankra-dev/wherewhen/internal/trace"
	"github.com/ankra-dev/wherewhen/pkg/agent"
	"github.com/baalimago/go_away_boilerplate/pkg/ancli"
	"github.com/baalimago/go_away_boilerplate/pkg/misc"
	"github.com/baalimago/go_away_boilerplate/pkg/shutdown"
)

const usage = `wherewhen - ask about the weather, local time and directions

Prerequisites:
  - Set the GOOGLE_MAPS_API_KEY environment variable to a Google Maps Platform API key
  - Set the GEMINI_API_KEY environment variable to your Gemini API key
  - Install npx, used to launch the Google Maps MCP server
  - (Optional) Set the NO_COLOR environment variable to disable ansi color output

Usage: wherewhen [flags] <question>

Flags:
  -cm, -chat-model string    Set the chat model to use. (default '%v')
  -r, -raw bool              Set to true to print raw output (no tool call lines). (default %v)
  -mt, -max-tool-calls int   Set the maximum amount of tool calls per question. (default %v)
  -t, -trace bool            Set to true to print trace lines around agent, model and tool calls. (default %v)

Examples:
  - wherewhen "What's the weather like in Tokyo?"
  - wherewhen "What time is it in new york?"
  - wherewhen -raw "How do I get from London Bridge to Big Ben?"
`

func main() {
	ancli.SetupSlog()
	conf, question := setup()

	mapsKey, err := validateMapsKey(os.Getenv)
	if err != nil {
		ancli.PrintErr(fmt.Sprintf("%v\n", err))
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	go func() { shutdown.Monitor(cancel) }()

	var tracer trace.Tracer = trace.Nop{}
	if conf.trace {
		tracer = trace.NewLog()
	}
	a := agent.New(
		agent.WithModel(conf.model),
		agent.WithRaw(conf.raw),
		agent.WithMaxToolCalls(conf.maxToolCalls),
		agent.WithTracer(tracer),
		agent.WithMcpServers([]tools.McpServer{googleMapsServer(mapsKey)}),
	)
	if err := a.Setup(ctx); err != nil {
		ancli.PrintErr(fmt.Sprintf("failed to setup agent: %v\n", err))
		os.Exit(1)
	}

	if _, err := a.Run(ctx, question); err != nil {
		ancli.PrintErr(fmt.Sprintf("failed to run: %v\n", err))
		os.Exit(1)
	}
	cancel()
	if misc.Truthy(os.Getenv("DEBUG")) {
		ancli.PrintOK("things seems to have worked out. Bye bye!\n")
	}
}
