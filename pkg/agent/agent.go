package agent

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/ankra-dev/wherewhen/internal/cityfacts"
	"github.com/ankra-dev/wherewhen/internal/models"
	"github.com/ankra-dev/wherewhen/internal/text"
	"github.com/ankra-dev/wherewhen/internal/tools"
	"github.com/ankra-dev/wherewhen/internal/tools/mcp"
	"github.com/ankra-dev/wherewhen/internal/trace"
	"github.com/baalimago/go_away_boilerplate/pkg/ancli"
)

type Agent struct {
	name         string
	model        string
	systemPrompt string
	mcpServers   []tools.McpServer
	maxToolCalls *int
	raw          bool
	out          io.Writer
	tracer       trace.Tracer
	resolver     *cityfacts.Resolver

	querierCreator func(ctx context.Context, conf text.Configurations) (models.ChatQuerier, error)

	querier models.ChatQuerier
}

const defaultSystemPrompt = "You are a helpful assistant. " +
	"When the user asks for a specific city, use the 'get_weather' and the 'get_current_time' tools. " +
	"If the user asks about directions or places, use the available map tools to answer."

var defaultConf = Agent{
	name:           "weather_time_city_agent",
	model:          "gemini-1.5-flash",
	systemPrompt:   defaultSystemPrompt,
	mcpServers:     make([]tools.McpServer, 0),
	querierCreator: text.CreateTextQuerier,
	out:            os.Stdout,
	tracer:         trace.Nop{},
}

type Option func(*Agent)

func New(options ...Option) Agent {
	conf := defaultConf
	conf.resolver = cityfacts.NewResolver()
	for _, o := range options {
		o(&conf)
	}
	return conf
}

func WithName(name string) Option {
	return func(a *Agent) {
		a.name = name
	}
}

func WithModel(model string) Option {
	return func(a *Agent) {
		a.model = model
	}
}

func WithSystemPrompt(prompt string) Option {
	return func(a *Agent) {
		a.systemPrompt = prompt
	}
}

func WithMcpServers(mcpServers []tools.McpServer) Option {
	return func(a *Agent) {
		a.mcpServers = mcpServers
	}
}

func WithMaxToolCalls(am int) Option {
	return func(a *Agent) {
		a.maxToolCalls = &am
	}
}

// WithRaw omits the tool call printouts from the output stream
func WithRaw(raw bool) Option {
	return func(a *Agent) {
		a.raw = raw
	}
}

func WithOutputTo(out io.Writer) Option {
	return func(a *Agent) {
		a.out = out
	}
}

func WithTracer(tracer trace.Tracer) Option {
	return func(a *Agent) {
		a.tracer = tracer
	}
}

func WithResolver(resolver *cityfacts.Resolver) Option {
	return func(a *Agent) {
		a.resolver = resolver
	}
}

func WithQuerierCreator(creator func(ctx context.Context, conf text.Configurations) (models.ChatQuerier, error)) Option {
	return func(a *Agent) {
		a.querierCreator = creator
	}
}

func (a *Agent) asInternalConfig() text.Configurations {
	return text.Configurations{
		Model:        a.model,
		Raw:          a.raw,
		MaxToolCalls: a.maxToolCalls,
		Out:          a.out,
		Tracer:       a.tracer,
	}
}

// Setup registers the city fact tools and every tool exposed by the
// configured MCP servers, then builds the querier. A failing MCP server
// is logged and skipped, the agent still runs with its local tools.
func (a *Agent) Setup(ctx context.Context) error {
	tools.Init(a.resolver)
	for _, srv := range a.mcpServers {
		if err := mcp.RegisterServer(ctx, srv); err != nil {
			ancli.Warnf("failed to register mcp server '%v': %v\n", srv.Name, err)
		}
	}
	querier, err := a.querierCreator(ctx, a.asInternalConfig())
	if err != nil {
		return fmt.Errorf("failed to create querier: %w", err)
	}
	a.querier = querier
	ancli.Okf("agent '%v' ready, tools: %v\n", a.name, tools.Registry.Names())
	return nil
}
