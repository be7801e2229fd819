package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/ankra-dev/wherewhen/internal/tools"
	"github.com/baalimago/go_away_boilerplate/pkg/ancli"
)

const (
	mapsAPIKeyEnv       = "GOOGLE_MAPS_API_KEY"
	defaultModel        = "gemini-1.5-flash"
	defaultMaxToolCalls = 10
)

type config struct {
	model        string
	raw          bool
	maxToolCalls int
	trace        bool
}

func errorOnMutuallyExclusiveFlags(flag1, flag2, shortFlag, longFlag, defaultVal string) string {
	if flag1 != defaultVal && flag2 != defaultVal {
		ancli.PrintErr(fmt.Sprintf("%s and %s flags are mutually exclusive\n", shortFlag, longFlag))
		flag.PrintDefaults()
		os.Exit(1)
	}
	if flag1 != defaultVal {
		return flag1
	}
	return flag2
}

func setup() (config, string) {
	cmShort := flag.String("cm", defaultModel, "Set the chat model to use. Mutually exclusive with chat-model flag.")
	cmLong := flag.String("chat-model", defaultModel, "Set the chat model to use. Mutually exclusive with cm flag.")

	rawShort := flag.Bool("r", false, "Set to true to print raw output (no tool call lines).")
	rawLong := flag.Bool("raw", false, "Set to true to print raw output (no tool call lines).")

	mtShort := flag.Int("mt", defaultMaxToolCalls, "Set the maximum amount of tool calls per question. Mutually exclusive with max-tool-calls flag.")
	mtLong := flag.Int("max-tool-calls", defaultMaxToolCalls, "Set the maximum amount of tool calls per question. Mutually exclusive with mt flag.")

	traceShort := flag.Bool("t", false, "Set to true to print trace lines around agent, model and tool calls.")
	traceLong := flag.Bool("trace", false, "Set to true to print trace lines around agent, model and tool calls.")

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), usage, defaultModel, false, defaultMaxToolCalls, false)
	}
	flag.Parse()

	conf := config{
		model:        errorOnMutuallyExclusiveFlags(*cmShort, *cmLong, "cm", "chat-model", defaultModel),
		raw:          *rawShort || *rawLong,
		maxToolCalls: maxToolCallsFrom(*mtShort, *mtLong),
		trace:        *traceShort || *traceLong,
	}

	question := strings.Join(flag.Args(), " ")
	if strings.TrimSpace(question) == "" {
		flag.Usage()
		os.Exit(1)
	}
	return conf, question
}

func maxToolCallsFrom(short, long int) int {
	if short != defaultMaxToolCalls && long != defaultMaxToolCalls {
		ancli.PrintErr("mt and max-tool-calls flags are mutually exclusive\n")
		flag.PrintDefaults()
		os.Exit(1)
	}
	if short != defaultMaxToolCalls {
		return short
	}
	return long
}

// validateMapsKey checks the Google Maps Platform credential before any
// component is constructed. Without it the maps MCP server would start and
// then fail on its first real request, which is a worse failure mode.
func validateMapsKey(getenv func(string) string) (string, error) {
	key := getenv(mapsAPIKeyEnv)
	if key == "" {
		return "", fmt.Errorf("%v environment variable not set, it is required for the map tools", mapsAPIKeyEnv)
	}
	return key, nil
}

// googleMapsServer describes the MCP tool server subprocess which serves
// the map and direction tools.
func googleMapsServer(apiKey string) tools.McpServer {
	return tools.McpServer{
		Name:    "googlemaps",
		Command: "npx",
		Args:    []string{"-y", "@modelcontextprotocol/server-google-maps"},
		Env: map[string]string{
			mapsAPIKeyEnv: apiKey,
		},
	}
}
