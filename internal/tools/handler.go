package tools

import (
	"fmt"
	"os"

	"github.com/ankra-dev/wherewhen/internal/cityfacts"
	"github.com/baalimago/go_away_boilerplate/pkg/ancli"
	"github.com/baalimago/go_away_boilerplate/pkg/debug"
	"github.com/baalimago/go_away_boilerplate/pkg/misc"
)

// Registry is the global registry of available LLM tools.
var Registry = NewRegistry()

// Init initializes the global Registry with the city fact tools backed by
// the given resolver. If the Registry has already been initialized, it
// simply returns.
func Init(resolver *cityfacts.Resolver) {
	if Registry.hasBeenInit {
		return
	}
	Registry.hasBeenInit = true
	w := NewWeatherTool(resolver)
	Registry.Set(w.Specification().Name, w)
	c := NewCurrentTimeTool(resolver)
	Registry.Set(c.Specification().Name, c)
}

// Invoke the call, and gather both error and output in the same string
func Invoke(call Call) string {
	t, exists := Registry.Get(call.Name)
	if !exists {
		return "ERROR: unknown tool call: " + call.Name
	}
	if misc.Truthy(os.Getenv("DEBUG_CALL")) {
		ancli.Noticef("Invoke call: %v", debug.IndentedJsonFmt(call))
	}
	inp := Input{}
	if call.Inputs != nil {
		inp = *call.Inputs
	}
	out, err := t.Call(inp)
	if err != nil {
		return fmt.Sprintf("ERROR: failed to run tool: %v, error: %v", call.Name, err)
	}
	return out
}

// ToolFromName looks up the registered specification for name
func ToolFromName(name string) Specification {
	t, exists := Registry.Get(name)
	if !exists {
		return Specification{}
	}
	return t.Specification()
}
