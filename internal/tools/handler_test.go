package tools

import (
	"strings"
	"testing"

	"github.com/ankra-dev/wherewhen/internal/cityfacts"
)

func swapRegistry(t *testing.T) {
	t.Helper()
	orig := Registry
	Registry = NewRegistry()
	t.Cleanup(func() { Registry = orig })
}

func TestInit_RegistersCityTools(t *testing.T) {
	swapRegistry(t)
	Init(cityfacts.NewResolver())

	for _, name := range []string{"get_weather", "get_current_time"} {
		if _, ok := Registry.Get(name); !ok {
			t.Errorf("tool %q not registered", name)
		}
	}
	if got := len(Registry.All()); got != 2 {
		t.Errorf("expected exactly 2 tools before MCP discovery, got %d", got)
	}
}

func TestInit_Idempotent(t *testing.T) {
	swapRegistry(t)
	Init(cityfacts.NewResolver())
	Init(cityfacts.NewResolver())
	if got := len(Registry.All()); got != 2 {
		t.Errorf("expected 2 tools after double Init, got %d", got)
	}
}

func TestInvoke(t *testing.T) {
	swapRegistry(t)
	Init(cityfacts.NewResolver())

	out := Invoke(Call{Name: "get_weather", Inputs: &Input{"city": "london"}})
	if !strings.Contains(out, cityfacts.StatusSuccess) {
		t.Errorf("expected success result, got %q", out)
	}
}

func TestInvoke_UnknownTool(t *testing.T) {
	swapRegistry(t)
	out := Invoke(Call{Name: "nope"})
	if !strings.Contains(out, "ERROR: unknown tool call") {
		t.Errorf("expected unknown tool error, got %q", out)
	}
}

func TestInvoke_ToolError(t *testing.T) {
	swapRegistry(t)
	Init(cityfacts.NewResolver())

	// Missing city input fails validation inside the tool
	out := Invoke(Call{Name: "get_weather"})
	if !strings.Contains(out, "ERROR: failed to run tool") {
		t.Errorf("expected tool failure string, got %q", out)
	}
}

func TestToolFromName(t *testing.T) {
	swapRegistry(t)
	Init(cityfacts.NewResolver())

	spec := ToolFromName("get_current_time")
	if spec.Name != "get_current_time" {
		t.Errorf("got %q", spec.Name)
	}
	if empty := ToolFromName("missing"); empty.Name != "" {
		t.Errorf("expected zero spec, got %+v", empty)
	}
}
