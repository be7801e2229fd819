package tools

import (
	"testing"
)

type mockLLMTool struct {
	name string
	spec Specification
}

func (m *mockLLMTool) Call(input Input) (string, error) {
	return "mock output", nil
}

func (m *mockLLMTool) Specification() Specification {
	return m.spec
}

func newMockTool(name string) *mockLLMTool {
	return &mockLLMTool{
		name: name,
		spec: Specification{Name: name},
	}
}

func TestNewRegistry(t *testing.T) {
	r := NewRegistry()
	if r == nil {
		t.Fatal("NewRegistry() returned nil")
	}
	if r.tools == nil {
		t.Error("registry.tools is nil")
	}
	if len(r.tools) != 0 {
		t.Errorf("expected empty registry, got %d tools", len(r.tools))
	}
}

func TestRegistry_SetGet(t *testing.T) {
	r := NewRegistry()
	tool := newMockTool("test-tool")

	r.Set("test", tool)

	got, ok := r.Get("test")
	if !ok {
		t.Fatal("Get() returned false for existing tool")
	}
	if got != tool {
		t.Error("Get() returned wrong tool")
	}

	_, ok = r.Get("nonexistent")
	if ok {
		t.Error("Get() returned true for non-existent tool")
	}
}

func TestRegistry_All_ReturnsCopy(t *testing.T) {
	r := NewRegistry()
	r.Set("a", newMockTool("a"))
	r.Set("b", newMockTool("b"))

	all := r.All()
	if len(all) != 2 {
		t.Fatalf("expected 2 tools, got %d", len(all))
	}
	delete(all, "a")
	if _, ok := r.Get("a"); !ok {
		t.Error("mutating the All() copy affected the registry")
	}
}

func TestRegistry_Names_Sorted(t *testing.T) {
	r := NewRegistry()
	r.Set("zeta", newMockTool("zeta"))
	r.Set("alpha", newMockTool("alpha"))
	r.Set("mid", newMockTool("mid"))

	names := r.Names()
	want := []string{"alpha", "mid", "zeta"}
	if len(names) != len(want) {
		t.Fatalf("expected %d names, got %d", len(want), len(names))
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("names[%d] got %q want %q", i, names[i], want[i])
		}
	}
}

func TestRegistry_Reset(t *testing.T) {
	r := NewRegistry()
	r.Set("test", newMockTool("test"))
	r.Reset()
	if len(r.All()) != 0 {
		t.Error("Reset() did not clear the registry")
	}
}
