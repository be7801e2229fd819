package trace

import (
	"errors"
	"testing"

	"github.com/ankra-dev/wherewhen/internal/models"
	"github.com/ankra-dev/wherewhen/internal/tools"
	"github.com/baalimago/go_away_boilerplate/pkg/testboil"
)

func TestLog_ToolHooks(t *testing.T) {
	l := NewLog()
	call := tools.Call{Name: "get_weather", Inputs: &tools.Input{"city": "Tokyo"}}

	out := testboil.CaptureStdout(t, func(t *testing.T) {
		l.BeforeTool(call)
		l.AfterTool(call, `{"status":"success"}`, nil)
	})
	testboil.AssertStringContains(t, out, "get_weather")

	out = testboil.CaptureStdout(t, func(t *testing.T) {
		l.AfterTool(call, "", errors.New("boom"))
	})
	testboil.AssertStringContains(t, out, "boom")
}

func TestLog_AgentAndModelHooks(t *testing.T) {
	l := NewLog()

	out := testboil.CaptureStdout(t, func(t *testing.T) {
		l.BeforeAgent("weather_time_city_agent", "time in Tokyo?")
		l.AfterAgent("weather_time_city_agent", "21:00", nil)
		l.BeforeModel(models.Chat{Messages: []models.Message{{Role: "user"}}})
		l.AfterModel("ok", nil)
	})
	testboil.AssertStringContains(t, out, "weather_time_city_agent")
	testboil.AssertStringContains(t, out, "messages: 1")
}

func TestNopImplementsTracer(t *testing.T) {
	var _ Tracer = Nop{}
	var _ Tracer = NewLog()
}
