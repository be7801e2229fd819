// Package trace wraps agent-, model- and tool-level invocations with
// before/after hooks. The agent runtime calls the hooks transparently, the
// wrapped components never see the tracer.
package trace

import (
	"os"

	"github.com/ankra-dev/wherewhen/internal/models"
	"github.com/ankra-dev/wherewhen/internal/tools"
	"github.com/baalimago/go_away_boilerplate/pkg/ancli"
	"github.com/baalimago/go_away_boilerplate/pkg/debug"
	"github.com/baalimago/go_away_boilerplate/pkg/misc"
)

type Tracer interface {
	BeforeAgent(name, question string)
	AfterAgent(name, reply string, err error)
	BeforeModel(chat models.Chat)
	AfterModel(reply string, err error)
	BeforeTool(call tools.Call)
	AfterTool(call tools.Call, output string, err error)
}

// Log emits one ancli line per hook.
type Log struct {
	debug bool
}

func NewLog() *Log {
	return &Log{debug: misc.Truthy(os.Getenv("DEBUG"))}
}

func (l *Log) BeforeAgent(name, question string) {
	ancli.Noticef("agent '%v' start, question: %q\n", name, question)
}

func (l *Log) AfterAgent(name, reply string, err error) {
	if err != nil {
		ancli.Warnf("agent '%v' done with error: %v\n", name, err)
		return
	}
	ancli.Noticef("agent '%v' done, reply length: %v\n", name, len(reply))
}

func (l *Log) BeforeModel(chat models.Chat) {
	ancli.Noticef("model query, messages: %v\n", len(chat.Messages))
	if l.debug {
		ancli.Okf("chat: %v\n", debug.IndentedJsonFmt(chat))
	}
}

func (l *Log) AfterModel(reply string, err error) {
	if err != nil {
		ancli.Warnf("model query failed: %v\n", err)
		return
	}
	ancli.Noticef("model reply length: %v\n", len(reply))
}

func (l *Log) BeforeTool(call tools.Call) {
	ancli.Noticef("tool call: %v\n", call.PrettyPrint())
}

func (l *Log) AfterTool(call tools.Call, output string, err error) {
	if err != nil {
		ancli.Warnf("tool '%v' failed: %v\n", call.Name, err)
		return
	}
	if l.debug {
		ancli.Okf("tool '%v' output: %v\n", call.Name, output)
	}
}

// Nop discards all hooks. Used in tests and when tracing is disabled.
type Nop struct{}

func (Nop) BeforeAgent(string, string)              {}
func (Nop) AfterAgent(string, string, error)        {}
func (Nop) BeforeModel(models.Chat)                 {}
func (Nop) AfterModel(string, error)                {}
func (Nop) BeforeTool(tools.Call)                   {}
func (Nop) AfterTool(tools.Call, string, error)     {}
