package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/ankra-dev/wherewhen/internal/tools"
	"github.com/baalimago/go_away_boilerplate/pkg/ancli"
)

// Client launches the MCP server subprocess and wires its stdio into a pair
// of channels. Messages sent on the returned input channel are encoded to
// the child's stdin; every JSON value the child writes to stdout arrives on
// the output channel as a json.RawMessage. The child's stderr is passed
// through to this process' stderr.
//
// The output channel is closed when the child exits or ctx is cancelled.
func Client(ctx context.Context, srv tools.McpServer) (chan<- any, <-chan any, error) {
	if srv.Command == "" {
		return nil, nil, errors.New("mcp server command is empty")
	}

	cmd := exec.CommandContext(ctx, srv.Command, srv.Args...)
	env := os.Environ()
	fileEnv, err := parseEnvFile(srv.EnvFile)
	if err != nil {
		return nil, nil, fmt.Errorf("mcp server '%v': %w", srv.Name, err)
	}
	for k, v := range fileEnv {
		env = append(env, k+"="+v)
	}
	for k, v := range srv.Env {
		env = append(env, k+"="+v)
	}
	cmd.Env = env
	cmd.Stderr = os.Stderr

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open stdin pipe: %w", err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open stdout pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return nil, nil, fmt.Errorf("failed to start mcp server '%v': %w", srv.Name, err)
	}

	in := make(chan any)
	out := make(chan any)

	go func() {
		defer stdin.Close()
		enc := json.NewEncoder(stdin)
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-in:
				if !ok {
					return
				}
				if err := enc.Encode(msg); err != nil {
					ancli.Warnf("mcp_%v: failed to encode request: %v\n", srv.Name, err)
					return
				}
			}
		}
	}()

	go func() {
		defer func() {
			close(out)
			cmd.Wait()
		}()
		dec := json.NewDecoder(stdout)
		for {
			var raw json.RawMessage
			if err := dec.Decode(&raw); err != nil {
				return
			}
			select {
			case out <- raw:
			case <-ctx.Done():
				return
			}
		}
	}()

	return in, out, nil
}
