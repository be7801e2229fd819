package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ankra-dev/wherewhen/internal/tools"
	"github.com/baalimago/go_away_boilerplate/pkg/ancli"
)

const (
	initializeID = 1
	toolsListID  = 2
)

type toolListing struct {
	Tools []struct {
		Name        string            `json:"name"`
		Description string            `json:"description"`
		InputSchema tools.InputSchema `json:"inputSchema"`
	} `json:"tools"`
}

// RegisterServer launches srv, discovers its tools and registers each one
// in the global tools registry under the name 'mcp_<server>_<tool>'.
func RegisterServer(ctx context.Context, srv tools.McpServer) error {
	in, out, err := Client(ctx, srv)
	if err != nil {
		return fmt.Errorf("failed to start client: %w", err)
	}
	specs, err := discover(ctx, in, out)
	if err != nil {
		return fmt.Errorf("failed to discover tools on '%v': %w", srv.Name, err)
	}
	for _, spec := range specs {
		remoteName := spec.Name
		spec.Name = fmt.Sprintf("mcp_%v_%v", srv.Name, remoteName)
		tools.Registry.Set(spec.Name, &mcpTool{
			remoteName: remoteName,
			spec:       spec,
			inputChan:  in,
			outputChan: out,
			seq:        toolsListID,
		})
	}
	ancli.Okf("mcp_%v: registered %v tools\n", srv.Name, len(specs))
	return nil
}

// discover performs the initialize + tools/list handshake.
func discover(ctx context.Context, in chan<- any, out <-chan any) ([]tools.Specification, error) {
	if err := send(ctx, in, Request{JSONRPC: "2.0", ID: initializeID, Method: "initialize"}); err != nil {
		return nil, err
	}
	if _, err := awaitResponse(ctx, out, initializeID); err != nil {
		return nil, fmt.Errorf("initialize: %w", err)
	}

	if err := send(ctx, in, Request{JSONRPC: "2.0", ID: toolsListID, Method: "tools/list"}); err != nil {
		return nil, err
	}
	resp, err := awaitResponse(ctx, out, toolsListID)
	if err != nil {
		return nil, fmt.Errorf("tools/list: %w", err)
	}

	var listing toolListing
	if err := json.Unmarshal(resp.Result, &listing); err != nil {
		return nil, fmt.Errorf("failed to decode tool listing: %w", err)
	}
	specs := make([]tools.Specification, 0, len(listing.Tools))
	for _, t := range listing.Tools {
		schema := t.InputSchema
		schema.Patch()
		specs = append(specs, tools.Specification{
			Name:        t.Name,
			Description: t.Description,
			Inputs:      &schema,
		})
	}
	return specs, nil
}

func send(ctx context.Context, in chan<- any, req Request) error {
	select {
	case in <- req:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// awaitResponse reads the output channel until a response with the given id
// arrives. Messages with other ids, such as server notifications, are
// dropped.
func awaitResponse(ctx context.Context, out <-chan any, id int) (Response, error) {
	for {
		select {
		case <-ctx.Done():
			return Response{}, ctx.Err()
		case msg, ok := <-out:
			if !ok {
				return Response{}, fmt.Errorf("connection closed awaiting response %v", id)
			}
			raw, isRaw := msg.(json.RawMessage)
			if !isRaw {
				continue
			}
			var resp Response
			if err := json.Unmarshal(raw, &resp); err != nil {
				continue
			}
			if resp.ID != id {
				continue
			}
			if resp.Error != nil {
				return Response{}, fmt.Errorf("rpc error %v: %v", resp.Error.Code, resp.Error.Message)
			}
			return resp, nil
		}
	}
}
