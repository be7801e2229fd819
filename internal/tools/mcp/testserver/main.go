// Command testserver is a minimal MCP server mimicking the Google Maps
// tool server. Used by the mcp package tests via 'go run ./testserver'.
package main

import (
	"encoding/json"
	"fmt"
	"os"
)

type request struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      int             `json:"id,omitempty"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

func main() {
	dec := json.NewDecoder(os.Stdin)
	enc := json.NewEncoder(os.Stdout)
	for {
		var req request
		if err := dec.Decode(&req); err != nil {
			return
		}
		switch req.Method {
		case "initialize":
			enc.Encode(map[string]any{
				"jsonrpc": "2.0",
				"id":      req.ID,
				"result":  map[string]any{},
			})
		case "tools/list":
			enc.Encode(map[string]any{
				"jsonrpc": "2.0",
				"id":      req.ID,
				"result": map[string]any{
					"tools": []map[string]any{
						{
							"name":        "maps_directions",
							"description": "Get directions between two places",
							"inputSchema": map[string]any{
								"type":     "object",
								"required": []string{"origin", "destination"},
								"properties": map[string]any{
									"origin": map[string]any{
										"type":        "string",
										"description": "starting point",
									},
									"destination": map[string]any{
										"type":        "string",
										"description": "end point",
									},
								},
							},
						},
					},
				},
			})
		case "tools/call":
			var p struct {
				Name      string         `json:"name"`
				Arguments map[string]any `json:"arguments"`
			}
			json.Unmarshal(req.Params, &p)
			origin, _ := p.Arguments["origin"].(string)
			destination, _ := p.Arguments["destination"].(string)
			result := map[string]any{
				"content": []map[string]any{{
					"type": "text",
					"text": fmt.Sprintf("Head north from %v to %v.", origin, destination),
				}},
				"isError": false,
			}
			if destination == "error" {
				result["isError"] = true
			}
			enc.Encode(map[string]any{
				"jsonrpc": "2.0",
				"id":      req.ID,
				"result":  result,
			})
		default:
			enc.Encode(map[string]any{
				"jsonrpc": "2.0",
				"id":      req.ID,
				"error": map[string]any{
					"code":    -32601,
					"message": "method not found",
				},
			})
		}
	}
}
