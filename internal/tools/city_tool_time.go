package tools

import (
	"encoding/json"
	"fmt"

	"github.com/ankra-dev/wherewhen/internal/cityfacts"
)

// CurrentTimeTool reports the current local time of a city in the
// resolver's table, using its IANA timezone.
type CurrentTimeTool struct {
	resolver *cityfacts.Resolver
}

func NewCurrentTimeTool(resolver *cityfacts.Resolver) CurrentTimeTool {
	return CurrentTimeTool{resolver: resolver}
}

func (c CurrentTimeTool) Call(input Input) (string, error) {
	city, ok := input["city"].(string)
	if !ok {
		return "", NewValidationError([]string{"city"})
	}
	res := c.resolver.CurrentTime(city)
	data, err := json.Marshal(res)
	if err != nil {
		return "", fmt.Errorf("failed to marshal time result: %w", err)
	}
	return string(data), nil
}

func (c CurrentTimeTool) Specification() Specification {
	return Specification{
		Name:        "get_current_time",
		Description: "Returns the current local time in a given city.",
		Inputs: &InputSchema{
			Type:     "object",
			Required: []string{"city"},
			Properties: map[string]ParameterObject{
				"city": {
					Type:        "string",
					Description: "The name of the city, for example 'Tokyo'.",
				},
			},
		},
	}
}
