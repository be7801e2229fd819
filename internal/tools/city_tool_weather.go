package tools

import (
	"encoding/json"
	"fmt"

	"github.com/ankra-dev/wherewhen/internal/cityfacts"
)

// WeatherTool reports the mock weather for a city in the resolver's table.
type WeatherTool struct {
	resolver *cityfacts.Resolver
}

func NewWeatherTool(resolver *cityfacts.Resolver) WeatherTool {
	return WeatherTool{resolver: resolver}
}

func (w WeatherTool) Call(input Input) (string, error) {
	city, ok := input["city"].(string)
	if !ok {
		return "", NewValidationError([]string{"city"})
	}
	res := w.resolver.Weather(city)
	data, err := json.Marshal(res)
	if err != nil {
		return "", fmt.Errorf("failed to marshal weather result: %w", err)
	}
	return string(data), nil
}

func (w WeatherTool) Specification() Specification {
	return Specification{
		Name:        "get_weather",
		Description: "Retrieves the current weather report for a given city.",
		Inputs: &InputSchema{
			Type:     "object",
			Required: []string{"city"},
			Properties: map[string]ParameterObject{
				"city": {
					Type:        "string",
					Description: "The name of the city, for example 'New York'.",
				},
			},
		},
	}
}
