package scenarios

import (
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Load decodes a Scenario from r and validates its shape (required
// fields present, routes have at least two stops, and so on). It does
// not check that stop IDs referenced by routes/footpaths/the query
// actually appear in Stops — that cross-reference check happens in
// Build, once, against the fully decoded fixture.
func Load(r io.Reader) (*Scenario, error) {
	var s Scenario
	if err := yaml.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("scenarios: decode: %w", err)
	}
	if err := validator.New().Struct(&s); err != nil {
		return nil, fmt.Errorf("scenarios: validate: %w", err)
	}
	return &s, nil
}
