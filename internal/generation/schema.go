package generation

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Schema is a named JSON Schema that model output must satisfy.
type Schema struct {
	Name       string
	Definition map[string]any

	once     sync.Once
	compiled *jsonschema.Schema
	err      error
}

// NewSchema declares a schema. It is compiled lazily on first use.
func NewSchema(name string, definition map[string]any) *Schema {
	return &Schema{Name: name, Definition: definition}
}

// Validate checks obj against the schema. Failures wrap ErrInvalidResponse.
func (s *Schema) Validate(obj Object) error {
	compiled, err := s.compile()
	if err != nil {
		return fmt.Errorf("compile schema %q: %w", s.Name, err)
	}

	// The validator works on the generic decoding of JSON, where numbers are
	// float64 and arrays are []any; a round trip guarantees that shape.
	raw, err := json.Marshal(obj)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidResponse, err)
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidResponse, err)
	}

	if err := compiled.Validate(doc); err != nil {
		return fmt.Errorf("%w: schema %q: %w", ErrInvalidResponse, s.Name, err)
	}
	return nil
}

func (s *Schema) compile() (*jsonschema.Schema, error) {
	s.once.Do(func() {
		raw, err := json.Marshal(s.Definition)
		if err != nil {
			s.err = err
			return
		}
		var def any
		if err := json.Unmarshal(raw, &def); err != nil {
			s.err = err
			return
		}

		c := jsonschema.NewCompiler()
		url := fmt.Sprintf("schema://%s.json", s.Name)
		if err := c.AddResource(url, def); err != nil {
			s.err = err
			return
		}
		s.compiled, s.err = c.Compile(url)
	})
	return s.compiled, s.err
}
