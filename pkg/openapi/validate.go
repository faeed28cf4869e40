package openapi

import (
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

// Validate checks that data is a valid OpenAPI 3.x document.
func Validate(data []byte) error {
	loader := openapi3.NewLoader()
	spec, err := loader.LoadFromData(data)
	if err != nil {
		return fmt.Errorf("not a parsable OpenAPI document: %w", err)
	}
	if err := spec.Validate(loader.Context); err != nil {
		return fmt.Errorf("document failed OpenAPI validation: %w", err)
	}
	return nil
}
