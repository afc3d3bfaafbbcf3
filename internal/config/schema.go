package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed schema/runtime.schema.json
var runtimeSchemaBytes []byte

var (
	runtimeSchema     *jsonschema.Schema
	runtimeSchemaOnce sync.Once
	runtimeSchemaErr  error
)

// getRuntimeSchema compiles the embedded runtime override schema once.
func getRuntimeSchema() (*jsonschema.Schema, error) {
	runtimeSchemaOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(runtimeSchemaBytes))
		if err != nil {
			runtimeSchemaErr = fmt.Errorf("unmarshaling runtime schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource("runtime.schema.json", doc); err != nil {
			runtimeSchemaErr = fmt.Errorf("adding runtime schema resource: %w", err)
			return
		}
		runtimeSchema, runtimeSchemaErr = c.Compile("runtime.schema.json")
		if runtimeSchemaErr != nil {
			runtimeSchemaErr = fmt.Errorf("compiling runtime schema: %w", runtimeSchemaErr)
		}
	})
	return runtimeSchema, runtimeSchemaErr
}

// validateRuntimeDocument checks raw runtime file contents against the
// embedded schema: an object whose sim_mode is a boolean.
func validateRuntimeDocument(data []byte) error {
	schema, err := getRuntimeSchema()
	if err != nil {
		return err
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("decoding runtime config: %w", err)
	}

	if err := schema.Validate(inst); err != nil {
		return fmt.Errorf("validating runtime config: %w", err)
	}
	return nil
}
