package importer

import (
	"bytes"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// definitionSchema describes a well-formed career definition file. Loading
// stays tolerant (unknown states weigh 0, missing fields default); the
// schema is what `career lint` holds authors to.
const definitionSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "$defs": {
    "subject": {
      "type": "object",
      "required": ["id", "name", "hours", "state", "year"],
      "properties": {
        "id":    {"type": "string", "minLength": 1},
        "name":  {"type": "string", "minLength": 1},
        "hours": {"type": "number", "exclusiveMinimum": 0},
        "state": {"enum": ["no", "cursando", "cursada", "final", "equivalencia"]},
        "year":  {"type": "integer", "minimum": 1}
      }
    },
    "subjects": {"type": "array", "items": {"$ref": "#/$defs/subject"}}
  },
  "oneOf": [
    {"$ref": "#/$defs/subjects"},
    {
      "type": "object",
      "required": ["materias"],
      "properties": {
        "nombre_carrera": {"type": ["string", "null"]},
        "materias": {"$ref": "#/$defs/subjects"}
      }
    }
  ]
}`

const definitionSchemaURL = "schema://career-definition.json"

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

func definitionValidator() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(strings.NewReader(definitionSchema))
		if err != nil {
			compileErr = fmt.Errorf("parse schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(definitionSchemaURL, doc); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(definitionSchemaURL)
	})
	return compiledSchema, compileErr
}

// ValidateDefinition lints a career definition file. Returns every problem
// found; an empty slice means the file is well formed.
func ValidateDefinition(raw []byte) []error {
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return []error{fmt.Errorf("invalid JSON: %w", err)}
	}

	validator, err := definitionValidator()
	if err != nil {
		return []error{fmt.Errorf("compiling definition schema: %w", err)}
	}

	var errs []error
	if err := validator.Validate(inst); err != nil {
		errs = append(errs, fmt.Errorf("schema: %w", err))
	}

	decoded, err := Decode(raw)
	if err != nil {
		return append(errs, err)
	}

	seen := make(map[string]int)
	for i, s := range decoded.Career.Subjects {
		if s.ID == "" {
			continue
		}
		if first, dup := seen[s.ID]; dup {
			errs = append(errs, fmt.Errorf("materias[%d].id: duplicate id %q (first at materias[%d])", i, s.ID, first))
			continue
		}
		seen[s.ID] = i
	}

	return errs
}
