// Package openapi imports OpenAPI request schemas as component trees, so an
// existing API contract can seed a form definition.
package openapi

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formflow/pkg/component"
)

// Option configures an import run.
type Option func(*config)

type config struct {
	operationID string
}

// WithOperationID imports the request schema of a specific operation instead
// of the first mutating operation found.
func WithOperationID(id string) Option {
	return func(cfg *config) {
		cfg.operationID = strings.TrimSpace(id)
	}
}

// Import loads an OpenAPI document and converts the selected operation's
// request body schema into components. Object properties become fields;
// nested objects become groups.
func Import(ctx context.Context, data []byte, options ...Option) ([]component.Component, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, errors.New("openapi: document payload is empty")
	}

	cfg := config{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	loader := &openapi3.Loader{Context: ctx}
	spec, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("openapi: load document: %w", err)
	}

	schema, err := requestSchema(spec, cfg.operationID)
	if err != nil {
		return nil, err
	}

	var comps []component.Component
	appendObject(&comps, schema, "", "")
	if len(comps) == 0 {
		return nil, errors.New("openapi: request schema has no properties")
	}
	return comps, nil
}

func requestSchema(spec *openapi3.T, operationID string) (*openapi3.Schema, error) {
	if spec.Paths == nil || spec.Paths.Len() == 0 {
		return nil, errors.New("openapi: document does not contain any paths")
	}

	paths := make([]string, 0, spec.Paths.Len())
	for path := range spec.Paths.Map() {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	for _, path := range paths {
		item := spec.Paths.Map()[path]
		if item == nil {
			continue
		}
		for _, operation := range []*openapi3.Operation{item.Post, item.Put, item.Patch} {
			if operation == nil {
				continue
			}
			if operationID != "" && operation.OperationID != operationID {
				continue
			}
			if schema := bodySchema(operation.RequestBody); schema != nil {
				return schema, nil
			}
		}
	}

	if operationID != "" {
		return nil, fmt.Errorf("openapi: operation %q not found or has no request body", operationID)
	}
	return nil, errors.New("openapi: no operation with a request body schema")
}

func bodySchema(requestBody *openapi3.RequestBodyRef) *openapi3.Schema {
	if requestBody == nil || requestBody.Value == nil {
		return nil
	}
	content := requestBody.Value.Content
	for _, mediaType := range []string{"application/json", "application/x-www-form-urlencoded", "multipart/form-data"} {
		if mt, ok := content[mediaType]; ok && mt.Schema != nil && mt.Schema.Value != nil {
			return mt.Schema.Value
		}
	}
	for _, mt := range content {
		if mt.Schema != nil && mt.Schema.Value != nil {
			return mt.Schema.Value
		}
	}
	return nil
}

func appendObject(out *[]component.Component, schema *openapi3.Schema, idPrefix, parentID string) {
	names := make([]string, 0, len(schema.Properties))
	for name := range schema.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		ref := schema.Properties[name]
		if ref == nil || ref.Value == nil {
			continue
		}
		property := ref.Value

		id := name
		if idPrefix != "" {
			id = idPrefix + "." + name
		}

		if schemaType(property) == "object" && len(property.Properties) > 0 {
			group := component.Component{
				ID:          id,
				Type:        component.TypeGroup,
				ParentID:    parentID,
				Label:       labelFor(property, name),
				Description: property.Description,
			}
			*out = append(*out, group)
			appendObject(out, property, id, id)
			continue
		}

		*out = append(*out, convertProperty(id, parentID, name, property))
	}
}

func convertProperty(id, parentID, name string, schema *openapi3.Schema) component.Component {
	comp := component.Component{
		ID:          id,
		ParentID:    parentID,
		Label:       labelFor(schema, name),
		Description: schema.Description,
		Default:     schema.Default,
	}

	switch schemaType(schema) {
	case "boolean":
		comp.Type = component.TypeCheckbox
		comp.Options = []component.Option{{Label: comp.Label, Value: "true"}}
	case "integer", "number":
		comp.Type = component.TypeNumber
		if schema.Min != nil {
			comp.Min = *schema.Min
		}
		if schema.Max != nil {
			comp.Max = *schema.Max
		}
	case "array":
		items := itemsSchema(schema)
		switch {
		case items != nil && len(items.Enum) > 0:
			comp.Type = component.TypeSelect
			comp.Multiple = true
			comp.Options = enumOptions(items.Enum)
		case items != nil && items.Format == "binary":
			comp.Type = component.TypeUpload
		default:
			comp.Type = component.TypeSelect
			comp.Multiple = true
		}
	default: // string and fallbacks
		switch {
		case len(schema.Enum) > 0:
			comp.Type = component.TypeSelect
			comp.Options = enumOptions(schema.Enum)
		case schema.Format == "date" || schema.Format == "date-time":
			comp.Type = component.TypeDate
		case schema.Format == "binary":
			comp.Type = component.TypeUpload
		case schema.Format == "textarea" || (schema.MaxLength != nil && *schema.MaxLength > 255):
			comp.Type = component.TypeTextarea
		default:
			comp.Type = component.TypeInput
		}
	}

	return comp
}

func labelFor(schema *openapi3.Schema, name string) string {
	if schema.Title != "" {
		return schema.Title
	}
	return name
}

func itemsSchema(schema *openapi3.Schema) *openapi3.Schema {
	if schema.Items == nil {
		return nil
	}
	return schema.Items.Value
}

func enumOptions(values []any) []component.Option {
	out := make([]component.Option, 0, len(values))
	for _, value := range values {
		text := fmt.Sprint(value)
		out = append(out, component.Option{Label: text, Value: text})
	}
	return out
}

func schemaType(schema *openapi3.Schema) string {
	if schema.Type == nil {
		return ""
	}
	values := schema.Type.Slice()
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
