package audit

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
)

// SchemaName is the component name of the payload schema in ContractDocument.
const SchemaName = "AuditSubmission"

var (
	schemaOnce    sync.Once
	payloadSchema *openapi3.Schema
)

// PayloadSchema describes the submitted JSON body. Every key is required,
// single-choice fields accept their option values or the empty string, and
// multi-choice fields are arrays of option values.
func PayloadSchema() *openapi3.Schema {
	schemaOnce.Do(func() {
		payloadSchema = buildPayloadSchema()
	})
	return payloadSchema
}

func buildPayloadSchema() *openapi3.Schema {
	schema := openapi3.NewObjectSchema()
	required := make([]string, 0, len(fieldOrder)+1)

	for _, field := range fieldOrder {
		schema.WithProperty(field.String(), fieldSchema(field))
		required = append(required, field.String())
	}

	schema.WithProperty("submittedAt", openapi3.NewDateTimeSchema())
	required = append(required, "submittedAt")

	schema.Required = required
	return schema
}

func fieldSchema(field Field) *openapi3.Schema {
	switch field.Kind() {
	case KindSelect:
		return openapi3.NewStringSchema().WithEnum(enumValues(field, true)...)
	case KindMulti:
		items := openapi3.NewStringSchema().WithEnum(enumValues(field, false)...)
		return openapi3.NewArraySchema().WithItems(items)
	default:
		return openapi3.NewStringSchema()
	}
}

func enumValues(field Field, allowEmpty bool) []any {
	values := OptionValues(field)
	out := make([]any, 0, len(values)+1)
	if allowEmpty {
		out = append(out, "")
	}
	for _, value := range values {
		out = append(out, value)
	}
	return out
}

// ContractDocument wraps PayloadSchema in an OpenAPI 3 document describing the
// webhook: a single POST accepting the payload as JSON.
func ContractDocument() *openapi3.T {
	ref := "#/components/schemas/" + SchemaName
	schema := PayloadSchema()

	body := openapi3.NewRequestBody().
		WithRequired(true).
		WithDescription("AI Audit answers").
		WithJSONSchemaRef(openapi3.NewSchemaRef(ref, schema))

	op := openapi3.NewOperation()
	op.OperationID = "submitAudit"
	op.Summary = "Receive a completed AI Audit"
	op.RequestBody = &openapi3.RequestBodyRef{Value: body}
	op.Responses = openapi3.NewResponses(
		openapi3.WithStatus(200, &openapi3.ResponseRef{
			Value: openapi3.NewResponse().WithDescription("Any 2xx status is treated as accepted"),
		}),
	)

	return &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:   "AI Audit webhook",
			Version: "1.0.0",
		},
		Paths: openapi3.NewPaths(openapi3.WithPath("/", &openapi3.PathItem{Post: op})),
		Components: &openapi3.Components{
			Schemas: openapi3.Schemas{
				SchemaName: openapi3.NewSchemaRef("", schema),
			},
		},
	}
}

// CheckPayload validates the JSON form of payload against PayloadSchema.
func CheckPayload(payload Payload) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("audit: encode payload: %w", err)
	}
	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return fmt.Errorf("audit: decode payload: %w", err)
	}
	if err := PayloadSchema().VisitJSON(decoded); err != nil {
		return fmt.Errorf("audit: payload contract: %w", err)
	}
	return nil
}
