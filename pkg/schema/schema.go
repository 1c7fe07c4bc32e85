// Package schema builds JSON schemas for tool parameter definitions
// from Go types, using the jsonschema struct tags.
package schema

import (
	"encoding/json"
	"reflect"
	"strconv"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/invopop/jsonschema"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

var (
	cache   = make(map[reflect.Type]*Schema)
	cacheMu sync.Mutex
)

type Schema struct {
	RawSchema *jsonschema.Schema
	// Parameters represents the function parameters definition.
	Parameters *jsonschema.Schema
}

// New creates a schema for the given type. Results are cached per type.
func New(t reflect.Type) (*Schema, error) {
	cacheMu.Lock()
	defer cacheMu.Unlock()

	if s, ok := cache[t]; ok {
		return s, nil
	}

	raw := Reflect(t)
	s := &Schema{
		RawSchema:  raw,
		Parameters: toFunctionSchema(raw),
	}
	cache[t] = s

	return s, nil
}

func (s *Schema) String() string {
	js, _ := json.MarshalIndent(s.Parameters, "", "\t")
	return string(js)
}

// Reflect returns the expanded JSON schema of the type.
func Reflect(t reflect.Type) *jsonschema.Schema {
	r := &jsonschema.Reflector{
		ExpandedStruct: true,
		DoNotReference: true,
	}
	// Struct names can collide across packages, so the name is
	// disambiguated with a hash of the full package path.
	r.Namer = func(t reflect.Type) string {
		name := t.Name()
		if t.Kind() == reflect.Struct {
			full := t.PkgPath() + "/" + t.Name()
			name = t.Name() + "@" + strconv.FormatUint(xxhash.Sum64String(full), 10)
		}
		return name
	}
	return r.ReflectFromType(t)
}

// toFunctionSchema reduces the reflected schema to the plain
// {type, properties, required} form expected in a function definition,
// disallowing additional properties at every level.
func toFunctionSchema(raw *jsonschema.Schema) *jsonschema.Schema {
	res := &jsonschema.Schema{
		Type:                 raw.Type,
		Properties:           raw.Properties,
		Required:             raw.Required,
		AdditionalProperties: jsonschema.FalseSchema,
	}
	forbidAdditional(res.Properties)
	return res
}

func forbidAdditional(props *orderedmap.OrderedMap[string, *jsonschema.Schema]) {
	if props == nil {
		return
	}
	for pair := props.Oldest(); pair != nil; pair = pair.Next() {
		child := pair.Value
		if child.Type == "object" && child.Properties != nil {
			child.AdditionalProperties = jsonschema.FalseSchema
			forbidAdditional(child.Properties)
		}
		if child.Items != nil && child.Items.Properties != nil {
			child.Items.AdditionalProperties = jsonschema.FalseSchema
			forbidAdditional(child.Items.Properties)
		}
	}
}
