package schema_test

import (
	"reflect"
	"testing"

	"github.com/effective-security/hsncheck/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type validateInput struct {
	Codes []string `json:"Codes" jsonschema:"title=Codes,description=List of codes to validate"`
	Limit int      `json:"Limit,omitempty" jsonschema:"title=Limit"`
}

func TestNew(t *testing.T) {
	s, err := schema.New(reflect.TypeOf(validateInput{}))
	require.NoError(t, err)
	require.NotNil(t, s.Parameters)

	assert.Equal(t, "object", s.Parameters.Type)
	assert.Equal(t, []string{"Codes"}, s.Parameters.Required)

	codes, ok := s.Parameters.Properties.Get("Codes")
	require.True(t, ok)
	assert.Equal(t, "array", codes.Type)
	assert.Equal(t, "Codes", codes.Title)
	assert.Equal(t, "List of codes to validate", codes.Description)

	js := s.String()
	assert.Contains(t, js, `"Codes"`)
	assert.Contains(t, js, `"required"`)

	// cached
	s2, err := schema.New(reflect.TypeOf(validateInput{}))
	require.NoError(t, err)
	assert.Same(t, s, s2)
}
