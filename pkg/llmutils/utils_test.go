package llmutils_test

import (
	"testing"

	"github.com/effective-security/hsncheck/pkg/llmutils"
	"github.com/stretchr/testify/assert"
)

func TestCleanJSON(t *testing.T) {
	tcases := []struct {
		name string
		in   string
		exp  string
	}{
		{"plain_object", `{"Codes":["0101"]}`, `{"Codes":["0101"]}`},
		{"prose_prefix", `Sure, here you go: {"Codes":["0101"]}`, `{"Codes":["0101"]}`},
		{"prose_suffix", `{"Codes":["0101"]} hope that helps!`, `{"Codes":["0101"]}`},
		{"array", `the codes are ["0101","0202"] ok`, `["0101","0202"]`},
		{"array_of_objects", `[{"a":1}]`, `[{"a":1}]`},
		{"no_json", `no json here`, `no json here`},
	}
	for _, tc := range tcases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.exp, string(llmutils.CleanJSON([]byte(tc.in))))
		})
	}
}

func TestTrimBackticks(t *testing.T) {
	assert.Equal(t, `{"a":1}`, llmutils.TrimBackticks("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, llmutils.TrimBackticks("```{\"a\":1}```"))
	assert.Equal(t, `{"a":1}`, llmutils.TrimBackticks(`{"a":1}`))
}

func TestToJSON(t *testing.T) {
	assert.Equal(t, `{"a":1}`, llmutils.ToJSON(map[string]int{"a": 1}))
	assert.Equal(t, "{\n  \"a\": 1\n}", llmutils.ToJSONIndent(map[string]int{"a": 1}))
	assert.Equal(t, "{\n  \"a\": 1\n}", llmutils.JSONIndent(`{"a":1}`))
	assert.Equal(t, "not json", llmutils.JSONIndent("not json"))
	assert.Equal(t, "```json\n{}\n```", llmutils.BackticksJSON("{}"))
}

func TestStringify(t *testing.T) {
	assert.Equal(t, "abc", llmutils.Stringify("abc"))
	assert.Equal(t, `["a"]`, llmutils.Stringify([]string{"a"}))
}

func TestToYAML(t *testing.T) {
	assert.Equal(t, "a: 1\n", llmutils.ToYAML(map[string]int{"a": 1}))
}
