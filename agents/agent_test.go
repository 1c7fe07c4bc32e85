package agents_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/hsncheck/agents"
	"github.com/effective-security/hsncheck/tools"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type echoTool struct {
	name string
	err  error
}

func (t *echoTool) Name() string        { return t.name }
func (t *echoTool) Description() string { return "echoes the input" }
func (t *echoTool) Parameters() any     { return nil }
func (t *echoTool) Call(ctx context.Context, input string) (string, error) {
	if t.err != nil {
		return "", t.err
	}
	return "echo: " + input, nil
}

func TestAgentOptions(t *testing.T) {
	echo := &echoTool{name: "Echo"}
	a := agents.New("hsn_direct_gsheet_validator_v1",
		agents.WithModel("gemini-1.5-flash-latest"),
		agents.WithDescription("Validates HSN codes."),
		agents.WithInstruction("Use the validation tool."),
		agents.WithTools(echo))

	assert.Equal(t, "hsn_direct_gsheet_validator_v1", a.Name())
	assert.Equal(t, "gemini-1.5-flash-latest", a.Model())
	assert.Equal(t, "Validates HSN codes.", a.Description())
	assert.Equal(t, "Use the validation tool.", a.Instruction())
	require.Len(t, a.Tools(), 1)

	tool, ok := a.GetTool("Echo")
	assert.True(t, ok)
	assert.Same(t, tools.ITool(echo), tool)

	_, ok = a.GetTool("Unknown")
	assert.False(t, ok)
}

func TestCallTool(t *testing.T) {
	var buf bytes.Buffer
	a := agents.New("test",
		agents.WithTools(&echoTool{name: "Echo"}),
		agents.WithCallback(agents.NewPrinterCallback(&buf)))

	out, err := a.CallTool(context.Background(), "Echo", "hello")
	require.NoError(t, err)
	assert.Equal(t, "echo: hello", out)
	assert.Contains(t, buf.String(), "Tool Start: Echo")
	assert.Contains(t, buf.String(), "Tool End: Echo")
}

func TestCallToolNotFound(t *testing.T) {
	a := agents.New("test")
	_, err := a.CallTool(context.Background(), "Missing", "{}")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tool not found")
}

func TestCallToolError(t *testing.T) {
	var buf bytes.Buffer
	a := agents.New("test",
		agents.WithTools(&echoTool{name: "Echo", err: errors.New("boom")}),
		agents.WithCallback(agents.NewPrinterCallback(&buf)))

	_, err := a.CallTool(context.Background(), "Echo", "hello")
	require.Error(t, err)
	assert.Contains(t, buf.String(), "Tool Error: Echo: boom")
}

func TestNewGeminiRequiresKey(t *testing.T) {
	_, err := agents.NewGemini(context.Background(), "", "gemini-1.5-flash-latest")
	assert.Error(t, err)

	_, err = agents.NewGemini(context.Background(), "key", "")
	assert.Error(t, err)
}

func TestGetDescriptions(t *testing.T) {
	d := tools.GetDescriptions(&echoTool{name: "Echo"})
	assert.Contains(t, d, `"Name": "Echo"`)
	assert.Contains(t, d, `"Description": "echoes the input"`)
}
