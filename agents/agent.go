// Package agents provides a lightweight agent wrapper around tools:
// a named registry with direct dispatch, callbacks and metrics, and an
// optional model-phrased answer step.
package agents

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/hsncheck/pkg/metricskey"
	"github.com/effective-security/hsncheck/tools"
	"github.com/effective-security/xlog"
	"github.com/google/uuid"
)

var logger = xlog.NewPackageLogger("github.com/effective-security/hsncheck", "agents")

// Agent holds a tool registry under a name/description/instruction
// triple. It performs no tool selection of its own: callers dispatch a
// named tool directly, as the validation agent is single-purpose.
type Agent struct {
	name        string
	model       string
	description string
	instruction string

	tools       []tools.ITool
	toolsByName map[string]tools.ITool
	callback    tools.Callback
}

// Option configures an Agent.
type Option func(*Agent)

func WithModel(model string) Option {
	return func(a *Agent) { a.model = model }
}

func WithDescription(description string) Option {
	return func(a *Agent) { a.description = description }
}

func WithInstruction(instruction string) Option {
	return func(a *Agent) { a.instruction = instruction }
}

func WithTools(list ...tools.ITool) Option {
	return func(a *Agent) {
		for _, tool := range list {
			a.tools = append(a.tools, tool)
			a.toolsByName[tool.Name()] = tool
		}
	}
}

func WithCallback(cb tools.Callback) Option {
	return func(a *Agent) { a.callback = cb }
}

// New creates an agent.
func New(name string, opts ...Option) *Agent {
	a := &Agent{
		name:        name,
		toolsByName: make(map[string]tools.ITool),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *Agent) Name() string        { return a.name }
func (a *Agent) Model() string       { return a.model }
func (a *Agent) Description() string { return a.description }
func (a *Agent) Instruction() string { return a.instruction }

// Tools returns the registered tools, in registration order.
func (a *Agent) Tools() []tools.ITool {
	return a.tools
}

// GetTool returns a registered tool by name.
func (a *Agent) GetTool(name string) (tools.ITool, bool) {
	tool, ok := a.toolsByName[name]
	return tool, ok
}

// CallTool dispatches a named tool with the given input and forwards its
// output unmodified.
func (a *Agent) CallTool(ctx context.Context, name, input string) (string, error) {
	tool, ok := a.toolsByName[name]
	if !ok {
		metricskey.StatsToolCallsNotFound.IncrCounter(1, name)
		return "", errors.Errorf("tool not found: %s", name)
	}

	runID := uuid.NewString()
	logger.KV(xlog.DEBUG,
		"status", "tool_call",
		"agent", a.name,
		"tool", name,
		"run_id", runID,
		"input", input)

	if a.callback != nil {
		a.callback.OnToolStart(ctx, tool, input)
	}

	started := time.Now()
	out, err := tool.Call(ctx, input)
	metricskey.PerfToolCall.MeasureSince(started, name)
	if err != nil {
		metricskey.StatsToolCallsFailed.IncrCounter(1, name)
		if a.callback != nil {
			a.callback.OnToolError(ctx, tool, input, err)
		}
		logger.KV(xlog.ERROR,
			"status", "tool_call_failed",
			"agent", a.name,
			"tool", name,
			"run_id", runID,
			"err", err.Error())
		return "", err
	}

	metricskey.StatsToolCallsSucceeded.IncrCounter(1, name)
	if a.callback != nil {
		a.callback.OnToolEnd(ctx, tool, input, out)
	}
	return out, nil
}
