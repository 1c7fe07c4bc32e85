package agents

import (
	"context"
	"fmt"
	"io"

	"github.com/effective-security/hsncheck/tools"
)

// NoopCallback does nothing.
type NoopCallback struct{}

func NewNoopCallback() *NoopCallback {
	return &NoopCallback{}
}

var _ tools.Callback = (*NoopCallback)(nil)

func (l *NoopCallback) OnToolStart(ctx context.Context, tool tools.ITool, input string) {}
func (l *NoopCallback) OnToolEnd(ctx context.Context, tool tools.ITool, input string, output string) {
}
func (l *NoopCallback) OnToolError(ctx context.Context, tool tools.ITool, input string, err error) {}

// PrinterCallback is a callback handler that prints to the Writer.
type PrinterCallback struct {
	Out io.Writer
}

func NewPrinterCallback(out io.Writer) *PrinterCallback {
	return &PrinterCallback{Out: out}
}

var _ tools.Callback = (*PrinterCallback)(nil)

func (l *PrinterCallback) OnToolStart(ctx context.Context, tool tools.ITool, input string) {
	fmt.Fprintf(l.Out, "Tool Start: %s\n", tool.Name())
	fmt.Fprintf(l.Out, "Input: %s\n", input)
}

func (l *PrinterCallback) OnToolEnd(ctx context.Context, tool tools.ITool, input string, output string) {
	fmt.Fprintf(l.Out, "Tool End: %s\n", tool.Name())
	fmt.Fprintln(l.Out, output)
}

func (l *PrinterCallback) OnToolError(ctx context.Context, tool tools.ITool, input string, err error) {
	fmt.Fprintf(l.Out, "Tool Error: %s: %s\n", tool.Name(), err.Error())
}
