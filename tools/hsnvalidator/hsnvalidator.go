// Package hsnvalidator provides the agent tool that validates HSN codes
// against the loaded master data.
package hsnvalidator

import (
	"context"
	"encoding/json"
	"reflect"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/hsncheck/hsn"
	"github.com/effective-security/hsncheck/pkg/llmutils"
	"github.com/effective-security/hsncheck/pkg/schema"
	"github.com/effective-security/hsncheck/tools"
)

const ToolName = "ValidateHSNCode"

// ValidateRequest represents the tool input.
type ValidateRequest struct {
	Codes []string `json:"Codes" yaml:"Codes" jsonschema:"title=Codes,description=One or more HSN codes to validate against the master data."`
}

// ValidateResult represents the verdicts for the requested codes,
// in request order.
type ValidateResult struct {
	Results []hsn.Verdict `json:"results" yaml:"Results" jsonschema:"title=results,description=One verdict per requested code."`
}

// Tool validates HSN codes against the master data store.
type Tool struct {
	name        string
	description string
	funcParams  any

	store *hsn.Store
}

// ensure Tool implements the generic tool interface
var _ tools.Tool[ValidateRequest, ValidateResult] = (*Tool)(nil)

func New(store *hsn.Store) (*Tool, error) {
	if store == nil {
		return nil, errors.New("master data store is not set")
	}
	sc, err := schema.New(reflect.TypeOf(ValidateRequest{}))
	if err != nil {
		return nil, errors.WithMessage(err, "failed to create schema")
	}
	tool := &Tool{
		name:        ToolName,
		description: "Validates HSN codes against the master dataset loaded from a Google Sheet.",
		funcParams:  sc.Parameters,
		store:       store,
	}
	return tool, nil
}

func (t *Tool) Name() string {
	return t.name
}

func (t *Tool) Description() string {
	return t.description
}

func (t *Tool) Parameters() any {
	return t.funcParams
}

func (t *Tool) Run(ctx context.Context, req *ValidateRequest) (*ValidateResult, error) {
	if len(req.Codes) == 0 {
		return nil, errors.New("invalid request: no codes")
	}
	res := &ValidateResult{
		Results: t.store.Validate(req.Codes...),
	}
	return res, nil
}

// Call accepts the canonical {"Codes": [...]} object, but tolerates a
// bare JSON array or a bare string, since models pass single codes both
// ways. The verdict sequence is forwarded unmodified.
func (t *Tool) Call(ctx context.Context, input string) (string, error) {
	req, err := parseInput(input)
	if err != nil {
		return "", err
	}
	out, err := t.Run(ctx, req)
	if err != nil {
		return "", err
	}
	return llmutils.ToJSON(out), nil
}

func parseInput(input string) (*ValidateRequest, error) {
	bs := llmutils.CleanJSON([]byte(input))

	var req ValidateRequest
	if err := json.Unmarshal(bs, &req); err == nil {
		return &req, nil
	}
	var codes []string
	if err := json.Unmarshal(bs, &codes); err == nil {
		return &ValidateRequest{Codes: codes}, nil
	}
	var code string
	if err := json.Unmarshal(bs, &code); err == nil {
		return &ValidateRequest{Codes: []string{code}}, nil
	}
	if s := llmutils.TrimBackticks(input); s != "" {
		return &ValidateRequest{Codes: []string{s}}, nil
	}
	return nil, errors.New("failed to unmarshal input")
}
