package agents

import (
	"context"
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"google.golang.org/genai"
)

// Answerer phrases a tool result as a natural language reply.
type Answerer interface {
	Answer(ctx context.Context, instruction, question, toolResult string) (string, error)
}

// Gemini phrases answers with the Gemini API.
type Gemini struct {
	client *genai.Client
	model  string
}

var _ Answerer = (*Gemini)(nil)

// NewGemini creates a Gemini answerer. The API key is required;
// callers without one should skip the answer step entirely.
func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	if apiKey == "" {
		return nil, errors.New("google api key is not set")
	}
	if model == "" {
		return nil, errors.New("model is not set")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, errors.WithMessage(err, "failed to create Gemini client")
	}
	return &Gemini{
		client: client,
		model:  model,
	}, nil
}

func (g *Gemini) Answer(ctx context.Context, instruction, question, toolResult string) (string, error) {
	var sb strings.Builder
	if instruction != "" {
		fmt.Fprintf(&sb, "%s\n\n", instruction)
	}
	fmt.Fprintf(&sb, "User question:\n%s\n\n", question)
	fmt.Fprintf(&sb, "Validation results (JSON):\n%s\n\n", toolResult)
	sb.WriteString("Answer the user question in plain language using only the validation results above.")

	resp, err := g.client.Models.GenerateContent(ctx, g.model,
		genai.Text(sb.String()), nil)
	if err != nil {
		return "", errors.WithMessage(err, "failed to generate answer")
	}
	return resp.Text(), nil
}
