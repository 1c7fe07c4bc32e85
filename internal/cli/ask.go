package cli

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/hsncheck/agents"
	"github.com/effective-security/hsncheck/pkg/llmutils"
	"github.com/effective-security/hsncheck/tools/hsnvalidator"
	"github.com/spf13/cobra"
)

var askCmd = &cobra.Command{
	Use:   "ask \"<question>\"",
	Short: "Validate codes from a question and phrase the answer with Gemini",
	Long: `Extracts HSN codes from the question, validates them, and asks the
configured Gemini model to phrase the verdicts as a plain answer.
Requires GOOGLE_API_KEY.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		question := args[0]
		codes := ExtractCodes(question)
		if len(codes) == 0 {
			return errors.Errorf("no HSN codes found in question: %q", question)
		}

		agent, cfg, err := newAgent(cmd.Context())
		if err != nil {
			return err
		}

		req := hsnvalidator.ValidateRequest{Codes: codes}
		out, err := agent.CallTool(cmd.Context(), hsnvalidator.ToolName, llmutils.ToJSON(req))
		if err != nil {
			return err
		}

		answerer, err := agents.NewGemini(cmd.Context(), cfg.GoogleAPIKey, agent.Model())
		if err != nil {
			return err
		}
		answer, err := answerer.Answer(cmd.Context(), agent.Instruction(), question, out)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), answer)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(askCmd)
}
