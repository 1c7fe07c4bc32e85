package cli

import (
	"encoding/json"
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/hsncheck/pkg/llmutils"
	"github.com/effective-security/hsncheck/tools/hsnvalidator"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <code> [code...]",
	Short: "Validate HSN codes against the master data",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runValidation(cmd, args)
	},
}

var queryCmd = &cobra.Command{
	Use:   "query \"<free text>\"",
	Short: "Extract HSN codes from a free-text question and validate them",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		codes := ExtractCodes(args[0])
		if len(codes) == 0 {
			return errors.Errorf("no HSN codes found in query: %q", args[0])
		}
		return runValidation(cmd, codes)
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(queryCmd)
}

func runValidation(cmd *cobra.Command, codes []string) error {
	agent, _, err := newAgent(cmd.Context())
	if err != nil {
		return err
	}

	req := hsnvalidator.ValidateRequest{Codes: codes}
	out, err := agent.CallTool(cmd.Context(), hsnvalidator.ToolName, llmutils.ToJSON(req))
	if err != nil {
		return err
	}

	var res hsnvalidator.ValidateResult
	if err := json.Unmarshal([]byte(out), &res); err != nil {
		return errors.WithMessage(err, "unexpected tool result")
	}
	printResult(cmd, &res)
	return nil
}

func printResult(cmd *cobra.Command, res *hsnvalidator.ValidateResult) {
	switch {
	case jsonOut:
		fmt.Fprintln(cmd.OutOrStdout(), llmutils.ToJSONIndent(res))
	case yamlOut:
		fmt.Fprint(cmd.OutOrStdout(), llmutils.ToYAML(res))
	default:
		for _, v := range res.Results {
			fmt.Fprintf(cmd.OutOrStdout(), "HSN: %s, Status: %s, Message: %s\n",
				v.Code, v.Status, v.Message)
		}
	}
}
