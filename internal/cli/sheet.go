package cli

import (
	"fmt"

	"github.com/effective-security/hsncheck/gsheet"
	"github.com/effective-security/hsncheck/hsn"
	"github.com/effective-security/hsncheck/pkg/llmutils"
	"github.com/spf13/cobra"
)

var sheetCmd = &cobra.Command{
	Use:   "sheet",
	Short: "Fetch the master data sheet and print the canonical table",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := hsn.LoadConfig(cfgFile)
		if err != nil {
			return err
		}

		store := hsn.NewStore(cfg, gsheet.NewClient(cfg))
		if err := store.Reload(cmd.Context()); err != nil {
			return err
		}

		rows := store.Rows()
		switch {
		case jsonOut:
			fmt.Fprintln(cmd.OutOrStdout(), llmutils.ToJSONIndent(rows))
		case yamlOut:
			fmt.Fprint(cmd.OutOrStdout(), llmutils.ToYAML(rows))
		default:
			for _, row := range rows {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", row.Code, row.Description)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d codes loaded\n", store.Count())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sheetCmd)
}
