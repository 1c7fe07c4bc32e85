// Package cli implements the hsncheck command line interface.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/effective-security/hsncheck/agents"
	"github.com/effective-security/hsncheck/gsheet"
	"github.com/effective-security/hsncheck/hsn"
	"github.com/effective-security/hsncheck/tools/hsnvalidator"
	"github.com/effective-security/xlog"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

const agentName = "hsn_direct_gsheet_validator_v1"

var (
	cfgFile string
	verbose bool
	jsonOut bool
	yamlOut bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "hsncheck",
	Short: "hsncheck - HSN code validation against Google Sheets master data",
	Long: `hsncheck validates HSN tariff classification codes against a master
dataset maintained in a Google Sheet, and exposes the validation as an
agent tool.

The master data source is configured with a config file or environment
variables (SPREADSHEET_ID, HSN_SHEET_NAME, SERVICE_ACCOUNT_FILE_PATH),
optionally loaded from a .env file in the working directory.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "hsncheck v0.1.0")
	},
}

func init() {
	cobra.OnInitialize(initLogging)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: environment only)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "print results as JSON")
	rootCmd.PersistentFlags().BoolVar(&yamlOut, "yaml", false, "print results as YAML")

	rootCmd.AddCommand(versionCmd)
}

func initLogging() {
	// .env in the working directory supplies the source configuration,
	// missing file is fine
	_ = godotenv.Load()

	xlog.SetFormatter(xlog.NewStringFormatter(os.Stderr))
	if verbose {
		xlog.SetGlobalLogLevel(xlog.DEBUG)
	} else {
		xlog.SetGlobalLogLevel(xlog.WARNING)
	}
}

// newAgent builds the configured store, reloads the master data and
// wraps the validation tool in the agent.
func newAgent(ctx context.Context) (*agents.Agent, *hsn.Config, error) {
	cfg, err := hsn.LoadConfig(cfgFile)
	if err != nil {
		return nil, nil, err
	}

	store := hsn.NewStore(cfg, gsheet.NewClient(cfg))
	if err := store.Reload(ctx); err != nil {
		return nil, nil, err
	}

	tool, err := hsnvalidator.New(store)
	if err != nil {
		return nil, nil, err
	}

	agent := agents.New(agentName,
		agents.WithModel(cfg.GeminiModel),
		agents.WithDescription("Validates HSN codes using a tool that accesses a master dataset in a Google Sheet."),
		agents.WithInstruction("This agent contains a tool to validate HSN codes."),
		agents.WithTools(tool))
	return agent, cfg, nil
}
