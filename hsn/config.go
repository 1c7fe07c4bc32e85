package hsn

import (
	"os"

	"github.com/effective-security/x/configloader"
	"github.com/effective-security/x/values"
	"github.com/go-playground/validator/v10"
)

const (
	DefaultCodeColumn  = "HSNCode"
	DefaultDescColumn  = "Description"
	DefaultGeminiModel = "gemini-1.5-flash-latest"
)

// Config describes the master data source and the agent model.
// Spreadsheet ID, sheet name and credentials file may be empty at parse
// time: their absence makes Reload install empty data rather than fail.
type Config struct {
	// SpreadsheetID specifies the Google Sheet holding the master data.
	SpreadsheetID string `json:"spreadsheet_id,omitempty" yaml:"spreadsheet_id,omitempty"`
	// SheetName specifies the worksheet name within the spreadsheet.
	SheetName string `json:"sheet_name,omitempty" yaml:"sheet_name,omitempty"`
	// CredentialsFile specifies the service account key file path.
	CredentialsFile string `json:"credentials_file,omitempty" yaml:"credentials_file,omitempty"`
	// CodeColumn specifies the expected header of the code column.
	CodeColumn string `json:"code_column" yaml:"code_column" validate:"required"`
	// DescColumn specifies the expected header of the description column.
	DescColumn string `json:"desc_column" yaml:"desc_column" validate:"required"`
	// GeminiModel specifies the model used to phrase agent answers.
	GeminiModel string `json:"gemini_model,omitempty" yaml:"gemini_model,omitempty"`
	// GoogleAPIKey enables the Gemini answer step when set.
	GoogleAPIKey string `json:"google_api_key,omitempty" yaml:"google_api_key,omitempty"`
}

// LoadConfig reads the config from a YAML or JSON file, then applies
// environment variable overrides and defaults. An empty file name loads
// from the environment alone.
func LoadConfig(file string) (*Config, error) {
	cfg := new(Config)
	if file != "" {
		err := configloader.UnmarshalAndExpand(file, cfg)
		if err != nil {
			return nil, err
		}
	}

	cfg.SpreadsheetID = values.StringsCoalesce(cfg.SpreadsheetID, os.Getenv("SPREADSHEET_ID"))
	cfg.SheetName = values.StringsCoalesce(cfg.SheetName, os.Getenv("HSN_SHEET_NAME"))
	cfg.CredentialsFile = values.StringsCoalesce(cfg.CredentialsFile, os.Getenv("SERVICE_ACCOUNT_FILE_PATH"))
	cfg.CodeColumn = values.StringsCoalesce(cfg.CodeColumn, os.Getenv("EXPECTED_HSN_COLUMN_IN_SHEET"), DefaultCodeColumn)
	cfg.DescColumn = values.StringsCoalesce(cfg.DescColumn, os.Getenv("EXPECTED_DESC_COLUMN_IN_SHEET"), DefaultDescColumn)
	cfg.GeminiModel = values.StringsCoalesce(cfg.GeminiModel, os.Getenv("GEMINI_MODEL_ID"), DefaultGeminiModel)
	cfg.GoogleAPIKey = values.StringsCoalesce(cfg.GoogleAPIKey, os.Getenv("GOOGLE_API_KEY"))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the required fields.
func (c *Config) Validate() error {
	return validator.New().Struct(c)
}

// SourceConfigured reports whether all fields needed to fetch the
// master data are present.
func (c *Config) SourceConfigured() bool {
	return c.SpreadsheetID != "" && c.SheetName != "" && c.CredentialsFile != ""
}
