// Package gsheet fetches master data records from a Google Sheet using
// service account credentials.
package gsheet

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/effective-security/hsncheck/hsn"
	"github.com/effective-security/xlog"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

var logger = xlog.NewPackageLogger("github.com/effective-security/hsncheck", "gsheet")

// Client reads one worksheet and exposes it as raw records.
// Every expected failure mode, such as missing credentials, an unknown
// spreadsheet or an API error, yields an empty result with a logged
// reason rather than an error: the store treats that as "source empty".
type Client struct {
	spreadsheetID   string
	sheetName       string
	credentialsFile string

	mu  sync.Mutex
	svc *sheets.Service
}

var _ hsn.Fetcher = (*Client)(nil)

// NewClient creates a Sheets client for the configured source.
func NewClient(cfg *hsn.Config) *Client {
	return &Client{
		spreadsheetID:   cfg.SpreadsheetID,
		sheetName:       cfg.SheetName,
		credentialsFile: cfg.CredentialsFile,
	}
}

// WithService overrides the Sheets service, for tests.
func (c *Client) WithService(svc *sheets.Service) *Client {
	c.svc = svc
	return c
}

func (c *Client) service(ctx context.Context) (*sheets.Service, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.svc != nil {
		return c.svc, nil
	}
	svc, err := sheets.NewService(ctx,
		option.WithCredentialsFile(c.credentialsFile),
		option.WithScopes(sheets.SpreadsheetsReadonlyScope))
	if err != nil {
		return nil, err
	}
	c.svc = svc
	return svc, nil
}

// Fetch returns all rows of the worksheet as header-mapped records.
func (c *Client) Fetch(ctx context.Context) ([]hsn.Record, error) {
	if c.spreadsheetID == "" || c.sheetName == "" {
		logger.KV(xlog.ERROR, "status", "missing_spreadsheet_id_or_sheet_name")
		return nil, nil
	}
	if c.credentialsFile == "" {
		logger.KV(xlog.ERROR, "status", "missing_credentials_file")
		return nil, nil
	}
	if _, err := os.Stat(c.credentialsFile); err != nil {
		logger.KV(xlog.ERROR,
			"status", "credentials_file_not_found",
			"path", c.credentialsFile)
		return nil, nil
	}

	svc, err := c.service(ctx)
	if err != nil {
		logger.KV(xlog.ERROR,
			"status", "failed_to_create_service",
			"err", err.Error())
		return nil, nil
	}

	vr, err := svc.Spreadsheets.Values.Get(c.spreadsheetID, c.sheetName).Context(ctx).Do()
	if err != nil {
		logger.KV(xlog.ERROR,
			"status", "failed_to_fetch",
			"spreadsheet_id", c.spreadsheetID,
			"sheet_name", c.sheetName,
			"err", err.Error())
		return nil, nil
	}

	records := RecordsFromRows(vr.Values)
	logger.KV(xlog.INFO,
		"status", "fetched",
		"sheet_name", c.sheetName,
		"records", len(records))
	return records, nil
}

// RecordsFromRows converts a raw value grid into header-mapped records.
// The first row is the header row, with surrounding whitespace trimmed.
// Short data rows pad with empty strings; cells beyond the header row
// are dropped. Numeric cells render as their digit string.
func RecordsFromRows(rows [][]any) []hsn.Record {
	if len(rows) < 2 {
		return nil
	}

	headers := make([]string, len(rows[0]))
	for i, cell := range rows[0] {
		headers[i] = strings.TrimSpace(cellString(cell))
	}

	records := make([]hsn.Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := make(hsn.Record, len(headers))
		for i, h := range headers {
			if i < len(row) {
				rec[h] = cellString(row[i])
			} else {
				rec[h] = ""
			}
		}
		records = append(records, rec)
	}
	return records
}

func cellString(cell any) string {
	if cell == nil {
		return ""
	}
	if s, ok := cell.(string); ok {
		return s
	}
	return fmt.Sprint(cell)
}
