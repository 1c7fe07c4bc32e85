package gsheet_test

import (
	"context"
	"testing"

	"github.com/effective-security/hsncheck/gsheet"
	"github.com/effective-security/hsncheck/hsn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordsFromRows(t *testing.T) {
	rows := [][]any{
		{" HSN Code ", "Description"},
		{"0101", "LIVE HORSES"},
		{202, "BOVINE"},
		{"0303"},
		{nil, "no code"},
	}
	records := gsheet.RecordsFromRows(rows)
	require.Len(t, records, 4)

	assert.Equal(t, hsn.Record{"HSN Code": "0101", "Description": "LIVE HORSES"}, records[0])
	// numeric cells become digit strings
	assert.Equal(t, "202", records[1]["HSN Code"])
	// short rows pad with empty strings
	assert.Equal(t, "", records[2]["Description"])
	assert.Equal(t, hsn.Record{"HSN Code": "", "Description": "no code"}, records[3])
}

func TestRecordsFromRowsExtraCellsDropped(t *testing.T) {
	rows := [][]any{
		{"HSNCode", "Description"},
		{"0101", "Horses", "stray cell"},
	}
	records := gsheet.RecordsFromRows(rows)
	require.Len(t, records, 1)
	assert.Len(t, records[0], 2)
}

func TestRecordsFromRowsHeaderOnly(t *testing.T) {
	assert.Nil(t, gsheet.RecordsFromRows([][]any{{"HSNCode", "Description"}}))
	assert.Nil(t, gsheet.RecordsFromRows(nil))
}

func TestFetchDegradedWithoutSource(t *testing.T) {
	ctx := context.Background()

	// missing spreadsheet id or sheet name
	c := gsheet.NewClient(&hsn.Config{CredentialsFile: "/tmp/sa.json"})
	records, err := c.Fetch(ctx)
	assert.NoError(t, err)
	assert.Empty(t, records)

	// missing credentials file path
	c = gsheet.NewClient(&hsn.Config{SpreadsheetID: "id", SheetName: "HSN_Master"})
	records, err = c.Fetch(ctx)
	assert.NoError(t, err)
	assert.Empty(t, records)

	// credentials file does not exist
	c = gsheet.NewClient(&hsn.Config{
		SpreadsheetID:   "id",
		SheetName:       "HSN_Master",
		CredentialsFile: "/nonexistent/sa.json",
	})
	records, err = c.Fetch(ctx)
	assert.NoError(t, err)
	assert.Empty(t, records)
}
