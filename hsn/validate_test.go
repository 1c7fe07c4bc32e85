package hsn_test

import (
	"testing"

	"github.com/effective-security/hsncheck/hsn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testIndex = hsn.Index{
	"0101":     "LIVE HORSES, ASSES, MULES AND HINNIES",
	"02021000": "CARCASSES AND HALF-CARCASSES",
}

func TestValidateEmptyIndex(t *testing.T) {
	for _, index := range []hsn.Index{nil, {}} {
		results := hsn.Validate([]string{"0101", "bad", ""}, index)
		require.Len(t, results, 3)
		for _, v := range results {
			assert.Equal(t, hsn.StatusError, v.Status)
			assert.Equal(t, "HSN master data not available or empty.", v.Message)
			assert.Empty(t, v.Description)
		}
	}
}

func TestValidateOne(t *testing.T) {
	tcases := []struct {
		name    string
		code    string
		status  hsn.Status
		message string
		desc    string
	}{
		{"valid", "0101", hsn.StatusValid, "HSN code is valid. Description: LIVE HORSES, ASSES, MULES AND HINNIES", "LIVE HORSES, ASSES, MULES AND HINNIES"},
		{"valid_trimmed", " 02021000 ", hsn.StatusValid, "HSN code is valid. Description: CARCASSES AND HALF-CARCASSES", "CARCASSES AND HALF-CARCASSES"},
		{"empty", "", hsn.StatusInvalid, "HSN code cannot be empty.", ""},
		{"blank", "   ", hsn.StatusInvalid, "HSN code cannot be empty.", ""},
		{"alpha", "AB12", hsn.StatusInvalid, "HSN code must be numeric.", ""},
		{"mixed", "01O1", hsn.StatusInvalid, "HSN code must be numeric.", ""},
		{"signed", "-101", hsn.StatusInvalid, "HSN code must be numeric.", ""},
		{"not_found", "99987", hsn.StatusInvalid, "HSN code not found in master data.", ""},
	}
	for _, tc := range tcases {
		t.Run(tc.name, func(t *testing.T) {
			v := hsn.ValidateOne(tc.code, testIndex)
			assert.Equal(t, tc.status, v.Status)
			assert.Equal(t, tc.message, v.Message)
			assert.Equal(t, tc.desc, v.Description)
		})
	}
}

func TestValidateOrderPreserved(t *testing.T) {
	results := hsn.Validate([]string{"0101", "99987"}, testIndex)
	require.Len(t, results, 2)
	assert.Equal(t, "0101", results[0].Code)
	assert.Equal(t, hsn.StatusValid, results[0].Status)
	assert.Equal(t, "99987", results[1].Code)
	assert.Equal(t, hsn.StatusInvalid, results[1].Status)
	assert.Equal(t, "HSN code not found in master data.", results[1].Message)
}

func TestValidateNoErrorWithData(t *testing.T) {
	// once the index is non-empty, no code is ever marked error
	results := hsn.Validate([]string{"", "xx", "0101", "12345"}, testIndex)
	for _, v := range results {
		assert.NotEqual(t, hsn.StatusError, v.Status)
	}
}
