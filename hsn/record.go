// Package hsn implements loading, normalization and validation of HSN
// tariff classification codes against an externally sourced master dataset.
package hsn

import (
	"sort"
	"strings"
)

// Record is a raw spreadsheet row, mapping column header to cell value.
type Record map[string]string

// Row is a canonical {code, description} pair derived from a Record.
type Row struct {
	Code        string `json:"hsn_code" yaml:"hsn_code"`
	Description string `json:"description" yaml:"description"`
}

// Table is the ordered sequence of canonical rows whose codes passed the
// non-empty all-digit filter.
type Table []Row

// Index maps code to description. On duplicate codes the later row wins.
type Index map[string]string

// normalizeHeader folds case, spaces and underscores so that header
// variants like "HSN Code", "hsn_code" and "HSNCode" compare equal.
func normalizeHeader(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "_", "")
	return s
}

// ResolveColumn finds the header whose normalized form equals the
// normalized expected key. It returns false when no header matches;
// the caller decides whether to fall back to the expected key literally.
// Headers are scanned in sorted order so resolution is deterministic
// when several variants normalize to the same form.
func ResolveColumn(headers []string, expected string) (string, bool) {
	want := normalizeHeader(expected)
	sorted := make([]string, len(headers))
	copy(sorted, headers)
	sort.Strings(sorted)
	for _, h := range sorted {
		if normalizeHeader(h) == want {
			return h, true
		}
	}
	return "", false
}

// isDigits reports whether s is non-empty and consists only of
// decimal digit characters.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
