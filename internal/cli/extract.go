package cli

import "strings"

var queryPrefixes = []string{
	"validate HSN codes",
	"validate HSN code",
	"validate",
	"check HSN codes",
	"check HSN",
}

// ExtractCodes pulls candidate HSN codes out of a free-text query.
// It first collects whitespace-separated digit tokens, stripping commas
// and periods. Failing that, it removes common command prefixes, splits
// on "and" and keeps the numeric segments. A query that is itself one
// number is taken as the code. Returns nil when nothing numeric is found.
func ExtractCodes(query string) []string {
	var codes []string
	for _, word := range strings.Fields(query) {
		word = strings.Trim(word, ",.")
		if isNumeric(word) {
			codes = append(codes, word)
		}
	}
	if len(codes) > 0 {
		return codes
	}

	cleaned := query
	for _, prefix := range queryPrefixes {
		cleaned = strings.Replace(cleaned, prefix, "", 1)
	}
	for _, part := range strings.Split(cleaned, "and") {
		part = strings.TrimSpace(part)
		if isNumeric(part) {
			codes = append(codes, part)
		}
	}
	if len(codes) > 0 {
		return codes
	}

	if q := strings.TrimSpace(query); isNumeric(q) {
		return []string{q}
	}
	return nil
}

func isNumeric(s string) bool {
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
