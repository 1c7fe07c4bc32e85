package hsn

import (
	"strings"

	"github.com/effective-security/xlog"
)

var logger = xlog.NewPackageLogger("github.com/effective-security/hsncheck", "hsn")

// Load converts raw records into the canonical code table and lookup index.
//
// Column headers are resolved once, from the first record: each expected
// key is matched to the actual headers ignoring case, spaces and
// underscores, and falls back to the expected key verbatim when nothing
// matches. Every record yields exactly one canonical row; rows whose code
// is empty or not all digits are then filtered out. The index is built in
// table order, the later of two rows with the same code winning.
//
// Empty input produces empty outputs: an empty sheet and a failed fetch
// are the same degraded but valid state, not an error.
func Load(records []Record, codeKey, descKey string) (Table, Index) {
	if codeKey == "" || descKey == "" {
		logger.KV(xlog.ERROR, "status", "missing_column_keys")
		return Table{}, Index{}
	}
	if len(records) == 0 {
		logger.KV(xlog.WARNING, "status", "no_records")
		return Table{}, Index{}
	}

	headers := make([]string, 0, len(records[0]))
	for h := range records[0] {
		headers = append(headers, h)
	}

	codeCol, ok := ResolveColumn(headers, codeKey)
	if !ok {
		logger.KV(xlog.WARNING,
			"status", "code_column_not_matched",
			"expected", codeKey,
			"headers", headers)
		codeCol = codeKey
	}
	descCol, ok := ResolveColumn(headers, descKey)
	if !ok {
		logger.KV(xlog.WARNING,
			"status", "description_column_not_matched",
			"expected", descKey,
			"headers", headers)
		descCol = descKey
	}

	table := make(Table, 0, len(records))
	dropped := 0
	for _, rec := range records {
		row := Row{
			Code:        strings.TrimSpace(rec[codeCol]),
			Description: strings.TrimSpace(rec[descCol]),
		}
		if !isDigits(row.Code) {
			dropped++
			continue
		}
		table = append(table, row)
	}

	index := make(Index, len(table))
	for _, row := range table {
		index[row.Code] = row.Description
	}

	logger.KV(xlog.INFO,
		"status", "loaded",
		"records", len(records),
		"rows", len(table),
		"dropped", dropped,
		"codes", len(index))

	return table, index
}
