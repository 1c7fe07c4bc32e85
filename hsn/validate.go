package hsn

import (
	"fmt"
	"strings"

	"github.com/effective-security/hsncheck/pkg/metricskey"
)

// Status classifies a validation verdict.
type Status string

const (
	StatusValid   Status = "valid"
	StatusInvalid Status = "invalid"
	// StatusError is reserved for the no-master-data case; individual
	// syntactic or lookup failures are always StatusInvalid.
	StatusError Status = "error"
)

// Verdict is the validation result for a single code.
type Verdict struct {
	Code        string `json:"hsn_code" yaml:"hsn_code"`
	Status      Status `json:"status" yaml:"status"`
	Message     string `json:"message" yaml:"message"`
	Description string `json:"description" yaml:"description"`
}

// Validate checks each code against the index and returns one verdict per
// code, in input order. When the index is empty every code yields
// StatusError, since no meaningful validation is possible.
func Validate(codes []string, index Index) []Verdict {
	results := make([]Verdict, 0, len(codes))
	if len(index) == 0 {
		for _, code := range codes {
			results = append(results, Verdict{
				Code:    strings.TrimSpace(code),
				Status:  StatusError,
				Message: "HSN master data not available or empty.",
			})
			metricskey.StatsValidations.IncrCounter(1, string(StatusError))
		}
		return results
	}

	for _, code := range codes {
		v := ValidateOne(code, index)
		metricskey.StatsValidations.IncrCounter(1, string(v.Status))
		results = append(results, v)
	}
	return results
}

// ValidateOne classifies a single code against a non-empty index.
func ValidateOne(code string, index Index) Verdict {
	code = strings.TrimSpace(code)
	v := Verdict{Code: code, Status: StatusInvalid}

	switch {
	case code == "":
		v.Message = "HSN code cannot be empty."
	case !isDigits(code):
		v.Message = "HSN code must be numeric."
	// A length rule (2, 4, 6 or 8 digits) could be added here,
	// but is intentionally not enforced.
	default:
		if desc, ok := index[code]; ok {
			v.Status = StatusValid
			v.Message = fmt.Sprintf("HSN code is valid. Description: %s", desc)
			v.Description = desc
		} else {
			v.Message = "HSN code not found in master data."
		}
	}
	return v
}
