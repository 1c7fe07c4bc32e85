// Package metricskey describes the metrics emitted by this repo.
package metricskey

import "github.com/effective-security/metrics"

// Stats
var (
	// StatsMasterDataLoads is counter metric for master data reloads
	StatsMasterDataLoads = metrics.Describe{
		Type:         metrics.TypeCounter,
		Name:         "stats_masterdata_loads",
		Help:         "stats_masterdata_loads provides total master data reloads",
		RequiredTags: []string{"source"},
	}

	StatsMasterDataRows = metrics.Describe{
		Type:         metrics.TypeCounter,
		Name:         "stats_masterdata_rows",
		Help:         "stats_masterdata_rows provides total rows kept after filtering",
		RequiredTags: []string{"source"},
	}

	StatsMasterDataRowsDropped = metrics.Describe{
		Type:         metrics.TypeCounter,
		Name:         "stats_masterdata_rows_dropped",
		Help:         "stats_masterdata_rows_dropped provides total rows dropped by the code filter",
		RequiredTags: []string{"source"},
	}

	StatsValidations = metrics.Describe{
		Type:         metrics.TypeCounter,
		Name:         "stats_validations",
		Help:         "stats_validations provides total code validations by verdict status",
		RequiredTags: []string{"status"},
	}

	StatsToolCallsSucceeded = metrics.Describe{
		Type:         metrics.TypeCounter,
		Name:         "stats_tool_calls_succeeded",
		Help:         "stats_tool_calls_succeeded provides total tool calls succeeded",
		RequiredTags: []string{"tool"},
	}

	StatsToolCallsFailed = metrics.Describe{
		Type:         metrics.TypeCounter,
		Name:         "stats_tool_calls_failed",
		Help:         "stats_tool_calls_failed provides total tool calls failed",
		RequiredTags: []string{"tool"},
	}

	StatsToolCallsNotFound = metrics.Describe{
		Type:         metrics.TypeCounter,
		Name:         "stats_tool_calls_not_found",
		Help:         "stats_tool_calls_not_found provides total tool calls not found",
		RequiredTags: []string{"tool"},
	}
)

// Perf
var (
	PerfMasterDataLoad = metrics.Describe{
		Type:         metrics.TypeSample,
		Name:         "perf_masterdata_load",
		Help:         "perf_masterdata_load provides duration of master data reload",
		RequiredTags: []string{"source"},
	}

	PerfToolCall = metrics.Describe{
		Type:         metrics.TypeSample,
		Name:         "perf_tool_call",
		Help:         "perf_tool_call provides duration of tool call",
		RequiredTags: []string{"tool"},
	}
)

// Metrics returns slice of metrics from this repo
// keep sorted by name
var Metrics = []*metrics.Describe{
	&PerfMasterDataLoad,
	&PerfToolCall,
	&StatsMasterDataLoads,
	&StatsMasterDataRows,
	&StatsMasterDataRowsDropped,
	&StatsToolCallsFailed,
	&StatsToolCallsNotFound,
	&StatsToolCallsSucceeded,
	&StatsValidations,
}
