package handler

import (
	"sortcheck/internal/validation"
)

// ValidateResponse is the HTTP response for POST /v1/validate.
type ValidateResponse struct {
	SortCode      string          `json:"sort_code"`
	AccountNumber string          `json:"account_number"`
	Verdict       string          `json:"verdict"`
	Attempts      int             `json:"attempts"`
	Trace         []TraceResponse `json:"trace"`
	Cached        bool            `json:"cached"`
}

// TraceResponse is one checksum evaluation in the response.
type TraceResponse struct {
	Exception int    `json:"exception"`
	Method    string `json:"method"`
	Remainder int    `json:"remainder"`
	Total     int    `json:"total"`
	Result    string `json:"result"`
}

// FromResult converts a domain Result to an HTTP response.
func FromResult(result *validation.Result) *ValidateResponse {
	trace := make([]TraceResponse, 0, len(result.Trace))
	for _, entry := range result.Trace {
		trace = append(trace, TraceResponse{
			Exception: entry.Exception,
			Method:    string(entry.Method),
			Remainder: entry.Remainder,
			Total:     entry.Total,
			Result:    string(entry.Result),
		})
	}
	return &ValidateResponse{
		SortCode:      result.SortCode,
		AccountNumber: result.AccountNumber,
		Verdict:       string(result.Verdict),
		Attempts:      result.Attempts,
		Trace:         trace,
		Cached:        result.Cached,
	}
}
