package handler

import (
	"strings"

	dErrors "sortcheck/pkg/domain-errors"
)

// ValidateRequest is the HTTP request body for POST /v1/validate.
type ValidateRequest struct {
	SortCode      string `json:"sort_code"`
	AccountNumber string `json:"account_number"`
}

// Validate checks request shape. Format rules (lengths, digits,
// separator handling) belong to the normalization layer; this only
// rejects requests that are obviously malformed.
// Implements the Validatable interface for httputil.DecodeAndPrepare.
func (r *ValidateRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}

	r.SortCode = strings.TrimSpace(r.SortCode)
	r.AccountNumber = strings.TrimSpace(r.AccountNumber)

	if r.SortCode == "" {
		return dErrors.New(dErrors.CodeValidation, "sort_code is required")
	}
	if r.AccountNumber == "" {
		return dErrors.New(dErrors.CodeValidation, "account_number is required")
	}
	if len(r.SortCode) > 20 {
		return dErrors.New(dErrors.CodeValidation, "sort_code must be at most 20 characters")
	}
	if len(r.AccountNumber) > 20 {
		return dErrors.New(dErrors.CodeValidation, "account_number must be at most 20 characters")
	}
	return nil
}
