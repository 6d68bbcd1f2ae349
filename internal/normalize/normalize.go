// Package normalize turns raw user-supplied sort codes and account numbers
// into the fixed-width digit strings the modulus core requires. The core
// deliberately rejects anything that is not exactly 6 and 8 digits; all the
// forgiving parsing of dashed, spaced, short, and bank-specific long forms
// lives here.
package normalize

import (
	"fmt"
	"strings"

	"github.com/asaskevich/govalidator"

	"sortcheck/internal/modulus"
)

const (
	sortCodeLen = 6
	accountLen  = 8
)

// Pair normalizes a raw sort code and account number together. The account
// number can reshape the sort code: nine-digit account forms donate their
// final digit to the sort code's last position, which is why the two inputs
// normalize as a pair rather than independently.
//
// Accepted account forms:
//   - 6 or 7 digits: left-padded with zeros
//   - 8 digits: as supplied
//   - 9 digits: final digit replaces the sort code's last digit; first 8 kept
//   - 10 digits: a dash-delimited 8-digit run is preferred, else the first 8
func Pair(rawSortCode, rawAccount string) (sortCode, account string, err error) {
	sortCode, err = SortCode(rawSortCode)
	if err != nil {
		return "", "", err
	}

	account = strings.Map(dropSeparators, rawAccount)
	if account == "" {
		return "", "", fmt.Errorf("account number: %w", modulus.ErrMissingInput)
	}

	if strings.Contains(account, "-") {
		account, err = splitDashed(account)
		if err != nil {
			return "", "", err
		}
	}

	if !govalidator.IsNumeric(account) {
		return "", "", fmt.Errorf("account number %q: %w", rawAccount, modulus.ErrInvalidFormat)
	}

	switch len(account) {
	case 6, 7:
		account = strings.Repeat("0", accountLen-len(account)) + account
	case accountLen:
		// as supplied
	case 9:
		sortCode = sortCode[:sortCodeLen-1] + account[8:]
		account = account[:accountLen]
	case 10:
		account = account[:accountLen]
	default:
		return "", "", fmt.Errorf("account number %q: %w", rawAccount, modulus.ErrInvalidFormat)
	}

	return sortCode, account, nil
}

// SortCode strips dashes and whitespace from a raw sort code and checks the
// result is exactly six digits.
func SortCode(raw string) (string, error) {
	cleaned := strings.Map(func(r rune) rune {
		if r == '-' || r == ' ' || r == '\t' {
			return -1
		}
		return r
	}, raw)

	if cleaned == "" {
		return "", fmt.Errorf("sort code: %w", modulus.ErrMissingInput)
	}
	if len(cleaned) != sortCodeLen || !govalidator.IsNumeric(cleaned) {
		return "", fmt.Errorf("sort code %q: %w", raw, modulus.ErrInvalidFormat)
	}
	return cleaned, nil
}

// splitDashed resolves a dash-delimited long account form. An 8-digit run on
// either side of the dash wins; otherwise the dashes are dropped and the
// caller's length rules apply to what remains.
func splitDashed(account string) (string, error) {
	for _, part := range strings.Split(account, "-") {
		if len(part) == accountLen && govalidator.IsNumeric(part) {
			return part, nil
		}
	}
	stripped := strings.ReplaceAll(account, "-", "")
	if stripped == "" {
		return "", fmt.Errorf("account number %q: %w", account, modulus.ErrInvalidFormat)
	}
	return stripped, nil
}

// dropSeparators removes the whitespace commonly pasted into account fields.
// Dashes are kept: they are meaningful for the 10-character form.
func dropSeparators(r rune) rune {
	if r == ' ' || r == '\t' {
		return -1
	}
	return r
}
