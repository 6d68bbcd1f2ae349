package modulus

// Result is the outcome of one rule evaluation.
type Result string

const (
	ResultPass Result = "PASS"
	ResultFail Result = "FAIL"
	// ResultValid is the short-circuit outcome of exception 6's early-accept
	// path; no checksum runs for it.
	ResultValid Result = "VALID"
	// ResultUnresolved marks the double-alternate exception-5 combination
	// (remainder 0, account digit h non-zero) that the published logic leaves
	// without a defined outcome. It is surfaced explicitly rather than
	// defaulted to a failure.
	ResultUnresolved Result = "UNRESOLVED"
)

// TraceEntry records one rule evaluation: which exception and method ran,
// the weighted total and remainder, and the outcome. Entries are append-only
// and ordered by evaluation order within a session.
type TraceEntry struct {
	Exception int    `json:"exception"`
	Method    Method `json:"method"`
	Remainder int    `json:"remainder"`
	Total     int    `json:"total"`
	Result    Result `json:"result"`
}

// exception 1 adds a constant bias to the weighted total before reduction.
const exception1Bias = 27

// checksum evaluates one rule against working digit vectors and returns the
// trace entry. It never fails for arithmetic reasons: every branch ends in a
// Result. The account vector must be the caller's original digits for the
// exception-14 retry to re-derive its shifted operand.
func checksum(r Rule, sortCode, acct Digits) TraceEntry {
	if r.Method == DblAl {
		return doubleAlternate(r, sortCode, acct)
	}
	return standardModulus(r, sortCode, acct)
}

func weightedTotal(sortCode, acct, sortWeights, acctWeights Digits) int {
	total := 0
	for i, d := range sortCode {
		total += d * sortWeights[i]
	}
	for i, d := range acct {
		total += d * acctWeights[i]
	}
	return total
}

func standardModulus(r Rule, sortCode, acct Digits) TraceEntry {
	div := r.Method.Divisor()
	total := weightedTotal(sortCode, acct, r.SortWeights, r.AcctWeights)
	if r.Exception == 1 {
		total += exception1Bias
	}
	rem := total % div

	entry := TraceEntry{Exception: r.Exception, Method: r.Method, Remainder: rem, Total: total}
	switch {
	case r.Exception == 4:
		// remainder must equal the two-digit number formed by g,h
		gh := acct[6]*10 + acct[7]
		entry.Result = passIf(rem == gh)
	case r.Exception == 5 && div == 11:
		// g is the check digit
		switch {
		case rem == 0:
			entry.Result = passIf(acct[6] == 0)
		case rem == 1:
			entry.Result = ResultFail
		default:
			entry.Result = passIf(acct[6] == 11-rem)
		}
	case r.Exception == 14 && rem != 0:
		return exception14Retry(r, sortCode, acct, entry)
	default:
		entry.Result = passIf(rem == 0)
	}
	return entry
}

// exception14Retry re-runs the check with the account shifted one position
// right (leading zero prepended, last digit dropped), but only when the
// original final digit is 0, 1, or 9. Anything else fails outright.
func exception14Retry(r Rule, sortCode, acct Digits, first TraceEntry) TraceEntry {
	h := acct[7]
	if h != 0 && h != 1 && h != 9 {
		first.Result = ResultFail
		return first
	}
	shifted := make(Digits, accountWidth)
	copy(shifted[1:], acct[:accountWidth-1])
	total := weightedTotal(sortCode, shifted, r.SortWeights, r.AcctWeights)
	rem := total % 11
	return TraceEntry{
		Exception: r.Exception,
		Method:    r.Method,
		Remainder: rem,
		Total:     total,
		Result:    passIf(rem == 0),
	}
}

func doubleAlternate(r Rule, sortCode, acct Digits) TraceEntry {
	total := 0
	for i, d := range sortCode {
		total += foldProduct(d * r.SortWeights[i])
	}
	for i, d := range acct {
		total += foldProduct(d * r.AcctWeights[i])
	}
	if r.Exception == 1 {
		total += exception1Bias
	}
	rem := total % 10

	entry := TraceEntry{Exception: r.Exception, Method: r.Method, Remainder: rem, Total: total}
	if r.Exception == 5 {
		// h is the check digit
		h := acct[7]
		switch {
		case rem == 0 && h == 0:
			entry.Result = ResultPass
		case rem != 0 && h == 10-rem:
			entry.Result = ResultPass
		case rem != 0:
			entry.Result = ResultFail
		default:
			entry.Result = ResultUnresolved
		}
		return entry
	}
	entry.Result = passIf(rem == 0)
	return entry
}

// foldProduct reduces a weighted product over 9 to the sum of its own two
// decimal digits. This is digit folding, not modular reduction: 18 becomes
// 9, 10 becomes 1.
func foldProduct(p int) int {
	if p > 9 {
		return p/10 + p%10
	}
	return p
}

func passIf(ok bool) Result {
	if ok {
		return ResultPass
	}
	return ResultFail
}
