package modulus

import (
	"errors"
	"fmt"
)

const (
	sortCodeWidth = 6
	accountWidth  = 8
)

// Caller errors. Both are detected before any rule evaluation, so a failed
// call never leaves a partial trace behind.
var (
	// ErrMissingInput marks an absent sort code or account number.
	ErrMissingInput = errors.New("missing input")
	// ErrInvalidFormat marks input that is not purely numeric or not the
	// required width after normalization.
	ErrInvalidFormat = errors.New("invalid format")

	errWrongLength = errors.New("wrong length")
	errNotNumeric  = errors.New("not numeric")
)

// Verdict is the tri-state answer of a validation call. Undetermined is
// distinct from invalid: it means the rules could not produce a decision,
// either because no rule covers the sort code or because the combination
// policy exhausted without a decisive branch.
type Verdict string

const (
	VerdictValid        Verdict = "valid"
	VerdictInvalid      Verdict = "invalid"
	VerdictUndetermined Verdict = "undetermined"
)

// Session runs one validation at a time against a shared read-only rule
// table. All state below the table is call-scoped and reset on every
// Validate; concurrent callers must each use their own session.
type Session struct {
	table *Table

	trace          []TraceEntry
	lastException  int
	lastPassed     bool
	lastUnresolved bool
	attempts       int
	multiRule      bool
}

// NewSession creates a session over the given rule table.
func NewSession(table *Table) *Session {
	return &Session{table: table}
}

// Validate answers whether the account number is numerically consistent with
// the sort code. Inputs must already be normalized to exactly 6 and 8 ASCII
// digits; anything else fails before a single rule is consulted. The ordered
// evaluation trace is retrievable afterwards via Trace.
func (s *Session) Validate(sortCode, accountNumber string) (Verdict, error) {
	s.reset()

	sortDigits, err := parseInput("sort code", sortCode, sortCodeWidth)
	if err != nil {
		return VerdictUndetermined, err
	}
	acctDigits, err := parseInput("account number", accountNumber, accountWidth)
	if err != nil {
		return VerdictUndetermined, err
	}

	sortNumeric := 0
	for _, d := range sortDigits {
		sortNumeric = sortNumeric*10 + d
	}

	rules := s.table.Match(sortNumeric)
	if len(rules) == 0 {
		return VerdictUndetermined, nil
	}
	s.multiRule = len(rules) > 1

	for _, rule := range rules {
		s.attempts++
		s.lastException = rule.Exception

		p := prepare(rule, sortDigits, acctDigits)
		switch p.action {
		case prepSkip:
			continue
		case prepAccept:
			s.record(TraceEntry{
				Exception: rule.Exception,
				Method:    rule.Method,
				Result:    ResultValid,
			})
		default:
			s.record(checksum(p.rule, p.sortCode, p.acct))
		}

		if !s.multiRule {
			return s.singleRuleVerdict(), nil
		}
		if verdict, decided := s.combine(); decided {
			return verdict, nil
		}
	}

	if s.multiRule && s.lastException == 6 {
		return s.passedVerdict(), nil
	}
	return VerdictUndetermined, nil
}

// Trace returns the trace of the most recent Validate call, in rule
// evaluation order. Rules skipped by exception 3 leave no entry.
func (s *Session) Trace() []TraceEntry {
	out := make([]TraceEntry, len(s.trace))
	copy(out, s.trace)
	return out
}

// Attempts reports how many matched rules the most recent Validate call
// considered, counting rules skipped by their exception handling.
func (s *Session) Attempts() int {
	return s.attempts
}

func (s *Session) reset() {
	s.trace = nil
	s.lastException = 0
	s.lastPassed = false
	s.lastUnresolved = false
	s.attempts = 0
	s.multiRule = false
}

func (s *Session) record(entry TraceEntry) {
	s.trace = append(s.trace, entry)
	s.lastPassed = entry.Result == ResultPass || entry.Result == ResultValid
	s.lastUnresolved = entry.Result == ResultUnresolved
}

// combine applies the multi-rule combination policy after each evaluated
// rule. The branch order is the published priority order.
func (s *Session) combine() (Verdict, bool) {
	switch {
	case exceptionIn(s.lastException, 2, 10, 12) && s.lastPassed:
		return VerdictValid, true
	case exceptionIn(s.lastException, 9, 11, 13) && s.lastPassed && s.attempts == 2:
		return VerdictValid, true
	case exceptionIn(s.lastException, 5, 6) && !s.lastPassed:
		if s.lastUnresolved {
			return VerdictUndetermined, true
		}
		return VerdictInvalid, true
	case s.lastException == 0 && s.lastPassed:
		return VerdictValid, true
	case s.attempts == 2:
		return s.passedVerdict(), true
	}
	return VerdictUndetermined, false
}

// singleRuleVerdict mirrors the rule's own outcome when only one rule
// matched: the combination policy has nothing to reconcile.
func (s *Session) singleRuleVerdict() Verdict {
	return s.passedVerdict()
}

func (s *Session) passedVerdict() Verdict {
	if s.lastUnresolved {
		return VerdictUndetermined
	}
	if s.lastPassed {
		return VerdictValid
	}
	return VerdictInvalid
}

func exceptionIn(exception int, codes ...int) bool {
	for _, c := range codes {
		if exception == c {
			return true
		}
	}
	return false
}

func parseInput(field, value string, width int) (Digits, error) {
	if value == "" {
		return nil, fmt.Errorf("%s: %w", field, ErrMissingInput)
	}
	d, err := ParseDigits(value, width)
	if err != nil {
		return nil, fmt.Errorf("%s %q: %w", field, value, ErrInvalidFormat)
	}
	return d, nil
}
