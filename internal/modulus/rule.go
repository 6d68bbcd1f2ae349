package modulus

import "fmt"

// Method selects the checksum arithmetic a rule applies. MOD10 and MOD11 are
// the standard weighted-modulus check with divisors 10 and 11; DBLAL is the
// double-alternate variant that folds each weighted product over 9 into the
// sum of its own decimal digits before accumulating.
type Method string

const (
	Mod10 Method = "MOD10"
	Mod11 Method = "MOD11"
	DblAl Method = "DBLAL"
)

// Divisor returns the modulus divisor for the method. Double alternate
// always reduces modulo 10.
func (m Method) Divisor() int {
	switch m {
	case Mod11:
		return 11
	default:
		return 10
	}
}

// Rule is one weighting entry of the published table, scoped to an inclusive
// sort-code range. Rules are read-only once loaded; exception handling
// operates on copies and never touches the canonical entry.
type Rule struct {
	Start       int
	End         int
	Method      Method
	Exception   int
	SortWeights Digits // one weight per sort-code position u0..u5
	AcctWeights Digits // one weight per account position a..h
}

// Contains reports whether the numeric sort code falls in the rule's range.
func (r Rule) Contains(sortCode int) bool {
	return sortCode >= r.Start && sortCode <= r.End
}

func (r Rule) clone() Rule {
	r.SortWeights = r.SortWeights.Clone()
	r.AcctWeights = r.AcctWeights.Clone()
	return r
}

func (r Rule) validate() error {
	if r.Start > r.End || r.Start < 0 || r.End > 999999 {
		return fmt.Errorf("rule %06d-%06d: bad sort code range", r.Start, r.End)
	}
	switch r.Method {
	case Mod10, Mod11, DblAl:
	default:
		return fmt.Errorf("rule %06d-%06d: unknown method %q", r.Start, r.End, r.Method)
	}
	if r.Exception < 0 || r.Exception > 14 {
		return fmt.Errorf("rule %06d-%06d: exception %d out of range", r.Start, r.End, r.Exception)
	}
	if len(r.SortWeights) != sortCodeWidth || len(r.AcctWeights) != accountWidth {
		return fmt.Errorf("rule %06d-%06d: weight vectors must be %d+%d wide", r.Start, r.End, sortCodeWidth, accountWidth)
	}
	return nil
}

// Table is the immutable ordered rule collection. One table exists per
// engine instance and is shared read-only across all sessions.
type Table struct {
	rules []Rule
}

// NewTable copies rules into an immutable table, preserving definition
// order. Rules with malformed ranges, methods, exceptions, or weight widths
// are rejected up front so evaluation never has to re-check them.
func NewTable(rules []Rule) (*Table, error) {
	out := make([]Rule, 0, len(rules))
	for _, r := range rules {
		if err := r.validate(); err != nil {
			return nil, err
		}
		out = append(out, r.clone())
	}
	return &Table{rules: out}, nil
}

// Match returns a copy of every rule whose range contains the sort code, in
// definition order. Zero matches is a legal outcome: the sort code is simply
// not covered by the published document.
func (t *Table) Match(sortCode int) []Rule {
	var out []Rule
	for _, r := range t.rules {
		if r.Contains(sortCode) {
			out = append(out, r.clone())
		}
	}
	return out
}

// Len reports the number of rules in the table.
func (t *Table) Len() int {
	return len(t.rules)
}
