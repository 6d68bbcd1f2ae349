package modulus

// prepAction tells the session what to do with a rule after preprocessing.
type prepAction int

const (
	// prepRun: evaluate the checksum as usual.
	prepRun prepAction = iota
	// prepSkip: the rule does not apply to this account; move on without
	// recording a trace entry.
	prepSkip
	// prepAccept: exception 6 early accept; record VALID without a checksum.
	prepAccept
)

// prepared carries the per-rule working state: a copy of the rule whose
// weights may have been overridden, and working digit vectors that may have
// been substituted. The canonical table entry and the caller's digits are
// never touched.
type prepared struct {
	rule     Rule
	sortCode Digits
	acct     Digits
	action   prepAction
}

// prepare applies the per-exception-code transformations that run before the
// checksum. The switch is exhaustive over the fifteen documented codes;
// NewTable rejects anything outside 0-14 so the default arm is unreachable.
func prepare(rule Rule, sortCode, acct Digits) prepared {
	p := prepared{rule: rule, sortCode: sortCode.Clone(), acct: acct.Clone()}

	switch rule.Exception {
	case 0, 1, 4, 11, 12, 13, 14:
		// no pre-processing; any special handling lives in the checksum

	case 2:
		// a != 0 selects substitute weights; the pair differs on whether g is 9
		if p.acct[0] != 0 {
			if p.acct[6] != 9 {
				p.rule.SortWeights = rule.SortWeights.Overwrite("001253")
				p.rule.AcctWeights = rule.AcctWeights.OverwriteList("6,4,8,7,10,9,3,1")
			} else {
				p.rule.SortWeights = rule.SortWeights.Overwrite("000000")
				p.rule.AcctWeights = rule.AcctWeights.OverwriteList("0,0,8,7,10,9,3,1")
			}
		}

	case 3:
		// the rule is inapplicable when c is 6 or 9
		if c := p.acct[2]; c == 6 || c == 9 {
			p.action = prepSkip
		}

	case 5:
		if sub, ok := sortCodeSubstitutions[p.sortCode.String()]; ok {
			p.sortCode = p.sortCode.Overwrite(sub)
		}

	case 6:
		if a := p.acct[0]; a >= 4 && a <= 8 && p.acct[6] == p.acct[7] {
			p.action = prepAccept
		}

	case 7:
		// g of 9 suppresses the sort code and the first two account digits
		if p.acct[6] == 9 {
			p.rule.SortWeights = make(Digits, sortCodeWidth)
			p.rule.AcctWeights = rule.AcctWeights.With(0, 0).With(1, 0)
		}

	case 8:
		// unconditional sort code substitution; idempotent, so the historic
		// double application collapses to one
		p.sortCode = p.sortCode.Overwrite("090126")

	case 9:
		p.sortCode = p.sortCode.Overwrite("309634")

	case 10:
		ab := p.acct.String()[:2]
		if (ab == "09" || ab == "99") && p.acct[6] == 9 {
			p.rule.SortWeights = make(Digits, sortCodeWidth)
			p.rule.AcctWeights = rule.AcctWeights.With(0, 0).With(1, 0)
		}
	}

	return p
}
