// Package modulus implements the published UK modulus-checking procedure for
// sort code and account number pairs.
//
// The package answers one question: could this account number plausibly
// exist under this sort code? It says nothing about whether the account is
// open or owned by anyone — only that the digits satisfy the checksum rules
// assigned to the sort code's range.
//
// A Table holds the weighting rules, loaded once and shared read-only. A
// Session runs one validation at a time: it selects the matching rules,
// applies the per-exception pre-processing, computes the checksum, and
// reconciles multi-rule outcomes through the combination policy. Every rule
// evaluation is recorded in an ordered trace for diagnostics.
//
// The core is pure arithmetic: no I/O, no clocks, no allocation shared
// between calls. Input normalization (dashed sort codes, short account
// numbers) belongs to the caller; see the normalize package.
package modulus
