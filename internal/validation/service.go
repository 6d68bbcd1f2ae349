// Package validation orchestrates a full account validation: input
// normalization, verdict cache lookup, modulus checking, and audit
// emission.
package validation

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"sortcheck/internal/audit"
	"sortcheck/internal/modulus"
	"sortcheck/internal/normalize"
	"sortcheck/internal/validation/cache"
	"sortcheck/internal/validation/metrics"
	dErrors "sortcheck/pkg/domain-errors"
	"sortcheck/pkg/requestcontext"
)

// Result is the outcome of validating one sort code and account number.
// SortCode and AccountNumber hold the normalized forms actually checked.
type Result struct {
	SortCode      string
	AccountNumber string
	Verdict       modulus.Verdict
	Attempts      int
	Trace         []modulus.TraceEntry
	Cached        bool
}

// Auditor records validation decisions.
type Auditor interface {
	Emit(ctx context.Context, event audit.Event) error
}

// Service runs validations against a rule table.
type Service struct {
	table   *modulus.Table
	cache   cache.Cache
	auditor Auditor
	metrics *metrics.Metrics
	logger  *slog.Logger
	tracer  trace.Tracer
}

// NewService constructs a validation service. cache and auditor may be
// nil; caching and auditing are then skipped.
func NewService(table *modulus.Table, c cache.Cache, auditor Auditor, m *metrics.Metrics, logger *slog.Logger) *Service {
	return &Service{
		table:   table,
		cache:   c,
		auditor: auditor,
		metrics: m,
		logger:  logger,
		tracer:  otel.Tracer("validation"),
	}
}

// Validate normalizes the inputs, checks the cache, and runs the modulus
// check on a miss. Normalization failures surface as validation errors;
// an account that merely fails its checksum is a Result, not an error.
func (s *Service) Validate(ctx context.Context, rawSortCode, rawAccount string) (*Result, error) {
	start := time.Now()
	ctx, span := s.tracer.Start(ctx, "validation.validate")
	defer span.End()

	sortCode, account, err := normalize.Pair(rawSortCode, rawAccount)
	if err != nil {
		return nil, dErrors.Wrap(dErrors.CodeValidation, err.Error(), err)
	}
	span.SetAttributes(attribute.String("sort_code", sortCode))

	if entry, ok := s.lookupCache(ctx, sortCode, account); ok {
		result := &Result{
			SortCode:      sortCode,
			AccountNumber: account,
			Verdict:       entry.Verdict,
			Attempts:      entry.Attempts,
			Trace:         entry.Trace,
			Cached:        true,
		}
		span.SetAttributes(attribute.String("verdict", string(result.Verdict)))
		s.metrics.IncrementVerdict(string(result.Verdict))
		s.metrics.ObserveValidateLatency(time.Since(start))
		s.emitAudit(ctx, result)
		return result, nil
	}

	session := modulus.NewSession(s.table)
	verdict, err := session.Validate(sortCode, account)
	if err != nil {
		return nil, dErrors.Wrap(dErrors.CodeValidation, err.Error(), err)
	}

	result := &Result{
		SortCode:      sortCode,
		AccountNumber: account,
		Verdict:       verdict,
		Attempts:      session.Attempts(),
		Trace:         session.Trace(),
	}
	span.SetAttributes(attribute.String("verdict", string(verdict)))

	for _, entry := range result.Trace {
		s.metrics.IncrementRuleEvaluation(string(entry.Method), string(entry.Result))
	}
	s.metrics.IncrementVerdict(string(verdict))
	s.metrics.ObserveValidateLatency(time.Since(start))

	s.fillCache(ctx, result)
	s.emitAudit(ctx, result)
	return result, nil
}

func (s *Service) lookupCache(ctx context.Context, sortCode, account string) (cache.Entry, bool) {
	if s.cache == nil {
		return cache.Entry{}, false
	}
	entry, ok, err := s.cache.Get(ctx, sortCode, account)
	if err != nil {
		// Treat a broken cache as a miss so validation stays available.
		s.logger.WarnContext(ctx, "verdict cache lookup failed", "error", err)
		s.metrics.IncrementCacheLookup("miss")
		return cache.Entry{}, false
	}
	if ok {
		s.metrics.IncrementCacheLookup("hit")
	} else {
		s.metrics.IncrementCacheLookup("miss")
	}
	return entry, ok
}

func (s *Service) fillCache(ctx context.Context, result *Result) {
	if s.cache == nil {
		return
	}
	entry := cache.Entry{
		Verdict:  result.Verdict,
		Attempts: result.Attempts,
		Trace:    result.Trace,
	}
	if err := s.cache.Set(ctx, result.SortCode, result.AccountNumber, entry); err != nil {
		s.logger.WarnContext(ctx, "verdict cache fill failed", "error", err)
	}
}

func (s *Service) emitAudit(ctx context.Context, result *Result) {
	if s.auditor == nil {
		return
	}
	event := audit.Event{
		Timestamp:   requestcontext.Now(ctx),
		SortCode:    result.SortCode,
		AccountHash: audit.HashAccount(result.AccountNumber),
		Verdict:     string(result.Verdict),
		Attempts:    result.Attempts,
		RequestID:   requestcontext.RequestID(ctx),
		ClientIP:    requestcontext.ClientIP(ctx),
	}
	if err := s.auditor.Emit(ctx, event); err != nil {
		s.logger.ErrorContext(ctx, "audit emission failed",
			"sort_code", result.SortCode,
			"error", err,
		)
	}
}
