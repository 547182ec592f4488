package batch

import (
	"context"
	"fmt"
	"math/big"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/sourcegraph/conc/pool"

	"github.com/fjhenigman/padic/config"
	"github.com/fjhenigman/padic/core/padic"
	"github.com/fjhenigman/padic/errs"
	"github.com/fjhenigman/padic/internal/numeric"
	"github.com/fjhenigman/padic/internal/observability"
)

const resultSeriesTerms = 4

// Result captures the outcome of one evaluated case.
type Result struct {
	Name      string `json:"name"`
	Passed    bool   `json:"passed"`
	Valuation int    `json:"valuation"`
	Rational  string `json:"rational,omitempty"`
	Series    string `json:"series,omitempty"`
	Error     string `json:"error,omitempty"`
	Reason    string `json:"reason,omitempty"`
	ElapsedUS int64  `json:"elapsed_us"`
}

// Report aggregates an entire scenario run.
type Report struct {
	RunID    string   `json:"run_id"`
	Scenario string   `json:"scenario"`
	Total    int      `json:"total"`
	Passed   int      `json:"passed"`
	Failed   int      `json:"failed"`
	Results  []Result `json:"results"`
}

// JSON renders the report as indented JSON.
func (r *Report) JSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

// Runner evaluates scenario cases on a bounded worker pool. Cases are
// independent pure computations, so they run in parallel without coordination;
// results land in per-index slots to keep report order deterministic.
type Runner struct {
	workers          int
	defaultPrime     int64
	defaultPrecision int
}

// NewRunner constructs a runner from the resolved settings.
func NewRunner(cfg config.Settings) *Runner {
	return &Runner{
		workers:          cfg.EffectiveWorkers(),
		defaultPrime:     cfg.DefaultPrime,
		defaultPrecision: cfg.DefaultPrecision,
	}
}

// Run evaluates every case and returns the aggregated report.
func (r *Runner) Run(ctx context.Context, sc *Scenario) *Report {
	report := &Report{
		RunID:    uuid.NewString(),
		Scenario: sc.Name,
		Total:    len(sc.Cases),
		Passed:   0,
		Failed:   0,
		Results:  make([]Result, len(sc.Cases)),
	}
	log := observability.Log()
	log.Info("scenario run starting",
		observability.Field{Key: "run_id", Value: report.RunID},
		observability.Field{Key: "scenario", Value: sc.Name},
		observability.Field{Key: "cases", Value: len(sc.Cases)},
		observability.Field{Key: "workers", Value: r.workers},
	)

	workers := r.workers
	if workers > len(sc.Cases) {
		workers = len(sc.Cases)
	}
	if workers < 1 {
		workers = 1
	}
	p := pool.New().WithMaxGoroutines(workers)
	for idx, c := range sc.Cases {
		i, tc := idx, c
		p.Go(func() {
			if err := ctx.Err(); err != nil {
				report.Results[i] = Result{Name: tc.Name, Passed: false, Reason: "cancelled: " + err.Error()}
				return
			}
			report.Results[i] = r.evaluate(sc, tc)
		})
	}
	p.Wait()

	for _, res := range report.Results {
		if res.Passed {
			report.Passed++
		} else {
			report.Failed++
			log.Error("case failed",
				observability.Field{Key: "run_id", Value: report.RunID},
				observability.Field{Key: "case", Value: res.Name},
				observability.Field{Key: "reason", Value: res.Reason},
			)
		}
	}
	log.Info("scenario run finished",
		observability.Field{Key: "run_id", Value: report.RunID},
		observability.Field{Key: "passed", Value: report.Passed},
		observability.Field{Key: "failed", Value: report.Failed},
	)
	return report
}

func (r *Runner) evaluate(sc *Scenario, c Case) Result {
	start := time.Now()
	res := r.check(sc, c)
	res.Name = c.Name
	res.ElapsedUS = time.Since(start).Microseconds()
	return res
}

func (r *Runner) check(sc *Scenario, c Case) Result {
	prime := c.Prime
	if prime == 0 {
		prime = sc.DefaultPrime
	}
	if prime == 0 {
		prime = r.defaultPrime
	}
	precision := c.Precision
	if precision == 0 {
		precision = sc.DefaultPrecision
	}
	if precision == 0 {
		precision = r.defaultPrecision
	}

	rat, err := numeric.ParseRat(c.Value)
	if err != nil {
		return failureOrExpected(c, err, "parse value: ")
	}

	v, err := padic.FromRational(rat, big.NewInt(prime), precision)
	if err != nil {
		return failureOrExpected(c, err, "construct: ")
	}

	got, err := v.Rational()
	if err != nil {
		res := failureOrExpected(c, err, "reconstruct: ")
		res.Valuation = v.Valuation()
		return res
	}

	res := Result{
		Passed:    true,
		Valuation: v.Valuation(),
		Rational:  numeric.FormatRat(got),
		Series:    v.Series(resultSeriesTerms),
	}
	if c.WantError != "" {
		res.Passed = false
		res.Reason = fmt.Sprintf("expected error %q, conversion succeeded with %s", c.WantError, res.Rational)
		return res
	}

	wantLiteral := c.WantRational
	if wantLiteral == "" {
		wantLiteral = c.Value
	}
	want, err := numeric.ParseRat(wantLiteral)
	if err != nil {
		res.Passed = false
		res.Reason = "bad expectation: " + err.Error()
		return res
	}
	if want.Cmp(got) != 0 {
		res.Passed = false
		res.Reason = fmt.Sprintf("expected %s, got %s", want.RatString(), got.RatString())
		return res
	}
	if c.WantValuation != nil && *c.WantValuation != v.Valuation() {
		res.Passed = false
		res.Reason = fmt.Sprintf("expected valuation %d, got %d", *c.WantValuation, v.Valuation())
	}
	return res
}

func failureOrExpected(c Case, err error, stage string) Result {
	res := Result{Error: err.Error()}
	code := string(errs.CodeOf(err))
	if c.WantError != "" && c.WantError == code {
		res.Passed = true
		return res
	}
	if c.WantError != "" {
		res.Reason = fmt.Sprintf("expected error %q, got %q", c.WantError, code)
		return res
	}
	res.Reason = stage + err.Error()
	return res
}
