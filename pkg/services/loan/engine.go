package loan

import (
	"math"

	"github.com/fin-tools/calc-atlas/pkg/models/domain"
	"github.com/fin-tools/calc-atlas/pkg/services/numeric"
)

const (
	monthsPerYear = 12

	// DefaultMaxPeriods is the hard simulation ceiling: 100 years of monthly
	// periods. A payment too small to cover interest never converges, so the
	// simulator stops here and reports Converged=false instead of looping.
	DefaultMaxPeriods = 1200

	// balanceTolerance is the residual below which a balance counts as paid
	// off. Floating-point drift in the annuity payment leaves sub-cent
	// residue after a full term.
	balanceTolerance = 0.01
)

// SimulationLimits bound an amortization run. The zero value means
// DefaultLimits.
type SimulationLimits struct {
	MaxPeriods int
}

// DefaultLimits apply when no explicit limits are passed. Hosts may tune
// MaxPeriods once from configuration.
var DefaultLimits = SimulationLimits{MaxPeriods: DefaultMaxPeriods}

func (l SimulationLimits) maxPeriods() int {
	if l.MaxPeriods > 0 {
		return l.MaxPeriods
	}
	if DefaultLimits.MaxPeriods > 0 {
		return DefaultLimits.MaxPeriods
	}
	return DefaultMaxPeriods
}

// Calculate runs a fixed-payment amortization for the given parameters.
// Degenerate input (no principal, no term) yields a zeroed result, never an
// error: the caller always gets something renderable.
func Calculate(p domain.LoanParameters) domain.LoanResult {
	return CalculateWithLimits(p, SimulationLimits{})
}

// CalculateRaw accepts raw form-field values and normalizes them before
// calculating. Callers are not trusted to pre-validate.
func CalculateRaw(principal, annualRatePercent, termYears, extraMonthlyPayment any) domain.LoanResult {
	return Calculate(domain.LoanParameters{
		Principal:           numeric.Normalize(principal),
		AnnualRatePercent:   numeric.Normalize(annualRatePercent),
		TermYears:           numeric.Normalize(termYears),
		ExtraMonthlyPayment: numeric.Normalize(extraMonthlyPayment),
	})
}

// CalculateWithLimits is Calculate with an explicit simulation ceiling.
func CalculateWithLimits(p domain.LoanParameters, limits SimulationLimits) domain.LoanResult {
	principal := numeric.Normalize(p.Principal)
	ratePercent := numeric.Normalize(p.AnnualRatePercent)
	termYears := numeric.Normalize(p.TermYears)
	extra := math.Max(0, numeric.Normalize(p.ExtraMonthlyPayment))

	if principal <= 0 || termYears <= 0 || ratePercent < 0 {
		return domain.LoanResult{Converged: true}
	}

	monthlyRate := ratePercent / (100 * monthsPerYear)
	scheduledPeriods := int(math.Round(termYears * monthsPerYear))
	if scheduledPeriods < 1 {
		scheduledPeriods = 1
	}

	payment := periodicPayment(principal, monthlyRate, scheduledPeriods)
	run := simulate(principal, monthlyRate, payment, extra, scheduledPeriods, limits.maxPeriods())

	interestSaved := 0.0
	if extra > 0 {
		baseline := simulate(principal, monthlyRate, payment, 0, scheduledPeriods, limits.maxPeriods())
		interestSaved = math.Max(0, baseline.totalInterest-run.totalInterest)
	}

	return domain.LoanResult{
		PeriodicPayment: numeric.RoundCurrency(payment),
		TotalPaid:       numeric.RoundCurrency(run.totalPaid),
		TotalInterest:   numeric.RoundCurrency(run.totalInterest),
		PayoffPeriods:   len(run.schedule),
		InterestSaved:   numeric.RoundCurrency(interestSaved),
		Converged:       run.converged,
		Schedule:        run.schedule,
	}
}

// periodicPayment is the standard annuity formula. A rate that is effectively
// zero degrades to straight-line amortization instead of dividing by zero.
func periodicPayment(principal, monthlyRate float64, periods int) float64 {
	n := float64(periods)
	if numeric.EffectivelyZero(monthlyRate) {
		return principal / n
	}
	compound := numeric.SafePower(1+monthlyRate, n)
	return numeric.SafeDivide(principal*monthlyRate*compound, compound-1, principal/n)
}

type simulation struct {
	schedule      []domain.PaymentScheduleEntry
	totalPaid     float64
	totalInterest float64
	converged     bool
}

// simulate walks the balance period by period. It stops when the balance is
// effectively zero, when the scheduled term has elapsed, or at the hard
// ceiling, whichever comes first.
func simulate(principal, monthlyRate, payment, extra float64, scheduledPeriods, maxPeriods int) simulation {
	limit := scheduledPeriods
	if limit > maxPeriods {
		limit = maxPeriods
	}

	var run simulation
	balance := principal

	for period := 1; period <= limit; period++ {
		interest := balance * monthlyRate
		principalPortion := math.Min(payment-interest, balance)

		balance -= principalPortion
		extraApplied := math.Min(extra, balance)
		balance -= extraApplied

		run.totalInterest += interest
		run.totalPaid += interest + principalPortion + extraApplied

		run.schedule = append(run.schedule, domain.PaymentScheduleEntry{
			Period:             period,
			ScheduledPayment:   numeric.RoundCurrency(interest + principalPortion),
			PrincipalPortion:   numeric.RoundCurrency(principalPortion),
			InterestPortion:    numeric.RoundCurrency(interest),
			ExtraPrincipal:     numeric.RoundCurrency(extraApplied),
			EndingBalance:      numeric.RoundCurrency(math.Max(0, balance)),
			CumulativeInterest: numeric.RoundCurrency(run.totalInterest),
		})

		if balance <= balanceTolerance {
			run.converged = true
			break
		}
	}

	return run
}
