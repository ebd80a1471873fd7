package domain

// LoanParameters describe a fixed-rate amortizing loan. Values are expected to
// be normalized already; the engines re-normalize defensively.
type LoanParameters struct {
	Principal           float64
	AnnualRatePercent   float64
	TermYears           float64
	ExtraMonthlyPayment float64
}

// PaymentScheduleEntry is one period of an amortization schedule.
type PaymentScheduleEntry struct {
	Period             int
	ScheduledPayment   float64
	PrincipalPortion   float64
	InterestPortion    float64
	ExtraPrincipal     float64
	EndingBalance      float64
	CumulativeInterest float64
}

// LoanResult aggregates an amortization run. Converged reports whether the
// balance reached zero before the simulation ceiling; a truncated schedule
// keeps its residual balance in the last entry.
type LoanResult struct {
	PeriodicPayment float64
	TotalPaid       float64
	TotalInterest   float64
	PayoffPeriods   int
	InterestSaved   float64
	Converged       bool
	Schedule        []PaymentScheduleEntry
}
