package domain

// CompoundingFrequency is how often interest is credited per year.
type CompoundingFrequency string

const (
	CompoundAnnually     CompoundingFrequency = "annually"
	CompoundSemiannually CompoundingFrequency = "semiannually"
	CompoundQuarterly    CompoundingFrequency = "quarterly"
	CompoundMonthly      CompoundingFrequency = "monthly"
	CompoundDaily        CompoundingFrequency = "daily"
)

// PeriodsPerYear maps the frequency to a compounding count. Unrecognized
// frequencies fall back to monthly.
func (f CompoundingFrequency) PeriodsPerYear() int {
	switch f {
	case CompoundAnnually:
		return 1
	case CompoundSemiannually:
		return 2
	case CompoundQuarterly:
		return 4
	case CompoundMonthly:
		return 12
	case CompoundDaily:
		return 365
	default:
		return 12
	}
}

// GrowthParameters describe a compounding investment: an initial lump sum plus
// recurring monthly contributions.
type GrowthParameters struct {
	InitialAmount        float64
	PeriodicContribution float64
	AnnualRatePercent    float64
	TermYears            float64
	Frequency            CompoundingFrequency
}

// GrowthBreakdownEntry is one year of a growth simulation. The closing balance
// of year k equals the opening balance of year k+1.
type GrowthBreakdownEntry struct {
	Year                    int
	OpeningBalance          float64
	Contributions           float64
	Growth                  float64
	ClosingBalance          float64
	CumulativeContributions float64
	CumulativeGrowth        float64
}

// GrowthResult aggregates a growth simulation.
type GrowthResult struct {
	FinalAmount             float64
	TotalContributions      float64
	TotalGrowth             float64
	AnnualizedReturnPercent float64
	Breakdown               []GrowthBreakdownEntry
}
