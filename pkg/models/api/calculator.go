package api

// CalculatorInfo describes one registered calculator.
type CalculatorInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CalculateRequest carries raw form-field values. Field values are deliberately
// untyped: callers may send numbers, strings with currency symbols, booleans,
// or nested values, and the core normalizes them itself.
type CalculateRequest struct {
	Inputs map[string]any `json:"inputs"`
}

// ScheduleEntry is the wire form of one amortization period.
type ScheduleEntry struct {
	Period             int     `json:"period"`
	ScheduledPayment   float64 `json:"scheduled_payment"`
	PrincipalPortion   float64 `json:"principal_portion"`
	InterestPortion    float64 `json:"interest_portion"`
	ExtraPrincipal     float64 `json:"extra_principal,omitempty"`
	EndingBalance      float64 `json:"ending_balance"`
	CumulativeInterest float64 `json:"cumulative_interest"`
}

// LoanResponse is the wire form of a loan calculation.
type LoanResponse struct {
	PeriodicPayment float64         `json:"periodic_payment"`
	TotalPaid       float64         `json:"total_paid"`
	TotalInterest   float64         `json:"total_interest"`
	PayoffPeriods   int             `json:"payoff_periods"`
	InterestSaved   float64         `json:"interest_saved"`
	Converged       bool            `json:"converged"`
	Schedule        []ScheduleEntry `json:"schedule,omitempty"`
}

// MortgageResponse extends LoanResponse with escrow components.
type MortgageResponse struct {
	LoanResponse

	LoanAmount         float64 `json:"loan_amount"`
	MonthlyPropertyTax float64 `json:"monthly_property_tax"`
	MonthlyInsurance   float64 `json:"monthly_insurance"`
	MonthlyPMI         float64 `json:"monthly_pmi"`
	MonthlyPayment     float64 `json:"monthly_payment"`
	LoanToValue        float64 `json:"loan_to_value"`
}

// GrowthEntry is the wire form of one year of a growth simulation.
type GrowthEntry struct {
	Year                    int     `json:"year"`
	OpeningBalance          float64 `json:"opening_balance"`
	Contributions           float64 `json:"contributions"`
	Growth                  float64 `json:"growth"`
	ClosingBalance          float64 `json:"closing_balance"`
	CumulativeContributions float64 `json:"cumulative_contributions"`
	CumulativeGrowth        float64 `json:"cumulative_growth"`
}

// InvestmentResponse is the wire form of a growth calculation.
type InvestmentResponse struct {
	FinalAmount             float64       `json:"final_amount"`
	TotalContributions      float64       `json:"total_contributions"`
	TotalGrowth             float64       `json:"total_growth"`
	AnnualizedReturnPercent float64       `json:"annualized_return_percent"`
	Breakdown               []GrowthEntry `json:"breakdown,omitempty"`
}

// HistoryEntry is one persisted past calculation.
type HistoryEntry struct {
	Calculator string `json:"calculator"`
	Inputs     string `json:"inputs"`
	Outputs    string `json:"outputs"`
	CreatedAt  string `json:"created_at"`
}

// Error is the wire form of a request-level failure.
type Error struct {
	Error string `json:"error"`
}
