package domain

// MortgageParameters describe a mortgage: a loan plus escrowed annual costs.
type MortgageParameters struct {
	HomePrice         float64
	DownPayment       float64
	AnnualRatePercent float64
	TermYears         float64
	AnnualPropertyTax float64
	AnnualInsurance   float64
	AnnualPMI         float64
}

// MortgageResult extends LoanResult with escrow components and loan-to-value.
// The embedded LoanResult covers principal-and-interest only; MonthlyPayment
// adds the flat monthly escrow on top of the periodic payment.
type MortgageResult struct {
	LoanResult

	LoanAmount         float64
	MonthlyPropertyTax float64
	MonthlyInsurance   float64
	MonthlyPMI         float64
	MonthlyPayment     float64
	LoanToValue        float64
}
