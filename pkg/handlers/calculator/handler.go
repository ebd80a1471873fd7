package calculator

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/fin-tools/calc-atlas/pkg/models/api"
	"github.com/fin-tools/calc-atlas/pkg/models/domain"
	"github.com/fin-tools/calc-atlas/pkg/services/calc"
	"github.com/fin-tools/calc-atlas/pkg/services/growth"
	"github.com/fin-tools/calc-atlas/pkg/services/loan"
	"github.com/fin-tools/calc-atlas/pkg/services/mortgage"
	"github.com/fin-tools/calc-atlas/pkg/store/cache"
	"github.com/fin-tools/calc-atlas/pkg/store/history"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

const (
	defaultHistoryLimit = 10
	cacheTTL            = time.Hour
)

type Handler struct {
	registry calc.Registry
	history  history.Store
	cache    cache.Repository
}

// NewHandler creates the calculator HTTP handler. History and cache are
// optional; nil disables them.
func NewHandler(registry calc.Registry, historyStore history.Store, cacheRepo cache.Repository) *Handler {
	return &Handler{
		registry: registry,
		history:  historyStore,
		cache:    cacheRepo,
	}
}

func (h *Handler) ListCalculators(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	var response []api.CalculatorInfo
	for _, name := range h.registry.ListCalculators() {
		c, err := h.registry.Create(name)
		if err != nil {
			continue
		}
		response = append(response, api.CalculatorInfo{Name: c.Name(), Description: c.Describe()})
	}

	writeJSON(w, logger, response)
}

func (h *Handler) CalculateLoan(w http.ResponseWriter, r *http.Request) {
	h.calculate(w, r, "loan", func(inputs map[string]any) any {
		result := loan.CalculateRaw(
			inputs["principal"],
			inputs["annual_rate_percent"],
			inputs["term_years"],
			inputs["extra_monthly_payment"],
		)
		return mapLoanResponse(result)
	})
}

func (h *Handler) CalculateMortgage(w http.ResponseWriter, r *http.Request) {
	h.calculate(w, r, "mortgage", func(inputs map[string]any) any {
		result := mortgage.CalculateRaw(
			inputs["home_price"],
			inputs["down_payment"],
			inputs["annual_rate_percent"],
			inputs["term_years"],
			inputs["annual_property_tax"],
			inputs["annual_insurance"],
			inputs["annual_pmi"],
		)
		return api.MortgageResponse{
			LoanResponse:       mapLoanResponse(result.LoanResult),
			LoanAmount:         result.LoanAmount,
			MonthlyPropertyTax: result.MonthlyPropertyTax,
			MonthlyInsurance:   result.MonthlyInsurance,
			MonthlyPMI:         result.MonthlyPMI,
			MonthlyPayment:     result.MonthlyPayment,
			LoanToValue:        result.LoanToValue,
		}
	})
}

func (h *Handler) CalculateInvestment(w http.ResponseWriter, r *http.Request) {
	h.calculate(w, r, "investment", func(inputs map[string]any) any {
		frequency, _ := inputs["compounding_frequency"].(string)
		result := growth.CalculateRaw(
			inputs["initial_amount"],
			inputs["periodic_contribution"],
			inputs["annual_rate_percent"],
			inputs["term_years"],
			frequency,
		)

		breakdown := make([]api.GrowthEntry, 0, len(result.Breakdown))
		for _, entry := range result.Breakdown {
			breakdown = append(breakdown, api.GrowthEntry{
				Year:                    entry.Year,
				OpeningBalance:          entry.OpeningBalance,
				Contributions:           entry.Contributions,
				Growth:                  entry.Growth,
				ClosingBalance:          entry.ClosingBalance,
				CumulativeContributions: entry.CumulativeContributions,
				CumulativeGrowth:        entry.CumulativeGrowth,
			})
		}
		return api.InvestmentResponse{
			FinalAmount:             result.FinalAmount,
			TotalContributions:      result.TotalContributions,
			TotalGrowth:             result.TotalGrowth,
			AnnualizedReturnPercent: result.AnnualizedReturnPercent,
			Breakdown:               breakdown,
		}
	})
}

func (h *Handler) GetHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	name := chi.URLParam(r, "name")

	if h.history == nil {
		http.Error(w, "history is not enabled", http.StatusNotFound)
		return
	}

	records, err := h.history.Recent(ctx, name, defaultHistoryLimit)
	if err != nil {
		logger.Error().Err(err).Str("calculator", name).Msg("failed to load history")
		http.Error(w, "failed to load history", http.StatusInternalServerError)
		return
	}

	response := make([]api.HistoryEntry, 0, len(records))
	for _, record := range records {
		response = append(response, api.HistoryEntry{
			Calculator: record.Calculator,
			Inputs:     record.Inputs,
			Outputs:    record.Outputs,
			CreatedAt:  record.CreatedAt.Format(time.RFC3339),
		})
	}

	writeJSON(w, logger, response)
}

// calculate decodes the raw inputs, serves from cache when possible, runs the
// engine, and records the calculation. Cache and history failures are logged
// and ignored: the calculation result always goes out.
func (h *Handler) calculate(w http.ResponseWriter, r *http.Request, name string, run func(map[string]any) any) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	var request api.CalculateRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeError(w, logger, http.StatusBadRequest, "invalid request body")
		return
	}
	if request.Inputs == nil {
		request.Inputs = map[string]any{}
	}

	key := cache.Key(name, request.Inputs)
	if h.cache != nil {
		if cached, ok := h.cache.Get(ctx, key); ok {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(cached))
			return
		}
	}

	response := run(request.Inputs)

	encoded, err := json.Marshal(response)
	if err != nil {
		logger.Error().Err(err).Str("calculator", name).Msg("failed to encode result")
		writeError(w, logger, http.StatusInternalServerError, "failed to encode result")
		return
	}

	if h.cache != nil {
		if err := h.cache.Set(ctx, key, string(encoded), cacheTTL); err != nil {
			logger.Warn().Err(err).Str("calculator", name).Msg("failed to cache result")
		}
	}

	if h.history != nil {
		inputs, _ := json.Marshal(request.Inputs)
		record := history.Record{
			Calculator: name,
			Inputs:     string(inputs),
			Outputs:    string(encoded),
			CreatedAt:  time.Now().UTC(),
		}
		if err := h.history.Add(ctx, record); err != nil {
			logger.Warn().Err(err).Str("calculator", name).Msg("failed to save calculation")
		}
	}

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(encoded)
}

func mapLoanResponse(result domain.LoanResult) api.LoanResponse {
	schedule := make([]api.ScheduleEntry, 0, len(result.Schedule))
	for _, entry := range result.Schedule {
		schedule = append(schedule, api.ScheduleEntry{
			Period:             entry.Period,
			ScheduledPayment:   entry.ScheduledPayment,
			PrincipalPortion:   entry.PrincipalPortion,
			InterestPortion:    entry.InterestPortion,
			ExtraPrincipal:     entry.ExtraPrincipal,
			EndingBalance:      entry.EndingBalance,
			CumulativeInterest: entry.CumulativeInterest,
		})
	}
	return api.LoanResponse{
		PeriodicPayment: result.PeriodicPayment,
		TotalPaid:       result.TotalPaid,
		TotalInterest:   result.TotalInterest,
		PayoffPeriods:   result.PayoffPeriods,
		InterestSaved:   result.InterestSaved,
		Converged:       result.Converged,
		Schedule:        schedule,
	}
}

func writeJSON(w http.ResponseWriter, logger *zerolog.Logger, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error().Err(err).Msg("failed to encode response")
	}
}

func writeError(w http.ResponseWriter, logger *zerolog.Logger, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(api.Error{Error: message}); err != nil {
		logger.Error().Err(err).Msg("failed to encode error response")
	}
}
