package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"deal-engine/domain"
	"deal-engine/service"
)

type MortgageHandler struct {
	service  *service.AnalysisService
	validate *validator.Validate
	logger   *slog.Logger
}

func NewMortgageHandler(
	svc *service.AnalysisService,
	validate *validator.Validate,
	logger *slog.Logger,
) *MortgageHandler {
	return &MortgageHandler{service: svc, validate: validate, logger: logger}
}

type loanTermsRequest struct {
	Principal         float64 `json:"principal" validate:"gte=0"`
	AnnualRatePercent float64 `json:"annualRatePercent" validate:"gte=0"`
	TermYears         float64 `json:"termYears" validate:"gt=0"`
}

func (r loanTermsRequest) terms() domain.LoanTerms {
	return domain.LoanTerms{
		Principal:         r.Principal,
		AnnualRatePercent: r.AnnualRatePercent,
		TermYears:         r.TermYears,
	}
}

// MonthlyPayment handles POST /loan/payment.
func (h *MortgageHandler) MonthlyPayment(w http.ResponseWriter, r *http.Request) {
	var req loanTermsRequest
	if !h.decode(w, r, &req) {
		return
	}

	payment := service.MonthlyPayment(req.Principal, req.AnnualRatePercent, req.TermYears)

	respondJSON(w, h.logger, map[string]float64{"monthlyPayment": payment})
}

// Schedule handles POST /loan/schedule. With ?yearly=true the schedule is
// rolled up into per-year totals.
func (h *MortgageHandler) Schedule(w http.ResponseWriter, r *http.Request) {
	var req loanTermsRequest
	if !h.decode(w, r, &req) {
		return
	}

	schedule := h.service.LoanSchedule(r.Context(), req.terms())

	if r.URL.Query().Get("yearly") == "true" {
		respondJSON(w, h.logger, service.AggregateByYear(schedule))
		return
	}

	respondJSON(w, h.logger, schedule)
}

// Summary handles POST /loan/summary.
func (h *MortgageHandler) Summary(w http.ResponseWriter, r *http.Request) {
	var req loanTermsRequest
	if !h.decode(w, r, &req) {
		return
	}

	respondJSON(w, h.logger, h.service.LoanSummary(r.Context(), req.terms()))
}

type remainingBalanceRequest struct {
	loanTermsRequest
	MonthsElapsed int `json:"monthsElapsed"`
}

// RemainingBalance handles POST /loan/remaining-balance.
func (h *MortgageHandler) RemainingBalance(w http.ResponseWriter, r *http.Request) {
	var req remainingBalanceRequest
	if !h.decode(w, r, &req) {
		return
	}

	balance := service.RemainingBalance(
		req.Principal, req.AnnualRatePercent, req.TermYears, req.MonthsElapsed)

	respondJSON(w, h.logger, map[string]float64{"remainingBalance": balance})
}

func (h *MortgageHandler) decode(w http.ResponseWriter, r *http.Request, into any) bool {
	if err := json.NewDecoder(r.Body).Decode(into); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return false
	}
	if err := h.validate.Struct(into); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}
