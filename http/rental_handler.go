package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"deal-engine/domain"
	"deal-engine/service"
)

type RentalHandler struct {
	service  *service.AnalysisService
	validate *validator.Validate
	logger   *slog.Logger
}

func NewRentalHandler(
	svc *service.AnalysisService,
	validate *validator.Validate,
	logger *slog.Logger,
) *RentalHandler {
	return &RentalHandler{service: svc, validate: validate, logger: logger}
}

type rentalCashFlowRequest struct {
	MonthlyRent            float64 `json:"monthlyRent" validate:"gte=0"`
	MonthlyExpenses        float64 `json:"monthlyExpenses" validate:"gte=0"`
	MonthlyMortgage        float64 `json:"monthlyMortgage" validate:"gte=0"`
	VacancyRate            float64 `json:"vacancyRate" validate:"gte=0,lte=1"`
	PropertyManagementRate float64 `json:"propertyManagementRate" validate:"gte=0,lte=1"`
}

// CashFlow handles POST /rental/cash-flow.
func (h *RentalHandler) CashFlow(w http.ResponseWriter, r *http.Request) {
	var req rentalCashFlowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result := h.service.RentalCashFlow(r.Context(), domain.RentalCashFlowInput{
		MonthlyRent:            req.MonthlyRent,
		MonthlyExpenses:        req.MonthlyExpenses,
		MonthlyMortgage:        req.MonthlyMortgage,
		VacancyRate:            req.VacancyRate,
		PropertyManagementRate: req.PropertyManagementRate,
	})

	respondJSON(w, h.logger, result)
}

// CapRate handles GET /rental/cap-rate?noi=...&propertyValue=...
func (h *RentalHandler) CapRate(w http.ResponseWriter, r *http.Request) {
	noi, ok := queryFloat(w, r, "noi")
	if !ok {
		return
	}
	propertyValue, ok := queryFloat(w, r, "propertyValue")
	if !ok {
		return
	}

	capRate := service.CalculateCapRate(noi, propertyValue)

	respondJSON(w, h.logger, map[string]float64{"capRate": capRate})
}

// DSCR handles GET /rental/dscr?noi=...&annualDebtService=...
func (h *RentalHandler) DSCR(w http.ResponseWriter, r *http.Request) {
	noi, ok := queryFloat(w, r, "noi")
	if !ok {
		return
	}
	annualDebtService, ok := queryFloat(w, r, "annualDebtService")
	if !ok {
		return
	}

	dscr := service.CalculateDSCR(noi, annualDebtService)

	respondJSON(w, h.logger, map[string]float64{"dscr": dscr})
}
