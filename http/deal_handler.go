package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	"deal-engine/domain"
	"deal-engine/service"
)

type DealHandler struct {
	service  *service.AnalysisService
	validate *validator.Validate
	logger   *slog.Logger
}

func NewDealHandler(
	svc *service.AnalysisService,
	validate *validator.Validate,
	logger *slog.Logger,
) *DealHandler {
	return &DealHandler{service: svc, validate: validate, logger: logger}
}

type dealAnalysisRequest struct {
	PurchasePrice    float64 `json:"purchasePrice" validate:"gte=0"`
	AfterRepairValue float64 `json:"afterRepairValue" validate:"gte=0"`
	RepairCosts      float64 `json:"repairCosts" validate:"gte=0"`
	HoldingCosts     float64 `json:"holdingCosts" validate:"gte=0"`
	ClosingCosts     float64 `json:"closingCosts" validate:"gte=0"`
	SellingCosts     float64 `json:"sellingCosts" validate:"gte=0"`
	DownPayment      float64 `json:"downPayment" validate:"gte=0"`
	LoanAmount       float64 `json:"loanAmount" validate:"gte=0"`
	InterestRate     float64 `json:"interestRate" validate:"gte=0"`
	LoanTermYears    float64 `json:"loanTermYears" validate:"gte=0"`
}

// Analyze handles POST /deal/analyze.
func (h *DealHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req dealAnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result := h.service.AnalyzeDeal(r.Context(), domain.DealAnalysisInput{
		PurchasePrice:    req.PurchasePrice,
		AfterRepairValue: req.AfterRepairValue,
		RepairCosts:      req.RepairCosts,
		HoldingCosts:     req.HoldingCosts,
		ClosingCosts:     req.ClosingCosts,
		SellingCosts:     req.SellingCosts,
		DownPayment:      req.DownPayment,
		LoanAmount:       req.LoanAmount,
		InterestRate:     req.InterestRate,
		LoanTermYears:    req.LoanTermYears,
	})

	respondJSON(w, h.logger, result)
}

// MaxAllowableOffer handles GET /deal/mao?arv=...&repairCosts=... for callers
// that only need the offer ceiling.
func (h *DealHandler) MaxAllowableOffer(w http.ResponseWriter, r *http.Request) {
	arv, ok := queryFloat(w, r, "arv")
	if !ok {
		return
	}
	repairCosts, ok := queryFloat(w, r, "repairCosts")
	if !ok {
		return
	}

	mao := service.Calculate70PercentRule(arv, repairCosts)

	respondJSON(w, h.logger, map[string]float64{"maxAllowableOffer": mao})
}

// queryFloat parses a required float query parameter, writing a 400 on
// failure.
func queryFloat(w http.ResponseWriter, r *http.Request, name string) (float64, bool) {
	raw := r.URL.Query().Get(name)
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		http.Error(w, "invalid "+name+" parameter", http.StatusBadRequest)
		return 0, false
	}
	return value, true
}
