package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter wires every calculation endpoint behind the rate limiter and
// request metrics. The /metrics route is deliberately outside the limiter.
func NewRouter(
	mortgage *MortgageHandler,
	deal *DealHandler,
	rental *RentalHandler,
	limiter *RateLimiter,
) http.Handler {
	r := chi.NewRouter()

	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(MetricsMiddleware)
		r.Use(RateLimitMiddleware(limiter))

		r.Route("/loan", func(r chi.Router) {
			r.Post("/payment", mortgage.MonthlyPayment)
			r.Post("/schedule", mortgage.Schedule)
			r.Post("/summary", mortgage.Summary)
			r.Post("/remaining-balance", mortgage.RemainingBalance)
		})

		r.Route("/deal", func(r chi.Router) {
			r.Post("/analyze", deal.Analyze)
			r.Get("/mao", deal.MaxAllowableOffer)
		})

		r.Route("/rental", func(r chi.Router) {
			r.Post("/cash-flow", rental.CashFlow)
			r.Get("/cap-rate", rental.CapRate)
			r.Get("/dscr", rental.DSCR)
		})
	})

	return r
}
