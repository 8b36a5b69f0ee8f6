package handlers

import (
	"log/slog"

	appmiddleware "github.com/chris/savings-vaults/pkg/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter mounts the full HTTP surface on a chi router.
func NewRouter(handler *ApiHandler, logger *slog.Logger) *chi.Mux {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(appmiddleware.NewStructuredLogger(logger))
	router.Use(middleware.Recoverer)

	router.Route("/vaults", func(r chi.Router) {
		r.Post("/", handler.CreateVault)
		r.Get("/", handler.ListVaults)
		r.Route("/{vaultId}", func(r chi.Router) {
			r.Get("/", handler.GetVaultById)
			r.Post("/deposits", handler.Deposit)
			r.Post("/withdrawal", handler.Withdraw)
			r.Post("/emergency-withdrawal", handler.EmergencyWithdraw)
		})
	})

	router.Get("/stats", handler.GetStats)
	router.Put("/fees", handler.UpdateFeeRate)
	router.Get("/ledger", handler.ListLedgerEntries)

	return router
}
