package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"home-inventory/internal/http/handlers"
)

func NewRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(RateLimit)

	r.Post("/installations", handlers.CreateInstallationHandler)
	r.Post("/installations/join", handlers.JoinInstallationHandler)
	r.Post("/installations/paircode", handlers.NewPairingCodeHandler)
	r.Get("/installations/paircode/{code}/qr", handlers.PairingCodeQRHandler)

	r.Get("/product/items", handlers.GetProductsHandler)
	r.Get("/product/barcode/{barcode}", handlers.GetProductByBarcodeHandler)
	r.Get("/product/{id}", handlers.GetProductByIDHandler)
	r.Post("/product", handlers.CreateProductHandler)

	// The create route stays outside the auth group: the add flow carries
	// the installation id in the request body.
	r.Post("/inventory", handlers.AddInventoryItemHandler)

	r.Group(func(r chi.Router) {
		r.Use(InstallationAuth)

		r.Get("/inventory/items", handlers.GetInventoryItemsHandler)
		r.Put("/inventory/{productId}", handlers.UpdateInventoryItemHandler)
		r.Delete("/inventory/{productId}", handlers.DeleteInventoryItemHandler)

		r.Get("/inventory/requirements/items", handlers.GetRequirementsHandler)
		r.Post("/inventory/requirements", handlers.UpsertRequirementHandler)
		r.Post("/inventory/requirements/batch", handlers.AddRequirementsBatchHandler)
		r.Put("/inventory/requirements/{productId}", handlers.UpdateRequirementHandler)
		r.Delete("/inventory/requirements/{productId}", handlers.DeleteRequirementHandler)
		r.Get("/inventory/requirements/shopping-list", handlers.GetShoppingListHandler)

		r.Get("/inventory/{id}", handlers.GetInventoryItemByIDHandler)
	})

	return r
}
