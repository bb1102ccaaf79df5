package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mohammad516/lc-website/internal/logger"
	"github.com/mohammad516/lc-website/internal/product"
	"github.com/mohammad516/lc-website/internal/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ListProductsHandler serves the catalog; ?featured=true narrows it to
// the home page picks.
func ListProductsHandler(productSvc product.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		opts := product.ListOptions{
			FeaturedOnly: r.URL.Query().Get("featured") == "true",
		}

		views, err := productSvc.GetList(r.Context(), opts)
		if err != nil {
			logger.FromCtx(r.Context()).Error("failed to fetch products", zap.Error(err))
			utils.WriteJSONError(w, "Failed to fetch products", err.Error(), http.StatusInternalServerError)
			return
		}

		utils.WriteJSON(w, http.StatusOK, views)
	}
}

func GetProductHandler(productSvc product.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")

		view, err := productSvc.GetBySlug(r.Context(), slug)
		if err != nil {
			if errors.Is(err, product.ErrProductNotFound) {
				utils.WriteJSONError(w, "Product not found", "", http.StatusNotFound)
				return
			}
			logger.FromCtx(r.Context()).Error("failed to fetch product",
				zap.String("slug", slug), zap.Error(err))
			utils.WriteJSONError(w, "Failed to fetch product", err.Error(), http.StatusInternalServerError)
			return
		}

		utils.WriteJSON(w, http.StatusOK, view)
	}
}

type stockRequest struct {
	IDs []string `json:"ids"`
}

// CheckStockHandler returns current stock for the requested product IDs
// so the cart can reconcile quantities before checkout.
func CheckStockHandler(productSvc product.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req stockRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.WriteJSONError(w, "Invalid request body", "", http.StatusBadRequest)
			return
		}

		if len(req.IDs) == 0 {
			utils.WriteJSON(w, http.StatusOK, map[string]int{})
			return
		}

		stock, err := productSvc.StockByIDs(r.Context(), req.IDs)
		if err != nil {
			logger.FromCtx(r.Context()).Error("failed to fetch stock", zap.Error(err))
			utils.WriteJSONError(w, "Failed to fetch stock", err.Error(), http.StatusInternalServerError)
			return
		}

		utils.WriteJSON(w, http.StatusOK, stock)
	}
}
