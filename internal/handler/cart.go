package handler

import (
	"encoding/json"
	"net/http"

	"github.com/mohammad516/lc-website/internal/cart"
	"github.com/mohammad516/lc-website/internal/logger"
	"github.com/mohammad516/lc-website/internal/product"
	"github.com/mohammad516/lc-website/internal/utils"

	"go.uber.org/zap"
)

type reconcileRequest struct {
	Items []cart.Item `json:"items"`
}

type reconcileResponse struct {
	Items       []cart.Item       `json:"items"`
	Adjustments []cart.Adjustment `json:"adjustments"`
	Subtotal    float64           `json:"subtotal"`
}

// ReconcileCartHandler clamps the submitted cart against live stock
// before checkout: quantities above stock are reduced, lines whose
// product vanished or sold out are dropped, and every change is
// reported back so the client can show what moved.
func ReconcileCartHandler(productSvc product.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req reconcileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.WriteJSONError(w, "Invalid request body", "", http.StatusBadRequest)
			return
		}

		c := cart.New(req.Items...)

		ids := make([]string, 0, len(req.Items))
		for _, item := range c.Items() {
			ids = append(ids, item.ID)
		}

		if len(ids) == 0 {
			utils.WriteJSON(w, http.StatusOK, reconcileResponse{
				Items:       []cart.Item{},
				Adjustments: []cart.Adjustment{},
			})
			return
		}

		stock, err := productSvc.StockByIDs(r.Context(), ids)
		if err != nil {
			logger.FromCtx(r.Context()).Error("failed to fetch stock for reconciliation", zap.Error(err))
			utils.WriteJSONError(w, "Failed to reconcile cart", err.Error(), http.StatusInternalServerError)
			return
		}

		adjustments := c.Reconcile(func(productID string) (int, bool) {
			available, ok := stock[productID]
			return available, ok
		})
		if adjustments == nil {
			adjustments = []cart.Adjustment{}
		}

		utils.WriteJSON(w, http.StatusOK, reconcileResponse{
			Items:       c.Items(),
			Adjustments: adjustments,
			Subtotal:    c.Subtotal(),
		})
	}
}
