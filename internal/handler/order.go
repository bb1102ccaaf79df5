package handler

import (
	"encoding/json"
	"net/http"

	"github.com/mohammad516/lc-website/internal/logger"
	"github.com/mohammad516/lc-website/internal/order"
	"github.com/mohammad516/lc-website/internal/utils"

	"go.uber.org/zap"
)

// CreateOrderHandler accepts the storefront checkout payload. Validation
// failures map to 400 with the specific reason; everything else is a 500.
func CreateOrderHandler(orderSvc order.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input order.CheckoutInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			utils.WriteJSONError(w, "Invalid request body", "", http.StatusBadRequest)
			return
		}

		result, err := orderSvc.Create(r.Context(), input)
		if err != nil {
			if order.IsValidation(err) {
				utils.WriteJSONError(w, err.Error(), "", http.StatusBadRequest)
				return
			}
			logger.FromCtx(r.Context()).Error("failed to create order", zap.Error(err))
			utils.WriteJSONError(w, "Failed to create order", err.Error(), http.StatusInternalServerError)
			return
		}

		utils.WriteJSON(w, http.StatusCreated, result)
	}
}
