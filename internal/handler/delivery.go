package handler

import (
	"errors"
	"net/http"

	"github.com/mohammad516/lc-website/internal/delivery"
	"github.com/mohammad516/lc-website/internal/logger"
	"github.com/mohammad516/lc-website/internal/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func ListDeliveryRatesHandler(deliverySvc delivery.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rates, err := deliverySvc.GetAll(r.Context())
		if err != nil {
			logger.FromCtx(r.Context()).Error("failed to fetch delivery rates", zap.Error(err))
			utils.WriteJSONError(w, "Failed to fetch delivery rates", err.Error(), http.StatusInternalServerError)
			return
		}

		if rates == nil {
			rates = []*delivery.Rate{}
		}

		utils.WriteJSON(w, http.StatusOK, rates)
	}
}

type feeResponse struct {
	Governorate string  `json:"governorate"`
	Price       float64 `json:"price"`
}

// GetDeliveryFeeHandler resolves the shipping fee for one governorate,
// used by the checkout page when the address changes.
func GetDeliveryFeeHandler(deliverySvc delivery.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		governorate := chi.URLParam(r, "governorate")

		fee, err := deliverySvc.FeeFor(r.Context(), governorate)
		if err != nil {
			if errors.Is(err, delivery.ErrRateNotFound) {
				utils.WriteJSONError(w, "Delivery rate not found", "", http.StatusNotFound)
				return
			}
			logger.FromCtx(r.Context()).Error("failed to fetch delivery fee",
				zap.String("governorate", governorate), zap.Error(err))
			utils.WriteJSONError(w, "Failed to fetch delivery fee", err.Error(), http.StatusInternalServerError)
			return
		}

		utils.WriteJSON(w, http.StatusOK, feeResponse{Governorate: governorate, Price: fee})
	}
}
