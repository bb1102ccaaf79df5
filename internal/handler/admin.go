package handler

import (
	"crypto/subtle"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/mohammad516/lc-website/internal/auth"
	"github.com/mohammad516/lc-website/internal/logger"
	"github.com/mohammad516/lc-website/internal/order"
	"github.com/mohammad516/lc-website/internal/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// AdminLoginHandler checks the single dashboard account and issues a JWT.
func AdminLoginHandler(adminEmail, adminPasswordHash string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.WriteJSONError(w, "Invalid request body", "", http.StatusBadRequest)
			return
		}

		emailOK := subtle.ConstantTimeCompare([]byte(req.Email), []byte(adminEmail)) == 1
		if !emailOK || !auth.CheckPasswordHash(req.Password, adminPasswordHash) {
			utils.WriteJSONError(w, "Invalid credentials", "", http.StatusUnauthorized)
			return
		}

		token, err := auth.GenerateJWT(req.Email, auth.RoleAdmin)
		if err != nil {
			logger.FromCtx(r.Context()).Error("failed to issue admin token", zap.Error(err))
			utils.WriteJSONError(w, "Failed to issue token", "", http.StatusInternalServerError)
			return
		}

		utils.WriteJSON(w, http.StatusOK, loginResponse{Token: token})
	}
}

// AdminListOrdersHandler serves the dashboard order list with optional
// ?status=, ?limit= and ?page= filters.
func AdminListOrdersHandler(orderSvc order.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		opts := order.ListOptions{
			Status: r.URL.Query().Get("status"),
		}
		if v := r.URL.Query().Get("limit"); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				opts.Limit = n
			}
		}
		if v := r.URL.Query().Get("page"); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				opts.Page = n
			}
		}

		orders, err := orderSvc.GetList(r.Context(), opts)
		if err != nil {
			logger.FromCtx(r.Context()).Error("failed to fetch orders", zap.Error(err))
			utils.WriteJSONError(w, "Failed to fetch orders", err.Error(), http.StatusInternalServerError)
			return
		}

		if orders == nil {
			orders = []*order.Order{}
		}

		utils.WriteJSON(w, http.StatusOK, orders)
	}
}

func AdminGetOrderHandler(orderSvc order.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		number := chi.URLParam(r, "number")

		o, err := orderSvc.GetByNumber(r.Context(), number)
		if err != nil {
			if errors.Is(err, order.ErrOrderNotFound) {
				utils.WriteJSONError(w, "Order not found", "", http.StatusNotFound)
				return
			}
			logger.FromCtx(r.Context()).Error("failed to fetch order",
				zap.String("order_number", number), zap.Error(err))
			utils.WriteJSONError(w, "Failed to fetch order", err.Error(), http.StatusInternalServerError)
			return
		}

		utils.WriteJSON(w, http.StatusOK, o)
	}
}
