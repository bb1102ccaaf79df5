package handler

import (
	"errors"
	"net/http"

	"github.com/mohammad516/lc-website/internal/category"
	"github.com/mohammad516/lc-website/internal/logger"
	"github.com/mohammad516/lc-website/internal/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func ListCategoriesHandler(categorySvc category.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		views, err := categorySvc.GetAll(r.Context())
		if err != nil {
			logger.FromCtx(r.Context()).Error("failed to fetch categories", zap.Error(err))
			utils.WriteJSONError(w, "Failed to fetch categories", err.Error(), http.StatusInternalServerError)
			return
		}

		utils.WriteJSON(w, http.StatusOK, views)
	}
}

func GetCategoryHandler(categorySvc category.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")

		view, err := categorySvc.GetBySlug(r.Context(), slug)
		if err != nil {
			if errors.Is(err, category.ErrCategoryNotFound) {
				utils.WriteJSONError(w, "Category not found", "", http.StatusNotFound)
				return
			}
			logger.FromCtx(r.Context()).Error("failed to fetch category",
				zap.String("slug", slug), zap.Error(err))
			utils.WriteJSONError(w, "Failed to fetch category", err.Error(), http.StatusInternalServerError)
			return
		}

		utils.WriteJSON(w, http.StatusOK, view)
	}
}
