package handler

import (
	"errors"
	"net/http"

	"github.com/mohammad516/lc-website/internal/content"
	"github.com/mohammad516/lc-website/internal/logger"
	"github.com/mohammad516/lc-website/internal/utils"

	"go.uber.org/zap"
)

func ListHeroesHandler(contentSvc content.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		heroes, err := contentSvc.GetHeroes(r.Context())
		if err != nil {
			logger.FromCtx(r.Context()).Error("failed to fetch heroes", zap.Error(err))
			utils.WriteJSONError(w, "Failed to fetch heroes", err.Error(), http.StatusInternalServerError)
			return
		}

		utils.WriteJSON(w, http.StatusOK, heroes)
	}
}

func GetShopNowHandler(contentSvc content.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		shopNow, err := contentSvc.GetShopNow(r.Context())
		if err != nil {
			if errors.Is(err, content.ErrShopNowNotFound) {
				utils.WriteJSONError(w, "No Shopnow data found", "", http.StatusNotFound)
				return
			}
			logger.FromCtx(r.Context()).Error("failed to fetch shop now data", zap.Error(err))
			utils.WriteJSONError(w, "Failed to fetch Shopnow data", err.Error(), http.StatusInternalServerError)
			return
		}

		utils.WriteJSON(w, http.StatusOK, shopNow)
	}
}

func GetAnnouncementBarHandler(contentSvc content.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, err := contentSvc.GetAnnouncementBar(r.Context())
		if err != nil {
			logger.FromCtx(r.Context()).Error("failed to fetch announcement bar", zap.Error(err))
			utils.WriteJSONError(w, "Failed to fetch announcement bar", "", http.StatusInternalServerError)
			return
		}

		utils.WriteJSON(w, http.StatusOK, view)
	}
}

func GetInstagramHandler(contentSvc content.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, err := contentSvc.GetInstagram(r.Context())
		if err != nil {
			if errors.Is(err, content.ErrInstagramNotFound) {
				utils.WriteJSONError(w, "No Instagram data found", "", http.StatusNotFound)
				return
			}
			logger.FromCtx(r.Context()).Error("failed to fetch instagram data", zap.Error(err))
			utils.WriteJSONError(w, "Failed to fetch Instagram data", err.Error(), http.StatusInternalServerError)
			return
		}

		utils.WriteJSON(w, http.StatusOK, view)
	}
}
