package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mohammad516/lc-website/internal/category"
	"github.com/mohammad516/lc-website/internal/config"
	"github.com/mohammad516/lc-website/internal/content"
	"github.com/mohammad516/lc-website/internal/db"
	"github.com/mohammad516/lc-website/internal/delivery"
	"github.com/mohammad516/lc-website/internal/handler"
	"github.com/mohammad516/lc-website/internal/logger"
	"github.com/mohammad516/lc-website/internal/middleware"
	"github.com/mohammad516/lc-website/internal/notify"
	"github.com/mohammad516/lc-website/internal/order"
	"github.com/mohammad516/lc-website/internal/product"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := db.InitDB(cfg)
	defer database.Close()

	productRepo := product.NewRepository(database)
	productSvc := product.NewService(productRepo)

	categoryRepo := category.NewRepository(database)
	categorySvc := category.NewService(categoryRepo, productRepo)

	deliveryRepo := delivery.NewRepository(database)
	deliverySvc := delivery.NewService(deliveryRepo)

	contentRepo := content.NewRepository(database)
	contentSvc := content.NewService(contentRepo)

	var notifier order.Notifier
	if cfg.TelegramBotToken != "" && cfg.TelegramChatID != "" {
		notifier = notify.NewTelegramClient(cfg.TelegramBotToken, cfg.TelegramChatID)
	} else {
		logger.L().Warn("telegram credentials missing, order notifications disabled")
	}

	orderRepo := order.NewRepository(database)
	orderSvc := order.NewService(orderRepo, notifier)

	r := chi.NewRouter()

	r.Use(middleware.Logging)
	r.Use(middleware.RateLimit)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Storefront routes
	r.Get("/api/products", handler.ListProductsHandler(productSvc))
	r.Get("/api/products/{slug}", handler.GetProductHandler(productSvc))
	r.Post("/api/products/stock", handler.CheckStockHandler(productSvc))
	r.Post("/api/cart/reconcile", handler.ReconcileCartHandler(productSvc))

	r.Get("/api/categories", handler.ListCategoriesHandler(categorySvc))
	r.Get("/api/categories/{slug}", handler.GetCategoryHandler(categorySvc))

	r.Get("/api/delivery", handler.ListDeliveryRatesHandler(deliverySvc))
	r.Get("/api/delivery/{governorate}", handler.GetDeliveryFeeHandler(deliverySvc))

	r.Get("/api/hero", handler.ListHeroesHandler(contentSvc))
	r.Get("/api/shopnow", handler.GetShopNowHandler(contentSvc))
	r.Get("/api/announcementbar", handler.GetAnnouncementBarHandler(contentSvc))
	r.Get("/api/instagram", handler.GetInstagramHandler(contentSvc))

	r.Post("/api/orders", handler.CreateOrderHandler(orderSvc))

	// Admin dashboard
	r.Post("/api/admin/login", handler.AdminLoginHandler(cfg.AdminEmail, cfg.AdminPasswordHash))
	r.Group(func(r chi.Router) {
		r.Use(middleware.AdminOnly)

		r.Get("/api/admin/orders", handler.AdminListOrdersHandler(orderSvc))
		r.Get("/api/admin/orders/{number}", handler.AdminGetOrderHandler(orderSvc))
	})

	srv := &http.Server{
		Addr:         ":" + cfg.AppPort,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.L().Info("🚀 storefront API running", zap.String("port", cfg.AppPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.L().Fatal("server failed", zap.Error(err))
		}
	}()

	<-quit
	logger.L().Info("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.L().Error("server shutdown failed", zap.Error(err))
	}

	logger.L().Info("server stopped")
}
