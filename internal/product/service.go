package product

import (
	"context"
	"time"

	"github.com/mohammad516/lc-website/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	GetList(ctx context.Context, opts ListOptions) ([]*View, error)
	GetBySlug(ctx context.Context, slug string) (*DetailView, error)
	StockByIDs(ctx context.Context, ids []string) (map[string]int, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

// NewServiceWithClock lets tests freeze pricing evaluation time.
func NewServiceWithClock(repo Repository, now func() time.Time) Service {
	return &service{repo: repo, now: now}
}

func (s *service) GetList(ctx context.Context, opts ListOptions) ([]*View, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "GetProductList"),
	)

	start := time.Now()

	products, err := s.repo.GetList(ctx, opts)
	if err != nil {
		log.Error("failed to fetch product list",
			zap.Error(err),
			zap.Duration("duration", time.Since(start)),
		)
		return nil, err
	}

	// Sale state is recomputed on every read; time advances independently
	// of any write to the product.
	now := s.now()
	views := make([]*View, 0, len(products))
	for _, p := range products {
		views = append(views, ToView(p, now))
	}

	log.Info("get product list success",
		zap.Int("count", len(views)),
		zap.Bool("featured_only", opts.FeaturedOnly),
		zap.Duration("duration", time.Since(start)),
	)

	return views, nil
}

func (s *service) GetBySlug(ctx context.Context, slug string) (*DetailView, error) {
	p, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProductNotFound
	}

	return ToDetailView(p, s.now()), nil
}

func (s *service) StockByIDs(ctx context.Context, ids []string) (map[string]int, error) {
	return s.repo.StockByIDs(ctx, ids)
}
