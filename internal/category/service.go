package category

import (
	"context"
	"strings"
	"time"

	"github.com/mohammad516/lc-website/internal/logger"
	"github.com/mohammad516/lc-website/internal/product"
	"github.com/mohammad516/lc-website/internal/utils"

	"go.uber.org/zap"
)

// View is the category card served on the home page.
type View struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	Slug        string    `json:"slug"`
	CreatedAt   time.Time `json:"createdAt"`
}

// DetailView is a category page with its product list.
type DetailView struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Image       string          `json:"image"`
	Slug        string          `json:"slug"`
	Products    []*product.View `json:"products"`
}

type Service interface {
	GetAll(ctx context.Context) ([]*View, error)
	GetBySlug(ctx context.Context, slug string) (*DetailView, error)
}

type service struct {
	repo        Repository
	productRepo product.Repository
	now         func() time.Time
}

func NewService(repo Repository, productRepo product.Repository) Service {
	return &service{repo: repo, productRepo: productRepo, now: time.Now}
}

func NewServiceWithClock(repo Repository, productRepo product.Repository, now func() time.Time) Service {
	return &service{repo: repo, productRepo: productRepo, now: now}
}

func (s *service) GetAll(ctx context.Context) ([]*View, error) {
	categories, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]*View, 0, len(categories))
	for _, c := range categories {
		views = append(views, &View{
			ID:          c.ID,
			Name:        c.Name,
			Description: c.Description,
			Image:       c.Image,
			Slug:        utils.Slugify(c.Name),
			CreatedAt:   c.CreatedAt,
		})
	}

	return views, nil
}

func (s *service) GetBySlug(ctx context.Context, slug string) (*DetailView, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "GetCategoryBySlug"),
		zap.String("slug", slug),
	)

	cat, err := s.resolveSlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		log.Warn("category not found")
		return nil, ErrCategoryNotFound
	}

	// Product.Category is a plain string matching Category.Name.
	products, err := s.productRepo.GetByCategory(ctx, cat.Name)
	if err != nil {
		log.Error("failed to fetch category products", zap.Error(err))
		return nil, err
	}

	now := s.now()
	views := make([]*product.View, 0, len(products))
	for _, p := range products {
		views = append(views, product.ToView(p, now))
	}

	return &DetailView{
		ID:          cat.ID,
		Name:        cat.Name,
		Title:       strings.ToUpper(cat.Name),
		Description: cat.Description,
		Image:       cat.Image,
		Slug:        utils.Slugify(cat.Name),
		Products:    views,
	}, nil
}

// resolveSlug tries an exact match on the title-cased slug first
// ("hair-oils" -> "Hair Oils"), then falls back to a case-insensitive
// scan over all category names.
func (s *service) resolveSlug(ctx context.Context, slug string) (*Category, error) {
	cat, err := s.repo.FindByName(ctx, utils.TitleFromSlug(slug))
	if err != nil {
		return nil, err
	}
	if cat != nil {
		return cat, nil
	}

	all, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	want := strings.ToLower(slug)
	for _, c := range all {
		if utils.NormalizeName(c.Name) == want {
			return c, nil
		}
	}

	return nil, nil
}
