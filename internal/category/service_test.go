package category

import (
	"context"
	"testing"
	"time"

	"github.com/mohammad516/lc-website/internal/product"
	"github.com/mohammad516/lc-website/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var frozen = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetAll(ctx context.Context) ([]*Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Category), args.Error(1)
}

func (m *MockRepository) FindByName(ctx context.Context, name string) (*Category, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Category), args.Error(1)
}

// MockProductRepository mocks the product repository for category pages
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) GetList(ctx context.Context, opts product.ListOptions) ([]*product.Product, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*product.Product), args.Error(1)
}

func (m *MockProductRepository) GetBySlug(ctx context.Context, slug string) (*product.Product, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductRepository) GetByCategory(ctx context.Context, categoryName string) ([]*product.Product, error) {
	args := m.Called(ctx, categoryName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*product.Product), args.Error(1)
}

func (m *MockProductRepository) StockByIDs(ctx context.Context, ids []string) (map[string]int, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int), args.Error(1)
}

func frozenClock() func() time.Time {
	return func() time.Time { return frozen }
}

func TestService_GetAll(t *testing.T) {
	repo := new(MockRepository)
	productRepo := new(MockProductRepository)
	svc := NewServiceWithClock(repo, productRepo, frozenClock())

	repo.On("GetAll", mock.Anything).Return([]*Category{
		{ID: "cat-1", Name: "Hair Oils", Image: "hair.jpg"},
	}, nil)

	views, err := svc.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "hair-oils", views[0].Slug)
}

func TestService_GetBySlug(t *testing.T) {
	t.Run("ExactMatch", func(t *testing.T) {
		repo := new(MockRepository)
		productRepo := new(MockProductRepository)
		svc := NewServiceWithClock(repo, productRepo, frozenClock())

		repo.On("FindByName", mock.Anything, "Hair Oils").Return(&Category{
			ID: "cat-1", Name: "Hair Oils", Description: "Oils", Image: "hair.jpg",
		}, nil)

		expiredEnd := frozen.Add(-time.Hour).Format(time.RFC3339)
		productRepo.On("GetByCategory", mock.Anything, "Hair Oils").Return([]*product.Product{
			{ID: "p1", Title: "Argan Oil", Price: 100, EnableSale: true,
				SalePrice: utils.FloatPtr(80), SaleEndDate: &expiredEnd},
		}, nil)

		view, err := svc.GetBySlug(context.Background(), "hair-oils")
		require.NoError(t, err)
		assert.Equal(t, "HAIR OILS", view.Title)
		assert.Equal(t, "hair-oils", view.Slug)
		require.Len(t, view.Products, 1)

		// Expired sale must not leak to the category page.
		assert.Equal(t, float64(100), view.Products[0].Price)
		assert.False(t, view.Products[0].EnableSale)
	})

	t.Run("CaseInsensitiveFallback", func(t *testing.T) {
		repo := new(MockRepository)
		productRepo := new(MockProductRepository)
		svc := NewServiceWithClock(repo, productRepo, frozenClock())

		// Name has odd casing so the title-cased lookup misses.
		repo.On("FindByName", mock.Anything, "Hair Oils").Return(nil, nil)
		repo.On("GetAll", mock.Anything).Return([]*Category{
			{ID: "cat-1", Name: "HAIR oils"},
		}, nil)
		productRepo.On("GetByCategory", mock.Anything, "HAIR oils").
			Return([]*product.Product{}, nil)

		view, err := svc.GetBySlug(context.Background(), "hair-oils")
		require.NoError(t, err)
		assert.Equal(t, "cat-1", view.ID)
	})

	t.Run("NotFound", func(t *testing.T) {
		repo := new(MockRepository)
		productRepo := new(MockProductRepository)
		svc := NewServiceWithClock(repo, productRepo, frozenClock())

		repo.On("FindByName", mock.Anything, "Missing").Return(nil, nil)
		repo.On("GetAll", mock.Anything).Return([]*Category{}, nil)

		_, err := svc.GetBySlug(context.Background(), "missing")
		assert.ErrorIs(t, err, ErrCategoryNotFound)
	})
}
