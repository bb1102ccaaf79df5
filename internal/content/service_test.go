package content

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetHeroes(ctx context.Context) ([]*Hero, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Hero), args.Error(1)
}

func (m *MockRepository) GetShopNow(ctx context.Context) (*ShopNow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ShopNow), args.Error(1)
}

func (m *MockRepository) GetLatestAnnouncementBar(ctx context.Context) (*AnnouncementBar, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*AnnouncementBar), args.Error(1)
}

func (m *MockRepository) GetInstagram(ctx context.Context) (*Instagram, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Instagram), args.Error(1)
}

func TestService_GetHeroes(t *testing.T) {
	t.Run("EmptyIsNotNil", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("GetHeroes", mock.Anything).Return(nil, nil)

		heroes, err := svc.GetHeroes(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, heroes)
		assert.Empty(t, heroes)
	})
}

func TestService_GetShopNow(t *testing.T) {
	t.Run("NotFound", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("GetShopNow", mock.Anything).Return(nil, nil)

		_, err := svc.GetShopNow(context.Background())
		assert.ErrorIs(t, err, ErrShopNowNotFound)
	})
}

func TestService_GetAnnouncementBar(t *testing.T) {
	t.Run("MissingRowYieldsEmptyTexts", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("GetLatestAnnouncementBar", mock.Anything).Return(nil, nil)

		view, err := svc.GetAnnouncementBar(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{}, view.Texts)
	})

	t.Run("TextsPassedThrough", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("GetLatestAnnouncementBar", mock.Anything).
			Return(&AnnouncementBar{Texts: []string{"Free delivery over $50"}}, nil)

		view, err := svc.GetAnnouncementBar(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"Free delivery over $50"}, view.Texts)
	})
}

func TestService_GetInstagram(t *testing.T) {
	t.Run("VideoDetectionByExtension", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		now := time.Now()
		repo.On("GetInstagram", mock.Anything).Return(&Instagram{
			ID:          "ig-1",
			Logo:        "/logo.png",
			AccountName: "lcorganic",
			Posts: []InstagramPost{
				{CoverImage: "/c1.jpg", Content: "/reel.MP4", Description: "new drop"},
				{CoverImage: "/c2.jpg", Content: "/photo.jpg", Description: "behind the scenes"},
			},
			CreatedAt: now,
			UpdatedAt: now,
		}, nil)

		view, err := svc.GetInstagram(context.Background())
		require.NoError(t, err)
		require.Len(t, view.Posts, 2)

		assert.Equal(t, "ig-1-0", view.Posts[0].ID)
		assert.Equal(t, "video", view.Posts[0].Type)
		assert.Equal(t, "image", view.Posts[1].Type)
		assert.Equal(t, "new drop", view.Posts[0].Caption)
	})

	t.Run("NotFound", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("GetInstagram", mock.Anything).Return(nil, nil)

		_, err := svc.GetInstagram(context.Background())
		assert.ErrorIs(t, err, ErrInstagramNotFound)
	})
}
