package content

import (
	"context"
	"fmt"
	"regexp"
	"time"
)

var videoExtRe = regexp.MustCompile(`(?i)\.(mp4|webm|ogg|mov)$`)

// PostView is an instagram tile shaped for the storefront strip.
type PostView struct {
	ID      string `json:"id"`
	Cover   string `json:"cover"`
	Type    string `json:"type"`
	Media   string `json:"media"`
	Caption string `json:"caption"`
}

// InstagramView is the account section with typed posts.
type InstagramView struct {
	ID          string     `json:"id"`
	Logo        string     `json:"logo"`
	AccountName string     `json:"accountName"`
	Posts       []PostView `json:"posts"`
	CreatedAt   string     `json:"createdAt"`
	UpdatedAt   string     `json:"updatedAt"`
}

// AnnouncementView is always returned, with empty texts when nothing is
// configured.
type AnnouncementView struct {
	Texts []string `json:"texts"`
}

type Service interface {
	GetHeroes(ctx context.Context) ([]*Hero, error)
	GetShopNow(ctx context.Context) (*ShopNow, error)
	GetAnnouncementBar(ctx context.Context) (*AnnouncementView, error)
	GetInstagram(ctx context.Context) (*InstagramView, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetHeroes(ctx context.Context) ([]*Hero, error) {
	heroes, err := s.repo.GetHeroes(ctx)
	if err != nil {
		return nil, err
	}
	if heroes == nil {
		heroes = []*Hero{}
	}
	return heroes, nil
}

func (s *service) GetShopNow(ctx context.Context) (*ShopNow, error) {
	shopNow, err := s.repo.GetShopNow(ctx)
	if err != nil {
		return nil, err
	}
	if shopNow == nil {
		return nil, ErrShopNowNotFound
	}
	return shopNow, nil
}

func (s *service) GetAnnouncementBar(ctx context.Context) (*AnnouncementView, error) {
	bar, err := s.repo.GetLatestAnnouncementBar(ctx)
	if err != nil {
		return nil, err
	}
	if bar == nil || bar.Texts == nil {
		return &AnnouncementView{Texts: []string{}}, nil
	}
	return &AnnouncementView{Texts: bar.Texts}, nil
}

func (s *service) GetInstagram(ctx context.Context) (*InstagramView, error) {
	ig, err := s.repo.GetInstagram(ctx)
	if err != nil {
		return nil, err
	}
	if ig == nil {
		return nil, ErrInstagramNotFound
	}

	view := &InstagramView{
		ID:          ig.ID,
		Logo:        ig.Logo,
		AccountName: ig.AccountName,
		Posts:       make([]PostView, 0, len(ig.Posts)),
		CreatedAt:   ig.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   ig.UpdatedAt.Format(time.RFC3339),
	}

	for i, post := range ig.Posts {
		mediaType := "image"
		if videoExtRe.MatchString(post.Content) {
			mediaType = "video"
		}
		view.Posts = append(view.Posts, PostView{
			ID:      fmt.Sprintf("%s-%d", ig.ID, i),
			Cover:   post.CoverImage,
			Type:    mediaType,
			Media:   post.Content,
			Caption: post.Description,
		})
	}

	return view, nil
}
