package content

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/lib/pq"
)

type Repository interface {
	GetHeroes(ctx context.Context) ([]*Hero, error)
	GetShopNow(ctx context.Context) (*ShopNow, error)
	GetLatestAnnouncementBar(ctx context.Context) (*AnnouncementBar, error)
	GetInstagram(ctx context.Context) (*Instagram, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetHeroes(ctx context.Context) ([]*Hero, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, image, created_at
		FROM heroes
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var heroes []*Hero
	for rows.Next() {
		var h Hero
		if err := rows.Scan(&h.ID, &h.Image, &h.CreatedAt); err != nil {
			return nil, err
		}
		heroes = append(heroes, &h)
	}

	return heroes, rows.Err()
}

func (r *repository) GetShopNow(ctx context.Context) (*ShopNow, error) {
	var s ShopNow
	err := r.db.QueryRowContext(ctx, `
		SELECT id, image, description, created_at, updated_at
		FROM shopnow
		LIMIT 1
	`).Scan(&s.ID, &s.Image, &s.Description, &s.CreatedAt, &s.UpdatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &s, nil
}

func (r *repository) GetLatestAnnouncementBar(ctx context.Context) (*AnnouncementBar, error) {
	var a AnnouncementBar
	err := r.db.QueryRowContext(ctx, `
		SELECT id, texts, updated_at
		FROM announcement_bars
		ORDER BY updated_at DESC
		LIMIT 1
	`).Scan(&a.ID, pq.Array(&a.Texts), &a.UpdatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &a, nil
}

func (r *repository) GetInstagram(ctx context.Context) (*Instagram, error) {
	var ig Instagram
	var postsRaw []byte

	err := r.db.QueryRowContext(ctx, `
		SELECT id, logo, account_name, posts, created_at, updated_at
		FROM instagram
		LIMIT 1
	`).Scan(&ig.ID, &ig.Logo, &ig.AccountName, &postsRaw, &ig.CreatedAt, &ig.UpdatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if len(postsRaw) > 0 {
		if err := json.Unmarshal(postsRaw, &ig.Posts); err != nil {
			return nil, err
		}
	}

	return &ig, nil
}
