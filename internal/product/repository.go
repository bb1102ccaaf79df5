package product

import (
	"context"
	"database/sql"
	"errors"

	"github.com/mohammad516/lc-website/internal/logger"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository interface {
	GetList(ctx context.Context, opts ListOptions) ([]*Product, error)
	GetBySlug(ctx context.Context, slug string) (*Product, error)
	GetByCategory(ctx context.Context, categoryName string) ([]*Product, error)
	StockByIDs(ctx context.Context, ids []string) (map[string]int, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const productColumns = `
	id, title, slug, description, category,
	price, enable_sale, sale_price, sale_end_date,
	images, stock, is_featured, created_at, updated_at
`

func scanProduct(row interface{ Scan(dest ...any) error }) (*Product, error) {
	var p Product
	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Slug,
		&p.Description,
		&p.Category,
		&p.Price,
		&p.EnableSale,
		&p.SalePrice,
		&p.SaleEndDate,
		pq.Array(&p.Images),
		&p.Stock,
		&p.IsFeatured,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) GetList(ctx context.Context, opts ListOptions) ([]*Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "GetList"),
		zap.Bool("featured_only", opts.FeaturedOnly),
	)

	query := `SELECT ` + productColumns + ` FROM products`
	args := []any{}

	if opts.FeaturedOnly {
		query += ` WHERE is_featured = $1`
		args = append(args, true)
	}

	query += ` ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query products", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var products []*Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			log.Error("failed to scan product row", zap.Error(err))
			return nil, err
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		log.Error("rows iteration error", zap.Error(err))
		return nil, err
	}

	return products, nil
}

func (r *repository) GetBySlug(ctx context.Context, slug string) (*Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE slug = $1`

	p, err := scanProduct(r.db.QueryRowContext(ctx, query, slug))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return p, nil
}

func (r *repository) GetByCategory(ctx context.Context, categoryName string) ([]*Product, error) {
	query := `SELECT ` + productColumns + ` FROM products
		WHERE category = $1
		ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, categoryName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []*Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return products, rows.Err()
}

func (r *repository) StockByIDs(ctx context.Context, ids []string) (map[string]int, error) {
	if len(ids) == 0 {
		return map[string]int{}, nil
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, stock FROM products WHERE id = ANY($1)`,
		pq.Array(ids),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stock := make(map[string]int, len(ids))
	for rows.Next() {
		var id string
		var qty int
		if err := rows.Scan(&id, &qty); err != nil {
			return nil, err
		}
		stock[id] = qty
	}

	return stock, rows.Err()
}
