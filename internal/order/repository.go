package order

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"time"

	"github.com/mohammad516/lc-website/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	CountCreatedBetween(ctx context.Context, start, end time.Time) (int, error)
	FindByOrderNumber(ctx context.Context, number string) (*Order, error)
	Insert(ctx context.Context, o *Order) error
	GetList(ctx context.Context, opts ListOptions) ([]*Order, error)
	GetDetail(ctx context.Context, orderNumber string) (*Order, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CountCreatedBetween(ctx context.Context, start, end time.Time) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM orders
		WHERE created_at >= $1 AND created_at <= $2
	`, start, end).Scan(&count)

	return count, err
}

func (r *repository) FindByOrderNumber(ctx context.Context, number string) (*Order, error) {
	query := `
		SELECT id, order_number, status, created_at
		FROM orders
		WHERE order_number = $1
	`

	var o Order
	err := r.db.QueryRowContext(ctx, query, number).
		Scan(&o.ID, &o.OrderNumber, &o.Status, &o.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &o, nil
}

// Insert writes the order row and its lines in one transaction. At most
// this single write happens per checkout, so there is nothing to
// compensate on failure.
func (r *repository) Insert(ctx context.Context, o *Order) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "InsertOrder"),
		zap.String("order_number", o.OrderNumber),
		zap.Int("item_count", len(o.Items)),
	)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("failed to begin transaction", zap.Error(err))
		return err
	}

	committed := false
	defer func() {
		if !committed {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error("failed to rollback transaction", zap.Error(rbErr))
			}
		}
	}()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO orders (
			id, order_number, status,
			customer_name, customer_phone,
			country, governorate, district, city, street_name, building_name,
			subtotal, shipping, total, payment_method,
			created_at, updated_at, delivered_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18)
	`,
		o.ID,
		o.OrderNumber,
		o.Status,
		o.CustomerName,
		o.CustomerPhone,
		o.Country,
		o.Governorate,
		o.District,
		o.City,
		o.StreetName,
		o.BuildingName,
		o.Subtotal,
		o.Shipping,
		o.Total,
		o.PaymentMethod,
		o.CreatedAt,
		o.UpdatedAt,
		o.DeliveredAt,
	)
	if err != nil {
		log.Error("failed to insert order", zap.Error(err))
		return err
	}

	for i, item := range o.Items {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO order_items (
				order_id, product_id, name, variant, quantity, price
			) VALUES ($1,$2,$3,$4,$5,$6)
		`,
			o.ID,
			item.ProductID,
			item.Name,
			item.Variant,
			item.Quantity,
			item.Price,
		)
		if err != nil {
			log.Error("failed to insert order item",
				zap.Int("item_index", i),
				zap.String("product_id", item.ProductID),
				zap.Error(err),
			)
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		log.Error("failed to commit order transaction", zap.Error(err))
		return err
	}

	committed = true
	log.Info("order persisted")

	return nil
}

func (r *repository) GetList(ctx context.Context, opts ListOptions) ([]*Order, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	page := opts.Page
	if page <= 0 {
		page = 1
	}
	offset := (page - 1) * limit

	query := `
		SELECT id, order_number, status, customer_name, customer_phone,
			subtotal, shipping, total, payment_method,
			created_at, updated_at, delivered_at
		FROM orders
	`
	args := []any{}
	argIndex := 1

	if opts.Status != "" {
		query += ` WHERE status = $1`
		args = append(args, opts.Status)
		argIndex++
	}

	query += ` ORDER BY created_at DESC`
	query += ` LIMIT $` + strconv.Itoa(argIndex) + ` OFFSET $` + strconv.Itoa(argIndex+1)
	args = append(args, limit, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*Order
	for rows.Next() {
		var o Order
		if err := rows.Scan(
			&o.ID,
			&o.OrderNumber,
			&o.Status,
			&o.CustomerName,
			&o.CustomerPhone,
			&o.Subtotal,
			&o.Shipping,
			&o.Total,
			&o.PaymentMethod,
			&o.CreatedAt,
			&o.UpdatedAt,
			&o.DeliveredAt,
		); err != nil {
			return nil, err
		}
		orders = append(orders, &o)
	}

	return orders, rows.Err()
}

func (r *repository) GetDetail(ctx context.Context, orderNumber string) (*Order, error) {
	var o Order
	err := r.db.QueryRowContext(ctx, `
		SELECT id, order_number, status, customer_name, customer_phone,
			country, governorate, district, city, street_name, building_name,
			subtotal, shipping, total, payment_method,
			created_at, updated_at, delivered_at
		FROM orders
		WHERE order_number = $1
	`, orderNumber).Scan(
		&o.ID,
		&o.OrderNumber,
		&o.Status,
		&o.CustomerName,
		&o.CustomerPhone,
		&o.Country,
		&o.Governorate,
		&o.District,
		&o.City,
		&o.StreetName,
		&o.BuildingName,
		&o.Subtotal,
		&o.Shipping,
		&o.Total,
		&o.PaymentMethod,
		&o.CreatedAt,
		&o.UpdatedAt,
		&o.DeliveredAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, product_id, name, variant, quantity, price
		FROM order_items
		WHERE order_id = $1
	`, o.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item Item
		if err := rows.Scan(
			&item.ID,
			&item.ProductID,
			&item.Name,
			&item.Variant,
			&item.Quantity,
			&item.Price,
		); err != nil {
			return nil, err
		}
		o.Items = append(o.Items, item)
	}

	return &o, rows.Err()
}
