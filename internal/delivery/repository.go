package delivery

import (
	"context"
	"database/sql"
	"errors"
)

var ErrRateNotFound = errors.New("delivery rate not found")

type Repository interface {
	GetAll(ctx context.Context) ([]*Rate, error)
	FindByGovernorate(ctx context.Context, governorate string) (*Rate, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetAll(ctx context.Context) ([]*Rate, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, governorate, price
		FROM delivery_rates
		ORDER BY governorate ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rates []*Rate
	for rows.Next() {
		var rate Rate
		if err := rows.Scan(&rate.ID, &rate.Governorate, &rate.Price); err != nil {
			return nil, err
		}
		rates = append(rates, &rate)
	}

	return rates, rows.Err()
}

func (r *repository) FindByGovernorate(ctx context.Context, governorate string) (*Rate, error) {
	var rate Rate
	err := r.db.QueryRowContext(ctx, `
		SELECT id, governorate, price
		FROM delivery_rates
		WHERE governorate = $1
	`, governorate).Scan(&rate.ID, &rate.Governorate, &rate.Price)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &rate, nil
}
