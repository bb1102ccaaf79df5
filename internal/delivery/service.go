package delivery

import "context"

type Service interface {
	GetAll(ctx context.Context) ([]*Rate, error)
	FeeFor(ctx context.Context, governorate string) (float64, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetAll(ctx context.Context) ([]*Rate, error) {
	return s.repo.GetAll(ctx)
}

func (s *service) FeeFor(ctx context.Context, governorate string) (float64, error) {
	rate, err := s.repo.FindByGovernorate(ctx, governorate)
	if err != nil {
		return 0, err
	}
	if rate == nil {
		return 0, ErrRateNotFound
	}
	return rate.Price, nil
}
