package order

import (
	"context"
	"strings"
	"time"

	"github.com/mohammad516/lc-website/internal/logger"
	"github.com/mohammad516/lc-website/internal/metrics"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Notifier forwards a freshly created order somewhere a human will see
// it. Delivery is best effort; checkout never fails on a notify error.
type Notifier interface {
	OrderCreated(ctx context.Context, o *Order) error
}

type Service interface {
	Create(ctx context.Context, input CheckoutInput) (*CreateResult, error)
	GetList(ctx context.Context, opts ListOptions) ([]*Order, error)
	GetByNumber(ctx context.Context, orderNumber string) (*Order, error)
}

type service struct {
	repo     Repository
	assigner *NumberAssigner
	notifier Notifier
	now      func() time.Time
}

func NewService(repo Repository, notifier Notifier) Service {
	return &service{
		repo:     repo,
		assigner: NewNumberAssigner(repo),
		notifier: notifier,
		now:      time.Now,
	}
}

func NewServiceWithClock(repo Repository, notifier Notifier, now func() time.Time) Service {
	return &service{
		repo:     repo,
		assigner: NewNumberAssignerWithClock(repo, now),
		notifier: notifier,
		now:      now,
	}
}

// Create validates the checkout payload, assigns an order number and
// persists the order as PENDING. Validation happens before any write:
// a rejected payload leaves no trace in the database.
func (s *service) Create(ctx context.Context, input CheckoutInput) (*CreateResult, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "CreateOrder"),
	)

	if err := validate(input); err != nil {
		log.Info("checkout rejected", zap.Error(err))
		return nil, err
	}

	orderNumber, err := s.assigner.Assign(ctx)
	if err != nil {
		log.Error("failed to assign order number", zap.Error(err))
		return nil, err
	}

	now := s.now()

	o := &Order{
		ID:            uuid.New(),
		OrderNumber:   orderNumber,
		Status:        StatusPending,
		CustomerName:  strings.TrimSpace(input.CustomerName),
		CustomerPhone: strings.TrimSpace(input.CustomerPhone),
		Country:       input.Country,
		Governorate:   input.Governorate,
		District:      input.District,
		City:          input.City,
		StreetName:    input.StreetName,
		Subtotal:      *input.Subtotal,
		Shipping:      *input.Shipping,
		Total:         *input.Total,
		PaymentMethod: paymentMethodOrDefault(input.PaymentMethod),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if b := strings.TrimSpace(input.BuildingName); b != "" {
		o.BuildingName = &b
	}

	o.Items = make([]Item, 0, len(input.Items))
	for _, line := range input.Items {
		item := Item{
			ProductID: line.ID,
			Name:      line.Name,
			Quantity:  line.Quantity,
			Price:     *line.Price,
		}
		if v := strings.TrimSpace(line.Variant); v != "" {
			item.Variant = &v
		}
		o.Items = append(o.Items, item)
	}

	if err := s.repo.Insert(ctx, o); err != nil {
		return nil, err
	}

	metrics.OrdersCreated.Inc()
	log.Info("order created",
		zap.String("order_number", o.OrderNumber),
		zap.Float64("total", o.Total),
	)

	if s.notifier != nil {
		go s.notify(o)
	}

	return &CreateResult{
		OrderID:     o.ID.String(),
		OrderNumber: o.OrderNumber,
	}, nil
}

// notify runs detached from the request: the checkout response has
// already been committed by the time this fires.
func (s *service) notify(o *Order) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.notifier.OrderCreated(ctx, o); err != nil {
		metrics.NotifyFailures.Inc()
		logger.L().Warn("order notification failed",
			zap.String("order_number", o.OrderNumber),
			zap.Error(err),
		)
	}
}

func (s *service) GetList(ctx context.Context, opts ListOptions) ([]*Order, error) {
	return s.repo.GetList(ctx, opts)
}

func (s *service) GetByNumber(ctx context.Context, orderNumber string) (*Order, error) {
	return s.repo.GetDetail(ctx, orderNumber)
}

func validate(input CheckoutInput) error {
	if strings.TrimSpace(input.CustomerName) == "" || strings.TrimSpace(input.CustomerPhone) == "" {
		return ErrCustomerRequired
	}

	// Building name is the one optional address field.
	for _, field := range []string{
		input.Country,
		input.Governorate,
		input.District,
		input.City,
		input.StreetName,
	} {
		if strings.TrimSpace(field) == "" {
			return ErrAddressRequired
		}
	}

	if len(input.Items) == 0 {
		return ErrNoItems
	}

	for _, item := range input.Items {
		if item.ID == "" || item.Name == "" || item.Quantity <= 0 || item.Price == nil {
			return ErrInvalidItem
		}
	}

	if input.Subtotal == nil || input.Shipping == nil || input.Total == nil {
		return ErrTotalsRequired
	}

	return nil
}

func paymentMethodOrDefault(method string) string {
	if strings.TrimSpace(method) == "" {
		return "Cash on Delivery"
	}
	return method
}
