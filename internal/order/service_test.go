package order

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

func (m *MockRepository) CountCreatedBetween(ctx context.Context, start, end time.Time) (int, error) {
	args := m.Called(ctx, start, end)
	return args.Int(0), args.Error(1)
}

func (m *MockRepository) FindByOrderNumber(ctx context.Context, number string) (*Order, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Order), args.Error(1)
}

func (m *MockRepository) Insert(ctx context.Context, o *Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockRepository) GetList(ctx context.Context, opts ListOptions) ([]*Order, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Order), args.Error(1)
}

func (m *MockRepository) GetDetail(ctx context.Context, orderNumber string) (*Order, error) {
	args := m.Called(ctx, orderNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Order), args.Error(1)
}

func frozenClock() func() time.Time {
	frozen := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	return func() time.Time { return frozen }
}

func validCheckout() CheckoutInput {
	price := 24.0
	subtotal := 48.0
	shipping := 3.0
	total := 51.0

	return CheckoutInput{
		CustomerName:  "Rana K",
		CustomerPhone: "+961 70 123 456",
		Country:       "Lebanon",
		Governorate:   "Beirut",
		District:      "Achrafieh",
		City:          "Beirut",
		StreetName:    "Monot Street",
		Items: []CheckoutItem{
			{ID: "p-1", Name: "Argan Oil Shampoo", Quantity: 2, Price: &price},
		},
		Subtotal:      &subtotal,
		Shipping:      &shipping,
		Total:         &total,
		PaymentMethod: "Cash on Delivery",
	}
}

func TestService_Create(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewServiceWithClock(repo, nil, frozenClock())

		repo.On("CountCreatedBetween", mock.Anything, mock.Anything, mock.Anything).Return(0, nil)
		repo.On("FindByOrderNumber", mock.Anything, "ORD-20250615-0001").Return(nil, nil)

		var inserted *Order
		repo.On("Insert", mock.Anything, mock.AnythingOfType("*order.Order")).
			Run(func(args mock.Arguments) {
				inserted = args.Get(1).(*Order)
			}).
			Return(nil)

		result, err := svc.Create(context.Background(), validCheckout())
		require.NoError(t, err)

		assert.Equal(t, "ORD-20250615-0001", result.OrderNumber)
		assert.NotEmpty(t, result.OrderID)

		require.NotNil(t, inserted)
		assert.Equal(t, StatusPending, inserted.Status)
		assert.Equal(t, "ORD-20250615-0001", inserted.OrderNumber)
		assert.Len(t, inserted.Items, 1)
		assert.Equal(t, "p-1", inserted.Items[0].ProductID)
		assert.Nil(t, inserted.Items[0].Variant)

		repo.AssertNumberOfCalls(t, "Insert", 1)
	})

	t.Run("EmptyItemsRejectedBeforeAnyWrite", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewServiceWithClock(repo, nil, frozenClock())

		input := validCheckout()
		input.Items = nil

		_, err := svc.Create(context.Background(), input)
		assert.ErrorIs(t, err, ErrNoItems)
		assert.True(t, IsValidation(err))

		repo.AssertNotCalled(t, "Insert")
		repo.AssertNotCalled(t, "CountCreatedBetween")
	})

	t.Run("MissingPhoneRejectedBeforeAnyWrite", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewServiceWithClock(repo, nil, frozenClock())

		input := validCheckout()
		input.CustomerPhone = "   "

		_, err := svc.Create(context.Background(), input)
		assert.ErrorIs(t, err, ErrCustomerRequired)

		repo.AssertNotCalled(t, "Insert")
		repo.AssertNotCalled(t, "CountCreatedBetween")
	})

	t.Run("MissingAddressField", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewServiceWithClock(repo, nil, frozenClock())

		input := validCheckout()
		input.StreetName = ""

		_, err := svc.Create(context.Background(), input)
		assert.ErrorIs(t, err, ErrAddressRequired)
	})

	t.Run("MissingTotals", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewServiceWithClock(repo, nil, frozenClock())

		input := validCheckout()
		input.Total = nil

		_, err := svc.Create(context.Background(), input)
		assert.ErrorIs(t, err, ErrTotalsRequired)
	})

	t.Run("ItemWithoutPrice", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewServiceWithClock(repo, nil, frozenClock())

		input := validCheckout()
		input.Items[0].Price = nil

		_, err := svc.Create(context.Background(), input)
		assert.ErrorIs(t, err, ErrInvalidItem)
	})

	t.Run("ZeroShippingIsValid", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewServiceWithClock(repo, nil, frozenClock())

		repo.On("CountCreatedBetween", mock.Anything, mock.Anything, mock.Anything).Return(3, nil)
		repo.On("FindByOrderNumber", mock.Anything, "ORD-20250615-0004").Return(nil, nil)
		repo.On("Insert", mock.Anything, mock.Anything).Return(nil)

		input := validCheckout()
		zero := 0.0
		input.Shipping = &zero

		result, err := svc.Create(context.Background(), input)
		require.NoError(t, err)
		assert.Equal(t, "ORD-20250615-0004", result.OrderNumber)
	})

	t.Run("VariantPreserved", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewServiceWithClock(repo, nil, frozenClock())

		repo.On("CountCreatedBetween", mock.Anything, mock.Anything, mock.Anything).Return(0, nil)
		repo.On("FindByOrderNumber", mock.Anything, mock.Anything).Return(nil, nil)

		var inserted *Order
		repo.On("Insert", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				inserted = args.Get(1).(*Order)
			}).
			Return(nil)

		input := validCheckout()
		input.Items[0].Variant = "250ml"

		_, err := svc.Create(context.Background(), input)
		require.NoError(t, err)

		require.NotNil(t, inserted.Items[0].Variant)
		assert.Equal(t, "250ml", *inserted.Items[0].Variant)
	})
}

func TestService_GetByNumber(t *testing.T) {
	t.Run("NotFound", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewServiceWithClock(repo, nil, frozenClock())

		repo.On("GetDetail", mock.Anything, "ORD-20250615-9999").Return(nil, ErrOrderNotFound)

		_, err := svc.GetByNumber(context.Background(), "ORD-20250615-9999")
		assert.ErrorIs(t, err, ErrOrderNotFound)
	})
}
