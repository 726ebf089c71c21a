package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shashinthakamunasinghe/eco-cycle-hub/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockOrderRepository is a mock implementation of OrderRepository.
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) List(ctx context.Context, customerID string) ([]model.Order, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Order), args.Error(1)
}

func (m *MockOrderRepository) Append(ctx context.Context, customerID string, order model.Order) error {
	args := m.Called(ctx, customerID, order)
	return args.Error(0)
}

func (m *MockOrderRepository) GetByID(ctx context.Context, customerID, orderID string) (*model.Order, error) {
	args := m.Called(ctx, customerID, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *MockOrderRepository) Update(ctx context.Context, customerID string, order model.Order) error {
	args := m.Called(ctx, customerID, order)
	return args.Error(0)
}

// MockProcessor is a mock implementation of payment.Processor.
type MockProcessor struct {
	mock.Mock
}

func (m *MockProcessor) Charge(ctx context.Context, amount float64, method string) error {
	args := m.Called(ctx, amount, method)
	return args.Error(0)
}

func validAddress() model.ShippingAddress {
	return model.ShippingAddress{
		FirstName: "Nadia",
		LastName:  "Perera",
		Address:   "12 Lake Road",
		City:      "Colombo",
		State:     "Western",
		ZipCode:   "00300",
		Country:   "LK",
	}
}

func TestOrderService_Checkout_Success(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	items := []model.CartItem{
		{Product: model.Product{ID: 1, Price: 40.00}, Quantity: 2},
		{Product: model.Product{ID: 2, Price: 5.00}, Quantity: 1},
	}

	mockOrderRepo := new(MockOrderRepository)
	mockCartRepo := new(MockCartRepository)
	mockProcessor := new(MockProcessor)

	service := NewOrderService(mockOrderRepo, mockCartRepo, mockProcessor, logger)
	fixed := time.Date(2024, 4, 5, 12, 0, 0, 0, time.UTC)
	service.(*orderService).now = func() time.Time { return fixed }

	mockCartRepo.On("Get", ctx, "cust-1").Return(items, nil)
	// Subtotal 85.00, above the free shipping threshold.
	mockProcessor.On("Charge", ctx, mock.AnythingOfType("float64"), model.PaymentMethodCard).Return(nil)
	mockOrderRepo.On("Append", ctx, "cust-1", mock.AnythingOfType("model.Order")).Return(nil)
	mockCartRepo.On("Clear", ctx, "cust-1").Return(nil)

	order, err := service.Checkout(ctx, &CheckoutRequest{
		CustomerID:      "cust-1",
		ShippingAddress: validAddress(),
		PaymentMethod:   model.PaymentMethodCard,
	})

	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, model.NewOrderID(fixed), order.ID)
	assert.Equal(t, "cust-1", order.CustomerID)
	assert.Equal(t, model.OrderStatusProcessing, order.Status)
	assert.Len(t, order.Items, 2)
	assert.InDelta(t, 85.00, order.Subtotal, 1e-9)
	assert.InDelta(t, 6.80, order.Tax, 1e-9)
	assert.Zero(t, order.Shipping)
	assert.InDelta(t, 91.80, order.Total, 1e-9)
	assert.Equal(t, fixed, order.OrderDate)
	assert.Equal(t, fixed.Add(7*24*time.Hour), order.EstimatedDelivery)

	mockOrderRepo.AssertExpectations(t)
	mockCartRepo.AssertExpectations(t)
	mockProcessor.AssertExpectations(t)
}

func TestOrderService_Checkout_FlatShippingBelowThreshold(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	items := []model.CartItem{
		{Product: model.Product{ID: 1, Price: 15.00}, Quantity: 1},
	}

	mockOrderRepo := new(MockOrderRepository)
	mockCartRepo := new(MockCartRepository)
	mockProcessor := new(MockProcessor)

	service := NewOrderService(mockOrderRepo, mockCartRepo, mockProcessor, logger)

	mockCartRepo.On("Get", ctx, "cust-1").Return(items, nil)
	mockProcessor.On("Charge", ctx, mock.AnythingOfType("float64"), model.PaymentMethodPayPal).Return(nil)
	mockOrderRepo.On("Append", ctx, "cust-1", mock.AnythingOfType("model.Order")).Return(nil)
	mockCartRepo.On("Clear", ctx, "cust-1").Return(nil)

	order, err := service.Checkout(ctx, &CheckoutRequest{
		CustomerID:      "cust-1",
		ShippingAddress: validAddress(),
		PaymentMethod:   model.PaymentMethodPayPal,
	})

	require.NoError(t, err)
	assert.InDelta(t, 15.00, order.Subtotal, 1e-9)
	assert.InDelta(t, 1.20, order.Tax, 1e-9)
	assert.InDelta(t, 9.99, order.Shipping, 1e-9)
	assert.InDelta(t, 26.19, order.Total, 1e-9)
}

func TestOrderService_Checkout_EmptyCart(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	mockOrderRepo := new(MockOrderRepository)
	mockCartRepo := new(MockCartRepository)
	mockProcessor := new(MockProcessor)

	service := NewOrderService(mockOrderRepo, mockCartRepo, mockProcessor, logger)

	mockCartRepo.On("Get", ctx, "cust-1").Return([]model.CartItem{}, nil)

	order, err := service.Checkout(ctx, &CheckoutRequest{
		CustomerID:      "cust-1",
		ShippingAddress: validAddress(),
		PaymentMethod:   model.PaymentMethodCard,
	})

	require.Error(t, err)
	assert.Equal(t, model.ErrCartEmpty, err)
	assert.Nil(t, order)

	mockProcessor.AssertNotCalled(t, "Charge")
	mockOrderRepo.AssertNotCalled(t, "Append")
}

func TestOrderService_Checkout_PaymentDeclined(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	items := []model.CartItem{
		{Product: model.Product{ID: 1, Price: 15.00}, Quantity: 1},
	}

	mockOrderRepo := new(MockOrderRepository)
	mockCartRepo := new(MockCartRepository)
	mockProcessor := new(MockProcessor)

	service := NewOrderService(mockOrderRepo, mockCartRepo, mockProcessor, logger)

	mockCartRepo.On("Get", ctx, "cust-1").Return(items, nil)
	mockProcessor.On("Charge", ctx, mock.AnythingOfType("float64"), model.PaymentMethodCard).
		Return(model.ErrPaymentDeclined)

	order, err := service.Checkout(ctx, &CheckoutRequest{
		CustomerID:      "cust-1",
		ShippingAddress: validAddress(),
		PaymentMethod:   model.PaymentMethodCard,
	})

	require.Error(t, err)
	assert.Equal(t, model.ErrPaymentDeclined, err)
	assert.Nil(t, order)

	// A declined payment must leave both the order history and the cart untouched.
	mockOrderRepo.AssertNotCalled(t, "Append")
	mockCartRepo.AssertNotCalled(t, "Clear")
}

func TestOrderService_Checkout_ValidationErrors(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	mockOrderRepo := new(MockOrderRepository)
	mockCartRepo := new(MockCartRepository)
	mockProcessor := new(MockProcessor)

	service := NewOrderService(mockOrderRepo, mockCartRepo, mockProcessor, logger)

	missingCity := validAddress()
	missingCity.City = ""

	tests := []struct {
		name        string
		req         *CheckoutRequest
		expectedErr error
	}{
		{
			name: "Nil request",
			req:  nil,
		},
		{
			name: "Missing customer ID",
			req: &CheckoutRequest{
				ShippingAddress: validAddress(),
				PaymentMethod:   model.PaymentMethodCard,
			},
		},
		{
			name: "Unsupported payment method",
			req: &CheckoutRequest{
				CustomerID:      "cust-1",
				ShippingAddress: validAddress(),
				PaymentMethod:   "bitcoin",
			},
			expectedErr: model.ErrInvalidPayment,
		},
		{
			name: "Missing address field",
			req: &CheckoutRequest{
				CustomerID:      "cust-1",
				ShippingAddress: missingCity,
				PaymentMethod:   model.PaymentMethodCard,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order, err := service.Checkout(ctx, tt.req)

			require.Error(t, err)
			assert.Nil(t, order)
			if tt.expectedErr != nil {
				assert.Equal(t, tt.expectedErr, err)
			}
		})
	}

	mockCartRepo.AssertNotCalled(t, "Get")
	mockProcessor.AssertNotCalled(t, "Charge")
}

func TestOrderService_Checkout_CartClearFailureDoesNotFail(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	items := []model.CartItem{
		{Product: model.Product{ID: 1, Price: 15.00}, Quantity: 1},
	}

	mockOrderRepo := new(MockOrderRepository)
	mockCartRepo := new(MockCartRepository)
	mockProcessor := new(MockProcessor)

	service := NewOrderService(mockOrderRepo, mockCartRepo, mockProcessor, logger)

	mockCartRepo.On("Get", ctx, "cust-1").Return(items, nil)
	mockProcessor.On("Charge", ctx, mock.AnythingOfType("float64"), model.PaymentMethodCard).Return(nil)
	mockOrderRepo.On("Append", ctx, "cust-1", mock.AnythingOfType("model.Order")).Return(nil)
	mockCartRepo.On("Clear", ctx, "cust-1").Return(errors.New("store unavailable"))

	order, err := service.Checkout(ctx, &CheckoutRequest{
		CustomerID:      "cust-1",
		ShippingAddress: validAddress(),
		PaymentMethod:   model.PaymentMethodCard,
	})

	require.NoError(t, err)
	require.NotNil(t, order)
}

func TestOrderService_GetByID(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	order := &model.Order{ID: "ORD-1", CustomerID: "cust-1", Status: model.OrderStatusProcessing}

	tests := []struct {
		name        string
		mockOrder   *model.Order
		mockError   error
		expectedErr error
	}{
		{
			name:      "Success",
			mockOrder: order,
		},
		{
			name:        "Not found",
			mockOrder:   nil,
			expectedErr: model.ErrOrderNotFound,
		},
		{
			name:      "Repository error",
			mockError: errors.New("store unavailable"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockOrderRepo := new(MockOrderRepository)
			service := NewOrderService(mockOrderRepo, new(MockCartRepository), new(MockProcessor), logger)

			mockOrderRepo.On("GetByID", ctx, "cust-1", "ORD-1").Return(tt.mockOrder, tt.mockError)

			got, err := service.GetByID(ctx, "cust-1", "ORD-1")

			if tt.mockOrder != nil {
				require.NoError(t, err)
				assert.Equal(t, tt.mockOrder, got)
			} else {
				require.Error(t, err)
				assert.Nil(t, got)
				if tt.expectedErr != nil {
					assert.Equal(t, tt.expectedErr, err)
				}
			}

			mockOrderRepo.AssertExpectations(t)
		})
	}
}

func TestOrderService_UpdateStatus(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	tests := []struct {
		name        string
		from        string
		to          string
		expectedErr error
	}{
		{name: "Processing to Shipped", from: model.OrderStatusProcessing, to: model.OrderStatusShipped},
		{name: "Shipped to Delivered", from: model.OrderStatusShipped, to: model.OrderStatusDelivered},
		{name: "Processing to Delivered skips a step", from: model.OrderStatusProcessing, to: model.OrderStatusDelivered, expectedErr: model.ErrInvalidStatus},
		{name: "Delivered is terminal", from: model.OrderStatusDelivered, to: model.OrderStatusShipped, expectedErr: model.ErrInvalidStatus},
		{name: "Backwards transition", from: model.OrderStatusShipped, to: model.OrderStatusProcessing, expectedErr: model.ErrInvalidStatus},
		{name: "Unknown status", from: model.OrderStatusProcessing, to: "Lost", expectedErr: model.ErrInvalidStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockOrderRepo := new(MockOrderRepository)
			service := NewOrderService(mockOrderRepo, new(MockCartRepository), new(MockProcessor), logger)

			stored := &model.Order{ID: "ORD-1", CustomerID: "cust-1", Status: tt.from}
			mockOrderRepo.On("GetByID", ctx, "cust-1", "ORD-1").Return(stored, nil)
			if tt.expectedErr == nil {
				mockOrderRepo.On("Update", ctx, "cust-1", mock.MatchedBy(func(o model.Order) bool {
					return o.ID == "ORD-1" && o.Status == tt.to
				})).Return(nil)
			}

			got, err := service.UpdateStatus(ctx, "cust-1", "ORD-1", tt.to)

			if tt.expectedErr != nil {
				require.Error(t, err)
				assert.Equal(t, tt.expectedErr, err)
				assert.Nil(t, got)
				mockOrderRepo.AssertNotCalled(t, "Update")
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.to, got.Status)
			}

			mockOrderRepo.AssertExpectations(t)
		})
	}
}

func TestOrderService_List(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	mockOrderRepo := new(MockOrderRepository)
	service := NewOrderService(mockOrderRepo, new(MockCartRepository), new(MockProcessor), logger)

	orders := []model.Order{
		{ID: "ORD-1", Status: model.OrderStatusDelivered},
		{ID: "ORD-2", Status: model.OrderStatusProcessing},
	}
	mockOrderRepo.On("List", ctx, "cust-1").Return(orders, nil)

	got, err := service.List(ctx, "cust-1")

	require.NoError(t, err)
	assert.Equal(t, orders, got)
}
