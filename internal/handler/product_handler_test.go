package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shashinthakamunasinghe/eco-cycle-hub/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockProductService is a mock implementation of ProductService.
type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) List(ctx context.Context, query, category string, limit, offset int) ([]model.Product, error) {
	args := m.Called(ctx, query, category, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockProductService) GetByID(ctx context.Context, id int) (*model.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductService) Categories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func TestProductHandler_List(t *testing.T) {
	logger := zerolog.Nop()

	testProducts := []model.Product{
		{ID: 1, Name: "Bamboo Toothbrush Set", Price: 12.99, Category: "Organic"},
		{ID: 2, Name: "Recycled Plastic Planter", Price: 24.50, Category: "Plastic"},
	}

	tests := []struct {
		name           string
		method         string
		queryParams    string
		mockReturn     []model.Product
		mockError      error
		expectedStatus int
		expectService  bool
		query          string
		category       string
		limit          int
		offset         int
	}{
		{
			name:           "Success with defaults",
			method:         http.MethodGet,
			mockReturn:     testProducts,
			expectedStatus: http.StatusOK,
			expectService:  true,
			limit:          10,
		},
		{
			name:           "Search and category filter",
			method:         http.MethodGet,
			queryParams:    "?q=recycled&category=Plastic",
			mockReturn:     testProducts[1:],
			expectedStatus: http.StatusOK,
			expectService:  true,
			query:          "recycled",
			category:       "Plastic",
			limit:          10,
		},
		{
			name:           "Custom pagination",
			method:         http.MethodGet,
			queryParams:    "?limit=5&offset=10",
			mockReturn:     testProducts,
			expectedStatus: http.StatusOK,
			expectService:  true,
			limit:          5,
			offset:         10,
		},
		{
			name:           "Invalid limit parameter",
			method:         http.MethodGet,
			queryParams:    "?limit=invalid",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Invalid offset parameter",
			method:         http.MethodGet,
			queryParams:    "?offset=invalid",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Service error",
			method:         http.MethodGet,
			mockError:      errors.New("catalog unavailable"),
			expectedStatus: http.StatusInternalServerError,
			expectService:  true,
			limit:          10,
		},
		{
			name:           "Method not allowed",
			method:         http.MethodPost,
			expectedStatus: http.StatusMethodNotAllowed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockProductService)
			handler := NewProductHandler(mockService, logger)

			if tt.expectService {
				mockService.On("List", mock.Anything, tt.query, tt.category, tt.limit, tt.offset).
					Return(tt.mockReturn, tt.mockError)
			}

			req := httptest.NewRequest(tt.method, "/api/products"+tt.queryParams, nil)
			w := httptest.NewRecorder()

			handler.List(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectService {
				mockService.AssertExpectations(t)
			}
		})
	}
}

func TestProductHandler_GetByID(t *testing.T) {
	logger := zerolog.Nop()

	testProduct := &model.Product{ID: 1, Name: "Bamboo Toothbrush Set", Price: 12.99, Category: "Organic"}

	tests := []struct {
		name           string
		method         string
		path           string
		mockReturn     *model.Product
		mockError      error
		expectedStatus int
		expectService  bool
		productID      int
	}{
		{
			name:           "Success",
			method:         http.MethodGet,
			path:           "/api/products/1",
			mockReturn:     testProduct,
			expectedStatus: http.StatusOK,
			expectService:  true,
			productID:      1,
		},
		{
			name:           "Product not found",
			method:         http.MethodGet,
			path:           "/api/products/999",
			mockError:      model.ErrProductNotFound,
			expectedStatus: http.StatusNotFound,
			expectService:  true,
			productID:      999,
		},
		{
			name:           "Non-numeric product ID",
			method:         http.MethodGet,
			path:           "/api/products/abc",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Missing product ID",
			method:         http.MethodGet,
			path:           "/api/products/",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Method not allowed",
			method:         http.MethodDelete,
			path:           "/api/products/1",
			expectedStatus: http.StatusMethodNotAllowed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockProductService)
			handler := NewProductHandler(mockService, logger)

			if tt.expectService {
				mockService.On("GetByID", mock.Anything, tt.productID).
					Return(tt.mockReturn, tt.mockError)
			}

			req := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()

			handler.GetByID(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectService {
				mockService.AssertExpectations(t)
			}
		})
	}
}

func TestProductHandler_Categories(t *testing.T) {
	logger := zerolog.Nop()

	mockService := new(MockProductService)
	handler := NewProductHandler(mockService, logger)

	mockService.On("Categories", mock.Anything).Return([]string{"Organic", "Plastic"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/products/categories", nil)
	w := httptest.NewRecorder()

	handler.Categories(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `["Organic","Plastic"]`, w.Body.String())
}
