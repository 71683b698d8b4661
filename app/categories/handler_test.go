package categories

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/storefront/catalog-service/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// --- Mock Repository ---

type MockCategoryRepo struct {
	Products []models.Product
	ListErr  error
}

func (m *MockCategoryRepo) GetAllProducts(ctx context.Context) ([]models.Product, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.Products, nil
}

func product(id int, category string) models.Product {
	return models.Product{ID: id, Title: "item", Price: decimal.NewFromInt(1), Category: category}
}

// --- Tests: GET /categories ---

func TestHandleGetAll(t *testing.T) {
	testCases := []struct {
		name               string
		mockRepoSetup      func() *MockCategoryRepo
		expectedStatusCode int
		checkResponse      func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name: "Distinct categories in first-seen order",
			mockRepoSetup: func() *MockCategoryRepo {
				return &MockCategoryRepo{
					Products: []models.Product{
						product(1, "men's clothing"),
						product(2, "jewelery"),
						product(3, "men's clothing"),
						product(4, "electronics"),
						product(5, "jewelery"),
					},
				}
			},
			expectedStatusCode: http.StatusOK,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var resp []CategoryResponse
				err := json.NewDecoder(rec.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, []CategoryResponse{
					{Code: "men's clothing", Name: "Men's clothing"},
					{Code: "jewelery", Name: "Jewelery"},
					{Code: "electronics", Name: "Electronics"},
				}, resp)
			},
		},
		{
			name: "Success with empty list",
			mockRepoSetup: func() *MockCategoryRepo {
				return &MockCategoryRepo{
					Products: []models.Product{},
				}
			},
			expectedStatusCode: http.StatusOK,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.JSONEq(t, `[]`, rec.Body.String())
			},
		},
		{
			name: "Repository error",
			mockRepoSetup: func() *MockCategoryRepo {
				return &MockCategoryRepo{
					ListErr: errors.New("upstream down"),
				}
			},
			expectedStatusCode: http.StatusInternalServerError,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var errResp map[string]string
				err := json.NewDecoder(rec.Body).Decode(&errResp)
				assert.NoError(t, err)
				assert.Equal(t, "failed to fetch categories", errResp["error"])
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			mockRepo := tc.mockRepoSetup()
			handler := NewCategoryHandler(mockRepo, zap.NewNop())
			req := httptest.NewRequest("GET", "/categories", nil)
			rec := httptest.NewRecorder()

			// Act
			handler.HandleGetAll(rec, req)

			// Assert
			assert.Equal(t, tc.expectedStatusCode, rec.Code)
			if tc.checkResponse != nil {
				tc.checkResponse(t, rec)
			}
		})
	}
}
