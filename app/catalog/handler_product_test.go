package catalog

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandleGetProduct(t *testing.T) {
	testCases := []struct {
		name               string
		productID          string
		mockRepoSetup      func(t *testing.T) *MockCatalogRepo
		expectedStatusCode int
		checkResponse      func(t *testing.T, rec *httptest.ResponseRecorder)
		checkRepoCalls     func(t *testing.T, repo *MockCatalogRepo)
	}{
		{
			name:               "Success",
			productID:          "6",
			mockRepoSetup:      newSampleRepo,
			expectedStatusCode: http.StatusOK,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var resp Product
				err := json.NewDecoder(rec.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, 6, resp.ID)
				assert.Equal(t, "Banana", resp.Name)
				assert.Equal(t, Category{ID: 3, Title: "Fruits", Icon: "🍏"}, resp.Category)
				assert.Equal(t, User{ID: 2, Name: "Anna", Sex: "f"}, resp.User)
			},
			checkRepoCalls: func(t *testing.T, repo *MockCatalogRepo) {
				assert.Equal(t, 6, repo.lastCalledID)
			},
		},
		{
			name:               "Unknown product",
			productID:          "404",
			mockRepoSetup:      newSampleRepo,
			expectedStatusCode: http.StatusNotFound,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Contains(t, rec.Body.String(), "Product not found")
			},
		},
		{
			name:               "Non numeric id",
			productID:          "banana",
			mockRepoSetup:      newSampleRepo,
			expectedStatusCode: http.StatusNotFound,
			checkRepoCalls: func(t *testing.T, repo *MockCatalogRepo) {
				assert.Zero(t, repo.lastCalledID, "repository must not be queried")
			},
		},
		{
			name:      "Repository error",
			productID: "1",
			mockRepoSetup: func(t *testing.T) *MockCatalogRepo {
				return &MockCatalogRepo{Err: errors.New("boom")}
			},
			expectedStatusCode: http.StatusNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := tc.mockRepoSetup(t)
			handler := NewCatalogHandler(repo)

			req := httptest.NewRequest(http.MethodGet, "/api/products/"+tc.productID, nil)
			req.SetPathValue("id", tc.productID)
			rec := httptest.NewRecorder()

			handler.HandleGetProduct(rec, req)

			assert.Equal(t, tc.expectedStatusCode, rec.Code)
			if tc.checkResponse != nil {
				tc.checkResponse(t, rec)
			}
			if tc.checkRepoCalls != nil {
				tc.checkRepoCalls(t, repo)
			}
		})
	}
}
