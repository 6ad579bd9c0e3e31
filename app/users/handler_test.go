package users

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mytheresa/product-categories/models"
	"github.com/stretchr/testify/assert"
)

type MockUserRepo struct {
	Users   []models.User
	ListErr error
}

func (m *MockUserRepo) GetAllUsers() ([]models.User, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.Users, nil
}

func TestHandleGetAll(t *testing.T) {
	testCases := []struct {
		name               string
		repo               *MockUserRepo
		expectedStatusCode int
		checkResponse      func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name:               "Success keeps catalog order",
			repo:               &MockUserRepo{Users: models.SampleCatalog().Users},
			expectedStatusCode: http.StatusOK,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var resp []UserResponse
				err := json.NewDecoder(rec.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, []UserResponse{
					{ID: 1, Name: "Roma", Sex: "m"},
					{ID: 2, Name: "Anna", Sex: "f"},
					{ID: 3, Name: "Max", Sex: "m"},
					{ID: 4, Name: "John", Sex: "m"},
				}, resp)
			},
		},
		{
			name:               "Failure fetching users",
			repo:               &MockUserRepo{ListErr: errors.New("boom")},
			expectedStatusCode: http.StatusInternalServerError,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Contains(t, rec.Body.String(), "failed to fetch users")
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			handler := NewUserHandler(tc.repo)

			req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
			rec := httptest.NewRecorder()

			handler.HandleGetAll(rec, req)

			assert.Equal(t, tc.expectedStatusCode, rec.Code)
			tc.checkResponse(t, rec)
		})
	}
}
