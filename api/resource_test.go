package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/reinvvay/airport-api/internal/domain"
	"github.com/reinvvay/airport-api/internal/upsert"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type airportMock = MockCRUDUseCase[domain.Airport, upsert.AirportInput]

func newTestContext(method, target, body string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func decodeErrors(t *testing.T, w *httptest.ResponseRecorder) []fieldError {
	t.Helper()
	var body struct {
		Errors []fieldError `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Errors
}

func TestResourceHandler_list(t *testing.T) {
	mockService := &airportMock{}
	handler := NewResourceHandler[domain.Airport, upsert.AirportInput](mockService)

	c, w := newTestContext(http.MethodGet, "/airports/", "")
	mockService.On("List", c.Request.Context()).Return([]domain.Airport{{ID: 1, Name: "Heathrow", ClosestBigCity: "London"}}, nil)

	handler.list(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"id":1,"name":"Heathrow","closest_big_city":"London"}]`, w.Body.String())
	mockService.AssertExpectations(t)
}

func TestResourceHandler_get(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		mockService := &airportMock{}
		handler := NewResourceHandler[domain.Airport, upsert.AirportInput](mockService)

		c, w := newTestContext(http.MethodGet, "/airports/1", "")
		c.Params = gin.Params{{Key: "id", Value: "1"}}
		mockService.On("GetByID", c.Request.Context(), int64(1)).Return(&domain.Airport{ID: 1, Name: "Heathrow"}, nil)

		handler.get(c)

		assert.Equal(t, http.StatusOK, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		mockService := &airportMock{}
		handler := NewResourceHandler[domain.Airport, upsert.AirportInput](mockService)

		c, w := newTestContext(http.MethodGet, "/airports/9", "")
		c.Params = gin.Params{{Key: "id", Value: "9"}}
		mockService.On("GetByID", c.Request.Context(), int64(9)).Return(nil, domain.ErrNotFound)

		handler.get(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("malformed id", func(t *testing.T) {
		mockService := &airportMock{}
		handler := NewResourceHandler[domain.Airport, upsert.AirportInput](mockService)

		c, w := newTestContext(http.MethodGet, "/airports/abc", "")
		c.Params = gin.Params{{Key: "id", Value: "abc"}}

		handler.get(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
		mockService.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})
}

func TestResourceHandler_create(t *testing.T) {
	mockService := &airportMock{}
	handler := NewResourceHandler[domain.Airport, upsert.AirportInput](mockService)

	c, w := newTestContext(http.MethodPost, "/airports/", `{"name":"Heathrow","closest_big_city":"London"}`)
	mockService.On("Create", c.Request.Context(), mock.MatchedBy(func(in *upsert.AirportInput) bool {
		return in.Name != nil && *in.Name == "Heathrow" && in.ClosestBigCity != nil && *in.ClosestBigCity == "London"
	})).Return(&domain.Airport{ID: 5, Name: "Heathrow", ClosestBigCity: "London"}, nil)

	handler.create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"id":5,"name":"Heathrow","closest_big_city":"London"}`, w.Body.String())
	mockService.AssertExpectations(t)
}

func TestResourceHandler_createErrors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		serviceErr error
		wantCode   string
		wantField  string
	}{
		{
			name:       "service validation",
			body:       `{"name":"Heathrow"}`,
			serviceErr: domain.ValidationErrors{domain.Required("closest_big_city")},
			wantCode:   "Required",
			wantField:  "closest_big_city",
		},
		{
			name:      "too long",
			body:      `{"name":"` + strings.Repeat("x", 256) + `","closest_big_city":"London"}`,
			wantCode:  "Invalid",
			wantField: "name",
		},
		{
			name:      "wrong type",
			body:      `{"name":5}`,
			wantCode:  "Invalid",
			wantField: "name",
		},
		{
			name:      "malformed json",
			body:      `{"name":`,
			wantCode:  "Invalid",
			wantField: domain.NonFieldErrors,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &airportMock{}
			handler := NewResourceHandler[domain.Airport, upsert.AirportInput](mockService)

			c, w := newTestContext(http.MethodPost, "/airports/", tt.body)
			if tt.serviceErr != nil {
				mockService.On("Create", c.Request.Context(), mock.Anything).Return(nil, tt.serviceErr)
			}

			handler.create(c)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			errs := decodeErrors(t, w)
			require.Len(t, errs, 1)
			assert.Equal(t, tt.wantCode, errs[0].Code)
			assert.Equal(t, tt.wantField, errs[0].Field)
			mockService.AssertExpectations(t)
		})
	}
}

func TestResourceHandler_update(t *testing.T) {
	tests := []struct {
		method  string
		partial bool
	}{
		{method: http.MethodPut, partial: false},
		{method: http.MethodPatch, partial: true},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			mockService := &airportMock{}
			handler := NewResourceHandler[domain.Airport, upsert.AirportInput](mockService)

			c, w := newTestContext(tt.method, "/airports/3", `{"name":"Gatwick"}`)
			c.Params = gin.Params{{Key: "id", Value: "3"}}
			mockService.On("Update", c.Request.Context(), int64(3), mock.AnythingOfType("*upsert.AirportInput"), tt.partial).
				Return(&domain.Airport{ID: 3, Name: "Gatwick"}, nil)

			handler.update(c)

			assert.Equal(t, http.StatusOK, w.Code)
			mockService.AssertExpectations(t)
		})
	}
}

func TestResourceHandler_delete(t *testing.T) {
	mockService := &airportMock{}
	handler := NewResourceHandler[domain.Airport, upsert.AirportInput](mockService)

	c, w := newTestContext(http.MethodDelete, "/airports/3", "")
	c.Params = gin.Params{{Key: "id", Value: "3"}}
	mockService.On("Delete", c.Request.Context(), int64(3)).Return(nil)

	handler.delete(c)
	c.Writer.WriteHeaderNow()

	assert.Equal(t, http.StatusNoContent, w.Code)
	mockService.AssertExpectations(t)
}

func TestResourceHandler_internalError(t *testing.T) {
	mockService := &airportMock{}
	handler := NewResourceHandler[domain.Airport, upsert.AirportInput](mockService)

	c, w := newTestContext(http.MethodGet, "/airports/", "")
	mockService.On("List", c.Request.Context()).Return(nil, errors.New("connection reset"))

	handler.list(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal error"}`, w.Body.String())
}
