package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/maynagashev/pagevault/internal/handlers"
	"github.com/maynagashev/pagevault/internal/mocks"
	"github.com/maynagashev/pagevault/internal/models"
	"github.com/maynagashev/pagevault/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAuthHandler(t *testing.T) {
	h := handlers.NewAuthHandler(new(mocks.AuthService))
	assert.NotNil(t, h)
}

func TestAuthHandler_Register(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    string
		setupMock      func(m *mocks.AuthService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "Успешная регистрация",
			requestBody: `{"username":"page-owner","password":"secret123"}`,
			setupMock: func(m *mocks.AuthService) {
				m.EXPECT().Register("page-owner", "secret123").Return(nil).Once()
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   "Пользователь успешно зарегистрирован",
		},
		{
			name:           "Некорректный JSON",
			requestBody:    `{"username":"page-owner"`,
			setupMock:      func(_ *mocks.AuthService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Неверный формат запроса",
		},
		{
			name:           "Пустое имя пользователя",
			requestBody:    `{"username":"","password":"secret123"}`,
			setupMock:      func(_ *mocks.AuthService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Имя пользователя и пароль не могут быть пустыми",
		},
		{
			name:           "Пустой пароль",
			requestBody:    `{"username":"page-owner","password":""}`,
			setupMock:      func(_ *mocks.AuthService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Имя пользователя и пароль не могут быть пустыми",
		},
		{
			name:        "Имя пользователя занято",
			requestBody: `{"username":"page-owner","password":"secret123"}`,
			setupMock: func(m *mocks.AuthService) {
				m.EXPECT().Register("page-owner", "secret123").Return(services.ErrUsernameTaken).Once()
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   services.ErrUsernameTaken.Error(),
		},
		{
			name:        "Внутренняя ошибка сервиса",
			requestBody: `{"username":"page-owner","password":"secret123"}`,
			setupMock: func(m *mocks.AuthService) {
				m.EXPECT().Register("page-owner", "secret123").Return(errors.New("database error")).Once()
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   "Внутренняя ошибка сервера",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(mocks.AuthService)
			tt.setupMock(mockService)
			handler := handlers.NewAuthHandler(mockService)

			req := httptest.NewRequest(http.MethodPost, "/api/register", strings.NewReader(tt.requestBody))
			rr := httptest.NewRecorder()
			handler.Register(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.expectedBody)
			mockService.AssertExpectations(t)
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("Успешный вход возвращает токен", func(t *testing.T) {
		mockService := new(mocks.AuthService)
		mockService.EXPECT().Login("page-owner", "secret123").Return("signed.jwt.token", nil).Once()
		handler := handlers.NewAuthHandler(mockService)

		req := httptest.NewRequest(http.MethodPost, "/api/login",
			strings.NewReader(`{"username":"page-owner","password":"secret123"}`))
		rr := httptest.NewRecorder()
		handler.Login(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var resp models.LoginResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "signed.jwt.token", resp.Token)
		mockService.AssertExpectations(t)
	})

	t.Run("Некорректный JSON", func(t *testing.T) {
		mockService := new(mocks.AuthService)
		handler := handlers.NewAuthHandler(mockService)

		req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(`{"username":`))
		rr := httptest.NewRecorder()
		handler.Login(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "Неверный формат запроса")
		mockService.AssertExpectations(t)
	})

	t.Run("Пустые учетные данные", func(t *testing.T) {
		mockService := new(mocks.AuthService)
		handler := handlers.NewAuthHandler(mockService)

		req := httptest.NewRequest(http.MethodPost, "/api/login",
			strings.NewReader(`{"username":"","password":""}`))
		rr := httptest.NewRecorder()
		handler.Login(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "Имя пользователя и пароль не могут быть пустыми")
		mockService.AssertExpectations(t)
	})

	t.Run("Неверные учетные данные", func(t *testing.T) {
		mockService := new(mocks.AuthService)
		mockService.EXPECT().Login("page-owner", "wrong").Return("", services.ErrInvalidCredentials).Once()
		handler := handlers.NewAuthHandler(mockService)

		req := httptest.NewRequest(http.MethodPost, "/api/login",
			strings.NewReader(`{"username":"page-owner","password":"wrong"}`))
		rr := httptest.NewRecorder()
		handler.Login(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Contains(t, rr.Body.String(), services.ErrInvalidCredentials.Error())
		mockService.AssertExpectations(t)
	})

	t.Run("Внутренняя ошибка сервиса", func(t *testing.T) {
		mockService := new(mocks.AuthService)
		mockService.EXPECT().Login("page-owner", "secret123").Return("", errors.New("database error")).Once()
		handler := handlers.NewAuthHandler(mockService)

		req := httptest.NewRequest(http.MethodPost, "/api/login",
			strings.NewReader(`{"username":"page-owner","password":"secret123"}`))
		rr := httptest.NewRecorder()
		handler.Login(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Contains(t, rr.Body.String(), "Внутренняя ошибка сервера")
		mockService.AssertExpectations(t)
	})
}
