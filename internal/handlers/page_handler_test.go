package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/maynagashev/pagevault/internal/handlers"
	"github.com/maynagashev/pagevault/internal/middleware"
	"github.com/maynagashev/pagevault/internal/mocks"
	"github.com/maynagashev/pagevault/internal/models"
	"github.com/maynagashev/pagevault/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authRequest собирает запрос аутентифицированного пользователя с параметрами маршрута chi.
func authRequest(method, target string, body io.Reader, userID int64, params map[string]string) *http.Request {
	req := httptest.NewRequest(method, target, body)
	ctx := context.WithValue(req.Context(), middleware.UserIDKey, userID)

	rctx := chi.NewRouteContext()
	for key, value := range params {
		rctx.URLParams.Add(key, value)
	}
	ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	return req.WithContext(ctx)
}

// anonymousRequest собирает запрос без userID в контексте (сбой аутентификации).
func anonymousRequest(method, target string, params map[string]string) *http.Request {
	req := httptest.NewRequest(method, target, http.NoBody)
	rctx := chi.NewRouteContext()
	for key, value := range params {
		rctx.URLParams.Add(key, value)
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestPageHandler_Create(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    string
		setupMock      func(m *mocks.PageService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "Успешное создание страницы",
			requestBody: `{"name":"landing"}`,
			setupMock: func(m *mocks.PageService) {
				m.EXPECT().
					CreatePage(mock.Anything, int64(1), "landing").
					Return(&models.Page{ID: 10, UserID: 1, Name: "landing"}, nil).Once()
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"name":"landing"`,
		},
		{
			name:           "Некорректный JSON",
			requestBody:    `{"name":`,
			setupMock:      func(_ *mocks.PageService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Неверный формат запроса",
		},
		{
			name:        "Пустое имя страницы",
			requestBody: `{"name":""}`,
			setupMock: func(m *mocks.PageService) {
				m.EXPECT().
					CreatePage(mock.Anything, int64(1), "").
					Return(nil, services.ErrEmptyPageName).Once()
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Имя страницы не может быть пустым",
		},
		{
			name:        "Имя страницы уже занято",
			requestBody: `{"name":"landing"}`,
			setupMock: func(m *mocks.PageService) {
				m.EXPECT().
					CreatePage(mock.Anything, int64(1), "landing").
					Return(nil, services.ErrPageNameTaken).Once()
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   "Имя страницы уже занято",
		},
		{
			name:        "Внутренняя ошибка сервиса",
			requestBody: `{"name":"landing"}`,
			setupMock: func(m *mocks.PageService) {
				m.EXPECT().
					CreatePage(mock.Anything, int64(1), "landing").
					Return(nil, errors.New("database error")).Once()
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   "Внутренняя ошибка сервера",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(mocks.PageService)
			tt.setupMock(mockService)
			handler := handlers.NewPageHandler(mockService)

			req := authRequest(http.MethodPost, "/api/pages", strings.NewReader(tt.requestBody), 1, nil)
			rr := httptest.NewRecorder()
			handler.Create(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.expectedBody)
			mockService.AssertExpectations(t)
		})
	}

	t.Run("Нет userID в контексте", func(t *testing.T) {
		mockService := new(mocks.PageService)
		handler := handlers.NewPageHandler(mockService)

		req := anonymousRequest(http.MethodPost, "/api/pages", nil)
		rr := httptest.NewRecorder()
		handler.Create(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		mockService.AssertExpectations(t)
	})
}

func TestPageHandler_List(t *testing.T) {
	t.Run("Список страниц пользователя", func(t *testing.T) {
		mockService := new(mocks.PageService)
		pages := []models.Page{{ID: 10, UserID: 1, Name: "landing"}, {ID: 11, UserID: 1, Name: "docs"}}
		mockService.EXPECT().ListPages(mock.Anything, int64(1)).Return(pages, nil).Once()
		handler := handlers.NewPageHandler(mockService)

		req := authRequest(http.MethodGet, "/api/pages", http.NoBody, 1, nil)
		rr := httptest.NewRecorder()
		handler.List(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var result []models.Page
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
		assert.Len(t, result, 2)
		assert.Equal(t, "landing", result[0].Name)
		mockService.AssertExpectations(t)
	})

	t.Run("Ошибка сервиса", func(t *testing.T) {
		mockService := new(mocks.PageService)
		mockService.EXPECT().ListPages(mock.Anything, int64(1)).Return(nil, errors.New("database error")).Once()
		handler := handlers.NewPageHandler(mockService)

		req := authRequest(http.MethodGet, "/api/pages", http.NoBody, 1, nil)
		rr := httptest.NewRecorder()
		handler.List(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		mockService.AssertExpectations(t)
	})
}

func TestPageHandler_Get(t *testing.T) {
	tests := []struct {
		name           string
		pageIDParam    string
		setupMock      func(m *mocks.PageService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "Успешное получение страницы",
			pageIDParam: "10",
			setupMock: func(m *mocks.PageService) {
				m.EXPECT().
					GetPage(mock.Anything, int64(1), int64(10)).
					Return(&models.Page{ID: 10, UserID: 1, Name: "landing"}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"name":"landing"`,
		},
		{
			name:           "Некорректный ID страницы",
			pageIDParam:    "abc",
			setupMock:      func(_ *mocks.PageService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Неверный ID страницы",
		},
		{
			name:        "Страница не найдена",
			pageIDParam: "99",
			setupMock: func(m *mocks.PageService) {
				m.EXPECT().
					GetPage(mock.Anything, int64(1), int64(99)).
					Return(nil, services.ErrPageNotFound).Once()
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   "Страница не найдена",
		},
		{
			name:        "Чужая страница",
			pageIDParam: "10",
			setupMock: func(m *mocks.PageService) {
				m.EXPECT().
					GetPage(mock.Anything, int64(1), int64(10)).
					Return(nil, services.ErrForbidden).Once()
			},
			expectedStatus: http.StatusForbidden,
			expectedBody:   "Доступ запрещен",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(mocks.PageService)
			tt.setupMock(mockService)
			handler := handlers.NewPageHandler(mockService)

			req := authRequest(http.MethodGet, "/api/pages/"+tt.pageIDParam, http.NoBody, 1,
				map[string]string{"pageID": tt.pageIDParam})
			rr := httptest.NewRecorder()
			handler.Get(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.expectedBody)
			mockService.AssertExpectations(t)
		})
	}
}

func TestPageHandler_Delete(t *testing.T) {
	t.Run("Успешное удаление", func(t *testing.T) {
		mockService := new(mocks.PageService)
		mockService.EXPECT().DeletePage(mock.Anything, int64(1), int64(10)).Return(nil).Once()
		handler := handlers.NewPageHandler(mockService)

		req := authRequest(http.MethodDelete, "/api/pages/10", http.NoBody, 1,
			map[string]string{"pageID": "10"})
		rr := httptest.NewRecorder()
		handler.Delete(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"success":true`)
		mockService.AssertExpectations(t)
	})

	t.Run("Страница не найдена", func(t *testing.T) {
		mockService := new(mocks.PageService)
		mockService.EXPECT().DeletePage(mock.Anything, int64(1), int64(99)).Return(services.ErrPageNotFound).Once()
		handler := handlers.NewPageHandler(mockService)

		req := authRequest(http.MethodDelete, "/api/pages/99", http.NoBody, 1,
			map[string]string{"pageID": "99"})
		rr := httptest.NewRecorder()
		handler.Delete(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		mockService.AssertExpectations(t)
	})
}
