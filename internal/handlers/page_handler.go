package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/maynagashev/pagevault/internal/middleware"
	"github.com/maynagashev/pagevault/internal/models"
	"github.com/maynagashev/pagevault/internal/services"
)

// PageHandler обрабатывает HTTP-запросы, связанные со страницами.
type PageHandler struct {
	pageService services.PageService
}

// NewPageHandler создает новый экземпляр PageHandler.
func NewPageHandler(ps services.PageService) *PageHandler {
	return &PageHandler{pageService: ps}
}

// Create обрабатывает POST запрос на создание страницы.
func (h *PageHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		log.Printf("[PageHandler:Create] Не удалось получить userID из контекста")
		http.Error(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
		return
	}

	var req models.CreatePageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("[PageHandler:Create] Ошибка декодирования запроса: %v", err)
		http.Error(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	page, err := h.pageService.CreatePage(r.Context(), userID, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyPageName):
			http.Error(w, "Имя страницы не может быть пустым", http.StatusBadRequest)
		case errors.Is(err, services.ErrPageNameTaken):
			http.Error(w, "Имя страницы уже занято", http.StatusConflict)
		default:
			log.Printf("[PageHandler:Create] Ошибка сервиса при создании страницы '%s': %v", req.Name, err)
			http.Error(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusCreated, page)
}

// List обрабатывает GET запрос на получение списка страниц пользователя.
func (h *PageHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		log.Printf("[PageHandler:List] Не удалось получить userID из контекста")
		http.Error(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
		return
	}

	pages, err := h.pageService.ListPages(r.Context(), userID)
	if err != nil {
		log.Printf("[PageHandler:List] Ошибка сервиса при получении списка страниц: %v", err)
		http.Error(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, pages)
}

// Get обрабатывает GET запрос на получение одной страницы.
func (h *PageHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, pageID, ok := h.userAndPage(w, r)
	if !ok {
		return
	}

	page, err := h.pageService.GetPage(r.Context(), userID, pageID)
	if err != nil {
		h.writeServiceError(w, "Get", err)
		return
	}

	writeJSON(w, http.StatusOK, page)
}

// Delete обрабатывает DELETE запрос на удаление страницы со всеми её версиями.
func (h *PageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, pageID, ok := h.userAndPage(w, r)
	if !ok {
		return
	}

	if err := h.pageService.DeletePage(r.Context(), userID, pageID); err != nil {
		h.writeServiceError(w, "Delete", err)
		return
	}

	writeJSON(w, http.StatusOK, DeleteResponse{Success: true})
}

// userAndPage извлекает ID пользователя из контекста и ID страницы из URL.
func (h *PageHandler) userAndPage(w http.ResponseWriter, r *http.Request) (userID, pageID int64, ok bool) {
	userID, found := middleware.GetUserIDFromContext(r.Context())
	if !found {
		log.Printf("[PageHandler] Не удалось получить userID из контекста")
		http.Error(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
		return 0, 0, false
	}

	pageID, err := strconv.ParseInt(chi.URLParam(r, "pageID"), 10, 64)
	if err != nil || pageID <= 0 {
		http.Error(w, "Неверный ID страницы", http.StatusBadRequest)
		return 0, 0, false
	}
	return userID, pageID, true
}

// writeServiceError переводит ошибки сервисного слоя в HTTP-статусы.
func (h *PageHandler) writeServiceError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, services.ErrPageNotFound):
		http.Error(w, "Страница не найдена", http.StatusNotFound)
	case errors.Is(err, services.ErrForbidden):
		http.Error(w, "Доступ запрещен", http.StatusForbidden)
	default:
		log.Printf("[PageHandler:%s] Внутренняя ошибка сервиса: %v", op, err)
		http.Error(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
	}
}
