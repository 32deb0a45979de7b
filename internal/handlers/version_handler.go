package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/maynagashev/pagevault/internal/middleware"
	"github.com/maynagashev/pagevault/internal/models"
	"github.com/maynagashev/pagevault/internal/services"
)

// VersionHandler обрабатывает HTTP-запросы, связанные с версиями страниц.
type VersionHandler struct {
	versionService services.VersionService
}

// NewVersionHandler создает новый экземпляр VersionHandler.
func NewVersionHandler(vs services.VersionService) *VersionHandler {
	return &VersionHandler{versionService: vs}
}

// RollbackResponse представляет тело ответа на запрос отката.
type RollbackResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// DeleteResponse представляет тело ответа на запрос удаления версии.
type DeleteResponse struct {
	Success bool `json:"success"`
}

// PreviewResponse представляет тело ответа с превью версии.
type PreviewResponse struct {
	Content string `json:"content"`
}

// List обрабатывает GET запрос на получение списка версий страницы (новые — первыми).
func (h *VersionHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, pageID, ok := h.userAndPage(w, r)
	if !ok {
		return
	}

	versions, err := h.versionService.ListVersions(r.Context(), userID, pageID)
	if err != nil {
		h.writeServiceError(w, "List", err)
		return
	}

	writeJSON(w, http.StatusOK, versions)
}

// Create обрабатывает POST запрос на создание снимка страницы.
// Возвращает 400, если рабочий каталог страницы не существует (нечего снимать).
func (h *VersionHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, pageID, ok := h.userAndPage(w, r)
	if !ok {
		return
	}

	// Тело запроса опционально: снимок можно создать и без описания
	var req models.CreateVersionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		log.Printf("[VersionHandler:Create] Ошибка декодирования запроса: %v", err)
		http.Error(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	version, err := h.versionService.CreateSnapshot(r.Context(), userID, pageID, req.Description, req.AuditID)
	if err != nil {
		h.writeServiceError(w, "Create", err)
		return
	}
	if version == nil {
		log.Printf("[VersionHandler:Create] Нечего снимать: рабочий каталог страницы %d не существует", pageID)
		http.Error(w, "Нечего снимать: файлы страницы отсутствуют", http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusCreated, version)
}

// Get обрабатывает GET запрос на получение одной версии.
func (h *VersionHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, pageID, versionID, ok := h.userPageAndVersion(w, r)
	if !ok {
		return
	}

	version, err := h.versionService.GetVersion(r.Context(), userID, pageID, versionID)
	if err != nil {
		h.writeServiceError(w, "Get", err)
		return
	}

	writeJSON(w, http.StatusOK, version)
}

// Preview обрабатывает GET запрос на превью основной HTML-записи версии.
func (h *VersionHandler) Preview(w http.ResponseWriter, r *http.Request) {
	userID, pageID, versionID, ok := h.userPageAndVersion(w, r)
	if !ok {
		return
	}

	content, err := h.versionService.Preview(r.Context(), userID, pageID, versionID)
	if err != nil {
		h.writeServiceError(w, "Preview", err)
		return
	}

	writeJSON(w, http.StatusOK, PreviewResponse{Content: content})
}

// Diff обрабатывает GET запрос на сравнение версии с предыдущей версией
// (?compareTo=previous) или с текущим состоянием (?compareTo=current, по умолчанию).
func (h *VersionHandler) Diff(w http.ResponseWriter, r *http.Request) {
	userID, pageID, versionID, ok := h.userPageAndVersion(w, r)
	if !ok {
		return
	}

	compareTo := r.URL.Query().Get("compareTo")

	result, err := h.versionService.Diff(r.Context(), userID, pageID, versionID, compareTo)
	if err != nil {
		h.writeServiceError(w, "Diff", err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// Rollback обрабатывает POST запрос на откат страницы к указанной версии.
func (h *VersionHandler) Rollback(w http.ResponseWriter, r *http.Request) {
	userID, pageID, versionID, ok := h.userPageAndVersion(w, r)
	if !ok {
		return
	}

	log.Printf("[VersionHandler:Rollback] Запрос на откат страницы %d к версии %d от пользователя %d",
		pageID, versionID, userID)

	backup, err := h.versionService.Rollback(r.Context(), userID, pageID, versionID)
	if err != nil {
		h.writeServiceError(w, "Rollback", err)
		return
	}

	message := "Откат выполнен"
	if backup != nil {
		message = "Откат выполнен, предыдущее состояние сохранено как версия " +
			strconv.FormatInt(backup.VersionNumber, 10)
	}
	writeJSON(w, http.StatusOK, RollbackResponse{Success: true, Message: message})
}

// Update обрабатывает PATCH запрос на изменение метаданных версии.
// Применяются только переданные поля; непустая метка защищает версию от удаления.
func (h *VersionHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, pageID, versionID, ok := h.userPageAndVersion(w, r)
	if !ok {
		return
	}

	var req models.UpdateVersionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("[VersionHandler:Update] Ошибка декодирования запроса: %v", err)
		http.Error(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	version, err := h.versionService.UpdateMetadata(r.Context(), userID, pageID, versionID, req.Description, req.Tag)
	if err != nil {
		h.writeServiceError(w, "Update", err)
		return
	}

	writeJSON(w, http.StatusOK, version)
}

// Delete обрабатывает DELETE запрос на удаление версии.
// Версия с меткой защищена — в этом случае возвращается 409.
func (h *VersionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, pageID, versionID, ok := h.userPageAndVersion(w, r)
	if !ok {
		return
	}

	if err := h.versionService.DeleteVersion(r.Context(), userID, pageID, versionID); err != nil {
		h.writeServiceError(w, "Delete", err)
		return
	}

	writeJSON(w, http.StatusOK, DeleteResponse{Success: true})
}

// userAndPage извлекает ID пользователя из контекста и ID страницы из URL.
func (h *VersionHandler) userAndPage(w http.ResponseWriter, r *http.Request) (userID, pageID int64, ok bool) {
	userID, found := middleware.GetUserIDFromContext(r.Context())
	if !found {
		log.Printf("[VersionHandler] Не удалось получить userID из контекста")
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

// userPageAndVersion дополнительно извлекает ID версии из URL.
func (h *VersionHandler) userPageAndVersion(
	w http.ResponseWriter,
	r *http.Request,
) (userID, pageID, versionID int64, ok bool) {
	userID, pageID, ok = h.userAndPage(w, r)
	if !ok {
		return 0, 0, 0, false
	}

	versionID, err := strconv.ParseInt(chi.URLParam(r, "versionID"), 10, 64)
	if err != nil || versionID <= 0 {
		http.Error(w, "Неверный ID версии", http.StatusBadRequest)
		return 0, 0, 0, false
	}
	return userID, pageID, versionID, true
}

// writeServiceError переводит ошибки сервисного слоя в HTTP-статусы.
func (h *VersionHandler) writeServiceError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, services.ErrPageNotFound):
		http.Error(w, "Страница не найдена", http.StatusNotFound)
	case errors.Is(err, services.ErrVersionNotFound):
		http.Error(w, "Версия не найдена", http.StatusNotFound)
	case errors.Is(err, services.ErrPreviewNotFound):
		http.Error(w, "Превью для версии недоступно", http.StatusNotFound)
	case errors.Is(err, services.ErrForbidden):
		http.Error(w, "Доступ запрещен", http.StatusForbidden)
	case errors.Is(err, services.ErrVersionProtected):
		http.Error(w, "Версия защищена меткой от удаления", http.StatusConflict)
	case errors.Is(err, services.ErrUnknownCompareTarget):
		http.Error(w, "Неизвестная цель сравнения", http.StatusBadRequest)
	default:
		log.Printf("[VersionHandler:%s] Внутренняя ошибка сервиса: %v", op, err)
		http.Error(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
	}
}

// writeJSON кодирует тело ответа в JSON с указанным статусом.
func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("[VersionHandler] Ошибка кодирования JSON-ответа: %v", err)
	}
}
