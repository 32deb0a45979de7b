package services

import (
	"context"
	"errors"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/maynagashev/pagevault/internal/models"
	"github.com/maynagashev/pagevault/internal/repository"
	"github.com/maynagashev/pagevault/internal/storage"
)

// PageService определяет интерфейс для сервиса работы со страницами.
type PageService interface {
	CreatePage(ctx context.Context, userID int64, name string) (*models.Page, error)
	ListPages(ctx context.Context, userID int64) ([]models.Page, error)
	GetPage(ctx context.Context, userID, pageID int64) (*models.Page, error)
	// DeletePage каскадно удаляет страницу: все версии (метки защиты не
	// препятствуют сносу страницы), их архивы в хранилище, рабочий каталог
	// и саму запись о странице.
	DeletePage(ctx context.Context, userID, pageID int64) error
}

// pageService реализует логику работы со страницами.
var _ PageService = (*pageService)(nil) // Проверка соответствия интерфейсу

type pageService struct {
	pageRepo    repository.PageRepository
	versionRepo repository.PageVersionRepository
	fileStorage storage.FileStorage
	contentDir  string
	locks       *pageLocks
}

// NewPageService создает новый экземпляр сервиса страниц.
func NewPageService(
	pageRepo repository.PageRepository,
	versionRepo repository.PageVersionRepository,
	fileStorage storage.FileStorage,
	contentDir string,
	locks *pageLocks,
) PageService {
	return &pageService{
		pageRepo:    pageRepo,
		versionRepo: versionRepo,
		fileStorage: fileStorage,
		contentDir:  contentDir,
		locks:       locks,
	}
}

// pageDir возвращает рабочий каталог страницы.
func (s *pageService) pageDir(pageID int64) string {
	return filepath.Join(s.contentDir, strconv.FormatInt(pageID, 10))
}

// CreatePage создает страницу и её рабочий каталог.
func (s *pageService) CreatePage(ctx context.Context, userID int64, name string) (*models.Page, error) {
	if name == "" {
		return nil, ErrEmptyPageName
	}

	page := &models.Page{UserID: userID, Name: name}
	pageID, err := s.pageRepo.CreatePage(ctx, page)
	if err != nil {
		if errors.Is(err, repository.ErrPageNameTaken) {
			return nil, ErrPageNameTaken
		}
		log.Printf("[PageService] Ошибка создания страницы '%s' пользователя %d: %v", name, userID, err)
		return nil, errors.New("внутренняя ошибка сервера при создании страницы")
	}

	// Материализуем рабочий каталог сразу, чтобы первый снимок был возможен
	if err = os.MkdirAll(s.pageDir(pageID), 0o755); err != nil {
		log.Printf("[PageService] Ошибка создания рабочего каталога страницы %d: %v", pageID, err)
		return nil, errors.New("внутренняя ошибка сервера при создании рабочего каталога")
	}

	created, err := s.pageRepo.GetPageByID(ctx, pageID)
	if err != nil {
		log.Printf("[PageService] Ошибка чтения созданной страницы %d: %v", pageID, err)
		return nil, errors.New("внутренняя ошибка сервера при чтении созданной страницы")
	}

	log.Printf("[PageService] Страница '%s' (ID: %d) создана для пользователя %d", name, pageID, userID)
	return created, nil
}

// ListPages возвращает все страницы пользователя.
func (s *pageService) ListPages(ctx context.Context, userID int64) ([]models.Page, error) {
	pages, err := s.pageRepo.ListPagesByUserID(ctx, userID)
	if err != nil {
		log.Printf("[PageService] Ошибка получения списка страниц пользователя %d: %v", userID, err)
		return nil, errors.New("внутренняя ошибка сервера при получении списка страниц")
	}
	return pages, nil
}

// GetPage возвращает страницу пользователя.
func (s *pageService) GetPage(ctx context.Context, userID, pageID int64) (*models.Page, error) {
	page, err := s.pageRepo.GetPageByID(ctx, pageID)
	if err != nil {
		if errors.Is(err, repository.ErrPageNotFound) {
			return nil, ErrPageNotFound
		}
		log.Printf("[PageService] Ошибка получения страницы %d: %v", pageID, err)
		return nil, errors.New("внутренняя ошибка сервера при получении страницы")
	}
	if page.UserID != userID {
		log.Printf("[PageService] Пользователь %d обратился к чужой странице %d", userID, pageID)
		return nil, ErrForbidden
	}
	return page, nil
}

// DeletePage каскадно удаляет страницу со всеми версиями.
func (s *pageService) DeletePage(ctx context.Context, userID, pageID int64) error {
	unlock := s.locks.lock(pageID)
	defer unlock()

	if _, err := s.GetPage(ctx, userID, pageID); err != nil {
		return err
	}

	objectKeys, err := s.versionRepo.DeleteAllByPageID(ctx, pageID)
	if err != nil {
		log.Printf("[PageService] Ошибка каскадного удаления версий страницы %d: %v", pageID, err)
		return errors.New("внутренняя ошибка сервера при удалении версий страницы")
	}

	// Чистим архивы всех удалённых версий; сбой не скрываем,
	// но и не бросаем оставшиеся объекты без попытки удаления.
	var blobErr error
	for _, objectKey := range objectKeys {
		if delErr := s.fileStorage.DeleteFile(ctx, objectKey); delErr != nil {
			log.Printf("[PageService] Не удалось удалить архив '%s' страницы %d: %v", objectKey, pageID, delErr)
			blobErr = delErr
		}
	}

	if err = os.RemoveAll(s.pageDir(pageID)); err != nil {
		log.Printf("[PageService] Ошибка удаления рабочего каталога страницы %d: %v", pageID, err)
		return errors.New("внутренняя ошибка сервера при удалении рабочего каталога")
	}

	if err = s.pageRepo.DeletePage(ctx, pageID); err != nil {
		log.Printf("[PageService] Ошибка удаления записи о странице %d: %v", pageID, err)
		return errors.New("внутренняя ошибка сервера при удалении страницы")
	}

	// Страницы больше нет — её блокировка не понадобится
	s.locks.forget(pageID)

	if blobErr != nil {
		return errors.New("страница удалена, но часть архивов осталась в хранилище")
	}

	log.Printf("[PageService] Страница %d и %d её версий успешно удалены", pageID, len(objectKeys))
	return nil
}

// Кастомные ошибки сервиса страниц.
var (
	ErrEmptyPageName = errors.New("имя страницы не задано")
	ErrPageNameTaken = errors.New("имя страницы уже занято")
)
