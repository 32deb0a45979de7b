package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"
	"github.com/maynagashev/pagevault/internal/archive"
	"github.com/maynagashev/pagevault/internal/diff"
	"github.com/maynagashev/pagevault/internal/models"
	"github.com/maynagashev/pagevault/internal/repository"
	"github.com/maynagashev/pagevault/internal/storage"
)

// Значения параметра compare_to при запросе диффа.
const (
	CompareToPrevious = "previous"
	CompareToCurrent  = "current"
)

// previewEntryName — основная HTML-запись архива, отдаваемая как превью версии.
const previewEntryName = "index.html"

// archiveContentType — MIME-тип архивов версий в объектном хранилище.
const archiveContentType = "application/zip"

// backupDescription — описание резервного снимка, создаваемого перед откатом.
const backupDescription = "Резервная копия перед откатом"

// VersionDiff — результат сравнения версии с другой версией или текущим состоянием.
type VersionDiff struct {
	Version      *models.PageVersion `json:"version"`
	CompareLabel string              `json:"compare_label"`
	Diffs        []diff.FileDiff     `json:"diffs"`
}

// VersionService определяет интерфейс для сервиса версионирования страниц.
type VersionService interface {
	// CreateSnapshot создаёт снимок рабочего каталога страницы.
	// Возвращает (nil, nil), если каталог не существует — это ожидаемая
	// ситуация для ещё не материализованной страницы, а не ошибка.
	CreateSnapshot(ctx context.Context, userID, pageID int64, description string, auditID *int64) (*models.PageVersion, error)
	ListVersions(ctx context.Context, userID, pageID int64) ([]models.PageVersion, error)
	GetVersion(ctx context.Context, userID, pageID, versionID int64) (*models.PageVersion, error)
	UpdateMetadata(ctx context.Context, userID, pageID, versionID int64, description, tag *string) (*models.PageVersion, error)
	DeleteVersion(ctx context.Context, userID, pageID, versionID int64) error
	// Rollback восстанавливает рабочий каталог страницы из указанной версии.
	// Перед откатом текущее состояние сохраняется как новая версия (если каталог
	// существует); возвращает эту резервную версию или nil.
	Rollback(ctx context.Context, userID, pageID, versionID int64) (*models.PageVersion, error)
	Preview(ctx context.Context, userID, pageID, versionID int64) (string, error)
	Diff(ctx context.Context, userID, pageID, versionID int64, compareTo string) (*VersionDiff, error)
}

// versionService реализует логику версионирования страниц.
var _ VersionService = (*versionService)(nil) // Проверка соответствия интерфейсу

type versionService struct {
	pageRepo    repository.PageRepository
	versionRepo repository.PageVersionRepository
	fileStorage storage.FileStorage
	contentDir  string // Корневой каталог рабочих файлов страниц
	locks       *pageLocks
}

// NewVersionService создает новый экземпляр сервиса версионирования.
func NewVersionService(
	pageRepo repository.PageRepository,
	versionRepo repository.PageVersionRepository,
	fileStorage storage.FileStorage,
	contentDir string,
	locks *pageLocks,
) VersionService {
	return &versionService{
		pageRepo:    pageRepo,
		versionRepo: versionRepo,
		fileStorage: fileStorage,
		contentDir:  contentDir,
		locks:       locks,
	}
}

// pageDir возвращает рабочий каталог страницы.
func (s *versionService) pageDir(pageID int64) string {
	return filepath.Join(s.contentDir, strconv.FormatInt(pageID, 10))
}

// getOwnedPage находит страницу и проверяет, что она принадлежит пользователю.
func (s *versionService) getOwnedPage(ctx context.Context, userID, pageID int64) (*models.Page, error) {
	page, err := s.pageRepo.GetPageByID(ctx, pageID)
	if err != nil {
		if errors.Is(err, repository.ErrPageNotFound) {
			return nil, ErrPageNotFound
		}
		log.Printf("[VersionService] Ошибка репозитория при получении страницы %d: %v", pageID, err)
		return nil, errors.New("внутренняя ошибка сервера при получении страницы")
	}
	if page.UserID != userID {
		log.Printf("[VersionService] Пользователь %d обратился к чужой странице %d", userID, pageID)
		return nil, ErrForbidden
	}
	return page, nil
}

// CreateSnapshot создаёт снимок рабочего каталога страницы.
func (s *versionService) CreateSnapshot(
	ctx context.Context,
	userID, pageID int64,
	description string,
	auditID *int64,
) (*models.PageVersion, error) {
	unlock := s.locks.lock(pageID)
	defer unlock()

	page, err := s.getOwnedPage(ctx, userID, pageID)
	if err != nil {
		return nil, err
	}
	return s.createSnapshotLocked(ctx, page, description, auditID)
}

// createSnapshotLocked выполняет создание снимка под уже взятой блокировкой страницы.
// Вызывается из CreateSnapshot и из Rollback (резервная копия перед откатом).
func (s *versionService) createSnapshotLocked(
	ctx context.Context,
	page *models.Page,
	description string,
	auditID *int64,
) (*models.PageVersion, error) {
	dir := s.pageDir(page.ID)
	if _, err := os.Stat(dir); err != nil {
		// Нечего снимать — страница ещё не материализована. Не ошибка.
		log.Printf("[VersionService] Рабочий каталог страницы %d не существует, снимок не создаётся", page.ID)
		return nil, nil //nolint:nilnil // Отсутствие каталога — ожидаемый мягкий результат
	}

	data, err := archive.Pack(dir)
	if err != nil {
		log.Printf("[VersionService] Ошибка упаковки каталога страницы %d: %v", page.ID, err)
		return nil, fmt.Errorf("ошибка упаковки файлов страницы: %w", err)
	}

	number, err := s.pageRepo.NextVersionNumber(ctx, page.ID)
	if err != nil {
		log.Printf("[VersionService] Ошибка выдачи номера версии для страницы %d: %v", page.ID, err)
		return nil, errors.New("внутренняя ошибка сервера при выдаче номера версии")
	}

	objectKey := fmt.Sprintf("pages/%d/versions/%s.zip", page.ID, uuid.New().String())
	size := int64(len(data))

	if err = s.fileStorage.UploadFile(ctx, objectKey, bytes.NewReader(data), size, archiveContentType); err != nil {
		log.Printf("[VersionService] Ошибка загрузки архива версии страницы %d: %v", page.ID, err)
		return nil, errors.New("внутренняя ошибка сервера при сохранении архива")
	}

	version := &models.PageVersion{
		PageID:        page.ID,
		VersionNumber: number,
		Description:   description,
		ObjectKey:     objectKey,
		SizeBytes:     &size,
		AuditID:       auditID,
	}
	versionID, err := s.versionRepo.CreateVersion(ctx, version)
	if err != nil {
		// Архив уже в хранилище, а метаданных нет — убираем осиротевший блоб,
		// иначе он останется недостижимым навсегда.
		log.Printf("[VersionService] Ошибка сохранения метаданных версии страницы %d, удаляем архив '%s': %v",
			page.ID, objectKey, err)
		if cleanupErr := s.fileStorage.DeleteFile(ctx, objectKey); cleanupErr != nil {
			log.Printf("[VersionService] Не удалось удалить осиротевший архив '%s': %v", objectKey, cleanupErr)
		}
		return nil, errors.New("внутренняя ошибка сервера при сохранении метаданных версии")
	}

	if err = s.pageRepo.UpdateCurrentVersion(ctx, page.ID, versionID, number); err != nil {
		log.Printf("[VersionService] Ошибка обновления указателя текущей версии страницы %d: %v", page.ID, err)
		return nil, errors.New("внутренняя ошибка сервера при обновлении текущей версии")
	}

	created, err := s.versionRepo.GetByID(ctx, page.ID, versionID)
	if err != nil {
		log.Printf("[VersionService] Ошибка чтения созданной версии %d страницы %d: %v", versionID, page.ID, err)
		return nil, errors.New("внутренняя ошибка сервера при чтении созданной версии")
	}

	log.Printf("[VersionService] Снимок страницы %d создан: версия ID %d (номер %d, %d байт)",
		page.ID, versionID, number, size)
	return created, nil
}

// ListVersions возвращает все версии страницы, новые — первыми.
func (s *versionService) ListVersions(ctx context.Context, userID, pageID int64) ([]models.PageVersion, error) {
	if _, err := s.getOwnedPage(ctx, userID, pageID); err != nil {
		return nil, err
	}

	versions, err := s.versionRepo.ListByPageID(ctx, pageID)
	if err != nil {
		log.Printf("[VersionService] Ошибка получения списка версий страницы %d: %v", pageID, err)
		return nil, errors.New("внутренняя ошибка сервера при получении списка версий")
	}
	return versions, nil
}

// GetVersion возвращает одну версию страницы.
func (s *versionService) GetVersion(ctx context.Context, userID, pageID, versionID int64) (*models.PageVersion, error) {
	if _, err := s.getOwnedPage(ctx, userID, pageID); err != nil {
		return nil, err
	}
	return s.getVersion(ctx, pageID, versionID)
}

// getVersion находит версию без проверки владельца (владелец уже проверен).
func (s *versionService) getVersion(ctx context.Context, pageID, versionID int64) (*models.PageVersion, error) {
	version, err := s.versionRepo.GetByID(ctx, pageID, versionID)
	if err != nil {
		if errors.Is(err, repository.ErrVersionNotFound) {
			return nil, ErrVersionNotFound
		}
		log.Printf("[VersionService] Ошибка получения версии %d страницы %d: %v", versionID, pageID, err)
		return nil, errors.New("внутренняя ошибка сервера при получении версии")
	}
	return version, nil
}

// UpdateMetadata изменяет описание и/или метку версии.
// Непустая метка делает версию защищённой от удаления, пустая — снимает защиту.
func (s *versionService) UpdateMetadata(
	ctx context.Context,
	userID, pageID, versionID int64,
	description, tag *string,
) (*models.PageVersion, error) {
	if _, err := s.getOwnedPage(ctx, userID, pageID); err != nil {
		return nil, err
	}

	version, err := s.versionRepo.UpdateMetadata(ctx, pageID, versionID, description, tag)
	if err != nil {
		if errors.Is(err, repository.ErrVersionNotFound) {
			return nil, ErrVersionNotFound
		}
		log.Printf("[VersionService] Ошибка обновления метаданных версии %d страницы %d: %v", versionID, pageID, err)
		return nil, errors.New("внутренняя ошибка сервера при обновлении метаданных версии")
	}
	return version, nil
}

// DeleteVersion удаляет версию: сначала запись метаданных, затем архив.
// Версия с меткой защищена — удаление отклоняется с ErrVersionProtected.
func (s *versionService) DeleteVersion(ctx context.Context, userID, pageID, versionID int64) error {
	unlock := s.locks.lock(pageID)
	defer unlock()

	if _, err := s.getOwnedPage(ctx, userID, pageID); err != nil {
		return err
	}

	version, err := s.getVersion(ctx, pageID, versionID)
	if err != nil {
		return err
	}
	if version.Protected() {
		log.Printf("[VersionService] Отказ в удалении версии %d страницы %d: защищена меткой '%s'",
			versionID, pageID, *version.Tag)
		return ErrVersionProtected
	}

	if err = s.versionRepo.Delete(ctx, pageID, versionID); err != nil {
		if errors.Is(err, repository.ErrVersionNotFound) {
			return ErrVersionNotFound
		}
		log.Printf("[VersionService] Ошибка удаления версии %d страницы %d: %v", versionID, pageID, err)
		return errors.New("внутренняя ошибка сервера при удалении версии")
	}

	// Метаданные удалены; не скрываем сбой удаления архива, чтобы
	// рассинхронизация хранилищ не осталась незамеченной.
	if err = s.fileStorage.DeleteFile(ctx, version.ObjectKey); err != nil {
		log.Printf("[VersionService] Метаданные версии %d удалены, но архив '%s' удалить не удалось: %v",
			versionID, version.ObjectKey, err)
		return fmt.Errorf("версия удалена, но архив остался в хранилище: %w", err)
	}

	log.Printf("[VersionService] Версия %d страницы %d успешно удалена", versionID, pageID)
	return nil
}

// Rollback восстанавливает рабочий каталог страницы из указанной версии.
//
// Порядок шагов фиксирован: резервный снимок текущего состояния, очистка
// каталога, распаковка архива, перевод указателя текущей версии. Если не
// удался резервный снимок — откат прерывается до любых изменений каталога.
// Резервная версия сохраняется независимо от исхода последующих шагов.
func (s *versionService) Rollback(ctx context.Context, userID, pageID, versionID int64) (*models.PageVersion, error) {
	unlock := s.locks.lock(pageID)
	defer unlock()

	page, err := s.getOwnedPage(ctx, userID, pageID)
	if err != nil {
		return nil, err
	}

	target, err := s.getVersion(ctx, pageID, versionID)
	if err != nil {
		return nil, err
	}

	backup, err := s.createSnapshotLocked(ctx, page, backupDescription, nil)
	if err != nil {
		log.Printf("[VersionService] Откат страницы %d прерван: не удалось создать резервный снимок: %v", pageID, err)
		return nil, fmt.Errorf("откат прерван, резервный снимок не создан: %w", err)
	}

	data, err := s.downloadArchive(ctx, target.ObjectKey)
	if err != nil {
		log.Printf("[VersionService] Ошибка скачивания архива версии %d страницы %d: %v", versionID, pageID, err)
		return nil, errors.New("внутренняя ошибка сервера при скачивании архива версии")
	}

	dir := s.pageDir(pageID)
	if err = os.RemoveAll(dir); err != nil {
		log.Printf("[VersionService] Ошибка очистки рабочего каталога страницы %d: %v", pageID, err)
		return nil, fmt.Errorf("ошибка очистки рабочего каталога: %w", err)
	}
	if err = os.MkdirAll(dir, 0o755); err != nil {
		log.Printf("[VersionService] Ошибка создания рабочего каталога страницы %d: %v", pageID, err)
		return nil, fmt.Errorf("ошибка создания рабочего каталога: %w", err)
	}

	if err = archive.Unpack(data, dir); err != nil {
		log.Printf("[VersionService] Ошибка распаковки версии %d в каталог страницы %d: %v", versionID, pageID, err)
		return nil, fmt.Errorf("ошибка распаковки архива версии: %w", err)
	}

	if err = s.pageRepo.UpdateCurrentVersion(ctx, pageID, target.ID, target.VersionNumber); err != nil {
		log.Printf("[VersionService] Ошибка перевода указателя текущей версии страницы %d: %v", pageID, err)
		return nil, errors.New("внутренняя ошибка сервера при обновлении текущей версии")
	}

	log.Printf("[VersionService] Страница %d откачена к версии %d (номер %d)", pageID, target.ID, target.VersionNumber)
	return backup, nil
}

// Preview возвращает текст основной HTML-записи архива версии.
func (s *versionService) Preview(ctx context.Context, userID, pageID, versionID int64) (string, error) {
	if _, err := s.getOwnedPage(ctx, userID, pageID); err != nil {
		return "", err
	}

	version, err := s.getVersion(ctx, pageID, versionID)
	if err != nil {
		return "", err
	}

	data, err := s.downloadArchive(ctx, version.ObjectKey)
	if err != nil {
		log.Printf("[VersionService] Ошибка скачивания архива версии %d для превью: %v", versionID, err)
		return "", errors.New("внутренняя ошибка сервера при скачивании архива версии")
	}

	content, err := archive.ReadEntryText(data, previewEntryName)
	if err != nil {
		if errors.Is(err, archive.ErrEntryNotFound) {
			log.Printf("[VersionService] В версии %d страницы %d нет записи '%s'", versionID, pageID, previewEntryName)
			return "", ErrPreviewNotFound
		}
		log.Printf("[VersionService] Ошибка чтения превью версии %d: %v", versionID, err)
		return "", errors.New("внутренняя ошибка сервера при чтении превью версии")
	}
	return content, nil
}

// Diff сравнивает версию с предыдущей версией или с текущим состоянием каталога.
func (s *versionService) Diff(
	ctx context.Context,
	userID, pageID, versionID int64,
	compareTo string,
) (*VersionDiff, error) {
	if _, err := s.getOwnedPage(ctx, userID, pageID); err != nil {
		return nil, err
	}

	version, err := s.getVersion(ctx, pageID, versionID)
	if err != nil {
		return nil, err
	}

	versionFiles, err := s.archiveFileSet(ctx, version.ObjectKey)
	if err != nil {
		log.Printf("[VersionService] Ошибка чтения файлов версии %d страницы %d: %v", versionID, pageID, err)
		return nil, errors.New("внутренняя ошибка сервера при чтении файлов версии")
	}

	switch compareTo {
	case CompareToPrevious:
		return s.diffAgainstPrevious(ctx, version, versionFiles)
	case CompareToCurrent, "":
		return s.diffAgainstCurrent(version, versionFiles)
	default:
		log.Printf("[VersionService] Неизвестная цель сравнения '%s' для версии %d", compareTo, versionID)
		return nil, ErrUnknownCompareTarget
	}
}

// diffAgainstPrevious сравнивает версию со следующей по старшинству (более старой) версией.
func (s *versionService) diffAgainstPrevious(
	ctx context.Context,
	version *models.PageVersion,
	versionFiles map[string]string,
) (*VersionDiff, error) {
	versions, err := s.versionRepo.ListByPageID(ctx, version.PageID)
	if err != nil {
		log.Printf("[VersionService] Ошибка получения списка версий страницы %d для диффа: %v", version.PageID, err)
		return nil, errors.New("внутренняя ошибка сервера при получении списка версий")
	}

	// Версии отсортированы от новых к старым: предыдущая — следующая в списке
	var previous *models.PageVersion
	for i := range versions {
		if versions[i].ID == version.ID && i+1 < len(versions) {
			previous = &versions[i+1]
			break
		}
	}
	if previous == nil {
		log.Printf("[VersionService] У версии %d страницы %d нет предыдущей версии", version.ID, version.PageID)
		return &VersionDiff{
			Version:      version,
			CompareLabel: "нет предыдущей версии",
			Diffs:        []diff.FileDiff{},
		}, nil
	}

	previousFiles, err := s.archiveFileSet(ctx, previous.ObjectKey)
	if err != nil {
		log.Printf("[VersionService] Ошибка чтения файлов предыдущей версии %d: %v", previous.ID, err)
		return nil, errors.New("внутренняя ошибка сервера при чтении файлов предыдущей версии")
	}

	return &VersionDiff{
		Version:      version,
		CompareLabel: fmt.Sprintf("версия %d", previous.VersionNumber),
		Diffs:        diff.FileSets(versionFiles, previousFiles),
	}, nil
}

// diffAgainstCurrent сравнивает текущее состояние рабочего каталога с версией.
func (s *versionService) diffAgainstCurrent(
	version *models.PageVersion,
	versionFiles map[string]string,
) (*VersionDiff, error) {
	dir := s.pageDir(version.PageID)

	// Немaтериализованная страница сравнивается как пустой набор файлов
	liveFiles := map[string]string{}
	if _, err := os.Stat(dir); err == nil {
		liveFiles, err = diff.ReadFileSet(dir)
		if err != nil {
			log.Printf("[VersionService] Ошибка чтения рабочего каталога страницы %d: %v", version.PageID, err)
			return nil, errors.New("внутренняя ошибка сервера при чтении рабочего каталога")
		}
	}

	return &VersionDiff{
		Version:      version,
		CompareLabel: "текущее состояние",
		Diffs:        diff.FileSets(liveFiles, versionFiles),
	}, nil
}

// downloadArchive скачивает архив версии из объектного хранилища целиком.
func (s *versionService) downloadArchive(ctx context.Context, objectKey string) ([]byte, error) {
	reader, err := s.fileStorage.DownloadFile(ctx, objectKey)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := reader.Close(); closeErr != nil {
			log.Printf("[VersionService] Ошибка закрытия потока архива '%s': %v", objectKey, closeErr)
		}
	}()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения архива '%s': %w", objectKey, err)
	}
	return data, nil
}

// archiveFileSet возвращает набор (путь → текст) файлов архива версии.
func (s *versionService) archiveFileSet(ctx context.Context, objectKey string) (map[string]string, error) {
	data, err := s.downloadArchive(ctx, objectKey)
	if err != nil {
		return nil, err
	}
	return archive.ListEntriesText(data)
}

// Кастомные ошибки сервиса версионирования.
var (
	ErrPageNotFound         = errors.New("страница не найдена")
	ErrVersionNotFound      = errors.New("версия страницы не найдена")
	ErrVersionProtected     = errors.New("версия защищена меткой от удаления")
	ErrForbidden            = errors.New("доступ запрещен")
	ErrPreviewNotFound      = errors.New("превью для версии недоступно")
	ErrUnknownCompareTarget = errors.New("неизвестная цель сравнения")
)
